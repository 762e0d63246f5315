package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"campushub/middleware"
	"campushub/models"
	"campushub/services/notification"
	"campushub/utils"
)

type fakeUserService struct {
	tokens map[string]string
}

func (f *fakeUserService) GetUserByID(ctx context.Context, uid string) (*models.User, error) {
	return &models.User{UID: uid, FCMToken: f.tokens[uid]}, nil
}

func (f *fakeUserService) GetRole(ctx context.Context, uid string) string {
	return models.RoleStudent
}

func (f *fakeUserService) SaveProfile(ctx context.Context, u models.User) error {
	return nil
}

func (f *fakeUserService) RegisterFCMToken(ctx context.Context, uid, token string) error {
	f.tokens[uid] = token
	return nil
}

func (f *fakeUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

type fakeNotificationService struct {
	users *fakeUserService
	sent  int
}

func (f *fakeNotificationService) SendToToken(ctx context.Context, token string, payload models.PushPayload) error {
	f.sent++
	return nil
}

func (f *fakeNotificationService) SendTestNotification(ctx context.Context, uid, eventTitle string) error {
	if f.users.tokens[uid] == "" {
		return notification.ErrNoToken
	}
	f.sent++
	return nil
}

// authStub stands in for the Firebase middleware in tests.
func authStub(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUID, uid)
		c.Next()
	}
}

func newNotificationRouter(users *fakeUserService, notifier *fakeNotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewNotificationHandler(users, notifier, utils.GetLogger())
	r := gin.New()
	r.POST("/api/notifications/token", authStub("stu-1"), h.SaveTokenHandler)
	r.POST("/api/notifications/test", authStub("stu-1"), h.TestNotificationHandler)
	return r
}

func TestSaveTokenHandler(t *testing.T) {
	users := &fakeUserService{tokens: map[string]string{}}
	router := newNotificationRouter(users, &fakeNotificationService{users: users})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/token",
		strings.NewReader(`{"token":"device-token-1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Equal(t, "device-token-1", users.tokens["stu-1"])
}

func TestSaveTokenHandlerRequiresToken(t *testing.T) {
	users := &fakeUserService{tokens: map[string]string{}}
	router := newNotificationRouter(users, &fakeNotificationService{users: users})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/token", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTestNotificationHandler(t *testing.T) {
	users := &fakeUserService{tokens: map[string]string{"stu-1": "device-token-1"}}
	notifier := &fakeNotificationService{users: users}
	router := newNotificationRouter(users, notifier)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/test",
		strings.NewReader(`{"eventTitle":"Career Fair"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, notifier.sent)
}

func TestTestNotificationHandlerNoToken(t *testing.T) {
	users := &fakeUserService{tokens: map[string]string{}}
	notifier := &fakeNotificationService{users: users}
	router := newNotificationRouter(users, notifier)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, notifier.sent)
}
