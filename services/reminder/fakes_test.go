package reminder

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	reminderRepo "campushub/database/repository/reminder"
	"campushub/models"
)

// In-memory stand-ins for the Mongo repositories, the push sender and the
// dispatch marker. They mimic the store semantics the service relies on:
// ErrNoDocuments on misses, ErrDuplicateReminder on (user,event) collisions.

type fakeReminderRepo struct {
	mu        sync.Mutex
	reminders map[string]models.Reminder
	nextID    int
	failGet   bool
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: make(map[string]models.Reminder)}
}

func (f *fakeReminderRepo) Create(ctx context.Context, rem models.Reminder) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.reminders {
		if existing.UserID == rem.UserID && existing.EventID == rem.EventID {
			return "", reminderRepo.ErrDuplicateReminder
		}
	}
	if rem.ID == "" {
		f.nextID++
		rem.ID = fmt.Sprintf("rem-%d", f.nextID)
	}
	rem.CreatedAt = time.Now()
	f.reminders[rem.ID] = rem
	return rem.ID, nil
}

func (f *fakeReminderRepo) UpdateOffset(ctx context.Context, id, offset string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rem, ok := f.reminders[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	rem.ReminderTime = offset
	rem.UpdatedAt = time.Now()
	f.reminders[id] = rem
	return nil
}

func (f *fakeReminderRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reminders[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.reminders, id)
	return nil
}

func (f *fakeReminderRepo) GetByID(ctx context.Context, id string) (*models.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rem, ok := f.reminders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &rem, nil
}

func (f *fakeReminderRepo) GetByUser(ctx context.Context, userID string) ([]models.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Reminder
	for _, rem := range f.reminders {
		if rem.UserID == userID {
			out = append(out, rem)
		}
	}
	sortReminders(out)
	return out, nil
}

func (f *fakeReminderRepo) GetAll(ctx context.Context) ([]models.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return nil, mongo.ErrClientDisconnected
	}
	out := make([]models.Reminder, 0, len(f.reminders))
	for _, rem := range f.reminders {
		out = append(out, rem)
	}
	sortReminders(out)
	return out, nil
}

func sortReminders(rems []models.Reminder) {
	sort.Slice(rems, func(i, j int) bool { return rems[i].ID < rems[j].ID })
}

type fakeEventRepo struct {
	events  map[string]models.Event
	failGet bool
}

func newFakeEventRepo(events ...models.Event) *fakeEventRepo {
	m := make(map[string]models.Event, len(events))
	for _, ev := range events {
		m[ev.ID] = ev
	}
	return &fakeEventRepo{events: m}
}

func (f *fakeEventRepo) Create(ctx context.Context, ev models.Event) (string, error) {
	f.events[ev.ID] = ev
	return ev.ID, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if _, ok := f.events[id]; !ok {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	ev, ok := f.events[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &ev, nil
}

func (f *fakeEventRepo) GetAll(ctx context.Context) ([]models.Event, error) {
	if f.failGet {
		return nil, mongo.ErrClientDisconnected
	}
	out := make([]models.Event, 0, len(f.events))
	for _, ev := range f.events {
		out = append(out, ev)
	}
	return out, nil
}

func (f *fakeEventRepo) GetByDepartment(ctx context.Context, department string) ([]models.Event, error) {
	var out []models.Event
	for _, ev := range f.events {
		if ev.Department == department {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	m := make(map[string]models.User, len(users))
	for _, u := range users {
		m[u.UID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, uid string) (*models.User, error) {
	u, ok := f.users[uid]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &u, nil
}

func (f *fakeUserRepo) Upsert(ctx context.Context, u models.User) error {
	f.users[u.UID] = u
	return nil
}

func (f *fakeUserRepo) SetFCMToken(ctx context.Context, uid, token string) error {
	u := f.users[uid]
	u.UID = uid
	u.FCMToken = token
	f.users[uid] = u
	return nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type sentPush struct {
	token   string
	payload models.PushPayload
}

type fakeNotifier struct {
	sent      []sentPush
	failToken string
}

func (f *fakeNotifier) SendToToken(ctx context.Context, token string, payload models.PushPayload) error {
	if token == f.failToken && token != "" {
		return context.DeadlineExceeded
	}
	f.sent = append(f.sent, sentPush{token: token, payload: payload})
	return nil
}

func (f *fakeNotifier) SendTestNotification(ctx context.Context, uid, eventTitle string) error {
	return nil
}

type fakeMarker struct {
	marked map[string]bool
	fail   bool
}

func newFakeMarker() *fakeMarker {
	return &fakeMarker{marked: make(map[string]bool)}
}

func (f *fakeMarker) MarkIfFirst(ctx context.Context, reminderID string, target time.Time) (bool, error) {
	if f.fail {
		return false, context.DeadlineExceeded
	}
	key := reminderID + target.Truncate(dispatchWindow).String()
	if f.marked[key] {
		return false, nil
	}
	f.marked[key] = true
	return true, nil
}
