package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campushub/models"
)

var eventStart = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newDispatchService(rems []models.Reminder, events []models.Event, users []models.User) (*DefaultReminderService, *fakeReminderRepo, *fakeNotifier, *fakeMarker) {
	repo := newFakeReminderRepo()
	for _, rem := range rems {
		repo.reminders[rem.ID] = rem
	}
	notifier := &fakeNotifier{}
	marker := newFakeMarker()
	svc := &DefaultReminderService{
		Repo:     repo,
		Events:   newFakeEventRepo(events...),
		Users:    newFakeUserRepo(users...),
		Notifier: notifier,
		Marker:   marker,
	}
	return svc, repo, notifier, marker
}

func setNow(t *testing.T, now time.Time) {
	t.Helper()
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = time.Now })
}

func TestDispatchDueReminder(t *testing.T) {
	svc, _, notifier, _ := newDispatchService(
		[]models.Reminder{{ID: "rem-1", UserID: "stu-1", EventID: "ev-1", ReminderTime: "1 day"}},
		[]models.Event{{ID: "ev-1", Title: "Career Fair", Date: eventStart}},
		[]models.User{{UID: "stu-1", Role: models.RoleStudent, FCMToken: "tok-1"}},
	)
	// Target fire time is 2024-05-31T10:00:00; 30 seconds past it is inside
	// the one-minute window.
	setNow(t, time.Date(2024, 5, 31, 10, 0, 30, 0, time.UTC))

	stats, err := svc.DispatchDueReminders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Sent)

	if assert.Len(t, notifier.sent, 1) {
		push := notifier.sent[0]
		assert.Equal(t, "tok-1", push.token)
		assert.Equal(t, "Reminder: Career Fair", push.payload.Title)
		assert.Equal(t, "Your event starts 1 day!", push.payload.Body)
		assert.Equal(t, "ev-1", push.payload.Data["eventId"])
		assert.Equal(t, "/student?event=ev-1", push.payload.Data["deeplink"])
	}
}

func TestDispatchNotYetDue(t *testing.T) {
	svc, _, notifier, _ := newDispatchService(
		[]models.Reminder{{ID: "rem-1", UserID: "stu-1", EventID: "ev-1", ReminderTime: "1 day"}},
		[]models.Event{{ID: "ev-1", Title: "Career Fair", Date: eventStart}},
		[]models.User{{UID: "stu-1", FCMToken: "tok-1"}},
	)
	// Two minutes before the target fire time.
	setNow(t, time.Date(2024, 5, 31, 9, 58, 0, 0, time.UTC))

	stats, err := svc.DispatchDueReminders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Sent)
	assert.Empty(t, notifier.sent)
}

func TestDispatchSkipsMissingEvent(t *testing.T) {
	svc, _, notifier, _ := newDispatchService(
		[]models.Reminder{{ID: "rem-1", UserID: "stu-1", EventID: "gone", ReminderTime: "1 day"}},
		nil,
		[]models.User{{UID: "stu-1", FCMToken: "tok-1"}},
	)
	setNow(t, time.Date(2024, 5, 31, 10, 0, 30, 0, time.UTC))

	stats, err := svc.DispatchDueReminders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.MissingEvent)
	assert.Equal(t, 0, stats.Sent)
	assert.Empty(t, notifier.sent)
}

func TestDispatchSkipsMissingToken(t *testing.T) {
	svc, _, notifier, _ := newDispatchService(
		[]models.Reminder{{ID: "rem-1", UserID: "stu-1", EventID: "ev-1", ReminderTime: "1 day"}},
		[]models.Event{{ID: "ev-1", Title: "Career Fair", Date: eventStart}},
		[]models.User{{UID: "stu-1"}}, // no token registered
	)
	setNow(t, time.Date(2024, 5, 31, 10, 0, 30, 0, time.UTC))

	stats, err := svc.DispatchDueReminders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.MissingToken)
	assert.Equal(t, 0, stats.Sent)
	assert.Empty(t, notifier.sent)
}

func TestDispatchMarkerSuppressesSecondSend(t *testing.T) {
	svc, _, notifier, _ := newDispatchService(
		[]models.Reminder{{ID: "rem-1", UserID: "stu-1", EventID: "ev-1", ReminderTime: "1 day"}},
		[]models.Event{{ID: "ev-1", Title: "Career Fair", Date: eventStart}},
		[]models.User{{UID: "stu-1", FCMToken: "tok-1"}},
	)
	setNow(t, time.Date(2024, 5, 31, 10, 0, 10, 0, time.UTC))

	stats, err := svc.DispatchDueReminders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Sent)

	// An overlapping run inside the same window sees the marker and skips.
	setNow(t, time.Date(2024, 5, 31, 10, 0, 40, 0, time.UTC))
	stats, err = svc.DispatchDueReminders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Sent)
	assert.Equal(t, 1, stats.AlreadySent)
	assert.Len(t, notifier.sent, 1)
}

func TestDispatchMarkerFailureStillSends(t *testing.T) {
	svc, _, notifier, marker := newDispatchService(
		[]models.Reminder{{ID: "rem-1", UserID: "stu-1", EventID: "ev-1", ReminderTime: "1 day"}},
		[]models.Event{{ID: "ev-1", Title: "Career Fair", Date: eventStart}},
		[]models.User{{UID: "stu-1", FCMToken: "tok-1"}},
	)
	marker.fail = true
	setNow(t, time.Date(2024, 5, 31, 10, 0, 10, 0, time.UTC))

	stats, err := svc.DispatchDueReminders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Sent)
	assert.Len(t, notifier.sent, 1)
}

func TestDispatchDeliveryFailureDoesNotAbortBatch(t *testing.T) {
	svc, _, notifier, _ := newDispatchService(
		[]models.Reminder{
			{ID: "rem-1", UserID: "stu-1", EventID: "ev-1", ReminderTime: "1 day"},
			{ID: "rem-2", UserID: "stu-2", EventID: "ev-1", ReminderTime: "1 day"},
		},
		[]models.Event{{ID: "ev-1", Title: "Career Fair", Date: eventStart}},
		[]models.User{
			{UID: "stu-1", FCMToken: "tok-bad"},
			{UID: "stu-2", FCMToken: "tok-good"},
		},
	)
	notifier.failToken = "tok-bad"
	setNow(t, time.Date(2024, 5, 31, 10, 0, 10, 0, time.UTC))

	stats, err := svc.DispatchDueReminders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Failures)
	assert.Equal(t, 1, stats.Sent)
	if assert.Len(t, notifier.sent, 1) {
		assert.Equal(t, "tok-good", notifier.sent[0].token)
	}
}

func TestDispatchFallbackOffsetCounted(t *testing.T) {
	// "whenever" is unparseable, so the target is event start minus the
	// 60-minute fallback.
	svc, _, notifier, _ := newDispatchService(
		[]models.Reminder{{ID: "rem-1", UserID: "stu-1", EventID: "ev-1", ReminderTime: "whenever"}},
		[]models.Event{{ID: "ev-1", Title: "Career Fair", Date: eventStart}},
		[]models.User{{UID: "stu-1", FCMToken: "tok-1"}},
	)
	setNow(t, time.Date(2024, 6, 1, 9, 0, 20, 0, time.UTC))

	stats, err := svc.DispatchDueReminders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Fallbacks)
	assert.Equal(t, 1, stats.Sent)
	assert.Len(t, notifier.sent, 1)
}

func TestDispatchAbortsOnStoreReadFailure(t *testing.T) {
	svc, repo, notifier, _ := newDispatchService(nil, nil, nil)
	repo.failGet = true
	setNow(t, time.Date(2024, 5, 31, 10, 0, 10, 0, time.UTC))

	_, err := svc.DispatchDueReminders(context.Background())
	assert.Error(t, err)
	assert.Empty(t, notifier.sent)
}
