package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campushub/models"
)

func TestCleanupRemovesDanglingAndPastReminders(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo, _, _ := newDispatchService(
		[]models.Reminder{
			{ID: "rem-dangling", UserID: "stu-1", EventID: "deleted-event", ReminderTime: "1 day"},
			{ID: "rem-past", UserID: "stu-1", EventID: "ev-past", ReminderTime: "30 minutes"},
			{ID: "rem-live", UserID: "stu-2", EventID: "ev-future", ReminderTime: "1 day"},
		},
		[]models.Event{
			{ID: "ev-past", Title: "Orientation", Date: now.Add(-48 * time.Hour)},
			{ID: "ev-future", Title: "Hackathon", Date: now.Add(72 * time.Hour)},
		},
		nil,
	)
	setNow(t, now)

	stats, err := svc.CleanupStaleReminders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.Scanned)
	assert.Equal(t, 2, stats.Deleted)

	remaining, err := repo.GetAll(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, remaining, 1) {
		assert.Equal(t, "rem-live", remaining[0].ID)
	}
}

func TestCleanupSecondRunIsNoOp(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, _, _, _ := newDispatchService(
		[]models.Reminder{
			{ID: "rem-dangling", UserID: "stu-1", EventID: "deleted-event", ReminderTime: "1 day"},
			{ID: "rem-live", UserID: "stu-2", EventID: "ev-future", ReminderTime: "1 day"},
		},
		[]models.Event{
			{ID: "ev-future", Title: "Hackathon", Date: now.Add(72 * time.Hour)},
		},
		nil,
	)
	setNow(t, now)

	first, err := svc.CleanupStaleReminders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Deleted)

	second, err := svc.CleanupStaleReminders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, second.Deleted)
	assert.Equal(t, 1, second.Scanned)
}

func TestCleanupKeepsPastOffsetOnFutureEvent(t *testing.T) {
	// The offset value never matters to cleanup, only the event instant.
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo, _, _ := newDispatchService(
		[]models.Reminder{
			{ID: "rem-1", UserID: "stu-1", EventID: "ev-future", ReminderTime: "malformed offset"},
		},
		[]models.Event{
			{ID: "ev-future", Title: "Hackathon", Date: now.Add(time.Hour)},
		},
		nil,
	)
	setNow(t, now)

	stats, err := svc.CleanupStaleReminders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Deleted)

	remaining, err := repo.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestCleanupAbortsOnStoreReadFailure(t *testing.T) {
	svc, repo, _, _ := newDispatchService(nil, nil, nil)
	repo.failGet = true
	setNow(t, time.Now())

	_, err := svc.CleanupStaleReminders(context.Background())
	assert.Error(t, err)
}
