package reminder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"campushub/models"
	"campushub/utils"
)

// CleanupStats summarizes one cleanup sweep.
type CleanupStats struct {
	Scanned  int
	Deleted  int
	Failures int
}

// CleanupStaleReminders deletes reminders whose event no longer exists or
// has already started. Runs on the daily schedule; deleting nothing on an
// unchanged store makes a repeat run a no-op.
func (s *DefaultReminderService) CleanupStaleReminders(ctx context.Context) (CleanupStats, error) {
	logger := utils.GetLogger()
	var stats CleanupStats

	reminders, err := s.Repo.GetAll(ctx)
	if err != nil {
		return stats, fmt.Errorf("cleanup cycle: failed to load reminders: %w", err)
	}
	events, err := s.Events.GetAll(ctx)
	if err != nil {
		return stats, fmt.Errorf("cleanup cycle: failed to load events: %w", err)
	}

	eventsByID := make(map[string]models.Event, len(events))
	for _, ev := range events {
		eventsByID[ev.ID] = ev
	}

	now := nowFunc()
	for _, rem := range reminders {
		stats.Scanned++

		ev, ok := eventsByID[rem.EventID]
		if ok && !ev.Date.Before(now) {
			continue
		}

		if err := s.Repo.Delete(ctx, rem.ID); err != nil {
			stats.Failures++
			logger.Error("cleanup: failed to delete reminder",
				zap.String("reminderId", rem.ID),
				zap.String("eventId", rem.EventID),
				zap.Error(err))
			continue
		}
		stats.Deleted++
	}

	logger.Info("cleanup cycle complete",
		zap.Int("scanned", stats.Scanned),
		zap.Int("deleted", stats.Deleted),
		zap.Int("failures", stats.Failures))
	return stats, nil
}
