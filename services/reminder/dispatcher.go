package reminder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"campushub/models"
	"campushub/utils"
)

// CycleStats summarizes one dispatch cycle. The skip counters make the soft
// joins observable without turning dangling references into errors.
type CycleStats struct {
	Scanned      int
	Sent         int
	MissingEvent int
	MissingToken int
	Fallbacks    int
	AlreadySent  int
	Failures     int
}

// DispatchDueReminders runs one matching cycle: scan every reminder, resolve
// its event, and push a notification for each reminder whose target fire
// time (event start minus offset) falls within the current polling window.
// Per-item failures are logged and skipped; only a failure to read the
// stores aborts the cycle, and the next scheduled run is the retry.
func (s *DefaultReminderService) DispatchDueReminders(ctx context.Context) (CycleStats, error) {
	logger := utils.GetLogger()
	var stats CycleStats

	reminders, err := s.Repo.GetAll(ctx)
	if err != nil {
		return stats, fmt.Errorf("dispatch cycle: failed to load reminders: %w", err)
	}
	events, err := s.Events.GetAll(ctx)
	if err != nil {
		return stats, fmt.Errorf("dispatch cycle: failed to load events: %w", err)
	}

	eventsByID := make(map[string]models.Event, len(events))
	for _, ev := range events {
		eventsByID[ev.ID] = ev
	}

	now := nowFunc()
	for _, rem := range reminders {
		stats.Scanned++

		ev, ok := eventsByID[rem.EventID]
		if !ok || ev.Date.IsZero() {
			stats.MissingEvent++
			logger.Warn("dispatch: event not resolvable, skipping reminder",
				zap.String("reminderId", rem.ID),
				zap.String("eventId", rem.EventID))
			continue
		}

		offsetMinutes, fellBack := ParseOffset(rem.ReminderTime)
		if fellBack {
			stats.Fallbacks++
			logger.Warn("dispatch: unparseable reminder offset, using fallback",
				zap.String("reminderId", rem.ID),
				zap.String("rawOffset", rem.ReminderTime))
		}

		target := ev.Date.Add(-minutes(offsetMinutes))
		diff := now.Sub(target)
		if diff < 0 {
			diff = -diff
		}
		if diff >= dispatchWindow {
			continue
		}

		first, err := s.Marker.MarkIfFirst(ctx, rem.ID, target)
		if err != nil {
			// Marker store unreachable: fall back to the base at-least-once
			// semantic rather than dropping the occurrence.
			logger.Error("dispatch: marker check failed, sending anyway",
				zap.String("reminderId", rem.ID), zap.Error(err))
		} else if !first {
			stats.AlreadySent++
			continue
		}

		u, err := s.Users.GetByID(ctx, rem.UserID)
		if err != nil || u.FCMToken == "" {
			stats.MissingToken++
			logger.Debug("dispatch: no device token, skipping",
				zap.String("reminderId", rem.ID),
				zap.String("userId", rem.UserID))
			continue
		}

		payload := models.PushPayload{
			Title: fmt.Sprintf("Reminder: %s", ev.Title),
			Body:  fmt.Sprintf("Your event starts %s!", rem.ReminderTime),
			Data: map[string]string{
				"eventId":    ev.ID,
				"eventTitle": ev.Title,
				"deeplink":   fmt.Sprintf("/student?event=%s", ev.ID),
			},
		}
		if err := s.Notifier.SendToToken(ctx, u.FCMToken, payload); err != nil {
			stats.Failures++
			logger.Error("dispatch: delivery failed",
				zap.String("reminderId", rem.ID),
				zap.String("eventId", ev.ID),
				zap.Error(err))
			continue
		}
		stats.Sent++
	}

	logger.Info("dispatch cycle complete",
		zap.Int("scanned", stats.Scanned),
		zap.Int("sent", stats.Sent),
		zap.Int("missingEvent", stats.MissingEvent),
		zap.Int("missingToken", stats.MissingToken),
		zap.Int("fallbacks", stats.Fallbacks),
		zap.Int("alreadySent", stats.AlreadySent),
		zap.Int("failures", stats.Failures))
	return stats, nil
}
