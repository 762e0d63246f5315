package tasks

import (
	"github.com/hibiken/asynq"
)

// Task type names for the scheduled reminder jobs.
const (
	TypeDispatchReminders = "reminder:dispatch"
	TypeCleanupReminders  = "reminder:cleanup"
)

// NewDispatchTask builds the per-minute matching task. It carries no
// payload; each run re-scans the stores.
func NewDispatchTask() *asynq.Task {
	return asynq.NewTask(TypeDispatchReminders, nil)
}

// NewCleanupTask builds the daily stale-reminder sweep task.
func NewCleanupTask() *asynq.Task {
	return asynq.NewTask(TypeCleanupReminders, nil)
}
