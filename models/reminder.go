package models

import "time"

// Reminder is a student's request to be notified some offset before an
// event's start. ReminderTime is a duration string such as "1 day" or
// "30 minutes"; the reminder store accepts it verbatim and the dispatcher
// applies its fallback at matching time.
type Reminder struct {
	ID           string    `bson:"id" json:"id"`
	UserID       string    `bson:"userId" json:"userId"`
	EventID      string    `bson:"eventId" json:"eventId"`
	ReminderTime string    `bson:"reminderTime" json:"reminderTime"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
