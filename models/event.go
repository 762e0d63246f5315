package models

import "time"

// Event is a campus announcement created by an administrator. Date is the
// authoritative start instant used for all reminder math; Time is a
// display-only string rendered by the client.
type Event struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Department  string    `bson:"department" json:"department"`
	Date        time.Time `bson:"date" json:"date"`
	Time        string    `bson:"time" json:"time"`
	Location    string    `bson:"location" json:"location"`
	FBLink      string    `bson:"fbLink,omitempty" json:"fbLink,omitempty"`
	CreatedBy   string    `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
