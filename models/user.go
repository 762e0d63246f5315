package models

import "time"

// Roles assigned to authenticated users.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User mirrors the identity provider's account plus app-level fields. The
// FCM token is registered opportunistically when the client enables
// notifications; it may be absent, in which case push delivery is a no-op
// for that user.
type User struct {
	UID        string    `bson:"uid" json:"uid"`
	Email      string    `bson:"email" json:"email"`
	Role       string    `bson:"role" json:"role"`
	FCMToken   string    `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	Department string    `bson:"department,omitempty" json:"department,omitempty"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
