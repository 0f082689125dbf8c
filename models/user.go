package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID string).
	ID string `json:"id" bson:"_id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email" bson:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name" bson:"name"`

	// Password carries the plain-text password only on the way in
	// (registration and login requests). It is never persisted.
	Password string `json:"password,omitempty" bson:"-"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-" bson:"passwordHash"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// TableName returns the name of the database table (or collection)
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the public projection of the user returned by the auth
// endpoints.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// UserSummary is the public view of a user.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Identity is the authenticated caller resolved from a bearer credential.
// Every model operation is scoped to Identity.UserID.
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}
