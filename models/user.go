package models

import "time"

// User represents a registered account. It contains identity attributes and
// credential-related data. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// System-assigned on registration and immutable afterwards.
	UserID int64 `json:"id"`

	// Email is the globally unique login key of the account.
	Email string `json:"email"`

	// PasswordHash stores the user's password representation.
	// This value MUST be a derived value (salted KDF output), never
	// plaintext. It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
