package entities

import "time"

// User represents a registered account. Authentication is mock-only,
// so the password is held as entered rather than hashed.
type User struct {
	ID        string
	Email     string
	Username  string
	Password  string
	Avatar    string
	CreatedAt time.Time
}
