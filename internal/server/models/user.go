// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a registered account. PasswordHash and PasswordSalt are
// hex-encoded and never leave the server.
type User struct {
	ID           int64
	UserName     string
	PasswordHash string
	PasswordSalt string
	CreatedAt    time.Time
}
