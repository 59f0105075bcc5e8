// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account identified by email. PasswordDigest is the output of
// the configured password hasher, never the plaintext.
type User struct {
	ID             string
	Email          string
	PasswordDigest string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
