// Package staff manages staff accounts and issues the access tokens that
// guard the mutating endpoints.
package staff

import "time"

type Staff struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
