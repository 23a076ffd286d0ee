package domain

import "time"

// Account represents a person who can authenticate against the backoffice.
// Emails are stored lowercase and matched case-insensitively.
type Account struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string // argon2id PHC string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PasswordReset is a single-use credential-recovery token. Only the SHA-256
// fingerprint of the token is stored.
type PasswordReset struct {
	ID        string
	AccountID string
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}
