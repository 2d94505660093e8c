package domain

import "time"

// Operator is the single staff account allowed into the admin dashboard.
// There is no user table; the account is fixed by configuration.
type Operator struct {
	Email        string
	PasswordHash string
}

// Session carries metadata for an issued session token.
type Session struct {
	Token     string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
