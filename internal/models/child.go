package models

import "time"

// Child represents a child profile in the system
type Child struct {
	ID        string   `json:"id"`
	ParentID  int64    `json:"-"`
	Name      string   `json:"name"`
	AgeGroup  AgeGroup `json:"ageGroup"`
	CreatedAt int64    `json:"createdAt"` // epoch milliseconds
}

// Parent is an account that owns child profiles
type Parent struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}

// Session is an authenticated parent session
type Session struct {
	ID        string
	ParentID  int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session has passed its expiry time
func (s Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
