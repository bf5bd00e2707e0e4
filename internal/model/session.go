package model

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated seller session; rows are created by the
// login flow, which lives outside this service
type Session struct {
	Token     uuid.UUID `json:"token"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired checks if the session is past its expiry
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
