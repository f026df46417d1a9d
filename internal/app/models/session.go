package models

import "time"

// Session is the portal's server-side record of a signed-in user. The
// backend access token never leaves redis.
type Session struct {
	SessionID   string    `json:"session_id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	AccessToken string    `json:"access_token"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// LoginResult is the outcome of a sign-in attempt. A failed attempt carries
// only Message.
type LoginResult struct {
	Session      *Session
	SessionToken string
	Message      string
}

func (r *LoginResult) Succeeded() bool {
	return r.Session != nil
}
