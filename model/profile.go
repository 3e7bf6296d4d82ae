package model

import "time"

// Profile is the provider-only "about" record. At most one per provider.
type Profile struct {
	ID        uint64     `json:"id"`
	UserID    uint64     `json:"user_id"`
	About     string     `json:"about"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ProfileRequest is the body for both profile create and update.
type ProfileRequest struct {
	UserID uint64 `json:"user_id"`
	About  string `json:"about"`
}
