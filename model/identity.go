package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/taskora/client-go/constant"
)

// Identity is the authenticated user as returned by the backend.
type Identity struct {
	ID        uint64     `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Status    string     `json:"status"`
	RoleID    int        `json:"role_id"`
	RegionID  uint64     `json:"region_id"`
	Address   string     `json:"address"`
	City      string     `json:"city"`
	Image     string     `json:"image,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// SessionState is the session manager's observable state. An identity exists
// if and only if the session is authenticated.
type SessionState struct {
	Identity   *Identity     `json:"identity"`
	Token      string        `json:"-"`
	Role       constant.Role `json:"role"`
	Loading    bool          `json:"loading"`
	Error      string        `json:"error,omitempty"`
	Profile    *Profile      `json:"profile,omitempty"`
	HasProfile bool          `json:"has_profile"`
}

// IsAuthenticated reports whether a bearer token is present.
func (s SessionState) IsAuthenticated() bool {
	return s.Token != ""
}

// LoginRequest for the unauthenticated login endpoint
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest for user sign-up
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	RegionID  uint64 `json:"region_id"`
}

// LoginResult is the login endpoint's response. The backend returns the
// identity as the first element of an array merged into the token object:
// {"token": "...", "0": {...identity...}}.
type LoginResult struct {
	Token    string
	Identity Identity
}

func (r *LoginResult) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	tokenRaw, ok := raw["token"]
	if !ok {
		return fmt.Errorf("login response missing token")
	}
	if err := json.Unmarshal(tokenRaw, &r.Token); err != nil {
		return fmt.Errorf("login response token: %w", err)
	}

	identityRaw, ok := raw["0"]
	if !ok {
		return fmt.Errorf("login response missing identity")
	}
	if err := json.Unmarshal(identityRaw, &r.Identity); err != nil {
		return fmt.Errorf("login response identity: %w", err)
	}

	return nil
}
