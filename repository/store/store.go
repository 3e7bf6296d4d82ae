package store

import (
	"context"

	"github.com/taskora/client-go/model"
)

// Storage keys match the SPA's durable entries: both are written together on
// login and removed together on logout.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// SessionStore persists the bearer token and identity across restarts. It is
// written only by login/logout and read only during initialization.
type SessionStore interface {
	Save(ctx context.Context, token string, identity *model.Identity) error
	Load(ctx context.Context) (string, *model.Identity, error)
	Clear(ctx context.Context) error
}
