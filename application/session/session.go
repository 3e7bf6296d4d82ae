package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/taskora/client-go/constant"
	"github.com/taskora/client-go/model"
	"github.com/taskora/client-go/repository/store"
	"github.com/taskora/client-go/thirdparty/backendapi"
	"github.com/taskora/client-go/utils/errors"
	"github.com/taskora/client-go/utils/logger"
	"github.com/taskora/client-go/utils/notify"
	"go.uber.org/zap"
)

// SessionApp is the single source of truth for who is logged in and with what
// privileges. Route guards and the chat client are read-only consumers of its
// state; only these operations mutate it.
type SessionApp interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, req *model.LoginRequest) error
	Logout(ctx context.Context)
	Register(ctx context.Context, req *model.RegisterRequest) (*model.Identity, error)
	UpdateProfile(ctx context.Context, about string) error
	CheckAndFetchProfile(ctx context.Context)
	Snapshot() model.SessionState
}

type sessionAppImpl struct {
	mu       sync.RWMutex
	state    model.SessionState
	api      backendapi.Client
	store    store.SessionStore
	notifier notify.Notifier
}

func NewSessionApp(api backendapi.Client, sessionStore store.SessionStore, notifier notify.Notifier) SessionApp {
	return &sessionAppImpl{
		state:    model.SessionState{Role: constant.DefaultRole},
		api:      api,
		store:    sessionStore,
		notifier: notifier,
	}
}

// Restore rehydrates the session from durable storage. Both keys must be
// present; a persisted JWT that is already expired is discarded rather than
// restored as a dead session.
func (s *sessionAppImpl) Restore(ctx context.Context) {
	token, identity, err := s.store.Load(ctx)
	if err != nil {
		logger.Warn("[Restore] err store.Load", zap.String("error", err.Error()))
		return
	}
	if token == "" || identity == nil {
		return
	}
	if tokenExpired(token) {
		logger.Info("[Restore] stored token expired, discarding session")
		if err := s.store.Clear(ctx); err != nil {
			logger.Warn("[Restore] err store.Clear", zap.String("error", err.Error()))
		}
		return
	}

	role := constant.RoleFromID(identity.RoleID)

	s.mu.Lock()
	s.state.Identity = identity
	s.state.Token = token
	s.state.Role = role
	s.mu.Unlock()

	if role == constant.RoleProvider {
		s.CheckAndFetchProfile(ctx)
	}
}

func (s *sessionAppImpl) Login(ctx context.Context, req *model.LoginRequest) error {
	s.mu.Lock()
	if s.state.Loading {
		s.mu.Unlock()
		return errors.SetCustomError(constant.ErrLoginInFlight)
	}
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()

	// loading must clear on every exit path
	defer func() {
		s.mu.Lock()
		s.state.Loading = false
		s.mu.Unlock()
	}()

	res, err := s.api.Login(ctx, req.Email, req.Password)
	if err != nil {
		msg := backendapi.ErrorMessage(err, constant.ErrorTypeMessage[constant.ErrInvalidCredentials])
		s.mu.Lock()
		s.state.Error = msg
		s.mu.Unlock()
		return errors.SetCustomErrorWithMessage(constant.ErrInvalidCredentials, msg)
	}

	identity := res.Identity
	role := constant.RoleFromID(identity.RoleID)

	s.mu.Lock()
	s.state.Identity = &identity
	s.state.Token = res.Token
	s.state.Role = role
	s.state.Error = ""
	s.mu.Unlock()

	// persistence failure does not undo an otherwise successful login
	if err := s.store.Save(ctx, res.Token, &identity); err != nil {
		logger.Warn("[Login] err store.Save", zap.String("error", err.Error()))
	}

	if role == constant.RoleProvider {
		s.CheckAndFetchProfile(ctx)
	}
	return nil
}

// Logout clears the session and both persisted keys. No network call.
func (s *sessionAppImpl) Logout(ctx context.Context) {
	s.mu.Lock()
	s.state = model.SessionState{Role: constant.DefaultRole}
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		logger.Warn("[Logout] err store.Clear", zap.String("error", err.Error()))
	}
}

func (s *sessionAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.Identity, error) {
	identity, err := s.api.Register(ctx, req)
	if err != nil {
		msg := backendapi.ErrorMessage(err, constant.ErrorTypeMessage[constant.ErrInvalidRequest])
		return nil, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, msg)
	}
	return identity, nil
}

// UpdateProfile upserts the provider's "about" text: PUT when a profile is
// already loaded, POST otherwise. Outcomes are reported through the
// notification channel rather than the session error field.
func (s *sessionAppImpl) UpdateProfile(ctx context.Context, about string) error {
	snap := s.Snapshot()
	if !snap.IsAuthenticated() || snap.Identity == nil {
		s.notifier.Error("you must be logged in to update your profile")
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	var (
		profile *model.Profile
		err     error
	)
	if snap.Profile != nil {
		profile, err = s.api.UpdateProfile(ctx, snap.Token, snap.Profile.ID, snap.Identity.ID, about)
	} else {
		profile, err = s.api.CreateProfile(ctx, snap.Token, snap.Identity.ID, about)
	}
	if err != nil {
		msg := backendapi.ErrorMessage(err, "could not save profile")
		logger.Error("[UpdateProfile] err save profile", zap.String("error", err.Error()))
		s.notifier.Error(msg)
		return errors.SetCustomErrorWithMessage(constant.ErrInternal, msg)
	}

	s.mu.Lock()
	s.state.Profile = profile
	s.state.HasProfile = true
	s.mu.Unlock()

	s.notifier.Success("profile saved")
	return nil
}

// CheckAndFetchProfile loads the provider profile for the current identity.
// Any failure, including not-found, resolves to the empty state: a missing
// profile is expected for a freshly registered provider.
func (s *sessionAppImpl) CheckAndFetchProfile(ctx context.Context) {
	snap := s.Snapshot()
	if !snap.IsAuthenticated() || snap.Identity == nil {
		return
	}

	profile, err := s.api.GetProfile(ctx, snap.Token, snap.Identity.ID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if !backendapi.IsNotFound(err) {
			logger.Debug("[CheckAndFetchProfile] fetch failed", zap.String("error", err.Error()))
		}
		s.state.Profile = nil
		s.state.HasProfile = false
		return
	}
	s.state.Profile = profile
	s.state.HasProfile = profile.About != ""
}

// Snapshot returns a copy of the current state safe for concurrent readers.
func (s *sessionAppImpl) Snapshot() model.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.state
	if s.state.Identity != nil {
		identity := *s.state.Identity
		snap.Identity = &identity
	}
	if s.state.Profile != nil {
		profile := *s.state.Profile
		snap.Profile = &profile
	}
	return snap
}

// tokenExpired inspects a bearer token's exp claim without verifying the
// signature. Tokens that are not JWTs are treated as opaque and kept.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
