package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/taskora/client-go/application/chat"
	"github.com/taskora/client-go/constant"
	"github.com/taskora/client-go/model"
	"github.com/taskora/client-go/transport"
)

type stubSessionApp struct {
	state     model.SessionState
	loginErr  error
	loggedOut int32
}

func (s *stubSessionApp) Restore(ctx context.Context) {}

func (s *stubSessionApp) Login(ctx context.Context, req *model.LoginRequest) error {
	if s.loginErr != nil {
		return s.loginErr
	}
	s.state = model.SessionState{
		Token:    "tok1",
		Identity: &model.Identity{ID: 7, Email: req.Email, RoleID: 3},
		Role:     constant.RoleClient,
	}
	return nil
}

func (s *stubSessionApp) Logout(ctx context.Context) {
	atomic.AddInt32(&s.loggedOut, 1)
	s.state = model.SessionState{Role: constant.DefaultRole}
}

func (s *stubSessionApp) Register(ctx context.Context, req *model.RegisterRequest) (*model.Identity, error) {
	return &model.Identity{ID: 8, Email: req.Email}, nil
}

func (s *stubSessionApp) UpdateProfile(ctx context.Context, about string) error { return nil }
func (s *stubSessionApp) CheckAndFetchProfile(ctx context.Context)             {}
func (s *stubSessionApp) Snapshot() model.SessionState                         { return s.state }

type stubChatApp struct {
	connected int32
	closed    int32
}

func (c *stubChatApp) Connect(ctx context.Context) { atomic.AddInt32(&c.connected, 1) }
func (c *stubChatApp) Close()                      { atomic.AddInt32(&c.closed, 1) }

func (c *stubChatApp) FetchConversations(ctx context.Context) error                    { return nil }
func (c *stubChatApp) StartConversation(ctx context.Context, otherUserID uint64) error { return nil }
func (c *stubChatApp) SetActiveConversation(ctx context.Context, user *model.Identity) {}
func (c *stubChatApp) FetchMessages(ctx context.Context, counterpartID uint64) error   { return nil }
func (c *stubChatApp) SendMessage(ctx context.Context, counterpartID uint64, text string) error {
	return nil
}
func (c *stubChatApp) MarkConversationAsRead(ctx context.Context, conversationID uint64) error {
	return nil
}
func (c *stubChatApp) Snapshot() model.ChatState           { return model.ChatState{} }
func (c *stubChatApp) TransportState() chat.TransportState { return chat.Disconnected }

type stubCatalogApp struct{}

func (stubCatalogApp) ListServices(ctx context.Context) ([]model.Service, error) {
	return []model.Service{}, nil
}
func (stubCatalogApp) ListCategories(ctx context.Context) ([]model.Category, error) {
	return []model.Category{}, nil
}
func (stubCatalogApp) ListRegions(ctx context.Context) ([]model.Region, error) {
	return []model.Region{}, nil
}

func newGateway(state model.SessionState) (*stubSessionApp, *stubChatApp, http.Handler) {
	sessions := &stubSessionApp{state: state}
	chats := &stubChatApp{}
	handler := transport.NewTransport(sessions, chats, stubCatalogApp{})
	return sessions, chats, handler
}

func clientState() model.SessionState {
	return model.SessionState{
		Token:    "tok1",
		Identity: &model.Identity{ID: 7, RoleID: 3},
		Role:     constant.RoleClient,
	}
}

func providerState() model.SessionState {
	return model.SessionState{
		Token:    "tok1",
		Identity: &model.Identity{ID: 7, RoleID: 2},
		Role:     constant.RoleProvider,
	}
}

func TestGuardedRoutes(t *testing.T) {
	tests := []struct {
		name         string
		state        model.SessionState
		method       string
		target       string
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "unauthenticated request redirects to login with destination",
			state:        model.SessionState{},
			method:       http.MethodGet,
			target:       "/chat/conversations",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login?redirect=%2Fchat%2Fconversations",
		},
		{
			name:         "unauthenticated provider route also redirects to login",
			state:        model.SessionState{},
			method:       http.MethodGet,
			target:       "/provider/profile",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login?redirect=%2Fprovider%2Fprofile",
		},
		{
			name:         "wrong role redirects home, not to login",
			state:        clientState(),
			method:       http.MethodGet,
			target:       "/provider/profile",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/",
		},
		{
			name:       "matching role passes through",
			state:      providerState(),
			method:     http.MethodGet,
			target:     "/provider/profile",
			wantStatus: http.StatusOK,
		},
		{
			name:       "any authenticated role can read its session",
			state:      clientState(),
			method:     http.MethodGet,
			target:     "/me/session",
			wantStatus: http.StatusOK,
		},
		{
			name:       "public catalog route needs no session",
			state:      model.SessionState{},
			method:     http.MethodGet,
			target:     "/catalog/services",
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, _, handler := newGateway(tt.state)

			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" {
				if got := rec.Header().Get("Location"); got != tt.wantLocation {
					t.Fatalf("location = %q, want %q", got, tt.wantLocation)
				}
			}
		})
	}
}

func TestSessionHandler_ServesGuardedSnapshot(t *testing.T) {
	_, _, handler := newGateway(clientState())

	req := httptest.NewRequest(http.MethodGet, "/me/session", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var envelope struct {
		Data model.SessionState `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Role != constant.RoleClient {
		t.Fatalf("role = %q, want %q", envelope.Data.Role, constant.RoleClient)
	}
	if envelope.Data.Identity == nil || envelope.Data.Identity.ID != 7 {
		t.Fatalf("identity = %+v, want the guarded session's identity", envelope.Data.Identity)
	}
}

func TestLoginHandler(t *testing.T) {
	t.Run("valid credentials open the session and start the chat transport", func(t *testing.T) {
		_, chats, handler := newGateway(model.SessionState{})

		body := strings.NewReader(`{"email":"a@b.com","password":"secret"}`)
		req := httptest.NewRequest(http.MethodPost, "/login", body)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		var envelope struct {
			Code string             `json:"code"`
			Data model.SessionState `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if envelope.Code != constant.ErrorTypeCode[constant.Successful] {
			t.Fatalf("code = %q, want %q", envelope.Code, constant.ErrorTypeCode[constant.Successful])
		}
		if envelope.Data.Identity == nil || envelope.Data.Identity.Email != "a@b.com" {
			t.Fatalf("identity = %+v, want the logged-in user", envelope.Data.Identity)
		}

		// the transport connect runs off the request goroutine
		deadline := time.Now().Add(time.Second)
		for atomic.LoadInt32(&chats.connected) == 0 {
			if time.Now().After(deadline) {
				t.Fatal("chat transport was never started after login")
			}
			time.Sleep(5 * time.Millisecond)
		}
	})

	t.Run("malformed body is rejected before the backend is involved", func(t *testing.T) {
		_, chats, handler := newGateway(model.SessionState{})

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if atomic.LoadInt32(&chats.connected) != 0 {
			t.Fatal("chat transport must not start on a failed login")
		}
	})

	t.Run("missing email fails validation", func(t *testing.T) {
		_, _, handler := newGateway(model.SessionState{})

		body := strings.NewReader(`{"password":"secret"}`)
		req := httptest.NewRequest(http.MethodPost, "/login", body)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestLogoutHandler(t *testing.T) {
	sessions, chats, handler := newGateway(clientState())

	req := httptest.NewRequest(http.MethodPost, "/me/logout", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if atomic.LoadInt32(&chats.closed) == 0 {
		t.Fatal("chat transport must be torn down on logout")
	}
	if atomic.LoadInt32(&sessions.loggedOut) == 0 {
		t.Fatal("session must be cleared on logout")
	}
	if sessions.Snapshot().IsAuthenticated() {
		t.Fatal("session still authenticated after logout")
	}
}

func TestSendMessageHandler_Validation(t *testing.T) {
	_, _, handler := newGateway(clientState())

	// text present but no recipient
	body := strings.NewReader(`{"text":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat/messages/send", body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
