package chat

import (
	"context"
	"sync"
	"time"

	"github.com/taskora/client-go/cmd/config"
	"github.com/taskora/client-go/constant"
	"github.com/taskora/client-go/model"
	"github.com/taskora/client-go/thirdparty/backendapi"
	"github.com/taskora/client-go/utils/errors"
	"github.com/taskora/client-go/utils/logger"
	"go.uber.org/zap"
)

// SessionReader is the chat client's read-only view of the session. The
// session handle is injected explicitly rather than looked up ambiently.
type SessionReader interface {
	Snapshot() model.SessionState
}

// ChatApp maintains a live view of the user's conversations and the active
// conversation's messages over a push-first transport with polling fallback.
type ChatApp interface {
	Connect(ctx context.Context)
	Close()

	FetchConversations(ctx context.Context) error
	StartConversation(ctx context.Context, otherUserID uint64) error
	SetActiveConversation(ctx context.Context, user *model.Identity)
	FetchMessages(ctx context.Context, counterpartID uint64) error
	SendMessage(ctx context.Context, counterpartID uint64, text string) error
	MarkConversationAsRead(ctx context.Context, conversationID uint64) error

	Snapshot() model.ChatState
	TransportState() TransportState
}

type chatAppImpl struct {
	mu           sync.Mutex
	session      SessionReader
	api          backendapi.Client
	dialer       backendapi.EventDialer
	pollInterval time.Duration

	state     model.ChatState
	transport TransportState
	stream    backendapi.EventStream
	pollStop  chan struct{}
	fetchGen  uint64
	closed    bool
}

func NewChatApp(cfg *config.Config, session SessionReader, api backendapi.Client, dialer backendapi.EventDialer) ChatApp {
	return &chatAppImpl{
		session:      session,
		api:          api,
		dialer:       dialer,
		pollInterval: cfg.Chat.PollInterval,
		transport:    Disconnected,
	}
}

// FetchConversations replaces the conversation list wholesale. On failure the
// prior list is left untouched.
func (c *chatAppImpl) FetchConversations(ctx context.Context) error {
	snap := c.session.Snapshot()
	if !snap.IsAuthenticated() {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	conversations, err := c.api.ListConversations(ctx, snap.Token)
	if err != nil {
		msg := backendapi.ErrorMessage(err, "could not load conversations")
		c.mu.Lock()
		c.state.Error = msg
		c.mu.Unlock()
		return errors.SetCustomErrorWithMessage(constant.ErrInternal, msg)
	}

	c.mu.Lock()
	c.state.Conversations = conversations
	c.state.Error = ""
	c.mu.Unlock()
	return nil
}

// StartConversation opens (or re-opens, backend-side) a conversation with the
// given user and prepends it to the list. De-duplication is a backend
// responsibility.
func (c *chatAppImpl) StartConversation(ctx context.Context, otherUserID uint64) error {
	snap := c.session.Snapshot()
	if !snap.IsAuthenticated() {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	conversation, err := c.api.StartConversation(ctx, snap.Token, otherUserID)
	if err != nil {
		msg := backendapi.ErrorMessage(err, "could not start conversation")
		c.mu.Lock()
		c.state.Error = msg
		c.mu.Unlock()
		return errors.SetCustomErrorWithMessage(constant.ErrInternal, msg)
	}

	c.mu.Lock()
	c.state.Conversations = append([]model.Conversation{*conversation}, c.state.Conversations...)
	c.state.Error = ""
	c.mu.Unlock()
	return nil
}

// SetActiveConversation switches the active counterpart and, when one is
// given, fetches its messages. A generation counter makes sure a stale fetch
// from a rapid earlier switch never overwrites the latest one's result.
func (c *chatAppImpl) SetActiveConversation(ctx context.Context, user *model.Identity) {
	c.mu.Lock()
	c.state.Active = user
	c.fetchGen++
	gen := c.fetchGen
	c.mu.Unlock()

	if user == nil {
		return
	}
	if err := c.fetchMessagesGen(ctx, user.ID, gen); err != nil {
		logger.Debug("[SetActiveConversation] fetch messages", zap.String("error", err.Error()))
	}
}

// FetchMessages replaces the message list wholesale with the thread between
// the current user and counterpartID.
func (c *chatAppImpl) FetchMessages(ctx context.Context, counterpartID uint64) error {
	c.mu.Lock()
	gen := c.fetchGen
	c.mu.Unlock()
	return c.fetchMessagesGen(ctx, counterpartID, gen)
}

func (c *chatAppImpl) fetchMessagesGen(ctx context.Context, counterpartID uint64, gen uint64) error {
	snap := c.session.Snapshot()
	if !snap.IsAuthenticated() {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	c.mu.Lock()
	c.state.Loading = true
	c.mu.Unlock()

	messages, err := c.api.ListMessages(ctx, snap.Token, counterpartID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Loading = false
	if gen != c.fetchGen {
		// a newer conversation switch won; drop this result
		return nil
	}
	if err != nil {
		msg := backendapi.ErrorMessage(err, "could not load messages")
		c.state.Error = msg
		return errors.SetCustomErrorWithMessage(constant.ErrInternal, msg)
	}
	c.state.Messages = messages
	c.state.Error = ""
	return nil
}

// SendMessage waits for the backend's canonical record before showing the
// message: no optimistic echo, so a failed send leaves the list untouched.
func (c *chatAppImpl) SendMessage(ctx context.Context, counterpartID uint64, text string) error {
	snap := c.session.Snapshot()
	if !snap.IsAuthenticated() || snap.Identity == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	message, err := c.api.SendMessage(ctx, snap.Token, snap.Identity.ID, counterpartID, text)
	if err != nil {
		msg := backendapi.ErrorMessage(err, "could not send message")
		c.mu.Lock()
		c.state.Error = msg
		c.mu.Unlock()
		return errors.SetCustomErrorWithMessage(constant.ErrInternal, msg)
	}

	c.mu.Lock()
	c.state.Messages = append(c.state.Messages, *message)
	c.state.Error = ""
	c.mu.Unlock()
	return nil
}

// MarkConversationAsRead issues the read receipt. Unread counts are not
// decremented locally; callers re-fetch the conversation list to observe the
// updated count.
func (c *chatAppImpl) MarkConversationAsRead(ctx context.Context, conversationID uint64) error {
	snap := c.session.Snapshot()
	if !snap.IsAuthenticated() {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	if _, err := c.api.MarkConversationRead(ctx, snap.Token, conversationID); err != nil {
		msg := backendapi.ErrorMessage(err, "could not mark conversation read")
		c.mu.Lock()
		c.state.Error = msg
		c.mu.Unlock()
		return errors.SetCustomErrorWithMessage(constant.ErrInternal, msg)
	}
	return nil
}

// Snapshot returns a copy of the chat state safe for concurrent readers.
func (c *chatAppImpl) Snapshot() model.ChatState {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.state
	snap.Conversations = append([]model.Conversation(nil), c.state.Conversations...)
	snap.Messages = append([]model.Message(nil), c.state.Messages...)
	if c.state.Active != nil {
		active := *c.state.Active
		snap.Active = &active
	}
	return snap
}
