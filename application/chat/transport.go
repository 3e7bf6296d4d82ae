package chat

import (
	"context"
	"encoding/json"
	"time"

	"github.com/taskora/client-go/model"
	"github.com/taskora/client-go/thirdparty/backendapi"
	"github.com/taskora/client-go/utils/logger"
	"go.uber.org/zap"
)

// TransportState tracks how the chat client is currently synchronized with
// the backend. Push and polling are mutually exclusive, never concurrent.
type TransportState int

const (
	Disconnected TransportState = iota
	Connecting
	Connected
	Polling
)

func (t TransportState) String() string {
	switch t {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Polling:
		return "polling"
	default:
		return "unknown"
	}
}

// Connect attempts the push transport and falls back to polling when the dial
// fails. Safe to call again after Close (a logout/login cycle).
func (c *chatAppImpl) Connect(ctx context.Context) {
	snap := c.session.Snapshot()
	if !snap.IsAuthenticated() {
		return
	}

	c.mu.Lock()
	c.closed = false
	if c.transport == Connected || c.transport == Connecting {
		c.mu.Unlock()
		return
	}
	c.transport = Connecting
	c.mu.Unlock()

	stream, err := c.dialer.Dial(ctx, snap.Token)
	if err != nil {
		// push failure is not a user-visible error
		logger.Warn("push connect failed, falling back to polling", zap.String("error", err.Error()))
		c.mu.Lock()
		c.transport = Disconnected
		c.mu.Unlock()
		c.startPolling(ctx)
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		_ = stream.Close()
		return
	}
	c.stream = stream
	c.transport = Connected
	c.state.PushConnected = true
	c.stopPollingLocked()
	c.mu.Unlock()

	go c.readLoop(ctx, stream)
}

// Close tears the transport down: socket and poll timer are both released.
// Idempotent.
func (c *chatAppImpl) Close() {
	c.mu.Lock()
	c.closed = true
	if c.stream != nil {
		_ = c.stream.Close()
		c.stream = nil
	}
	c.stopPollingLocked()
	c.transport = Disconnected
	c.state.PushConnected = false
	c.mu.Unlock()
}

func (c *chatAppImpl) TransportState() TransportState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transport
}

func (c *chatAppImpl) readLoop(ctx context.Context, stream backendapi.EventStream) {
	for {
		data, err := stream.ReadMessage()
		if err != nil {
			c.mu.Lock()
			if c.closed || c.stream != stream {
				c.mu.Unlock()
				return
			}
			c.stream = nil
			c.transport = Disconnected
			c.state.PushConnected = false
			c.mu.Unlock()

			logger.Info("push connection dropped, falling back to polling", zap.String("error", err.Error()))
			c.startPolling(ctx)
			return
		}
		c.handleEvent(ctx, data)
	}
}

// handleEvent parses one push payload as a Message. Malformed payloads are
// logged and dropped without touching the transport.
func (c *chatAppImpl) handleEvent(ctx context.Context, data []byte) {
	var message model.Message
	if err := json.Unmarshal(data, &message); err != nil {
		logger.Debug("dropping malformed push event", zap.String("error", err.Error()))
		return
	}

	snap := c.session.Snapshot()

	c.mu.Lock()
	if c.state.Active != nil && snap.Identity != nil {
		counterpartID := c.state.Active.ID
		if message.SenderID == counterpartID || message.ReceiverID == counterpartID {
			c.state.Messages = append(c.state.Messages, message)
		}
	}
	c.mu.Unlock()

	// every push event refreshes previews, unread counts and ordering
	if err := c.FetchConversations(ctx); err != nil {
		logger.Debug("[handleEvent] refresh conversations", zap.String("error", err.Error()))
	}
}

func (c *chatAppImpl) startPolling(ctx context.Context) {
	c.mu.Lock()
	if c.closed || c.transport == Connected {
		c.mu.Unlock()
		return
	}
	if c.pollStop != nil {
		// a poller from an earlier fallback is still ticking; reclaim it
		c.transport = Polling
		c.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	c.pollStop = stop
	c.transport = Polling
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.pollOnce(ctx)
			}
		}
	}()
}

// pollOnce re-fetches the active conversation's messages (if any) and the
// conversation list.
func (c *chatAppImpl) pollOnce(ctx context.Context) {
	c.mu.Lock()
	var counterpartID uint64
	if c.state.Active != nil {
		counterpartID = c.state.Active.ID
	}
	c.mu.Unlock()

	if counterpartID != 0 {
		if err := c.FetchMessages(ctx, counterpartID); err != nil {
			logger.Debug("[pollOnce] fetch messages", zap.String("error", err.Error()))
		}
	}
	if err := c.FetchConversations(ctx); err != nil {
		logger.Debug("[pollOnce] fetch conversations", zap.String("error", err.Error()))
	}
}

// stopPollingLocked cancels the poll timer; callers hold c.mu.
func (c *chatAppImpl) stopPollingLocked() {
	if c.pollStop != nil {
		close(c.pollStop)
		c.pollStop = nil
	}
}
