package model

import "time"

// Conversation holds exactly two participants. The "other user" is whichever
// participant is not the current identity.
type Conversation struct {
	ID          uint64     `json:"id"`
	UserOneID   uint64     `json:"user_one_id"`
	UserTwoID   uint64     `json:"user_two_id"`
	OtherUser   *Identity  `json:"other_user,omitempty"`
	LastMessage *Message   `json:"last_message,omitempty"`
	UnreadCount int        `json:"unread_count"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// CounterpartID returns the participant that is not selfID.
func (c *Conversation) CounterpartID(selfID uint64) uint64 {
	if c.UserOneID == selfID {
		return c.UserTwoID
	}
	return c.UserOneID
}

// Message is append-only within a conversation; only the read flag mutates.
type Message struct {
	ID             uint64     `json:"id"`
	ConversationID uint64     `json:"conversation_id"`
	SenderID       uint64     `json:"sender_id"`
	ReceiverID     uint64     `json:"receiver_id"`
	Body           string     `json:"message"`
	Read           bool       `json:"is_read"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// ChatState is the chat client's observable state.
type ChatState struct {
	Conversations []Conversation `json:"conversations"`
	Active        *Identity      `json:"active_conversation,omitempty"`
	Messages      []Message      `json:"messages"`
	Loading       bool           `json:"loading"`
	Error         string         `json:"error,omitempty"`
	PushConnected bool           `json:"push_connected"`
}

// SendMessageRequest is the gateway-facing body for sending a chat message.
type SendMessageRequest struct {
	To   uint64 `json:"to" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// StartConversationRequest is the gateway-facing body for opening a conversation.
type StartConversationRequest struct {
	ReceiverID uint64 `json:"receiver_id" validate:"required"`
}
