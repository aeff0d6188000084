// Package relay normalizes Chatwoot-style webhook payloads into a single
// logical inbound message before reply selection.
package relay

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoMessage is returned when neither the flat nor the nested payload
// shape yields message text.
var ErrNoMessage = errors.New("no message found in payload")

// InboundMessage is the normalized form of a webhook delivery.
type InboundMessage struct {
	Text           string
	ConversationID string
	SenderID       string
	AccountID      string
}

// flexID accepts a JSON string or number; Chatwoot sends numeric ids,
// direct callers tend to send strings.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

type envelope struct {
	Message        string        `json:"message"`
	Content        string        `json:"content"`
	ConversationID flexID        `json:"conversation_id"`
	SenderID       flexID        `json:"sender_id"`
	AccountID      flexID        `json:"account_id"`
	Conversation   *conversation `json:"conversation"`
}

type conversation struct {
	ID        flexID                `json:"id"`
	AccountID flexID                `json:"account_id"`
	Messages  []conversationMessage `json:"messages"`
}

type conversationMessage struct {
	Content  string `json:"content"`
	SenderID flexID `json:"sender_id"`
}

// Normalize extracts one logical message from either payload shape.
// The flat shape checks "message" then "content"; the nested Chatwoot
// shape takes the last entry of conversation.messages. Ids present at
// the top level fill in anything the nested shape did not provide.
func Normalize(body []byte) (InboundMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return InboundMessage{}, fmt.Errorf("invalid payload: %w", err)
	}

	var msg InboundMessage
	switch {
	case env.Message != "":
		msg.Text = env.Message
	case env.Content != "":
		msg.Text = env.Content
	case env.Conversation != nil && len(env.Conversation.Messages) > 0:
		last := env.Conversation.Messages[len(env.Conversation.Messages)-1]
		msg.Text = last.Content
		msg.ConversationID = string(env.Conversation.ID)
		msg.SenderID = string(last.SenderID)
		msg.AccountID = string(env.Conversation.AccountID)
	}
	if msg.Text == "" {
		return InboundMessage{}, ErrNoMessage
	}

	if msg.ConversationID == "" {
		msg.ConversationID = string(env.ConversationID)
	}
	if msg.SenderID == "" {
		msg.SenderID = string(env.SenderID)
	}
	if msg.AccountID == "" {
		msg.AccountID = string(env.AccountID)
	}
	return msg, nil
}
