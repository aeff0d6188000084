package relay

import (
	"errors"
	"testing"
)

func TestNormalize_FlatShape(t *testing.T) {
	body := []byte(`{
		"message": "I have a technical issue",
		"conversation_id": "conv-1",
		"sender_id": "user-123",
		"account_id": "account-789"
	}`)

	msg, err := Normalize(body)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if msg.Text != "I have a technical issue" {
		t.Errorf("Text = %q", msg.Text)
	}
	if msg.ConversationID != "conv-1" {
		t.Errorf("ConversationID = %q", msg.ConversationID)
	}
	if msg.SenderID != "user-123" {
		t.Errorf("SenderID = %q", msg.SenderID)
	}
	if msg.AccountID != "account-789" {
		t.Errorf("AccountID = %q", msg.AccountID)
	}
}

func TestNormalize_ContentField(t *testing.T) {
	msg, err := Normalize([]byte(`{"content": "via content field"}`))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if msg.Text != "via content field" {
		t.Errorf("Text = %q", msg.Text)
	}
}

func TestNormalize_NestedShape(t *testing.T) {
	body := []byte(`{
		"conversation": {
			"id": "conv-42",
			"account_id": "account-789",
			"messages": [
				{"content": "first", "sender_id": "user-1"},
				{"content": "can you help me with my purchase?", "sender_id": "user-456"}
			]
		}
	}`)

	msg, err := Normalize(body)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	// The last message in the conversation is the one being delivered.
	if msg.Text != "can you help me with my purchase?" {
		t.Errorf("Text = %q", msg.Text)
	}
	if msg.ConversationID != "conv-42" {
		t.Errorf("ConversationID = %q", msg.ConversationID)
	}
	if msg.SenderID != "user-456" {
		t.Errorf("SenderID = %q", msg.SenderID)
	}
	if msg.AccountID != "account-789" {
		t.Errorf("AccountID = %q", msg.AccountID)
	}
}

func TestNormalize_NumericIDs(t *testing.T) {
	body := []byte(`{
		"conversation": {
			"id": 17,
			"account_id": 9,
			"messages": [{"content": "numeric ids", "sender_id": 1234}]
		}
	}`)

	msg, err := Normalize(body)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if msg.ConversationID != "17" {
		t.Errorf("ConversationID = %q, want \"17\"", msg.ConversationID)
	}
	if msg.SenderID != "1234" {
		t.Errorf("SenderID = %q, want \"1234\"", msg.SenderID)
	}
	if msg.AccountID != "9" {
		t.Errorf("AccountID = %q, want \"9\"", msg.AccountID)
	}
}

func TestNormalize_FlatTakesPrecedence(t *testing.T) {
	body := []byte(`{
		"message": "flat wins",
		"conversation": {
			"id": "nested-id",
			"messages": [{"content": "nested"}]
		}
	}`)

	msg, err := Normalize(body)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if msg.Text != "flat wins" {
		t.Errorf("Text = %q", msg.Text)
	}
}

func TestNormalize_NoMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"unrelated fields", `{"event": "conversation_updated", "id": 3}`},
		{"empty nested messages", `{"conversation": {"id": "c", "messages": []}}`},
		{"empty message text", `{"message": ""}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize([]byte(tc.body))
			if !errors.Is(err, ErrNoMessage) {
				t.Errorf("expected ErrNoMessage, got %v", err)
			}
		})
	}
}

func TestNormalize_InvalidJSON(t *testing.T) {
	_, err := Normalize([]byte(`not json at all`))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if errors.Is(err, ErrNoMessage) {
		t.Error("invalid JSON should not map to ErrNoMessage")
	}
}
