package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"support-squad-backend/internal/relay"
	"support-squad-backend/internal/store"
	"support-squad-backend/internal/types"
)

// handleWebhook ingests Chatwoot webhook deliveries. Both the flat and
// the nested conversation shape are accepted; anything else is a
// validation error, not a crash.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	body := s.readAndLogBody(r)

	msg, err := relay.Normalize(body)
	if err != nil {
		if errors.Is(err, relay.ErrNoMessage) {
			s.writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "No message found in payload")
			return
		}
		s.writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid webhook payload")
		return
	}

	reply := s.respondAndRecord(msg)
	s.writeJSON(w, http.StatusOK, types.RelayResponse{
		Response:       reply,
		ConversationID: msg.ConversationID,
		Timestamp:      time.Now().Format(time.RFC3339),
		Status:         "success",
	})
}

// handleChatMessage is the direct processing endpoint, bypassing the
// webhook envelope entirely.
func (s *Server) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	body := s.readAndLogBody(r)

	var req types.ChatMessageRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Message is required")
		return
	}

	reply := s.respondAndRecord(relay.InboundMessage{
		Text:           req.Message,
		ConversationID: req.ConversationID,
		SenderID:       req.SenderID,
		AccountID:      req.AccountID,
	})
	s.writeJSON(w, http.StatusOK, types.RelayResponse{
		Response:       reply,
		ConversationID: req.ConversationID,
		Timestamp:      time.Now().Format(time.RFC3339),
	})
}

// respondAndRecord runs the relay responder and, when the message
// belongs to a conversation, records both sides of the exchange.
func (s *Server) respondAndRecord(msg relay.InboundMessage) string {
	s.logger.Info().
		Str("conversation_id", msg.ConversationID).
		Str("sender_id", msg.SenderID).
		Str("message", msg.Text).
		Msg("processing message")

	reply := s.relay.Respond(msg.Text)

	if msg.ConversationID != "" {
		now := time.Now()
		s.store.Append(msg.ConversationID, store.Message{
			Role:      "user",
			Content:   msg.Text,
			SenderID:  msg.SenderID,
			Timestamp: now,
		})
		s.store.Append(msg.ConversationID, store.Message{
			Role:      "assistant",
			Content:   reply,
			Timestamp: now,
		})
	}
	return reply
}
