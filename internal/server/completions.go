package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"support-squad-backend/internal/middleware"
	"support-squad-backend/internal/types"
)

// handleChatCompletions accepts any JSON body, logs it in full and
// answers 200 with a chat-completion-shaped object whose assistant
// content is the fixed phrase. Nothing about the input changes the
// outcome except the echoed model name.
func (s *Server) handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	body := s.readAndLogBody(r)

	model := s.cfg.Model
	var req openai.ChatCompletionRequest
	if err := json.Unmarshal(body, &req); err == nil {
		if req.Model != "" {
			model = req.Model
		}
		for _, m := range req.Messages {
			s.logger.Info().
				Str("rid", middleware.RequestIDFrom(r.Context())).
				Str("role", m.Role).
				Str("content", m.Content).
				Msg("incoming message")
		}
	} else {
		s.logger.Warn().
			Str("rid", middleware.RequestIDFrom(r.Context())).
			Err(err).
			Msg("body is not a completion request, replying anyway")
	}

	s.writeJSON(w, http.StatusOK, openai.ChatCompletionResponse{
		ID:      "chatcmpl-" + uuid.NewString(),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   model,
		Choices: []openai.ChatCompletionChoice{
			{
				Index: 0,
				Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: s.stub.Respond(""),
				},
				FinishReason: openai.FinishReasonStop,
			},
		},
		Usage: openai.Usage{PromptTokens: 0, CompletionTokens: 0, TotalTokens: 0},
	})
}

// handleAssist is the same stub behind a simpler envelope, for callers
// that cannot reshape their payloads to the OpenAI format.
func (s *Server) handleAssist(w http.ResponseWriter, r *http.Request) {
	s.readAndLogBody(r)
	s.writeJSON(w, http.StatusOK, types.AssistResponse{
		Success:   true,
		Message:   s.stub.Respond(""),
		Timestamp: time.Now().Format(time.RFC3339),
		RequestID: middleware.RequestIDFrom(r.Context()),
	})
}

// readAndLogBody drains the request body and logs the full request
// context for audit visibility.
func (s *Server) readAndLogBody(r *http.Request) []byte {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		body = nil
	}
	s.logger.Info().
		Str("rid", middleware.RequestIDFrom(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Interface("headers", r.Header).
		Str("body", string(body)).
		Msg("incoming request")
	return body
}
