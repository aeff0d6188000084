package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"support-squad-backend/internal/assist"
	"support-squad-backend/internal/config"
	"support-squad-backend/internal/middleware"
	"support-squad-backend/internal/store"
	"support-squad-backend/internal/types"
)

// FixedReply is the canned assistant message every stub endpoint returns.
const FixedReply = "Hallo de request is gelukt gefeliciteerd"

type Server struct {
	router *chi.Mux
	cfg    config.Config
	logger zerolog.Logger
	store  store.ConversationStore
	// Response strategies: stub for the completion endpoints, relay
	// for the Chatwoot/message endpoints.
	stub  assist.Responder
	relay assist.Responder
}

func New(cfg config.Config, logger zerolog.Logger, conversations store.ConversationStore) (*Server, error) {
	relay := assist.Responder(assist.DefaultKeywordResponder())
	if cfg.RepliesFile != "" {
		kr, err := assist.LoadKeywordResponder(cfg.RepliesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load reply rules: %w", err)
		}
		relay = kr
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(logger))
	r.Use(middleware.AccessLog(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}))

	s := &Server{
		router: r,
		cfg:    cfg,
		logger: logger,
		store:  conversations,
		stub:   assist.FixedResponder{Reply: FixedReply},
		relay:  relay,
	}
	s.routes()
	return s, nil
}

// routeList is what a 404 reports back to the caller.
var routeList = []string{
	"GET /health",
	"GET /",
	"POST /v1/chat/completions",
	"POST /ai/assist",
	"POST /chatwoot/webhook",
	"POST /chat/message",
	"GET /conversations/{id}/history",
}

func (s *Server) routes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/", s.handleRoot)
	s.router.Get("/conversations/{id}/history", s.handleHistory)

	// AI endpoints; bearer auth only bites when API_KEY is configured.
	s.router.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(s.cfg.APIKey))
		r.Post("/v1/chat/completions", s.handleChatCompletions)
		r.Post("/ai/assist", s.handleAssist)
		r.Post("/chatwoot/webhook", s.handleWebhook)
		r.Post("/chat/message", s.handleChatMessage)
	})

	s.router.NotFound(s.handleNotFound)
	s.router.MethodNotAllowed(s.handleNotFound)
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, types.HealthResponse{
		Status:      "ok",
		Message:     "Support Squad Backend is running!",
		Timestamp:   time.Now().Format(time.RFC3339),
		Environment: s.cfg.Environment,
		Port:        s.cfg.Port,
		Version:     s.cfg.Version,
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, types.RootResponse{
		Message: "Support Squad Backend is running!",
		Version: s.cfg.Version,
		Endpoints: map[string]string{
			"health":      "GET /health",
			"completions": "POST /v1/chat/completions",
			"assist":      "POST /ai/assist",
			"webhook":     "POST /chatwoot/webhook",
			"message":     "POST /chat/message",
			"history":     "GET /conversations/{id}/history",
		},
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "id")
	msgs := s.store.History(conversationID)
	history := make([]types.HistoryEntry, 0, len(msgs))
	for _, m := range msgs {
		history = append(history, types.HistoryEntry{
			Role:      m.Role,
			Content:   m.Content,
			SenderID:  m.SenderID,
			Timestamp: m.Timestamp.Format(time.RFC3339),
		})
	}
	s.writeJSON(w, http.StatusOK, types.HistoryResponse{
		ConversationID: conversationID,
		History:        history,
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusNotFound, types.ErrorResponse{Error: types.APIError{
		Code:               "NOT_FOUND",
		Message:            fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path),
		RequestID:          middleware.RequestIDFrom(r.Context()),
		AvailableEndpoints: routeList,
	}})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	s.writeJSON(w, status, types.ErrorResponse{Error: types.APIError{
		Code:      code,
		Message:   msg,
		RequestID: middleware.RequestIDFrom(r.Context()),
	}})
}
