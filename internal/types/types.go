package types

// ChatMessageRequest is the body of POST /chat/message.
type ChatMessageRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
	SenderID       string `json:"sender_id,omitempty"`
	AccountID      string `json:"account_id,omitempty"`
}

// RelayResponse is returned by the relay endpoints once a canned reply
// has been selected.
type RelayResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id,omitempty"`
	Timestamp      string `json:"timestamp"`
	Status         string `json:"status,omitempty"`
}

// AssistResponse is the simple envelope of POST /ai/assist.
type AssistResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

// HealthResponse is the static document served on GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Port        string `json:"port"`
	Version     string `json:"version"`
}

// RootResponse describes the service on GET /.
type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HistoryEntry is one stored conversation message as exposed over HTTP.
type HistoryEntry struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	SenderID  string `json:"sender_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// HistoryResponse is the body of GET /conversations/{id}/history.
type HistoryResponse struct {
	ConversationID string         `json:"conversation_id"`
	History        []HistoryEntry `json:"history"`
}

type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	// Populated on 404 so callers can discover the valid routes.
	AvailableEndpoints []string `json:"available_endpoints,omitempty"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
