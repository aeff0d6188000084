package store

import (
	"sync"
	"time"
)

// Message is one stored conversation entry.
type Message struct {
	Role      string
	Content   string
	SenderID  string
	Timestamp time.Time
}

// ConversationStore keeps per-conversation message history. Handlers
// receive it injected so the history's lifecycle is tied to the server
// instance rather than the process.
type ConversationStore interface {
	Append(conversationID string, msg Message)
	History(conversationID string) []Message
}

// MemoryStore is the in-process ConversationStore. Growth is unbounded
// unless maxMessages is positive.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[string][]Message
	maxMessages   int
}

func NewMemoryStore(maxMessages int) *MemoryStore {
	return &MemoryStore{
		conversations: make(map[string][]Message),
		maxMessages:   maxMessages,
	}
}

func (m *MemoryStore) Append(conversationID string, msg Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversations[conversationID] = append(m.conversations[conversationID], msg)
	m.trimLocked(conversationID)
}

// History returns the stored messages in insertion order. Unknown ids
// yield an empty slice.
func (m *MemoryStore) History(conversationID string) []Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msgs := m.conversations[conversationID]
	copyMsgs := make([]Message, len(msgs))
	copy(copyMsgs, msgs)
	return copyMsgs
}

func (m *MemoryStore) trimLocked(conversationID string) {
	if m.maxMessages <= 0 {
		return
	}
	msgs := m.conversations[conversationID]
	if len(msgs) > m.maxMessages {
		m.conversations[conversationID] = msgs[len(msgs)-m.maxMessages:]
	}
}
