package assist

import (
	"fmt"
	"strings"
)

// Responder turns an incoming message into a reply. The keyword
// implementation below is the whole "AI"; a real model client can be
// swapped in behind this interface without touching the handlers.
type Responder interface {
	Respond(message string) string
}

// FixedResponder ignores the input and always returns the same reply.
type FixedResponder struct {
	Reply string
}

func (f FixedResponder) Respond(string) string { return f.Reply }

// Rule maps a keyword group to its canned reply. Earlier rules win when
// a message matches more than one group.
type Rule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Reply    string   `yaml:"reply"`
}

// KeywordResponder selects a reply by case-insensitive substring match
// against an ordered rule list, falling back to an echo of the message.
type KeywordResponder struct {
	rules    []Rule
	fallback string // format string with one %s verb for the message
}

func NewKeywordResponder(rules []Rule, fallback string) *KeywordResponder {
	return &KeywordResponder{rules: rules, fallback: fallback}
}

func (k *KeywordResponder) Respond(message string) string {
	m := strings.ToLower(message)
	for _, rule := range k.rules {
		if containsAny(m, rule.Keywords) {
			return rule.Reply
		}
	}
	return fmt.Sprintf(k.fallback, message)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// DefaultKeywordResponder carries the built-in support reply set.
// Priority order matters: greeting is checked before farewell, so a
// message containing both "hello" and "bye" gets the greeting reply.
func DefaultKeywordResponder() *KeywordResponder {
	return NewKeywordResponder([]Rule{
		{
			Name:     "greeting",
			Keywords: []string{"hello", "hi"},
			Reply:    "Hello! I'm your AI assistant. How can I help you today?",
		},
		{
			Name:     "help",
			Keywords: []string{"help"},
			Reply:    "I'm here to help! I can assist with customer support, answer questions, and provide information. What do you need help with?",
		},
		{
			Name:     "support",
			Keywords: []string{"support"},
			Reply:    "I can help with technical support. Please provide more details about your issue, and I'll do my best to assist you.",
		},
		{
			Name:     "farewell",
			Keywords: []string{"bye", "goodbye"},
			Reply:    "Goodbye! Feel free to reach out if you need help again. Have a great day!",
		},
		{
			Name:     "weather",
			Keywords: []string{"weather"},
			Reply:    "I can't check the weather right now, but I can help you with other questions and support issues.",
		},
		{
			Name:     "order",
			Keywords: []string{"order", "purchase"},
			Reply:    "I can help you with order-related questions. Please provide your order number or describe what you need assistance with.",
		},
	}, "I understand you said: '%s'. How can I assist you further?")
}
