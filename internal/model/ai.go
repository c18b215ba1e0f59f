package model

import (
	"fmt"
	"strings"
)

// AIMode selects which backend target answers AI requests
type AIMode string

const (
	AIModeLocal AIMode = "local" // Ollama
	AIModeCloud AIMode = "cloud" // Gemini
)

// ParseAIMode validates a mode string
func ParseAIMode(s string) (AIMode, error) {
	switch AIMode(strings.ToLower(strings.TrimSpace(s))) {
	case AIModeLocal:
		return AIModeLocal, nil
	case AIModeCloud:
		return AIModeCloud, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAIMode, s)
	}
}

// AIRequest is the payload forwarded to /ai/local or /ai/cloud
type AIRequest struct {
	Type       string `json:"type"`
	Company    string `json:"company"`
	Role       string `json:"role"`
	Difficulty string `json:"difficulty"`
}

// Message is one turn of an interview conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// InterviewContext describes the simulated interview.
// Empty fields fall back to prompt defaults.
type InterviewContext struct {
	Company    string `json:"company,omitempty"`
	Role       string `json:"role,omitempty"`
	Round      string `json:"round,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Persona    string `json:"persona,omitempty"`
}

// AskRequest is the body accepted by the interview ask endpoints.
// Two shapes are accepted: {prompt, type, context} and {role, level, history}.
type AskRequest struct {
	Prompt  string           `json:"prompt"`
	Type    string           `json:"type"`
	Context InterviewContext `json:"context"`
	Role    string           `json:"role,omitempty"`
	Level   string           `json:"level,omitempty"`
	History []Message        `json:"history,omitempty"`
}
