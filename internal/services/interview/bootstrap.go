// Package interview bootstraps the interview page: it checks the backend and fetches an opening question.
package interview

import (
	"context"

	"github.com/mcoot/mockify/internal/client"
)

// Texts written into the question element
const (
	NotConnectedText = "Backend not connected."
	NoQuestionText   = "No question received"
)

// Opening request sent to /interview/ask
const (
	DefaultRole  = "Software Engineer"
	DefaultLevel = "Junior"
)

// Requester is the subset of the request helper the bootstrapper needs
type Requester interface {
	Get(ctx context.Context, endpoint string) client.Result
	Post(ctx context.Context, endpoint string, body any) client.Result
}

// Outcome is what the page shows after bootstrapping
type Outcome struct {
	Connected bool
	Question  string
	// Error is the request failure when the question request itself failed
	Error string
}

// Bootstrapper runs the interview page startup sequence
type Bootstrapper struct {
	requester Requester
}

// New creates a Bootstrapper
func New(requester Requester) *Bootstrapper {
	return &Bootstrapper{requester: requester}
}

type healthResponse struct {
	Status string `json:"status"`
}

// CheckBackend reports whether /health answers 2xx with status "ok"
func (b *Bootstrapper) CheckBackend(ctx context.Context) bool {
	var health healthResponse
	if err := b.requester.Get(ctx, "/health").Decode(&health); err != nil {
		return false
	}
	return health.Status == "ok"
}

type openingRequest struct {
	Role    string `json:"role"`
	Level   string `json:"level"`
	History []any  `json:"history"`
}

type questionResponse struct {
	Question string `json:"question"`
	Reply    string `json:"reply"`
}

// Start checks the backend and, when it is up, asks for the opening question
func (b *Bootstrapper) Start(ctx context.Context) Outcome {
	if !b.CheckBackend(ctx) {
		return Outcome{Connected: false, Question: NotConnectedText}
	}

	result := b.requester.Post(ctx, "/interview/ask", openingRequest{
		Role:    DefaultRole,
		Level:   DefaultLevel,
		History: []any{},
	})

	var resp questionResponse
	if err := result.Decode(&resp); err != nil {
		return Outcome{Connected: true, Question: NoQuestionText, Error: err.Error()}
	}

	switch {
	case resp.Question != "":
		return Outcome{Connected: true, Question: resp.Question}
	case resp.Reply != "":
		return Outcome{Connected: true, Question: resp.Reply}
	default:
		return Outcome{Connected: true, Question: NoQuestionText}
	}
}
