// Package llm talks to the language models that write interview questions and reports.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
)

var (
	// ErrNotRunning means the model server refused or could not accept the connection
	ErrNotRunning = errors.New("model server is not running")
	// ErrTimeout means the model did not answer before the deadline
	ErrTimeout = errors.New("model response timed out")
	// ErrNotConfigured means required credentials are missing
	ErrNotConfigured = errors.New("model backend is not configured")
)

// Generator produces a completion for a prompt
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// classify maps transport errors onto the package sentinels
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: %v", ErrNotRunning, err)
	}
	return err
}

// statusError reports a non-2xx reply from a model server
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%d %s", e.status, http.StatusText(e.status))
}

// Reply runs g and turns failures into the text shown to the user in place of a reply
func Reply(ctx context.Context, g Generator, prompt string) string {
	reply, err := g.Generate(ctx, prompt)
	if err == nil {
		return reply
	}

	switch {
	case errors.Is(err, ErrNotRunning):
		if g.Name() == OllamaName {
			return "Error: Ollama is not running. Start it using `ollama serve`."
		}
		return fmt.Sprintf("Error: %s is not reachable.", g.Name())
	case errors.Is(err, ErrTimeout):
		return "Error: AI response timed out."
	default:
		return fmt.Sprintf("%s Error: %s", g.Name(), err.Error())
	}
}

// Static always answers with the same reply or error
type Static struct {
	Label    string
	Response string
	Err      error
	// Prompts records every prompt received
	Prompts []string

	mu sync.Mutex
}

func (s *Static) Name() string {
	if s.Label == "" {
		return "Static"
	}
	return s.Label
}

func (s *Static) Generate(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.Prompts = append(s.Prompts, prompt)
	s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}
