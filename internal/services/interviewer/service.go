package interviewer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/mockify/internal/llm"
	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/services/prompt"
)

// Service asks the configured models for interview questions and replies
type Service struct {
	generators  map[model.AIMode]llm.Generator
	defaultMode model.AIMode
	logger      *slog.Logger
}

// New creates an interviewer. defaultMode picks the generator for /interview/ask.
func New(generators map[model.AIMode]llm.Generator, defaultMode model.AIMode, logger *slog.Logger) *Service {
	return &Service{
		generators:  generators,
		defaultMode: defaultMode,
		logger:      logger,
	}
}

// DefaultMode returns the mode used when a request does not name one
func (s *Service) DefaultMode() model.AIMode {
	return s.defaultMode
}

func (s *Service) generator(mode model.AIMode) (llm.Generator, error) {
	g, ok := s.generators[mode]
	if !ok {
		return nil, fmt.Errorf("%w: no generator for %q", model.ErrInvalidAIMode, mode)
	}
	return g, nil
}

// Ask answers an interview turn with the default generator.
// With a prompt it is built with the request type (chat when empty); without one the
// history becomes the conversation, and an empty history asks for an opening question.
func (s *Service) Ask(ctx context.Context, req model.AskRequest) (string, error) {
	g, err := s.generator(s.defaultMode)
	if err != nil {
		return "", err
	}

	ictx := req.Context
	if ictx.Role == "" {
		ictx.Role = req.Role
	}
	if ictx.Difficulty == "" {
		ictx.Difficulty = req.Level
	}

	var final string
	switch {
	case req.Prompt != "":
		promptType := req.Type
		if promptType == "" {
			promptType = prompt.TypeChat
		}
		final = prompt.Build(req.Prompt, promptType, ictx)
	case len(req.History) == 0:
		final = prompt.Build("", prompt.TypeInterviewQuestion, ictx)
	default:
		final = prompt.Build(Transcript(req.History), prompt.TypeChat, ictx)
	}

	s.logger.Debug("asking model",
		slog.String("generator", g.Name()),
		slog.Int("promptLength", len(final)),
	)
	return llm.Reply(ctx, g, final), nil
}

// AskAI answers an AI router request with the generator for mode
func (s *Service) AskAI(ctx context.Context, mode model.AIMode, req model.AIRequest) (string, error) {
	g, err := s.generator(mode)
	if err != nil {
		return "", err
	}

	promptType := req.Type
	if promptType == "" {
		promptType = prompt.TypeInterviewQuestion
	}
	final := prompt.Build("", promptType, model.InterviewContext{
		Company:    req.Company,
		Role:       req.Role,
		Difficulty: req.Difficulty,
	})

	s.logger.Debug("asking model",
		slog.String("generator", g.Name()),
		slog.String("type", promptType),
	)
	return llm.Reply(ctx, g, final), nil
}

// Transcript renders a conversation as "Role: content" lines
func Transcript(history []model.Message) string {
	lines := make([]string, 0, len(history))
	for _, m := range history {
		role := m.Role
		if role == "" {
			role = "user"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, m.Content))
	}
	return strings.Join(lines, "\n")
}
