// Package analysis scores interview transcripts and keeps the aggregate stats.
package analysis

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mcoot/mockify/internal/dependencies/clock"
	"github.com/mcoot/mockify/internal/llm"
	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/services/prompt"
	"github.com/mcoot/mockify/internal/storage"
)

const dateLayout = "2006-01-02"

// Service generates interview reports and records them in the stats document
type Service struct {
	storage   storage.Storage
	generator llm.Generator
	clock     clock.Clock
	logger    *slog.Logger

	// serializes the stats read-modify-write
	mu sync.Mutex
}

// New creates an analysis service
func New(storage storage.Storage, generator llm.Generator, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:   storage,
		generator: generator,
		clock:     clock,
		logger:    logger,
	}
}

// Analyze asks the model for a report on transcript and records its score.
// An unparseable reply yields the default analysis, which is still recorded.
func (s *Service) Analyze(ctx context.Context, transcript string, ictx model.InterviewContext) model.Analysis {
	s.logger.Info("generating analysis report",
		slog.String("company", ictx.Company),
		slog.String("role", ictx.Role),
	)

	final := prompt.Build(transcript, prompt.TypeReport, ictx)
	raw := llm.Reply(ctx, s.generator, final)

	result, err := ExtractAnalysis(raw)
	if err != nil {
		s.logger.Warn("JSON parsing failed", slog.String("error", err.Error()))
	}

	s.record(ctx, result, ictx)
	return result
}

func (s *Service) record(ctx context.Context, result model.Analysis, ictx model.InterviewContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.loadStats(ctx)
	stats.Record(model.HistoryEntry{
		ID:      uuid.NewString(),
		Company: orDefault(ictx.Company, "Unknown"),
		Role:    orDefault(ictx.Role, "Unknown"),
		Round:   orDefault(ictx.Round, "General"),
		Score:   result.Score,
		Verdict: orDefault(result.Verdict, "N/A"),
		Date:    s.clock.Now().Format(dateLayout),
	})

	if err := s.storage.SaveStats(ctx, stats); err != nil {
		s.logger.Error("failed to save stats", slog.String("error", err.Error()))
	}
}

func (s *Service) loadStats(ctx context.Context) *model.InterviewStats {
	stats, err := s.storage.GetStats(ctx)
	if errors.Is(err, model.ErrStatsNotFound) {
		return model.NewInterviewStats()
	}
	if err != nil {
		s.logger.Error("failed to load stats", slog.String("error", err.Error()))
		return model.NewInterviewStats()
	}
	return stats
}

// Stats returns the current stats, or empty stats when none exist or loading fails
func (s *Service) Stats(ctx context.Context) *model.InterviewStats {
	return s.loadStats(ctx)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
