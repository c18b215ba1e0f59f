// Package resume scores uploaded resumes the way an applicant tracking system would
// and keeps a history of past analyses.
package resume

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/mcoot/mockify/internal/dependencies/clock"
	"github.com/mcoot/mockify/internal/llm"
	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/services/prompt"
	"github.com/mcoot/mockify/internal/storage"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	batchType       = "fast"

	summaryCorrupted     = "Error: File Corrupted"
	summaryAnalysisError = "Analysis Error"
)

// Service analyses single resumes and ranks batches against hiring filters
type Service struct {
	storage   storage.Storage
	generator llm.Generator
	clock     clock.Clock
	logger    *slog.Logger

	// serializes the history read-modify-write
	mu sync.Mutex
}

// New creates a resume service
func New(storage storage.Storage, generator llm.Generator, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:   storage,
		generator: generator,
		clock:     clock,
		logger:    logger,
	}
}

// Analyze produces an ATS report for one resume and records it in history
func (s *Service) Analyze(ctx context.Context, file model.ResumeFile) (model.ResumeReport, error) {
	name := CleanFilename(file.Filename)
	if !Supported(name) {
		return model.ResumeReport{}, model.ErrUnsupportedResume
	}

	text, err := ExtractText(name, file.Data)
	if err != nil {
		s.logger.Warn("resume text extraction failed", slog.String("filename", name), slog.String("error", err.Error()))
		return model.ResumeReport{}, err
	}

	s.logger.Info("analysing resume", slog.String("filename", name))
	raw := llm.Reply(ctx, s.generator, prompt.ResumeATS(text))
	report, err := parseReport(raw)
	if err != nil {
		s.logger.Warn("resume report parsing failed", slog.String("filename", name), slog.String("error", err.Error()))
		return model.ResumeReport{}, err
	}

	s.updateHistory(ctx, func(h *model.ResumeHistory) {
		h.AddSingle(model.SingleResumeRecord{
			Filename:  name,
			Analysis:  report,
			Timestamp: s.clock.Now().Format(timestampLayout),
		})
	})
	return report, nil
}

// Rank scores every supported file against filters and returns all of them, best first.
// Files of other types are skipped. Only the top filters.TopN go into history.
func (s *Service) Rank(ctx context.Context, files []model.ResumeFile, filters model.RankFilters) []model.RankedResume {
	topN := filters.TopN
	if topN <= 0 {
		topN = model.DefaultRankTopN
	}

	s.logger.Info("ranking resumes",
		slog.Int("files", len(files)),
		slog.String("role", filters.Role),
		slog.String("candidate_type", filters.CandidateType),
	)

	results := make([]model.RankedResume, 0, len(files))
	for _, file := range files {
		name := CleanFilename(file.Filename)
		if !Supported(name) {
			s.logger.Debug("skipping unsupported resume", slog.String("filename", name))
			continue
		}
		results = append(results, s.rankOne(ctx, name, file.Data, filters))
	}

	slices.SortStableFunc(results, func(a, b model.RankedResume) int {
		return cmp.Compare(b.Score, a.Score)
	})

	top := slices.Clone(results[:min(topN, len(results))])
	s.updateHistory(ctx, func(h *model.ResumeHistory) {
		h.AddBatch(model.BatchResumeRecord{
			Type:           batchType,
			FilesProcessed: len(files),
			TopNRequested:  topN,
			Results:        top,
			Timestamp:      s.clock.Now().Format(timestampLayout),
		})
	})
	return results
}

func (s *Service) rankOne(ctx context.Context, name string, data []byte, filters model.RankFilters) model.RankedResume {
	text, err := ExtractText(name, data)
	if err != nil {
		s.logger.Warn("resume text extraction failed", slog.String("filename", name), slog.String("error", err.Error()))
		return model.RankedResume{Filename: name, Score: 0, Summary: summaryCorrupted}
	}

	raw := llm.Reply(ctx, s.generator, prompt.ResumeRank(text, filters))
	score, summary, err := parseRank(raw)
	if err != nil {
		s.logger.Warn("resume score parsing failed", slog.String("filename", name), slog.String("error", err.Error()))
		return model.RankedResume{Filename: name, Score: 0, Summary: summaryAnalysisError}
	}
	return model.RankedResume{Filename: name, Score: score, Summary: summary}
}

// History returns past analyses, or an empty history when none exist or loading fails
func (s *Service) History(ctx context.Context) *model.ResumeHistory {
	return s.loadHistory(ctx)
}

// ClearHistory forgets every past analysis
func (s *Service) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.SaveResumeHistory(ctx, model.NewResumeHistory()); err != nil {
		return fmt.Errorf("clear resume history: %w", err)
	}
	s.logger.Info("resume history cleared")
	return nil
}

func (s *Service) updateHistory(ctx context.Context, apply func(*model.ResumeHistory)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.loadHistory(ctx)
	apply(history)
	if err := s.storage.SaveResumeHistory(ctx, history); err != nil {
		s.logger.Error("failed to save resume history", slog.String("error", err.Error()))
	}
}

func (s *Service) loadHistory(ctx context.Context) *model.ResumeHistory {
	history, err := s.storage.GetResumeHistory(ctx)
	if errors.Is(err, model.ErrResumeHistoryNotFound) {
		return model.NewResumeHistory()
	}
	if err != nil {
		s.logger.Error("failed to load resume history", slog.String("error", err.Error()))
		return model.NewResumeHistory()
	}
	return history
}
