package analysis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mockify/internal/dependencies/clock"
	"github.com/mcoot/mockify/internal/llm"
	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/storage/memory"
	"github.com/mcoot/mockify/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage   *memory.Storage
	generator *llm.Static
	clock     *clock.Fixed
	service   *Service
	ctx       context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.generator = &llm.Static{Label: llm.OllamaName}
	s.clock = clock.NewFixed(testutil.ReferenceTime)
	s.service = New(s.storage, s.generator, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) reply(score int, verdict string) {
	s.generator.Response = fmt.Sprintf(`{"score": %d, "verdict": %q}`, score, verdict)
}

func (s *ServiceSuite) TestAnalyzeReturnsParsedReport() {
	s.reply(75, "Good")

	got := s.service.Analyze(s.ctx, "User: answers", model.InterviewContext{Company: "Google", Role: "SWE"})

	s.Equal(75, got.Score)
	s.Equal("Good", got.Verdict)
	s.Require().Len(s.generator.Prompts, 1)
	s.Contains(s.generator.Prompts[0], "TRANSCRIPT START\nUser: answers\nTRANSCRIPT END")
}

func (s *ServiceSuite) TestAnalyzeRecordsHistory() {
	s.reply(75, "Good")

	s.service.Analyze(s.ctx, "t", model.InterviewContext{Company: "Google", Role: "SWE", Round: "HR Round"})

	stats := s.service.Stats(s.ctx)
	s.Equal(1, stats.TotalInterviews)
	s.Equal(75, stats.AverageScore)
	s.Require().Len(stats.History, 1)

	entry := stats.History[0]
	s.NotEmpty(entry.ID)
	s.Equal("Google", entry.Company)
	s.Equal("SWE", entry.Role)
	s.Equal("HR Round", entry.Round)
	s.Equal("Good", entry.Verdict)
	s.Equal("2024-01-01", entry.Date)
}

func (s *ServiceSuite) TestAnalyzeHistoryDefaults() {
	s.reply(10, "")

	s.service.Analyze(s.ctx, "t", model.InterviewContext{})

	entry := s.service.Stats(s.ctx).History[0]
	s.Equal("Unknown", entry.Company)
	s.Equal("Unknown", entry.Role)
	s.Equal("General", entry.Round)
	s.Equal("N/A", entry.Verdict)
}

func (s *ServiceSuite) TestAnalyzeRunningAverage() {
	for _, score := range []int{80, 45, 10} {
		s.reply(score, "x")
		s.service.Analyze(s.ctx, "t", model.InterviewContext{})
	}

	stats := s.service.Stats(s.ctx)
	s.Equal(3, stats.TotalInterviews)
	s.Equal(44, stats.AverageScore)
}

func (s *ServiceSuite) TestAnalyzeCapsHistory() {
	for i := range 25 {
		s.reply(i, "x")
		s.service.Analyze(s.ctx, "t", model.InterviewContext{})
	}

	stats := s.service.Stats(s.ctx)
	s.Equal(25, stats.TotalInterviews)
	s.Require().Len(stats.History, model.MaxHistoryEntries)
	s.Equal(5, stats.History[0].Score)
	s.Equal(24, stats.History[19].Score)
}

func (s *ServiceSuite) TestAnalyzeUnparseableReplyRecordsDefaults() {
	s.generator.Err = llm.ErrNotRunning

	got := s.service.Analyze(s.ctx, "t", model.InterviewContext{})

	s.Equal(model.DefaultAnalysis(), got)
	stats := s.service.Stats(s.ctx)
	s.Equal(1, stats.TotalInterviews)
	s.Equal("Better Luck Next Time", stats.History[0].Verdict)
}

func (s *ServiceSuite) TestAnalyzeSaveFailureStillReturnsReport() {
	failing := &failingStorage{Storage: s.storage, saveErr: errors.New("disk full")}
	service := New(failing, s.generator, s.clock, testutil.NopLogger())
	s.reply(60, "Good")

	got := service.Analyze(s.ctx, "t", model.InterviewContext{})

	s.Equal(60, got.Score)
	s.Equal(0, service.Stats(s.ctx).TotalInterviews)
}

func (s *ServiceSuite) TestAnalyzeLoadFailureStartsFromZero() {
	s.Require().NoError(s.storage.SaveStats(s.ctx, &model.InterviewStats{TotalInterviews: 9, AverageScore: 90}))
	failing := &failingStorage{Storage: s.storage, loadErr: errors.New("corrupt")}
	service := New(failing, s.generator, s.clock, testutil.NopLogger())
	s.reply(30, "Moderate")

	service.Analyze(s.ctx, "t", model.InterviewContext{})

	stats, err := s.storage.GetStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, stats.TotalInterviews)
	s.Equal(30, stats.AverageScore)
}

func (s *ServiceSuite) TestStatsEmptyWhenNothingRecorded() {
	stats := s.service.Stats(s.ctx)
	s.Equal(0, stats.TotalInterviews)
	s.NotNil(stats.History)
	s.Empty(stats.History)
}

type failingStorage struct {
	*memory.Storage
	loadErr error
	saveErr error
}

func (f *failingStorage) GetStats(ctx context.Context) (*model.InterviewStats, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.Storage.GetStats(ctx)
}

func (f *failingStorage) SaveStats(ctx context.Context, stats *model.InterviewStats) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.Storage.SaveStats(ctx, stats)
}
