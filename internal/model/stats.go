package model

// MaxHistoryEntries caps the interview history kept in stats
const MaxHistoryEntries = 20

// InterviewStats aggregates analysed interviews
type InterviewStats struct {
	TotalInterviews int            `json:"total_interviews"`
	AverageScore    int            `json:"average_score"`
	History         []HistoryEntry `json:"history"`
}

// HistoryEntry records one analysed interview
type HistoryEntry struct {
	ID      string `json:"id"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Round   string `json:"round"`
	Score   int    `json:"score"`
	Verdict string `json:"verdict"`
	Date    string `json:"date"`
}

// NewInterviewStats returns empty stats
func NewInterviewStats() *InterviewStats {
	return &InterviewStats{History: []HistoryEntry{}}
}

// Record folds a new score into the stats.
// The average is the truncated running mean; history keeps the newest entries only.
func (s *InterviewStats) Record(entry HistoryEntry) {
	s.TotalInterviews++
	count := s.TotalInterviews
	s.AverageScore = (s.AverageScore*(count-1) + entry.Score) / count

	s.History = append(s.History, entry)
	if len(s.History) > MaxHistoryEntries {
		s.History = s.History[len(s.History)-MaxHistoryEntries:]
	}
}
