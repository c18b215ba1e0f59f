package response

import "github.com/mcoot/mockify/internal/model"

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}

// AskResponse carries the model reply under both names clients read
type AskResponse struct {
	Reply    string `json:"reply"`
	Question string `json:"question"`
}

// AskResponseFromReply builds an AskResponse
func AskResponseFromReply(reply string) AskResponse {
	return AskResponse{Reply: reply, Question: reply}
}

// AIResponse is the response for the AI router endpoints
type AIResponse struct {
	Success  bool   `json:"success"`
	Mode     string `json:"mode"`
	Question string `json:"question"`
	Reply    string `json:"reply"`
}

// AnalyzeResponse wraps a generated report
type AnalyzeResponse struct {
	Analysis model.Analysis `json:"analysis"`
}

// Stats represents interview stats in API responses
type Stats struct {
	TotalInterviews int                  `json:"total_interviews"`
	AverageScore    int                  `json:"average_score"`
	History         []model.HistoryEntry `json:"history"`
}

// StatsFromModel converts model.InterviewStats. History is never null.
func StatsFromModel(s *model.InterviewStats) Stats {
	history := s.History
	if history == nil {
		history = []model.HistoryEntry{}
	}
	return Stats{
		TotalInterviews: s.TotalInterviews,
		AverageScore:    s.AverageScore,
		History:         history,
	}
}

// Status is a bare acknowledgement
type Status struct {
	Status string `json:"status"`
}
