package request

import "github.com/mcoot/mockify/internal/model"

// AskRequest is the request body for the interview ask endpoints
type AskRequest = model.AskRequest

// AIRequest is the request body for /ai/local and /ai/cloud
type AIRequest = model.AIRequest

// AnalyzeRequest is the request body for generating an interview report
type AnalyzeRequest struct {
	Transcript string                 `json:"transcript"`
	Context    model.InterviewContext `json:"context"`
}
