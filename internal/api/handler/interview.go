package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/mcoot/mockify/internal/api/request"
	"github.com/mcoot/mockify/internal/api/response"
	"github.com/mcoot/mockify/internal/model"
)

// Interviewer answers interview turns
type Interviewer interface {
	Ask(ctx context.Context, req model.AskRequest) (string, error)
	AskAI(ctx context.Context, mode model.AIMode, req model.AIRequest) (string, error)
}

// Analyzer scores transcripts and reports stats
type Analyzer interface {
	Analyze(ctx context.Context, transcript string, ictx model.InterviewContext) model.Analysis
	Stats(ctx context.Context) *model.InterviewStats
}

// InterviewHandler handles interview endpoints
type InterviewHandler struct {
	interviewer Interviewer
	analyzer    Analyzer
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(interviewer Interviewer, analyzer Analyzer) *InterviewHandler {
	return &InterviewHandler{
		interviewer: interviewer,
		analyzer:    analyzer,
	}
}

// Ask handles POST /api/interview/ask (and its aliases)
func (h *InterviewHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req request.AskRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	reply, err := h.interviewer.Ask(r.Context(), req)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AskResponseFromReply(reply))
}

// Analyze handles POST /api/interview/analyze
func (h *InterviewHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req request.AnalyzeRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if strings.TrimSpace(req.Transcript) == "" {
		WriteError(w, NewInvalidRequestError("transcript is required"))
		return
	}

	analysis := h.analyzer.Analyze(r.Context(), req.Transcript, req.Context)
	response.JSON(w, http.StatusOK, response.AnalyzeResponse{Analysis: analysis})
}

// Stats handles GET /api/stats
func (h *InterviewHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.analyzer.Stats(r.Context())
	response.JSON(w, http.StatusOK, response.StatsFromModel(stats))
}
