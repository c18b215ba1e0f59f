package handler

import (
	"net/http"

	"github.com/mcoot/mockify/internal/api/request"
	"github.com/mcoot/mockify/internal/api/response"
	"github.com/mcoot/mockify/internal/model"
)

// AIHandler handles the AI router targets
type AIHandler struct {
	interviewer Interviewer
}

// NewAIHandler creates a new AI handler
func NewAIHandler(interviewer Interviewer) *AIHandler {
	return &AIHandler{interviewer: interviewer}
}

// Local handles POST /api/ai/local
func (h *AIHandler) Local(w http.ResponseWriter, r *http.Request) {
	h.ask(w, r, model.AIModeLocal)
}

// Cloud handles POST /api/ai/cloud
func (h *AIHandler) Cloud(w http.ResponseWriter, r *http.Request) {
	h.ask(w, r, model.AIModeCloud)
}

func (h *AIHandler) ask(w http.ResponseWriter, r *http.Request, mode model.AIMode) {
	var req request.AIRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	reply, err := h.interviewer.AskAI(r.Context(), mode, req)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AIResponse{
		Success:  true,
		Mode:     string(mode),
		Question: reply,
		Reply:    reply,
	})
}
