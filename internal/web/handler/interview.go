package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/services/interview"
	"github.com/mcoot/mockify/internal/services/nav"
	"github.com/mcoot/mockify/internal/web/middleware"
	"github.com/mcoot/mockify/internal/web/templates/pages"
)

// InterviewHandler handles the interview page
type InterviewHandler struct {
	appName string
}

// NewInterviewHandler creates a new InterviewHandler
func NewInterviewHandler(appName string) *InterviewHandler {
	return &InterviewHandler{appName: appName}
}

type aiReply struct {
	Question string `json:"question"`
	Reply    string `json:"reply"`
}

// View bootstraps the interview: health check then opening question
func (h *InterviewHandler) View(w http.ResponseWriter, r *http.Request) {
	app := middleware.GetApp(r.Context())
	outcome := app.Bootstrapper.Start(r.Context())

	data := pages.InterviewData{
		PageData:  pageData(r, h.appName, "Interview", nav.InterviewPage),
		Connected: outcome.Connected,
		Question:  outcome.Question,
		Status:    statusText(outcome.Connected, app.AIRouter.Mode(), outcome.Error),
		Form: pages.AIForm{
			Role:       interview.DefaultRole,
			Difficulty: "Medium",
		},
	}
	render(w, r, pages.Interview(data))
}

// AskAI submits the AI form through the router for the configured mode
func (h *InterviewHandler) AskAI(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		http.Redirect(w, r, nav.InterviewPage, http.StatusSeeOther)
		return
	}

	app := middleware.GetApp(r.Context())
	form := pages.AIForm{
		Company:    strings.TrimSpace(r.FormValue("company")),
		Role:       strings.TrimSpace(r.FormValue("role")),
		Difficulty: strings.TrimSpace(r.FormValue("difficulty")),
	}
	result := app.AIRouter.AskAI(r.Context(), model.AIRequest{
		Type:       r.FormValue("type"),
		Company:    form.Company,
		Role:       form.Role,
		Difficulty: form.Difficulty,
	})

	data := pages.InterviewData{
		PageData:  pageData(r, h.appName, "Interview", nav.InterviewPage),
		Connected: result.Success,
		Form:      form,
	}

	var reply aiReply
	if err := result.Decode(&reply); err != nil {
		data.Question = interview.NoQuestionText
		data.Status = "AI request failed: " + err.Error()
		render(w, r, pages.Interview(data))
		return
	}

	data.Question = reply.Question
	if data.Question == "" {
		data.Question = reply.Reply
	}
	if data.Question == "" {
		data.Question = interview.NoQuestionText
	}
	data.Status = statusText(true, app.AIRouter.Mode(), "")
	render(w, r, pages.Interview(data))
}

func statusText(connected bool, mode model.AIMode, errMsg string) string {
	if !connected {
		return interview.NotConnectedText
	}
	if errMsg != "" {
		return fmt.Sprintf("Connected (AI mode: %s). %s", mode, errMsg)
	}
	return fmt.Sprintf("Connected (AI mode: %s)", mode)
}
