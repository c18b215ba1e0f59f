package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/mockify/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case HealthResult:
		o.printf("Status: %s\n", v.Status)
	case AIResult:
		o.printAIResult(v)
	case QuestionResult:
		o.printQuestionResult(v)
	case SessionResult:
		o.printSessionResult(v)
	case NavResult:
		o.printNavResult(v)
	case model.InterviewStats:
		o.printStats(v)
	case model.Analysis:
		o.printAnalysis(v)
	case model.ResumeReport:
		o.printResumeReport(v)
	case RankResult:
		o.printRankResult(v)
	case model.ResumeHistory:
		o.printResumeHistory(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// AIResult is a reply from /ai/local or /ai/cloud
type AIResult struct {
	Mode     string `json:"mode"`
	Question string `json:"question"`
	Reply    string `json:"reply"`
}

// QuestionResult is the outcome of starting an interview
type QuestionResult struct {
	Connected bool   `json:"connected"`
	Question  string `json:"question"`
	Error     string `json:"error,omitempty"`
}

// SessionResult describes the local login state
type SessionResult struct {
	LoggedIn bool           `json:"logged_in"`
	User     *model.Session `json:"user"`
}

// NavResult is the navbar and modal state for the current login state
type NavResult struct {
	LoginButtonText string `json:"login_button_text"`
	LoginAction     string `json:"login_action"`
	DashboardHidden bool   `json:"dashboard_hidden"`
	ModalClasses    string `json:"modal_classes"`
}

// RankResult is a ranked batch of resumes, best first
type RankResult struct {
	TopN    int                  `json:"top_n"`
	Resumes []model.RankedResume `json:"resumes"`
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printAIResult(r AIResult) {
	if r.Mode != "" {
		o.printf("Mode: %s\n", r.Mode)
	}
	question := r.Question
	if question == "" {
		question = r.Reply
	}
	o.printf("Question: %s\n", question)
}

func (o *Output) printQuestionResult(r QuestionResult) {
	if !r.Connected {
		o.printf("%s\n", r.Question)
		return
	}
	o.printf("Question: %s\n", r.Question)
	if r.Error != "" {
		o.printf("Error: %s\n", r.Error)
	}
}

func (o *Output) printSessionResult(r SessionResult) {
	if !r.LoggedIn {
		o.printf("Not logged in\n")
		return
	}
	if r.User == nil {
		o.printf("Logged in (session unreadable)\n")
		return
	}
	o.printf("Logged in as %s since %s\n", r.User.Username, r.User.LoggedInAt.Format("2006-01-02 15:04:05 MST"))
}

func (o *Output) printNavResult(r NavResult) {
	dashboard := "visible"
	if r.DashboardHidden {
		dashboard = "hidden"
	}
	o.printf("Login button: %s (%s)\n", r.LoginButtonText, r.LoginAction)
	o.printf("Dashboard link: %s\n", dashboard)
	o.printf("Login modal: %s\n", r.ModalClasses)
}

func (o *Output) printStats(s model.InterviewStats) {
	o.printf("Interviews: %d\n", s.TotalInterviews)
	o.printf("Average score: %d\n", s.AverageScore)
	if len(s.History) == 0 {
		return
	}
	o.printf("\nHistory (newest first):\n")
	for i := len(s.History) - 1; i >= 0; i-- {
		e := s.History[i]
		o.printf("  %s  %-12s %-20s %-16s %3d  %s\n", e.Date, e.Company, e.Role, e.Round, e.Score, e.Verdict)
	}
}

func (o *Output) printAnalysis(a model.Analysis) {
	o.printf("Score: %d\n", a.Score)
	o.printf("Verdict: %s\n", a.Verdict)
	o.printf("Summary: %s\n", a.Summary)
	o.printList("Strengths", a.Strengths)
	o.printList("Weaknesses", a.Weaknesses)
	o.printList("Improvement plan", a.ImprovementPlan)
	if a.CodeFeedback != "" {
		o.printf("Code feedback: %s\n", a.CodeFeedback)
	}
}

func (o *Output) printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	o.printf("%s:\n  - %s\n", title, strings.Join(items, "\n  - "))
}

func (o *Output) printResumeReport(r model.ResumeReport) {
	o.printf("ATS score: %d\n", r.ATSScore)
	if r.Summary != "" {
		o.printf("Summary: %s\n", r.Summary)
	}
	o.printList("Skills", r.Skills)
	o.printList("Improvements", r.Improvements)
}

func (o *Output) printRankResult(r RankResult) {
	if len(r.Resumes) == 0 {
		o.printf("No resumes could be ranked\n")
		return
	}
	for i, res := range r.Resumes {
		mark := " "
		if i < r.TopN {
			mark = "*"
		}
		o.printf("%s %2d. %3d  %-24s %s\n", mark, i+1, res.Score, res.Filename, res.Summary)
	}
	o.printf("\n* shortlisted (top %d)\n", r.TopN)
}

func (o *Output) printResumeHistory(h model.ResumeHistory) {
	if len(h.Single) == 0 && len(h.Batch) == 0 {
		o.printf("No resume history\n")
		return
	}
	if len(h.Single) > 0 {
		o.printf("Single analyses:\n")
		for _, r := range h.Single {
			o.printf("  %s  %3d  %s\n", r.Timestamp, r.Analysis.ATSScore, r.Filename)
		}
	}
	if len(h.Batch) > 0 {
		o.printf("Batches:\n")
		for _, b := range h.Batch {
			o.printf("  %s  %d files, top %d\n", b.Timestamp, b.FilesProcessed, b.TopNRequested)
			for _, r := range b.Results {
				o.printf("    %3d  %s\n", r.Score, r.Filename)
			}
		}
	}
}
