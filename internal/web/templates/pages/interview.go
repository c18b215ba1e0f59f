package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/mockify/internal/web/templates"
	"github.com/mcoot/mockify/internal/web/templates/layout"
)

// InterviewData is the interview page
type InterviewData struct {
	layout.PageData
	Connected bool
	Question  string
	// Status describes the backend and AI mode state
	Status string
	// Form holds the values of the AI request form
	Form AIForm
}

// AIForm is the AI request form on the interview page
type AIForm struct {
	Company    string
	Role       string
	Difficulty string
}

// Interview renders the interview page
func Interview(data InterviewData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := templates.NewWriter(w)
		hw.Raw(`<section class="flex flex-col gap-6">`)
		hw.Raw(`<p id="status"`)
		if data.Connected {
			hw.Attr("data-connected", "true")
		} else {
			hw.Attr("data-connected", "false")
		}
		hw.Raw(` class="text-sm text-slate-400">`)
		hw.Text(data.Status)
		hw.Raw(`</p>`)

		hw.Raw(`<div class="rounded border border-slate-800 p-6"><h2 class="mb-2 font-semibold">Interviewer</h2>`)
		hw.Raw(`<p id="question">`)
		hw.Text(data.Question)
		hw.Raw(`</p></div>`)

		hw.Raw(`<form id="aiForm" method="post" action="/interview/ai" class="flex flex-col gap-3">`)
		hw.Raw(`<input type="hidden" name="type" value="interview_question">`)
		hw.Raw(`<input id="company" name="company" placeholder="Company"`)
		hw.Attr("value", data.Form.Company)
		hw.Raw(`><input id="role" name="role" placeholder="Role"`)
		hw.Attr("value", data.Form.Role)
		hw.Raw(`><input id="difficulty" name="difficulty" placeholder="Difficulty"`)
		hw.Attr("value", data.Form.Difficulty)
		hw.Raw(`><button type="submit">Ask a new question</button></form>`)

		hw.Raw(`</section>`)
		return hw.Err()
	})
	return layout.Base(data.PageData, body)
}
