package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/mockify/internal/services/nav"
	"github.com/mcoot/mockify/internal/web/templates"
	"github.com/mcoot/mockify/internal/web/templates/layout"
)

// IndexData is the landing page
type IndexData struct {
	layout.PageData
}

// Index renders the landing page
func Index(data IndexData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := templates.NewWriter(w)
		hw.Raw(`<section id="hero" class="py-12 text-center">`)
		hw.Raw(`<h1 class="text-4xl font-bold">`)
		hw.Text(data.AppName)
		hw.Raw(`</h1><p class="mt-4 text-slate-400">Practise interviews with an AI interviewer and get a scored report.</p>`)

		if data.User != nil {
			hw.Raw(`<p class="mt-6">Welcome back, <strong id="welcome-user">`)
			hw.Text(data.User.Username)
			hw.Raw(`</strong>.</p>`)
		}

		hw.Raw(`<a id="start-interview" class="mt-8 inline-block rounded bg-indigo-600 px-6 py-3"`)
		hw.Href(nav.InterviewPage)
		hw.Raw(`>Start an interview</a></section>`)
		return hw.Err()
	})
	return layout.Base(data.PageData, body)
}
