package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/web/templates"
	"github.com/mcoot/mockify/internal/web/templates/layout"
)

// DashboardData is the stats dashboard
type DashboardData struct {
	layout.PageData
	Stats *model.InterviewStats
	// Error is set when the stats could not be fetched
	Error string
}

// Dashboard renders the stats dashboard
func Dashboard(data DashboardData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := templates.NewWriter(w)
		hw.Raw(`<section class="flex flex-col gap-6"><h1 class="text-2xl font-bold">Dashboard</h1>`)

		if data.Error != "" || data.Stats == nil {
			hw.Raw(`<p id="status" class="text-red-400">`)
			hw.Text(data.Error)
			hw.Raw(`</p></section>`)
			return hw.Err()
		}

		hw.Raw(`<div class="grid grid-cols-2 gap-4">`)
		hw.Raw(`<div><p class="text-sm text-slate-400">Interviews</p><p id="total-interviews" class="text-3xl">`)
		hw.Text(strconv.Itoa(data.Stats.TotalInterviews))
		hw.Raw(`</p></div><div><p class="text-sm text-slate-400">Average score</p><p id="average-score" class="text-3xl">`)
		hw.Text(strconv.Itoa(data.Stats.AverageScore))
		hw.Raw(`</p></div></div>`)

		if len(data.Stats.History) == 0 {
			hw.Raw(`<p id="history-empty">No interviews yet.</p></section>`)
			return hw.Err()
		}

		hw.Raw(`<table id="history" class="w-full text-left"><thead><tr>`)
		hw.Raw(`<th>Date</th><th>Company</th><th>Role</th><th>Round</th><th>Score</th><th>Verdict</th>`)
		hw.Raw(`</tr></thead><tbody>`)
		// newest first
		for i := len(data.Stats.History) - 1; i >= 0; i-- {
			e := data.Stats.History[i]
			hw.Raw(`<tr class="history-row">`)
			for _, cell := range []string{e.Date, e.Company, e.Role, e.Round, strconv.Itoa(e.Score), e.Verdict} {
				hw.Raw(`<td>`)
				hw.Text(cell)
				hw.Raw(`</td>`)
			}
			hw.Raw(`</tr>`)
		}
		hw.Raw(`</tbody></table></section>`)
		return hw.Err()
	})
	return layout.Base(data.PageData, body)
}
