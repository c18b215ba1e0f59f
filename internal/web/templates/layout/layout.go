package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/services/nav"
	"github.com/mcoot/mockify/internal/web/templates"
	"github.com/mcoot/mockify/internal/web/templates/components"
)

// FlashMessage is a one-shot notice shown at the top of the next page
type FlashMessage struct {
	Type    string // success, error, info
	Message string
}

// PageData is shared by every page
type PageData struct {
	Title   string
	AppName string
	// CurrentPath is where the login modal closes back to
	CurrentPath string
	Navbar      nav.Navbar
	Modal       nav.Modal
	User        *model.Session
	Flash       *FlashMessage
}

// Base wraps body in the document shell: head, navbar, flash and login modal
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := templates.NewWriter(w)
		hw.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.Raw(`<title>`)
		hw.Text(data.Title + " | " + data.AppName)
		hw.Raw(`</title><script src="https://cdn.tailwindcss.com"></script></head>`)
		hw.Raw(`<body class="min-h-screen bg-slate-950 text-slate-100">`)

		hw.Component(ctx, components.Navbar(data.AppName, data.Navbar, data.User))

		if data.Flash != nil {
			hw.Raw(`<div class="flash flash-`)
			hw.Text(data.Flash.Type)
			hw.Raw(` mx-auto max-w-3xl mt-4 rounded px-4 py-2" role="status">`)
			hw.Text(data.Flash.Message)
			hw.Raw(`</div>`)
		}

		hw.Raw(`<main class="mx-auto max-w-3xl p-6">`)
		hw.Component(ctx, body)
		hw.Raw(`</main>`)

		hw.Component(ctx, components.LoginModal(data.Modal, data.CurrentPath))
		hw.Raw(`</body></html>`)
		return hw.Err()
	})
}
