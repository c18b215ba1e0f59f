package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/services/nav"
	"github.com/mcoot/mockify/internal/web/templates"
)

// Navbar renders the top bar. loginBtn and nav-dashboard follow the navbar state.
func Navbar(appName string, state nav.Navbar, user *model.Session) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := templates.NewWriter(w)
		hw.Raw(`<nav class="flex items-center gap-4 border-b border-slate-800 px-6 py-3">`)
		hw.Raw(`<a class="font-bold"`)
		hw.Href(nav.IndexPage)
		hw.Raw(`>`)
		hw.Text(appName)
		hw.Raw(`</a>`)

		hw.Raw(`<a id="nav-interview"`)
		hw.Href(nav.InterviewPage)
		hw.Raw(`>Interview</a>`)

		hw.Raw(`<a id="nav-dashboard"`)
		hw.Href(nav.DashboardPage)
		if state.DashboardHidden {
			hw.Attr("class", "hidden")
		}
		hw.Raw(`>Dashboard</a>`)

		hw.Raw(`<span class="ml-auto"></span>`)
		if user != nil {
			hw.Raw(`<span id="nav-user">`)
			hw.Text(user.Username)
			hw.Raw(`</span>`)
		}

		switch state.LoginAction {
		case nav.ActionLogout:
			hw.Raw(`<form method="post" action="/auth/logout">`)
			hw.Raw(`<button id="loginBtn" type="submit"`)
			hw.Attr("data-action", string(state.LoginAction))
			hw.Raw(`>`)
			hw.Text(state.LoginButtonText)
			hw.Raw(`</button></form>`)
		default:
			hw.Raw(`<a id="loginBtn"`)
			hw.Href(nav.IndexPage + "?login=1")
			hw.Attr("data-action", string(state.LoginAction))
			hw.Raw(`>`)
			hw.Text(state.LoginButtonText)
			hw.Raw(`</a>`)
		}

		hw.Raw(`</nav>`)
		return hw.Err()
	})
}

// LoginModal renders the login dialog. Its classes carry the open/closed state.
func LoginModal(modal nav.Modal, closeHref string) templ.Component {
	if closeHref == "" {
		closeHref = nav.IndexPage
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := templates.NewWriter(w)
		hw.Raw(`<div id="loginModal"`)
		hw.Attr("class", modal.Classes()+" fixed inset-0 items-center justify-center bg-black/60")
		hw.Raw(`><div class="w-80 rounded bg-slate-900 p-6">`)
		hw.Raw(`<h2 class="mb-4 text-lg font-semibold">Log In</h2>`)

		hw.Raw(`<form id="loginForm" method="post" action="/auth/login" class="flex flex-col gap-3">`)
		hw.Raw(`<input id="username" name="username" type="text" placeholder="Username" autocomplete="username">`)
		hw.Raw(`<input id="password" name="password" type="password" placeholder="Password" autocomplete="current-password">`)
		hw.Raw(`<button type="submit">Log In</button></form>`)

		hw.Raw(`<form method="post" action="/auth/demo" class="mt-2">`)
		hw.Raw(`<button id="demoLoginBtn" type="submit">Try the demo</button></form>`)

		hw.Raw(`<a id="closeLoginModal"`)
		hw.Href(closeHref)
		hw.Raw(`>Close</a></div></div>`)
		return hw.Err()
	})
}
