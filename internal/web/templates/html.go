// Package templates holds the HTML writer shared by the page components.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer writes HTML fragments, keeping the first error so components read top to bottom
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as is
func (hw *Writer) Raw(parts ...string) {
	for _, p := range parts {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, p)
	}
}

// Text writes escaped text
func (hw *Writer) Text(s string) {
	hw.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped
func (hw *Writer) Attr(name, value string) {
	hw.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// Href writes an href attribute, refusing unsafe URL schemes
func (hw *Writer) Href(url string) {
	hw.Attr("href", string(templ.URL(url)))
}

// Component renders a child component
func (hw *Writer) Component(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// Err returns the first write error
func (hw *Writer) Err() error {
	return hw.err
}
