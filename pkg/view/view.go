// Package view holds the page layout shared by both services. Pages are
// plain templ.Component values so they compile with the binary and cannot go
// missing at runtime.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const style = `body{font-family:system-ui,sans-serif;max-width:40rem;margin:2rem auto;padding:0 1rem;color:#222}` +
	`dt{font-weight:600;margin-top:.75rem}dd{margin:0;font-family:ui-monospace,monospace;word-break:break-all}` +
	`form{display:inline-block;margin-right:.5rem}button{padding:.4rem .9rem}ul{padding-left:1.2rem}` +
	`.muted{color:#888}`

// Layout wraps body in a minimal HTML document.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		ew.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		ew.raw(`<title>`)
		ew.text(title)
		ew.raw(`</title><style>` + style + `</style></head><body><h1>`)
		ew.text(title)
		ew.raw(`</h1>`)
		if ew.err != nil {
			return ew.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		ew.raw(`</body></html>`)
		return ew.err
	})
}

// Writer writes HTML fragments and remembers the first error, so components
// can emit markup without checking every call.
type Writer interface {
	Raw(s string)
	Text(s string)
	Attr(s string)
	URL(s string)
	Err() error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) Writer {
	return &errWriter{w: w}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) raw(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *errWriter) text(s string) { e.raw(templ.EscapeString(s)) }

func (e *errWriter) Raw(s string)  { e.raw(s) }
func (e *errWriter) Text(s string) { e.text(s) }
func (e *errWriter) Attr(s string) { e.text(s) }

// URL writes a sanitized, escaped URL for use in href attributes. Unsafe
// schemes such as javascript: are replaced by templ's failure marker.
func (e *errWriter) URL(s string) { e.text(string(templ.URL(s))) }

func (e *errWriter) Err() error { return e.err }
