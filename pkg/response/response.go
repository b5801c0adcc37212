// Package response renders handler results: redirects and templ pages.
//
// Handlers return a Response instead of writing to the ResponseWriter
// directly, and Wrap turns them into http.HandlerFunc values. Requests made
// by the datastar client (Accept: text/event-stream, a "datastar" query
// parameter or an application/x-datastar body) receive redirects as
// server-sent events so the browser navigates without a full form post.
package response

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept header value sent by datastar.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarQueryParam is the query parameter datastar puts signals in.
	DataStarQueryParam = "datastar"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// HandlerFunc produces a Response. It may still set headers such as
// Set-Cookie on w before returning.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) Response

// Wrap adapts h to http.HandlerFunc. A nil response or a render error is
// logged and answered with 500.
func Wrap(h HandlerFunc, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := h(w, r)
		if resp == nil {
			resp = Error(http.StatusInternalServerError)
		}
		if err := resp.Render(w, r); err != nil {
			if log != nil {
				log.ErrorContext(r.Context(), "render response", slog.Any("error", err), slog.String("path", r.URL.Path))
			}
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

// IsDataStar reports whether r was sent by the datastar client.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

type redirectResponse struct {
	url   string
	code  int
	plain bool
}

func (rr redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !rr.plain && IsDataStar(r) {
		return datastar.NewSSE(w, r).Redirect(rr.url)
	}
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, rr.url, rr.code)
	return nil
}

// Redirect responds with 302 Found.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusFound}
}

// HTTPRedirect always responds with 302 Found and a Location header, even to
// datastar requests. Use it for endpoints whose contract is the status code.
func HTTPRedirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusFound, plain: true}
}

// RedirectWithCode responds with an explicit 3xx status.
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}

type templResponse struct {
	component templ.Component
	status    int
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if t.status != 0 && t.status != http.StatusOK {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ renders a component as a full HTML page with status 200.
func Templ(component templ.Component) Response {
	return templResponse{component: component}
}

// TemplWithStatus renders a component with the given status code.
func TemplWithStatus(component templ.Component, status int) Response {
	return templResponse{component: component, status: status}
}

type errorResponse struct {
	code int
}

func (e errorResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	http.Error(w, http.StatusText(e.code), e.code)
	return nil
}

// Error responds with the status text of code.
func Error(code int) Response {
	return errorResponse{code: code}
}
