package regionrouter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/stickyregion/pkg/environment"
	"github.com/dmitrymomot/stickyregion/pkg/httpserver"
	"github.com/dmitrymomot/stickyregion/pkg/requestid"
	"github.com/dmitrymomot/stickyregion/pkg/response"
)

// Routes mounts the handler on a chi router. Extra middleware runs after the
// built-in stack.
func (h *Handler) Routes(env environment.Environment, extra ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		environment.Middleware(env),
	)
	r.Use(extra...)

	r.Get("/", response.Wrap(h.Index, h.log))
	r.Get("/healthz", httpserver.HealthCheckHandler(h.log, func(context.Context) error {
		return h.Ready()
	}))

	return r
}
