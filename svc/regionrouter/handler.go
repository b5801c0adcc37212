package regionrouter

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/stickyregion/pkg/cookie"
	"github.com/dmitrymomot/stickyregion/pkg/logger"
	"github.com/dmitrymomot/stickyregion/pkg/region"
	"github.com/dmitrymomot/stickyregion/pkg/response"
)

// Handler serves the region router endpoints.
type Handler struct {
	dir        *region.Directory
	cookieName string
	log        *slog.Logger
}

// NewHandler creates a Handler. A nil logger discards output.
func NewHandler(dir *region.Directory, cookieName string, log *slog.Logger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{
		dir:        dir,
		cookieName: cookieName,
		log:        log.With(logger.Component("regionrouter")),
	}
}

// Decide routes a raw Cookie header against the handler's directory.
func (h *Handler) Decide(header string) Decision {
	return Decide(header, h.cookieName, h.dir)
}

// Index redirects to the region named by the region cookie or renders the
// picker.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) response.Response {
	ctx := r.Context()
	d := h.Decide(cookie.RequestHeader(r))

	switch d.Reason {
	case ReasonMatched:
		h.log.DebugContext(ctx, "redirecting to region",
			logger.Region(d.Region.Name),
			slog.String("url", d.Region.URL),
		)
		return response.HTTPRedirect(d.Region.URL)
	case ReasonUnknownRegion:
		h.log.InfoContext(ctx, "region cookie does not match any region",
			logger.Region(d.Cookie),
			logger.Reason(string(d.Reason)),
		)
	case ReasonEmptyRegionURL:
		h.log.WarnContext(ctx, "region has no url, rendering picker",
			logger.Region(d.Cookie),
			logger.Reason(string(d.Reason)),
		)
	default:
		h.log.DebugContext(ctx, "rendering picker", logger.Reason(string(d.Reason)))
	}

	return response.Templ(pickerPage(h.dir.Regions(), d.Cookie))
}

// Ready fails when the directory has no regions to offer.
func (h *Handler) Ready() error {
	if h.dir.Len() == 0 {
		return region.ErrNoRegions
	}
	return nil
}
