package sessionwriter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/stickyregion/pkg/cookie"
	"github.com/dmitrymomot/stickyregion/pkg/environment"
	"github.com/dmitrymomot/stickyregion/pkg/logger"
	"github.com/dmitrymomot/stickyregion/pkg/response"
)

// TimestampLayout formats the session payload as ISO-8601 in UTC with
// millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Handler serves the session writer endpoints.
type Handler struct {
	cookies *cookie.Manager
	log     *slog.Logger
	now     func() time.Time

	region      string
	domain      string
	domainLink  string
	sessionName string
	regionName  string
	ttlSession  int
	ttlRegion   int
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock overrides the clock used for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// NewHandler creates a Handler for one region. Cookies are marked Secure
// when the request context carries the production environment, see
// environment.Middleware.
func NewHandler(cfg Config, cookies *cookie.Manager, opts ...Option) *Handler {
	h := &Handler{
		cookies:     cookies,
		log:         logger.Discard(),
		now:         time.Now,
		region:      cfg.Region,
		domain:      cfg.CookieDomain,
		domainLink:  cfg.DomainLink,
		sessionName: cfg.CookieNameSession,
		regionName:  cfg.CookieNameRegion,
		ttlSession:  cfg.TTLSessionSeconds,
		ttlRegion:   cfg.TTLRegionSeconds,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("sessionwriter"), logger.Region(h.region))
	return h
}

// State is what the index page shows.
type State struct {
	Session    string
	HasSession bool
	Region     string
	HasRegion  bool
	// Instance is the region this service writes on sign-in.
	Instance   string
	DomainLink string
}

// State reads the current cookies from r. A session cookie with a bad
// signature is reported as absent.
func (h *Handler) State(r *http.Request) State {
	s := State{Instance: h.region, DomainLink: h.domainLink}
	s.Session, s.HasSession = h.cookies.GetSigned(r, h.sessionName)

	s.Region, s.HasRegion = h.cookies.Get(r, h.regionName)
	if s.Region == "" {
		s.HasRegion = false
	}
	return s
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) response.Response {
	s := h.State(r)
	h.log.DebugContext(r.Context(), "rendering state",
		slog.Bool("session", s.HasSession),
		slog.Bool("region_cookie", s.HasRegion),
	)
	return response.Templ(statePage(s))
}

// SignIn sets a signed session cookie holding the sign-in time and an
// unsigned region cookie shared across the cookie domain.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) response.Response {
	stamp := h.now().UTC().Format(TimestampLayout)

	secure := environment.IsProduction(r.Context())

	h.cookies.SetSigned(w, h.sessionName, stamp, h.sessionOptions(secure, cookie.WithMaxAge(h.ttlSession))...)
	h.cookies.Set(w, h.regionName, h.region, h.regionOptions(secure, cookie.WithMaxAge(h.ttlRegion))...)

	h.log.InfoContext(r.Context(), "signed in", slog.String("session", stamp))
	return response.Redirect("/")
}

// SignOut expires the session cookie. The region cookie is left alone so
// affinity survives sign-out.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) response.Response {
	h.cookies.Delete(w, h.sessionName, h.sessionOptions(environment.IsProduction(r.Context()))...)
	h.log.InfoContext(r.Context(), "signed out", logger.Cookie(h.sessionName))
	return response.Redirect("/")
}

// ClearRegion expires the region cookie. The session cookie is left alone.
func (h *Handler) ClearRegion(w http.ResponseWriter, r *http.Request) response.Response {
	h.cookies.Delete(w, h.regionName, h.regionOptions(environment.IsProduction(r.Context()))...)
	h.log.InfoContext(r.Context(), "region cleared", logger.Cookie(h.regionName))
	return response.Redirect("/")
}

func (h *Handler) sessionOptions(secure bool, extra ...cookie.Option) []cookie.Option {
	return append([]cookie.Option{
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteStrictMode),
		cookie.WithSecure(secure),
	}, extra...)
}

// The region cookie must carry the same Domain on set and delete, otherwise
// the browser keeps the original.
func (h *Handler) regionOptions(secure bool, extra ...cookie.Option) []cookie.Option {
	return append([]cookie.Option{
		cookie.WithDomain(h.domain),
		cookie.WithHTTPOnly(false),
		cookie.WithSecure(secure),
	}, extra...)
}
