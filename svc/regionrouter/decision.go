package regionrouter

import (
	"github.com/dmitrymomot/stickyregion/pkg/cookie"
	"github.com/dmitrymomot/stickyregion/pkg/region"
)

// Reason explains a Decision.
type Reason string

const (
	ReasonNoCookieHeader Reason = "no_cookie_header"
	ReasonNoRegionCookie Reason = "no_region_cookie"
	ReasonUnknownRegion  Reason = "unknown_region"
	ReasonEmptyRegionURL Reason = "empty_region_url"
	ReasonMatched        Reason = "matched"
)

// Decision is the outcome of routing one request.
type Decision struct {
	// Redirect is true only when Region has a non-empty URL.
	Redirect bool
	Reason   Reason
	// Cookie is the raw region cookie value, empty when there was none.
	Cookie string
	Region region.Region
}

// Decide maps a Cookie header to a Decision. It never fails: anything short
// of a known region with a URL means rendering the picker.
func Decide(header, cookieName string, dir *region.Directory) Decision {
	if header == "" {
		return Decision{Reason: ReasonNoCookieHeader}
	}

	name, ok := cookie.Lookup(header, cookieName)
	if !ok || name == "" {
		return Decision{Reason: ReasonNoRegionCookie}
	}

	r, ok := dir.Find(name)
	if !ok {
		return Decision{Reason: ReasonUnknownRegion, Cookie: name}
	}
	if r.URL == "" {
		return Decision{Reason: ReasonEmptyRegionURL, Cookie: name, Region: r}
	}

	return Decision{Redirect: true, Reason: ReasonMatched, Cookie: name, Region: r}
}
