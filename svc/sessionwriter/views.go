package sessionwriter

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/stickyregion/pkg/view"
)

func statePage(s State) templ.Component {
	return view.Layout("Region "+s.Instance, stateBody(s))
}

func stateBody(s State) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		vw := view.NewWriter(w)

		vw.Raw(`<dl>`)
		row(vw, "Session", s.Session, s.HasSession)
		row(vw, "Region cookie", s.Region, s.HasRegion)
		row(vw, "This region", s.Instance, true)
		vw.Raw(`</dl>`)

		vw.Raw(`<p>`)
		form(vw, "/signin", "Sign in")
		form(vw, "/signout", "Sign out")
		form(vw, "/nix", "Clear region")
		vw.Raw(`</p>`)

		if s.DomainLink != "" {
			vw.Raw(`<p><a href="`)
			vw.URL(s.DomainLink)
			vw.Raw(`">`)
			vw.Text(s.DomainLink)
			vw.Raw(`</a></p>`)
		}

		return vw.Err()
	})
}

func row(vw view.Writer, label, value string, ok bool) {
	vw.Raw(`<dt>`)
	vw.Text(label)
	vw.Raw(`</dt><dd>`)
	if ok {
		vw.Text(value)
	} else {
		vw.Raw(`<span class="muted">none</span>`)
	}
	vw.Raw(`</dd>`)
}

func form(vw view.Writer, action, label string) {
	vw.Raw(`<form method="post" action="`)
	vw.Attr(action)
	vw.Raw(`"><button type="submit">`)
	vw.Text(label)
	vw.Raw(`</button></form>`)
}
