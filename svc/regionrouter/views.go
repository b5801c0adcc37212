package regionrouter

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/stickyregion/pkg/region"
	"github.com/dmitrymomot/stickyregion/pkg/view"
)

func pickerPage(regions []region.Region, current string) templ.Component {
	return view.Layout("Choose a region", pickerList(regions, current))
}

func pickerList(regions []region.Region, current string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		vw := view.NewWriter(w)

		if current != "" {
			vw.Raw(`<p class="muted">Region cookie <code>`)
			vw.Text(current)
			vw.Raw(`</code> does not point to a usable region.</p>`)
		}

		if len(regions) == 0 {
			vw.Raw(`<p>No regions are configured.</p>`)
			return vw.Err()
		}

		vw.Raw(`<ul class="regions">`)
		for _, r := range regions {
			vw.Raw(`<li>`)
			if r.URL == "" {
				vw.Text(r.Name)
				vw.Raw(` <span class="muted">(unavailable)</span>`)
			} else {
				vw.Raw(`<a href="`)
				vw.URL(r.URL)
				vw.Raw(`">`)
				vw.Text(r.Name)
				vw.Raw(`</a>`)
			}
			vw.Raw(`</li>`)
		}
		vw.Raw(`</ul>`)

		return vw.Err()
	})
}
