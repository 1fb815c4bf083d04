// Package probe measures a rendered portfolio in Chrome and runs the
// active-section tracker against the real layout.
package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/section"
	"github.com/chromedp/chromedp"
)

// measureScript reads the same values the in-page script sends to /nav.
var measureScript = func() string {
	ids := make([]string, 0, len(section.Order()))
	for _, id := range section.Order() {
		ids = append(ids, `"`+id.String()+`"`)
	}
	return `(function (ids) {
  var tops = {};
  ids.forEach(function (id) {
    var el = document.getElementById(id);
    if (el) { tops[id] = el.offsetTop; }
  });
  return {
    scrollY: window.scrollY,
    innerHeight: window.innerHeight,
    documentHeight: document.body.offsetHeight,
    tops: tops
  };
})([` + strings.Join(ids, ",") + `])`
}()

type measurement struct {
	ScrollY        float64            `json:"scrollY"`
	InnerHeight    float64            `json:"innerHeight"`
	DocumentHeight float64            `json:"documentHeight"`
	Tops           map[string]float64 `json:"tops"`
}

func (m measurement) snapshot() nav.Snapshot {
	tops := make(map[section.ID]float64, len(m.Tops))
	for raw, top := range m.Tops {
		id, err := section.Parse(raw)
		if err != nil {
			continue
		}
		tops[id] = top
	}
	return nav.Snapshot{
		Scroll:   m.ScrollY,
		Inner:    m.InnerHeight,
		Document: m.DocumentHeight,
		Tops:     tops,
	}
}

// Browser is a nav.Host backed by one Chrome tab.
type Browser struct {
	tab context.Context
}

// NewBrowser wraps a chromedp tab context.
func NewBrowser(tab context.Context) *Browser {
	return &Browser{tab: tab}
}

// Measure reads the current layout of the tab.
func (b *Browser) Measure(ctx context.Context) (nav.Viewport, error) {
	snap, err := b.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (b *Browser) snapshot(ctx context.Context) (nav.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nav.Snapshot{}, err
	}
	var m measurement
	if err := chromedp.Run(b.tab, chromedp.Evaluate(measureScript, &m)); err != nil {
		return nav.Snapshot{}, fmt.Errorf("measure layout: %w", err)
	}
	return m.snapshot(), nil
}

// ScrollTo scrolls the tab and returns the resulting scroll offset, which
// the browser clamps to the scrollable range.
func (b *Browser) ScrollTo(y float64) (float64, error) {
	var got float64
	expr := fmt.Sprintf("window.scrollTo(0, %g); window.scrollY", y)
	if err := chromedp.Run(b.tab, chromedp.Evaluate(expr, &got)); err != nil {
		return 0, fmt.Errorf("scroll to %g: %w", y, err)
	}
	return got, nil
}
