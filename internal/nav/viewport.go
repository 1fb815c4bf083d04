package nav

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Zachkp/portfolio/internal/section"
)

// Viewport is the host environment the tracker measures: the live scroll
// position, the window and document heights, and the top edge of each
// section that is currently present.
type Viewport interface {
	ScrollY() float64
	InnerHeight() float64
	DocumentHeight() float64
	// SectionTop reports false when the section is not present or cannot
	// be measured yet.
	SectionTop(id section.ID) (float64, bool)
}

// Host produces a fresh Viewport measurement on demand.
type Host interface {
	Measure(ctx context.Context) (Viewport, error)
}

// Snapshot is a fixed measurement of a viewport.
type Snapshot struct {
	Scroll   float64
	Inner    float64
	Document float64
	Tops     map[section.ID]float64
}

func (s Snapshot) ScrollY() float64        { return s.Scroll }
func (s Snapshot) InnerHeight() float64    { return s.Inner }
func (s Snapshot) DocumentHeight() float64 { return s.Document }

func (s Snapshot) SectionTop(id section.ID) (float64, bool) {
	top, ok := s.Tops[id]
	return top, ok
}

// ParseOffsets decodes "home:0,projects:800" into a top-offset table.
// Empty input yields an empty table.
func ParseOffsets(raw string) (map[section.ID]float64, error) {
	tops := make(map[section.ID]float64)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return tops, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return nil, fmt.Errorf("malformed offset %q", pair)
		}
		id, err := section.Parse(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		top, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("offset for %s: %w", id, err)
		}
		tops[id] = top
	}
	return tops, nil
}

// FormatOffsets is the inverse of ParseOffsets, in tracking order.
func FormatOffsets(tops map[section.ID]float64) string {
	parts := make([]string, 0, len(tops))
	for _, id := range section.Order() {
		if top, ok := tops[id]; ok {
			parts = append(parts, id.String()+":"+strconv.FormatFloat(top, 'f', -1, 64))
		}
	}
	return strings.Join(parts, ",")
}
