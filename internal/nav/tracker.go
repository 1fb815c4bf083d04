// Package nav tracks which page section is active while the visitor scrolls
// and owns the mobile menu state.
package nav

import (
	"context"
	"sync"

	"github.com/Zachkp/portfolio/internal/section"
)

const (
	// LookaheadBias activates a link slightly before its section reaches
	// the top of the viewport.
	LookaheadBias = 150
	// BottomThreshold is how close to the end of the document the page must
	// be scrolled for contact to win outright.
	BottomThreshold = 100
)

// Resolve returns the section that best represents the viewport's scroll
// position. When nothing matches, current is returned unchanged.
func Resolve(v Viewport, current section.ID) section.ID {
	if v.ScrollY()+v.InnerHeight() >= v.DocumentHeight()-BottomThreshold {
		return section.Contact
	}

	position := v.ScrollY() + LookaheadBias
	order := section.Order()
	for i := len(order) - 1; i >= 0; i-- {
		top, ok := v.SectionTop(order[i])
		if !ok {
			continue
		}
		if position >= top {
			return order[i]
		}
	}
	return current
}

// Tracker holds the active section as observable state.
type Tracker struct {
	mu        sync.Mutex
	active    section.ID
	nextID    int
	listeners map[int]func(section.ID)
}

// NewTracker returns a tracker whose active section is home.
func NewTracker() *Tracker {
	return &Tracker{
		active:    section.Home,
		listeners: make(map[int]func(section.ID)),
	}
}

// Active returns the current active section.
func (t *Tracker) Active() section.ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Update recomputes the active section from v and notifies subscribers if
// it changed.
func (t *Tracker) Update(v Viewport) section.ID {
	t.mu.Lock()
	prev := t.active
	next := Resolve(v, prev)
	t.active = next
	var notify []func(section.ID)
	if next != prev {
		notify = make([]func(section.ID), 0, len(t.listeners))
		for _, fn := range t.listeners {
			notify = append(notify, fn)
		}
	}
	t.mu.Unlock()

	for _, fn := range notify {
		fn(next)
	}
	return next
}

// Subscribe registers fn for active-section changes. The returned func
// removes the subscription.
func (t *Tracker) Subscribe(fn func(section.ID)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.listeners, id)
	}
}

// Watch measures host once immediately and again each time trigger fires,
// until ctx is cancelled. Measurement errors end the watch.
func (t *Tracker) Watch(ctx context.Context, host Host, trigger *Trigger) error {
	recompute := func() error {
		v, err := host.Measure(ctx)
		if err != nil {
			return err
		}
		t.Update(v)
		return nil
	}

	if err := recompute(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-trigger.C():
			if err := recompute(); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return err
			}
		}
	}
}
