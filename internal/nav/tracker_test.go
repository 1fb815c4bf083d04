package nav

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourSections(scroll float64) Snapshot {
	return Snapshot{
		Scroll:   scroll,
		Inner:    800,
		Document: 6000,
		Tops: map[section.ID]float64{
			section.Home:           0,
			section.Projects:       800,
			section.Experience:     1600,
			section.Certifications: 2400,
		},
	}
}

func TestResolve(t *testing.T) {
	t.Run("Should pick the bottommost section above the lookahead position", func(t *testing.T) {
		assert.Equal(t, section.Projects, Resolve(fourSections(700), section.Home))
		assert.Equal(t, section.Experience, Resolve(fourSections(1500), section.Home))
		assert.Equal(t, section.Home, Resolve(fourSections(0), section.Skills))
	})

	t.Run("Should activate exactly at the biased boundary", func(t *testing.T) {
		assert.Equal(t, section.Projects, Resolve(fourSections(650), section.Home))
		assert.Equal(t, section.Home, Resolve(fourSections(649.5), section.Home))
	})

	t.Run("Should force contact near the bottom of the document", func(t *testing.T) {
		v := fourSections(5100)
		assert.Equal(t, section.Contact, Resolve(v, section.Home))

		v.Tops = map[section.ID]float64{}
		assert.Equal(t, section.Contact, Resolve(v, section.Home))
	})

	t.Run("Should not force contact just outside the bottom threshold", func(t *testing.T) {
		// 5099 + 800 = 5899 < 6000 - 100
		assert.Equal(t, section.Certifications, Resolve(fourSections(5099), section.Home))
	})

	t.Run("Should keep the previous section when nothing matches", func(t *testing.T) {
		v := Snapshot{
			Scroll:   0,
			Inner:    800,
			Document: 6000,
			Tops:     map[section.ID]float64{section.Projects: 900, section.Skills: 3000},
		}
		assert.Equal(t, section.Experience, Resolve(v, section.Experience))
	})

	t.Run("Should skip sections that cannot be measured", func(t *testing.T) {
		v := fourSections(1500)
		delete(v.Tops, section.Experience)
		assert.Equal(t, section.Projects, Resolve(v, section.Home))
	})

	t.Run("Should let the later section win a tie", func(t *testing.T) {
		v := fourSections(1000)
		v.Tops[section.Experience] = 800
		assert.Equal(t, section.Experience, Resolve(v, section.Home))
	})

	t.Run("Should be deterministic for the same measurements", func(t *testing.T) {
		for s := 0.0; s < 6000; s += 37 {
			assert.Equal(t, Resolve(fourSections(s), section.Home), Resolve(fourSections(s), section.Home))
		}
	})
}

type lazyViewport struct {
	Snapshot
	asked []section.ID
}

func (l *lazyViewport) SectionTop(id section.ID) (float64, bool) {
	l.asked = append(l.asked, id)
	return l.Snapshot.SectionTop(id)
}

func TestResolveStopsAtFirstMatch(t *testing.T) {
	v := &lazyViewport{Snapshot: fourSections(2300)}
	assert.Equal(t, section.Certifications, Resolve(v, section.Home))
	assert.Equal(t, []section.ID{section.Contact, section.Skills, section.Certifications}, v.asked)
}

func TestTracker(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, section.Home, tr.Active())

	var seen []section.ID
	unsubscribe := tr.Subscribe(func(id section.ID) { seen = append(seen, id) })

	tr.Update(fourSections(700))
	tr.Update(fourSections(710))
	tr.Update(fourSections(1500))
	assert.Equal(t, []section.ID{section.Projects, section.Experience}, seen)

	t.Run("Should retain the active section when no section matches", func(t *testing.T) {
		got := tr.Update(Snapshot{Scroll: 0, Inner: 800, Document: 6000})
		assert.Equal(t, section.Experience, got)
		assert.Equal(t, section.Experience, tr.Active())
	})

	unsubscribe()
	tr.Update(fourSections(5500))
	assert.Equal(t, section.Contact, tr.Active())
	assert.Len(t, seen, 2)
}

type scriptedHost struct {
	mu    sync.Mutex
	views []Viewport
	calls int
	err   error
}

func (h *scriptedHost) Measure(context.Context) (Viewport, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return nil, h.err
	}
	v := h.views[min(h.calls, len(h.views)-1)]
	h.calls++
	return v, nil
}

func TestTrackerWatch(t *testing.T) {
	host := &scriptedHost{views: []Viewport{fourSections(1500), fourSections(700)}}
	tr := NewTracker()
	changes := make(chan section.ID, 4)
	tr.Subscribe(func(id section.ID) { changes <- id })

	ctx, cancel := context.WithCancel(context.Background())
	trigger := NewTrigger()
	done := make(chan error, 1)
	go func() { done <- tr.Watch(ctx, host, trigger) }()

	select {
	case id := <-changes:
		assert.Equal(t, section.Experience, id, "initial measurement runs before any scroll")
	case <-time.After(time.Second):
		t.Fatal("no initial measurement")
	}

	trigger.Fire()
	select {
	case id := <-changes:
		assert.Equal(t, section.Projects, id)
	case <-time.After(time.Second):
		t.Fatal("trigger did not recompute")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestTrackerWatchMeasureError(t *testing.T) {
	boom := errors.New("detached")
	host := &scriptedHost{err: boom}
	err := NewTracker().Watch(context.Background(), host, NewTrigger())
	require.ErrorIs(t, err, boom)
}

func TestTriggerCoalesces(t *testing.T) {
	tr := NewTrigger()
	for i := 0; i < 100; i++ {
		tr.Fire()
	}
	assert.Len(t, tr.ch, 1)

	<-tr.C()
	assert.Len(t, tr.ch, 0)
}
