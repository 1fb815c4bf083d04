package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/section"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const scrollBinding = "portfolioScroll"

// Size is a browser window size in CSS pixels.
type Size struct {
	Width  int64
	Height int64
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ParseSize parses "1280x800".
func ParseSize(raw string) (Size, error) {
	w, h, ok := strings.Cut(strings.TrimSpace(raw), "x")
	if !ok {
		return Size{}, fmt.Errorf("viewport %q: want WIDTHxHEIGHT", raw)
	}
	width, err := strconv.ParseInt(w, 10, 64)
	if err != nil || width <= 0 {
		return Size{}, fmt.Errorf("viewport %q: bad width", raw)
	}
	height, err := strconv.ParseInt(h, 10, 64)
	if err != nil || height <= 0 {
		return Size{}, fmt.Errorf("viewport %q: bad height", raw)
	}
	return Size{Width: width, Height: height}, nil
}

// ParseSizes parses a comma-separated list of sizes.
func ParseSizes(raw string) ([]Size, error) {
	var sizes []Size
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		s, err := ParseSize(part)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, s)
	}
	if len(sizes) == 0 {
		return nil, errors.New("no viewport sizes given")
	}
	return sizes, nil
}

// ParseOffsets parses a comma-separated list of scroll offsets.
func ParseOffsets(raw string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("scroll offset %q: want a non-negative number", part)
		}
		out = append(out, v)
	}
	return out, nil
}

type Options struct {
	URL        string
	Viewports  []Size
	Offsets    []float64
	ChromePath string
	Headless   bool
	Timeout    time.Duration
	Logger     *zap.Logger
}

// Result is the active section observed at one scroll offset.
type Result struct {
	Viewport  Size
	Requested float64
	Scrolled  float64
	Active    section.ID
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) allocator(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", o.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if o.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(o.ChromePath))
	} else if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}
	return chromedp.NewExecAllocator(ctx, opts...)
}

// Run opens one tab per viewport in parallel, scrolls each to every
// offset and records the active section the tracker settles on. Results
// are grouped by viewport in the order given.
func Run(ctx context.Context, o Options) ([]Result, error) {
	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	allocCtx, cancelAlloc := o.allocator(ctx)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// ensure Chrome starts before tabs are opened
	if err := chromedp.Run(browserCtx); err != nil {
		return nil, fmt.Errorf("start chrome: %w", err)
	}

	perViewport := make([][]Result, len(o.Viewports))
	var mu sync.Mutex

	p := pool.New().WithContext(ctx).WithCancelOnError()
	for idx, size := range o.Viewports {
		p.Go(func(ctx context.Context) error {
			results, err := probeViewport(ctx, browserCtx, o, size)
			if err != nil {
				return fmt.Errorf("viewport %s: %w", size, err)
			}
			mu.Lock()
			perViewport[idx] = results
			mu.Unlock()
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	var all []Result
	for _, rs := range perViewport {
		all = append(all, rs...)
	}
	return all, nil
}

func openTab(ctx, browserCtx context.Context, o Options, size Size) (context.Context, context.CancelFunc, error) {
	tab, cancel := chromedp.NewContext(browserCtx)
	stop := context.AfterFunc(ctx, cancel)
	cancelAll := func() {
		stop()
		cancel()
	}

	err := chromedp.Run(tab,
		chromedp.EmulateViewport(size.Width, size.Height),
		chromedp.Navigate(o.URL),
		chromedp.WaitReady("#contact", chromedp.ByQuery),
	)
	if err != nil {
		cancelAll()
		return nil, nil, fmt.Errorf("load %s: %w", o.URL, err)
	}
	return tab, cancelAll, nil
}

func probeViewport(ctx, browserCtx context.Context, o Options, size Size) ([]Result, error) {
	tab, cancel, err := openTab(ctx, browserCtx, o, size)
	if err != nil {
		return nil, err
	}
	defer cancel()

	b := NewBrowser(tab)
	tracker := nav.NewTracker()
	results := make([]Result, 0, len(o.Offsets))
	for _, off := range o.Offsets {
		scrolled, err := b.ScrollTo(off)
		if err != nil {
			return nil, err
		}
		snap, err := b.snapshot(ctx)
		if err != nil {
			return nil, err
		}
		active := tracker.Update(snap)
		o.logger().Debug("probe sample",
			zap.Stringer("viewport", size),
			zap.Float64("scroll", scrolled),
			zap.String("tops", nav.FormatOffsets(snap.Tops)),
			zap.String("active", active.String()),
		)
		results = append(results, Result{Viewport: size, Requested: off, Scrolled: scrolled, Active: active})
	}
	return results, nil
}

// Follow opens the page in a visible window and writes one line to out
// each time the active section changes while the user scrolls. It
// returns nil once ctx is cancelled.
func Follow(ctx context.Context, o Options, out io.Writer) error {
	size := Size{Width: 1280, Height: 800}
	if len(o.Viewports) > 0 {
		size = o.Viewports[0]
	}

	allocCtx, cancelAlloc := o.allocator(ctx)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	tab, cancel, err := openTab(ctx, browserCtx, o, size)
	if err != nil {
		return err
	}
	defer cancel()

	trigger := nav.NewTrigger()
	chromedp.ListenTarget(tab, func(ev interface{}) {
		if called, ok := ev.(*runtime.EventBindingCalled); ok && called.Name == scrollBinding {
			trigger.Fire()
		}
	})

	err = chromedp.Run(tab,
		runtime.AddBinding(scrollBinding),
		chromedp.Evaluate(`window.addEventListener('scroll', function () { `+scrollBinding+`(''); }, { passive: true })`, nil),
	)
	if err != nil {
		return fmt.Errorf("attach scroll listener: %w", err)
	}

	tracker := nav.NewTracker()
	unsubscribe := tracker.Subscribe(func(id section.ID) {
		fmt.Fprintf(out, "%s\tactive=%s\n", time.Now().Format("15:04:05"), id)
	})
	defer unsubscribe()

	fmt.Fprintf(out, "following %s at %s (initial active=%s)\n", o.URL, size, tracker.Active())
	err = tracker.Watch(ctx, NewBrowser(tab), trigger)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
