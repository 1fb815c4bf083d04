package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/Zachkp/portfolio/internal/clipboard"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/probe"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/section"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func renderCmd(_ context.Context, a *app, args []string) error {
	fs := newFlagSet("render", a)
	out := fs.String("o", "", "output file (default stdout)")
	active := fs.String("active", string(section.Home), "section to mark active")
	only := fs.String("section", "", "render a single section instead of the whole page")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := section.Parse(*active)
	if err != nil {
		return err
	}
	renderer, err := render.New()
	if err != nil {
		return err
	}

	w := a.stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	state := nav.DefaultState()
	state.Active = id
	data := render.NewPageData(a.site, state, time.Now())
	if *only != "" {
		sid, err := section.Parse(*only)
		if err != nil {
			return err
		}
		if err := renderer.Section(w, sid, data); err != nil {
			return fmt.Errorf("render section %s: %w", sid, err)
		}
		return nil
	}
	if err := renderer.Page(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func probeCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("probe", a)
	target := fs.String("url", "", "page to probe (default: an in-process server)")
	viewports := fs.String("viewports", "1280x800,390x844", "comma-separated WIDTHxHEIGHT sizes")
	at := fs.String("at", "0,700,1500,2400,100000", "comma-separated scroll offsets")
	follow := fs.Bool("follow", false, "open a visible window and report changes while scrolling")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes, err := probe.ParseSizes(*viewports)
	if err != nil {
		return err
	}
	offsets, err := probe.ParseOffsets(*at)
	if err != nil {
		return err
	}

	url := *target
	if url == "" {
		local, stop, err := startLocal(a)
		if err != nil {
			return err
		}
		defer stop()
		url = local
	}

	opts := probe.Options{
		URL:        url,
		Viewports:  sizes,
		Offsets:    offsets,
		ChromePath: a.cfg.Probe.ChromePath,
		Headless:   !*follow,
		Timeout:    a.cfg.Probe.Timeout,
		Logger:     a.logger,
	}
	if *follow {
		opts.Timeout = 0
		return probe.Follow(ctx, opts, a.stdout)
	}

	results, err := probe.Run(ctx, opts)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VIEWPORT\tREQUESTED\tSCROLLED\tACTIVE")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%g\t%g\t%s\n", r.Viewport, r.Requested, r.Scrolled, r.Active)
	}
	return tw.Flush()
}

// startLocal serves the portfolio on a loopback port for the probe.
func startLocal(a *app) (string, func(), error) {
	gin.SetMode(gin.ReleaseMode)
	engine, err := newEngine(a)
	if err != nil {
		return "", nil, err
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, err
	}
	srv := &http.Server{Handler: engine, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("probe server failed", zap.Error(err))
		}
	}()
	return "http://" + ln.Addr().String(), func() { _ = srv.Close() }, nil
}

func copyEmailCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("copy-email", a)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return copyEmail(ctx, a, clipboard.SystemWriter{})
}

func copyEmail(ctx context.Context, a *app, w clipboard.Writer) error {
	notifier := clipboard.NotifierFunc(func(n clipboard.Notice) {
		fmt.Fprintln(a.stderr, n.Message)
	})
	if err := clipboard.CopyEmail(ctx, w, notifier, a.site.Contact.Email); err != nil {
		a.logger.Warn("Clipboard write failed", zap.Error(err))
		return err
	}
	a.logger.Debug("Email copied", zap.String("email", a.site.Contact.Email))
	return nil
}
