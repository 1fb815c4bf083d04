package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
	"go.uber.org/zap"
)

const usage = `usage: portfolio [command] [flags]

commands:
  serve       run the web server (default)
  render      write the rendered page to stdout or a file
  probe       drive Chrome over the page and report the active section
  copy-email  copy the contact email to the system clipboard
`

type app struct {
	cfg    *config.Config
	logger *zap.Logger
	site   *content.Portfolio
	stdout io.Writer
	stderr io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := "serve"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	commands := map[string]func(context.Context, *app, []string) error{
		"serve":      serveCmd,
		"render":     renderCmd,
		"probe":      probeCmd,
		"copy-email": copyEmailCmd,
	}
	command, ok := commands[cmd]
	if !ok {
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	site, err := loadSite(cfg)
	if err != nil {
		return err
	}

	return command(ctx, &app{
		cfg:    cfg,
		logger: logger,
		site:   site,
		stdout: stdout,
		stderr: stderr,
	}, args)
}

func loadSite(cfg *config.Config) (*content.Portfolio, error) {
	if cfg.Content.File == "" {
		return content.Default(), nil
	}
	site, err := content.Load(cfg.Content.File)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return site, nil
}

func newFlagSet(name string, a *app) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}
