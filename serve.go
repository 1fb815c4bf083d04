package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

func newEngine(a *app) (*gin.Engine, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}
	return server.New(server.Deps{
		Site:      a.site,
		Renderer:  renderer,
		Logger:    a.logger,
		ImagesDir: a.cfg.Server.ImagesDir,
	}), nil
}

func serveCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("serve", a)
	addr := fs.String("addr", ":"+a.cfg.Server.Port, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	gin.SetMode(a.cfg.Server.Mode)
	engine, err := newEngine(a)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		return err
	}

	a.logger.Info("Server starting", zap.String("addr", ln.Addr().String()), zap.String("mode", a.cfg.Server.Mode))
	return serveUntilDone(ctx, srv, ln, a.cfg.Server.ShutdownTimeout, a.logger)
}

// serveUntilDone serves on ln until ctx ends or the server fails, then
// drains in-flight requests within timeout.
func serveUntilDone(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration, logger *zap.Logger) error {
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		<-ctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", zap.Error(err))
			return err
		}
		logger.Info("Server exited")
		return nil
	})
	return p.Wait()
}
