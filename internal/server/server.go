// Package server wires the portfolio into a gin engine.
package server

import (
	"net/http"
	"time"

	"github.com/Zachkp/portfolio/internal/apperror"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps are the collaborators the routes need.
type Deps struct {
	Site      *content.Portfolio
	Renderer  *render.Renderer
	Logger    *zap.Logger
	ImagesDir string
	// Now defaults to time.Now.
	Now func() time.Time
}

type handler struct {
	site     *content.Portfolio
	renderer *render.Renderer
	logger   *zap.Logger
	now      func() time.Time
}

// New builds the engine with middleware, static assets and routes.
func New(deps Deps) *gin.Engine {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(recoveryMiddleware(deps.Logger))
	r.Use(requestIDMiddleware())
	r.Use(requestLogMiddleware(deps.Logger, newSalt()))
	r.Use(securityHeadersMiddleware())
	r.Use(errorMiddleware(deps.Logger))

	r.StaticFS("/static", http.FS(render.Static()))
	if deps.ImagesDir != "" {
		r.Static("/images", deps.ImagesDir)
	}

	h := &handler{
		site:     deps.Site,
		renderer: deps.Renderer,
		logger:   deps.Logger,
		now:      deps.Now,
	}
	setupRoutes(r, h)
	return r
}

func setupRoutes(r *gin.Engine, h *handler) {
	// Home page route
	r.GET("/", h.page)

	// Navigation fragment, re-rendered on scroll
	r.GET("/nav", h.navFragment)
	r.POST("/nav/menu/toggle", h.toggleMenu)
	r.POST("/nav/menu/close", h.closeMenu)

	// Clipboard acknowledgment for the copy-email button
	r.POST("/contact/copy", h.copyEmail)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Page not found"))
	})
}
