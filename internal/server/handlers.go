package server

import (
	"bytes"
	"io"
	"net/http"

	"github.com/Zachkp/portfolio/internal/apperror"
	"github.com/Zachkp/portfolio/internal/clipboard"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/section"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// navQuery carries the client's current nav state and, when Scroll is set,
// a fresh layout measurement.
type navQuery struct {
	Active   string   `form:"active"`
	Menu     string   `form:"menu" binding:"omitempty,oneof=open closed"`
	Href     string   `form:"href"`
	Scroll   *float64 `form:"scroll"`
	Viewport float64  `form:"viewport" binding:"gte=0"`
	Document float64  `form:"document" binding:"gte=0"`
	Offsets  string   `form:"offsets"`
}

func (q navQuery) state() (nav.State, error) {
	st := nav.DefaultState()
	if q.Active != "" {
		id, err := section.Parse(q.Active)
		if err != nil {
			return st, err
		}
		st.Active = id
	}
	st.MenuOpen = q.Menu == "open"
	return st, nil
}

func (q navQuery) snapshot() (nav.Snapshot, error) {
	tops, err := nav.ParseOffsets(q.Offsets)
	if err != nil {
		return nav.Snapshot{}, err
	}
	// Elastic overscroll reports a negative offset; treat it as the top.
	scroll := max(*q.Scroll, 0)
	return nav.Snapshot{
		Scroll:   scroll,
		Inner:    q.Viewport,
		Document: q.Document,
		Tops:     tops,
	}, nil
}

// respond renders into a buffer first so a template failure surfaces as a
// clean 500 instead of a truncated page.
func (h *handler) respond(c *gin.Context, fn func(io.Writer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *handler) page(c *gin.Context) {
	h.respond(c, func(w io.Writer) error {
		return h.renderer.Page(w, render.NewPageData(h.site, nav.DefaultState(), h.now()))
	})
}

func (h *handler) bindNav(c *gin.Context) (navQuery, nav.State, bool) {
	var q navQuery
	if err := c.ShouldBind(&q); err != nil {
		_ = c.Error(apperror.BadRequest("Invalid navigation parameters", err))
		return q, nav.State{}, false
	}
	st, err := q.state()
	if err != nil {
		_ = c.Error(apperror.BadRequest("Unknown section", err))
		return q, st, false
	}
	return q, st, true
}

func (h *handler) navFragment(c *gin.Context) {
	q, st, ok := h.bindNav(c)
	if !ok {
		return
	}

	if q.Scroll != nil {
		if q.Document <= 0 {
			_ = c.Error(apperror.BadRequest("document height is required with a scroll offset", nil))
			return
		}
		snap, err := q.snapshot()
		if err != nil {
			_ = c.Error(apperror.BadRequest("Invalid section offsets", err))
			return
		}
		st.Active = nav.Resolve(snap, st.Active)
	}

	h.renderNav(c, st)
}

func (h *handler) toggleMenu(c *gin.Context) {
	_, st, ok := h.bindNav(c)
	if !ok {
		return
	}
	st.MenuOpen = nav.NewMenu(st.MenuOpen).Toggle()
	h.renderNav(c, st)
}

func (h *handler) closeMenu(c *gin.Context) {
	q, st, ok := h.bindNav(c)
	if !ok {
		return
	}
	m := nav.NewMenu(st.MenuOpen)
	m.Follow(q.Href)
	st.MenuOpen = m.Open()
	h.renderNav(c, st)
}

func (h *handler) renderNav(c *gin.Context, st nav.State) {
	h.respond(c, func(w io.Writer) error {
		return h.renderer.Nav(w, render.BuildNav(h.site, st))
	})
}

func (h *handler) copyEmail(c *gin.Context) {
	err := clipboard.ParseResult(c.PostForm("result"))
	if err != nil {
		h.logger.Warn("Clipboard write failed in browser",
			zap.String("result", c.PostForm("result")),
			zap.Error(err),
		)
	}
	h.respond(c, func(w io.Writer) error {
		return h.renderer.Notice(w, clipboard.NoticeFor(err))
	})
}
