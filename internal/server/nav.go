package server

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/geom"
	"github.com/Zachkp/portfolio/internal/luminance"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/scrollspy"
	"github.com/Zachkp/portfolio/internal/view"
	"github.com/Zachkp/portfolio/internal/visibility"
)

// navStateRequest is the layout site.js measures on scroll. Section tops are
// in document coordinates; every rect is relative to the viewport.
type navStateRequest struct {
	ScrollY        float64             `json:"scrollY" binding:"gte=0"`
	ViewportWidth  float64             `json:"viewportWidth" binding:"gte=0"`
	ViewportHeight float64             `json:"viewportHeight" binding:"gt=0"`
	DocumentHeight float64             `json:"documentHeight" binding:"gt=0"`
	Active         string              `json:"active"`
	Nav            geom.Rect           `json:"nav"`
	Sections       []scrollspy.Section `json:"sections" binding:"max=32"`
	Landmarks      []luminance.Section `json:"landmarks" binding:"max=32"`
	Boxes          []luminance.Box     `json:"boxes" binding:"max=256"`
	Targets        []revealTarget      `json:"targets" binding:"max=256"`
}

type revealTarget struct {
	ID   string    `json:"id"`
	Rect geom.Rect `json:"rect"`
}

type navStateResponse struct {
	Active  string         `json:"active"`
	Tone    luminance.Tone `json:"tone"`
	Visible bool           `json:"visible"`
	Reveal  []string       `json:"reveal"`
}

func (s *Server) navState(c *gin.Context) {
	var req navStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	layout, err := luminance.NewLayout(req.Boxes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.evaluate(req, layout))
}

func (s *Server) evaluate(req navStateRequest, layout *luminance.Layout) navStateResponse {
	current := req.Active
	if !isNavSection(current) {
		current = scrollspy.Default
	}
	active := scrollspy.Active(req.Sections, req.ScrollY, req.ViewportHeight, current)

	page := luminance.Page{
		Scene:          layout,
		Nav:            req.Nav,
		ScrollY:        req.ScrollY,
		ViewportHeight: req.ViewportHeight,
		DocumentHeight: req.DocumentHeight,
		Sections:       append([]luminance.Section(nil), req.Landmarks...),
	}
	for _, sec := range req.Sections {
		page.Sections = append(page.Sections, luminance.Section{
			ID:   sec.ID,
			Rect: geom.Rect{Y: sec.Top, Width: req.ViewportWidth, Height: sec.Height}.Translate(0, -req.ScrollY),
		})
	}
	tone := s.detector.Detect(page)
	metrics.NavEvaluation(string(tone))

	targets := make(map[string]geom.Rect, len(req.Targets))
	for _, t := range req.Targets {
		if t.ID != "" {
			targets[t.ID] = t.Rect
		}
	}
	viewport := geom.Rect{Width: req.ViewportWidth, Height: req.ViewportHeight}
	reveal := visibility.Visible(visibility.DefaultOptions(), viewport, targets)
	slices.Sort(reveal)
	if reveal == nil {
		reveal = []string{}
	}

	return navStateResponse{
		Active:  active,
		Tone:    tone,
		Visible: scrollspy.NavVisible(req.ScrollY, req.ViewportHeight, req.DocumentHeight),
		Reveal:  reveal,
	}
}

func isNavSection(id string) bool {
	return slices.ContainsFunc(view.NavItems, func(e scrollspy.Entry) bool { return e.ID == id })
}
