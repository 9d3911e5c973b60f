package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Zachkp/portfolio/internal/contact"
	logx "github.com/Zachkp/portfolio/internal/log"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/view"
)

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logx.Middleware(s.log, s.hashIP))
	r.Use(s.visitorTracking())

	r.StaticFS("/static", http.FS(view.Static()))
	r.GET("/healthz", s.healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", s.index)
	r.GET("/privacy", s.privacy)
	r.GET("/sections/projects", s.projectsSection)
	r.GET("/projects/:slug", s.projectModal)
	r.GET("/modal/close", s.closeModal)
	r.POST("/theme/toggle", s.toggleTheme)
	r.POST("/contact", s.limiter.Middleware(s.contactLimited), s.submitContact)

	api := r.Group("/api")
	api.POST("/nav/state", s.navState)
	api.GET("/typewriter", s.typewriter)

	s.adminRoutes(r)
	return r
}

func (s *Server) healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		s.log.Error().Err(err).Msg("health check")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) index(c *gin.Context) {
	t := theme.NewStore(theme.NewCookieStorage(c)).Get()
	s.render(c, http.StatusOK, "home", view.Home(view.HomeProps{
		Theme:   t,
		Variant: s.variant,
		Now:     s.now(),
	}))
}

func (s *Server) privacy(c *gin.Context) {
	s.render(c, http.StatusOK, "privacy", view.Privacy())
}

func (s *Server) projectsSection(c *gin.Context) {
	s.render(c, http.StatusOK, "projects", view.Projects(s.variant, s.catalog.All()))
}

func (s *Server) projectModal(c *gin.Context) {
	p, ok := s.catalog.BySlug(c.Param("slug"))
	if !ok {
		c.String(http.StatusNotFound, "project not found")
		return
	}
	s.render(c, http.StatusOK, "project_modal", view.ProjectModal(s.variant, p))
}

// closeModal empties the modal container.
func (s *Server) closeModal(c *gin.Context) {
	s.render(c, http.StatusOK, "modal_close", nil)
}

func (s *Server) toggleTheme(c *gin.Context) {
	store := theme.NewStore(theme.NewCookieStorage(c))
	var marker theme.Marker
	unbind := marker.Bind(store)
	defer unbind()

	t := store.Toggle()
	metrics.ThemeToggle(t.String())

	if !isHTMX(c) {
		back := c.GetHeader("Referer")
		if back == "" {
			back = "/"
		}
		c.Redirect(http.StatusSeeOther, back)
		return
	}

	state := gin.H{"theme": t, "class": marker.Class()}
	trigger, err := json.Marshal(gin.H{"themeChanged": state})
	if err != nil {
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("HX-Trigger", string(trigger))
	c.JSON(http.StatusOK, state)
}

func (s *Server) submitContact(c *gin.Context) {
	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		metrics.ContactSubmission(metrics.OutcomeInvalid)
		out := contact.Outcome{
			Status:  contact.StatusError,
			Message: InvalidFormMessage,
			Form:    form,
			Err:     err,
		}
		s.render(c, fragmentStatus(c, http.StatusUnprocessableEntity), "contact_form", view.ContactForm(s.variant, out))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()
	out := s.contact.Submit(ctx, form)

	status := http.StatusOK
	switch {
	case out.OK():
	case errors.Is(out.Err, contact.ErrNotConfigured):
		status = http.StatusServiceUnavailable
	default:
		status = http.StatusBadGateway
	}
	s.render(c, fragmentStatus(c, status), "contact_form", view.ContactForm(s.variant, out))
}

// Messages shown under the contact form for requests that never reach the
// sender.
const (
	InvalidFormMessage = "Please fill in your name, a valid email address and a message."
	RateLimitMessage   = "Too many messages. Please wait a minute and try again."
)

func (s *Server) contactLimited(c *gin.Context) {
	metrics.RateLimited("contact")
	var form contact.Form
	_ = c.ShouldBind(&form)
	out := contact.Outcome{Status: contact.StatusError, Message: RateLimitMessage, Form: form}
	s.render(c, fragmentStatus(c, http.StatusTooManyRequests), "contact_form", view.ContactForm(s.variant, out))
}

// ObserveContact counts contact outcomes by kind.
func ObserveContact(out contact.Outcome) {
	var perr *contact.ProviderError
	switch {
	case out.OK():
		metrics.ContactSubmission(metrics.OutcomeSent)
	case errors.Is(out.Err, contact.ErrNotConfigured):
		metrics.ContactSubmission(metrics.OutcomeNotConfigured)
	case errors.As(out.Err, &perr):
		metrics.ContactSubmission(metrics.OutcomeProviderError)
	default:
		metrics.ContactSubmission(metrics.OutcomeFailed)
	}
}

func (s *Server) typewriter(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"frames": s.frames})
}
