// Package server wires the site's HTTP routes.
package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	g "maragu.dev/gomponents"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/luminance"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/ratelimit"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/typewriter"
	"github.com/Zachkp/portfolio/internal/view"
)

// Deps are the collaborators of a Server.
type Deps struct {
	Config  config.Config
	Store   *store.DB
	Catalog *projects.Catalog
	Contact *contact.Service
	Logger  zerolog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Server holds the state shared by the handlers.
type Server struct {
	cfg      config.Config
	store    *store.DB
	catalog  *projects.Catalog
	contact  *contact.Service
	log      zerolog.Logger
	now      func() time.Time
	variant  view.Variant
	limiter  *ratelimit.Limiter
	detector *luminance.Detector
	frames   []frameJSON

	adminToken  string
	hashingSalt string
	// track records visits; replaced in tests to run synchronously.
	track func(ip, userAgent, path string)
}

type frameJSON struct {
	Text    string `json:"text"`
	DelayMs int64  `json:"delayMs"`
}

// New builds a Server.
func New(d Deps) (*Server, error) {
	if d.Store == nil || d.Catalog == nil || d.Contact == nil {
		return nil, errors.New("server: store, catalog and contact service are required")
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	token, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("admin token: %w", err)
	}
	salt, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("hashing salt: %w", err)
	}

	tw := typewriter.New(content.Roles, typewriter.DefaultTiming)
	var frames []frameJSON
	for _, f := range tw.Cycle() {
		frames = append(frames, frameJSON{Text: f.Text, DelayMs: f.Delay.Milliseconds()})
	}

	s := &Server{
		cfg:     d.Config,
		store:   d.Store,
		catalog: d.Catalog,
		contact: d.Contact,
		log:     d.Logger,
		now:     d.Now,
		variant: view.ParseVariant(d.Config.Variant),
		limiter: ratelimit.New(ratelimit.Config{
			Rate:  ratelimit.PerMinute(d.Config.ContactRatePerMinute),
			Burst: d.Config.ContactBurst,
		}),
		detector:    luminance.NewDetector(),
		frames:      frames,
		adminToken:  token,
		hashingSalt: salt,
	}
	s.track = s.trackAsync
	return s, nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// render writes n as an HTML response.
func (s *Server) render(c *gin.Context, status int, name string, n g.Node) {
	metrics.PageRender(name)
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if n == nil {
		return
	}
	if err := n.Render(c.Writer); err != nil {
		s.log.Error().Err(err).Str("view", name).Msg("render")
	}
}

// isHTMX reports whether the request came from an HTMX swap.
func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// fragmentStatus maps an error status to 200 for HTMX requests, which only
// swap successful responses.
func fragmentStatus(c *gin.Context, status int) int {
	if isHTMX(c) {
		return http.StatusOK
	}
	return status
}

// RunMaintenance prunes old visits and idle rate limiters until ctx ends.
func (s *Server) RunMaintenance(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	s.maintain(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.maintain(ctx)
		}
	}
}

func (s *Server) maintain(ctx context.Context) {
	n, err := s.store.PruneVisits(ctx, s.cfg.VisitorRetention)
	if err != nil {
		s.log.Error().Err(err).Msg("privacy cleanup")
	} else if n > 0 {
		s.log.Info().Int64("removed", n).Msg("privacy cleanup: removed old visitor records")
	}
	if n := s.limiter.Cleanup(); n > 0 {
		s.log.Debug().Int("removed", n).Msg("dropped idle rate limiters")
	}
}
