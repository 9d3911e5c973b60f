package server

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/view"
)

const adminCookie = "admin_token"

// adminEnabled reports whether credentials were configured. Without them
// every login attempt fails.
func (s *Server) adminEnabled() bool {
	return s.cfg.AdminUsername != "" && s.cfg.AdminPassword != ""
}

func (s *Server) checkCredentials(username, password string) bool {
	if !s.adminEnabled() {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	return userOK && passOK
}

// adminAuth redirects requests without a valid session cookie to the login
// page.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) adminRoutes(r *gin.Engine) {
	if !s.adminEnabled() {
		s.log.Warn().Msg("ADMIN_USERNAME or ADMIN_PASSWORD not set; admin login disabled")
	}

	r.GET("/admin/login", func(c *gin.Context) {
		s.render(c, http.StatusOK, "admin_login", view.AdminLogin(""))
	})
	r.POST("/admin/login", s.adminLogin)
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		s.log.Info().Str("client", s.hashIP(c.ClientIP())).Msg("admin logout")
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin", s.adminAuth())
	admin.GET("/dashboard", s.adminDashboard)
	admin.GET("/api/stats", s.adminStats)
	admin.GET("/export/stats", s.adminExport)
	admin.DELETE("/messages/:id", s.adminDeleteMessage)
	admin.POST("/privacy/prune", s.adminPrune)
}

func (s *Server) adminLogin(c *gin.Context) {
	client := s.hashIP(c.ClientIP())
	if !s.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
		s.log.Warn().Str("client", client).Msg("failed admin login")
		s.render(c, http.StatusUnauthorized, "admin_login", view.AdminLogin("Invalid credentials"))
		return
	}
	c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
	s.log.Info().Str("client", client).Msg("admin login")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (s *Server) adminDashboard(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("load admin stats")
		c.String(http.StatusInternalServerError, "Failed to load statistics")
		return
	}
	s.render(c, http.StatusOK, "admin_dashboard", view.AdminDashboard(stats))
}

func (s *Server) adminStats(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) adminExport(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	s.log.Info().Str("client", s.hashIP(c.ClientIP())).Msg("admin stats exported")
	c.JSON(http.StatusOK, stats)
}

func (s *Server) adminDeleteMessage(c *gin.Context) {
	id := c.Param("id")
	err := s.store.DeleteMessage(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	case err != nil:
		s.log.Error().Err(err).Str("id", id).Msg("delete message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete message"})
		return
	}
	s.log.Info().Str("id", id).Str("client", s.hashIP(c.ClientIP())).Msg("message deleted")
	if isHTMX(c) {
		// The row is swapped for nothing.
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}

func (s *Server) adminPrune(c *gin.Context) {
	n, err := s.store.PruneVisits(c.Request.Context(), s.cfg.VisitorRetention)
	if err != nil {
		s.log.Error().Err(err).Msg("privacy cleanup")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "privacy cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": n})
}
