package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// untracked are path prefixes that never count as page views.
var untracked = []string{
	"/static/", "/images/", "/admin/", "/api/", "/favicon",
	"/privacy", "/healthz", "/metrics", "/modal/",
}

// hashIP returns a salted, truncated hash of ip, stable for the process
// lifetime.
func (s *Server) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.hashingSalt))
	return hex.EncodeToString(sum[:])[:16]
}

// visitorTracking records page views with hashed addresses. Requests
// carrying Do Not Track are not recorded.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || c.GetHeader("DNT") == "1" || isUntracked(path) {
			c.Next()
			return
		}
		s.track(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func isUntracked(path string) bool {
	for _, prefix := range untracked {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (s *Server) trackAsync(ip, userAgent, path string) {
	hashed := s.hashIP(ip)
	go s.recordVisit(hashed, userAgent, path)
}

func (s *Server) recordVisit(hashedIP, userAgent, path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.store.RecordVisit(ctx, hashedIP, userAgent, path); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("record visit")
	}
}
