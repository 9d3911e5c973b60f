package theme

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// MemoryStorage keeps values in a map.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// cookieMaxAge keeps the preference for a year; it has no other expiry.
const cookieMaxAge = 365 * 24 * 3600

// CookieStorage reads and writes the preference as a cookie on one request.
// Values set during the request are visible to later Gets on the same
// request.
type CookieStorage struct {
	c       *gin.Context
	written map[string]string
}

func NewCookieStorage(c *gin.Context) *CookieStorage {
	return &CookieStorage{c: c, written: make(map[string]string)}
}

func (s *CookieStorage) Get(key string) (string, bool) {
	if v, ok := s.written[key]; ok {
		return v, true
	}
	v, err := s.c.Cookie(key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *CookieStorage) Set(key, value string) {
	s.written[key] = value
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, cookieMaxAge, "/", "", false, false)
}
