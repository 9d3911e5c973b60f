package theme

import "sync"

// DarkClass is the document-level class that switches styles to dark mode.
const DarkClass = "dark"

// Marker mirrors a theme onto the class attribute of the document root.
type Marker struct {
	mu    sync.Mutex
	class string
}

// Bind sets the marker from s and keeps it in step with every change.
func (m *Marker) Bind(s *Store) (unbind func()) {
	s.pub.Lock()
	defer s.pub.Unlock()
	m.apply(s.Get())
	return s.Subscribe(m.apply)
}

func (m *Marker) apply(t Theme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.class = ClassFor(t)
}

// Class returns the current root class, empty for the light theme.
func (m *Marker) Class() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.class
}

// ClassFor returns the root class for t.
func ClassFor(t Theme) string {
	if t == Dark {
		return DarkClass
	}
	return ""
}
