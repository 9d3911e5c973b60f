// Package theme holds the single persisted preference of the site: light or
// dark mode.
package theme

import "sync"

// Theme is a colour scheme preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the fixed key the preference is stored under.
const StorageKey = "theme"

// Parse maps a stored value to a Theme. Anything unrecognised is Light.
func Parse(s string) Theme {
	if Theme(s) == Dark {
		return Dark
	}
	return Light
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }

// Storage persists the preference. Set must be synchronous: a Get following
// a Set observes the new value.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Store is the application-level theme state. It is safe for concurrent use.
// Changes are published one at a time, in the order they were made;
// subscribers must not call Set or Toggle.
type Store struct {
	storage Storage

	// pub serialises changes together with their notification.
	pub sync.Mutex

	mu     sync.Mutex
	theme  Theme
	nextID int
	subs   map[int]func(Theme)
}

// NewStore reads the initial theme from storage, defaulting to Light.
func NewStore(storage Storage) *Store {
	initial := Light
	if v, ok := storage.Get(StorageKey); ok {
		initial = Parse(v)
	}
	return &Store{
		storage: storage,
		theme:   initial,
		subs:    make(map[int]func(Theme)),
	}
}

// Get returns the current theme.
func (s *Store) Get() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Set stores t and notifies subscribers. The value is written back to
// storage even when it is unchanged.
func (s *Store) Set(t Theme) {
	t = Parse(string(t))
	s.update(func(Theme) Theme { return t })
}

// Toggle flips the theme and returns the new value.
func (s *Store) Toggle() Theme {
	return s.update(Theme.Opposite)
}

func (s *Store) update(next func(Theme) Theme) Theme {
	s.pub.Lock()
	defer s.pub.Unlock()

	s.mu.Lock()
	t := next(s.theme)
	s.theme = t
	s.storage.Set(StorageKey, string(t))
	subs := make([]func(Theme), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(t)
	}
	return t
}

// Subscribe registers fn for every change. It returns a function that
// removes the subscription; calling it more than once is harmless.
func (s *Store) Subscribe(fn func(Theme)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
