// Package visibility reports when page elements enter or leave the
// viewport, the way lazy content decides when to load.
package visibility

import (
	"sort"
	"sync"

	"github.com/Zachkp/portfolio/internal/geom"
)

// Entry describes a target's relation to the viewport after an update.
type Entry struct {
	Target       string
	Intersecting bool
	// Ratio is the visible fraction of the target's area.
	Ratio float64
}

// Options tune an Observer.
type Options struct {
	// RootMargin grows the viewport on every side, so targets are reported
	// slightly before they scroll into view.
	RootMargin float64
	// Threshold is the visible fraction at which a target counts as
	// intersecting.
	Threshold float64
	// Once drops a target after its first intersecting entry.
	Once bool
}

// DefaultOptions preload content 100px ahead of the viewport.
func DefaultOptions() Options {
	return Options{RootMargin: 100, Threshold: 0.01, Once: true}
}

type subscription struct {
	rect         geom.Rect
	fn           func(Entry)
	intersecting bool
}

// Observer tracks a set of targets. Callbacks run synchronously inside
// Update, without the observer's lock held.
type Observer struct {
	opts Options

	mu      sync.Mutex
	targets map[string]*subscription
}

func New(opts Options) *Observer {
	return &Observer{opts: opts, targets: make(map[string]*subscription)}
}

// Observe starts watching the target at rect. Observing an id again
// replaces the earlier subscription. The returned function stops watching.
func (o *Observer) Observe(id string, rect geom.Rect, fn func(Entry)) (unsubscribe func()) {
	sub := &subscription{rect: rect, fn: fn}

	o.mu.Lock()
	o.targets[id] = sub
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.targets[id] == sub {
			delete(o.targets, id)
		}
	}
}

// move updates a target's position, for layouts that shift.
func (o *Observer) move(id string, rect geom.Rect) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if sub, ok := o.targets[id]; ok {
		sub.rect = rect
	}
}

// Unobserve stops watching id.
func (o *Observer) Unobserve(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.targets, id)
}

// Disconnect stops watching everything.
func (o *Observer) Disconnect() {
	o.mu.Lock()
	defer o.mu.Unlock()
	clear(o.targets)
}

// Len is the number of watched targets.
func (o *Observer) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.targets)
}

type pending struct {
	fn    func(Entry)
	entry Entry
}

// Update recomputes every target against viewport and calls back for those
// whose intersecting state changed. A target's first update always reports
// when it is intersecting. Callbacks run in target id order.
func (o *Observer) Update(viewport geom.Rect) {
	root := viewport.Expand(o.opts.RootMargin)

	o.mu.Lock()
	ids := make([]string, 0, len(o.targets))
	for id := range o.targets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var calls []pending
	for _, id := range ids {
		sub := o.targets[id]
		ratio := visibleRatio(sub.rect, root)
		in := ratio > 0 && ratio >= o.opts.Threshold
		if in == sub.intersecting {
			continue
		}
		sub.intersecting = in
		calls = append(calls, pending{fn: sub.fn, entry: Entry{Target: id, Intersecting: in, Ratio: ratio}})
		if in && o.opts.Once {
			delete(o.targets, id)
		}
	}
	o.mu.Unlock()

	for _, c := range calls {
		c.fn(c.entry)
	}
}

// visibleRatio is the fraction of target inside root. A target with no
// area counts as fully visible when its origin is inside root.
func visibleRatio(target, root geom.Rect) float64 {
	area := target.Area()
	if area == 0 {
		if root.Contains(geom.Point{X: target.X, Y: target.Y}) {
			return 1
		}
		return 0
	}
	return target.Intersect(root).Area() / area
}

// Visible returns the ids of targets that would be reported as intersecting
// for one viewport, for callers that hold no state between requests.
func Visible(opts Options, viewport geom.Rect, targets map[string]geom.Rect) []string {
	o := New(opts)
	var ids []string
	for id, r := range targets {
		o.Observe(id, r, func(e Entry) {
			if e.Intersecting {
				ids = append(ids, e.Target)
			}
		})
	}
	o.Update(viewport)
	return ids
}
