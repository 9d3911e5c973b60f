// Package scrollspy tracks which page section the reader is looking at.
package scrollspy

// Section is a navigable page region in document coordinates.
type Section struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Contains reports whether document offset y falls inside s. The bottom
// edge belongs to the next section.
func (s Section) Contains(y float64) bool {
	return y >= s.Top && y < s.Top+s.Height
}

// Default is the entry active before any scrolling.
const Default = "hero"

// Active returns the id of the section containing the viewport midpoint.
// When no section contains it the current entry stays active, so exactly one
// entry is active at any time. If sections overlap, the last one wins.
func Active(sections []Section, scrollY, viewportHeight float64, current string) string {
	if current == "" {
		current = Default
	}
	mid := scrollY + viewportHeight/2
	for _, s := range sections {
		if s.Contains(mid) {
			current = s.ID
		}
	}
	return current
}

// HideThreshold is the distance from the end of the document within which
// the floating navigation hides itself.
const HideThreshold = 100

// NavVisible reports whether the floating navigation should be shown.
func NavVisible(scrollY, viewportHeight, documentHeight float64) bool {
	return documentHeight-(scrollY+viewportHeight) >= HideThreshold
}

// Entry is one navigation item and whether it is active.
type Entry struct {
	ID     string
	Label  string
	Active bool
}

// Entries marks the item whose id is active. Exactly one entry is active
// when active names one of the items.
func Entries(items []Entry, active string) []Entry {
	out := make([]Entry, len(items))
	for i, it := range items {
		it.Active = it.ID == active
		out[i] = it
	}
	return out
}
