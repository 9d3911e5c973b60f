package scrollspy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var page = []Section{
	{ID: "hero", Top: 0, Height: 900},
	{ID: "about", Top: 900, Height: 1100},
	{ID: "projects", Top: 2000, Height: 1500},
	{ID: "contact", Top: 3500, Height: 1000},
}

func TestActive(t *testing.T) {
	tests := []struct {
		name    string
		scrollY float64
		want    string
	}{
		{"top of page", 0, "hero"},
		{"midpoint in about", 600, "about"},
		{"midpoint on boundary", 1600, "projects"},
		{"last section", 3200, "contact"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Active(page, tt.scrollY, 800, "hero"))
		})
	}
}

func TestActiveKeepsCurrentOutsideSections(t *testing.T) {
	// Midpoint 4900 is below every section (over the footer).
	assert.Equal(t, "contact", Active(page, 4500, 800, "contact"))
	assert.Equal(t, Default, Active(nil, 0, 800, ""))
}

func TestExactlyOneEntryActive(t *testing.T) {
	items := []Entry{{ID: "hero"}, {ID: "about"}, {ID: "projects"}, {ID: "contact"}}

	for y := 0.0; y < 5000; y += 137 {
		entries := Entries(items, Active(page, y, 800, Default))
		n := 0
		for _, e := range entries {
			if e.Active {
				n++
			}
		}
		assert.Equal(t, 1, n, "scrollY=%v", y)
	}
}

func TestNavVisible(t *testing.T) {
	assert.True(t, NavVisible(0, 800, 5000))
	assert.True(t, NavVisible(4100, 800, 5000))
	assert.False(t, NavVisible(4101, 800, 5000))
	assert.False(t, NavVisible(4200, 800, 5000))
}
