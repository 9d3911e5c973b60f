package luminance

import (
	"slices"

	"github.com/Zachkp/portfolio/internal/geom"
)

// Section is a named page region in viewport coordinates.
type Section struct {
	ID   string    `json:"id"`
	Rect geom.Rect `json:"rect"`
}

// Page is everything the detector looks at for one evaluation.
type Page struct {
	Scene          Scene
	Nav            geom.Rect
	Sections       []Section
	ScrollY        float64
	ViewportHeight float64
	DocumentHeight float64
}

// Detector classifies the background behind the navigation bar, falling back
// to what it knows about the page's sections when sampling finds nothing.
type Detector struct {
	Samples       int
	DarkSections  []string
	LightSections []string
	// BottomMargin is how close to the end of the document counts as being
	// over the (dark) footer.
	BottomMargin float64
	// NearAbove and NearBelow bound the gap between the bar's bottom and the
	// top of a dark section for the bar to be considered over it.
	NearAbove float64
	NearBelow float64
}

// NewDetector returns the detector used by the site: the footer is the only
// dark section.
func NewDetector() *Detector {
	return &Detector{
		Samples:       DefaultSamples,
		DarkSections:  []string{"footer"},
		LightSections: []string{"hero", "about", "projects", "contact"},
		BottomMargin:  150,
		NearAbove:     200,
		NearBelow:     50,
	}
}

// Detect returns the tone behind the bar.
func (d *Detector) Detect(p Page) Tone {
	if p.Scene != nil {
		if tone, ok := Classify(Sample(p.Scene, p.Nav, d.Samples)); ok {
			return tone
		}
	}
	return d.fallback(p)
}

func (d *Detector) fallback(p Page) Tone {
	dark := d.sections(p, d.DarkSections)
	for _, s := range dark {
		if p.Nav.Bottom() >= s.Rect.Top() && p.Nav.Top() <= s.Rect.Bottom() {
			return ToneDark
		}
	}
	for _, s := range d.sections(p, d.LightSections) {
		if p.Nav.OverlapsVertically(s.Rect) {
			return ToneLight
		}
	}
	if p.DocumentHeight > 0 && p.DocumentHeight-(p.ScrollY+p.ViewportHeight) < d.BottomMargin {
		return ToneDark
	}
	for _, s := range dark {
		gap := s.Rect.Top() - p.Nav.Bottom()
		if gap < d.NearAbove && gap > -d.NearBelow {
			return ToneDark
		}
	}
	return ToneLight
}

func (d *Detector) sections(p Page, ids []string) []Section {
	var out []Section
	for _, s := range p.Sections {
		if slices.Contains(ids, s.ID) {
			out = append(out, s)
		}
	}
	return out
}
