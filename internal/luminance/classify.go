package luminance

// Tone is the overall brightness of the area behind the navigation bar.
type Tone string

const (
	ToneLight Tone = "light"
	ToneDark  Tone = "dark"
)

// DarkFraction is the share of dark samples the area must exceed to be
// classed as dark. Exactly this share is still light.
const DarkFraction = 0.6

// Classify returns the tone of a set of sampled background colours. ok is
// false when there are no samples to judge.
func Classify(colors []Color) (tone Tone, ok bool) {
	if len(colors) == 0 {
		return ToneLight, false
	}
	dark := 0
	for _, c := range colors {
		if IsDark(c) {
			dark++
		}
	}
	if float64(dark)/float64(len(colors)) > DarkFraction {
		return ToneDark, true
	}
	return ToneLight, true
}
