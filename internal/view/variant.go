package view

import "strings"

// Variant is one of the two design iterations of the site.
type Variant string

const (
	Soft      Variant = "soft"
	Brutalist Variant = "brutalist"
)

// ParseVariant defaults to Brutalist, the current design.
func ParseVariant(s string) Variant {
	if Variant(strings.ToLower(strings.TrimSpace(s))) == Soft {
		return Soft
	}
	return Brutalist
}

// Palette is the set of classes a variant applies to each part of the page.
// EyebrowMark is text, not a class: it prefixes the kicker above a heading.
type Palette struct {
	Body            string
	Nav             string
	NavItem         string
	NavActive       string
	Hero            string
	Heading         string
	Muted           string
	About           string
	SkillCard       string
	Projects        string
	ProjectsHeading string
	Eyebrow         string
	EyebrowMark     string
	Card            string
	ContainFit      string
	Backdrop        string
	CloseButton     string
	StepNumber      string
	Tag             string
	Modal           string
	Contact         string
	Input           string
	Button          string
	Social          string
	Success         string
	Error           string
	Footer          string
	ToggleIcon      string
}

var palettes = map[Variant]Palette{
	Soft: {
		Body:            "min-h-screen bg-white dark:bg-gray-900 text-gray-900 dark:text-white transition-colors",
		Nav:             "relative bg-white rounded-full px-6 py-3 border border-gray-200 shadow-lg",
		NavItem:         "relative px-4 py-2 rounded-full text-gray-600 hover:text-gray-900",
		NavActive:       "relative px-4 py-2 rounded-full text-white bg-gradient-to-r from-accent to-purple-500",
		Hero:            "relative min-h-screen flex items-center justify-center bg-gradient-to-br from-gray-50 via-white to-indigo-50 dark:from-gray-900 dark:via-gray-800 dark:to-gray-900",
		Heading:         "text-4xl sm:text-5xl font-bold mb-4 dark:text-white",
		Muted:           "text-lg text-gray-600 dark:text-gray-300",
		About:           "py-20 bg-gray-50 dark:bg-gray-900",
		SkillCard:       "p-6 rounded-2xl bg-white dark:bg-gray-800 shadow-lg",
		Projects:        "py-20 bg-white dark:bg-gray-800",
		ProjectsHeading: "text-4xl sm:text-5xl font-bold mb-4 dark:text-white",
		Eyebrow:         "text-sm font-semibold tracking-wide uppercase text-accent",
		EyebrowMark:     "",
		ContainFit:      "w-full h-full object-contain bg-gray-100 dark:bg-gray-900",
		Backdrop:        "modal-backdrop fixed inset-0 bg-black/60 backdrop-blur-sm z-50 flex items-start sm:items-center justify-center p-0 sm:p-4 overflow-y-auto",
		CloseButton:     "absolute top-4 right-4 w-10 h-10 rounded-full bg-white/90 text-gray-900 shadow",
		StepNumber:      "text-accent font-semibold mr-2",
		Card:            "rounded-2xl overflow-hidden bg-white dark:bg-gray-700 shadow-lg cursor-pointer",
		Tag:             "px-3 py-1 text-xs rounded-full bg-indigo-50 text-indigo-700",
		Modal:           "rounded-2xl bg-white dark:bg-gray-800 max-w-4xl w-full overflow-hidden",
		Contact:         "py-20 bg-white dark:bg-gray-800",
		Input:           "w-full px-4 py-3 rounded-xl border border-gray-300 dark:border-gray-600 dark:bg-gray-700",
		Button:          "w-full py-3 px-6 rounded-xl font-medium bg-accent text-white",
		Social:          "flex items-center gap-2 px-6 py-3 rounded-xl border-2 border-gray-200",
		Success:         "p-4 rounded-xl bg-green-50 text-green-800 border border-green-200",
		Error:           "p-4 rounded-xl bg-red-50 text-red-800 border border-red-200",
		Footer:          "py-12 bg-gray-900 text-white",
		ToggleIcon:      "w-10 h-10 rounded-full border border-gray-300",
	},
	Brutalist: {
		Body:            "min-h-screen bg-cream dark:bg-charcoal overflow-x-hidden",
		Nav:             "relative bg-cream border-2 border-black-true px-6 py-3",
		NavItem:         "relative px-4 py-2 font-mono uppercase text-black-true",
		NavActive:       "relative px-4 py-2 font-mono uppercase bg-orange text-black-true",
		Hero:            "relative min-h-screen flex items-center bg-cream dark:bg-charcoal",
		Heading:         "font-display text-6xl sm:text-7xl font-black leading-none mb-6",
		Muted:           "font-mono text-lg text-gray-warm",
		About:           "relative py-32 bg-cream dark:bg-charcoal",
		SkillCard:       "brutal-border p-6 bg-cream dark:bg-charcoal",
		Projects:        "relative py-32 bg-black-true overflow-hidden",
		ProjectsHeading: "font-display text-6xl sm:text-7xl font-black leading-none mb-6 text-cream",
		Eyebrow:         "font-mono text-orange text-sm font-bold tracking-widest uppercase",
		EyebrowMark:     "// ",
		ContainFit:      "w-full h-full object-contain bg-black-true",
		Backdrop:        "modal-backdrop fixed inset-0 bg-black-true/90 z-50 flex items-start sm:items-center justify-center p-0 sm:p-4 overflow-y-auto",
		CloseButton:     "absolute top-4 right-4 w-10 h-10 bg-cream border-2 border-black-true",
		StepNumber:      "font-mono text-orange mr-2",
		Card:            "brutal-border bg-cream dark:bg-charcoal overflow-hidden h-full flex flex-col cursor-pointer",
		Tag:             "px-2 py-1 font-mono text-xs uppercase border border-black-true",
		Modal:           "brutal-border bg-cream dark:bg-charcoal max-w-5xl w-full overflow-hidden",
		Contact:         "relative py-32 bg-cream dark:bg-charcoal",
		Input:           "w-full px-4 py-3 border-2 border-black-true bg-cream font-mono",
		Button:          "w-full py-3 px-6 font-mono uppercase bg-orange text-black-true border-2 border-black-true",
		Social:          "flex items-center gap-2 px-6 py-3 border-2 border-black-true font-mono uppercase",
		Success:         "p-4 border-2 border-black-true bg-lime font-mono",
		Error:           "p-4 border-2 border-black-true bg-orange font-mono",
		Footer:          "py-12 bg-black-true text-cream",
		ToggleIcon:      "w-10 h-10 border-2 border-black-true bg-cream dark:bg-black-true",
	},
}

// Palette returns the classes for v.
func (v Variant) Palette() Palette {
	return palettes[ParseVariant(string(v))]
}
