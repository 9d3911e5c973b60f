// Package typewriter produces the frames of a looping typed-text headline.
package typewriter

import "time"

// Frame is the text to show and how long to wait before the next frame.
type Frame struct {
	Text  string        `json:"text"`
	Delay time.Duration `json:"delay"`
}

// Timing controls the pace of the animation.
type Timing struct {
	Type   time.Duration
	Delete time.Duration
	Hold   time.Duration
}

// DefaultTiming types at 100ms a rune, deletes twice as fast and holds the
// full phrase for two seconds.
var DefaultTiming = Timing{
	Type:   100 * time.Millisecond,
	Delete: 50 * time.Millisecond,
	Hold:   2 * time.Second,
}

type phase int

const (
	typing phase = iota
	deleting
)

// Typewriter cycles through phrases, typing each one out and deleting it
// again. It is not safe for concurrent use.
type Typewriter struct {
	phrases [][]rune
	timing  Timing

	index int
	shown int
	phase phase
}

// New returns a typewriter over phrases. It panics if phrases is empty.
func New(phrases []string, timing Timing) *Typewriter {
	if len(phrases) == 0 {
		panic("typewriter: no phrases")
	}
	rs := make([][]rune, len(phrases))
	for i, p := range phrases {
		rs[i] = []rune(p)
	}
	return &Typewriter{phrases: rs, timing: timing}
}

// Next advances by one step.
func (t *Typewriter) Next() Frame {
	cur := t.phrases[t.index]
	switch t.phase {
	case typing:
		if t.shown < len(cur) {
			t.shown++
			if t.shown == len(cur) {
				t.phase = deleting
				return Frame{Text: string(cur[:t.shown]), Delay: t.timing.Hold}
			}
			return Frame{Text: string(cur[:t.shown]), Delay: t.timing.Type}
		}
		t.phase = deleting
		fallthrough
	default:
		if t.shown > 0 {
			t.shown--
			if t.shown == 0 {
				t.index = (t.index + 1) % len(t.phrases)
				t.phase = typing
				return Frame{Text: "", Delay: t.timing.Type}
			}
			return Frame{Text: string(cur[:t.shown]), Delay: t.timing.Delete}
		}
		t.index = (t.index + 1) % len(t.phrases)
		t.phase = typing
		return Frame{Text: "", Delay: t.timing.Type}
	}
}

// Cycle returns the frames for one pass over every phrase, ending with the
// text cleared and the typewriter back at the first phrase.
func (t *Typewriter) Cycle() []Frame {
	var frames []Frame
	start := t.index
	for {
		f := t.Next()
		frames = append(frames, f)
		if f.Text == "" && t.index == start && t.phase == typing {
			return frames
		}
	}
}

// phrase returns the phrase currently being typed or deleted.
func (t *Typewriter) phrase() string {
	return string(t.phrases[t.index])
}
