package tui

import "github.com/vovakirdan/tui-battleship/internal/core"

// EffectPlayer receives the cue names a game reports in StepResult.Effects.
type EffectPlayer interface {
	Play(effect string)
}

// flashTicks is how long a caption stays up, in ticks.
const flashTicks = 45

type cue struct {
	caption string
	color   core.Color
	bell    bool
}

var cues = map[string]cue{
	"miss":    {"SPLASH", core.ColorGray, false},
	"hit":     {"HIT!", core.ColorBrightRed, true},
	"destroy": {"SUNK!", core.ColorOrange, true},
	"place":   {"DEPLOYED", core.ColorBrightGreen, false},
	"select":  {"*", core.ColorGray, false},
}

// Flash shows a short caption for each cue in the top right corner and
// queues a terminal bell on hits. Unknown cues are ignored.
type Flash struct {
	bell    bool // Whether hits ring the bell at all
	ring    bool // A bell is waiting for the next frame
	caption string
	color   core.Color
	ticks   int
}

// NewFlash creates a Flash. With bell set, hits queue a BEL for the next frame.
func NewFlash(bell bool) *Flash {
	return &Flash{bell: bell}
}

// Play implements EffectPlayer.
func (f *Flash) Play(effect string) {
	c, ok := cues[effect]
	if !ok {
		return
	}
	f.caption = c.caption
	f.color = c.color
	f.ticks = flashTicks
	if c.bell && f.bell {
		f.ring = true
	}
}

// TakeBell reports whether a bell is queued and clears it.
func (f *Flash) TakeBell() bool {
	ring := f.ring
	f.ring = false
	return ring
}

// Tick ages the current caption.
func (f *Flash) Tick() {
	if f.ticks > 0 {
		f.ticks--
	}
}

// Caption returns the visible caption, or "" when none is showing.
func (f *Flash) Caption() string {
	if f.ticks == 0 {
		return ""
	}
	return f.caption
}

// Draw puts the caption on the first row, right aligned.
func (f *Flash) Draw(s *core.Screen) {
	text := f.Caption()
	if text == "" {
		return
	}
	s.DrawTextColor(s.Width()-len(text)-1, 0, text, f.color)
}
