package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-defender/internal/core"
)

// Terminal cell geometry in world pixels.
const (
	CellWidth  = 10
	CellHeight = 25
)

// HoldDecay is how long a key counts as held after its last press or
// repeat. Terminals report presses only, never releases.
const HoldDecay = 150 * time.Millisecond

// ShootLatch is the hold window for Shoot. It outlasts the usual terminal
// auto-repeat delay (250-500 ms) so holding the fire key is one press.
const ShootLatch = 550 * time.Millisecond

// KeyResult is the meaning of one key press.
type KeyResult struct {
	Held  []core.Action // held until HoldDecay passes without a repeat
	Event core.Action   // set for this frame only, ActionNone if none
	Char  rune          // typed character for name entry, 0 if none
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message. Shifted movement keys also boost.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyResult {
	var r KeyResult

	switch msg.String() {
	case "ctrl+c":
		r.Event = core.ActionQuit
		return r
	case "esc":
		r.Event = core.ActionEscape
		return r
	case "enter":
		r.Event = core.ActionEnter
		return r
	case "backspace":
		r.Event = core.ActionBackspace
		return r
	case "left", "a":
		r.Held = []core.Action{core.ActionLeft}
	case "right", "d":
		r.Held = []core.Action{core.ActionRight}
	case "up", "w":
		r.Held = []core.Action{core.ActionUp}
	case "down", "s":
		r.Held = []core.Action{core.ActionDown}
	case "shift+left", "A":
		r.Held = []core.Action{core.ActionLeft, core.ActionBoost}
	case "shift+right", "D":
		r.Held = []core.Action{core.ActionRight, core.ActionBoost}
	case "shift+up", "W":
		r.Held = []core.Action{core.ActionUp, core.ActionBoost}
	case "shift+down", "S":
		r.Held = []core.Action{core.ActionDown, core.ActionBoost}
	case " ":
		r.Held = []core.Action{core.ActionShoot}
	case "b":
		r.Held = []core.Action{core.ActionBoost}
	case "h", "?":
		r.Event = core.ActionHelp
	}

	// Any printable rune doubles as text for name entry
	if msg.Type == tea.KeySpace {
		r.Char = ' '
	} else if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		r.Char = msg.Runes[0]
	}
	return r
}

// MapMouse returns the pixel at the centre of the clicked cell and whether
// the message is a left-button press.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (x, y float64, ok bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return 0, 0, false
	}
	x, y = CellToPixel(msg.X, msg.Y)
	return x, y, true
}

// CellToPixel returns the world-independent pixel at the centre of a cell.
func CellToPixel(col, row int) (float64, float64) {
	return float64(col)*CellWidth + CellWidth/2.0, float64(row)*CellHeight + CellHeight/2.0
}

// opposite pairs are mutually exclusive: pressing one releases the other.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// HeldKeys turns a stream of key presses into held actions.
type HeldKeys struct {
	decay time.Duration
	latch map[core.Action]time.Duration
	last  map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given decay. Shoot is held for
// ShootLatch instead.
func NewHeldKeys(decay time.Duration) *HeldKeys {
	return &HeldKeys{
		decay: decay,
		latch: map[core.Action]time.Duration{core.ActionShoot: ShootLatch},
		last:  make(map[core.Action]time.Time),
	}
}

func (h *HeldKeys) decayFor(a core.Action) time.Duration {
	if d, ok := h.latch[a]; ok {
		return d
	}
	return h.decay
}

// Press records a press or repeat of a.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if o, ok := opposite[a]; ok {
		delete(h.last, o)
	}
	h.last[a] = now
}

// Apply sets every action still held at now on f and forgets the rest.
func (h *HeldKeys) Apply(f *core.InputFrame, now time.Time) {
	for a, t := range h.last {
		if now.Sub(t) < h.decayFor(a) {
			f.Set(a)
		} else {
			delete(h.last, a)
		}
	}
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	clear(h.last)
}
