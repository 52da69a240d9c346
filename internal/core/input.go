package core

// Action represents a semantic game action, abstracted from physical key presses.
// The simulation works with these intents rather than raw terminal input.
type Action int

const (
	ActionNone      Action = iota
	ActionQuit             // Ctrl+C, window close
	ActionEscape           // Esc - leave the current screen
	ActionEnter            // Enter - confirm
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionShoot            // Space
	ActionBoost            // Shift / B
	ActionClick            // Mouse button press, see MouseX/MouseY
	ActionBackspace        // Backspace held during name entry
	ActionHelp             // H - how to play from the menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	case ActionEscape:
		return "Escape"
	case ActionEnter:
		return "Enter"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionShoot:
		return "Shoot"
	case ActionBoost:
		return "Boost"
	case ActionClick:
		return "Click"
	case ActionBackspace:
		return "Backspace"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot handed to the simulation.
// It is produced once per fixed step while playing and once per frame otherwise.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool

	// MouseX and MouseY are world-independent screen pixels, valid when
	// ActionClick is set.
	MouseX, MouseY float64

	// Char is a single typed character for name entry, 0 if none.
	Char rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a mouse press at the given screen pixel.
func (f *InputFrame) Click(x, y float64) {
	f.Set(ActionClick)
	f.MouseX, f.MouseY = x, y
}

// Clear resets all actions and events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.MouseX, f.MouseY = 0, 0
	f.Char = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.MouseX, clone.MouseY = f.MouseX, f.MouseY
	clone.Char = f.Char
	return clone
}

// WithoutEvents returns a copy keeping only held actions. One-shot events
// (click, typed character) are dropped so repeated fixed steps within a
// frame do not replay them.
func (f InputFrame) WithoutEvents() InputFrame {
	clone := f.Clone()
	delete(clone.Actions, ActionClick)
	clone.Char = 0
	return clone
}
