package core

// Action is a player intent, decoupled from the key or button that caused it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // Move cursor up
	ActionDown           // Move cursor down
	ActionLeft           // Move cursor left
	ActionRight          // Move cursor right
	ActionConfirm        // Pop the group under the cursor
	ActionBack           // Leave the board
	ActionRestart        // Deal a new board
	ActionQuit           // Exit
	ActionPause          // Toggle pause

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Confirm", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// Click is a pointer press at a screen cell.
type Click struct {
	X, Y int
}

// InputFrame is everything the player did during one tick.
// The zero value is an empty frame.
type InputFrame struct {
	actions uint16

	// Click is the last pointer press of the frame, nil when there was none.
	Click *Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.actions |= 1 << a
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.actions&(1<<a) != 0
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionUp; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// SetClick records a pointer press, replacing any earlier one in the frame.
func (f *InputFrame) SetClick(x, y int) {
	f.Click = &Click{X: x, Y: y}
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return f.actions == 0 && f.Click == nil
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.actions = 0
	f.Click = nil
}

// Clone returns a copy that does not share the click with f.
func (f InputFrame) Clone() InputFrame {
	if f.Click != nil {
		c := *f.Click
		f.Click = &c
	}
	return f
}
