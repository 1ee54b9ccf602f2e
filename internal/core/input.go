package core

// Action represents a semantic game intent, abstracted from physical key presses.
// The session only ever sees these, never raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Space, Up, W - jump; also starts a run from idle
	ActionPause        // P, Esc while a run is live - pause/unpause
	ActionStart        // Enter, R - start, or restart after game over
	ActionClose        // Esc while idle or after game over - tear the run down
	ActionQuit         // Q, Ctrl+C - leave the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionClose:
		return "Close"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the intents triggered between two simulation ticks.
// Actions keep the order they were first set in; repeats within a frame collapse.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 4)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || f.Has(a) {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.actions {
		if x == a {
			return true
		}
	}
	return false
}

// Actions returns the triggered actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
