package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps raw keys to actions; games only ever see these.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - move left (also on ropes)
	ActionRight           // D, Right arrow - move right
	ActionUp              // W, Up arrow - climb ladder up
	ActionDown            // S, Down arrow - climb ladder down
	ActionJump            // Space - small hop when standing on ground
	ActionDigLeft         // Q - dig hole below-left
	ActionDigRight        // E - dig hole below-right
	ActionRestart         // R - restart after game over / win
	ActionPause           // P - pause/unpause
	ActionQuit            // Esc, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionDigLeft:
		return "DigLeft"
	case ActionDigRight:
		return "DigRight"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the held-key state table sampled once per simulation tick.
// It maps actions to whether their key is currently held. One-shot actions
// (dig, jump) are consumed by the simulation after triggering so a held key
// does not repeat-fire.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Consume forces an action back to released. Used for one-shot actions
// whose effect must not repeat while the key stays held.
func (f *InputFrame) Consume(a Action) {
	if f.Actions != nil {
		delete(f.Actions, a)
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
