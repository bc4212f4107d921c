package core

// PlayerID identifies a player seat. Player1 is index 0.
type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
)

// MaxPlayers is the number of seats the input layer supports.
const MaxPlayers = 2

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // D-pad up
	ActionDown          // D-pad down
	ActionLeft          // D-pad left
	ActionRight         // D-pad right
	ActionA             // Primary button (acknowledge)
	ActionB             // Secondary button (acknowledge)
	ActionStart1        // System: one player start
	ActionStart2        // System: two player start
	ActionPause         // P - pause/unpause
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionA:
		return "A"
	case ActionB:
		return "B"
	case ActionStart1:
		return "Start1"
	case ActionStart2:
		return "Start2"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Spinner is the absolute, unbounded rotary angle in radians.
	// Only meaningful when HasSpinner is set; games compare it by delta.
	Spinner    float64
	HasSpinner bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetSpinner records the absolute spinner angle for this frame.
func (f *InputFrame) SetSpinner(angle float64) {
	f.Spinner = angle
	f.HasSpinner = true
}

// Clear resets all actions for the next frame. The spinner angle is kept
// because it is an absolute position, not an event.
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
	clone.Spinner = f.Spinner
	clone.HasSpinner = f.HasSpinner
	return clone
}

// Bits packs the triggered actions into a bitmask (bit n = Action n).
// Used to journal frames compactly.
func (f InputFrame) Bits() uint16 {
	var bits uint16
	for a, on := range f.Actions {
		if on && a > ActionNone && a < 16 {
			bits |= 1 << uint(a)
		}
	}
	return bits
}

// FrameFromBits is the inverse of Bits.
func FrameFromBits(bits uint16) InputFrame {
	f := NewInputFrame()
	for a := Action(1); a < 16; a++ {
		if bits&(1<<uint(a)) != 0 {
			f.Set(a)
		}
	}
	return f
}

// MultiInputFrame contains input from all players for a single tick,
// plus system-level signals (start buttons, pause).
type MultiInputFrame struct {
	// ByPlayer maps player IDs to their input frames.
	ByPlayer map[PlayerID]InputFrame

	// System holds actions that do not belong to a seat.
	System InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
		System:   NewInputFrame(),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if m.ByPlayer == nil {
		return NewInputFrame()
	}
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// SetPlayer sets the input frame for a specific player.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	m.ByPlayer[id] = frame
}

// Press sets an action on the given player's frame.
func (m *MultiInputFrame) Press(id PlayerID, a Action) {
	f := m.Player(id)
	f.Set(a)
	m.SetPlayer(id, f)
}

// AnyHeld reports whether any player has one of the given actions this frame.
func (m MultiInputFrame) AnyHeld(actions ...Action) bool {
	for _, f := range m.ByPlayer {
		for _, a := range actions {
			if f.Has(a) {
				return true
			}
		}
	}
	return false
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for id := range m.ByPlayer {
		frame := m.ByPlayer[id]
		frame.Clear()
		m.ByPlayer[id] = frame
	}
	m.System.Clear()
}

// Clone creates a deep copy of this multi-input frame.
func (m MultiInputFrame) Clone() MultiInputFrame {
	clone := NewMultiInputFrame()
	for id, frame := range m.ByPlayer {
		clone.ByPlayer[id] = frame.Clone()
	}
	clone.System = m.System.Clone()
	return clone
}
