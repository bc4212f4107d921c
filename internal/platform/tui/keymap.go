package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nibbles/internal/core"
)

// SpinnerStep is how far one spinner key press or wheel notch turns the
// rotary input, in radians.
const SpinnerStep = math.Pi / 12

// SeatKeys are the bindings of one player seat.
type SeatKeys struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	A         key.Binding
	B         key.Binding
	SpinLeft  key.Binding
	SpinRight key.Binding
}

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Seats  [core.MaxPlayers]SeatKeys
	Start1 key.Binding
	Start2 key.Binding
	Pause  key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default bindings: arrows for player 1 and WASD
// for player 2.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Seats: [core.MaxPlayers]SeatKeys{
			{
				Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
				Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
				Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
				Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
				A:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "A")),
				B:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "B")),
				SpinLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "spin left")),
				SpinRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "spin right")),
			},
			{
				Up:        key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "up")),
				Down:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "down")),
				Left:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "left")),
				Right:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "right")),
				A:         key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "A")),
				B:         key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "B")),
				SpinLeft:  key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "spin left")),
				SpinRight: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "spin right")),
			},
		},
		Start1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "one player")),
		Start2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "two players")),
		Pause:  key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start1, k.Start2, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, s := range k.Seats {
		out = append(out, []key.Binding{s.Up, s.Down, s.Left, s.Right, s.A, s.B, s.SpinLeft, s.SpinRight})
	}
	return append(out, k.ShortHelp())
}

// Input accumulates key presses into the frame of the next tick. Spinner
// angles are absolute and persist across ticks.
type Input struct {
	keys    KeyMap
	frame   core.MultiInputFrame
	spinner [core.MaxPlayers]float64
}

// NewInput creates an input collector for the given bindings.
func NewInput(keys KeyMap) *Input {
	return &Input{keys: keys, frame: core.NewMultiInputFrame()}
}

// HandleKey maps a key press. It returns true for a quit request.
func (in *Input) HandleKey(msg tea.KeyMsg) (quit bool) {
	switch {
	case key.Matches(msg, in.keys.Quit):
		return true
	case key.Matches(msg, in.keys.Start1):
		in.frame.System.Set(core.ActionStart1)
	case key.Matches(msg, in.keys.Start2):
		in.frame.System.Set(core.ActionStart2)
	case key.Matches(msg, in.keys.Pause):
		in.frame.System.Set(core.ActionPause)
	}

	for i, s := range in.keys.Seats {
		id := core.PlayerID(i)
		switch {
		case key.Matches(msg, s.Up):
			in.frame.Press(id, core.ActionUp)
		case key.Matches(msg, s.Down):
			in.frame.Press(id, core.ActionDown)
		case key.Matches(msg, s.Left):
			in.frame.Press(id, core.ActionLeft)
		case key.Matches(msg, s.Right):
			in.frame.Press(id, core.ActionRight)
		case key.Matches(msg, s.A):
			in.frame.Press(id, core.ActionA)
		case key.Matches(msg, s.B):
			in.frame.Press(id, core.ActionB)
		case key.Matches(msg, s.SpinLeft):
			in.spinner[i] -= SpinnerStep
		case key.Matches(msg, s.SpinRight):
			in.spinner[i] += SpinnerStep
		}
	}
	return false
}

// HandleMouse turns the wheel into player 1's spinner.
func (in *Input) HandleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		in.spinner[core.Player1] -= SpinnerStep
	case tea.MouseButtonWheelDown:
		in.spinner[core.Player1] += SpinnerStep
	}
}

// Inject adds system actions to the next frame.
func (in *Input) Inject(actions ...core.Action) {
	for _, a := range actions {
		in.frame.System.Set(a)
	}
}

// Take returns the frame for this tick and clears the pressed actions.
// Every seat reports its spinner angle.
func (in *Input) Take() core.MultiInputFrame {
	out := in.frame.Clone()
	for i, angle := range in.spinner {
		id := core.PlayerID(i)
		f := out.Player(id)
		f.SetSpinner(angle)
		out.SetPlayer(id, f)
	}
	in.frame.Clear()
	return out
}
