package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nibbles/internal/config"
	"github.com/vovakirdan/nibbles/internal/core"
	"github.com/vovakirdan/nibbles/internal/registry"
	"github.com/vovakirdan/nibbles/internal/replay"
	"github.com/vovakirdan/nibbles/internal/storage"
)

// Options configure a terminal session.
type Options struct {
	// Players presses the start button for this many players on the first
	// tick. Zero leaves the game on its title screen.
	Players int

	// Recorder journals every stepped tick when set.
	Recorder *replay.Recorder

	// Replay plays a journal instead of reading the keyboard.
	Replay *storage.Replay
}

// periodic is implemented by games whose tick period varies as they play.
type periodic interface {
	TickPeriod() time.Duration
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	renderer *Renderer
	config   core.RuntimeConfig
	input    *Input
	opts     Options
	player   *replay.Player
	started  bool
	finished bool // replay exhausted
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 && opts.Replay == nil {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(),
		config:   cfg,
		input:    NewInput(DefaultKeyMap()),
		opts:     opts,
	}
	if opts.Replay != nil {
		m.config.Seed = opts.Replay.Seed
		m.config.Speed = opts.Replay.Speed
		m.player = replay.NewPlayer(opts.Replay)
	}
	return m
}

// Config returns the runtime config the game was reset with.
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	cmds := []tea.Cmd{tickCmd(m.period())}
	if m.player != nil {
		cmds = append(cmds, tea.SetWindowTitle(fmt.Sprintf("%s replay", m.game.Title())))
	} else {
		cmds = append(cmds, tea.SetWindowTitle(m.game.Title()))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.input.HandleKey(msg) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.MouseMsg:
		m.input.HandleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick steps the game with either the journal or the keyboard.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}
	if replay.Frozen(m.game) {
		return m, tickCmd(m.period())
	}

	var in core.MultiInputFrame
	if m.player != nil {
		next, ok := m.player.Next()
		if !ok {
			m.finished = true
			return m, nil
		}
		in = next
	} else {
		if !m.started {
			switch m.opts.Players {
			case 1:
				m.input.Inject(core.ActionStart1)
			case 2:
				m.input.Inject(core.ActionStart2)
			}
		}
		in = m.input.Take()
		if m.opts.Recorder != nil {
			m.opts.Recorder.Record(in)
		}
	}
	m.started = true

	m.game.Step(in)
	return m, tickCmd(m.period())
}

func (m Model) period() time.Duration {
	if p, ok := m.game.(periodic); ok {
		return p.TickPeriod()
	}
	return config.TickPeriod(m.config.Speed, 1)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.player != nil && m.screen.Height() > 0 {
		status := fmt.Sprintf(" replay %d/%d ", m.player.Pos(), m.player.Len())
		if m.finished {
			status = " replay finished, press q "
		}
		m.screen.DrawTextColor(0, m.screen.Height()-1, status, core.ColorBlack, core.ColorWhite)
	}

	return m.renderer.Render(m.screen)
}

// Run starts the Bubble Tea program and returns the model it finished with.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		model = m
	}
	return model, err
}
