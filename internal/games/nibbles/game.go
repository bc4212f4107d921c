package nibbles

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/nibbles/internal/config"
	"github.com/vovakirdan/nibbles/internal/core"
	"github.com/vovakirdan/nibbles/internal/games/nibbles/levels"
	"github.com/vovakirdan/nibbles/internal/registry"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseTitle  Phase = iota
	PhasePrePre       // waiting for the acknowledgment buttons to be released
	PhasePre          // waiting for an acknowledgment press
	PhaseLevel
	PhaseWin
	PhaseLose
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePrePre:
		return "prepre"
	case PhasePre:
		return "pre"
	case PhaseLevel:
		return "level"
	case PhaseWin:
		return "win"
	case PhaseLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Variant IDs.
const (
	VariantNibbles = "nibbles"
	VariantClassic = "nibbles-classic"
)

// Game implements registry.Game for both variants.
type Game struct {
	classic bool
	cfg     config.NibblesConfig
	palette config.Palette
	speed   *config.DifficultyManager

	session    *Session
	phase      Phase
	tick       uint64
	baseSpeed  int
	startLevel int // zero-based
	banner     string
	ackHeld    bool

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// Package-level settings applied by the CLI before games are created.
var (
	logger             = log.New(io.Discard)
	activeConfig       *config.NibblesConfig
	selectedStartLevel int
)

// SetLogger routes engine logs. nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.NibblesConfig) {
	activeConfig = &cfg
}

// SetStartLevel sets the starting level (1-based). 0 means start from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates the quantized variant.
func New() *Game {
	return newGame(false)
}

// NewClassic creates the whole-cell variant.
func NewClassic() *Game {
	return newGame(true)
}

func newGame(classic bool) *Game {
	cfg := config.DefaultNibblesConfig()
	if activeConfig != nil {
		cfg = *activeConfig
	}
	palette, err := cfg.Palette()
	if err != nil {
		logger.Warn("invalid palette, using defaults", "err", err)
		palette, _ = config.DefaultNibblesConfig().Palette()
	}
	return &Game{
		classic: classic,
		cfg:     cfg,
		palette: palette,
		speed:   config.NewDifficultyManager(cfg.Difficulty),
		screenW: ScreenW,
		screenH: ScreenH,
	}
}

func init() {
	registry.Register(VariantNibbles, func() registry.Game {
		return New()
	})
	registry.Register(VariantClassic, func() registry.Game {
		return NewClassic()
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	if g.classic {
		return VariantClassic
	}
	return VariantNibbles
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.classic {
		return "Nibbles (Classic)"
	}
	return "Nibbles"
}

// Reset returns to the title screen with a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	table, skipped, err := levels.Table(g.cfg.LevelsDir, GridW, GridH)
	if err != nil {
		logger.Warn("cannot load levels, using built-ins", "dir", g.cfg.LevelsDir, "err", err)
	}
	for _, e := range skipped {
		logger.Warn("level skipped", "err", e)
	}

	g.session = NewSession(RulesFromConfig(g.cfg, g.classic), table, cfg.Seed)
	g.baseSpeed = cfg.Speed
	g.tick = 0
	g.phase = PhaseTitle
	g.banner = ""
	g.ackHeld = false
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.startLevel = 0
	if selectedStartLevel > 0 && selectedStartLevel <= len(g.session.Levels) {
		g.startLevel = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	}
	g.session.Level = g.startLevel
	logger.Debug("reset", "variant", g.ID(), "seed", cfg.Seed, "levels", len(table))
}

// Resize records the available screen. The game holds still while the
// screen cannot show the whole field.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.tooSmall = w < ScreenW || h < ScreenH
}

// Frozen reports whether Step is ignoring input because the screen is too
// small.
func (g *Game) Frozen() bool {
	return g.tooSmall
}

// Session exposes the current round state.
func (g *Game) Session() *Session {
	return g.session
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Speed returns the effective speed (0..99) at the current level.
func (g *Game) Speed() int {
	return g.speed.Speed(g.baseSpeed, g.session.Level)
}

// TickPeriod returns the scheduler period for the current level.
func (g *Game) TickPeriod() time.Duration {
	return config.TickPeriod(g.Speed(), g.session.Rules.Quantization)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	g.tick++
	ack := in.AnyHeld(core.ActionA, core.ActionB)
	defer func() { g.ackHeld = ack }()

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseTitle:
		switch {
		case in.System.Has(core.ActionStart1):
			g.startRound(1)
		case in.System.Has(core.ActionStart2):
			g.startRound(2)
		}

	case PhasePrePre:
		if !ack {
			g.setPhase(PhasePre)
		}

	case PhasePre:
		if ack {
			g.session.StartLevel()
			g.banner = ""
			g.setPhase(PhaseLevel)
		}

	case PhaseLevel:
		if in.System.Has(core.ActionPause) || in.AnyHeld(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		g.observe(g.session.Tick(in))

	case PhaseWin, PhaseLose:
		if ack && !g.ackHeld {
			g.session.Cls()
			g.setPhase(PhaseTitle)
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) startRound(players int) {
	g.session.Level = g.startLevel
	g.session.AddPlayers(players, g.palette)
	g.banner = g.levelBanner()
	g.setPhase(PhasePrePre)
}

// observe applies a protocol outcome to the phase machine. Deaths take
// precedence over completing the level in the same tick.
func (g *Game) observe(out Outcome) {
	switch {
	case out.Eliminated:
		g.banner = "Game over"
		g.setPhase(PhaseLose)
	case out.Died():
		names := ""
		for i, id := range out.Dead {
			if i > 0 {
				names += " & "
			}
			names += g.session.Snake(id).Name
		}
		g.banner = names + " crashed"
		g.setPhase(PhasePrePre)
	case out.LevelComplete:
		g.session.Level++
		if g.session.Level >= len(g.session.Levels) {
			g.session.Level = len(g.session.Levels) - 1
			g.banner = "You win!"
			g.setPhase(PhaseWin)
			return
		}
		g.banner = g.levelBanner()
		g.setPhase(PhasePrePre)
	}
}

func (g *Game) levelBanner() string {
	lvl := g.session.CurrentLevel()
	return fmt.Sprintf("Level %d: %s", g.session.Level+1, lvl.Name)
}

func (g *Game) setPhase(p Phase) {
	if p == g.phase {
		return
	}
	logger.Debug("phase", "from", g.phase, "to", p, "tick", g.tick)
	g.phase = p
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.session != nil {
		for _, sn := range g.session.Snakes {
			score += sn.Score
		}
	}
	return core.GameState{
		Score:    score,
		GameOver: g.phase == PhaseWin || g.phase == PhaseLose,
		Paused:   g.paused,
	}
}
