package nibbles

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/vovakirdan/nibbles/internal/config"
	"github.com/vovakirdan/nibbles/internal/core"
	"github.com/vovakirdan/nibbles/internal/games/nibbles/field"
)

func pos(u, v float64) field.Pos {
	return field.Pos{U: u, V: v}
}

func testRules(classic bool) Rules {
	return RulesFromConfig(config.DefaultNibblesConfig(), classic)
}

// unquantized returns aging rules that commit every tick.
func unquantized() Rules {
	cfg := config.DefaultNibblesConfig()
	cfg.Quantization = 1
	return RulesFromConfig(cfg, false)
}

// addSnake places a snake whose body is given oldest first, front last.
// The body is painted solid and the length fits it exactly.
func addSnake(s *Session, id int, heading float64, body ...field.Pos) *Snake {
	sn := &Snake{
		ID:      id,
		Name:    fmt.Sprintf("Player %d", id+1),
		Lives:   5,
		Heading: heading,
		Length:  len(body),
	}
	for _, p := range body[:len(body)-1] {
		sn.Trail = append(sn.Trail, TrailEntry{Pos: p})
	}
	sn.Front = body[len(body)-1]
	for _, p := range body {
		field.Blit(field.CellGlyph, field.PixelOf(p), s.Field.PaintOp(sn.Owner(), field.Solid), field.ModeAll)
	}
	if s.Rules.Quantized() {
		sn.quanta = s.Rules.Quantization
	}
	s.Snakes = append(s.Snakes, sn)
	return sn
}

func cellIs(f *field.Field, p field.Pos, owner field.Owner, state field.State) bool {
	for _, px := range field.CellGlyph.Pixels(field.PixelOf(p)) {
		c, ok := f.At(px)
		if !ok || c.Owner != owner || c.State != state {
			return false
		}
	}
	return true
}

func noInput() core.MultiInputFrame {
	return core.NewMultiInputFrame()
}

func pad(id core.PlayerID, a core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	in.Press(id, a)
	return in
}

func spin(id core.PlayerID, angle float64) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	f := core.NewInputFrame()
	f.SetSpinner(angle)
	in.SetPlayer(id, f)
	return in
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: ScreenW, ScreenH: ScreenH, Speed: 70, Seed: seed}
}

// startGame resets g and drives it into the first level.
func startGame(t *testing.T, g *Game, players int, seed int64) {
	t.Helper()
	g.Reset(testRuntime(seed))

	start := core.NewMultiInputFrame()
	if players == 2 {
		start.System.Set(core.ActionStart2)
	} else {
		start.System.Set(core.ActionStart1)
	}
	g.Step(start)
	g.Step(noInput())
	g.Step(pad(core.Player1, core.ActionA))

	if g.Phase() != PhaseLevel {
		t.Fatalf("phase = %v after start sequence, expected level", g.Phase())
	}
}

// driver produces a repeatable input script that keeps the game moving
// through every phase.
type driver struct {
	rng *rand.Rand
}

func newDriver(seed int64) *driver {
	return &driver{rng: rand.New(rand.NewSource(seed))}
}

func (d *driver) next(g *Game) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	switch g.Phase() {
	case PhaseTitle:
		in.System.Set(core.ActionStart2)
	case PhasePre, PhaseWin, PhaseLose:
		in.Press(core.Player2, core.ActionB)
	case PhaseLevel:
		dirs := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
		for _, id := range []core.PlayerID{core.Player1, core.Player2} {
			if d.rng.Intn(6) == 0 {
				in.Press(id, dirs[d.rng.Intn(len(dirs))])
			}
		}
	}
	return in
}
