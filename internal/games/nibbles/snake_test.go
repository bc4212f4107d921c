package nibbles

import (
	"math"
	"testing"

	"github.com/vovakirdan/nibbles/internal/config"
	"github.com/vovakirdan/nibbles/internal/core"
	"github.com/vovakirdan/nibbles/internal/games/nibbles/field"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		heading  float64
		distance float64
		want     field.Pos
	}{
		{core.HeadingRight, 1, pos(11, 10)},
		{core.HeadingDown, 1, pos(10, 11)},
		{core.HeadingLeft, 1, pos(9, 10)},
		{core.HeadingUp, 1, pos(10, 9)},
		{core.HeadingRight, 0.5, pos(10.5, 10)},
		{core.HeadingUp, 0.25, pos(10, 9.75)},
	}
	for _, tt := range tests {
		if got := Advance(pos(10, 10), tt.heading, tt.distance); got != tt.want {
			t.Errorf("Advance(heading=%v, d=%v) = %v, expected %v", tt.heading, tt.distance, got, tt.want)
		}
	}
}

func TestAdvanceStaysOnGrid(t *testing.T) {
	p := pos(3, 3)
	for range 1000 {
		p = Advance(p, core.HeadingRight, 0.5)
		p = Advance(p, core.HeadingLeft, 0.5)
	}
	if p != pos(3, 3) {
		t.Errorf("position drifted to %v", p)
	}
}

func TestQuantizedSubSteps(t *testing.T) {
	s := NewSession(testRules(false), nil, 1)
	q := s.Rules.Quantization
	if q != 2 {
		t.Fatalf("default quantization = %d, expected 2", q)
	}
	sn := addSnake(s, 0, core.HeadingRight, pos(10, 10))
	sn.Length = 10

	out := s.Tick(noInput())
	if len(out.Committed) != 0 {
		t.Fatal("first tick should be a sub-step without commit")
	}
	if sn.Front != pos(10, 10) {
		t.Errorf("Front = %v, expected unchanged (10, 10)", sn.Front)
	}
	if got := sn.DisplayPos(q); got != pos(10.5, 10) {
		t.Errorf("DisplayPos = %v, expected (10.5, 10)", got)
	}
	if len(sn.Trail) != 1 || !sn.Trail[0].Marker {
		t.Errorf("trail = %v, expected one marker", sn.Trail)
	}

	out = s.Tick(noInput())
	if len(out.Committed) != 1 {
		t.Fatal("second tick should commit")
	}
	if sn.Front != pos(11, 10) {
		t.Errorf("Front = %v, expected (11, 10)", sn.Front)
	}
	if sn.DisplayPos(q) != sn.Front {
		t.Errorf("DisplayPos = %v, expected front after commit", sn.DisplayPos(q))
	}
	if sn.Quanta() != q {
		t.Errorf("quanta = %d, expected re-armed %d", sn.Quanta(), q)
	}
}

func TestMarkersDoNotErase(t *testing.T) {
	s := NewSession(testRules(false), nil, 1)
	sn := addSnake(s, 0, core.HeadingRight, pos(10, 10))
	sn.Length = 1

	s.Tick(noInput()) // marker pushed, then trimmed
	if !cellIs(s.Field, pos(10, 10), sn.Owner(), field.Solid) {
		t.Error("trimming a marker must not erase the front cell")
	}
	s.Tick(noInput())
	if !cellIs(s.Field, pos(10, 10), field.Background, field.Solid) {
		t.Error("the vacated cell should be erased on commit")
	}
}

func TestPadReversalRejected(t *testing.T) {
	s := NewSession(testRules(true), nil, 1)
	sn := addSnake(s, 0, core.HeadingRight, pos(10, 10))

	s.Tick(pad(core.Player1, core.ActionLeft))
	if sn.Heading != core.HeadingRight || sn.Front != pos(11, 10) {
		t.Errorf("heading=%v front=%v, expected reversal ignored", sn.Heading, sn.Front)
	}

	s.Tick(pad(core.Player1, core.ActionUp))
	if sn.Heading != core.HeadingUp || sn.Front != pos(11, 9) {
		t.Errorf("heading=%v front=%v, expected immediate turn up", sn.Heading, sn.Front)
	}
}

func TestPadTurnWaitsForCommit(t *testing.T) {
	s := NewSession(testRules(false), nil, 1)
	sn := addSnake(s, 0, core.HeadingRight, pos(10, 10))
	sn.Length = 20

	s.Tick(pad(core.Player1, core.ActionDown))
	if sn.Heading != core.HeadingRight {
		t.Errorf("heading = %v, expected the turn to wait for the commit", sn.Heading)
	}

	s.Tick(noInput())
	if sn.Front != pos(11, 10) {
		t.Errorf("Front = %v, expected catch-up along the old heading", sn.Front)
	}
	if sn.Heading != core.HeadingDown {
		t.Errorf("heading = %v, expected sticky turn applied at commit", sn.Heading)
	}

	s.Tick(noInput())
	s.Tick(noInput())
	if sn.Front != pos(11, 11) {
		t.Errorf("Front = %v, expected (11, 11)", sn.Front)
	}
}

func TestSpinnerSteering(t *testing.T) {
	s := NewSession(testRules(false), nil, 1)
	sn := addSnake(s, 0, core.HeadingRight, pos(10, 10))
	sn.Length = 20
	// A freshly spawned front is still hardening.
	field.Blit(field.CellGlyph, field.PixelOf(sn.Front), s.Field.PaintOp(sn.Owner(), field.Hardening), field.ModeAll)

	if out := s.Tick(spin(core.Player1, 5)); out.Died() {
		t.Fatal("unexpected death")
	}
	if sn.Heading != core.HeadingRight || sn.Quanta() == 0 {
		t.Fatalf("first spinner reading should only be recorded: heading=%v quanta=%d", sn.Heading, sn.Quanta())
	}
	display := sn.DisplayPos(s.Rules.Quantization)

	out := s.Tick(spin(core.Player1, 5+math.Pi/2))
	if out.Died() {
		t.Fatal("steering off the glide position should not collide with the own front")
	}
	if math.Abs(sn.Heading-core.HeadingDown) > 1e-9 {
		t.Errorf("heading = %v, expected down", sn.Heading)
	}
	if sn.Quanta() != 0 {
		t.Errorf("quanta = %d, expected cleared by analog steering", sn.Quanta())
	}
	if len(out.Committed) != 1 {
		t.Error("analog steering should commit immediately")
	}
	if want := Advance(display, core.HeadingDown, 0.5); sn.Front != want {
		t.Errorf("Front = %v, expected %v", sn.Front, want)
	}

	// Unchanged angle keeps moving without turning.
	if out := s.Tick(spin(core.Player1, 5+math.Pi/2)); out.Died() {
		t.Fatal("unexpected death")
	}
	if math.Abs(sn.Heading-core.HeadingDown) > 1e-9 || sn.Quanta() != 0 {
		t.Errorf("heading=%v quanta=%d after an unchanged reading", sn.Heading, sn.Quanta())
	}

	// A pad press re-arms quantization.
	s.Tick(pad(core.Player1, core.ActionLeft))
	if sn.Heading != core.HeadingLeft {
		t.Errorf("heading = %v, expected left", sn.Heading)
	}
	if sn.Quanta() == 0 {
		t.Error("pad press should re-arm quantization")
	}
}

func TestAnalogSteeringOwnTrail(t *testing.T) {
	for _, q := range []int{1, 2, 3, 4, 8} {
		cfg := config.DefaultNibblesConfig()
		cfg.Quantization = q
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Q=%d: Validate() = %v", q, err)
		}
		palette, err := cfg.Palette()
		if err != nil {
			t.Fatalf("Palette() error = %v", err)
		}

		s := NewSession(RulesFromConfig(cfg, false), nil, 1)
		s.AddPlayers(1, palette)
		s.StartLevel()
		s.Tick(spin(core.Player1, 0))

		angle := 0.0
		for tick := range 16 {
			angle += 0.001
			if out := s.Tick(spin(core.Player1, angle)); out.Died() {
				t.Errorf("Q=%d: died on own trail at analog tick %d, front %v", q, tick, s.Snakes[0].Front)
				break
			}
		}
	}
}

func TestClassicIgnoresSpinner(t *testing.T) {
	s := NewSession(testRules(true), nil, 1)
	sn := addSnake(s, 0, core.HeadingRight, pos(10, 10))
	sn.Length = 10

	s.Tick(spin(core.Player1, 0))
	s.Tick(spin(core.Player1, 1))
	if sn.Heading != core.HeadingRight {
		t.Errorf("heading = %v, expected the classic ruleset to ignore the spinner", sn.Heading)
	}
}

func TestIsReversal(t *testing.T) {
	tests := []struct {
		from, to float64
		want     bool
	}{
		{core.HeadingRight, core.HeadingLeft, true},
		{core.HeadingUp, core.HeadingDown, true},
		{core.HeadingDown, core.HeadingUp, true},
		{core.HeadingRight, core.HeadingUp, false},
		{core.HeadingRight, core.HeadingRight, false},
		{0.3, 0.3 + math.Pi, true},
		{0.3, core.HeadingLeft, false},
	}
	for _, tt := range tests {
		if got := isReversal(tt.from, tt.to); got != tt.want {
			t.Errorf("isReversal(%v, %v) = %v, expected %v", tt.from, tt.to, got, tt.want)
		}
	}
}
