package nibbles

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/nibbles/internal/config"
	"github.com/vovakirdan/nibbles/internal/games/nibbles/field"
	"github.com/vovakirdan/nibbles/internal/games/nibbles/levels"
)

// Session is the state of one round: the field, the snakes, the collectable
// and the level table. The phase machine in Game owns its lifecycle.
type Session struct {
	Field       *field.Field
	Snakes      []*Snake
	Collectable Collectable
	Levels      []levels.Level
	Level       int // index into Levels
	Rules       Rules

	rng *rand.Rand
}

// NewSession creates a session with an empty field and no snakes.
func NewSession(rules Rules, table []levels.Level, seed int64) *Session {
	if len(table) == 0 {
		table = levels.Builtin()
	}
	return &Session{
		Field:  field.New(FieldW, FieldH, rules.HardenSteps),
		Levels: table,
		Rules:  rules,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// AddPlayers creates n snakes with full lives.
func (s *Session) AddPlayers(n int, palette config.Palette) {
	s.Snakes = s.Snakes[:0]
	for i := range min(n, len(palette.Players)) {
		s.Snakes = append(s.Snakes, &Snake{
			ID:    i,
			Name:  fmt.Sprintf("Player %d", i+1),
			Color: palette.Players[i],
			Lives: s.Rules.Lives,
		})
	}
}

// Snake returns the snake with the given ID, or nil.
func (s *Session) Snake(id int) *Snake {
	for _, sn := range s.Snakes {
		if sn.ID == id {
			return sn
		}
	}
	return nil
}

// CurrentLevel returns the active level.
func (s *Session) CurrentLevel() levels.Level {
	return s.Levels[s.Level%len(s.Levels)]
}

// Cls wipes the field.
func (s *Session) Cls() {
	s.Field.Cls()
	s.Collectable = Collectable{}
}

// StartLevel redraws the field for the current level, puts every snake on
// its spawn and places collectable 1.
func (s *Session) StartLevel() {
	lvl := s.CurrentLevel()
	s.Cls()
	if !lvl.Draw(s.Field) {
		logger.Warn("level walls clipped", "level", lvl.ID)
	}

	for _, sn := range s.Snakes {
		sn.resetToSpawn(lvl.Spawns[sn.ID], s.Rules)
		origin := field.PixelOf(sn.Front)
		field.Blit(field.CellGlyph, origin, s.Field.TrialOp(sn.Owner()), field.ModeAll)
		field.Blit(field.CellGlyph, origin, s.Field.GraduateOp(!s.Rules.Aging), field.ModeAll)
	}

	s.Collectable.Index = 1
	s.PlaceCollectable()
	logger.Info("level started", "level", lvl.ID, "players", len(s.Snakes))
}

// advanceSnake moves one snake for this tick. It returns true when the move
// is a commit that takes part in the collision protocol.
func (s *Session) advanceSnake(sn *Snake) bool {
	q := s.Rules.Quantization
	if !s.Rules.Quantized() {
		s.commitMove(sn, sn.Front, 1)
		return true
	}

	// Analog steering cleared the countdown: every tick commits a sub-step.
	if sn.quanta == 0 {
		from := sn.DisplayPos(q)
		sn.sub = 0
		s.commitMove(sn, from, 1/float64(q))
		return true
	}

	sn.quanta--
	if sn.quanta > 0 {
		if sn.sub == 0 {
			sn.subHeading = sn.Heading
		}
		sn.sub++
		sn.Trail = append(sn.Trail, TrailEntry{Marker: true})
		s.trim(sn)
		return false
	}

	// Commit: catch up the full cell from the last committed front.
	s.commitMove(sn, sn.Front, 1)
	sn.sub = 0
	sn.quanta = q
	s.applyPendingTurn(sn)
	return true
}

// commitMove pushes the old front and moves the front distance cells from
// "from" along the heading. The vacated tail is erased before any claims are
// written so the snake may re-enter it this tick.
func (s *Session) commitMove(sn *Snake, from field.Pos, distance float64) {
	sn.Trail = append(sn.Trail, TrailEntry{Pos: sn.Front})
	sn.Front = Advance(from, sn.Heading, distance)
	s.trim(sn)
}

// trim drops the oldest entries until the trail fits the snake's length
// behind the front.
func (s *Session) trim(sn *Snake) {
	n := 0
	for len(sn.Trail)-n >= sn.Length && n < len(sn.Trail) {
		if e := sn.Trail[n]; !e.Marker {
			field.Blit(field.CellGlyph, field.PixelOf(e.Pos), s.Field.EraseOp(), field.ModeAll)
		}
		n++
	}
	if n > 0 {
		sn.Trail = append(sn.Trail[:0], sn.Trail[n:]...)
	}
}
