package nibbles

import (
	"math"

	"github.com/vovakirdan/nibbles/internal/core"
	"github.com/vovakirdan/nibbles/internal/games/nibbles/field"
	"github.com/vovakirdan/nibbles/internal/games/nibbles/levels"
)

// TrailEntry is one tick of a snake's history. Marker entries record a
// sub-step without movement and own no pixels.
type TrailEntry struct {
	Pos    field.Pos
	Marker bool
}

// Snake is one player's physical state.
type Snake struct {
	ID      int
	Name    string
	Color   core.Color
	Front   field.Pos
	Trail   []TrailEntry // oldest first
	Length  int          // trail capacity in ticks, counting the front
	Heading float64
	Lives   int
	Score   int

	quanta      int     // ticks until the next commit; 0 commits every tick
	sub         int     // sub-steps taken since the last commit
	subHeading  float64 // heading of the current sub-steps
	pending     float64
	hasPending  bool
	lastSpinner float64
	seenSpinner bool
}

// Owner returns the field owner for this snake's body.
func (s *Snake) Owner() field.Owner {
	return field.Snake(s.ID)
}

// Alive reports whether the snake still has lives.
func (s *Snake) Alive() bool {
	return s.Lives > 0
}

// Quanta returns the commit countdown.
func (s *Snake) Quanta() int {
	return s.quanta
}

// DisplayPos is the interpolated position for smooth rendering.
func (s *Snake) DisplayPos(q int) field.Pos {
	if q <= 1 || s.sub == 0 {
		return s.Front
	}
	return Advance(s.Front, s.subHeading, float64(s.sub)/float64(q))
}

// resetToSpawn places the snake at a level spawn. Lives and score persist.
func (s *Snake) resetToSpawn(sp levels.Spawn, r Rules) {
	s.Front = sp.Pos()
	s.Heading = core.NormalizeAngle(sp.Heading)
	s.Trail = s.Trail[:0]
	s.Length = r.StartEntries()
	s.sub = 0
	s.quanta = 0
	if r.Quantized() {
		s.quanta = r.Quantization
	}
	s.hasPending = false
	s.seenSpinner = false
}

const snapGrid = 1e6

// Advance returns pos moved distance cells along heading. Results are
// snapped to 1e-6 so repeated steps stay on the grid.
func Advance(pos field.Pos, heading, distance float64) field.Pos {
	return field.Pos{
		U: snap(pos.U + distance*math.Cos(heading)),
		V: snap(pos.V + distance*math.Sin(heading)),
	}
}

func snap(v float64) float64 {
	r := math.Round(v*snapGrid) / snapGrid
	if r == 0 {
		return 0 // no negative zero
	}
	return r
}
