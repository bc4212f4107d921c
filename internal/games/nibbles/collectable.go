package nibbles

import (
	"github.com/vovakirdan/nibbles/internal/games/nibbles/field"
)

// MaxIndex is the last collectable of a level.
const MaxIndex = 9

// Collectable is the numbered pickup currently on the field.
type Collectable struct {
	Index    int         // 1..9, also the digit drawn
	Origin   field.Pixel // top-left pixel of the digit glyph
	Placed   bool
	Attempts int // rejection samples used by the last placement
}

// Glyph returns the digit mask of the collectable.
func (c Collectable) Glyph() field.Glyph {
	return field.Digit(c.Index)
}

// PlaceCollectable draws uniformly random grid cells until the digit's
// footprint covers only mature background, then paints it.
// The search is unbounded and never returns on a board with no room.
func (s *Session) PlaceCollectable() {
	c := &s.Collectable
	g := c.Glyph()
	background := s.Field.MatureOp(field.Background)

	c.Attempts = 0
	for {
		c.Attempts++
		cell := field.Pos{U: float64(s.rng.Intn(GridW)), V: float64(s.rng.Intn(GridH))}
		origin := field.PixelOf(cell)
		if !field.Blit(g, origin, background, field.ModeAll) {
			continue
		}
		field.Blit(g, origin, s.Field.PaintOp(field.Collectable, field.Solid), field.ModeAll)
		c.Origin = origin
		c.Placed = true
		logger.Debug("collectable placed", "index", c.Index, "x", origin.X, "y", origin.Y, "attempts", c.Attempts)
		return
	}
}

// removeCollectable erases the digit from the field.
func (s *Session) removeCollectable() {
	c := &s.Collectable
	if !c.Placed {
		return
	}
	field.Blit(c.Glyph(), c.Origin, s.Field.EraseOp(), field.ModeAll)
	c.Placed = false
}

// hitsCollectable reports whether the snake's front footprint touches any
// collectable pixel.
func (s *Session) hitsCollectable(sn *Snake) bool {
	origin := field.PixelOf(sn.Front)
	return field.Blit(field.CellGlyph, origin, s.Field.MatureOp(field.Collectable), field.ModeAny)
}
