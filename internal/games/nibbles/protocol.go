package nibbles

import (
	"github.com/vovakirdan/nibbles/internal/core"
	"github.com/vovakirdan/nibbles/internal/games/nibbles/field"
)

// Outcome reports what happened during one protocol tick.
type Outcome struct {
	Committed     []int // snakes whose front moved a committed step
	Collected     []int // snakes that touched the collectable
	Dead          []int // snakes whose front was not safe
	Eliminated    bool  // a snake ran out of lives
	LevelComplete bool  // collectable 9 was picked up
}

// Died reports whether any snake died this tick.
func (o Outcome) Died() bool {
	return len(o.Dead) > 0
}

// Tick runs turn resolution, movement and the claim/commit protocol for
// every living snake.
//
// All fronts are claimed before any is checked, so two snakes entering the
// same pixel in the same tick both fail regardless of iteration order.
func (s *Session) Tick(in core.MultiInputFrame) Outcome {
	var out Outcome

	for _, sn := range s.Snakes {
		if sn.Alive() {
			s.resolveTurn(sn, in.Player(core.PlayerID(sn.ID)))
		}
	}

	var movers []*Snake
	for _, sn := range s.Snakes {
		if sn.Alive() && s.advanceSnake(sn) {
			movers = append(movers, sn)
			out.Committed = append(out.Committed, sn.ID)
		}
	}

	pickedIndex := s.collect(movers, &out)

	for _, sn := range movers {
		field.Blit(field.CellGlyph, field.PixelOf(sn.Front), s.Field.TrialOp(sn.Owner()), field.ModeAll)
	}

	var dead []*Snake
	for _, sn := range movers {
		if !s.frontIsSafe(sn) {
			dead = append(dead, sn)
			out.Dead = append(out.Dead, sn.ID)
		}
	}

	if len(dead) > 0 {
		// Claims stay on the field until the level is redrawn.
		for _, sn := range dead {
			sn.Lives = max(sn.Lives-1, 0)
			if sn.Lives == 0 {
				out.Eliminated = true
			}
			logger.Info("snake crashed", "player", sn.Name, "lives", sn.Lives)
		}
		return out
	}

	for _, sn := range movers {
		field.Blit(field.CellGlyph, field.PixelOf(sn.Front), s.Field.GraduateOp(!s.Rules.Aging), field.ModeAll)
	}

	if s.Rules.Aging {
		for _, sn := range s.Snakes {
			if sn.Alive() {
				s.Field.Age(frontCenter(sn), s.Rules.AgeRadius)
			}
		}
	}

	if pickedIndex > 0 {
		if pickedIndex >= MaxIndex {
			out.LevelComplete = true
		} else {
			s.PlaceCollectable()
		}
	}
	return out
}

// collect awards every mover touching the collectable and erases it.
// Returns the index that was picked, or 0.
func (s *Session) collect(movers []*Snake, out *Outcome) int {
	if !s.Collectable.Placed {
		return 0
	}
	var hit []*Snake
	for _, sn := range movers {
		if s.hitsCollectable(sn) {
			hit = append(hit, sn)
			out.Collected = append(out.Collected, sn.ID)
		}
	}
	if len(hit) == 0 {
		return 0
	}

	index := s.Collectable.Index
	for _, sn := range hit {
		sn.Score += index * s.Rules.PointsPerIndex
		sn.Length += s.Rules.Growth(index)
		logger.Debug("collectable picked", "player", sn.Name, "index", index, "score", sn.Score)
	}
	s.removeCollectable()
	if index < MaxIndex {
		s.Collectable.Index = index + 1
	}
	return index
}

// frontIsSafe checks a mover's freshly claimed footprint.
func (s *Session) frontIsSafe(sn *Snake) bool {
	origin := field.PixelOf(sn.Front)
	if s.Rules.Aging {
		return field.Blit(field.CellGlyph, origin, s.Field.SafeOp(sn.Owner()), field.ModeAll)
	}
	return field.Blit(field.CellGlyph, origin, s.Field.EqualsOp(sn.Owner(), field.AlphaTrial), field.ModeAll)
}

// frontCenter is the pixel at the middle of the snake's front footprint.
func frontCenter(sn *Snake) field.Pixel {
	px := field.PixelOf(sn.Front)
	return field.Pixel{X: px.X + field.CellSize/2, Y: px.Y + field.CellSize/2}
}
