package nibbles

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/vovakirdan/nibbles/internal/games/nibbles/field"
)

// SnakeSnapshot is the per-snake part of a Snapshot.
type SnakeSnapshot struct {
	Front    field.Pos
	Heading  float64
	Length   int
	TrailLen int
	Lives    int
	Score    int
	Quanta   int
}

// Snapshot captures the game state for determinism testing and replay
// verification.
type Snapshot struct {
	Tick        uint64
	Phase       string
	Level       int // 1-indexed for display
	Index       int
	Collectable field.Pixel
	Snakes      []SnakeSnapshot
	FieldHash   uint64
	Paused      bool
	TooSmall    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Tick:        g.tick,
		Phase:       g.phase.String(),
		Level:       s.Level + 1,
		Index:       s.Collectable.Index,
		Collectable: s.Collectable.Origin,
		FieldHash:   s.Field.Hash(),
		Paused:      g.paused,
		TooSmall:    g.tooSmall,
	}
	for _, sn := range s.Snakes {
		snap.Snakes = append(snap.Snakes, SnakeSnapshot{
			Front:    sn.Front,
			Heading:  sn.Heading,
			Length:   sn.Length,
			TrailLen: len(sn.Trail),
			Lives:    sn.Lives,
			Score:    sn.Score,
			Quanta:   sn.quanta,
		})
	}
	return snap
}

// Fingerprint hashes the field together with every snake's score and lives.
// Two runs of the same replay produce the same fingerprint.
func (g *Game) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], g.session.Field.Hash())
	h.Write(buf[:])
	for _, sn := range g.session.Snakes {
		binary.LittleEndian.PutUint32(buf[:4], uint32(sn.Score))
		binary.LittleEndian.PutUint32(buf[4:], uint32(sn.Lives))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Phase != o.Phase || s.Level != o.Level || s.Index != o.Index ||
		s.Collectable != o.Collectable || s.FieldHash != o.FieldHash ||
		s.Paused != o.Paused || s.TooSmall != o.TooSmall || len(s.Snakes) != len(o.Snakes) {
		return false
	}
	for i := range s.Snakes {
		if s.Snakes[i] != o.Snakes[i] {
			return false
		}
	}
	return true
}
