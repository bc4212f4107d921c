// Package levels provides the nibbles level table: spawn tuples and the wall
// procedure for each level, plus loading extra levels from YAML files.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/nibbles/internal/core"
	"github.com/vovakirdan/nibbles/internal/games/nibbles/field"
)

// ErrNotFound is returned when a level lookup fails.
var ErrNotFound = errors.New("levels: level not found")

// Spawn is a player's start position and heading.
type Spawn struct {
	U, V    float64
	Heading float64
}

// Pos returns the spawn position.
func (s Spawn) Pos() field.Pos {
	return field.Pos{U: s.U, V: s.V}
}

// WallKind selects the shape of a wall draw.
type WallKind int

const (
	WallHLine WallKind = iota
	WallVLine
	WallRect
)

func (k WallKind) String() string {
	switch k {
	case WallHLine:
		return "hline"
	case WallVLine:
		return "vline"
	case WallRect:
		return "rect"
	default:
		return "unknown"
	}
}

// ParseWallKind is the inverse of String.
func ParseWallKind(s string) (WallKind, error) {
	switch s {
	case "hline":
		return WallHLine, nil
	case "vline":
		return WallVLine, nil
	case "rect":
		return WallRect, nil
	}
	return 0, fmt.Errorf("levels: unknown wall kind %q", s)
}

// WallOp is a single wall draw in cell units. Lines use W (hline) or H (vline).
type WallOp struct {
	Kind WallKind
	X, Y int
	W, H int
}

// HLine draws n cells to the right of (x, y).
func HLine(x, y, n int) WallOp { return WallOp{Kind: WallHLine, X: x, Y: y, W: n, H: 1} }

// VLine draws n cells down from (x, y).
func VLine(x, y, n int) WallOp { return WallOp{Kind: WallVLine, X: x, Y: y, W: 1, H: n} }

// Rect fills a w×h block.
func Rect(x, y, w, h int) WallOp { return WallOp{Kind: WallRect, X: x, Y: y, W: w, H: h} }

// Bounds returns the grid cells covered by the op.
func (op WallOp) Bounds() core.Rect {
	switch op.Kind {
	case WallHLine:
		return core.NewRect(op.X, op.Y, op.W, 1)
	case WallVLine:
		return core.NewRect(op.X, op.Y, 1, op.H)
	default:
		return core.NewRect(op.X, op.Y, op.W, op.H)
	}
}

// Level is one entry of the level table.
type Level struct {
	ID       string
	Name     string
	Spawns   [2]Spawn
	Walls    []WallOp
	FilePath string // empty for built-ins
}

// GridSize returns the cell grid dimensions of f.
func GridSize(f *field.Field) (w, h int) {
	return f.W() / field.CellSize, f.H() / field.CellSize
}

// Draw paints the border and the level's walls. Returns false if any wall
// cell fell outside the field.
func (l Level) Draw(f *field.Field) bool {
	gw, gh := GridSize(f)
	ok := drawBorder(f, gw, gh)
	for _, op := range l.Walls {
		if !fillCells(f, op.Bounds()) {
			ok = false
		}
	}
	return ok
}

func drawBorder(f *field.Field, gw, gh int) bool {
	ok := fillCells(f, core.NewRect(0, 0, gw, 1))
	ok = fillCells(f, core.NewRect(0, gh-1, gw, 1)) && ok
	ok = fillCells(f, core.NewRect(0, 1, 1, gh-2)) && ok
	ok = fillCells(f, core.NewRect(gw-1, 1, 1, gh-2)) && ok
	return ok
}

func fillCells(f *field.Field, r core.Rect) bool {
	ok := true
	paint := f.PaintOp(field.Wall, field.Solid)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			origin := field.Pixel{X: x * field.CellSize, Y: y * field.CellSize}
			if !field.Blit(field.CellGlyph, origin, paint, field.ModeAll) {
				ok = false
			}
		}
	}
	return ok
}

// Validate checks that spawns sit inside the border of a gw×gh grid, clear
// of every wall and of each other, and that wall ops have positive extent.
func (l Level) Validate(gw, gh int) error {
	for i, op := range l.Walls {
		if op.W <= 0 || op.H <= 0 {
			return fmt.Errorf("levels: %s: wall %d (%s) has no extent", l.ID, i+1, op.Kind)
		}
	}
	for i, s := range l.Spawns {
		if s.U < 1 || s.V < 1 || s.U > float64(gw-2) || s.V > float64(gh-2) {
			return fmt.Errorf("levels: %s: spawn %d at (%g, %g) is outside the playfield", l.ID, i+1, s.U, s.V)
		}
		for j, op := range l.Walls {
			if spawnHits(s, op.Bounds()) {
				return fmt.Errorf("levels: %s: spawn %d at (%g, %g) is on wall %d", l.ID, i+1, s.U, s.V, j+1)
			}
		}
	}
	a, b := field.PixelOf(l.Spawns[0].Pos()), field.PixelOf(l.Spawns[1].Pos())
	if abs(a.X-b.X) < field.CellSize && abs(a.Y-b.Y) < field.CellSize {
		return fmt.Errorf("levels: %s: spawns overlap", l.ID)
	}
	return nil
}

// spawnHits reports whether the cell footprint of s touches any grid cell
// of r.
func spawnHits(s Spawn, r core.Rect) bool {
	origin := field.PixelOf(s.Pos())
	for _, px := range field.CellGlyph.Pixels(origin) {
		if r.Contains(px.X/field.CellSize, px.Y/field.CellSize) {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Find returns the level with the given ID.
func Find(table []Level, id string) (Level, error) {
	for _, l := range table {
		if l.ID == id {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
