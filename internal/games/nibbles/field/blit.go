package field

// Glyph is a fixed-size boolean mask. True pixels are the footprint that
// takes part in drawing and collision.
type Glyph struct {
	W, H int
	Bits []bool
}

// At reports whether the mask is set at (x, y).
func (g Glyph) At(x, y int) bool {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return false
	}
	return g.Bits[y*g.W+x]
}

// Pixels returns the field pixels covered by the glyph placed at origin.
func (g Glyph) Pixels(origin Pixel) []Pixel {
	out := make([]Pixel, 0, len(g.Bits))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Bits[y*g.W+x] {
				out = append(out, Pixel{X: origin.X + x, Y: origin.Y + y})
			}
		}
	}
	return out
}

// glyphFromRows builds a glyph from rows of '#' (set) and '.' (clear).
func glyphFromRows(rows ...string) Glyph {
	g := Glyph{W: len(rows[0]), H: len(rows)}
	g.Bits = make([]bool, 0, g.W*g.H)
	for _, row := range rows {
		for _, ch := range row {
			g.Bits = append(g.Bits, ch == '#')
		}
	}
	return g
}

// CellGlyph is the footprint of one grid cell.
var CellGlyph = glyphFromRows(
	"##",
	"##",
)

// Mode selects how Blit aggregates per-pixel results.
type Mode int

const (
	ModeAll Mode = iota // every pixel op succeeded
	ModeAny             // at least one pixel op succeeded
)

// Op is a per-pixel operation.
type Op func(px Pixel) bool

// Blit applies op to every set pixel of g placed at origin and aggregates
// the results by mode. Every op runs; there is no short-circuit.
// An empty glyph yields true for ModeAll and false for ModeAny.
func Blit(g Glyph, origin Pixel, op Op, mode Mode) bool {
	all, some := true, false
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if !g.Bits[y*g.W+x] {
				continue
			}
			if op(Pixel{X: origin.X + x, Y: origin.Y + y}) {
				some = true
			} else {
				all = false
			}
		}
	}
	if mode == ModeAny {
		return some
	}
	return all
}

// PaintOp writes owner and state.
func (f *Field) PaintOp(owner Owner, state State) Op {
	return func(px Pixel) bool { return f.Paint(px, owner, state) }
}

// EraseOp erases to background.
func (f *Field) EraseOp() Op {
	return f.Erase
}

// MatureOp tests for solid ownership by owner.
func (f *Field) MatureOp(owner Owner) Op {
	return func(px Pixel) bool { return f.Mature(px, owner) }
}

// TrialOp places provisional claims for owner.
func (f *Field) TrialOp(owner Owner) Op {
	return func(px Pixel) bool { return f.Trial(px, owner) }
}

// SafeOp tests for owner's own non-solid claims.
func (f *Field) SafeOp(owner Owner) Op {
	return func(px Pixel) bool { return f.Safe(px, owner) }
}

// EqualsOp tests for owner at exactly alpha.
func (f *Field) EqualsOp(owner Owner, alpha uint8) Op {
	return func(px Pixel) bool { return f.Equals(px, owner, alpha) }
}

// GraduateOp confirms claims.
func (f *Field) GraduateOp(toSolid bool) Op {
	return func(px Pixel) bool { return f.Graduate(px, toSolid) }
}
