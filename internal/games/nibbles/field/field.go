// Package field holds the nibbles occupancy field: a fixed pixel canvas where
// every pixel records who owns it and how confirmed that ownership is.
// It is the only collision truth in the game; rendering reads it separately.
package field

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Kind identifies what occupies a pixel.
type Kind uint8

const (
	KindBackground Kind = iota
	KindWall
	KindSnake
	KindCollectable
	KindContested // claimed by more than one snake in the same tick
)

// Owner is the "what" of a pixel. Player is only meaningful for KindSnake.
type Owner struct {
	Kind   Kind
	Player int
}

// Fixed owners.
var (
	Background  = Owner{Kind: KindBackground}
	Wall        = Owner{Kind: KindWall}
	Collectable = Owner{Kind: KindCollectable}
	Contested   = Owner{Kind: KindContested}
)

// Snake returns the owner for a player's body.
func Snake(player int) Owner {
	return Owner{Kind: KindSnake, Player: player}
}

// State is the "how confirmed" of a pixel.
type State uint8

const (
	Solid     State = iota // permanent until erased
	Claimed                // provisional claim for the current tick
	Hardening              // confirmed, aging toward Solid
)

func (s State) String() string {
	switch s {
	case Solid:
		return "solid"
	case Claimed:
		return "claimed"
	case Hardening:
		return "hardening"
	default:
		return "unknown"
	}
}

// Alpha values of the classic pixel encoding.
const (
	AlphaTrial  uint8 = 0
	AlphaMature uint8 = 255
)

// DefaultHardenSteps is the number of aging ticks between graduation and Solid.
const DefaultHardenSteps = 3

// Cell is one pixel of the field. The zero value is solid background.
type Cell struct {
	Owner Owner
	State State
	Age   int // ticks spent Hardening
}

// Pixel is an integer position on the field.
type Pixel struct {
	X, Y int
}

// Pos is a fractional grid position in cell units.
type Pos struct {
	U, V float64
}

// CellSize is the pixel edge of one grid cell.
const CellSize = 2

const eps = 1e-6

// PixelOf converts a grid position to the pixel origin of its cell footprint.
func PixelOf(p Pos) Pixel {
	return Pixel{
		X: int(math.Floor(p.U*CellSize + eps)),
		Y: int(math.Floor(p.V*CellSize + eps)),
	}
}

// Field is a W×H occupancy canvas.
type Field struct {
	w, h        int
	hardenSteps int
	cells       []Cell
}

// New creates a field of solid background. hardenSteps <= 0 means graduated
// claims turn Solid immediately.
func New(w, h, hardenSteps int) *Field {
	if hardenSteps < 0 {
		hardenSteps = 0
	}
	if hardenSteps > int(AlphaMature)-1 {
		hardenSteps = int(AlphaMature) - 1
	}
	return &Field{
		w:           w,
		h:           h,
		hardenSteps: hardenSteps,
		cells:       make([]Cell, w*h),
	}
}

// W returns the width in pixels.
func (f *Field) W() int { return f.w }

// H returns the height in pixels.
func (f *Field) H() int { return f.h }

// HardenSteps returns the aging ticks between graduation and Solid.
func (f *Field) HardenSteps() int { return f.hardenSteps }

// InBounds reports whether px lies on the field.
func (f *Field) InBounds(px Pixel) bool {
	return px.X >= 0 && px.X < f.w && px.Y >= 0 && px.Y < f.h
}

func (f *Field) index(px Pixel) int {
	return px.Y*f.w + px.X
}

// At returns the cell at px. ok is false out of bounds.
func (f *Field) At(px Pixel) (c Cell, ok bool) {
	if !f.InBounds(px) {
		return Cell{}, false
	}
	return f.cells[f.index(px)], true
}

// Young is the alpha of a freshly graduated pixel.
func (f *Field) Young() uint8 {
	return AlphaMature - uint8(f.hardenSteps)
}

// Alpha returns the classic alpha encoding of the cell at px.
// Out of bounds reads as mature.
func (f *Field) Alpha(px Pixel) uint8 {
	c, ok := f.At(px)
	if !ok {
		return AlphaMature
	}
	return f.alphaOf(c)
}

func (f *Field) alphaOf(c Cell) uint8 {
	switch c.State {
	case Claimed:
		return AlphaTrial
	case Hardening:
		return f.Young() + uint8(c.Age)
	default:
		return AlphaMature
	}
}

// Cls resets every pixel to solid background.
func (f *Field) Cls() {
	clear(f.cells)
}

// Paint writes owner and state unconditionally.
func (f *Field) Paint(px Pixel, owner Owner, state State) bool {
	if !f.InBounds(px) {
		return false
	}
	f.cells[f.index(px)] = Cell{Owner: owner, State: state}
	return true
}

// Erase paints solid background.
func (f *Field) Erase(px Pixel) bool {
	return f.Paint(px, Background, Solid)
}

// Mature reports whether px is solidly owned by owner.
func (f *Field) Mature(px Pixel, owner Owner) bool {
	c, ok := f.At(px)
	return ok && c.Owner == owner && c.State == Solid
}

// Trial places a provisional claim. Solid background becomes Claimed by owner.
// A pixel already Claimed by someone else becomes Contested so neither
// claimant reads it as its own. Everything else is preserved.
func (f *Field) Trial(px Pixel, owner Owner) bool {
	if !f.InBounds(px) {
		return false
	}
	c := &f.cells[f.index(px)]
	switch {
	case c.State == Solid && c.Owner == Background:
		*c = Cell{Owner: owner, State: Claimed}
	case c.State == Claimed && c.Owner != owner:
		*c = Cell{Owner: Contested, State: Claimed}
	}
	return true
}

// Safe reports whether px holds a non-solid claim by owner.
func (f *Field) Safe(px Pixel, owner Owner) bool {
	c, ok := f.At(px)
	return ok && c.Owner == owner && c.State != Solid
}

// Equals reports whether px is owned by owner with exactly the given alpha.
func (f *Field) Equals(px Pixel, owner Owner, alpha uint8) bool {
	c, ok := f.At(px)
	return ok && c.Owner == owner && f.alphaOf(c) == alpha
}

// Graduate confirms a Claimed pixel. With toSolid, or when the field has no
// aging steps, it goes straight to Solid.
func (f *Field) Graduate(px Pixel, toSolid bool) bool {
	if !f.InBounds(px) {
		return false
	}
	c := &f.cells[f.index(px)]
	if c.State != Claimed {
		return false
	}
	if toSolid || f.hardenSteps == 0 {
		c.State = Solid
	} else {
		c.State = Hardening
	}
	c.Age = 0
	return true
}

// Age advances every Hardening pixel within the Chebyshev radius of center.
// Returns the number of pixels that turned Solid.
func (f *Field) Age(center Pixel, radius int) int {
	x0 := max(center.X-radius, 0)
	x1 := min(center.X+radius, f.w-1)
	y0 := max(center.Y-radius, 0)
	y1 := min(center.Y+radius, f.h-1)

	hardened := 0
	for y := y0; y <= y1; y++ {
		row := f.cells[y*f.w : (y+1)*f.w]
		for x := x0; x <= x1; x++ {
			c := &row[x]
			if c.State != Hardening {
				continue
			}
			c.Age++
			if c.Age >= f.hardenSteps {
				c.State = Solid
				c.Age = 0
				hardened++
			}
		}
	}
	return hardened
}

// Count returns the number of pixels matching owner and state.
func (f *Field) Count(owner Owner, state State) int {
	n := 0
	for _, c := range f.cells {
		if c.Owner == owner && c.State == state {
			n++
		}
	}
	return n
}

// Hash returns an FNV-1a digest of every cell.
func (f *Field) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, c := range f.cells {
		buf[0] = byte(c.Owner.Kind)
		buf[1] = byte(c.State)
		binary.LittleEndian.PutUint16(buf[2:], uint16(c.Age))
		binary.LittleEndian.PutUint32(buf[4:], uint32(c.Owner.Player))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
