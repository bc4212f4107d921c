package field

import "testing"

func TestBlitModes(t *testing.T) {
	f := New(6, 6, DefaultHardenSteps)
	f.Paint(Pixel{1, 1}, Wall, Solid)

	all := Blit(CellGlyph, Pixel{0, 0}, f.MatureOp(Background), ModeAll)
	if all {
		t.Error("ModeAll over a partly walled cell should fail")
	}
	some := Blit(CellGlyph, Pixel{0, 0}, f.MatureOp(Wall), ModeAny)
	if !some {
		t.Error("ModeAny should succeed when one pixel matches")
	}
	if Blit(CellGlyph, Pixel{2, 2}, f.MatureOp(Wall), ModeAny) {
		t.Error("ModeAny should fail when no pixel matches")
	}
}

func TestBlitDoesNotShortCircuit(t *testing.T) {
	calls := 0
	op := func(Pixel) bool {
		calls++
		return false
	}
	Blit(CellGlyph, Pixel{0, 0}, op, ModeAll)
	if calls != 4 {
		t.Errorf("op calls = %d, expected 4", calls)
	}
}

func TestBlitClipsAtEdges(t *testing.T) {
	f := New(4, 4, DefaultHardenSteps)
	ok := Blit(CellGlyph, Pixel{3, 3}, f.PaintOp(Wall, Solid), ModeAll)
	if ok {
		t.Error("ModeAll should report clipping at the edge")
	}
	if !f.Mature(Pixel{3, 3}, Wall) {
		t.Error("in-bounds part of a clipped blit should still be written")
	}
}

func TestBlitSkipsClearBits(t *testing.T) {
	f := New(8, 8, DefaultHardenSteps)
	one := Digit(1)
	Blit(one, Pixel{0, 0}, f.PaintOp(Collectable, Solid), ModeAll)

	for y := 0; y < one.H; y++ {
		for x := 0; x < one.W; x++ {
			want := one.At(x, y)
			if got := f.Mature(Pixel{x, y}, Collectable); got != want {
				t.Errorf("pixel (%d, %d) collectable = %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestDigitTable(t *testing.T) {
	for n := 1; n <= 9; n++ {
		g := Digit(n)
		if g.W != 3 || g.H != 5 || len(g.Bits) != 15 {
			t.Errorf("Digit(%d) = %dx%d with %d bits, expected 3x5", n, g.W, g.H, len(g.Bits))
		}
		if len(g.Pixels(Pixel{})) == 0 {
			t.Errorf("Digit(%d) has an empty mask", n)
		}
	}
	for _, n := range []int{0, 10, -1} {
		if g := Digit(n); len(g.Bits) != 0 {
			t.Errorf("Digit(%d) should be empty", n)
		}
	}
}

func TestEmptyGlyph(t *testing.T) {
	op := func(Pixel) bool { return false }
	if !Blit(Glyph{}, Pixel{}, op, ModeAll) {
		t.Error("ModeAll over an empty glyph should be true")
	}
	if Blit(Glyph{}, Pixel{}, op, ModeAny) {
		t.Error("ModeAny over an empty glyph should be false")
	}
}
