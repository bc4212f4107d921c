package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || !c.FG.IsDefault() || !c.BG.IsDefault() {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetCellKeepsColours(t *testing.T) {
	s := NewScreen(10, 10)
	red := RGB(255, 0, 0)

	s.SetCell(3, 4, Cell{Rune: '▀', FG: red, BG: ColorBlack})
	got := s.GetCell(3, 4)
	if got.Rune != '▀' || got.FG != red || got.BG != ColorBlack {
		t.Errorf("GetCell(3, 4) = %+v, expected ▀ red on black", got)
	}

	// Set only touches the rune.
	s.Set(3, 4, 'x')
	got = s.GetCell(3, 4)
	if got.Rune != 'x' || got.FG != red {
		t.Errorf("after Set, GetCell(3, 4) = %+v, expected x with red foreground", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetCell(0, -1, Cell{Rune: 'A'})
	s.SetCell(0, 100, Cell{Rune: 'A'})

	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if c := s.GetCell(100, 100); c != blank {
		t.Errorf("out of bounds GetCell = %+v, expected blank", c)
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillCell(Cell{Rune: '#', FG: ColorWhite})

	if s.Get(4, 4) != '#' || s.GetCell(0, 0).FG != ColorWhite {
		t.Errorf("FillCell did not cover the screen")
	}

	s.Fill('.')
	if c := s.GetCell(2, 2); c.Rune != '.' || !c.FG.IsDefault() {
		t.Errorf("Fill should drop colours, got %+v", c)
	}

	s.Clear()
	for y := 0; y < 5; y++ {
		if row := s.Row(y); row != "     " {
			t.Errorf("after Clear, row %d = %q", y, row)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1)[2:7]; got != "Hello" {
		t.Errorf("DrawText row = %q, expected Hello", got)
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(10, 2)
	fg := RGB(1, 2, 3)
	s.DrawTextColor(1, 0, "ab", fg, ColorBlack)

	for i, r := range "ab" {
		c := s.GetCell(1+i, 0)
		if c.Rune != r || c.FG != fg || c.BG != ColorBlack {
			t.Errorf("cell %d = %+v, expected %q coloured", i, c, r)
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered placed text at wrong position: %q", s.Row(2))
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), Cell{Rune: '#'})

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("FillRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorWhite, ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") || s.GetCell(0, 0).FG != ColorWhite {
		t.Errorf("content and colour should survive enlarging, row 0 = %q", s.Row(0))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if got := s.Row(-1); got != strings.Repeat(" ", 10) {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
}
