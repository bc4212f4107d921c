package nibbles

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/nibbles/internal/core"
	"github.com/vovakirdan/nibbles/internal/games/nibbles/field"
)

// halfBlock shows the upper pixel as foreground and the lower as background.
const halfBlock = '▀'

// Render draws the HUD and the field, two pixel rows per text row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	area := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(ScreenW, ScreenH)
	g.renderHUD(dst, area)

	pixels := g.pixelColors()
	for row := 0; row < FieldH/2; row++ {
		for x := 0; x < FieldW; x++ {
			dst.SetCell(area.X+x, area.Y+HUDRows+row, core.Cell{
				Rune: halfBlock,
				FG:   pixels[(2*row)*FieldW+x],
				BG:   pixels[(2*row+1)*FieldW+x],
			})
		}
	}

	g.renderOverlay(dst, area)
}

// pixelColors resolves every field pixel to a colour and draws each snake's
// interpolated front on top.
func (g *Game) pixelColors() []core.Color {
	f := g.session.Field
	out := make([]core.Color, FieldW*FieldH)
	for y := 0; y < FieldH; y++ {
		for x := 0; x < FieldW; x++ {
			c, _ := f.At(field.Pixel{X: x, Y: y})
			out[y*FieldW+x] = g.ownerColor(c.Owner)
		}
	}

	if g.phase != PhaseLevel {
		return out
	}
	q := g.session.Rules.Quantization
	for _, sn := range g.session.Snakes {
		if !sn.Alive() {
			continue
		}
		for _, px := range field.CellGlyph.Pixels(field.PixelOf(sn.DisplayPos(q))) {
			if f.InBounds(px) {
				out[px.Y*FieldW+px.X] = sn.Color
			}
		}
	}
	return out
}

func (g *Game) ownerColor(o field.Owner) core.Color {
	switch o.Kind {
	case field.KindWall:
		return g.palette.Wall
	case field.KindCollectable:
		return g.palette.Collectable
	case field.KindContested:
		return core.ColorWhite
	case field.KindSnake:
		if o.Player >= 0 && o.Player < len(g.palette.Players) {
			return g.palette.Players[o.Player]
		}
		return core.ColorGray
	default:
		return g.palette.Background
	}
}

func (g *Game) renderHUD(dst *core.Screen, area core.Rect) {
	var parts []string
	for _, sn := range g.session.Snakes {
		parts = append(parts, fmt.Sprintf("P%d %s %06d", sn.ID+1, strings.Repeat("*", sn.Lives), sn.Score))
	}
	left := strings.Join(parts, "   ")

	right := g.Title()
	if g.phase != PhaseTitle {
		right = fmt.Sprintf("L%d  #%d  %s", g.session.Level+1, g.session.Collectable.Index, g.session.CurrentLevel().Name)
	}

	hud := " " + left
	pad := area.W - len([]rune(hud)) - len([]rune(right)) - 1
	if pad > 0 {
		hud += strings.Repeat(" ", pad) + right
	}
	dst.DrawTextColor(area.X, area.Y, hud, core.ColorWhite, core.ColorBlack)
	for x := len([]rune(hud)); x < area.W; x++ {
		dst.SetCell(area.X+x, area.Y, core.Cell{Rune: ' ', BG: core.ColorBlack})
	}
}

func (g *Game) renderOverlay(dst *core.Screen, area core.Rect) {
	var lines []string
	switch g.phase {
	case PhaseTitle:
		lines = []string{g.Title(), "", "Press 1 for one player", "Press 2 for two players"}
	case PhasePrePre, PhasePre:
		lines = []string{g.banner, "", "Press A or B"}
	case PhaseWin, PhaseLose:
		lines = []string{g.banner, fmt.Sprintf("Score %d", g.State().Score), "", "Press A or B"}
	case PhaseLevel:
		if g.paused {
			lines = []string{"Paused", "Press P to continue"}
		}
	}
	if len(lines) == 0 {
		return
	}

	top := area.Y + HUDRows + (FieldH/2-len(lines))/2
	for i, line := range lines {
		if line == "" {
			continue
		}
		text := " " + line + " "
		x := area.X + (area.W-len([]rune(text)))/2
		dst.DrawTextColor(x, top+i, text, core.ColorWhite, g.palette.Background)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height()/2 - 1
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", ScreenW, ScreenH, dst.Width(), dst.Height()))
}
