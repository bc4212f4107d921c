package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nibbles/internal/core"
)

type styleKey struct {
	fg, bg core.Color
}

// Renderer converts Screen buffers to styled strings. Styles are built once
// per colour pair.
type Renderer struct {
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[styleKey]lipgloss.Style)}
}

func (r *Renderer) style(k styleKey) lipgloss.Style {
	if st, ok := r.styles[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if !k.fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(k.fg.Hex()))
	}
	if !k.bg.IsDefault() {
		st = st.Background(lipgloss.Color(k.bg.Hex()))
	}
	r.styles[k] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape
// sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			k := styleKey{cell.FG, cell.BG}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != k.fg || cell.BG != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if k.fg.IsDefault() && k.bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(k).Render(run.String()))
		}
	}
	return sb.String()
}
