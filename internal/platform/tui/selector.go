package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nibbles/internal/registry"
)

// Selection holds the user's choice from the selector.
type Selection struct {
	Variant string
	Level   int // 0 = start from the beginning, otherwise 1-based
}

// menuKeys are the bindings shared by the selector screens.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Back:   key.NewBinding(key.WithKeys("esc", "b")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// SelectorModel lets users choose a variant and a starting level.
type SelectorModel struct {
	variants      []registry.GameInfo
	levels        []string
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keys          menuKeys
	selection     Selection
	choosing      bool
	quitting      bool
}

// NewSelectorModel creates a selector over the registered variants and the
// given level names.
func NewSelectorModel(levels []string, width, height int) SelectorModel {
	return SelectorModel{
		variants: registry.List(),
		levels:   levels,
		width:    width,
		height:   height,
		keys:     defaultMenuKeys(),
		choosing: true,
	}
}

// Init initializes the model.
func (m SelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.inLevelSelect {
			return m.handleLevelKey(msg)
		}
		return m.handleVariantKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SelectorModel) handleVariantKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.variants)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.variants) == 0 {
			return m, nil
		}
		m.selection.Variant = m.variants[m.cursor].ID
		m.inLevelSelect = true
		m.levelCursor = 0
	case key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SelectorModel) handleLevelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choosing = false
		m.selection.Level = m.levelCursor + 1
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the variant or level list.
func (m SelectorModel) View() string {
	if m.quitting || !m.choosing {
		return ""
	}

	title, hint := "N I B B L E S", "Select variant:"
	var items []string
	cursor := m.cursor
	if m.inLevelSelect {
		title, hint = "SELECT LEVEL", "Start on:"
		cursor = m.levelCursor
		for i, name := range m.levels {
			items = append(items, fmt.Sprintf("%2d. %s", i+1, name))
		}
	} else {
		for _, v := range m.variants {
			items = append(items, v.Title)
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(hint, m.width))
	b.WriteString("\n\n")
	for i, item := range items {
		mark := "  "
		if i == cursor {
			mark = "> "
		}
		b.WriteString(centerText(mark+item, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SelectorModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// RunSelector runs the selector and returns the choice, or nil when the
// user quit.
func RunSelector(levels []string, width, height int) (*Selection, error) {
	p := tea.NewProgram(
		NewSelectorModel(levels, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SelectorModel)
	if !ok || m.quitting {
		return nil, nil
	}
	return m.Selected(), nil
}
