package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"bottlebuddy/internal/domain"
)

// Glossary shows every descriptor with its description, one card each.
type Glossary struct {
	entries  []domain.Descriptor
	viewport viewport.Model
	width    int
}

func NewGlossary() Glossary {
	g := Glossary{entries: domain.All(), viewport: viewport.New(80, 20)}
	return g.SetSize(80, 20)
}

func (g Glossary) SetSize(w, h int) Glossary {
	g.width = w
	g.viewport.Width = w
	g.viewport.Height = max(3, h)
	g.viewport.SetContent(g.Content())
	return g
}

// Update scrolls the viewport.
func (g Glossary) Update(msg tea.Msg) (Glossary, tea.Cmd) {
	var cmd tea.Cmd
	g.viewport, cmd = g.viewport.Update(msg)
	return g, cmd
}

func (g Glossary) View() string { return g.viewport.View() }

// Content renders all cards, in declaration order, ignoring scroll.
func (g Glossary) Content() string {
	w := max(20, g.width-2)
	cards := make([]string, len(g.entries))
	for i, e := range g.entries {
		body := glossaryTermStyle.Render(e.Name) + "\n" + e.Description
		cards[i] = glossaryCardStyle.Width(w).Render(body)
	}
	return strings.Join(cards, "\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
