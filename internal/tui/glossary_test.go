package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"bottlebuddy/internal/domain"
)

func TestGlossaryRendersEveryDescriptorInOrder(t *testing.T) {
	g := NewGlossary().SetSize(200, 40)
	assert.Equal(t, domain.All(), g.entries)

	content := g.Content()
	assert.Equal(t, 20, strings.Count(content, "╭"))
	var titles []string
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		if strings.HasPrefix(l, "╭") && i+1 < len(lines) {
			titles = append(titles, strings.Trim(lines[i+1], "│ "))
		}
	}
	assert.Equal(t, domain.Names(), titles)
	// Wide enough that no description wraps.
	for _, d := range domain.All() {
		assert.Contains(t, content, d.Description)
	}
}

func TestGlossaryScrolls(t *testing.T) {
	g := NewGlossary().SetSize(80, 10)
	top := g.View()
	assert.Contains(t, top, "apple")

	g, _ = g.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.NotEqual(t, top, g.View())
	assert.Greater(t, g.viewport.YOffset, 0)

	g, _ = g.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, g.viewport.YOffset)
}
