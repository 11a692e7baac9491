package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type tab int

const (
	tabFind tab = iota
	tabGlossary
)

var tabTitles = []string{"Find", "Glossary"}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.Logger
	keys   keyMap
	help   help.Model

	active   tab
	selector Selector
	glossary Glossary
	ready    bool
}

// New creates a new TUI model instance. Searches are bound to a context
// derived from parent and cancelled when the program quits.
func New(parent context.Context, search SearchPort, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(parent)
	return Model{
		ctx:      ctx,
		cancel:   cancel,
		log:      log,
		keys:     defaultKeyMap(),
		help:     help.New(),
		selector: NewSelector(ctx, search, log.Named("selector")),
		glossary: NewGlossary(),
	}
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd { return tea.SetWindowTitle("Bottle Buddy") }

// Close cancels in-flight searches. Safe to call more than once.
func (m Model) Close() { m.cancel() }

// Update handles global keys and window events and routes the rest to the screens.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.help.Width = msg.Width
		// title + tabs above, help line below
		h := msg.Height - 3
		m.selector = m.selector.SetSize(msg.Width, h)
		m.glossary = m.glossary.SetSize(msg.Width, h)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.log.Info("quit")
			m.cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.active = (m.active + 1) % tab(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.active = (m.active + tab(len(tabTitles)) - 1) % tab(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		var cmd tea.Cmd
		if m.active == tabGlossary {
			m.glossary, cmd = m.glossary.Update(msg)
		} else {
			m.selector, cmd = m.selector.Update(msg)
		}
		return m, cmd
	}
	// Search completions and spinner ticks belong to the selector whichever
	// tab is showing.
	var cmd tea.Cmd
	m.selector, cmd = m.selector.Update(msg)
	return m, cmd
}

// View renders the tab bar, the active screen and the help line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	tabs := make([]string, len(tabTitles))
	for i, t := range tabTitles {
		if tab(i) == m.active {
			tabs[i] = activeTabStyle.Render(t)
		} else {
			tabs[i] = inactiveTabStyle.Render(t)
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render("Bottle Buddy"), "  ", lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

	body := m.selector.View()
	if m.active == tabGlossary {
		body = m.glossary.View()
	}
	footer := statusStyle.Render(m.help.View(m.keys.helpFor(m.active)))
	if m.selector.loading && m.active == tabGlossary {
		footer = statusStyle.Render(fmt.Sprintf("searching %d descriptors…  ", len(m.selector.selected))) + footer
	}
	return header + "\n" + body + "\n" + footer
}
