package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"bottlebuddy/internal/domain"
)

// FetchFailedMessage is the only error text the user ever sees.
const FetchFailedMessage = "Failed to fetch results. Please try again."

// SearchPort is the TUI-facing subset of the search service.
type SearchPort interface {
	SearchIndices(ctx context.Context, indices []int) ([]string, error)
}

// findResultMsg carries a finished search back into Update.
type findResultMsg struct {
	gen     uint64
	results []string
	err     error
}

// Selector is the descriptor picker. Its submit cycle is
// idle -> loading -> (results | error) -> idle, and only one search is in
// flight at a time.
type Selector struct {
	ctx     context.Context
	search  SearchPort
	log     *zap.Logger
	keys    keyMap
	spinner spinner.Model
	results viewport.Model

	selected []int // insertion order, sent in this order
	found    []string
	loading  bool
	errMsg   string
	cursor   int
	gen      uint64

	width  int
	height int
}

// NewSelector creates the picker. ctx bounds every search it issues.
func NewSelector(ctx context.Context, search SearchPort, log *zap.Logger) Selector {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(muted)
	s := Selector{
		ctx:     ctx,
		search:  search,
		log:     log,
		keys:    defaultKeyMap(),
		spinner: sp,
		results: viewport.New(80, 10),
	}
	return s.SetSize(80, 20)
}

// SetSize lays the screen out for a content area of w x h cells.
func (s Selector) SetSize(w, h int) Selector {
	s.width, s.height = w, h
	s.relayout()
	return s
}

// IsSelected reports whether descriptor i is in the selection.
func (s Selector) IsSelected(i int) bool {
	for _, x := range s.selected {
		if x == i {
			return true
		}
	}
	return false
}

// Selected returns the selected indices in insertion order.
func (s Selector) Selected() []int { return append([]int(nil), s.selected...) }

// Criteria returns the selected descriptor names in insertion order.
func (s Selector) Criteria() []string {
	out := make([]string, 0, len(s.selected))
	for _, i := range s.selected {
		d, _ := domain.At(i)
		out = append(out, d.Name)
	}
	return out
}

// Toggle flips membership of descriptor i. Indices outside the vocabulary
// are ignored.
func (s Selector) Toggle(i int) Selector {
	if _, ok := domain.At(i); !ok {
		return s
	}
	next := make([]int, 0, len(s.selected)+1)
	removed := false
	for _, x := range s.selected {
		if x == i {
			removed = true
			continue
		}
		next = append(next, x)
	}
	if !removed {
		next = append(next, i)
	}
	s.selected = next
	return s
}

// Submit starts a search for the current selection. It is a no-op while a
// search is already in flight.
func (s Selector) Submit() (Selector, tea.Cmd) {
	if s.loading {
		s.log.Debug("find ignored, search in flight")
		return s, nil
	}
	s.loading = true
	s.errMsg = ""
	s.gen++
	gen := s.gen
	ctx, search, indices := s.ctx, s.search, s.Selected()
	s.relayout()
	s.log.Info("find submitted", zap.Uint64("gen", gen), zap.Strings("criteria", s.Criteria()))
	fetch := func() tea.Msg {
		res, err := search.SearchIndices(ctx, indices)
		return findResultMsg{gen: gen, results: res, err: err}
	}
	return s, tea.Batch(s.spinner.Tick, fetch)
}

// Update handles keys routed from the app and search completions.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	switch msg := msg.(type) {
	case findResultMsg:
		return s.finish(msg), nil
	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	case tea.KeyMsg:
		n := domain.Len()
		cols := s.columns()
		switch {
		case key.Matches(msg, s.keys.Left):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, s.keys.Right):
			if s.cursor < n-1 {
				s.cursor++
			}
		case key.Matches(msg, s.keys.Up):
			if s.cursor-cols >= 0 {
				s.cursor -= cols
			}
		case key.Matches(msg, s.keys.Down):
			if s.cursor+cols < n {
				s.cursor += cols
			}
		case key.Matches(msg, s.keys.Toggle):
			s = s.Toggle(s.cursor)
		case key.Matches(msg, s.keys.Find):
			return s.Submit()
		case key.Matches(msg, s.keys.PageDown):
			s.results.HalfViewDown()
		case key.Matches(msg, s.keys.PageUp):
			s.results.HalfViewUp()
		}
	}
	return s, nil
}

func (s Selector) finish(msg findResultMsg) Selector {
	if msg.gen != s.gen || !s.loading {
		s.log.Debug("stale find result dropped", zap.Uint64("gen", msg.gen), zap.Uint64("current", s.gen))
		return s
	}
	if s.ctx.Err() != nil {
		s.log.Debug("find result after shutdown dropped", zap.Uint64("gen", msg.gen))
		return s
	}
	s.loading = false
	if msg.err != nil {
		s.log.Warn("find failed", zap.Uint64("gen", msg.gen), zap.Error(msg.err))
		s.found = nil
		s.errMsg = FetchFailedMessage
	} else {
		s.found = msg.results
		s.errMsg = ""
	}
	s.relayout()
	s.results.GotoTop()
	return s
}

func (s Selector) columns() int {
	cols := s.width / (chipOuterWidth + 1)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// View renders the chip grid, the find control, the error banner and the
// result cards.
func (s Selector) View() string {
	parts := []string{s.renderChips(), s.renderFind()}
	if s.errMsg != "" {
		parts = append(parts, errorStyle.Render(s.errMsg))
	}
	if len(s.found) > 0 {
		parts = append(parts, s.results.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s Selector) renderChips() string {
	cols := s.columns()
	var rows []string
	var row []string
	for i, d := range domain.All() {
		label := d.Name
		if s.IsSelected(i) {
			label = "✓ " + label
		}
		if i == s.cursor {
			label = focusedChipStyle.Render(label)
		}
		style := chipStyle
		if s.IsSelected(i) {
			style = selectedChipStyle
		}
		row = append(row, style.Render(label), " ")
		if len(row)/2 == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s Selector) renderFind() string {
	if s.loading {
		return findBusyStyle.Render(s.spinner.View())
	}
	return findStyle.Render("Find")
}

func (s Selector) renderCards() string {
	w := s.width - 4
	if w < 10 {
		w = 10
	}
	cards := make([]string, len(s.found))
	for i, r := range s.found {
		cards[i] = resultCardStyle.Width(w).Render(r)
	}
	return strings.Join(cards, "\n")
}

// relayout gives the result viewport whatever height the chips, find control
// and banner leave free.
func (s *Selector) relayout() {
	used := lipgloss.Height(s.renderChips()) + lipgloss.Height(s.renderFind())
	if s.errMsg != "" {
		used += lipgloss.Height(errorStyle.Render(s.errMsg))
	}
	h := s.height - used
	if h < 3 {
		h = 3
	}
	s.results.Width = s.width
	s.results.Height = h
	s.results.SetContent(s.renderCards())
}
