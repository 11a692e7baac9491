package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#6a0dad")
	muted  = lipgloss.Color("#d3d3d3")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)

	chipStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Foreground(muted).
			Width(chipInnerWidth).
			Align(lipgloss.Center)
	selectedChipStyle = chipStyle.Copy().BorderForeground(accent).Foreground(accent).Bold(true)
	focusedChipStyle  = lipgloss.NewStyle().Underline(true)

	findStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Background(accent).
			Foreground(muted).
			Bold(true).
			Padding(0, 4)
	findBusyStyle = findStyle.Copy().Background(lipgloss.Color("8")).BorderForeground(lipgloss.Color("8"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)

	resultCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Align(lipgloss.Center)

	glossaryCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(0, 1)
	glossaryTermStyle = lipgloss.NewStyle().Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// chipInnerWidth fits the longest descriptor ("smooth tannins") plus a marker.
const chipInnerWidth = 16

// chipOuterWidth is chipInnerWidth plus the rounded border.
const chipOuterWidth = chipInnerWidth + 2
