package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sebastiantruijens/moviedeck/internal/model"
)

type themeName string

const (
	themeDark  themeName = "dark"
	themeLight themeName = "light"
)

// palette holds the colors a theme is built from
type palette struct {
	primary   lipgloss.Color
	text      lipgloss.Color
	accent    lipgloss.Color
	muted     lipgloss.Color
	success   lipgloss.Color
	info      lipgloss.Color
	warning   lipgloss.Color
	danger    lipgloss.Color
	alertText lipgloss.Color
}

var palettes = map[themeName]palette{
	themeDark: {
		primary:   lipgloss.Color("#E50914"),
		text:      lipgloss.Color("#F5F5F1"),
		accent:    lipgloss.Color("#564D4D"),
		muted:     lipgloss.Color("#8C8C8C"),
		success:   lipgloss.Color("#2E7D32"),
		info:      lipgloss.Color("#0277BD"),
		warning:   lipgloss.Color("#ED6C02"),
		danger:    lipgloss.Color("#D32F2F"),
		alertText: lipgloss.Color("#FFFFFF"),
	},
	themeLight: {
		primary:   lipgloss.Color("#1976D2"),
		text:      lipgloss.Color("#212121"),
		accent:    lipgloss.Color("#BDBDBD"),
		muted:     lipgloss.Color("#757575"),
		success:   lipgloss.Color("#388E3C"),
		info:      lipgloss.Color("#0288D1"),
		warning:   lipgloss.Color("#F57C00"),
		danger:    lipgloss.Color("#C62828"),
		alertText: lipgloss.Color("#FFFFFF"),
	},
}

type styles struct {
	title        lipgloss.Style
	subtitle     lipgloss.Style
	normalText   lipgloss.Style
	mutedText    lipgloss.Style
	highlighted  lipgloss.Style
	tab          lipgloss.Style
	activeTab    lipgloss.Style
	input        lipgloss.Style
	card         lipgloss.Style
	selectedCard lipgloss.Style
	modal        lipgloss.Style
	favorite     lipgloss.Style
	errorText    lipgloss.Style
	alerts       map[model.Severity]lipgloss.Style
}

const cardWidth = 26

func newStyles(name themeName) styles {
	p, ok := palettes[name]
	if !ok {
		p = palettes[themeDark]
	}

	alert := lipgloss.NewStyle().
		Foreground(p.alertText).
		Bold(true).
		Padding(0, 1)

	return styles{
		title: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),

		subtitle: lipgloss.NewStyle().
			Foreground(p.text).
			Bold(true),

		normalText: lipgloss.NewStyle().
			Foreground(p.text),

		mutedText: lipgloss.NewStyle().
			Foreground(p.muted),

		highlighted: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),

		tab: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),

		activeTab: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),

		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1).
			Width(cardWidth),

		selectedCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(0, 1).
			Width(cardWidth),

		modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.primary).
			Padding(1, 2),

		favorite: lipgloss.NewStyle().
			Foreground(p.warning),

		errorText: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true),

		alerts: map[model.Severity]lipgloss.Style{
			model.SeveritySuccess: alert.Background(p.success),
			model.SeverityInfo:    alert.Background(p.info),
			model.SeverityWarning: alert.Background(p.warning),
			model.SeverityError:   alert.Background(p.danger),
		},
	}
}

func (n themeName) toggle() themeName {
	if n == themeDark {
		return themeLight
	}
	return themeDark
}
