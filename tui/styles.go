package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	defaultAccent = "#7D56F4"
	detailHex     = "#C9C9C9"
	// Details fade in from roughly the card background tone.
	fadeFromHex = "#262626"
	subtleHex   = "#5C5C5C"
)

type styles struct {
	bar         lipgloss.Style
	barToggle   lipgloss.Style
	menu        lipgloss.Style
	menuItem    lipgloss.Style
	card        lipgloss.Style
	cardFocus   lipgloss.Style
	title       lipgloss.Style
	arrow       lipgloss.Style
	heart       lipgloss.Style
	placeholder lipgloss.Style
	spinner     lipgloss.Style
}

func newStyles(accent string) styles {
	if _, err := colorful.Hex(accent); err != nil {
		accent = defaultAccent
	}
	a := lipgloss.Color(accent)
	return styles{
		bar: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(a),
		barToggle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(a).
			Padding(0, 1),
		menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(a).
			Padding(0, 1),
		menuItem: lipgloss.NewStyle().Bold(true),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(subtleHex)).
			Padding(0, 1),
		cardFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(a).
			Padding(0, 1),
		title:       lipgloss.NewStyle().Bold(true),
		arrow:       lipgloss.NewStyle().Foreground(lipgloss.Color(subtleHex)),
		heart:       lipgloss.NewStyle().Foreground(a).Bold(true),
		placeholder: lipgloss.NewStyle().Faint(true),
		spinner:     lipgloss.NewStyle().Foreground(a),
	}
}

// fadeColor blends the details text colour for an opacity in [0, 1].
func fadeColor(opacity float64) lipgloss.Color {
	if opacity <= 0 {
		return lipgloss.Color(fadeFromHex)
	}
	if opacity >= 1 {
		return lipgloss.Color(detailHex)
	}
	from, _ := colorful.Hex(fadeFromHex)
	to, _ := colorful.Hex(detailHex)
	return lipgloss.Color(from.BlendLab(to, opacity).Clamped().Hex())
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}
