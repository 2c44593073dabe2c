package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pawview/pawview/pkg/pets"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - spacing in logical pixels, scaled to cells per window
// ══════════════════════════════════════════════════════════════════════════════

const (
	SpaceXS = 4
	SpaceSM = 8
	SpaceMD = 16
	SpaceLG = 24
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBg          = lipgloss.Color("#282A36")
	ColorBgSubtle    = lipgloss.Color("#363949")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5555")
	ColorPink    = lipgloss.Color("#FF79C6")

	ColorSpeciesDog    = lipgloss.Color("#FFB86C")
	ColorSpeciesCat    = lipgloss.Color("#BD93F9")
	ColorSpeciesRabbit = lipgloss.Color("#F1FA8C")
	ColorSpeciesBird   = lipgloss.Color("#8BE9FD")
)

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES
// ══════════════════════════════════════════════════════════════════════════════

var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBgHighlight)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ItemStyle         = lipgloss.NewStyle().PaddingLeft(1)
	SelectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Background(ColorBgHighlight)

	NameStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	SubtextStyle = lipgloss.NewStyle().Foreground(ColorSubtext)
	StarStyle    = lipgloss.NewStyle().Foreground(ColorPink)
)

// ══════════════════════════════════════════════════════════════════════════════
// BADGES
// ══════════════════════════════════════════════════════════════════════════════

// SpeciesIcon returns an icon and color for a species.
func SpeciesIcon(s pets.Species) (string, lipgloss.Color) {
	switch s {
	case pets.SpeciesDog:
		return "🐕", ColorSpeciesDog
	case pets.SpeciesCat:
		return "🐈", ColorSpeciesCat
	case pets.SpeciesRabbit:
		return "🐇", ColorSpeciesRabbit
	case pets.SpeciesBird:
		return "🐦", ColorSpeciesBird
	default:
		return "🐾", ColorMuted
	}
}

// RenderSpeciesBadge returns a styled species badge such as "DOG".
func RenderSpeciesBadge(s pets.Species) string {
	_, color := SpeciesIcon(s)
	label := strings.ToUpper(string(s))
	if label == "" {
		label = "PET"
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Background(ColorBgSubtle).
		Bold(true).
		Padding(0, 1).
		Render(label)
}

// RenderFavoriteMark returns the star shown next to favorites.
func RenderFavoriteMark(fav bool) string {
	if !fav {
		return " "
	}
	return StarStyle.Render("★")
}

// RenderDivider renders a horizontal divider line.
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}
