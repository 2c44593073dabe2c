package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlayModel shows keyboard shortcuts
type HelpOverlayModel struct {
	visible bool
	width   int
	height  int
}

// Show makes the help overlay visible
func (m *HelpOverlayModel) Show() {
	m.visible = true
}

// Hide makes the help overlay invisible
func (m *HelpOverlayModel) Hide() {
	m.visible = false
}

// Toggle toggles visibility
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions
func (m *HelpOverlayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update closes the overlay on any key
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		m.visible = false
	}
	return m, nil
}

type shortcut struct{ key, desc string }

var helpSections = []struct {
	title string
	keys  []shortcut
}{
	{"BROWSE", []shortcut{
		{"j/↓", "Next pet"},
		{"k/↑", "Previous pet"},
		{"/", "Search"},
		{"enter", "Open details (phone layout)"},
		{"esc", "Back to list"},
		{"pgup/pgdn", "Scroll description"},
	}},
	{"ACTIONS", []shortcut{
		{"f", "Toggle favorite"},
		{"F", "Show favorites only"},
		{"y", "Copy photo link"},
	}},
	{"VIEW", []shortcut{
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}},
}

// View renders the help overlay
func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).MarginBottom(1)
	b.WriteString(titleStyle.Render("pawview help"))
	b.WriteString("\n\n")

	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorInfo)
	keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Width(12)
	descStyle := lipgloss.NewStyle().Foreground(ColorSubtext)

	for i, section := range helpSections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(section.title) + "\n")
		for _, s := range section.keys {
			b.WriteString("  " + keyStyle.Render(s.key) + descStyle.Render(s.desc) + "\n")
		}
	}

	b.WriteString("\n")
	hintStyle := lipgloss.NewStyle().Faint(true).Italic(true)
	b.WriteString(hintStyle.Render("[Press any key to close]"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}
