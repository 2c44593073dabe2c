package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PetDelegate renders one pet per line.
type PetDelegate struct {
	ShowExtraCols bool // show location and listing age on wide layouts
}

func (d PetDelegate) Height() int {
	return 1
}

func (d PetDelegate) Spacing() int {
	return 0
}

func (d PetDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d PetDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(PetItem)
	if !ok {
		return
	}

	baseStyle := ItemStyle
	if index == m.Index() {
		baseStyle = SelectedItemStyle
	}

	star := RenderFavoriteMark(i.Favorite)
	icon, color := SpeciesIcon(i.Pet.Species)
	species := lipgloss.NewStyle().Foreground(color).Render(icon)

	extra := ""
	if d.ShowExtraCols {
		extra = i.Pet.Location
		if listed := i.Pet.Listed(); listed != "" {
			if extra != "" {
				extra += " · "
			}
			extra += listed
		}
	}

	// star(1) + gap + icon(2) + gap + padding
	fixed := 1 + 1 + 2 + 1 + 2
	available := m.Width() - fixed
	if available < 8 {
		available = 8
	}

	nameStyle := NameStyle
	if index == m.Index() {
		nameStyle = nameStyle.Foreground(ColorPrimary)
	}
	name := runewidth.Truncate(i.Pet.Name, available, "…")
	row := star + " " + species + " " + nameStyle.Render(name)

	rest := available - runewidth.StringWidth(name) - 3
	if rest > 6 {
		detail := i.Pet.Age()
		if extra != "" {
			detail += " · " + extra
		}
		row += SubtextStyle.Render("  " + runewidth.Truncate(detail, rest, "…"))
	}

	fmt.Fprint(w, baseStyle.Render(row))
}
