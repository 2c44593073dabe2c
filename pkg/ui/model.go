// Package ui is the pawview terminal interface: a responsive pet list with
// a detail panel showing each pet's photo and description.
package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/pawview/pawview/pkg/imageview"
	"github.com/pawview/pawview/pkg/pets"
	"github.com/pawview/pawview/pkg/responsive"
	"github.com/pawview/pawview/pkg/watcher"
)

// FavoriteStore is the subset of favorites.Store the UI needs.
type FavoriteStore interface {
	Toggle(petID, name string) (bool, error)
	IDs() (map[string]bool, error)
}

// Options wires the model's collaborators. Only Metrics-related fields have
// defaults; nil Favorites, Reload or Changes disable those features.
type Options struct {
	Live      *responsive.Live
	Metrics   *responsive.Metrics
	Fetcher   imageview.Fetcher
	Image     imageview.Options
	Favorites FavoriteStore
	Reload    func() ([]pets.Pet, error)
	Changes   <-chan watcher.Event
	Clipboard func(string) error
}

type listingsChangedMsg struct{}

type listingsLoadedMsg struct {
	pets []pets.Pet
	err  error
}

// Model is the root bubbletea model.
type Model struct {
	pets    []pets.Pet
	list    list.Model
	image   imageview.Model
	detail  viewport.Model
	help    HelpOverlayModel
	layout  Layout
	metrics *responsive.Metrics
	live    *responsive.Live

	favorites FavoriteStore
	favIDs    map[string]bool
	favOnly   bool

	reload  func() ([]pets.Pet, error)
	changes <-chan watcher.Event
	copy    func(string) error

	markdown   *glamour.TermRenderer
	detailKey  string
	selectedID string
	showDetail bool
	status     string
	width      int
	height     int
	initCmd    tea.Cmd
}

// NewModel creates the UI for the given pets.
func NewModel(all []pets.Pet, opts Options) Model {
	live := opts.Live
	if live == nil {
		live = responsive.NewLive(responsive.FallbackColumns, responsive.FallbackRows, responsive.DefaultCellSize)
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = responsive.New(live)
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	favIDs := map[string]bool{}
	if opts.Favorites != nil {
		ids, err := opts.Favorites.IDs()
		if err != nil {
			log.Printf("Warning: could not load favorites: %v", err)
		} else {
			favIDs = ids
		}
	}

	l := list.New(nil, PetDelegate{}, 0, 0)
	l.Title = "Adoptable pets"
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Filter = fuzzyFilter
	l.Styles.Title = HeaderStyle

	m := Model{
		pets:      all,
		list:      l,
		image:     imageview.New(metrics, opts.Fetcher, opts.Image),
		detail:    viewport.New(0, 0),
		metrics:   metrics,
		live:      live,
		favorites: opts.Favorites,
		favIDs:    favIDs,
		reload:    opts.Reload,
		changes:   opts.Changes,
		copy:      copyFn,
	}

	cols, rows := live.Size()
	m.resize(cols, rows)
	m.rebuildItems()
	m.initCmd = m.syncSelection()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, m.waitForChange())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.live.Resize(msg.Width, msg.Height)
		m.resize(msg.Width, msg.Height)
		return m, nil

	case listingsChangedMsg:
		return m, tea.Batch(m.reloadCmd(), m.waitForChange())

	case listingsLoadedMsg:
		if msg.err != nil {
			log.Printf("Warning: reload failed: %v", msg.err)
			m.status = "reload failed: " + msg.err.Error()
			return m, nil
		}
		m.pets = msg.pets
		m.detailKey = ""
		cmd := m.rebuildItems()
		m.status = fmt.Sprintf("reloaded %d pets", len(msg.pets))
		return m, tea.Batch(cmd, m.syncSelection())

	case imageview.LoadStartMsg, imageview.LoadEndMsg, imageview.LoadErrorMsg, spinner.TickMsg:
		var cmd tea.Cmd
		m.image, cmd = m.image.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, tea.Batch(cmd, m.syncSelection())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.image.Close()
		return m, tea.Quit
	}
	if m.help.IsVisible() {
		m.help, _ = m.help.Update(msg)
		return m, nil
	}
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, tea.Batch(cmd, m.syncSelection())
	}

	m.status = ""
	switch msg.String() {
	case "q":
		m.image.Close()
		return m, tea.Quit
	case "?":
		m.help.Show()
		return m, nil
	case "f":
		return m, m.toggleFavorite()
	case "F":
		m.favOnly = !m.favOnly
		if m.favOnly {
			m.status = "showing favorites"
		} else {
			m.status = "showing all pets"
		}
		cmd := m.rebuildItems()
		return m, tea.Batch(cmd, m.syncSelection())
	case "y":
		m.copyPhotoLink()
		return m, nil
	case "enter":
		if !m.layout.Split {
			m.showDetail = true
			return m, nil
		}
	case "esc":
		if m.showDetail {
			m.showDetail = false
			return m, nil
		}
	case "pgdown", "pgup":
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	if m.showDetail && !m.layout.Split {
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, tea.Batch(cmd, m.syncSelection())
}

// SelectedPet returns the highlighted pet.
func (m Model) SelectedPet() (pets.Pet, bool) {
	item, ok := m.list.SelectedItem().(PetItem)
	if !ok {
		return pets.Pet{}, false
	}
	return item.Pet, true
}

// syncSelection points the detail panel and image at the highlighted pet.
func (m *Model) syncSelection() tea.Cmd {
	p, ok := m.SelectedPet()
	if !ok {
		m.selectedID = ""
		m.refreshDetail()
		return m.image.SetSource(imageview.None)
	}
	m.selectedID = p.ID
	m.refreshDetail()
	return m.image.SetSource(p.Photo())
}

func (m *Model) rebuildItems() tea.Cmd {
	items := make([]list.Item, 0, len(m.pets))
	selected := 0
	for _, p := range m.pets {
		fav := m.favIDs[p.ID]
		if m.favOnly && !fav {
			continue
		}
		if p.ID == m.selectedID {
			selected = len(items)
		}
		items = append(items, PetItem{Pet: p, Favorite: fav})
	}
	cmd := m.list.SetItems(items)
	m.list.Select(selected)
	return cmd
}

func (m *Model) toggleFavorite() tea.Cmd {
	p, ok := m.SelectedPet()
	if !ok {
		return nil
	}
	if m.favorites == nil {
		m.status = "favorites are unavailable"
		return nil
	}

	on, err := m.favorites.Toggle(p.ID, p.Name)
	if err != nil {
		log.Printf("Warning: could not update favorite %s: %v", p.ID, err)
		m.status = "couldn't update favorites"
		return nil
	}
	if on {
		m.favIDs[p.ID] = true
		m.status = "★ added " + p.Name + " to favorites"
	} else {
		delete(m.favIDs, p.ID)
		m.status = "removed " + p.Name + " from favorites"
	}
	cmd := m.rebuildItems()
	return tea.Batch(cmd, m.syncSelection())
}

func (m *Model) copyPhotoLink() {
	p, ok := m.SelectedPet()
	src := p.Photo()
	if !ok || !src.Resolvable() {
		m.status = "no photo to copy"
		return
	}
	if err := m.copy(src.Ref()); err != nil {
		log.Printf("Warning: clipboard: %v", err)
		m.status = "clipboard unavailable"
		return
	}
	m.status = "copied photo link"
}

func (m *Model) resize(cols, rows int) {
	m.width, m.height = cols, rows
	m.layout = ComputeLayout(m.metrics, cols, rows)
	m.help.SetSize(cols, rows)

	m.list.SetDelegate(PetDelegate{ShowExtraCols: m.layout.Split && m.layout.ListWidth >= 40})
	m.list.SetSize(max(m.layout.ListWidth-panelBorder, 0), max(m.layout.BodyHeight-panelBorder, 0))
	m.image.SetSize(m.layout.ImageCols, m.layout.ImageRows)

	m.detail.Width = max(m.detailInnerWidth(), 1)
	m.detail.Height = m.layout.TextRows
	m.markdown = nil
	m.detailKey = ""
	m.refreshDetail()
}

func (m Model) detailInnerWidth() int {
	return m.layout.DetailWidth - panelBorder - 2*m.layout.Padding
}

func (m *Model) refreshDetail() {
	p, ok := m.SelectedPet()
	if !ok {
		m.detailKey = ""
		m.detail.SetContent("")
		return
	}
	key := fmt.Sprintf("%s:%d", p.ID, m.detail.Width)
	if key == m.detailKey {
		return
	}
	m.detailKey = key
	m.detail.SetContent(m.renderDescription(p.Description))
	m.detail.GotoTop()
}

func (m *Model) renderDescription(md string) string {
	if strings.TrimSpace(md) == "" {
		return SubtextStyle.Render("No description yet.")
	}
	if m.markdown == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(m.detail.Width),
		)
		if err != nil {
			log.Printf("Warning: markdown renderer: %v", err)
			return md
		}
		m.markdown = r
	}
	out, err := m.markdown.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return listingsChangedMsg{}
	}
}

func (m Model) reloadCmd() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	reload := m.reload
	return func() tea.Msg {
		all, err := reload()
		return listingsLoadedMsg{pets: all, err: err}
	}
}

// Layout returns the current frame geometry.
func (m Model) Layout() Layout {
	return m.layout
}

// Image returns the photo display.
func (m Model) Image() imageview.Model {
	return m.image
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

// FavoritesOnly reports whether the list is filtered to favorites.
func (m Model) FavoritesOnly() bool {
	return m.favOnly
}

// ShowingDetail reports whether the phone layout shows the detail panel.
func (m Model) ShowingDetail() bool {
	return m.showDetail
}

// View implements tea.Model.
func (m Model) View() string {
	if m.help.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.help.View())
	}

	var body string
	switch {
	case m.layout.Split:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), m.renderDetail())
	case m.showDetail:
		body = m.renderDetail()
	default:
		body = m.renderList()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

func (m Model) renderHeader() string {
	title := HeaderStyle.Render("🐾 pawview")
	info := fmt.Sprintf("  %d pets · %s", len(m.list.Items()), m.layout.Class)
	if m.favOnly {
		info += " · favorites"
	}
	return title + FooterStyle.Render(info)
}

func (m Model) renderFooter() string {
	if m.status != "" {
		return StatusStyle.Render(m.status)
	}
	hints := "? help • / search • f favorite • y copy link • q quit"
	if !m.layout.Split {
		if m.showDetail {
			hints = "esc back • pgup/pgdn scroll • f favorite • q quit"
		} else {
			hints = "enter details • " + hints
		}
	}
	return FooterStyle.Render(hints)
}

func (m Model) renderList() string {
	style := FocusedPanelStyle
	if m.showDetail {
		style = PanelStyle
	}
	return style.
		Width(max(m.layout.ListWidth-panelBorder, 0)).
		Height(max(m.layout.BodyHeight-panelBorder, 0)).
		MaxHeight(m.layout.BodyHeight).
		Render(m.list.View())
}

func (m Model) renderDetail() string {
	var b strings.Builder
	p, ok := m.SelectedPet()
	if !ok {
		b.WriteString(SubtextStyle.Render("No pets to show."))
	} else {
		b.WriteString(m.image.View())
		b.WriteString("\n")
		b.WriteString(RenderFavoriteMark(m.favIDs[p.ID]) + " " + NameStyle.Render(p.Name) + "  " + RenderSpeciesBadge(p.Species))
		b.WriteString("\n")
		summary := p.Summary()
		if listed := p.Listed(); listed != "" {
			summary += " · " + listed
		}
		b.WriteString(SubtextStyle.Render(summary))
		b.WriteString("\n")
		b.WriteString(RenderDivider(max(m.detailInnerWidth(), 0)))
		b.WriteString("\n")
		b.WriteString(m.detail.View())
	}

	style := PanelStyle
	if m.showDetail {
		style = FocusedPanelStyle
	}
	return style.
		Width(max(m.layout.DetailWidth-panelBorder, 0)).
		Height(max(m.layout.BodyHeight-panelBorder, 0)).
		MaxHeight(m.layout.BodyHeight).
		Padding(0, m.layout.Padding).
		Render(b.String())
}
