package imageview

import (
	"context"
	"image"
	"log"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pawview/pawview/pkg/responsive"
)

// DefaultPlaceholder is shown when there is no source to load.
const DefaultPlaceholder = "image unavailable"

// FailureText is shown when a load fails.
const FailureText = "⚠ couldn't load image"

var (
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")).Italic(true)
	failureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	loadingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#BD93F9"))
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// LoadStartMsg signals that a fetch attempt began.
type LoadStartMsg struct {
	ID    int
	Token Token
}

// LoadEndMsg signals a successful fetch.
type LoadEndMsg struct {
	ID    int
	Token Token
	Image image.Image
}

// LoadErrorMsg signals a failed fetch.
type LoadErrorMsg struct {
	ID    int
	Token Token
	Err   error
}

// Model is an image display component. Messages are matched on both the
// instance ID and the source token, so late signals from a previous source
// never touch the current one.
type Model struct {
	id      int
	metrics *responsive.Metrics
	fetcher Fetcher
	opts    Options

	source  Source
	tracker Tracker
	image   image.Image
	cancel  context.CancelFunc
	spinner spinner.Model

	// container size in cells; zero means the whole window
	cols int
	rows int
}

// New creates a display with no source.
func New(metrics *responsive.Metrics, fetcher Fetcher, opts Options) Model {
	return Model{
		id:      nextID(),
		metrics: metrics,
		fetcher: fetcher,
		opts:    opts,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(loadingStyle)),
	}
}

// ID returns the instance ID carried by this display's messages.
func (m Model) ID() int {
	return m.id
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSource changes the displayed image. A new source identity resets the
// state to loading and returns the command that performs the fetch; the
// same source again is a no-op.
func (m *Model) SetSource(src Source) tea.Cmd {
	tok, fresh := m.tracker.Reset(src)
	if !fresh {
		if !src.Resolvable() {
			m.release()
			m.image = nil
			m.source = None
		}
		return nil
	}

	m.release()
	m.source = src
	m.image = nil

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	cmds := []tea.Cmd{m.load(ctx, tok, src)}
	if m.opts.ShowLoading {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m Model) load(ctx context.Context, tok Token, src Source) tea.Cmd {
	return tea.Sequence(
		startCmd(m.id, tok),
		fetchCmd(ctx, m.id, tok, m.fetcher, src),
	)
}

func startCmd(id int, tok Token) tea.Cmd {
	return func() tea.Msg {
		return LoadStartMsg{ID: id, Token: tok}
	}
}

// fetchCmd emits exactly one of LoadEndMsg or LoadErrorMsg.
func fetchCmd(ctx context.Context, id int, tok Token, fetcher Fetcher, src Source) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return LoadErrorMsg{ID: id, Token: tok, Err: ErrUnresolvableSource}
		}
		img, err := fetcher.Fetch(ctx, src)
		if err != nil {
			return LoadErrorMsg{ID: id, Token: tok, Err: err}
		}
		return LoadEndMsg{ID: id, Token: tok, Image: img}
	}
}

// release cancels an in-flight fetch.
func (m *Model) release() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Close cancels any pending fetch.
func (m *Model) Close() {
	m.release()
}

// SetSize bounds the display to a container of cols x rows cells.
func (m *Model) SetSize(cols, rows int) {
	m.cols = cols
	m.rows = rows
}

// SetOptions replaces the display options.
func (m *Model) SetOptions(opts Options) {
	m.opts = opts
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadStartMsg:
		if msg.ID == m.id {
			m.tracker.Start(msg.Token)
		}

	case LoadEndMsg:
		if msg.ID == m.id && m.tracker.End(msg.Token) {
			m.image = msg.Image
			m.release()
		}

	case LoadErrorMsg:
		if msg.ID == m.id && m.tracker.Fail(msg.Token, msg.Err) {
			log.Printf("Warning: image %s failed to load: %v", m.source, msg.Err)
			m.release()
		}

	case spinner.TickMsg:
		if m.LoadingOverlayVisible() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// Source returns the current source.
func (m Model) Source() Source {
	return m.source
}

// Active reports whether a resolvable source is shown. Inactive displays
// render the placeholder and have no load state.
func (m Model) Active() bool {
	return m.tracker.Active()
}

// State returns the load state, or StateNone when there is no source.
func (m Model) State() LoadState {
	return m.tracker.State()
}

// Token is the generation of the current source. Load messages carrying an
// older token are dropped.
func (m Model) Token() Token {
	return m.tracker.Token()
}

// Err returns the last load failure.
func (m Model) Err() error {
	return m.tracker.Err()
}

// Image returns the decoded image once loaded.
func (m Model) Image() image.Image {
	return m.image
}

// LoadingOverlayVisible reports whether the spinner overlay is showing.
func (m Model) LoadingOverlayVisible() bool {
	return m.tracker.Active() && m.tracker.State() == StateLoading && m.opts.ShowLoading
}

// ErrorOverlayVisible reports whether the failure overlay is showing.
func (m Model) ErrorOverlayVisible() bool {
	return m.tracker.Active() && m.tracker.State() == StateError
}

// Style returns the style resolved against the current window.
func (m Model) Style() Style {
	return ResolveStyle(m.opts, m.metrics.Window())
}

func (m Model) container() responsive.Window {
	win := m.metrics.Window()
	if m.cols <= 0 {
		return win
	}
	cell := m.metrics.CellSize()
	c := responsive.Window{Width: float64(m.cols) * cell.Width, Height: win.Height}
	if m.rows > 0 {
		c.Height = float64(m.rows) * cell.Height
	}
	return c
}

// Box returns the display size in cells.
func (m Model) Box() (cols, rows int) {
	return m.Style().Box(m.container(), m.metrics.CellSize(), aspectOf(m.image))
}

// View implements tea.Model.
func (m Model) View() string {
	cols, rows := m.Box()

	var body string
	switch {
	case !m.tracker.Active():
		text := m.opts.Placeholder
		if text == "" {
			text = DefaultPlaceholder
		}
		body = placeBox(cols, rows, placeholderStyle.Render(text))
	case m.tracker.State() == StateLoaded:
		body = Render(m.image, cols, rows)
	case m.tracker.State() == StateError:
		body = placeBox(cols, rows, failureStyle.Render(FailureText))
	case m.opts.ShowLoading:
		body = placeBox(cols, rows, m.spinner.View()+loadingStyle.Render(" loading"))
	default:
		body = placeBox(cols, rows, "")
	}
	return m.opts.Frame.Render(body)
}
