package responsive

import (
	"os"
	"strconv"
	"sync"

	"golang.org/x/term"
)

// Window is the current display surface in logical pixels.
type Window struct {
	Width  float64
	Height float64
}

// Provider reports the live window dimensions. Implementations must not
// cache: the window can change between any two calls.
type Provider interface {
	Window() Window
}

// CellSize is the logical pixel footprint of one terminal cell.
type CellSize struct {
	Width  float64
	Height float64
}

// DefaultCellSize matches a typical 8x16 monospace cell.
var DefaultCellSize = CellSize{Width: 8, Height: 16}

// CellSizer is implemented by providers backed by a terminal grid.
type CellSizer interface {
	CellSize() CellSize
}

func cellSizeOf(p Provider) CellSize {
	if cs, ok := p.(CellSizer); ok {
		c := cs.CellSize()
		if c.Width > 0 && c.Height > 0 {
			return c
		}
	}
	return DefaultCellSize
}

// Static is a fixed window, used for tests and offscreen rendering.
type Static Window

// Window implements Provider.
func (s Static) Window() Window {
	return Window(s)
}

// Func adapts a function to Provider.
type Func func() Window

// Window implements Provider.
func (f Func) Window() Window {
	return f()
}

// Fallback terminal dimensions when nothing else is known.
const (
	FallbackColumns = 80
	FallbackRows    = 24
)

// Terminal queries the controlling terminal on every call.
type Terminal struct {
	Cell CellSize
	// Fd is the file descriptor to query; defaults to stdout.
	Fd int

	getSize func(fd int) (int, int, error)
	getenv  func(string) string
}

// NewTerminal creates a Terminal provider for stdout.
func NewTerminal(cell CellSize) *Terminal {
	return &Terminal{
		Cell:    cell,
		Fd:      int(os.Stdout.Fd()),
		getSize: term.GetSize,
		getenv:  os.Getenv,
	}
}

// Size returns the terminal size in cells. It tries the tty first, then
// $COLUMNS/$LINES, then 80x24.
func (t *Terminal) Size() (cols, rows int) {
	if t.getSize != nil {
		w, h, err := t.getSize(t.Fd)
		if err == nil && w > 0 && h > 0 {
			return w, h
		}
	}

	getenv := t.getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if v, err := strconv.Atoi(getenv("COLUMNS")); err == nil && v > 0 {
		cols = v
	}
	if v, err := strconv.Atoi(getenv("LINES")); err == nil && v > 0 {
		rows = v
	}
	if cols == 0 {
		cols = FallbackColumns
	}
	if rows == 0 {
		rows = FallbackRows
	}
	return cols, rows
}

// Window implements Provider.
func (t *Terminal) Window() Window {
	cols, rows := t.Size()
	c := t.CellSize()
	return Window{Width: float64(cols) * c.Width, Height: float64(rows) * c.Height}
}

// CellSize implements CellSizer.
func (t *Terminal) CellSize() CellSize {
	if t.Cell.Width <= 0 || t.Cell.Height <= 0 {
		return DefaultCellSize
	}
	return t.Cell
}

// Live holds the most recent terminal size reported by the UI loop
// (tea.WindowSizeMsg). It is safe for concurrent use.
type Live struct {
	mu   sync.RWMutex
	cols int
	rows int
	cell CellSize
}

// NewLive creates a Live provider seeded with an initial size.
func NewLive(cols, rows int, cell CellSize) *Live {
	if cell.Width <= 0 || cell.Height <= 0 {
		cell = DefaultCellSize
	}
	return &Live{cols: cols, rows: rows, cell: cell}
}

// Resize records a new terminal size in cells.
func (l *Live) Resize(cols, rows int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cols = cols
	l.rows = rows
}

// Size returns the last recorded size in cells.
func (l *Live) Size() (cols, rows int) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cols, l.rows
}

// Window implements Provider.
func (l *Live) Window() Window {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Window{
		Width:  float64(l.cols) * l.cell.Width,
		Height: float64(l.rows) * l.cell.Height,
	}
}

// CellSize implements CellSizer.
func (l *Live) CellSize() CellSize {
	return l.cell
}
