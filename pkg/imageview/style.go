package imageview

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pawview/pawview/pkg/responsive"
)

// DimensionKind says how a Dimension is interpreted.
type DimensionKind int

const (
	DimUnset DimensionKind = iota
	DimAuto
	DimPoints
	DimPercent
)

// Dimension is a length in logical pixels, a percentage of the container,
// or auto.
type Dimension struct {
	Kind  DimensionKind
	Value float64
}

// Auto sizes from the image's own aspect.
var Auto = Dimension{Kind: DimAuto}

// Points is an absolute length in logical pixels.
func Points(v float64) Dimension {
	return Dimension{Kind: DimPoints, Value: v}
}

// Percent is a fraction of the container, 0-100.
func Percent(p float64) Dimension {
	return Dimension{Kind: DimPercent, Value: p}
}

// ParseDimension accepts "auto", "120" or "50%".
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Dimension{}, nil
	case strings.EqualFold(s, "auto"):
		return Auto, nil
	case strings.HasSuffix(s, "%"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return Dimension{}, fmt.Errorf("invalid percentage %q: %w", s, err)
		}
		return Percent(v), nil
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Dimension{}, fmt.Errorf("invalid dimension %q: %w", s, err)
		}
		return Points(v), nil
	}
}

// IsSet reports whether the dimension carries a value.
func (d Dimension) IsSet() bool {
	return d.Kind != DimUnset
}

func (d Dimension) String() string {
	switch d.Kind {
	case DimAuto:
		return "auto"
	case DimPoints:
		return strconv.FormatFloat(d.Value, 'f', -1, 64)
	case DimPercent:
		return strconv.FormatFloat(d.Value, 'f', -1, 64) + "%"
	default:
		return ""
	}
}

// StyleOverride carries caller overrides; nil fields are left alone.
type StyleOverride struct {
	Width       *Dimension
	Height      *Dimension
	AspectRatio *float64
}

// Options configures a display.
type Options struct {
	// Width defaults to filling the container.
	Width  Dimension
	Height Dimension
	// AspectRatio is width/height, used only when Height is unset.
	AspectRatio float64
	ShowLoading bool
	// Style is merged last and wins over everything above.
	Style StyleOverride
	// Frame decorates the rendered box (borders, margins).
	Frame lipgloss.Style
	// Placeholder replaces the default "image unavailable" text.
	Placeholder string
}

// DefaultOptions fills the width and shows the loading spinner.
func DefaultOptions() Options {
	return Options{
		Width:       Percent(100),
		ShowLoading: true,
	}
}

// Style is the resolved layout of a display.
type Style struct {
	Width       Dimension
	Height      Dimension
	AspectRatio float64
}

// ResolveStyle computes the effective style for opts in the given window.
// Numeric widths never exceed the window width.
func ResolveStyle(opts Options, window responsive.Window) Style {
	s := Style{Width: Percent(100)}

	switch opts.Width.Kind {
	case DimPoints:
		s.Width = Points(math.Min(opts.Width.Value, window.Width))
	case DimPercent, DimAuto:
		s.Width = opts.Width
	}

	switch {
	case opts.Height.IsSet():
		s.Height = opts.Height
	case opts.AspectRatio > 0:
		s.AspectRatio = opts.AspectRatio
		if s.Width.Kind == DimPoints {
			s.Height = Points(s.Width.Value / opts.AspectRatio)
		}
	case s.Width.Kind == DimPoints:
		s.Height = Auto
	}

	if o := opts.Style; o.Width != nil {
		s.Width = *o.Width
	}
	if o := opts.Style; o.Height != nil {
		s.Height = *o.Height
	}
	if o := opts.Style; o.AspectRatio != nil {
		s.AspectRatio = *o.AspectRatio
	}
	return s
}

// defaultAspect is used for boxes with no height, ratio or image yet.
const defaultAspect = 4.0 / 3.0

// Box converts the style to a cell box inside a container of the given
// logical pixel size. intrinsic is the image's width/height, 0 if unknown.
func (s Style) Box(container responsive.Window, cell responsive.CellSize, intrinsic float64) (cols, rows int) {
	if cell.Width <= 0 || cell.Height <= 0 {
		cell = responsive.DefaultCellSize
	}

	widthPx := container.Width
	switch s.Width.Kind {
	case DimPoints:
		widthPx = s.Width.Value
	case DimPercent:
		widthPx = container.Width * s.Width.Value / 100
	}
	widthPx = math.Min(widthPx, container.Width)

	var heightPx float64
	switch s.Height.Kind {
	case DimPoints:
		heightPx = s.Height.Value
	case DimPercent:
		heightPx = container.Height * s.Height.Value / 100
	default:
		aspect := s.AspectRatio
		if aspect <= 0 {
			aspect = intrinsic
		}
		if aspect <= 0 {
			aspect = defaultAspect
		}
		heightPx = widthPx / aspect
	}
	if container.Height > 0 {
		heightPx = math.Min(heightPx, container.Height)
	}

	cols = int(math.Floor(widthPx / cell.Width))
	rows = int(math.Floor(heightPx / cell.Height))
	return max(cols, 0), max(rows, 0)
}
