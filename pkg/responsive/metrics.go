// Package responsive scales design-time sizes to the live display.
//
// Every value is computed against a fixed Reference (the design device) and
// the current Window reported by a Provider. Providers are re-queried on each
// call, so results follow rotation and terminal resizes without invalidation.
package responsive

import "math"

// Reference is the design baseline all scale factors are computed against.
type Reference struct {
	Width  float64
	Height float64
}

// DefaultReference is the 414x896 logical pixel design device.
var DefaultReference = Reference{Width: 414, Height: 896}

// DefaultModerateFactor is the interpolation factor used by ModerateScale.
const DefaultModerateFactor = 0.5

// Metrics computes scaled sizes from a Provider and a Reference.
type Metrics struct {
	ref      Reference
	provider Provider
}

// Option configures Metrics.
type Option func(*Metrics)

// WithReference overrides the design baseline.
func WithReference(ref Reference) Option {
	return func(m *Metrics) {
		if ref.Width > 0 && ref.Height > 0 {
			m.ref = ref
		}
	}
}

// New creates Metrics reading window dimensions from p.
func New(p Provider, opts ...Option) *Metrics {
	m := &Metrics{
		ref:      DefaultReference,
		provider: p,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Reference returns the design baseline.
func (m *Metrics) Reference() Reference {
	return m.ref
}

// Window returns the current window dimensions.
func (m *Metrics) Window() Window {
	return m.provider.Window()
}

// Provider returns the underlying window provider.
func (m *Metrics) Provider() Provider {
	return m.provider
}

// HorizontalScale scales size by the width ratio. Narrower windows never
// scale down: the factor is clamped at 1.
func (m *Metrics) HorizontalScale(size float64) float64 {
	w := m.provider.Window()
	return size * math.Max(w.Width/m.ref.Width, 1)
}

// VerticalScale scales size by the height ratio, clamped at 1 like
// HorizontalScale.
func (m *Metrics) VerticalScale(size float64) float64 {
	w := m.provider.Window()
	return size * math.Max(w.Height/m.ref.Height, 1)
}

// ModerateScale interpolates halfway between size and HorizontalScale(size).
func (m *Metrics) ModerateScale(size float64) float64 {
	return m.ModerateScaleFactor(size, DefaultModerateFactor)
}

// ModerateScaleFactor interpolates between size (factor 0) and the fully
// scaled size (factor 1). Factors outside [0,1] extrapolate.
func (m *Metrics) ModerateScaleFactor(size, factor float64) float64 {
	return size + (m.HorizontalScale(size)-size)*factor
}

// FontSize returns size rounded to the nearest whole unit.
//
// The width is clamped to the reference before the ratio is taken, so the
// factor is always exactly 1 and fonts never grow with the window.
func (m *Metrics) FontSize(size float64) int {
	w := m.provider.Window()
	factor := math.Max(math.Min(w.Width, m.ref.Width)/m.ref.Width, 1)
	return int(math.Round(size * factor))
}

// Spacing is ModerateScale with the default factor.
func (m *Metrics) Spacing(size float64) float64 {
	return m.ModerateScale(size)
}

// WidthPercent returns p percent of the current window width.
func (m *Metrics) WidthPercent(p float64) float64 {
	return m.provider.Window().Width * p / 100
}

// HeightPercent returns p percent of the current window height.
func (m *Metrics) HeightPercent(p float64) float64 {
	return m.provider.Window().Height * p / 100
}

// Cells converts a logical pixel width to terminal columns (at least 1 for
// positive input).
func (m *Metrics) Cells(px float64) int {
	return toCells(px, cellSizeOf(m.provider).Width)
}

// Rows converts a logical pixel height to terminal rows.
func (m *Metrics) Rows(px float64) int {
	return toCells(px, cellSizeOf(m.provider).Height)
}

func toCells(px, unit float64) int {
	if px <= 0 || unit <= 0 {
		return 0
	}
	n := int(math.Floor(px / unit))
	if n < 1 {
		n = 1
	}
	return n
}

// CellSize returns the terminal cell footprint used by Cells and Rows.
func (m *Metrics) CellSize() CellSize {
	return cellSizeOf(m.provider)
}
