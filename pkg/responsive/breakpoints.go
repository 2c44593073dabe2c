package responsive

// Width breakpoints in logical pixels.
const (
	BreakpointSmall  = 375
	BreakpointMedium = 414
	BreakpointLarge  = 768
	BreakpointXLarge = 1024
)

// ScreenClass is the coarse device category of the current window.
type ScreenClass int

const (
	Phone ScreenClass = iota
	Tablet
	// Desktop is part of the classification surface but Classify never
	// returns it.
	Desktop
)

// String returns the lowercase name of the class.
func (c ScreenClass) String() string {
	switch c {
	case Phone:
		return "phone"
	case Tablet:
		return "tablet"
	case Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// Classify returns Tablet at or above BreakpointLarge and Phone otherwise.
// TODO: decide whether widths at BreakpointXLarge should report Desktop.
func (m *Metrics) Classify() ScreenClass {
	if m.provider.Window().Width >= BreakpointLarge {
		return Tablet
	}
	return Phone
}

// IsSmall reports a window narrower than BreakpointSmall.
func (m *Metrics) IsSmall() bool {
	return m.provider.Window().Width < BreakpointSmall
}

// IsMedium reports BreakpointSmall <= width < BreakpointMedium.
func (m *Metrics) IsMedium() bool {
	w := m.provider.Window().Width
	return w >= BreakpointSmall && w < BreakpointMedium
}

// IsLarge reports BreakpointMedium <= width < BreakpointLarge.
func (m *Metrics) IsLarge() bool {
	w := m.provider.Window().Width
	return w >= BreakpointMedium && w < BreakpointLarge
}

// IsTablet reports width >= BreakpointLarge.
func (m *Metrics) IsTablet() bool {
	return m.provider.Window().Width >= BreakpointLarge
}
