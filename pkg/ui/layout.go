package ui

import "github.com/pawview/pawview/pkg/responsive"

// Panel dimension constraints, in cells.
const (
	// MinListWidth keeps names readable in the split view.
	MinListWidth = 24

	// MaxListWidth prevents the list from crowding the detail panel.
	MaxListWidth = 48

	// MinContentHeight is the minimum height for scrollable content areas.
	MinContentHeight = 3

	// chromeHeight is the header plus footer.
	chromeHeight = 2

	// panelBorder is the width or height taken by a rounded border.
	panelBorder = 2

	// ListWidthPercent is the share of the window given to the split list.
	ListWidthPercent = 40

	// ImageHeightPercent is the share of the window given to the photo.
	ImageHeightPercent = 45
)

// Layout is the cell geometry of one frame.
type Layout struct {
	Class       responsive.ScreenClass
	Split       bool // list and detail side by side
	ListWidth   int
	DetailWidth int
	BodyHeight  int
	Padding     int
	ImageCols   int
	ImageRows   int
	TextRows    int
}

// ComputeLayout derives the layout for a cols x rows terminal from the
// responsive metrics. Tablet-class windows split; phones stack.
func ComputeLayout(m *responsive.Metrics, cols, rows int) Layout {
	l := Layout{
		Class:      m.Classify(),
		BodyHeight: max(rows-chromeHeight, MinContentHeight+panelBorder),
		Padding:    m.Cells(m.Spacing(SpaceSM)),
	}
	l.Split = l.Class == responsive.Tablet

	if l.Split {
		l.ListWidth = min(max(m.Cells(m.WidthPercent(ListWidthPercent)), MinListWidth), MaxListWidth)
		l.DetailWidth = max(cols-l.ListWidth, 0)
	} else {
		l.ListWidth = cols
		l.DetailWidth = cols
	}

	inner := l.BodyHeight - panelBorder
	l.ImageCols = max(l.DetailWidth-panelBorder-2*l.Padding, 0)
	l.ImageRows = max(min(m.Rows(m.HeightPercent(ImageHeightPercent)), inner-3-MinContentHeight), 1)
	// name, badges and divider sit between image and description
	l.TextRows = max(inner-l.ImageRows-3, MinContentHeight)
	return l
}
