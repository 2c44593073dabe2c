// Package export renders shareable pet cards as PNG or SVG.
//
// Cards are laid out for a target device through responsive.Metrics, so a
// card exported for a tablet gets the same spacing a tablet screen would.
package export

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"math"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"

	"github.com/pawview/pawview/pkg/imageview"
	"github.com/pawview/pawview/pkg/pets"
	"github.com/pawview/pawview/pkg/responsive"
)

// Format is an output format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPNG, FormatSVG:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q (want png or svg)", s)
	}
}

const (
	colorBackground = "#282A36"
	colorPanel      = "#44475A"
	colorText       = "#F8F8F2"
	colorSubtext    = "#BFBFBF"
	colorAccent     = "#BD93F9"
)

// Layout is the geometry of a card in logical pixels.
type Layout struct {
	Width       int
	Height      int
	Padding     float64
	Gap         float64
	PhotoWidth  float64
	PhotoHeight float64
	TitleSize   int
	BodySize    int
}

// NewLayout sizes a card for the device m describes.
func NewLayout(m *responsive.Metrics) Layout {
	win := m.Window()
	l := Layout{
		Width:     int(math.Round(win.Width)),
		Padding:   m.Spacing(16),
		Gap:       m.VerticalScale(8),
		TitleSize: m.FontSize(24),
		BodySize:  m.FontSize(14),
	}
	l.PhotoWidth = float64(l.Width) - 2*l.Padding
	l.PhotoHeight = l.PhotoWidth * 3 / 4
	text := float64(l.TitleSize) + 3*(float64(l.BodySize)+l.Gap)
	l.Height = int(math.Ceil(2*l.Padding + l.PhotoHeight + l.Gap + text))
	return l
}

// Renderer draws cards.
type Renderer struct {
	Metrics *responsive.Metrics
	Fetcher imageview.Fetcher
	// FontPath is a TrueType font for PNG text; empty uses gg's built-in face.
	FontPath string
}

func (r *Renderer) photo(ctx context.Context, p pets.Pet) image.Image {
	src := p.Photo()
	if !src.Resolvable() || r.Fetcher == nil {
		return nil
	}
	img, err := r.Fetcher.Fetch(ctx, src)
	if err != nil {
		log.Printf("Warning: card for %s rendered without photo: %v", p.ID, err)
		return nil
	}
	return img
}

func lines(p pets.Pet) []string {
	out := []string{p.Summary()}
	if p.Sex != "" || p.Size != "" {
		out = append(out, fmt.Sprintf("%s %s", p.Sex, p.Size))
	}
	if listed := p.Listed(); listed != "" {
		out = append(out, listed)
	}
	return out
}

// PNG writes the card for p as PNG.
func (r *Renderer) PNG(ctx context.Context, w io.Writer, p pets.Pet) error {
	l := NewLayout(r.Metrics)
	dc := gg.NewContext(l.Width, l.Height)
	dc.SetHexColor(colorBackground)
	dc.Clear()

	x, y := l.Padding, l.Padding
	if img := r.photo(ctx, p); img != nil {
		scaled := imageview.Scale(img, int(l.PhotoWidth), int(l.PhotoHeight))
		dc.DrawImage(scaled, int(x), int(y))
	} else {
		dc.SetHexColor(colorPanel)
		dc.DrawRectangle(x, y, l.PhotoWidth, l.PhotoHeight)
		dc.Fill()
		dc.SetHexColor(colorSubtext)
		dc.DrawStringAnchored(imageview.DefaultPlaceholder, x+l.PhotoWidth/2, y+l.PhotoHeight/2, 0.5, 0.5)
	}
	y += l.PhotoHeight + l.Gap

	if r.FontPath != "" {
		if err := dc.LoadFontFace(r.FontPath, float64(l.TitleSize)); err != nil {
			return fmt.Errorf("load font: %w", err)
		}
	}
	y += float64(l.TitleSize)
	dc.SetHexColor(colorAccent)
	dc.DrawString(p.Name, x, y)

	if r.FontPath != "" {
		if err := dc.LoadFontFace(r.FontPath, float64(l.BodySize)); err != nil {
			return fmt.Errorf("load font: %w", err)
		}
	}
	dc.SetHexColor(colorText)
	for _, line := range lines(p) {
		y += float64(l.BodySize) + l.Gap
		dc.DrawString(line, x, y)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode card: %w", err)
	}
	return nil
}

// SVG writes the card for p as SVG. Photos are linked, not embedded.
func (r *Renderer) SVG(ctx context.Context, w io.Writer, p pets.Pet) error {
	l := NewLayout(r.Metrics)
	canvas := svg.New(w)
	canvas.Start(l.Width, l.Height)
	canvas.Rect(0, 0, l.Width, l.Height, "fill:"+colorBackground)

	x, y := int(l.Padding), int(l.Padding)
	pw, ph := int(l.PhotoWidth), int(l.PhotoHeight)
	if src := p.Photo(); src.Resolvable() {
		canvas.Image(x, y, pw, ph, src.Ref())
	} else {
		canvas.Rect(x, y, pw, ph, "fill:"+colorPanel)
		canvas.Text(x+pw/2, y+ph/2, imageview.DefaultPlaceholder,
			fmt.Sprintf("fill:%s;font-size:%dpx;text-anchor:middle", colorSubtext, l.BodySize))
	}

	ty := float64(y) + l.PhotoHeight + l.Gap + float64(l.TitleSize)
	canvas.Text(x, int(ty), p.Name,
		fmt.Sprintf("fill:%s;font-size:%dpx;font-family:sans-serif;font-weight:bold", colorAccent, l.TitleSize))
	for _, line := range lines(p) {
		ty += float64(l.BodySize) + l.Gap
		canvas.Text(x, int(ty), line,
			fmt.Sprintf("fill:%s;font-size:%dpx;font-family:sans-serif", colorText, l.BodySize))
	}
	canvas.End()
	return ctx.Err()
}

// Write renders p in format f.
func (r *Renderer) Write(ctx context.Context, w io.Writer, p pets.Pet, f Format) error {
	switch f {
	case FormatPNG:
		return r.PNG(ctx, w, p)
	case FormatSVG:
		return r.SVG(ctx, w, p)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}
