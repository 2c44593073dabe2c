package imageview

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	out := Render(img, 6, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d width = %d, want 6", i, w)
		}
	}
	if strings.Count(out, halfBlock) != 18 {
		t.Errorf("expected 18 half blocks, got %d", strings.Count(out, halfBlock))
	}
}

func TestRenderEmpty(t *testing.T) {
	if Render(nil, 4, 4) != "" {
		t.Error("nil image should render empty")
	}
	if Render(image.NewRGBA(image.Rect(0, 0, 2, 2)), 0, 4) != "" {
		t.Error("zero columns should render empty")
	}
}

func TestScale(t *testing.T) {
	dst := Scale(image.NewRGBA(image.Rect(0, 0, 100, 50)), 10, 5)
	if dst.Bounds().Dx() != 10 || dst.Bounds().Dy() != 5 {
		t.Errorf("Scale() bounds = %v, want 10x5", dst.Bounds())
	}
	if aspectOf(dst) != 2 {
		t.Errorf("aspectOf() = %v, want 2", aspectOf(dst))
	}
}
