package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pawview/pawview/pkg/imageview"
	"github.com/pawview/pawview/pkg/pets"
	"github.com/pawview/pawview/pkg/responsive"
)

func phone() *responsive.Metrics {
	return responsive.New(responsive.Static{Width: 414, Height: 896})
}

func stubFetcher(err error) imageview.Fetcher {
	return imageview.FetcherFunc(func(ctx context.Context, src imageview.Source) (image.Image, error) {
		if err != nil {
			return nil, err
		}
		return image.NewRGBA(image.Rect(0, 0, 40, 30)), nil
	})
}

func TestNewLayout(t *testing.T) {
	l := NewLayout(phone())
	if l.Width != 414 || l.Padding != 16 || l.Gap != 8 {
		t.Errorf("phone layout = %+v", l)
	}
	if l.PhotoWidth != 382 || l.Height != 417 {
		t.Errorf("phone photo width %v height %d, want 382 and 417", l.PhotoWidth, l.Height)
	}

	big := NewLayout(responsive.New(responsive.Static{Width: 828, Height: 1792}))
	if big.Padding != 24 || big.Gap != 16 {
		t.Errorf("tablet spacing = %v/%v, want 24/16", big.Padding, big.Gap)
	}
	// font sizes do not follow the window
	if big.TitleSize != 24 || big.BodySize != 14 {
		t.Errorf("tablet fonts = %d/%d, want 24/14", big.TitleSize, big.BodySize)
	}
}

func TestPNG(t *testing.T) {
	r := &Renderer{Metrics: phone(), Fetcher: stubFetcher(nil)}
	var buf bytes.Buffer
	p := pets.Pet{ID: "p1", Name: "Biscuit", PhotoURL: "https://example.com/b.png", AgeMonths: 14}
	if err := r.PNG(context.Background(), &buf, p); err != nil {
		t.Fatalf("PNG() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 414 || b.Dy() != 417 {
		t.Errorf("card bounds = %v, want 414x417", b)
	}
}

func TestPNGWithoutPhoto(t *testing.T) {
	r := &Renderer{Metrics: phone(), Fetcher: stubFetcher(errors.New("offline"))}
	var buf bytes.Buffer
	if err := r.PNG(context.Background(), &buf, pets.Pet{ID: "p1", Name: "Biscuit", PhotoURL: "https://x"}); err != nil {
		t.Fatalf("PNG() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected output")
	}
}

func TestPNGBadFont(t *testing.T) {
	r := &Renderer{Metrics: phone(), FontPath: filepath.Join(t.TempDir(), "missing.ttf")}
	if err := r.PNG(context.Background(), &bytes.Buffer{}, pets.Pet{Name: "x"}); err == nil {
		t.Error("expected font load error")
	}
}

func TestSVG(t *testing.T) {
	r := &Renderer{Metrics: phone()}
	var buf bytes.Buffer
	p := pets.Pet{ID: "c1", Name: "Mochi", PhotoURL: "https://example.com/m.webp"}
	if err := r.SVG(context.Background(), &buf, p); err != nil {
		t.Fatalf("SVG() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", "Mochi", "https://example.com/m.webp", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}

	buf.Reset()
	r.SVG(context.Background(), &buf, pets.Pet{Name: "Ghost"})
	if !strings.Contains(buf.String(), imageview.DefaultPlaceholder) {
		t.Error("SVG without photo should show the placeholder")
	}
}

func TestAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cards")
	r := &Renderer{Metrics: phone(), Fetcher: stubFetcher(nil)}
	all := []pets.Pet{
		{ID: "a/1", Name: "A"},
		{ID: "b", Name: "B", PhotoPath: "b.png"},
		{ID: "c", Name: "C"},
	}

	paths, err := r.All(context.Background(), all, dir, FormatSVG)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(paths) != 3 || filepath.Base(paths[0]) != "a_1.svg" {
		t.Fatalf("paths = %v", paths)
	}
	for _, p := range paths {
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Errorf("card %s missing or empty: %v", p, err)
		}
	}
}

func TestAllKeepsCollidingIDsApart(t *testing.T) {
	dir := t.TempDir()
	r := &Renderer{Metrics: phone(), Fetcher: stubFetcher(nil)}
	all := []pets.Pet{
		{ID: "a b", Name: "Spaced"},
		{ID: "a_b", Name: "Underscored"},
		{ID: "A_B", Name: "Shouty"},
		{ID: "a_b-2", Name: "Already suffixed"},
	}

	paths, err := r.All(context.Background(), all, dir, FormatSVG)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	want := []string{"a_b.svg", "a_b-2.svg", "A_B-3.svg", "a_b-2-2.svg"}
	for i, p := range paths {
		if got := filepath.Base(p); got != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, got, want[i])
		}
	}

	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("read %s: %v", p, err)
		}
		if !strings.Contains(string(data), all[i].Name) {
			t.Errorf("%s does not hold the card for %q", p, all[i].Name)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("png"); err != nil || f != FormatPNG {
		t.Errorf("ParseFormat(png) = %v, %v", f, err)
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("expected error for gif")
	}
}
