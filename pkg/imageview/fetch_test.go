package imageview

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestHTTPFetcher(t *testing.T) {
	data := testPNG(t, 6, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pet.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write(data)
		case "/text":
			w.Write([]byte("definitely not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(time.Second)

	img, err := f.Fetch(context.Background(), Remote(srv.URL+"/pet.png"))
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Errorf("bounds = %v, want 6x4", b)
	}

	if _, err := f.Fetch(context.Background(), Remote(srv.URL+"/missing.png")); err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("Fetch(missing) error = %v, want 404", err)
	}

	if _, err := f.Fetch(context.Background(), Remote(srv.URL+"/text")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Fetch(text) error = %v, want ErrUnsupportedFormat", err)
	}

	if _, err := f.Fetch(context.Background(), Local("pet.png")); !errors.Is(err, ErrUnresolvableSource) {
		t.Errorf("Fetch(local) error = %v, want ErrUnresolvableSource", err)
	}
}

func TestHTTPFetcherHonorsContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewHTTPFetcher(time.Second).Fetch(ctx, Remote(srv.URL)); !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want context.Canceled", err)
	}
}

func TestFileFetcher(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "dog.png"), testPNG(t, 3, 3), 0o644); err != nil {
		t.Fatal(err)
	}

	f := FileFetcher{Root: dir}
	img, err := f.Fetch(context.Background(), Local("dog.png"))
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if img.Bounds().Dx() != 3 {
		t.Errorf("width = %d, want 3", img.Bounds().Dx())
	}

	abs := filepath.Join(dir, "dog.png")
	if _, err := (FileFetcher{Root: "/elsewhere"}).Fetch(context.Background(), Local(abs)); err != nil {
		t.Errorf("absolute path should ignore root: %v", err)
	}

	if _, err := f.Fetch(context.Background(), Local("nope.png")); err == nil {
		t.Error("expected error for missing asset")
	}
}

func TestMultiDispatch(t *testing.T) {
	var got []Kind
	record := FetcherFunc(func(ctx context.Context, src Source) (image.Image, error) {
		got = append(got, src.Kind())
		return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
	})
	m := Multi{Remote: record, Local: record}

	m.Fetch(context.Background(), Remote("https://x/a.png"))
	m.Fetch(context.Background(), Local("a.png"))
	if len(got) != 2 || got[0] != KindRemote || got[1] != KindLocal {
		t.Errorf("dispatched kinds = %v", got)
	}

	if _, err := m.Fetch(context.Background(), None); !errors.Is(err, ErrUnresolvableSource) {
		t.Errorf("Fetch(None) error = %v", err)
	}
	if _, err := (Multi{}).Fetch(context.Background(), Remote("https://x")); !errors.Is(err, ErrUnresolvableSource) {
		t.Errorf("Fetch() without remote fetcher error = %v", err)
	}
}

// gifHeader is a GIF with only a logical screen descriptor declaring w x h.
func gifHeader(w, h uint16) []byte {
	return []byte{
		'G', 'I', 'F', '8', '9', 'a',
		byte(w), byte(w >> 8),
		byte(h), byte(h >> 8),
		0, 0, 0, // no global color table
	}
}

func TestDecodeRejectsOversizedDimensions(t *testing.T) {
	_, _, err := Decode(bytes.NewReader(gifHeader(60000, 60000)))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Decode(60000x60000 header) error = %v, want ErrUnsupportedFormat", err)
	}
	if !strings.Contains(err.Error(), "60000x60000") {
		t.Errorf("error should name the declared size: %v", err)
	}

	img, format, err := Decode(bytes.NewReader(testPNG(t, 3, 2)))
	if err != nil || format != "png" || img.Bounds().Dx() != 3 {
		t.Errorf("small png: img=%v format=%q err=%v", img, format, err)
	}
}

func TestFileFetcherRejectsOversizedAsset(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "huge.gif"), gifHeader(65535, 65535), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := FileFetcher{Root: root}.Fetch(context.Background(), Local("huge.gif"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Fetch(huge.gif) error = %v, want ErrUnsupportedFormat", err)
	}
}
