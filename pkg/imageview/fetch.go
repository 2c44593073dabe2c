package imageview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrUnresolvableSource is returned for the nil source or an empty ref.
	ErrUnresolvableSource = errors.New("unresolvable image source")
	// ErrUnsupportedFormat is returned when no registered decoder matches.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// DefaultFetchTimeout bounds a remote fetch.
const DefaultFetchTimeout = 10 * time.Second

// MaxImageBytes caps how much of a response body is decoded (20MB).
const MaxImageBytes = 20 * 1024 * 1024

// MaxImagePixels caps the declared area of an image before it is decoded,
// since a small file can declare dimensions that need gigabytes of pixels.
const MaxImagePixels = 40_000_000

// Fetcher retrieves and decodes the image behind a source.
type Fetcher interface {
	Fetch(ctx context.Context, src Source) (image.Image, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, src Source) (image.Image, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, src Source) (image.Image, error) {
	return f(ctx, src)
}

// Decode decodes any registered format: png, jpeg, gif, webp, bmp, tiff.
// Images declaring more than MaxImagePixels are rejected from their header
// with ErrUnsupportedFormat.
func Decode(r io.Reader) (image.Image, string, error) {
	var head bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(r, &head))
	if err != nil {
		return nil, "", decodeError(err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return nil, "", fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrUnsupportedFormat, cfg.Width, cfg.Height, MaxImagePixels)
	}

	img, format, err := image.Decode(io.MultiReader(&head, r))
	if err != nil {
		return nil, "", decodeError(err)
	}
	return img, format, nil
}

func decodeError(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return ErrUnsupportedFormat
	}
	return fmt.Errorf("decode image: %w", err)
}

// HTTPFetcher fetches remote sources over HTTP.
type HTTPFetcher struct {
	Client   *http.Client
	MaxBytes int64
}

// NewHTTPFetcher creates an HTTPFetcher with the given timeout. A zero
// timeout uses DefaultFetchTimeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HTTPFetcher{
		Client:   &http.Client{Timeout: timeout},
		MaxBytes: MaxImageBytes,
	}
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, src Source) (image.Image, error) {
	if !src.Resolvable() || src.Kind() != KindRemote {
		return nil, ErrUnresolvableSource
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.Ref(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src.Ref(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: server returned status: %s", src.Ref(), resp.Status)
	}

	limit := f.MaxBytes
	if limit <= 0 {
		limit = MaxImageBytes
	}
	img, _, err := Decode(io.LimitReader(resp.Body, limit))
	return img, err
}

// FileFetcher loads local assets. Relative paths resolve against Root.
type FileFetcher struct {
	Root string
}

// Fetch implements Fetcher.
func (f FileFetcher) Fetch(ctx context.Context, src Source) (image.Image, error) {
	if !src.Resolvable() || src.Kind() != KindLocal {
		return nil, ErrUnresolvableSource
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := src.Ref()
	if !filepath.IsAbs(path) && f.Root != "" {
		path = filepath.Join(f.Root, path)
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open asset: %w", err)
	}
	defer file.Close()

	img, _, err := Decode(file)
	return img, err
}

// Multi dispatches on the source kind.
type Multi struct {
	Remote Fetcher
	Local  Fetcher
}

// NewFetcher builds the default fetcher for remote URIs and local assets
// under root.
func NewFetcher(root string, timeout time.Duration) Multi {
	return Multi{
		Remote: NewHTTPFetcher(timeout),
		Local:  FileFetcher{Root: root},
	}
}

// Fetch implements Fetcher.
func (m Multi) Fetch(ctx context.Context, src Source) (image.Image, error) {
	switch {
	case !src.Resolvable():
		return nil, ErrUnresolvableSource
	case src.Kind() == KindRemote && m.Remote != nil:
		return m.Remote.Fetch(ctx, src)
	case src.Kind() == KindLocal && m.Local != nil:
		return m.Local.Fetch(ctx, src)
	default:
		return nil, fmt.Errorf("no fetcher for %s: %w", src, ErrUnresolvableSource)
	}
}
