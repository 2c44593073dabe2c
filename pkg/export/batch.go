package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pawview/pawview/pkg/pets"
)

// MaxConcurrentCards limits cards rendered at once; each may fetch a photo.
const MaxConcurrentCards = 4

// FileName is the card file name for a pet.
func FileName(p pets.Pet, f Format) string {
	id := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, p.ID)
	return id + "." + string(f)
}

// fileNames returns FileName for each pet, suffixing repeats with -2, -3 ...
// so no two cards share a path. Names compare case-insensitively for
// filesystems that fold case.
func fileNames(all []pets.Pet, f Format) []string {
	names := make([]string, len(all))
	used := make(map[string]bool, len(all))
	ext := "." + string(f)
	for i, p := range all {
		name := FileName(p, f)
		base := strings.TrimSuffix(name, ext)
		for n := 2; used[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s-%d%s", base, n, ext)
		}
		used[strings.ToLower(name)] = true
		names[i] = name
	}
	return names
}

// All renders a card per pet into dir and returns the written paths in pet
// order. The first failure cancels the remaining cards.
func (r *Renderer) All(ctx context.Context, all []pets.Pet, dir string, f Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	names := fileNames(all, f)
	paths := make([]string, len(all))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentCards)

	for i, p := range all {
		i, p := i, p
		g.Go(func() error {
			path := filepath.Join(dir, names[i])
			if err := r.writeFile(ctx, path, p, f); err != nil {
				return fmt.Errorf("export %s: %w", p.ID, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func (r *Renderer) writeFile(ctx context.Context, path string, p pets.Pet, f Format) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Write(ctx, file, p, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
