package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawview/pawview/pkg/export"
	"github.com/pawview/pawview/pkg/imageview"
	"github.com/pawview/pawview/pkg/pets"
	"github.com/pawview/pawview/pkg/responsive"
)

func exportCmd() *cobra.Command {
	var (
		format string
		out    string
		width  float64
		height float64
		ids    []string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render share cards for listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if width <= 0 || height <= 0 {
				return fmt.Errorf("device size must be positive, got %vx%v", width, height)
			}

			all, err := loadPets()
			if err != nil {
				return err
			}
			selected := selectPets(all, ids)
			if len(selected) == 0 {
				return fmt.Errorf("no listings to export")
			}

			r := &export.Renderer{
				Metrics:  responsive.New(responsive.Static{Width: width, Height: height}, responsive.WithReference(cfg.ReferenceMetrics())),
				Fetcher:  imageview.NewFetcher(cfg.AssetRoot(), cfg.ImageTimeout),
				FontPath: cfg.FontPath,
			}
			paths, err := r.All(cmd.Context(), selected, out, f)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cards to %s\n", len(paths), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatPNG), "card format: png or svg")
	cmd.Flags().StringVarP(&out, "out", "o", "cards", "output directory")
	cmd.Flags().Float64Var(&width, "width", responsive.DefaultReference.Width, "target device width in logical pixels")
	cmd.Flags().Float64Var(&height, "height", responsive.DefaultReference.Height, "target device height in logical pixels")
	cmd.Flags().StringSliceVar(&ids, "id", nil, "only export these pet IDs")
	return cmd
}

// selectPets keeps the listings named by ids, in listing order. No ids
// selects everything.
func selectPets(all []pets.Pet, ids []string) []pets.Pet {
	if len(ids) == 0 {
		return all
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []pets.Pet
	for _, p := range all {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out
}
