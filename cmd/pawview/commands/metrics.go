package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pawview/pawview/pkg/responsive"
)

// sampleSizes are the design sizes shown by the metrics command.
var sampleSizes = []float64{4, 8, 12, 16, 24, 32}

func metricsCmd() *cobra.Command {
	var width, height float64
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print responsive scale values for a window size",
		Long: `Print the scale factors, screen class and breakpoint predicates for a window.

Without --width and --height the current terminal is measured and converted
to logical pixels through the configured cell size.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var p responsive.Provider
			switch {
			case width > 0 && height > 0:
				p = responsive.Static{Width: width, Height: height}
			case width != 0 || height != 0:
				return errors.New("--width and --height must both be positive")
			default:
				p = responsive.NewTerminal(cfg.CellSize())
			}
			m := responsive.New(p, responsive.WithReference(cfg.ReferenceMetrics()))
			return writeMetrics(cmd.OutOrStdout(), m)
		},
	}
	cmd.Flags().Float64Var(&width, "width", 0, "window width in logical pixels")
	cmd.Flags().Float64Var(&height, "height", 0, "window height in logical pixels")
	return cmd
}

func writeMetrics(w io.Writer, m *responsive.Metrics) error {
	win, ref := m.Window(), m.Reference()
	fmt.Fprintf(w, "window     %.0fx%.0f px (reference %.0fx%.0f)\n", win.Width, win.Height, ref.Width, ref.Height)
	fmt.Fprintf(w, "class      %s\n", m.Classify())
	fmt.Fprintf(w, "small      %t\n", m.IsSmall())
	fmt.Fprintf(w, "medium     %t\n", m.IsMedium())
	fmt.Fprintf(w, "large      %t\n", m.IsLarge())
	fmt.Fprintf(w, "tablet     %t\n", m.IsTablet())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%6s %10s %10s %10s %6s %8s\n", "size", "horizontal", "vertical", "moderate", "font", "spacing")
	for _, s := range sampleSizes {
		_, err := fmt.Fprintf(w, "%6.0f %10.2f %10.2f %10.2f %6d %8.2f\n",
			s, m.HorizontalScale(s), m.VerticalScale(s), m.ModerateScale(s), m.FontSize(s), m.Spacing(s))
		if err != nil {
			return err
		}
	}
	return nil
}
