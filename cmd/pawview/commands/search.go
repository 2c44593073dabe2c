package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/pawview/pawview/pkg/pets"
)

const nameColumnWidth = 16

func searchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search listings by name, breed, species or location",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := loadPets()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			results := pets.Search(query, all)
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}
			writeResults(cmd.OutOrStdout(), query, results)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum results (0 for all)")
	return cmd
}

func writeResults(w io.Writer, query string, results []pets.Pet) {
	if len(results) == 0 {
		fmt.Fprintf(w, "No pets match %q\n", query)
		return
	}
	for _, p := range results {
		name := runewidth.Truncate(p.Name, nameColumnWidth, "…")
		fmt.Fprintf(w, "%s  %s  %s\n", runewidth.FillRight(name, nameColumnWidth), p.Summary(), p.ID)
	}
}
