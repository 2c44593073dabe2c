package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pawview/pawview/pkg/favorites"
)

func favoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"favs"},
		Short:   "List or clear starred pets",
	}
	cmd.AddCommand(favoritesListCmd(), favoritesClearCmd())
	return cmd
}

func favoritesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List starred pets, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := favorites.Open(cfg.FavoritesDB)
			if err != nil {
				return err
			}
			defer store.Close()

			favs, err := store.List()
			if err != nil {
				return err
			}
			writeFavorites(cmd.OutOrStdout(), favs)
			return nil
		},
	}
}

func writeFavorites(w io.Writer, favs []favorites.Favorite) {
	if len(favs) == 0 {
		fmt.Fprintln(w, "No favorites yet. Press f in the browser to star a pet.")
		return
	}
	for _, f := range favs {
		fmt.Fprintf(w, "★ %s (%s) starred %s\n", f.Name, f.PetID, humanize.Time(f.CreatedAt))
		if f.Note != "" {
			fmt.Fprintf(w, "    %s\n", f.Note)
		}
	}
}

func favoritesClearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every favorite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := favorites.Open(cfg.FavoritesDB)
			if err != nil {
				return err
			}
			defer store.Close()

			if !yes {
				favs, err := store.List()
				if err != nil {
					return err
				}
				if len(favs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No favorites to clear.")
					return nil
				}
				err = huh.NewConfirm().
					Title(fmt.Sprintf("Remove all %d favorites?", len(favs))).
					Affirmative("Remove").
					Negative("Keep").
					Value(&yes).
					Run()
				if err != nil {
					return err
				}
				if !yes {
					fmt.Fprintln(cmd.OutOrStdout(), "Kept favorites.")
					return nil
				}
			}

			n, err := store.Clear()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d favorites.\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}
