package commands

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pawview/pawview/pkg/favorites"
	"github.com/pawview/pawview/pkg/imageview"
	"github.com/pawview/pawview/pkg/pets"
	"github.com/pawview/pawview/pkg/responsive"
	"github.com/pawview/pawview/pkg/ui"
	"github.com/pawview/pawview/pkg/watcher"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse listings in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(true)
	if err != nil {
		return err
	}
	defer closeLog()

	all, err := loadPets()
	if err != nil {
		return err
	}

	cols, rows := responsive.NewTerminal(cfg.CellSize()).Size()
	live := responsive.NewLive(cols, rows, cfg.CellSize())

	opts := ui.Options{
		Live:    live,
		Metrics: responsive.New(live, responsive.WithReference(cfg.ReferenceMetrics())),
		Fetcher: imageview.NewFetcher(cfg.AssetRoot(), cfg.ImageTimeout),
		Image:   cfg.ImageOptions(),
		Reload: func() ([]pets.Pet, error) {
			return pets.LoadFile(cfg.Listings)
		},
	}

	store, err := favorites.Open(cfg.FavoritesDB)
	if err != nil {
		log.Printf("Warning: favorites disabled: %v", err)
	} else {
		defer store.Close()
		opts.Favorites = store
	}

	w, err := watcher.New(cfg.Listings)
	if err != nil {
		log.Printf("Warning: live reload disabled: %v", err)
	} else {
		defer w.Close()
		opts.Changes = w.Events()
	}

	p := tea.NewProgram(ui.NewModel(all, opts), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
