package commands

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pawview/pawview/pkg/config"
	"github.com/pawview/pawview/pkg/pets"
)

var (
	configPath   string
	listingsPath string
	cfg          config.Config
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := &cobra.Command{
		Use:          "pawview",
		Short:        "Browse adoptable pets in the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if listingsPath != "" {
				c.Listings = listingsPath
			}
			if err := c.Validate(); err != nil {
				return err
			}
			cfg = c
			return nil
		},
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pawview/config.yaml)")
	root.PersistentFlags().StringVarP(&listingsPath, "listings", "l", "", "pet listings file (.jsonl, .yaml)")

	root.AddCommand(browseCmd(), metricsCmd(), searchCmd(), favoritesCmd(), exportCmd())
	return root.ExecuteContext(ctx)
}

// setupLogging routes the standard logger to the configured file. Without
// one, the TUI discards logs so they cannot tear the alternate screen.
func setupLogging(tui bool) (func(), error) {
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "pawview")
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		return func() { f.Close() }, nil
	}
	if tui {
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}

func loadPets() ([]pets.Pet, error) {
	all, err := pets.LoadFile(cfg.Listings)
	if err != nil {
		return nil, fmt.Errorf("load listings: %w", err)
	}
	return all, nil
}
