package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagListProfiles bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings the next game would use, as YAML. The config file is
read first and the saved profile overrides it.

Examples:
  tetris config
  tetris config --profile alice
  tetris config --config ./my-tetris.yaml > tetris.yaml
  tetris config --profiles`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagListProfiles, "profiles", false, "List the saved settings profiles")
}

func runConfig(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if flagListProfiles {
		listProfiles(store)
		return
	}

	data, err := config.Marshal(config.Config{Game: resolveSettings(store)})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

func listProfiles(store *storage.Store) {
	if store == nil {
		fmt.Println("No settings database.")
		return
	}

	profiles, err := store.Profiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving profiles: %v\n", err)
		return
	}
	if len(profiles) == 0 {
		fmt.Println("No saved profiles yet.")
		return
	}

	// Print header
	fmt.Printf("  %-12s  %-6s  %-6s  %-9s  %-5s  %s\n", "Profile", "Width", "Height", "Fall (ms)", "Ghost", "Updated")
	fmt.Printf("  %-12s  %-6s  %-6s  %-9s  %-5s  %s\n", "-------", "-----", "------", "---------", "-----", "-------")

	for _, p := range profiles {
		fmt.Printf("  %-12s  %-6d  %-6d  %-9d  %-5t  %s\n",
			p.Name, p.Settings.Width, p.Settings.Height, p.Settings.FallTime,
			p.Settings.DropProjection, p.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
