// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Start at the title screen
//	tetris play              - Start a game immediately
//	tetris serve             - Start SSH server for remote play
//	tetris config            - Print the effective settings
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for a reproducible piece sequence
//	--db <path>        - Set database path (default: ~/.tetris/settings.db)
//	--config <path>    - Use a custom settings YAML
//	--profile <name>   - Settings profile saved from the menu
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagProfile string
	flagLogFile string
	flagDebug   bool
	flagMono    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - Stack falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle. Move and rotate the falling
piece, complete rows to clear them, and keep the stack out of the top rows.

Available commands:
  play     - Start a game directly
  serve    - Start SSH server for remote play
  config   - Print the effective settings

Examples:
  tetris
  tetris play --width 12 --fall-time 500
  tetris serve --ssh :2222
  tetris config --profiles`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagMono {
			tui.SetTheme(tui.MonochromeTheme())
		}
	},
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/settings.db", "Path to settings database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "default", "Settings profile to load and save")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug events")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Use the monochrome menu theme")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	run(false, nil)
}
