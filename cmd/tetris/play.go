package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	flagWidth    int
	flagHeight   int
	flagFallTime int
	flagNoGhost  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game immediately, skipping the title screen. The program exits
when the game ends.

Controls:
  Left/Right   - Move
  Down         - Soft drop
  Up/Space     - Hard drop
  A/D          - Rotate left/right
  P            - Pause
  X            - Quit
  Ctrl+C       - Exit

Flags override the config file and the saved profile for this game only.

Examples:
  tetris play
  tetris play --width 12 --height 24
  tetris play --fall-time 300 --no-ghost
  tetris play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells")
	playCmd.Flags().IntVar(&flagFallTime, "fall-time", 0, "Milliseconds between fall ticks")
	playCmd.Flags().BoolVar(&flagNoGhost, "no-ghost", false, "Hide the drop projection")
}

func runPlay(cmd *cobra.Command, _ []string) {
	run(true, func(s config.Settings) config.Settings {
		if cmd.Flags().Changed("width") {
			s.Width = flagWidth
		}
		if cmd.Flags().Changed("height") {
			s.Height = flagHeight
		}
		if cmd.Flags().Changed("fall-time") {
			s.FallTime = flagFallTime
		}
		if flagNoGhost {
			s.DropProjection = false
		}
		return s.Normalize()
	})
}
