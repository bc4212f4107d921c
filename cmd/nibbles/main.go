// nibbles is a terminal remake of the two-player snake game Nibbles.
//
// Usage:
//
//	nibbles list               - List variants and levels
//	nibbles play [variant]     - Play (default variant: nibbles)
//	nibbles replays            - List recorded games
//	nibbles replay <id>        - Watch a recorded game
//	nibbles verify <id>        - Re-simulate a recorded game headless
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set replay database path (default: ~/.nibbles/replays.db)
//	--config <path>     - Custom game config YAML
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/nibbles/internal/games/nibbles"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nibbles",
	Short: "Nibbles - two snakes, nine numbers, one terminal",
	Long: `Nibbles is a terminal remake of the classic snake duel.

Each level holds the numbers 1 to 9. Eat them in order to grow and
score; eating 9 clears the level. Crashing into a wall, a snake or
yourself costs a life.

Available commands:
  list     - Show variants and levels
  play     - Play a game
  replays  - List or browse recorded games
  replay   - Watch a recorded game
  verify   - Re-simulate a recorded game and check its result

Examples:
  nibbles play
  nibbles play nibbles-classic --players 2
  nibbles play --record --difficulty hard
  nibbles replays --browse
  nibbles verify 3f2a91c0`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.nibbles/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(verifyCmd)
}
