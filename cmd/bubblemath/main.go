// bubblemath is a terminal arithmetic arcade game: solve the equation by
// popping the bubble that carries the correct answer before it floats away.
//
// Usage:
//
//	bubblemath play [mode]       - Play (classic by default, or blitz)
//	bubblemath list              - List available modes
//	bubblemath serve             - Start SSH server for remote play
//	bubblemath scores [mode]     - Show high scores
//	bubblemath board             - Interactive scoreboard
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.bubblemath/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/bubble-math/internal/games/bubblemath"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bubblemath",
	Short: "Bubble Math - pop the right answer before it floats away",
	Long: `Bubble Math is a terminal arcade game. Each round shows an arithmetic
equation; answer bubbles drift up the screen, and you pop the one carrying
the correct answer before it escapes off the top.

Available commands:
  play     - Play a session (classic or blitz)
  list     - Show available modes
  serve    - Start SSH server for remote play
  scores   - View high scores
  board    - Interactive scoreboard

Examples:
  bubblemath play
  bubblemath play blitz --difficulty hard
  bubblemath serve --ssh :2222
  bubblemath scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bubblemath/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
}
