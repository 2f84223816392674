package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubble-math/internal/core"
	"github.com/vovakirdan/bubble-math/internal/games/bubblemath"
	"github.com/vovakirdan/bubble-math/internal/platform/tui"
	"github.com/vovakirdan/bubble-math/internal/registry"
	"github.com/vovakirdan/bubble-math/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a session",
	Long: `Start a Bubble Math session. Mode is "classic" (default) or "blitz".

Controls:
  Mouse click  - Pop a bubble
  1-9          - Pop a bubble by its number
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty tiers:
  easy   - Small operands, 3 bubbles, no round timer
  normal - Medium operands, 4 bubbles
  hard   - Large operands, 6 bubbles, tight round timer

Examples:
  bubblemath play
  bubblemath play blitz
  bubblemath play --difficulty hard
  bubblemath play --config ./my-config.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty tier: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "bubblemath"
	if len(args) > 0 {
		switch args[0] {
		case "classic", "bubblemath":
			gameID = "bubblemath"
		case "blitz", "bubblemath_blitz":
			gameID = "bubblemath_blitz"
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'bubblemath list' to see available modes.")
			os.Exit(1)
		}
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	bubblemath.SetConfigPath(flagConfig)
	bubblemath.SetDifficultyTier(flagDifficulty)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
