package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nibbles/internal/config"
	"github.com/vovakirdan/nibbles/internal/core"
	"github.com/vovakirdan/nibbles/internal/games/nibbles"
	"github.com/vovakirdan/nibbles/internal/games/nibbles/levels"
	"github.com/vovakirdan/nibbles/internal/platform/tui"
	"github.com/vovakirdan/nibbles/internal/registry"
	"github.com/vovakirdan/nibbles/internal/replay"
	"github.com/vovakirdan/nibbles/internal/storage"
)

var (
	flagPlayers    int
	flagRecord     bool
	flagDifficulty string
	flagSpeed      int
	flagLevel      int
	flagSelect     bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing. The default variant is "nibbles"; "nibbles-classic"
moves whole cells per tick and has no spinner steering.

Controls:
  1 / 2          - Start a one or two player game
  Player 1       - Arrows, Enter (A), / (B), [ ] or mouse wheel to spin
  Player 2       - W A S D, F (A), G (B), Z X to spin
  P/Esc          - Pause
  Q/Ctrl+C       - Quit

Difficulty options:
  easy, normal, hard, insane - starting speed, rising with each level
  fixed                      - keep the configured speed on every level

Examples:
  nibbles play
  nibbles play --players 2
  nibbles play nibbles-classic --difficulty hard
  nibbles play --record --seed 42
  nibbles play --select
  nibbles play --config ./my-nibbles.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlayers, "players", 0, "Start a 1 or 2 player game right away (0 = title screen)")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the game to the replay database")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, insane, fixed")
	playCmd.Flags().IntVar(&flagSpeed, "speed", -1, "Starting speed 0-99 (overrides config and difficulty)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start on (1-based)")
	playCmd.Flags().BoolVar(&flagSelect, "select", false, "Pick the variant and starting level from a menu")
}

func runPlay(cmd *cobra.Command, args []string) {
	variant := nibbles.VariantNibbles
	if len(args) > 0 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'nibbles list' to see available variants.")
		os.Exit(1)
	}
	if flagPlayers < 0 || flagPlayers > core.MaxPlayers {
		fail("--players must be between 0 and %d", core.MaxPlayers)
	}

	logger, closeLog, err := setupLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fail("%v", err)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagSpeed >= 0 {
		cfg.Speed = min(flagSpeed, 99)
	}

	width, height := terminalSize()
	if flagSelect {
		table, _, _ := levels.Table(cfg.LevelsDir, nibbles.GridW, nibbles.GridH)
		names := make([]string, len(table))
		for i, l := range table {
			names[i] = l.Name
		}
		sel, err := tui.RunSelector(names, width, height)
		if err != nil {
			fail("%v", err)
		}
		if sel == nil {
			return
		}
		variant, flagLevel = sel.Variant, sel.Level
	}
	nibbles.SetConfig(cfg)
	nibbles.SetStartLevel(flagLevel)

	game, err := registry.Create(variant)
	if err != nil {
		fail("creating game: %v", err)
	}

	// Resolve the seed here so a recording knows it.
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Speed:   cfg.Speed,
		Seed:    seed,
	}

	opts := tui.Options{Players: flagPlayers}
	var store *storage.Store
	if flagRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fail("could not open replay database: %v", err)
		}
		defer store.Close()

		settings, err := config.Marshal(cfg)
		if err != nil {
			fail("%v", err)
		}
		opts.Recorder = replay.NewRecorder(variant, rc, flagPlayers, flagLevel, string(settings))
	}

	logger.Info("starting", "variant", variant, "seed", rc.Seed, "speed", rc.Speed, "record", flagRecord)
	if _, err := tui.Run(game, rc, opts); err != nil {
		fail("running game: %v", err)
	}

	if opts.Recorder == nil || opts.Recorder.Len() == 0 {
		return
	}
	rec := opts.Recorder.Finish(game)
	if n, ok := game.(*nibbles.Game); ok && len(n.Session().Snakes) > 0 {
		rec.Players = len(n.Session().Snakes)
	}
	id, err := store.SaveReplay(rec)
	if err != nil {
		fail("saving replay: %v", err)
	}
	logger.Info("replay saved", "id", id, "ticks", opts.Recorder.Len())
	fmt.Printf("Replay saved: %s (%d ticks)\n", id, opts.Recorder.Len())
}
