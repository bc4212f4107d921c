package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
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
	flagBrowse bool
	flagLimit  int
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded games",
	Long: `Lists the newest recorded games. With --browse, opens an interactive
browser to play or delete them.

Examples:
  nibbles replays
  nibbles replays --limit 50
  nibbles replays --browse`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Watch a recorded game",
	Long: `Plays a recorded game in the terminal at its original speed.
The ID may be abbreviated to any unique prefix.`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

var verifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Re-simulate a recorded game",
	Long: `Re-runs a recorded game without a terminal and checks that it ends
in exactly the recorded state.`,
	Args: cobra.ExactArgs(1),
	Run:  runVerify,
}

func init() {
	replaysCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive replay browser")
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of replays to list")
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("could not open replay database: %v", err)
	}
	return store
}

func runReplays(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if flagBrowse {
		width, height := terminalSize()
		id, err := tui.RunBrowser(store, width, height)
		if err != nil {
			fail("%v", err)
		}
		if id != "" {
			watch(store, id)
		}
		return
	}

	list, err := store.RecentReplays(flagLimit)
	if err != nil {
		fail("%v", err)
	}
	if len(list) == 0 {
		fmt.Println("No replays recorded yet. Play with --record to keep one.")
		return
	}

	fmt.Printf("  %-36s  %-16s  %7s  %8s  %s\n", "ID", "Variant", "Players", "Ticks", "Date")
	for _, r := range list {
		fmt.Printf("  %-36s  %-16s  %7d  %8d  %s\n",
			r.ID, r.Variant, r.Players, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runReplay(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()
	watch(store, args[0])
}

// watch plays a stored replay in the terminal.
func watch(store *storage.Store, id string) {
	logger, closeLog, err := setupLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	r := loadReplay(store, id)
	game, _ := prepare(logger, r)

	width, height := terminalSize()
	rc := core.RuntimeConfig{ScreenW: width, ScreenH: height}
	if _, err := tui.Run(game, rc, tui.Options{Replay: r}); err != nil {
		fail("running replay: %v", err)
	}
}

func runVerify(cmd *cobra.Command, args []string) {
	logger, closeLog, err := setupLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store := openStore()
	defer store.Close()

	r := loadReplay(store, args[0])
	game, custom := prepare(logger, r)
	res := replay.Simulate(game, r, nibbles.ScreenW, nibbles.ScreenH)

	fmt.Printf("Replay:      %s (%s, seed %d)\n", r.ID, r.Variant, r.Seed)
	fmt.Printf("Ticks:       %d\n", res.Ticks)
	fmt.Printf("Score:       %d\n", res.State.Score)
	if n, ok := game.(*nibbles.Game); ok {
		snap := n.Snapshot()
		fmt.Printf("Phase:       %s (level %d, collectable %d)\n", snap.Phase, snap.Level, snap.Index)
		for i, s := range snap.Snakes {
			fmt.Printf("Player %d:    score %d, lives %d, length %d\n", i+1, s.Score, s.Lives, s.Length)
		}
	}
	fmt.Printf("Fingerprint: %016x (recorded %016x)\n", res.Fingerprint, r.FieldHash)

	if !res.Verified {
		fmt.Fprintln(os.Stderr, "Replay diverged from the recording.")
		if hint := divergenceHint(custom); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
	fmt.Println("OK")
}

func loadReplay(store *storage.Store, id string) *storage.Replay {
	r, err := store.Replay(id)
	if errors.Is(err, storage.ErrReplayNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no replay %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'nibbles replays' to see recorded games.")
		os.Exit(1)
	}
	if err != nil {
		fail("%v", err)
	}
	return r
}

// prepare installs the replay's recorded configuration and creates its game.
// It returns the levels loaded from files, which the replay does not store.
func prepare(logger *log.Logger, r *storage.Replay) (registry.Game, []levels.Level) {
	cfg := config.DefaultNibblesConfig()
	if r.Config != "" {
		var err error
		cfg, err = config.ParseNibbles([]byte(r.Config))
		if err != nil {
			fail("replay %s has an unreadable config: %v", r.ID, err)
		}
		nibbles.SetConfig(cfg)
	}
	nibbles.SetStartLevel(r.StartLevel)

	game, err := registry.Create(r.Variant)
	if err != nil {
		fail("replay %s: %v", r.ID, err)
	}

	table, _, err := levels.Table(cfg.LevelsDir, nibbles.GridW, nibbles.GridH)
	if err != nil {
		logger.Warn("cannot load replay levels", "dir", cfg.LevelsDir, "err", err)
	}
	custom := customLevels(table)
	ids := make([]string, len(table))
	for i, l := range table {
		ids[i] = l.ID
	}
	logger.Info("replay loaded", "id", r.ID, "variant", r.Variant, "ticks", len(r.Frames),
		"levels", strings.Join(ids, ","), "levels_dir", cfg.LevelsDir)
	return game, custom
}

// customLevels returns the levels of table that came from files.
func customLevels(table []levels.Level) []levels.Level {
	var out []levels.Level
	for _, l := range table {
		if l.FilePath != "" {
			out = append(out, l)
		}
	}
	return out
}

// divergenceHint names the level files a diverged replay was simulated
// with, or "" when it used only built-in levels.
func divergenceHint(custom []levels.Level) string {
	if len(custom) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("The replay used these level files, which are read from disk and may have changed since recording:")
	for _, l := range custom {
		fmt.Fprintf(&b, "\n  %s (%s)", l.ID, l.FilePath)
	}
	return b.String()
}
