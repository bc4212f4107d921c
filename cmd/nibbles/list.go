package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nibbles/internal/games/nibbles"
	"github.com/vovakirdan/nibbles/internal/games/nibbles/levels"
	"github.com/vovakirdan/nibbles/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List variants and levels",
	Long: `Shows the registered game variants and the level table, including
levels loaded from the configured levels_dir.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	logger, closeLog, err := setupLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}

	games := registry.List()
	fmt.Println("Variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	table, skipped, err := levels.Table(cfg.LevelsDir, nibbles.GridW, nibbles.GridH)
	if err != nil {
		logger.Warn("cannot load levels", "dir", cfg.LevelsDir, "err", err)
	}
	for _, e := range skipped {
		logger.Warn("level skipped", "err", e)
	}

	fmt.Println()
	fmt.Println("Levels:")
	fmt.Println()
	for i, l := range table {
		source := "built-in"
		if l.FilePath != "" {
			source = l.FilePath
		}
		fmt.Printf("  %2d  %-16s  %-20s  %s\n", i+1, l.ID, l.Name, source)
	}

	fmt.Println()
	fmt.Println("Run 'nibbles play <variant>' to play.")
}
