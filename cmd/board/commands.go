package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhle/project-board/internal/journal"
	"github.com/nhle/project-board/internal/model"
	"github.com/nhle/project-board/internal/ui/history"
)

const inMemoryJournal = ":memory:"

var (
	historyLimit   int
	historyProject string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the board configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config already exists at %s", configPath)
		}
		if err := model.SaveConfig(configPath, model.DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recent activity from the journal",
	Long: `history prints journal events newest first. journal.path must point
at a file; the default in-memory journal only lives as long as the board.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Journal.Path == inMemoryJournal {
			return fmt.Errorf("journal.path is %q, nothing is kept between runs; set journal.path in %s to a file", inMemoryJournal, configPath)
		}
		j, err := journal.Open(cfg.Journal.Path, logger)
		if err != nil {
			return err
		}
		defer j.Close()

		events, err := loadHistory(cmd.Context(), j)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No activity yet.")
			return nil
		}
		for _, e := range events {
			fmt.Fprintln(out, history.FormatEvent(e))
		}
		return nil
	},
}

func loadHistory(ctx context.Context, j *journal.Journal) ([]model.ChangeEvent, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if historyProject != "" {
		return j.ForProject(ctx, historyProject)
	}
	limit := historyLimit
	if limit <= 0 {
		limit = cfg.Journal.HistoryLimit
	}
	return j.Recent(ctx, limit)
}
