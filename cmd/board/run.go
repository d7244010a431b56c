package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/project-board/internal/app"
	"github.com/nhle/project-board/internal/journal"
	"github.com/nhle/project-board/internal/store"
)

// runBoard wires the store, journal and UI together and blocks until the
// user quits.
func runBoard() error {
	j, err := journal.Open(cfg.Journal.Path, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := j.Close(); err != nil {
			logger.Warn("closing journal", zap.Error(err))
		}
	}()

	s := store.NewMemoryStore(store.WithLogger(logger))
	s.AddListener(j.Listener())

	m := app.New(s, j, app.Options{
		ShowIDs:      cfg.Display.ShowIDs,
		HistoryLimit: cfg.Journal.HistoryLimit,
		Logger:       logger,
	})

	logger.Info("board started", zap.String("journal", cfg.Journal.Path))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}
