package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/project-board/internal/logging"
	"github.com/nhle/project-board/internal/model"
)

var (
	// Global flags
	configPath string
	debug      bool

	cfg    *model.AppConfig
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "board",
	Short: "Two-column project board for the terminal",
	Long: `board keeps a list of projects split into active and finished columns.

Add projects with n, pick a card up with space, carry it to the other
column with h/l and drop it with space. Every change is written to the
activity journal, which H shows.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = model.LoadConfig(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Log, debug)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoard()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", model.DefaultConfigPath(), "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum events to print (default from config)")
	historyCmd.Flags().StringVar(&historyProject, "project", "", "only print events for this project ID")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd, historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
