package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logPath    string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:          "blockdraw",
		Short:        "Draw block diagrams in the terminal",
		Long:         `blockdraw is a terminal editor for block diagrams: place blocks, attach input and output ports, draw lines and edit labels with the mouse.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			logFile, err := openLogFile(logPath)
			if err != nil {
				return err
			}
			defer logFile.Close()

			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(logFile, level)
			logger.Info("starting", "version", version, "config", configPath)

			p := tea.NewProgram(
				newModel(config, logger),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run editor: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigPath(), "path to the TOML config file")
	cmd.Flags().StringVar(&logPath, "log-file", "", "log file (default blockdraw.log in the temp dir)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}
