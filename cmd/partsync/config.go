package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/partsync/internal/config"
	"github.com/spf13/cobra"
)

var configFlags struct {
	global bool
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a configuration value",
	Long: `Write a configuration value to partsync.yml in the current directory,
or to the global config file with --global.

Keys: backend_url, data_dir, log_level, log_file, tip_interval, theme`,
	Example: `  partsync config set backend_url https://parts.example.com
  partsync config set tip_interval 4s --global`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configSetCmd.Flags().BoolVar(&configFlags.global, "global", false, "Write the global config file")
	configCmd.AddCommand(configShowCmd, configSetCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	rows := [][]string{
		{"backend_url", cfg.BackendURL},
		{"data_dir", cfg.DataDir},
		{"log_level", cfg.LogLevel},
		{"log_file", cfg.LogFile},
		{"tip_interval", cfg.TipInterval.String()},
		{"theme", cfg.Theme},
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable([]string{"Key", "Value"}, rows))
	fmt.Fprintf(out, "global:  %s%s\n", config.GlobalPath(), existsNote(config.GlobalPath()))
	fmt.Fprintf(out, "project: %s%s\n", config.ProjectPath(), existsNote(config.ProjectPath()))
	return nil
}

func existsNote(path string) string {
	if _, err := os.Stat(path); err == nil {
		return ""
	}
	return " (not present)"
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	// Start from the loaded values so the written file is complete.
	next := *cfg
	key, value := args[0], args[1]
	switch key {
	case "backend_url":
		next.BackendURL = value
	case "data_dir":
		next.DataDir = value
	case "log_level":
		next.LogLevel = value
	case "log_file":
		next.LogFile = value
	case "tip_interval":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("tip_interval: %w", err)
		}
		next.TipInterval = d
	case "theme":
		next.Theme = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := next.Validate(); err != nil {
		return err
	}

	write, path := config.WriteProject, config.ProjectPath()
	if configFlags.global {
		write, path = config.WriteGlobal, config.GlobalPath()
	}
	if err := write(&next); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s.\n", key, path)
	return nil
}
