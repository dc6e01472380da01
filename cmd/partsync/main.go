package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/partsync/internal/config"
	"github.com/mark3labs/partsync/internal/logger"
	"github.com/mark3labs/partsync/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀█ ▄▀█ █▀█ ▀█▀ █▀ █▄█ █▄ █ █▀▀"
	logoText2 = "█▀▀ █▀█ █▀▄  █  ▄█  █  █ ▀█ █▄▄"
)

// Version set via ldflags during build
var version = "dev"

// cfg is loaded once before any command runs.
var cfg *config.Config

var rootFlags struct {
	backendURL string
	dataDir    string
	logLevel   string
	logFile    string
}

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "partsync",
	Short:             "Find a GPU that fits your build",
	PersistentPreRunE: loadConfig,
	RunE:              runStart,
}

// loadConfig applies flag overrides on top of the file and env config and
// configures the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		c.BackendURL = rootFlags.backendURL
	}
	if flags.Changed("data-dir") {
		c.DataDir = rootFlags.dataDir
	}
	if flags.Changed("log-level") {
		c.LogLevel = rootFlags.logLevel
	}
	if flags.Changed("log-file") {
		c.LogFile = rootFlags.logFile
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logger.Configure(c.LogLevel, c.LogFile); err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	cfg = c
	logger.Debug("config: backend=%s data_dir=%s", c.BackendURL, c.DataDir)
	return nil
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

partsync recommends graphics cards that match your CPU, power supply,
motherboard and budget. Run it without arguments for the full-screen
interface, or use the subcommands from scripts.`

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.backendURL, "backend", config.DefaultBackendURL, "Backend base URL")
	pf.StringVar(&rootFlags.dataDir, "data-dir", ".partsync", "Data directory for the session store and preferences")
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFile, "log-file", "", "Log file (default: discard)")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(cpusCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(devBackendCmd)
}
