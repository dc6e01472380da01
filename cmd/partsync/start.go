package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/partsync/internal/admin"
	"github.com/mark3labs/partsync/internal/api"
	"github.com/mark3labs/partsync/internal/securestore"
	"github.com/mark3labs/partsync/internal/state"
	"github.com/mark3labs/partsync/internal/tui"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the full-screen interface",
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return tui.Run(ctx, tui.Options{
		Backend:     newClient(),
		Sessions:    admin.NewSessionStore(store),
		State:       state.NewApp(cfg.DataDir, cfg.Theme),
		TipInterval: cfg.TipInterval,
	})
}

func newClient() *api.Client {
	return api.New(cfg.BackendURL)
}

func openStore(ctx context.Context) (*securestore.Store, error) {
	store, err := securestore.Open(ctx, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	return store, nil
}
