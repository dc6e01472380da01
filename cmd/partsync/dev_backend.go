package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/partsync/internal/devbackend"
	"github.com/mark3labs/partsync/internal/logger"
	"github.com/spf13/cobra"
)

var devBackendFlags struct {
	addr     string
	db       string
	email    string
	password string
	otp      string
}

var devBackendCmd = &cobra.Command{
	Use:   "dev-backend",
	Short: "Serve a local development backend",
	Long: `Serve a local development backend.

The server implements every endpoint the client uses over a SQLite catalog
seeded with sample hardware. Admin login accepts a fixed account and
one-time code. It is meant for trying the client, not for production.`,
	RunE: runDevBackend,
}

func init() {
	f := devBackendCmd.Flags()
	f.StringVar(&devBackendFlags.addr, "addr", ":5000", "Listen address")
	f.StringVar(&devBackendFlags.db, "db", "partsync-dev.db", "SQLite database file (:memory: for a throwaway catalog)")
	f.StringVar(&devBackendFlags.email, "admin-email", devbackend.DefaultAdminEmail, "Accepted admin email")
	f.StringVar(&devBackendFlags.password, "admin-password", devbackend.DefaultAdminPassword, "Accepted admin password")
	f.StringVar(&devBackendFlags.otp, "otp", devbackend.DefaultOTP, "Accepted one-time code")
}

func runDevBackend(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := devbackend.OpenCatalog(devBackendFlags.db)
	if err != nil {
		return err
	}
	defer func() { _ = catalog.Close() }()
	if err := catalog.Seed(); err != nil {
		return err
	}

	srv := devbackend.NewServer(catalog, devbackend.Options{
		AdminEmail:    devBackendFlags.email,
		AdminPassword: devBackendFlags.password,
		OTP:           devBackendFlags.otp,
	})
	httpSrv := &http.Server{
		Addr:              devBackendFlags.addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("dev-backend: listening on %s", devBackendFlags.addr)
		errCh <- httpSrv.ListenAndServe()
	}()
	fmt.Fprintf(cmd.OutOrStdout(), "Dev backend listening on %s (admin %s, code %s)\n",
		devBackendFlags.addr, devBackendFlags.email, devBackendFlags.otp)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("dev backend: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down dev backend: %w", err)
	}
	logger.Info("dev-backend: stopped")
	return nil
}
