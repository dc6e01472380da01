package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mark3labs/partsync/internal/admin"
	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/spf13/cobra"
)

var errNotLoggedIn = errors.New("not logged in, run partsync admin login")

var adminFlags struct {
	email    string
	password string
	code     string
	set      []string
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the hardware catalog",
}

var adminLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email, password and a one-time code",
	Long: `Log in with email, password and a one-time code.

Missing values are read from standard input. The session is kept encrypted
in the data directory until "partsync admin logout".`,
	RunE: runAdminLogin,
}

var adminStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored admin session",
	RunE:  runAdminStatus,
}

var adminLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored admin session",
	RunE:  runAdminLogout,
}

var adminListCmd = &cobra.Command{
	Use:       "list <cpu|psu|motherboard|gpu>",
	Short:     "List catalog items of a hardware type",
	Args:      cobra.ExactArgs(1),
	ValidArgs: kindNames(),
	RunE:      runAdminList,
}

var adminAddCmd = &cobra.Command{
	Use:   "add <cpu|psu|motherboard|gpu> --set field=value...",
	Short: "Add a catalog item",
	Long: `Add a catalog item.

Fields per type:
  cpu          name, brand, model, cores, threads, tdp, performance_score
  psu          wattage, connector_6_pin, connector_8_pin, connector_12_pin
  motherboard  name, chipset, pcie_version
  gpu          name, brand, vram, tdp, pcie_version, performance_score, price`,
	Example:   `  partsync admin add gpu --set name="RTX 4070" --set brand=NVIDIA --set vram=12`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: kindNames(),
	RunE:      runAdminAdd,
}

func init() {
	adminLoginCmd.Flags().StringVar(&adminFlags.email, "email", "", "Admin email")
	adminLoginCmd.Flags().StringVar(&adminFlags.password, "password", "", "Admin password")
	adminLoginCmd.Flags().StringVar(&adminFlags.code, "code", "", "One-time code")
	adminAddCmd.Flags().StringArrayVar(&adminFlags.set, "set", nil, "Field value as name=value, repeatable")

	adminCmd.AddCommand(adminLoginCmd, adminStatusCmd, adminLogoutCmd, adminListCmd, adminAddCmd)
}

func kindNames() []string {
	names := make([]string, 0, len(hardware.Kinds))
	for _, k := range hardware.Kinds {
		names = append(names, k.String())
	}
	return names
}

// withGate opens the session store and runs fn with a gate over it.
func withGate(ctx context.Context, fn func(*admin.Gate, admin.SessionStore) error) error {
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sessions := admin.NewSessionStore(store)
	return fn(admin.NewGate(newClient(), sessions), sessions)
}

func runAdminLogin(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	return withGate(ctx, func(gate *admin.Gate, _ admin.SessionStore) error {
		if gate.Open(ctx) == admin.Authenticated {
			fmt.Fprintf(out, "Already logged in as %s.\n", gate.Email())
			return nil
		}

		email, err := valueOrPrompt(in, out, adminFlags.email, "Email: ")
		if err != nil {
			return err
		}
		password, err := valueOrPrompt(in, out, adminFlags.password, "Password: ")
		if err != nil {
			return err
		}
		if err := gate.SubmitCredentials(ctx, email, password); err != nil {
			return err
		}

		code, err := valueOrPrompt(in, out, adminFlags.code, fmt.Sprintf("%d-digit code: ", admin.CodeLength))
		if err != nil {
			return err
		}
		if err := gate.SubmitCode(ctx, code); err != nil {
			return err
		}
		fmt.Fprintf(out, "Logged in as %s.\n", gate.Email())
		return nil
	})
}

func valueOrPrompt(in *bufio.Reader, out io.Writer, value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func runAdminStatus(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	return withGate(ctx, func(_ *admin.Gate, sessions admin.SessionStore) error {
		sess, err := sessions.Load(ctx)
		if err != nil {
			return err
		}
		if !sess.Valid() {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", sess.Email)
		return nil
	})
}

func runAdminLogout(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	return withGate(ctx, func(gate *admin.Gate, _ admin.SessionStore) error {
		if err := gate.Logout(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	})
}

// requireSession fails unless an admin session is stored.
func requireSession(ctx context.Context) error {
	return withGate(ctx, func(gate *admin.Gate, _ admin.SessionStore) error {
		if gate.Open(ctx) != admin.Authenticated {
			return errNotLoggedIn
		}
		return nil
	})
}

func runAdminList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	kind, err := hardware.ParseKind(args[0])
	if err != nil {
		return err
	}
	if err := requireSession(ctx); err != nil {
		return err
	}

	items, err := newClient().ListCatalog(ctx, kind)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintf(out, "No %s items.\n", kind)
		return nil
	}

	headers := append([]string{"id"}, kind.Fields()...)
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, len(headers))
		for i, h := range headers {
			if v, ok := item[h]; ok && v != nil {
				row[i] = fmt.Sprint(v)
			}
		}
		rows = append(rows, row)
	}
	fmt.Fprintln(out, renderTable(headers, rows))
	return nil
}

func runAdminAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	kind, err := hardware.ParseKind(args[0])
	if err != nil {
		return err
	}
	fields, err := parseFields(kind, adminFlags.set)
	if err != nil {
		return err
	}
	if err := requireSession(ctx); err != nil {
		return err
	}

	msg, err := newClient().AddCatalogItem(ctx, kind, fields)
	if err != nil {
		return err
	}
	if msg == "" {
		msg = "Item added."
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

// parseFields turns name=value pairs into a form, rejecting names outside
// the kind's field table.
func parseFields(kind hardware.Kind, pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q, want name=value", p)
		}
		if !kind.HasField(name) {
			valid := kind.Fields()
			sort.Strings(valid)
			return nil, fmt.Errorf("%s has no field %q (valid: %s)", kind, name, strings.Join(valid, ", "))
		}
		fields[name] = strings.TrimSpace(value)
	}
	return fields, nil
}

