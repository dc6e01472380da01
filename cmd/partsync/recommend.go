package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/mark3labs/partsync/internal/recommend"
	"github.com/mark3labs/partsync/internal/wizard"
	"github.com/spf13/cobra"
)

var recommendFlags struct {
	cpuID      int
	wattage    string
	connectors []string
	chipset    string
	pcie       string
	budget     string
	strict     bool
	quiet      bool
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Ask for GPU recommendations without the interface",
	Long: `Ask for GPU recommendations without the interface.

The flags go through the same checks as the interactive wizard: a CPU, a
PSU wattage with at least one connector, and a chipset and PCIe version are
required. The budget may be left empty.`,
	Example: `  partsync recommend --cpu-id 1 --psu-wattage 650 --connector 8-pin \
    --chipset B550 --pcie 4.0 --budget 500 --strict`,
	RunE: runRecommend,
}

func init() {
	f := recommendCmd.Flags()
	f.IntVar(&recommendFlags.cpuID, "cpu-id", 0, "CPU id (see partsync cpus)")
	f.StringVar(&recommendFlags.wattage, "psu-wattage", "", "PSU wattage")
	f.StringSliceVar(&recommendFlags.connectors, "connector", nil, "PSU PCIe connector, repeatable (6-pin, 8-pin)")
	f.StringVar(&recommendFlags.chipset, "chipset", "", "Motherboard chipset")
	f.StringVar(&recommendFlags.pcie, "pcie", "", "Motherboard PCIe version")
	f.StringVar(&recommendFlags.budget, "budget", "", "Budget")
	f.BoolVar(&recommendFlags.strict, "strict", false, "Exclude anything over budget")
	f.BoolVarP(&recommendFlags.quiet, "quiet", "q", false, "Do not print tips while waiting")
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	client := newClient()

	cpus, err := client.ListCPUs(ctx)
	if err != nil {
		return fmt.Errorf("loading cpus: %w", err)
	}

	req, err := buildRequest(cpus)
	if err != nil {
		return err
	}

	waitCtx, stop := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if recommendFlags.quiet {
			<-waitCtx.Done()
			return
		}
		recommend.Rotate(waitCtx, cfg.TipInterval, func(tip string) {
			fmt.Fprintln(cmd.ErrOrStderr(), tip)
		})
	}()

	recs := recommend.Request(ctx, client, req)
	stop()
	<-done

	printCards(cmd.OutOrStdout(), recommend.Present(recs))
	return nil
}

// buildRequest drives a wizard controller with the flag values so the CLI
// applies the same step guards as the interface.
func buildRequest(cpus []hardware.CPU) (hardware.RecommendRequest, error) {
	ctrl := wizard.New()
	ctrl.SetCPUs(cpus)

	if recommendFlags.cpuID != 0 {
		if err := ctrl.SelectCPU(recommendFlags.cpuID); err != nil {
			if errors.Is(err, wizard.ErrUnknownCPU) {
				return hardware.RecommendRequest{}, fmt.Errorf("no CPU with id %d (see partsync cpus)", recommendFlags.cpuID)
			}
			return hardware.RecommendRequest{}, err
		}
	}

	ctrl.SetPSUWattage(recommendFlags.wattage)
	conns, err := parseConnectors(recommendFlags.connectors)
	if err != nil {
		return hardware.RecommendRequest{}, err
	}
	for _, c := range conns {
		ctrl.ToggleConnector(c)
	}
	ctrl.SetChipset(recommendFlags.chipset)
	ctrl.SetPCIeVersion(recommendFlags.pcie)
	ctrl.SetBudget(recommendFlags.budget)
	ctrl.SetStrict(recommendFlags.strict)

	for ctrl.Step() < wizard.LastInputStep {
		if err := ctrl.Advance(); err != nil {
			return hardware.RecommendRequest{}, err
		}
	}
	return ctrl.Submit()
}

// parseConnectors validates and de-duplicates connector names.
func parseConnectors(names []string) ([]hardware.Connector, error) {
	var out []hardware.Connector
	for _, name := range names {
		c := hardware.Connector(strings.ToLower(strings.TrimSpace(name)))
		if !slices.Contains(hardware.Connectors, c) {
			return nil, fmt.Errorf("unknown connector %q (want 6-pin or 8-pin)", name)
		}
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out, nil
}
