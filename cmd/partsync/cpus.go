package main

import (
	"fmt"
	"strconv"

	"github.com/mark3labs/partsync/internal/wizard"
	"github.com/spf13/cobra"
)

var cpusFlags struct {
	search string
}

var cpusCmd = &cobra.Command{
	Use:   "cpus",
	Short: "List the CPUs known to the backend",
	Long: `List the CPUs known to the backend.

--search narrows the list to CPUs whose name or brand contains the text,
ignoring case. Use the ID column with "partsync recommend --cpu-id".`,
	RunE: runCPUs,
}

func init() {
	cpusCmd.Flags().StringVarP(&cpusFlags.search, "search", "s", "", "Filter by name or brand")
}

func runCPUs(cmd *cobra.Command, _ []string) error {
	cpus, err := newClient().ListCPUs(cmd.Context())
	if err != nil {
		return err
	}

	ctrl := wizard.New()
	ctrl.SetCPUs(cpus)
	matches := ctrl.Filter(cpusFlags.search)

	out := cmd.OutOrStdout()
	if len(matches) == 0 {
		fmt.Fprintln(out, "No CPUs match.")
		return nil
	}

	rows := make([][]string, 0, len(matches))
	for _, c := range matches {
		rows = append(rows, []string{strconv.Itoa(c.ID), c.Name, c.Brand, c.Cores.String(), c.TDP.String()})
	}
	fmt.Fprintln(out, renderTable([]string{"ID", "Name", "Brand", "Cores", "TDP (W)"}, rows))
	return nil
}
