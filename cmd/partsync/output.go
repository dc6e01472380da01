package main

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mark3labs/partsync/internal/recommend"
	"github.com/mark3labs/partsync/internal/tui/theme"
)

// renderTable formats rows with a header using the active theme.
func renderTable(headers []string, rows [][]string) string {
	t := theme.Current()
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Primary)).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)).Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

// printCards writes the presented recommendations as plain text.
func printCards(w io.Writer, cards []recommend.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No recommendations found.")
		return
	}
	for i, c := range cards {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s: %s\n", c.Label, c.Name)
		fmt.Fprintf(w, "  VRAM %s GB • TDP %s W • Performance %s • Price %s\n", c.VRAM, c.TDP, c.Score, c.Price)
		if c.Image != "" {
			fmt.Fprintf(w, "  Image: %s\n", c.Image)
		}
		if len(c.Badges) > 0 {
			tags := make([]string, 0, len(c.Badges))
			for _, b := range c.Badges {
				tags = append(tags, "["+b.Text+"]")
			}
			fmt.Fprintf(w, "  %s\n", strings.Join(tags, " "))
		}
	}
}
