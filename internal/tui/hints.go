// Package tui implements the full-screen PartSync terminal interface.
package tui

import (
	"strings"

	"github.com/mark3labs/partsync/internal/tui/theme"
)

// Standard key representations for consistent hints across the app.
const (
	KeyUpDown    = "↑/↓"
	KeyLeftRight = "←/→"
	KeyEnter     = "enter"
	KeySpace     = "space"
	KeyEsc       = "esc"
	KeyTab       = "tab"
	KeyCtrlC     = "ctrl+c"
	KeyPgUpDown  = "pgup/pgdn"
)

// RenderHintBar renders key-description pairs separated by bullets.
// Example: RenderHintBar("enter", "select", "esc", "back")
// Returns: "enter select • esc back"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var sb strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			sb.WriteString(" " + s.HintSeparator.Render("•") + " ")
		}
		sb.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}
	return sb.String()
}

// HintModal returns standard modal hints.
func HintModal() string {
	return RenderHintBar(KeyTab, "next field", KeyEnter, "submit", KeyEsc, "close")
}

// HintMenu returns hints for vertical menus.
func HintMenu() string {
	return RenderHintBar(KeyUpDown, "move", KeyEnter, "select", KeyEsc, "close")
}
