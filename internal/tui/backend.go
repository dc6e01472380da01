package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/partsync/internal/admin"
	"github.com/mark3labs/partsync/internal/api"
	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/mark3labs/partsync/internal/recommend"
	"github.com/mark3labs/partsync/internal/tui/theme"
)

// Backend is everything the screens need from the server. *api.Client
// satisfies it.
type Backend interface {
	recommend.Backend
	admin.Authenticator
	ListCPUs(ctx context.Context) ([]hardware.CPU, error)
	ListCatalog(ctx context.Context, kind hardware.Kind) ([]api.Item, error)
	AddCatalogItem(ctx context.Context, kind hardware.Kind, fields map[string]string) (string, error)
}

// newInput creates a text input styled with the active theme.
func newInput(placeholder string, width int) textinput.Model {
	t := theme.Current()
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	in.SetWidth(width)
	return in
}

// field renders a labelled input line with a focus marker.
func field(label string, in textinput.Model, focused bool) string {
	s := theme.Current().S()
	marker := "  "
	labelStyle := s.Muted
	if focused {
		marker = s.ListSelected.Render("› ")
		labelStyle = s.Subtitle
	}
	return marker + labelStyle.Render(label) + "\n  " + in.View()
}

// checkbox renders a toggle line.
func checkbox(label string, checked, focused bool) string {
	s := theme.Current().S()
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	if focused {
		return s.ListSelected.Render("› " + box + " " + label)
	}
	return s.Text.Render("  " + box + " " + label)
}
