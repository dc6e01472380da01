package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/partsync/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonDisabled
	ButtonFocused
)

// Button is a single labelled button.
type Button struct {
	Label string
	State ButtonState
}

// RenderButtons renders a row of buttons centered within width.
func RenderButtons(width int, buttons ...Button) string {
	if len(buttons) == 0 {
		return ""
	}

	s := theme.Current().S()
	rendered := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		switch btn.State {
		case ButtonDisabled:
			rendered = append(rendered, s.ButtonDisabled.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, s.ButtonFocused.Render(btn.Label))
		default:
			rendered = append(rendered, s.ButtonNormal.Render(btn.Label))
		}
	}
	row := strings.Join(rendered, "")
	if width <= 0 {
		return row
	}
	return lipgloss.Place(width, 1, lipgloss.Center, lipgloss.Center, row)
}

// BackNextButtons creates the standard Back/Next pair. Back is disabled on
// the first step.
func BackNextButtons(backEnabled bool, nextLabel string) []Button {
	back := Button{Label: "← Back", State: ButtonNormal}
	if !backEnabled {
		back.State = ButtonDisabled
	}
	return []Button{back, {Label: nextLabel, State: ButtonFocused}}
}
