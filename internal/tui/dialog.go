package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/partsync/internal/tui/theme"
)

// ConfirmDialog asks a yes/cancel question.
type ConfirmDialog struct {
	title     string
	message   string
	visible   bool
	yesFocus  bool
	onConfirm func() tea.Cmd
}

// NewConfirmDialog creates a hidden dialog.
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{}
}

// Show displays the dialog. onConfirm runs when the user picks Yes.
// Cancel is focused initially.
func (d *ConfirmDialog) Show(title, message string, onConfirm func() tea.Cmd) {
	d.title = title
	d.message = message
	d.onConfirm = onConfirm
	d.yesFocus = false
	d.visible = true
}

// Hide closes the dialog.
func (d *ConfirmDialog) Hide() {
	d.visible = false
}

// IsVisible returns whether the dialog is visible.
func (d *ConfirmDialog) IsVisible() bool {
	return d.visible
}

// Update handles dialog input.
func (d *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.visible {
		return nil
	}
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "left", "right", "tab", "shift+tab":
		d.yesFocus = !d.yesFocus
	case "y":
		return d.confirm()
	case "n", "esc":
		d.Hide()
	case "enter":
		if d.yesFocus {
			return d.confirm()
		}
		d.Hide()
	}
	return nil
}

func (d *ConfirmDialog) confirm() tea.Cmd {
	d.Hide()
	if d.onConfirm != nil {
		return d.onConfirm()
	}
	return nil
}

// Draw renders the dialog centered on screen.
func (d *ConfirmDialog) Draw(scr uv.Screen, area uv.Rectangle) {
	if !d.visible {
		return
	}
	t := theme.Current()
	s := t.S()

	yes, cancel := ButtonNormal, ButtonFocused
	if d.yesFocus {
		yes, cancel = ButtonFocused, ButtonNormal
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		s.ModalTitle.Render(d.title),
		"",
		s.Text.Render(d.message),
		"",
		RenderButtons(0, Button{Label: "Yes", State: yes}, Button{Label: "Cancel", State: cancel}),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Warning)).
		Background(lipgloss.Color(t.BgBase)).
		Padding(1, 3).
		Render(content)
	drawCentered(scr, area, box)
}
