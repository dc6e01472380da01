package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/partsync/internal/state"
	"github.com/mark3labs/partsync/internal/tui/theme"
)

type settingsItem int

const (
	settingsTheme settingsItem = iota
	settingsAdmin
	settingsAbout
	settingsReset
	settingsClose
	settingsCount
)

// SettingsModal offers the theme toggle, admin login, about, and resetting
// the wizard inputs.
type SettingsModal struct {
	app     *state.App
	confirm *ConfirmDialog
	visible bool
	cursor  settingsItem
	width   int
}

// NewSettingsModal creates a hidden settings modal.
func NewSettingsModal(app *state.App) *SettingsModal {
	return &SettingsModal{app: app, confirm: NewConfirmDialog(), width: 80}
}

// Show opens the modal with the first item highlighted.
func (m *SettingsModal) Show() {
	m.visible = true
	m.cursor = settingsTheme
	m.confirm.Hide()
}

// Hide closes the modal.
func (m *SettingsModal) Hide() {
	m.visible = false
	m.confirm.Hide()
}

// IsVisible returns whether the modal is visible.
func (m *SettingsModal) IsVisible() bool {
	return m.visible
}

// Confirming reports whether the reset confirmation is open.
func (m *SettingsModal) Confirming() bool {
	return m.confirm.IsVisible()
}

// SetWidth updates the screen width.
func (m *SettingsModal) SetWidth(width int) {
	m.width = width
}

// Update handles navigation and activation of items.
func (m *SettingsModal) Update(msg tea.Msg) tea.Cmd {
	if !m.visible {
		return nil
	}
	if m.confirm.IsVisible() {
		return m.confirm.Update(msg)
	}

	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		m.cursor = (m.cursor + settingsCount - 1) % settingsCount
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % settingsCount
	case "esc", "q":
		m.Hide()
	case "enter", "space", " ":
		return m.activate()
	}
	return nil
}

func (m *SettingsModal) activate() tea.Cmd {
	switch m.cursor {
	case settingsTheme:
		snap := m.app.ToggleTheme()
		return func() tea.Msg { return ThemeChangedMsg{Theme: snap.Theme} }
	case settingsAdmin:
		m.Hide()
		return func() tea.Msg { return OpenLoginMsg{} }
	case settingsAbout:
		m.Hide()
		return func() tea.Msg { return NavigateMsg{To: ScreenAbout} }
	case settingsReset:
		m.confirm.Show("Reset Inputs", "Clear every hardware input and start over?", func() tea.Cmd {
			m.app.RequestReset()
			m.Hide()
			return func() tea.Msg { return ResetRequestedMsg{} }
		})
	case settingsClose:
		m.Hide()
	}
	return nil
}

func (m *SettingsModal) label(item settingsItem) string {
	switch item {
	case settingsTheme:
		if m.app.Get().Theme == state.ThemeLight {
			return "Theme: Light"
		}
		return "Theme: Dark"
	case settingsAdmin:
		return "Admin Login"
	case settingsAbout:
		return "About"
	case settingsReset:
		return "Reset Inputs"
	default:
		return "Close"
	}
}

// Draw renders the modal centered on screen.
func (m *SettingsModal) Draw(scr uv.Screen, area uv.Rectangle) {
	if !m.visible {
		return
	}
	s := theme.Current().S()

	lines := []string{s.ModalTitle.Render("Settings"), ""}
	for i := settingsItem(0); i < settingsCount; i++ {
		if i == m.cursor {
			lines = append(lines, s.ListSelected.Render("› "+m.label(i)))
		} else {
			lines = append(lines, s.ListItem.Render(m.label(i)))
		}
	}
	lines = append(lines, "", HintMenu())

	drawCentered(scr, area, s.Modal.Width(modalWidth(m.width, 50)).Render(strings.Join(lines, "\n")))
	m.confirm.Draw(scr, area)
}
