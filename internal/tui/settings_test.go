package tui

import (
	"testing"

	"github.com/mark3labs/partsync/internal/state"
	"github.com/mark3labs/partsync/internal/tui/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSettings(t *testing.T) (*SettingsModal, *state.App) {
	t.Helper()
	app := state.NewApp("", state.ThemeDark)
	m := NewSettingsModal(app)
	m.Show()
	require.True(t, m.IsVisible())
	return m, app
}

func TestSettingsModal_ToggleTheme(t *testing.T) {
	m, app := openSettings(t)

	msg := runOne(t, m.Update(keyEnter))

	assert.Equal(t, ThemeChangedMsg{Theme: state.ThemeLight}, msg)
	assert.Equal(t, state.ThemeLight, app.Get().Theme)
	assert.True(t, m.IsVisible(), "theme toggle keeps the modal open")
	assert.Contains(t, testfixtures.Render(m), "Theme: Light")
}

func TestSettingsModal_AdminLogin(t *testing.T) {
	m, _ := openSettings(t)
	m.Update(keyDown)

	assert.Equal(t, OpenLoginMsg{}, runOne(t, m.Update(keyEnter)))
	assert.False(t, m.IsVisible())
}

func TestSettingsModal_About(t *testing.T) {
	m, _ := openSettings(t)
	m.Update(keyDown)
	m.Update(keyDown)

	assert.Equal(t, NavigateMsg{To: ScreenAbout}, runOne(t, m.Update(keyEnter)))
	assert.False(t, m.IsVisible())
}

func TestSettingsModal_ResetNeedsConfirmation(t *testing.T) {
	m, app := openSettings(t)
	m.Update(keyUp) // Close
	m.Update(keyUp) // Reset Inputs

	assert.Nil(t, m.Update(keyEnter))
	require.True(t, m.Confirming())
	assert.Contains(t, testfixtures.Render(m), "Reset Inputs")

	// Cancel is focused first.
	assert.Nil(t, m.Update(keyEnter))
	assert.False(t, m.Confirming())
	assert.Equal(t, 0, app.Get().ResetGeneration)
	assert.True(t, m.IsVisible())

	m.Update(keyEnter)
	m.Update(keyLeft)
	msg := runOne(t, m.Update(keyEnter))
	assert.Equal(t, ResetRequestedMsg{}, msg)
	assert.Equal(t, 1, app.Get().ResetGeneration)
	assert.False(t, m.IsVisible())
}

func TestSettingsModal_ConfirmWithY(t *testing.T) {
	m, app := openSettings(t)
	m.Update(keyUp)
	m.Update(keyUp)
	m.Update(keyEnter)

	assert.Equal(t, ResetRequestedMsg{}, runOne(t, m.Update(char('y'))))
	assert.Equal(t, 1, app.Get().ResetGeneration)
}

func TestSettingsModal_EscCloses(t *testing.T) {
	m, _ := openSettings(t)

	m.Update(keyEsc)

	assert.False(t, m.IsVisible())
	assert.NotContains(t, testfixtures.Render(m), "Settings")
}
