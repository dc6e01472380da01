package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/partsync/internal/tui/theme"
)

const (
	appTitle   = "P A R T S Y N C"
	appTagline = "Find the GPU that fits your build."
)

// WelcomeScreen is the landing screen.
type WelcomeScreen struct{}

// NewWelcomeScreen creates the welcome screen.
func NewWelcomeScreen() *WelcomeScreen {
	return &WelcomeScreen{}
}

// Update handles the landing keys.
func (w *WelcomeScreen) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "enter":
		return func() tea.Msg { return NavigateMsg{To: ScreenWizard} }
	case "s":
		return func() tea.Msg { return OpenSettingsMsg{} }
	case "q":
		return tea.Quit
	}
	return nil
}

// View renders the gradient title and the entry button.
func (w *WelcomeScreen) View() string {
	t := theme.Current()
	s := t.S()
	return strings.Join([]string{
		s.Title.Render(theme.ApplyGradient(appTitle, t.Primary, t.Secondary)),
		"",
		s.Subtitle.Render(appTagline),
		"",
		RenderButtons(0, Button{Label: "Get Started", State: ButtonFocused}),
		"",
		RenderHintBar(KeyEnter, "start", "s", "settings", "q", "quit"),
	}, "\n")
}
