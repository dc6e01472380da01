package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/partsync/internal/tui/theme"
)

const toastDuration = 3 * time.Second

// toastDismissMsg hides toast number id. Dismissals of replaced toasts are
// ignored.
type toastDismissMsg struct {
	id int
}

// Toast is a short notification in the bottom-right corner.
type Toast struct {
	message string
	visible bool
	id      int
}

// NewToast creates a hidden toast.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays msg and schedules its dismissal.
func (t *Toast) Show(msg string) tea.Cmd {
	t.id++
	t.message = msg
	t.visible = true
	id := t.id
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastDismissMsg{id: id}
	})
}

// Update handles dismissal.
func (t *Toast) Update(msg tea.Msg) {
	if m, ok := msg.(toastDismissMsg); ok && m.id == t.id {
		t.visible = false
		t.message = ""
	}
}

// IsVisible returns whether the toast is shown.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// Message returns the shown message, or "" when hidden.
func (t *Toast) Message() string {
	if !t.visible {
		return ""
	}
	return t.message
}

// Draw renders the toast one cell in from the bottom-right corner of area.
func (t *Toast) Draw(scr uv.Screen, area uv.Rectangle) {
	if !t.visible || t.message == "" {
		return
	}
	th := theme.Current()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.BgBase)).
		Background(lipgloss.Color(th.Success)).
		Padding(0, 1).
		Bold(true)

	content := style.Render(t.message)
	if lipgloss.Width(content) > area.Dx()-2 {
		content = style.Width(max(area.Dx()-2, 1)).Render(t.message)
	}

	w, h := lipgloss.Width(content), lipgloss.Height(content)
	x := max(area.Max.X-w-1, area.Min.X)
	y := max(area.Max.Y-h-1, area.Min.Y)
	uv.NewStyledString(content).Draw(scr, uv.Rectangle{
		Min: uv.Position{X: x, Y: y},
		Max: uv.Position{X: x + w, Y: y + h},
	})
}
