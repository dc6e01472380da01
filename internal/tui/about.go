package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

const aboutMarkdown = `# About PartSync

PartSync helps you pick a graphics card that fits the rest of your build.

Tell it which **CPU** you run, what your **power supply** can deliver, which
**PCIe** slot your motherboard has and how much you want to spend. PartSync
asks the recommendation service for GPUs that:

- stay within your PSU wattage and connectors
- will not be held back by your processor
- fit your motherboard's PCIe generation
- respect your budget (strictly, if you ask it to)

Results are ranked; the top three are labelled *Best Value*, *High-End* and
*Budget-Friendly*.

Admins can sign in from Settings to add hardware to the catalog.
`

// AboutScreen shows static information about the app.
type AboutScreen struct {
	width    int
	rendered string
	cachedW  int
}

// NewAboutScreen creates the about screen.
func NewAboutScreen() *AboutScreen {
	return &AboutScreen{width: 80}
}

// SetSize updates the available width.
func (a *AboutScreen) SetSize(width, _ int) {
	a.width = width
}

// Update returns to the welcome screen on esc, enter or q.
func (a *AboutScreen) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "esc", "enter", "q":
		return func() tea.Msg { return NavigateMsg{To: ScreenWelcome} }
	}
	return nil
}

// View renders the markdown, re-rendering only when the width changed.
func (a *AboutScreen) View() string {
	w := max(a.width-8, 30)
	if a.rendered == "" || a.cachedW != w {
		a.rendered = renderMarkdown(aboutMarkdown, w)
		a.cachedW = w
	}
	return strings.Join([]string{a.rendered, "", RenderHintBar(KeyEsc, "back")}, "\n")
}
