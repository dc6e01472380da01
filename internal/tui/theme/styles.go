package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style

	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	Modal      lipgloss.Style
	ModalTitle lipgloss.Style

	Card      lipgloss.Style
	CardLabel lipgloss.Style
	CardName  lipgloss.Style

	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	ButtonNormal   lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	Badge lipgloss.Style
}

func (t *Theme) buildStyles() *Styles {
	c := lipgloss.Color
	button := lipgloss.NewStyle().Padding(0, 2).MarginLeft(1).MarginRight(1)

	return &Styles{
		Title:    lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(c(t.Secondary)),
		Text:     lipgloss.NewStyle().Foreground(c(t.FgBase)),
		Muted:    lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		Error:    lipgloss.NewStyle().Foreground(c(t.Error)).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(c(t.Success)).Bold(true),

		HintKey:       lipgloss.NewStyle().Foreground(c(t.FgSubtle)).Bold(true),
		HintDesc:      lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().Foreground(c(t.BgOverlay)),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.Secondary)).
			Background(c(t.BgBase)).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true).Align(lipgloss.Center),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.BgSurface1)).
			Padding(0, 1),
		CardLabel: lipgloss.NewStyle().Foreground(c(t.Warning)).Bold(true),
		CardName:  lipgloss.NewStyle().Foreground(c(t.FgBase)).Bold(true),

		ListItem:     lipgloss.NewStyle().Foreground(c(t.FgBase)).PaddingLeft(2),
		ListSelected: lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),

		ButtonNormal:   button.Foreground(c(t.FgBase)).Background(c(t.BgSurface0)),
		ButtonFocused:  button.Foreground(c(t.BgBase)).Background(c(t.Secondary)).Bold(true),
		ButtonDisabled: button.Foreground(c(t.BgOverlay)).Background(c(t.BgMantle)),

		Badge: lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Padding(0, 1).MarginRight(1),
	}
}
