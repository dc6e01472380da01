package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/mark3labs/partsync/internal/recommend"
	"github.com/mark3labs/partsync/internal/tui/theme"
)

// RestartMsg asks for a fresh wizard.
type RestartMsg struct{}

// ResultsScreen lists the ranked recommendations.
type ResultsScreen struct {
	cards  []recommend.Card
	offset int
	width  int
	height int
}

// NewResultsScreen creates an empty results screen.
func NewResultsScreen() *ResultsScreen {
	return &ResultsScreen{width: 80, height: 24}
}

// SetResults replaces the shown recommendations.
func (r *ResultsScreen) SetResults(recs []hardware.Recommendation) {
	r.cards = recommend.Present(recs)
	r.offset = 0
}

// Cards returns the presented results.
func (r *ResultsScreen) Cards() []recommend.Card {
	return r.cards
}

// SetSize updates the available area.
func (r *ResultsScreen) SetSize(width, height int) {
	r.width, r.height = width, height
}

// Update handles scrolling and restart.
func (r *ResultsScreen) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		if r.offset > 0 {
			r.offset--
		}
	case "down", "j":
		if r.offset < len(r.cards)-1 {
			r.offset++
		}
	case "r", "enter":
		return func() tea.Msg { return RestartMsg{} }
	case "esc":
		return func() tea.Msg { return NavigateMsg{To: ScreenWelcome} }
	}
	return nil
}

// View renders the cards from the scroll offset on.
func (r *ResultsScreen) View() string {
	s := theme.Current().S()
	lines := []string{s.Title.Render("Top GPU Recommendations"), ""}

	if len(r.cards) == 0 {
		lines = append(lines, s.Muted.Render("No recommendations found."))
	} else {
		budget := max(r.height-8, 8)
		used := 0
		for _, c := range r.cards[r.offset:] {
			card := r.renderCard(c)
			h := lipgloss.Height(card)
			if used > 0 && used+h > budget {
				break
			}
			lines = append(lines, card)
			used += h
		}
		if len(r.cards) > 1 {
			lines = append(lines, s.Muted.Render(fmt.Sprintf("%d of %d", r.offset+1, len(r.cards))))
		}
	}

	lines = append(lines, "",
		RenderButtons(0, Button{Label: "Restart", State: ButtonFocused}),
		"",
		RenderHintBar(KeyUpDown, "scroll", "r", "restart", KeyEsc, "home"))
	return strings.Join(lines, "\n")
}

func (r *ResultsScreen) renderCard(c recommend.Card) string {
	s := theme.Current().S()
	details := []string{
		s.CardLabel.Render(c.Label),
		s.CardName.Render(c.Name),
		s.Text.Render(fmt.Sprintf("VRAM: %s GB   TDP: %s W   Performance: %s   Price: %s",
			c.VRAM, c.TDP, c.Score, c.Price)),
	}
	if c.Image != "" {
		details = append(details, s.Muted.Render("Image: "+c.Image))
	}
	if len(c.Badges) > 0 {
		var badges []string
		for _, b := range c.Badges {
			badges = append(badges, s.Badge.Background(lipgloss.Color(b.Color)).Render(b.Text))
		}
		details = append(details, strings.Join(badges, ""))
	}

	width := min(max(r.width-8, 40), 90)
	return s.Card.Width(width).Render(strings.Join(details, "\n"))
}
