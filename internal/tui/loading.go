package tui

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/mark3labs/partsync/internal/recommend"
	"github.com/mark3labs/partsync/internal/tui/theme"
)

// LoadingScreen shows a spinner and rotating tips while one recommendation
// request is outstanding. Each run has a generation number; ticks and
// results from an older run are ignored.
type LoadingScreen struct {
	ctx      context.Context
	backend  recommend.Backend
	interval time.Duration

	spinner spinner.Model
	gen     int
	active  bool
	tip     int
}

// NewLoadingScreen creates an idle loading screen.
func NewLoadingScreen(ctx context.Context, backend recommend.Backend, interval time.Duration) *LoadingScreen {
	if interval <= 0 {
		interval = recommend.DefaultTipInterval
	}
	l := &LoadingScreen{ctx: ctx, backend: backend, interval: interval}
	l.restyle()
	return l
}

// restyle rebuilds the spinner with the active theme colors. The new
// spinner ignores ticks of the old one, so a running spinner is restarted.
func (l *LoadingScreen) restyle() tea.Cmd {
	l.spinner = spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current().Primary))),
	)
	if l.active {
		return l.spinner.Tick
	}
	return nil
}

// Start begins a new run for req: it issues the request, starts the spinner
// and schedules the first tip rotation.
func (l *LoadingScreen) Start(req hardware.RecommendRequest) tea.Cmd {
	l.gen++
	l.active = true
	l.tip = 0

	gen, ctx, backend := l.gen, l.ctx, l.backend
	fetch := func() tea.Msg {
		return RecommendationsMsg{Gen: gen, Recs: recommend.Request(ctx, backend, req)}
	}
	return tea.Batch(fetch, l.spinner.Tick, l.tick())
}

// Stop ends the current run. Pending ticks and results become stale.
func (l *LoadingScreen) Stop() {
	l.active = false
	l.gen++
}

// Active reports whether a run is in progress.
func (l *LoadingScreen) Active() bool {
	return l.active
}

// Gen returns the generation of the current run.
func (l *LoadingScreen) Gen() int {
	return l.gen
}

// Tip returns the index of the tip on screen.
func (l *LoadingScreen) Tip() int {
	return l.tip
}

func (l *LoadingScreen) tick() tea.Cmd {
	gen := l.gen
	return tea.Tick(l.interval, func(time.Time) tea.Msg {
		return TipTickMsg{Gen: gen}
	})
}

// Current reports whether msg belongs to the active run.
func (l *LoadingScreen) Current(gen int) bool {
	return l.active && gen == l.gen
}

// Update handles spinner frames and tip rotation.
func (l *LoadingScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case TipTickMsg:
		if !l.Current(msg.Gen) {
			return nil
		}
		l.tip = recommend.NextTip(l.tip)
		return l.tick()
	case spinner.TickMsg:
		if !l.active {
			return nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return cmd
	}
	return nil
}

// View renders the spinner and current tip.
func (l *LoadingScreen) View() string {
	s := theme.Current().S()
	return strings.Join([]string{
		l.spinner.View() + " " + s.Title.Render("Finding the best GPUs for your build..."),
		"",
		s.Subtitle.Render(recommend.Tip(l.tip)),
		"",
		RenderHintBar(KeyEsc, "cancel"),
	}, "\n")
}
