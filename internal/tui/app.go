package tui

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/partsync/internal/admin"
	"github.com/mark3labs/partsync/internal/logger"
	"github.com/mark3labs/partsync/internal/state"
	"github.com/mark3labs/partsync/internal/tui/theme"
)

// Options configures the TUI.
type Options struct {
	Backend Backend
	// Sessions persists the admin session. Required.
	Sessions admin.SessionStore
	// State is the shared application state. Nil creates an in-memory one.
	State *state.App
	// TipInterval is the loading tip rotation period.
	TipInterval time.Duration
}

// App is the root model. It routes messages to the active screen and the
// open modals.
type App struct {
	ctx     context.Context
	backend Backend
	gate    *admin.Gate
	state   *state.App

	screen   Screen
	welcome  *WelcomeScreen
	wizard   *WizardScreen
	loading  *LoadingScreen
	results  *ResultsScreen
	about    *AboutScreen
	catalog  *CatalogScreen
	settings *SettingsModal
	login    *LoginModal
	toast    *Toast

	resetSeen int
	width     int
	height    int
	quitting  bool
}

// NewApp creates the root model on the welcome screen.
func NewApp(ctx context.Context, opts Options) *App {
	st := opts.State
	if st == nil {
		st = state.NewApp("", state.ThemeDark)
	}
	snap := st.Get()
	theme.Set(snap.Theme)

	gate := admin.NewGate(opts.Backend, opts.Sessions)
	return &App{
		ctx:       ctx,
		backend:   opts.Backend,
		gate:      gate,
		state:     st,
		screen:    ScreenWelcome,
		welcome:   NewWelcomeScreen(),
		wizard:    NewWizardScreen(ctx, opts.Backend),
		loading:   NewLoadingScreen(ctx, opts.Backend, opts.TipInterval),
		results:   NewResultsScreen(),
		about:     NewAboutScreen(),
		catalog:   NewCatalogScreen(ctx, opts.Backend),
		settings:  NewSettingsModal(st),
		login:     NewLoginModal(ctx, gate),
		toast:     NewToast(),
		resetSeen: snap.ResetGeneration,
		width:     80,
		height:    24,
	}
}

// Screen returns the active screen.
func (a *App) Screen() Screen {
	return a.screen
}

// Gate returns the admin session gate.
func (a *App) Gate() *admin.Gate {
	return a.gate
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.propagateSizes()
		return a, nil

	case NavigateMsg:
		return a, a.navigate(msg.To)

	case OpenSettingsMsg:
		a.settings.Show()
		return a, nil

	case OpenLoginMsg:
		return a, a.login.Open()

	case ThemeChangedMsg:
		theme.Set(msg.Theme)
		return a, tea.Batch(a.loading.restyle(), a.toast.Show(fmt.Sprintf("Theme: %s", msg.Theme)))

	case ResetRequestedMsg:
		return a, a.applyReset()

	case SubmitMsg:
		a.screen = ScreenLoading
		return a, a.loading.Start(msg.Request)

	case RecommendationsMsg:
		if !a.loading.Current(msg.Gen) {
			logger.Debug("tui: dropping stale recommendations gen=%d", msg.Gen)
			return a, nil
		}
		a.loading.Stop()
		a.results.SetResults(msg.Recs)
		a.screen = ScreenResults
		return a, nil

	case TipTickMsg, spinner.TickMsg:
		return a, a.loading.Update(msg)

	case RestartMsg:
		return a, a.navigate(ScreenWizard)

	case CPUsLoadedMsg:
		return a, a.wizard.Update(msg)

	case catalogLoadedMsg, itemAddedMsg:
		return a, a.catalog.Update(msg)

	case gateOpenedMsg, loginStepMsg:
		return a, a.login.Update(msg)

	case toastDismissMsg:
		a.toast.Update(msg)
		return a, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}
	}

	// Modals take input before the screen underneath.
	switch {
	case a.login.IsVisible():
		return a, a.login.Update(msg)
	case a.settings.IsVisible():
		return a, a.settings.Update(msg)
	}
	return a, a.updateScreen(msg)
}

func (a *App) updateScreen(msg tea.Msg) tea.Cmd {
	switch a.screen {
	case ScreenWelcome:
		return a.welcome.Update(msg)
	case ScreenWizard:
		return a.wizard.Update(msg)
	case ScreenLoading:
		if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "esc" {
			// The request keeps running; its result is discarded.
			return a.navigate(ScreenWizard)
		}
		return nil
	case ScreenResults:
		return a.results.Update(msg)
	case ScreenAbout:
		return a.about.Update(msg)
	case ScreenCatalog:
		return a.catalog.Update(msg)
	}
	return nil
}

func (a *App) navigate(to Screen) tea.Cmd {
	if a.screen == ScreenLoading && to != ScreenLoading {
		a.loading.Stop()
	}
	switch to {
	case ScreenWizard:
		// A submitted wizard is finished; coming back starts a new one.
		if a.wizard.Controller().Submitted() {
			a.wizard.Reset()
		}
		a.screen = to
		return a.wizard.Init()
	case ScreenCatalog:
		if a.gate.State() != admin.Authenticated {
			return a.login.Open()
		}
		a.screen = to
		return a.catalog.Init()
	default:
		a.screen = to
		return nil
	}
}

// applyReset clears the wizard when the shared reset generation moved past
// the one last applied.
func (a *App) applyReset() tea.Cmd {
	gen := a.state.Get().ResetGeneration
	if gen == a.resetSeen {
		return nil
	}
	a.resetSeen = gen
	a.wizard.Reset()
	if a.screen == ScreenLoading || a.screen == ScreenResults {
		a.loading.Stop()
		a.screen = ScreenWizard
	}
	return a.toast.Show("Inputs reset")
}

func (a *App) propagateSizes() {
	a.wizard.SetSize(a.width, a.height)
	a.results.SetSize(a.width, a.height)
	a.about.SetSize(a.width, a.height)
	a.catalog.SetSize(a.width, a.height)
	a.settings.SetWidth(a.width)
	a.login.SetWidth(a.width)
}

// View implements tea.Model.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if a.quitting {
		view.AltScreen = false
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	a.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())
	view.BackgroundColor = theme.HexToColor(theme.Current().BgBase)
	return view
}

// Draw renders the active screen and any open overlays onto scr.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) {
	switch a.screen {
	case ScreenWelcome:
		drawCentered(scr, area, a.welcome.View())
	case ScreenLoading:
		drawCentered(scr, area, a.loading.View())
	case ScreenWizard:
		drawInset(scr, area, a.wizard.View(), 1)
	case ScreenResults:
		drawInset(scr, area, a.results.View(), 1)
	case ScreenAbout:
		drawInset(scr, area, a.about.View(), 1)
	case ScreenCatalog:
		drawInset(scr, area, a.catalog.View(), 1)
	}

	a.settings.Draw(scr, area)
	a.login.Draw(scr, area)
	a.toast.Draw(scr, area)
}

// Run starts the full-screen program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(NewApp(ctx, opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
