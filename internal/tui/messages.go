package tui

import (
	"github.com/mark3labs/partsync/internal/api"
	"github.com/mark3labs/partsync/internal/hardware"
)

// Screen identifies a full-screen view.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenWizard
	ScreenLoading
	ScreenResults
	ScreenAbout
	ScreenCatalog
)

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenWizard:
		return "wizard"
	case ScreenLoading:
		return "loading"
	case ScreenResults:
		return "results"
	case ScreenAbout:
		return "about"
	case ScreenCatalog:
		return "catalog"
	default:
		return "unknown"
	}
}

// NavigateMsg switches the active screen.
type NavigateMsg struct {
	To Screen
}

// OpenSettingsMsg opens the settings modal.
type OpenSettingsMsg struct{}

// OpenLoginMsg opens the admin login modal.
type OpenLoginMsg struct{}

// CPUsLoadedMsg carries the CPU listing for the wizard.
type CPUsLoadedMsg struct {
	CPUs []hardware.CPU
	Err  error
}

// SubmitMsg hands the packaged wizard payload to the loading screen.
type SubmitMsg struct {
	Request hardware.RecommendRequest
}

// RecommendationsMsg carries the settled recommendation request of a loading
// run. Gen ties it to the run that issued it.
type RecommendationsMsg struct {
	Gen  int
	Recs []hardware.Recommendation
}

// TipTickMsg rotates the loading tip of run Gen.
type TipTickMsg struct {
	Gen int
}

// ResetRequestedMsg is sent after the user confirms resetting the inputs.
type ResetRequestedMsg struct{}

// ThemeChangedMsg is sent after the theme was toggled.
type ThemeChangedMsg struct {
	Theme string
}

// gateOpenedMsg reports the admin gate state after its entry check.
type gateOpenedMsg struct{}

// loginStepMsg reports a settled credential or code submission.
type loginStepMsg struct {
	Err error
}

// catalogLoadedMsg carries the items of a catalog kind.
type catalogLoadedMsg struct {
	Kind  hardware.Kind
	Items []api.Item
	Err   error
}

// itemAddedMsg reports the result of adding a catalog item.
type itemAddedMsg struct {
	Kind    hardware.Kind
	Message string
	Err     error
}
