// Package theme holds the color palettes and pre-built styles of the TUI.
package theme

import (
	"image/color"
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string
	Secondary string
	Tertiary  string

	// Background hierarchy (base→raised)
	BgBase     string
	BgMantle   string
	BgSurface0 string
	BgSurface1 string
	BgOverlay  string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string

	// Status colors
	Success string
	Warning string
	Error   string
	Info    string

	styles     *Styles
	stylesOnce sync.Once
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// Names of the built-in themes.
const (
	Dark  = "dark"
	Light = "light"
)

var (
	mu      sync.RWMutex
	themes  = map[string]*Theme{Dark: NewCatppuccinMocha(), Light: NewCatppuccinLatte()}
	current = themes[Dark]
)

// Current returns the active theme.
func Current() *Theme {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set activates a theme by name. Unknown names select the dark theme.
func Set(name string) *Theme {
	mu.Lock()
	defer mu.Unlock()
	t, ok := themes[name]
	if !ok {
		t = themes[Dark]
	}
	current = t
	return t
}

// HexToColor converts a #RRGGBB string to a color.
func HexToColor(hex string) color.Color {
	return lipgloss.Color(hex)
}
