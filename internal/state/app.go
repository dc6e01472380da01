// Package state holds the process-wide application state shared by every
// screen, plus the preferences persisted between runs.
package state

import (
	"sync"

	"github.com/mark3labs/partsync/internal/logger"
)

// Snapshot is a read-only view of the application state.
type Snapshot struct {
	Theme string
	// ResetGeneration increases each time the user asks to reset the
	// wizard inputs. Screens compare it with the value they last saw.
	ResetGeneration int
}

// App is the application-state container. Screens receive it at
// construction and read or update it explicitly.
type App struct {
	mu      sync.RWMutex
	snap    Snapshot
	dataDir string
}

// NewApp loads persisted preferences from dataDir. An empty dataDir keeps
// everything in memory.
func NewApp(dataDir, defaultTheme string) *App {
	prefs := DefaultPreferences(defaultTheme)
	if dataDir != "" {
		prefs = LoadPreferences(dataDir, defaultTheme)
	}
	return &App{
		dataDir: dataDir,
		snap:    Snapshot{Theme: prefs.Theme},
	}
}

// Get returns the current state.
func (a *App) Get() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snap
}

// Update applies fn to the state and returns the result. A changed theme is
// persisted; a failed write is logged and does not undo the change.
func (a *App) Update(fn func(*Snapshot)) Snapshot {
	a.mu.Lock()
	prev := a.snap
	fn(&a.snap)
	if a.snap.Theme != ThemeLight {
		a.snap.Theme = ThemeDark
	}
	next := a.snap
	a.mu.Unlock()

	if next.Theme != prev.Theme && a.dataDir != "" {
		if err := SavePreferences(a.dataDir, &Preferences{Theme: next.Theme}); err != nil {
			logger.Warn("Failed to save preferences: %v", err)
		}
	}
	return next
}

// ToggleTheme switches between the dark and light themes.
func (a *App) ToggleTheme() Snapshot {
	return a.Update(func(s *Snapshot) {
		if s.Theme == ThemeLight {
			s.Theme = ThemeDark
		} else {
			s.Theme = ThemeLight
		}
	})
}

// RequestReset signals that the wizard inputs should be cleared.
func (a *App) RequestReset() Snapshot {
	return a.Update(func(s *Snapshot) {
		s.ResetGeneration++
	})
}
