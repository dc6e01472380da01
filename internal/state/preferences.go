package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/partsync/internal/logger"
)

const preferencesFile = "preferences.json"

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Preferences are the user choices that carry across runs.
type Preferences struct {
	Theme string `json:"theme"`
}

// DefaultPreferences returns preferences using the given theme, or dark if
// the theme is not recognized.
func DefaultPreferences(theme string) *Preferences {
	if theme != ThemeLight {
		theme = ThemeDark
	}
	return &Preferences{Theme: theme}
}

// LoadPreferences reads <dataDir>/preferences.json. A missing or unreadable
// file yields the defaults for fallbackTheme.
func LoadPreferences(dataDir, fallbackTheme string) *Preferences {
	path := filepath.Join(dataDir, preferencesFile)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultPreferences(fallbackTheme)
	}
	if err != nil {
		logger.Warn("Failed to read preferences file: %v", err)
		return DefaultPreferences(fallbackTheme)
	}

	var prefs Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		logger.Warn("Failed to parse preferences JSON: %v", err)
		return DefaultPreferences(fallbackTheme)
	}
	if prefs.Theme != ThemeDark && prefs.Theme != ThemeLight {
		prefs.Theme = DefaultPreferences(fallbackTheme).Theme
	}
	return &prefs
}

// SavePreferences writes <dataDir>/preferences.json, creating dataDir if
// needed.
func SavePreferences(dataDir string, prefs *Preferences) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}

	path := filepath.Join(dataDir, preferencesFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing preferences file: %w", err)
	}

	logger.Debug("Preferences saved to %s", path)
	return nil
}
