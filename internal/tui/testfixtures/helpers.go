package testfixtures

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
)

// Strip colors so rendered output can be compared as plain text.
func init() {
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// Drawer is anything that draws itself onto a screen area.
type Drawer interface {
	Draw(scr uv.Screen, area uv.Rectangle)
}

// Render draws d onto a canonical-size canvas and returns the text.
func Render(d Drawer) string {
	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
	d.Draw(canvas, canvas.Bounds())
	return canvas.Render()
}

// AssertContains fails the test if any of want is missing from got.
func AssertContains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("expected output to contain %q, got:\n%s", w, got)
		}
	}
}

// AssertNotContains fails the test if any of unwanted is present in got.
func AssertNotContains(t *testing.T, got string, unwanted ...string) {
	t.Helper()
	for _, u := range unwanted {
		if strings.Contains(got, u) {
			t.Errorf("expected output not to contain %q, got:\n%s", u, got)
		}
	}
}
