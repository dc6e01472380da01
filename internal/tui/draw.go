package tui

import (
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// drawCentered draws content in the middle of area and returns the occupied
// rectangle.
func drawCentered(scr uv.Screen, area uv.Rectangle, content string) uv.Rectangle {
	w := lipgloss.Width(content)
	h := lipgloss.Height(content)
	x := max((area.Dx()-w)/2, 0)
	y := max((area.Dy()-h)/2, 0)

	rect := uv.Rectangle{
		Min: uv.Position{X: area.Min.X + x, Y: area.Min.Y + y},
		Max: uv.Position{X: area.Min.X + x + w, Y: area.Min.Y + y + h},
	}
	uv.NewStyledString(content).Draw(scr, rect)
	return rect
}

// modalWidth clamps a modal to the screen.
func modalWidth(screen, preferred int) int {
	return max(min(preferred, screen-4), 30)
}

// drawInset draws content from the top-left of area, inset by pad cells.
func drawInset(scr uv.Screen, area uv.Rectangle, content string, pad int) {
	rect := uv.Rectangle{
		Min: uv.Position{X: min(area.Min.X+pad*2, area.Max.X), Y: min(area.Min.Y+pad, area.Max.Y)},
		Max: area.Max,
	}
	uv.NewStyledString(content).Draw(scr, rect)
}
