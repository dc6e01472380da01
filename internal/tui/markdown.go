package tui

import (
	"strings"

	"charm.land/glamour/v2"
)

// renderMarkdown renders markdown with glamour, falling back to plain
// wrapped text if rendering fails.
func renderMarkdown(content string, width int) string {
	width = min(width, 100)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wrapText(content, width)
	}

	rendered, err := r.Render(content)
	if err != nil {
		return wrapText(content, width)
	}
	return strings.TrimSuffix(rendered, "\n")
}

// wrapText breaks lines on spaces so none exceeds width runes.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var sb strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			sb.WriteString("\n")
		}
		runes := []rune(line)
		for len(runes) > width {
			cut := width
			for j := width; j > 0; j-- {
				if runes[j] == ' ' {
					cut = j
					break
				}
			}
			sb.WriteString(string(runes[:cut]))
			sb.WriteString("\n")
			runes = []rune(strings.TrimLeft(string(runes[cut:]), " "))
		}
		sb.WriteString(string(runes))
	}
	return sb.String()
}
