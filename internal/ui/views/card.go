package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardContent is what a page card shows
type CardContent struct {
	Title  string
	Body   string
	Source string
}

// RenderCard draws a bordered card exactly width x height cells and returns its lines.
// Body text that does not fit is cut off.
func (s *Styles) RenderCard(c CardContent, width, height int, current bool) []string {
	if width < 4 || height < 3 {
		return blankLines(width, height)
	}

	style := s.Card
	if current {
		style = s.CardCurrent
	}
	// Border takes two cells each way, padding one more column per side
	innerW := width - style.GetHorizontalFrameSize()
	innerH := height - style.GetVerticalFrameSize()
	if innerW < 1 || innerH < 1 {
		return blankLines(width, height)
	}

	lines := []string{s.CardTitle.Render(truncate(c.Title, innerW))}
	if c.Source != "" && innerH > 2 {
		lines = append(lines, s.CardSource.Render(truncate(c.Source, innerW)))
	}
	if innerH > len(lines)+1 {
		lines = append(lines, "")
		body := s.CardBody.Width(innerW).Render(c.Body)
		for _, line := range strings.Split(body, "\n") {
			if len(lines) >= innerH {
				break
			}
			lines = append(lines, line)
		}
	}

	out := style.
		Width(innerW + style.GetHorizontalPadding()).
		Height(innerH).
		Render(strings.Join(lines, "\n"))
	return fit(strings.Split(out, "\n"), width, height)
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// fit pads or cuts lines to exactly height rows
func fit(lines []string, width, height int) []string {
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return lines
}

func blankLines(width, height int) []string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return fit(nil, width, height)
}
