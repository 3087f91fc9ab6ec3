package views

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Placement is a rendered block whose left edge sits at screen column Left.
// Left may be negative or past the viewport.
type Placement struct {
	Left  int
	Lines []string
}

func (p Placement) width() int {
	w := 0
	for _, line := range p.Lines {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// ComposeStrip clips placements to a width x height viewport and joins them row by row.
// Where placements overlap, the one further left wins.
func ComposeStrip(placements []Placement, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	sorted := make([]Placement, len(placements))
	copy(sorted, placements)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Left < sorted[j].Left })

	widths := make([]int, len(sorted))
	for i, p := range sorted {
		widths[i] = p.width()
	}

	rows := make([]string, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		cursor := 0
		for i, p := range sorted {
			right := p.Left + widths[i]
			if right <= cursor || p.Left >= width || row >= len(p.Lines) {
				continue
			}
			start := max(cursor, p.Left)
			end := min(width, right)
			if start > cursor {
				b.WriteString(strings.Repeat(" ", start-cursor))
			}
			b.WriteString(ansi.Cut(p.Lines[row], start-p.Left, end-p.Left))
			cursor = end
		}
		if cursor < width {
			b.WriteString(strings.Repeat(" ", width-cursor))
		}
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n")
}
