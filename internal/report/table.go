// Package report renders read-only projections of a finished placement:
// a tabular preview of the flat rows and a shelf-by-category pivot.
package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// Table is a minimal aligned-columns text table. Column widths are derived
// from the widest cell in each column.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (t Table) Render() string {
	if len(t.Headers) == 0 {
		return "No data"
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	lines := []string{headerStyle.Render(joinPadded(t.Headers, widths))}
	for _, row := range t.Rows {
		lines = append(lines, joinPadded(row, widths))
	}
	return strings.Join(lines, "\n")
}

func joinPadded(cells []string, widths []int) string {
	parts := make([]string, 0, len(cells))
	for i, cell := range cells {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		if i == len(cells)-1 {
			parts = append(parts, cell)
			continue
		}
		parts = append(parts, padRight(cell, w))
	}
	return strings.Join(parts, "  ")
}

// padRight pads by display width, not byte length: truncated cells carry a
// multi-byte single-cell ellipsis and titles are not guaranteed ASCII.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
