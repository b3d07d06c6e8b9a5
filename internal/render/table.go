// Package render draws text tables in the rounded box style the tool has
// always used. It works on strings only; callers format domain values before
// handing rows over.
package render

import (
	"strings"
	"unicode/utf8"
)

// Row is one rendered table line: either a full-width Label (used for date
// separators) or a set of Cells aligned to the header columns.
type Row struct {
	Label string
	Cells []string
}

// Cells builds a regular table row.
func Cells(cells ...string) Row {
	return Row{Cells: cells}
}

// Label builds a full-width separator row.
func Label(label string) Row {
	return Row{Label: label}
}

// Table renders a header row plus body rows sized to their content. Label
// rows span every column; a rule line closes the column grid above them and
// reopens it below.
func Table(headers []string, rows []Row) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, r := range rows {
		for i, c := range r.Cells {
			if i < len(widths) && utf8.RuneCountInString(c) > widths[i] {
				widths[i] = utf8.RuneCountInString(c)
			}
		}
	}

	var b strings.Builder
	b.WriteString(rule(widths, "╭", "┬", "╮"))
	b.WriteString(cellLine(widths, headers))

	prevLabel := false
	needRule := true
	for _, r := range rows {
		if r.Label != "" {
			if prevLabel {
				b.WriteString(rule(widths, "├", "─", "┤"))
			} else {
				b.WriteString(rule(widths, "├", "┴", "┤"))
			}
			b.WriteString(labelLine(widths, r.Label))
			prevLabel = true
			needRule = true
			continue
		}
		if needRule {
			if prevLabel {
				b.WriteString(rule(widths, "├", "┬", "┤"))
			} else {
				b.WriteString(rule(widths, "├", "┼", "┤"))
			}
			needRule = false
		}
		b.WriteString(cellLine(widths, r.Cells))
		prevLabel = false
	}

	if prevLabel {
		b.WriteString(rule(widths, "╰", "─", "╯"))
	} else {
		b.WriteString(rule(widths, "╰", "┴", "╯"))
	}
	return b.String()
}

func rule(widths []int, left, mid, right string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return left + strings.Join(parts, mid) + right + "\n"
}

func cellLine(widths []int, cells []string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		var c string
		if i < len(cells) {
			c = cells[i]
		}
		parts[i] = " " + pad(c, w) + " "
	}
	return "│" + strings.Join(parts, "│") + "│\n"
}

func labelLine(widths []int, label string) string {
	inner := len(widths) - 1
	for _, w := range widths {
		inner += w + 2
	}
	return "│ " + pad(label, inner-2) + " │\n"
}

func pad(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
