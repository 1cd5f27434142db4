package retable

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// justification controls which side of a column its values hug.
type justification int

const (
	justLeft justification = iota
	justRight
)

// detectJustification inspects a column's untrimmed cells in row order and
// returns the first definitive signal. A cell padded on only one side
// decides immediately; a cell padded on both sides decides right when the
// leading padding dominates and is otherwise skipped. Columns with no
// definitive cell are left-justified.
func detectJustification(raw []string) justification {
	for _, cell := range raw {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		lead := leadingSpaceCount(cell)
		trail := trailingSpaceCount(cell)
		switch {
		case lead > 0 && trail == 0:
			return justRight
		case trail > 0 && lead == 0:
			return justLeft
		case lead > trail:
			return justRight
		}
	}
	return justLeft
}

func leadingSpaceCount(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}

func trailingSpaceCount(s string) int {
	runes := []rune(s)
	n := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if !unicode.IsSpace(runes[i]) {
			break
		}
		n++
	}
	return n
}

// columnWidths returns the display width of the longest trimmed cell per
// column across header and data rows.
func columnWidths(numCols int, headerRows, dataRows [][]string) []int {
	widths := make([]int, numCols)
	for _, row := range headerRows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for _, row := range dataRows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// justify pads s with spaces to the given display width. Overlong cells are
// returned unchanged.
func justify(s string, width int, j justification) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if j == justRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}

func renderRow(cells []string, widths []int, justs []justification) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = justify(cells[i], width, justs[i])
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}

func renderSeparator(widths []int, glyph rune) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat(string(glyph), width)
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}

// renderTable renders t at minimal column widths: header lines, a separator
// sized to the new widths, then data rows with the detected justification
// applied. Header cells are always left-justified. A table with no data rows
// takes its widths from the header text alone.
func renderTable(lines []string, t table, glyph rune) []string {
	numCols := len(t.cols)

	headerRows := make([][]string, len(t.headers))
	for i, idx := range t.headers {
		headerRows[i] = trimCells(rawCells(lines[idx], t.cols))
	}
	rawRows := make([][]string, len(t.data))
	dataRows := make([][]string, len(t.data))
	for i, idx := range t.data {
		rawRows[i] = rawCells(lines[idx], t.cols)
		dataRows[i] = trimCells(rawRows[i])
	}

	widths := columnWidths(numCols, headerRows, dataRows)

	justs := make([]justification, numCols)
	if len(rawRows) > 0 {
		column := make([]string, len(rawRows))
		for i := range justs {
			for r, row := range rawRows {
				column[r] = row[i]
			}
			justs[i] = detectJustification(column)
		}
	}

	out := make([]string, 0, len(t.headers)+1+len(t.data))
	left := make([]justification, numCols)
	for _, row := range headerRows {
		out = append(out, renderRow(row, widths, left))
	}
	out = append(out, renderSeparator(widths, glyph))
	for _, row := range dataRows {
		out = append(out, renderRow(row, widths, justs))
	}
	return out
}

func trimCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}
