package retable

import "slices"

// table is one detected table, held as indices into the document's lines.
type table struct {
	headers []int // header line indices, top to bottom
	sep     int   // separator line index
	data    []int // data line indices, top to bottom
	cols    []span
}

// isSeparator reports whether line consists of glyph and space runes only,
// with at least one glyph.
func isSeparator(line string, glyph rune) bool {
	found := false
	for _, r := range line {
		switch r {
		case glyph:
			found = true
		case ' ':
		default:
			return false
		}
	}
	return found
}

// collectHeaders walks upward from the separator at sep and returns the
// indices of the contiguous header lines, top to bottom. A header line is
// non-blank and keeps every inter-column gap clear. The walk never crosses
// floor, the first line index not yet claimed by an earlier table.
func collectHeaders(lines []string, sep int, gaps []span, floor int) []int {
	var idxs []int
	for i := sep - 1; i >= floor; i-- {
		if blank(lines[i]) || !cellsOf(lines[i]).clearGaps(gaps) {
			break
		}
		idxs = append(idxs, i)
	}
	slices.Reverse(idxs)
	return idxs
}

// collectData returns the index of the first line past the data block below
// the separator at sep. Data ends at a blank line, another separator line,
// or the end of the document.
func collectData(lines []string, sep int, glyph rune) int {
	j := sep + 1
	for j < len(lines) {
		if blank(lines[j]) || isSeparator(lines[j], glyph) {
			break
		}
		j++
	}
	return j
}

// reflow scans the document for tables and rebuilds it with each table
// narrowed in place. Every line is classified exactly once: consumed by a
// table, or passed through verbatim. A table's rendering is emitted at the
// position of its first header line.
func reflow(lines []string, cfg config) []string {
	consumed := make(map[int]bool)
	blocks := make(map[int][]string)
	floor := 0

	i := 0
	for i < len(lines) {
		if !isSeparator(lines[i], cfg.glyph) {
			i++
			continue
		}
		t := table{sep: i, cols: columnSpans(lines[i], cfg.glyph)}
		t.headers = collectHeaders(lines, t.sep, gapSpans(t.cols), floor)
		if len(t.headers) == 0 {
			// A separator with no header is ordinary text.
			i++
			continue
		}
		j := collectData(lines, t.sep, cfg.glyph)
		for k := t.sep + 1; k < j; k++ {
			t.data = append(t.data, k)
		}

		blocks[t.headers[0]] = renderTable(lines, t, cfg.glyph)
		for _, h := range t.headers {
			consumed[h] = true
		}
		for k := t.sep; k < j; k++ {
			consumed[k] = true
		}
		floor = j
		i = j
	}

	out := make([]string, 0, len(lines))
	for idx, line := range lines {
		if block, ok := blocks[idx]; ok {
			out = append(out, block...)
			continue
		}
		if !consumed[idx] {
			out = append(out, line)
		}
	}
	return out
}
