package retable

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// span is a half-open range of display cell positions within a line.
type span struct {
	start, end int
}

// cells indexes a line by display position. Wide runes occupy two cells, so
// positions derived from one line carry over to others that were padded to
// line up on a terminal.
type cells struct {
	runes []rune
	offs  []int // offs[i] is the position of runes[i]; offs[len(runes)] is the total width
}

func cellsOf(line string) cells {
	runes := []rune(line)
	offs := make([]int, len(runes)+1)
	for i, r := range runes {
		offs[i+1] = offs[i] + runewidth.RuneWidth(r)
	}
	return cells{runes: runes, offs: offs}
}

func (c cells) width() int {
	return c.offs[len(c.runes)]
}

// slice returns the text covering [start, end). Runes straddling either
// boundary are dropped. A zero-width rune at start belongs to the rune on
// its left and is dropped too.
func (c cells) slice(start, end int) string {
	var b strings.Builder
	for i, r := range c.runes {
		if c.offs[i] == c.offs[i+1] && c.offs[i] == start {
			continue
		}
		if c.offs[i] < start || c.offs[i+1] > end {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// runEnd extends from past any contiguous non-space content, stopping at
// limit. It returns from unchanged when the cell at from is a space or past
// the end of the line.
func (c cells) runEnd(from, limit int) int {
	end := from
	for i, r := range c.runes {
		if c.offs[i+1] <= from || c.offs[i] == c.offs[i+1] {
			continue
		}
		if c.offs[i] >= limit || r == ' ' {
			break
		}
		end = c.offs[i+1]
		if end >= limit {
			end = limit
			break
		}
	}
	return end
}

// clearGaps reports whether every position inside the given spans holds a
// space. Positions past the end of the line count as clear.
func (c cells) clearGaps(gaps []span) bool {
	for _, g := range gaps {
		for i, r := range c.runes {
			if c.offs[i+1] <= g.start || c.offs[i] >= g.end {
				continue
			}
			if r != ' ' {
				return false
			}
		}
	}
	return true
}

// columnSpans returns one span per maximal run of glyph in a separator line,
// left to right.
func columnSpans(line string, glyph rune) []span {
	c := cellsOf(line)
	var cols []span
	start := -1
	for i, r := range c.runes {
		if r == glyph {
			if start < 0 {
				start = c.offs[i]
			}
			continue
		}
		if start >= 0 {
			cols = append(cols, span{start: start, end: c.offs[i]})
			start = -1
		}
	}
	if start >= 0 {
		cols = append(cols, span{start: start, end: c.width()})
	}
	return cols
}

// gapSpans returns the spans between consecutive columns.
func gapSpans(cols []span) []span {
	var gaps []span
	for i := 1; i < len(cols); i++ {
		gaps = append(gaps, span{start: cols[i-1].end, end: cols[i].start})
	}
	return gaps
}

// rawCells cuts line into one untrimmed cell per column. A value wider than
// its column keeps going until the next space, so overlong cells are captured
// whole rather than truncated at the span boundary. The last column runs to
// the end of the line. Lines shorter than a span yield empty cells.
func rawCells(line string, cols []span) []string {
	c := cellsOf(line)
	out := make([]string, len(cols))
	for i, col := range cols {
		end := c.width()
		if i+1 < len(cols) {
			end = c.runEnd(col.end, cols[i+1].start)
		}
		out[i] = c.slice(col.start, end)
	}
	return out
}
