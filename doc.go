// Package retable narrows fixed-width text tables embedded in plain text.
//
// Database shells and monitoring tools pad every column of their output to a
// fixed declared width, so a query over wide VARCHAR columns prints mostly
// spaces. retable finds those tables inside otherwise arbitrary text, shrinks
// each column to the widest value it actually holds, and passes everything
// else through untouched:
//
//	ID          NAME                     AGE
//	----------- ------------------------ -----------
//	          1 Alice                             30
//	          2 Bob                                5
//
// becomes
//
//	ID NAME  AGE
//	-- ----- ---
//	 1 Alice  30
//	 2 Bob     5
//
// The central entry points are [Source], which transforms a byte slice, and
// [Rewrite], which filters an [io.Reader] to an [io.Writer]. [Lines] exposes
// the same transform over pre-split lines.
//
// # Detection
//
// A table is anchored by its separator line: a non-blank line containing only
// the separator glyph (default '-') and spaces. Each maximal run of glyphs
// marks one column, and the positions covered by a run form that column's
// span. Header lines are the contiguous non-blank lines directly above the
// separator whose inter-column gaps contain nothing but spaces; a line with
// text bleeding into a gap ends the header block and, if no header line is
// found at all, the separator is treated as ordinary text. Data lines are the
// contiguous lines below the separator, ending at the first blank line,
// separator line, or end of input.
//
// # Rendering
//
// Cell text is cut from each line at the column spans, letting values run
// past their span up to the next column. Each column is then re-rendered at
// the width of its longest header or value, with columns joined by a single
// space and trailing whitespace removed. Numeric-style columns keep their
// justification: the first cell that is padded on only one side decides
// whether the whole column is left- or right-justified. Column positions are
// measured in display cells, so tables containing East Asian wide characters
// stay aligned.
//
// # Input Handling
//
// [Source] and [Rewrite] strip a UTF-8 byte order mark, normalize CRLF and CR
// line endings to LF, and terminate the output with a final newline. [Lines]
// performs no normalization and returns exactly one string per output line.
package retable
