package retable

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// config holds the resolved transform settings.
type config struct {
	glyph rune
}

func defaultConfig() config {
	return config{glyph: '-'}
}

// Option adjusts how tables are detected and rendered.
type Option func(*config)

// WithGlyph sets the rune that separator lines are made of. The default is
// '-'. Spaces and invalid runes are ignored, keeping the default.
func WithGlyph(glyph rune) Option {
	return func(c *config) {
		if glyph == utf8.RuneError || unicode.IsSpace(glyph) {
			return
		}
		c.glyph = glyph
	}
}

// Lines transforms a document given as one string per line. Lines belonging
// to a detected table are replaced by their narrowed rendering; all other
// lines are returned unchanged, in their original order. The input slice is
// not modified.
func Lines(lines []string, opts ...Option) []string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return reflow(lines, cfg)
}

// Source transforms src and returns the result. Input is normalized first: a
// leading UTF-8 byte order mark is stripped and CRLF and bare CR line endings
// become LF. Non-empty output always ends with a newline.
func Source(src []byte, opts ...Option) []byte {
	out := Lines(split(string(src)), opts...)
	if len(out) == 0 {
		return nil
	}
	return []byte(strings.Join(out, "\n") + "\n")
}

// Rewrite reads r until EOF, transforms the contents like [Source], and
// writes the result to w.
func Rewrite(w io.Writer, r io.Reader, opts ...Option) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	_, err = w.Write(Source(src, opts...))
	return err
}

// split normalizes line endings and breaks src into lines. A trailing
// newline does not produce a final empty line.
func split(src string) []string {
	src = strings.TrimPrefix(src, "\uFEFF")
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")
	lines := strings.Split(src, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// blank reports whether line is empty or all whitespace.
func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}
