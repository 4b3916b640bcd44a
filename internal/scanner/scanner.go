// Package scanner turns raw confindent text into a sequence of line events.
//
// Scanning is deliberately forgiving: it never fails. Blank lines and lines
// holding nothing but indentation yield no event, and anything else becomes a
// (key, depth, value) triple no matter how irregular it looks.
package scanner

import "strings"

// A Line is one parse event: a single non-blank input line reduced to its key,
// indentation depth and optional value.
type Line struct {
	Key      string
	Value    string
	HasValue bool
	Depth    int
}

// Config controls how values are extracted from a line.
type Config struct {
	// WholeLineValues captures the entire remainder of the line after the key,
	// trimmed of surrounding whitespace, as the value. The default keeps the
	// historical rule of retaining only the second whitespace-delimited field
	// and dropping the rest.
	WholeLineValues bool
}

// Scanner holds the state for scanning confindent source line by line.
type Scanner struct {
	lines []string
	pos   int
	cfg   Config
}

// New creates a Scanner over data.
func New(data []byte, cfg Config) *Scanner {
	return &Scanner{
		lines: strings.Split(string(data), "\n"),
		cfg:   cfg,
	}
}

// Next returns the next line event. It reports false when the input is
// exhausted.
func (s *Scanner) Next() (Line, bool) {
	for s.pos < len(s.lines) {
		raw := strings.TrimSuffix(s.lines[s.pos], "\r")
		s.pos++
		if ln, ok := scanLine(raw, s.cfg); ok {
			return ln, true
		}
	}
	return Line{}, false
}

// scanLine reduces one physical line to a Line event. It reports false for
// blank lines and lines with no key.
func scanLine(raw string, cfg Config) (Line, bool) {
	rest := raw
	depth := 0
	for {
		if strings.HasPrefix(rest, "\t") {
			rest = rest[1:]
			depth++
			continue
		}
		if strings.HasPrefix(rest, "  ") {
			rest = rest[2:]
			depth++
			continue
		}
		break
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Line{}, false
	}

	ln := Line{Key: fields[0], Depth: depth}
	switch {
	case cfg.WholeLineValues:
		after := strings.TrimSpace(rest)
		after = strings.TrimSpace(after[len(ln.Key):])
		if after != "" {
			ln.Value = after
			ln.HasValue = true
		}
	case len(fields) > 1:
		// Only the second field survives. Anything after it is dropped.
		ln.Value = fields[1]
		ln.HasValue = true
	}
	return ln, true
}
