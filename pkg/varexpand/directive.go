package varexpand

import (
	"math"
	"strings"
)

// maxModifiers bounds the modifier letters read per directive; further
// letters are taken as the key.
const maxModifiers = 4

type directive struct {
	offset  int
	width   int
	zeroPad bool
	mods    []modifier

	// long is set for %{...} keys; key then holds the brace content.
	long  bool
	key   string
	short byte
}

// parseDirective parses the directive at the start of s, the text following
// a '%'. It returns the number of bytes of s the directive spans, which on
// error is how far the scan should skip.
func parseDirective(s string) (directive, int, error) {
	var d directive
	i := 0
	sign := 1

	if i < len(s) && s[i] == '-' {
		sign = -1
		i++
	}
	if i < len(s) && s[i] == '0' {
		d.zeroPad = true
		i++
	}
	width, i, ok := parseNumber(s, i)
	overflow := !ok

	if i < len(s) && s[i] == '.' {
		d.offset = sign * width
		sign = 1
		i++

		// Zero padding belongs to the length only.
		d.zeroPad = false
		if i < len(s) && s[i] == '0' {
			d.zeroPad = true
			i++
		}
		if i < len(s) && s[i] == '-' {
			sign = -1
			i++
		}
		if width, i, ok = parseNumber(s, i); !ok {
			overflow = true
		}
	}
	d.width = sign * width

	for len(d.mods) < maxModifiers && i < len(s) {
		m, ok := modifiers[s[i]]
		if !ok {
			break
		}
		d.mods = append(d.mods, m)
		i++
	}

	if i >= len(s) {
		return d, i, wrapf(ErrParse, nil, "missing variable key")
	}

	switch c := s[i]; c {
	case '{':
		end := matchBrace(s, i)
		if end < 0 {
			return d, len(s), wrapf(ErrParse, nil, "unterminated long key %q", s[i:])
		}
		d.long = true
		d.key = s[i+1 : end]
		return d, end + 1, overflowErr(overflow)
	case '-', '.':
		return d, i + 1, wrapf(ErrParse, nil, "unexpected %q in numeric prefix", c)
	default:
		d.short = c
		return d, i + 1, overflowErr(overflow)
	}
}

// overflowErr reports a numeric prefix that did not fit. The directive is
// still spanned up to its key so none of it is copied as text.
func overflowErr(overflow bool) error {
	if overflow {
		return wrapf(ErrParse, nil, "numeric prefix out of range")
	}
	return nil
}

// parseNumber reads the decimal digits at s[i:]. ok is false when the value
// does not fit in an int32.
func parseNumber(s string, i int) (n, next int, ok bool) {
	for i < len(s) && isDigit(s[i]) {
		n = n*10 + int(s[i]-'0')
		if n > math.MaxInt32 {
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			return 0, i, false
		}
		i++
	}
	return n, i, true
}

// apply runs the modifiers over value and then extracts the range.
func (d *directive) apply(value string) string {
	st := fieldState{offset: d.offset, width: d.width}
	for _, m := range d.mods {
		value = m(value, &st)
	}
	return applyRange(value, st.offset, st.width, d.zeroPad)
}

// applyRange selects the substring of s given by offset and width. A zero
// width keeps everything after offset; a negative width drops bytes from
// the end. With zeroPad the width is a minimum length instead.
func applyRange(s string, offset, width int, zeroPad bool) string {
	if offset < 0 {
		if from := len(s) + offset; from > 0 {
			s = s[from:]
		}
	} else {
		s = s[min(offset, len(s)):]
	}

	switch {
	case width == 0:
		return s
	case zeroPad:
		return padZero(s, width)
	case width < 0:
		width = max(len(s)+width, 0)
	}
	return s[:min(width, len(s))]
}

func padZero(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}

// cutTop splits s around the first sep outside any braces.
func cutTop(s string, sep byte) (before, after string, found bool) {
	if i := indexTop(s, sep); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// splitTop splits s at every sep outside braces. An empty s yields nil.
func splitTop(s string, sep byte) []string {
	var parts []string
	for s != "" {
		i := indexTop(s, sep)
		if i < 0 {
			parts = append(parts, s)
			break
		}
		parts = append(parts, s[:i])
		s = s[i+1:]
	}
	return parts
}

func indexTop(s string, sep byte) int {
	depth := 0
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
			continue
		case c == '\\':
			escaped = true
			continue
		case c == '{':
			depth++
		case c == '}':
			if depth > 0 {
				depth--
			}
		}
		if c == sep && depth == 0 {
			return i
		}
	}
	return -1
}
