package varexpand

import "strings"

// modifierKeys lists every modifier letter, in the order they are looked up.
const modifierKeys = "ULEXRNHMDT"

func isModifier(c byte) bool {
	return strings.IndexByte(modifierKeys, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// keyStart returns the index of the key in spec, the text following a '%',
// skipping the numeric prefix and any modifiers. It does not validate.
func keyStart(spec string) int {
	i := skipNumber(spec, 0)
	if i < len(spec) && spec[i] == '.' {
		i = skipNumber(spec, i+1)
	}
	for i < len(spec) && isModifier(spec[i]) {
		i++
	}
	return i
}

func skipNumber(s string, i int) int {
	for i < len(s) && (isDigit(s[i]) || s[i] == '-') {
		i++
	}
	return i
}

// matchBrace returns the index of the '}' closing the '{' at s[open], or -1.
// Nested braces are counted and a backslash escapes the next byte.
func matchBrace(s string, open int) int {
	depth := 0
	escaped := false
	for i := open; i < len(s); i++ {
		switch c := s[i]; {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// KeyRange locates the key in spec, the text following a '%'. For a short
// key the span is the single key byte. For a long key it is the text
// between the braces; a missing closing brace extends the span to the end
// of spec. An empty key yields size 0.
func KeyRange(spec string) (idx, size int) {
	i := keyStart(spec)
	if i >= len(spec) {
		return i, 0
	}
	if spec[i] != '{' {
		return i, 1
	}
	end := matchBrace(spec, i)
	if end < 0 {
		end = len(spec)
	}
	return i + 1, end - (i + 1)
}

// Key returns the key byte of spec: the short key, '{' for a long key, or 0
// when spec holds no key.
func Key(spec string) byte {
	i := keyStart(spec)
	if i >= len(spec) {
		return 0
	}
	return spec[i]
}

// HasKey reports whether tmpl references short key c or long key longKey.
// Pass 0 or "" to skip either check.
func HasKey(tmpl string, c byte, longKey string) bool {
	for i := 0; i < len(tmpl)-1; i++ {
		if tmpl[i] != '%' {
			continue
		}
		spec := tmpl[i+1:]
		start := keyStart(spec)
		if start >= len(spec) {
			return false
		}

		switch k := spec[start]; {
		case k == '{':
			if longKey != "" {
				idx, size := KeyRange(spec)
				if spec[idx:idx+size] == longKey {
					return true
				}
			}
		case k == '%':
		case c != 0 && k == c:
			return true
		}
		// Resume after the key byte so "%%" is not read as a new directive.
		i += 1 + start
	}
	return false
}
