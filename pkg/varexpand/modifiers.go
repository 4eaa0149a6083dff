package varexpand

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fieldState is the directive's numeric prefix as seen by modifiers. The
// bucket hashes consume it.
type fieldState struct {
	offset int
	width  int
}

type modifier func(s string, st *fieldState) string

var modifiers = map[byte]modifier{
	'U': modUpper,
	'L': modLower,
	'E': modEscape,
	'X': modHex,
	'R': modReverse,
	'N': modNewHash,
	'H': modHash,
	'M': modMD5,
	'D': modLDAPDN,
	'T': modTrim,
}

// Casers carry state, so each call gets its own.
func modUpper(s string, _ *fieldState) string {
	return cases.Upper(language.Und).String(s)
}

func modLower(s string, _ *fieldState) string {
	return cases.Lower(language.Und).String(s)
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `'`, `\'`)

func modEscape(s string, _ *fieldState) string {
	return escaper.Replace(s)
}

// modHex renders a decimal number in hex. Anything unparsable is 0.
func modHex(s string, _ *fieldState) string {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		n = 0
	}
	return strconv.FormatUint(n, 16)
}

func modReverse(s string, _ *fieldState) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// strHash is the 32-bit PJW/ELF string hash.
func strHash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h<<4 + uint32(s[i])
		if g := h & 0xf0000000; g != 0 {
			h ^= g >> 24
			h ^= g
		}
	}
	return h
}

// bucket reduces v modulo the width, renders it in hex and pads it to the
// offset. Both are consumed.
func bucket(v uint64, st *fieldState) string {
	if st.width != 0 {
		mod := st.width
		if mod < 0 {
			mod = -mod
		}
		v %= uint64(mod)
		st.width = 0
	}
	out := padZero(strconv.FormatUint(uint64(uint32(v)), 16), st.offset)
	st.offset = 0
	return out
}

func modHash(s string, st *fieldState) string {
	return bucket(uint64(strHash(s)), st)
}

func modNewHash(s string, st *fieldState) string {
	sum := md5.Sum([]byte(s))
	return bucket(binary.BigEndian.Uint64(sum[:8]), st)
}

func modMD5(s string, _ *fieldState) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func modLDAPDN(s string, _ *fieldState) string {
	return strings.ReplaceAll(s, ".", ",dc=")
}

func modTrim(s string, _ *fieldState) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
