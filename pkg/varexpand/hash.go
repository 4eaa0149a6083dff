package varexpand

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/getmockd/varexpand/pkg/hashmethod"
)

type hashFormat int

const (
	formatHex hashFormat = iota
	formatHexUpper
	formatBase64
)

type hashOptions struct {
	rounds    int
	salt      string
	truncBits int
	format    hashFormat
}

// pkcs5 is hashed with sha256 over 2048 rounds, salted with the field text
// unless a salt is given.
const (
	pkcs5Name   = "pkcs5"
	pkcs5Method = "sha256"
	pkcs5Rounds = 2048
)

// lookupHash resolves an algorithm name, including the pkcs5 alias.
func (x *expansion) lookupHash(algo string) (hashmethod.Method, bool) {
	if algo == pkcs5Name {
		algo = pkcs5Method
	}
	return x.e.hashes.Lookup(algo)
}

// hash evaluates %{algo;opts:field}.
func (x *expansion) hash(m hashmethod.Method, algo, opts, field string) (string, Status, error) {
	o := hashOptions{rounds: 1}
	if algo == pkcs5Name {
		o.rounds = pkcs5Rounds
		o.salt = field
	}

	status := StatusOK
	var saltErr error
	for _, arg := range splitTop(opts, ',') {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			continue
		}
		switch k {
		case "rounds":
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return "", StatusFatal, wrapf(ErrHashOptions, nil, "'%s' is not number for rounds", v)
			}
			if n < 1 {
				return "", StatusFatal, wrapf(ErrHashOptions, nil, "rounds must be at least 1")
			}
			if n > uint64(x.e.maxRounds) {
				return "", StatusFatal, wrapf(ErrHashOptions, nil, "rounds must be at most %d", x.e.maxRounds)
			}
			o.rounds = int(n)
		case "truncate":
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return "", StatusFatal, wrapf(ErrHashOptions, nil, "'%s' is not number for truncbits", v)
			}
			o.truncBits = min(int(n), m.DigestSize*8)
		case "salt":
			salt, st, err := x.nested(v)
			if st == StatusFatal {
				return "", StatusFatal, err
			}
			if st != StatusOK {
				status, saltErr = st, err
			}
			o.salt = salt
		case "format":
			switch v {
			case "hex":
				o.format = formatHex
			case "hexuc":
				o.format = formatHexUpper
			case "base64":
				o.format = formatBase64
			default:
				return "", StatusFatal, wrapf(ErrHashOptions, nil, "'%s' is not supported format", v)
			}
		default:
			x.e.logger.Debug("ignoring unknown hash option", "algorithm", algo, "option", k)
		}
	}

	input, st, err := x.hashInput(field)
	if st != StatusOK {
		return input, st, err
	}
	return o.digest(m, input), status, saltErr
}

// hashInput resolves the field of a hash directive. A field containing '%'
// is a template; otherwise it is a long key, and a key nothing knows is
// taken literally.
func (x *expansion) hashInput(field string) (string, Status, error) {
	if strings.IndexByte(field, '%') >= 0 {
		return x.nested(field)
	}
	inner, err := x.deeper()
	if err != nil {
		return "", StatusFatal, err
	}
	v, st, err := inner.resolveLong(field)
	if st == StatusUnsupported && errors.Is(err, ErrUnknownVariable) {
		return field, StatusOK, nil
	}
	return v, st, err
}

func (o hashOptions) digest(m hashmethod.Method, input string) string {
	in := []byte(input)
	salt := []byte(o.salt)
	for range o.rounds {
		in = m.Sum(salt, in)
	}
	if o.truncBits > 0 {
		in = truncateBits(in, o.truncBits)
	}

	switch o.format {
	case formatHexUpper:
		return strings.ToUpper(hex.EncodeToString(in))
	case formatBase64:
		return base64.StdEncoding.EncodeToString(in)
	default:
		return hex.EncodeToString(in)
	}
}

// truncateBits keeps the leading bits of digest as a right-aligned integer
// in ceil(bits/8) bytes.
func truncateBits(digest []byte, bits int) []byte {
	n := (bits + 7) / 8
	out := append([]byte(nil), digest[:n]...)
	shift := uint(n*8 - bits)
	if shift == 0 {
		return out
	}
	for i := n - 1; i >= 0; i-- {
		out[i] >>= shift
		if i > 0 {
			out[i] |= out[i-1] << (8 - shift)
		}
	}
	return out
}
