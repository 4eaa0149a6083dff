package id

import (
	"crypto/rand"
	"sync"
	"time"
)

// crockford is Crockford's base32 alphabet (no I, L, O or U).
const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	ulidLen     = 26
	ulidTimeLen = 10
)

var (
	ulidMu      sync.Mutex
	ulidLastMs  int64
	ulidCounter uint16
)

// ULID returns a new ULID for the current time.
func ULID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	now := time.Now().UnixMilli()
	if now == ulidLastMs {
		ulidCounter++
		if ulidCounter == 0 {
			for now == ulidLastMs {
				time.Sleep(time.Millisecond)
				now = time.Now().UnixMilli()
			}
		}
	}
	if now != ulidLastMs {
		ulidLastMs = now
		ulidCounter = 0
	}

	var entropy [10]byte
	_, _ = rand.Read(entropy[:])
	entropy[0] ^= byte(ulidCounter >> 8)
	entropy[1] ^= byte(ulidCounter)
	return encodeULID(now, entropy)
}

// encodeULID writes the 48-bit timestamp as 10 characters and the 80-bit
// entropy as 16, five bits per character, most significant first.
func encodeULID(ms int64, entropy [10]byte) string {
	var out [ulidLen]byte
	for i := ulidTimeLen - 1; i >= 0; i-- {
		out[i] = crockford[ms&0x1F]
		ms >>= 5
	}

	var acc uint32
	bits := 0
	pos := ulidTimeLen
	for _, b := range entropy {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out[pos] = crockford[(acc>>bits)&0x1F]
			pos++
		}
	}
	return string(out[:])
}

// Alphanumeric returns a random string of n letters and digits.
func Alphanumeric(n int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}
