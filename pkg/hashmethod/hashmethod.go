// Package hashmethod maps algorithm names such as "md5" or "sha3-256" to
// hash constructors.
package hashmethod

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"sort"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/sha3"
)

// Method is a named hash algorithm.
type Method struct {
	Name string
	// DigestSize is the digest length in bytes.
	DigestSize int
	New        func() hash.Hash
}

// Sum hashes the concatenation of parts.
func (m Method) Sum(parts ...[]byte) []byte {
	h := m.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// Registry is an immutable set of methods keyed by name.
type Registry struct {
	methods map[string]Method
}

// NewRegistry creates a registry. A later method replaces an earlier one
// with the same name.
func NewRegistry(methods ...Method) *Registry {
	r := &Registry{methods: make(map[string]Method, len(methods))}
	for _, m := range methods {
		r.methods[m.Name] = m
	}
	return r
}

// Lookup returns the method registered under name.
func (r *Registry) Lookup(name string) (Method, bool) {
	if r == nil {
		return Method{}, false
	}
	m, ok := r.methods[name]
	return m, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// With returns a copy of r with the given methods added.
func (r *Registry) With(methods ...Method) *Registry {
	all := make([]Method, 0, len(r.methods)+len(methods))
	for _, m := range r.methods {
		all = append(all, m)
	}
	return NewRegistry(append(all, methods...)...)
}

var defaultRegistry = NewRegistry(
	Method{Name: "md4", DigestSize: md4.Size, New: md4.New},
	Method{Name: "md5", DigestSize: md5.Size, New: md5.New},
	Method{Name: "sha1", DigestSize: sha1.Size, New: sha1.New},
	Method{Name: "sha224", DigestSize: sha256.Size224, New: sha256.New224},
	Method{Name: "sha256", DigestSize: sha256.Size, New: sha256.New},
	Method{Name: "sha384", DigestSize: sha512.Size384, New: sha512.New384},
	Method{Name: "sha512", DigestSize: sha512.Size, New: sha512.New},
	Method{Name: "sha3-224", DigestSize: 28, New: sha3.New224},
	Method{Name: "sha3-256", DigestSize: 32, New: sha3.New256},
	Method{Name: "sha3-384", DigestSize: 48, New: sha3.New384},
	Method{Name: "sha3-512", DigestSize: 64, New: sha3.New512},
	Method{Name: "blake2b", DigestSize: blake2b.Size, New: unkeyed(blake2b.New512)},
	Method{Name: "blake2b-256", DigestSize: blake2b.Size256, New: unkeyed(blake2b.New256)},
	Method{Name: "blake2s-256", DigestSize: blake2s.Size, New: unkeyed(blake2s.New256)},
	Method{Name: "blake3", DigestSize: 32, New: func() hash.Hash { return blake3.New() }},
)

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry
}

// unkeyed adapts the keyed blake2 constructors. With a nil key they cannot
// fail.
func unkeyed(fn func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := fn(nil)
		if err != nil {
			panic("hashmethod: unkeyed blake2: " + err.Error())
		}
		return h
	}
}
