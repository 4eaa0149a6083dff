// Package parse provides string parsing utilities for CLI commands.
package parse

import (
	"fmt"
	"strings"
)

// KeyValue splits "key=value" at the first '='. The value may be empty and
// may itself contain '='.
func KeyValue(s string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(s, "=")
	if !ok || key == "" {
		return "", "", false
	}
	return key, value, true
}

// ShortVar parses a "-v c=VALUE" assignment. The key must be exactly one
// byte.
func ShortVar(s string) (byte, string, error) {
	key, value, ok := KeyValue(s)
	if !ok {
		return 0, "", fmt.Errorf("invalid variable %q: expected c=VALUE", s)
	}
	if len(key) != 1 {
		return 0, "", fmt.Errorf("invalid variable %q: key must be a single character", s)
	}
	return key[0], value, nil
}

// LongVar parses a "-l name=VALUE" assignment.
func LongVar(s string) (string, string, error) {
	key, value, ok := KeyValue(s)
	if !ok {
		return "", "", fmt.Errorf("invalid variable %q: expected name=VALUE", s)
	}
	if strings.ContainsAny(key, "{}:") {
		return "", "", fmt.Errorf("invalid variable %q: name must not contain '{', '}' or ':'", s)
	}
	return key, value, nil
}
