package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
}

// reservedKeys cannot be short keys: they are modifiers, the long key
// opener, numeric prefix characters or the escape.
const reservedKeys = "ULEXRNHMDT{%-.0123456789"

// IsReservedKey reports whether c can never be referenced as a short key.
func IsReservedKey(c byte) bool {
	return strings.IndexByte(reservedKeys, c) >= 0
}

var validLogFormats = map[string]bool{"": true, "text": true, "json": true}

// Validate checks every field and returns all problems joined.
func (f *File) Validate() error {
	var errs []error

	if f.MaxDepth < 0 {
		errs = append(errs, &ValidationError{Field: "maxDepth", Message: "must not be negative"})
	}
	if f.MaxRounds < 0 {
		errs = append(errs, &ValidationError{Field: "maxRounds", Message: "must not be negative"})
	}
	if !validLogFormats[strings.ToLower(f.Log.Format)] {
		errs = append(errs, &ValidationError{Field: "log.format", Message: fmt.Sprintf("unknown format %q", f.Log.Format)})
	}

	for i, v := range f.Variables {
		field := fmt.Sprintf("variables[%d]", i)
		switch {
		case v.Key == "" && v.LongKey == "":
			errs = append(errs, &ValidationError{Field: field, Message: "needs key or longKey"})
		case len(v.Key) > 1:
			errs = append(errs, &ValidationError{Field: field + ".key", Message: fmt.Sprintf("%q is not a single character", v.Key)})
		case len(v.Key) == 1 && IsReservedKey(v.Key[0]):
			errs = append(errs, &ValidationError{Field: field + ".key", Message: fmt.Sprintf("%q is reserved", v.Key)})
		}
		if strings.ContainsAny(v.LongKey, "{}") {
			errs = append(errs, &ValidationError{Field: field + ".longKey", Message: "must not contain braces"})
		}
	}

	return errors.Join(errs...)
}
