package config

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoMatches is returned by LoadGlob when a pattern matches no file.
var ErrNoMatches = fmt.Errorf("%w: pattern matched no files", ErrFileNotFound)

// LoadGlob loads every variables file matching pattern, which may use **
// for recursive matching, and merges them in lexical path order. A pattern
// without glob syntax is a plain LoadFromFile.
//
// Variables are concatenated, so an entry from an earlier file wins the
// first-match lookup. Non-zero limits and log settings of later files
// override earlier ones.
func LoadGlob(pattern string) (*File, error) {
	if !hasMeta(pattern) {
		return LoadFromFile(pattern)
	}

	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expanding glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, pattern)
	}
	sort.Strings(matches)

	merged := &File{}
	for _, path := range matches {
		f, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		merged.merge(f)
	}
	return merged, nil
}

func (f *File) merge(o *File) {
	if o.MaxDepth != 0 {
		f.MaxDepth = o.MaxDepth
	}
	if o.MaxRounds != 0 {
		f.MaxRounds = o.MaxRounds
	}
	if o.Log.Level != "" {
		f.Log.Level = o.Log.Level
	}
	if o.Log.Format != "" {
		f.Log.Format = o.Log.Format
	}
	if o.Log.File != "" {
		f.Log.File = o.Log.File
	}
	f.Variables = append(f.Variables, o.Variables...)
}

func hasMeta(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
