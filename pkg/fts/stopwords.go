package fts

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StopwordsName is the class name of the stopwords filter.
const StopwordsName = "stopwords"

var stopwordsClass = &Class{
	Name: StopwordsName,
	Supports: func(lang *Language) bool {
		return lang != nil && lang.Name != ""
	},
	New: newStopwords,
}

type stopwords struct {
	words map[string]struct{}
}

// newStopwords reads <stopwords_dir>/stopwords_<lang>.txt: one word per
// line, '|' starts a comment.
func newStopwords(lang *Language, settings map[string]string) (Filter, error) {
	dir := "."
	for k, v := range settings {
		if k != "stopwords_dir" {
			return nil, fmt.Errorf("unknown setting: %s", k)
		}
		dir = v
	}

	path := filepath.Join(dir, "stopwords_"+strings.ToLower(lang.Name)+".txt")
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no stopwords for language %q: %s", lang.Name, path)
		}
		return nil, err
	}
	defer func() { _ = file.Close() }()

	s := &stopwords{words: make(map[string]struct{})}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "|")
		for _, w := range strings.Fields(line) {
			s.words[w] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return s, nil
}

func (s *stopwords) Filter(token string) (string, bool, error) {
	if _, stop := s.words[token]; stop {
		return "", false, nil
	}
	return token, true, nil
}

func (s *stopwords) Close() error { return nil }
