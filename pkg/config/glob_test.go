package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/varexpand/pkg/varexpand"
)

func TestLoadGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "b", "nested"), 0o755))

	write := func(rel, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, rel), []byte(content), 0o644))
	}
	write("a.yaml", "maxDepth: 4\nvariables:\n  - key: u\n    value: alice\n")
	write("b/nested/c.yaml", "maxDepth: 8\nlog:\n  level: debug\nvariables:\n  - key: u\n    value: bob\n  - key: d\n    value: example.com\n")
	write("b/notes.txt", "not a variables file")

	f, err := LoadGlob(filepath.Join(dir, "**", "*.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8, f.MaxDepth)
	assert.Equal(t, "debug", f.Log.Level)

	out, _, err := varexpand.ExpandString("%u@%d", f.Table(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", out)
}

func TestLoadGlob_PlainPath(t *testing.T) {
	path := writeFile(t, "vars.yaml", "variables:\n  - key: u\n    value: alice\n")
	f, err := LoadGlob(path)
	require.NoError(t, err)
	assert.Len(t, f.Variables, 1)
}

func TestLoadGlob_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadGlob(filepath.Join(dir, "*.yaml"))
	assert.ErrorIs(t, err, ErrNoMatches)
	assert.ErrorIs(t, err, ErrFileNotFound)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("maxDepth: -3\n"), 0o644))
	_, err = LoadGlob(filepath.Join(dir, "*.yaml"))
	assert.ErrorIs(t, err, ErrSchema)

	_, err = LoadGlob(filepath.Join(dir, "[unclosed"))
	assert.Error(t, err)
}
