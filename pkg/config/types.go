package config

import (
	"github.com/getmockd/varexpand/pkg/varexpand"
)

// File is the content of a variables file.
type File struct {
	// MaxDepth bounds nested expansion; 0 keeps the engine default.
	MaxDepth int `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty"`

	// MaxRounds bounds the rounds hash option; 0 keeps the engine default.
	MaxRounds int `json:"maxRounds,omitempty" yaml:"maxRounds,omitempty"`

	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`

	Variables []Variable `json:"variables" yaml:"variables"`
}

// LogConfig selects logger settings.
type LogConfig struct {
	Level  string `json:"level,omitempty" yaml:"level,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	// File, when set, receives a copy of every log record.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// Variable is one table entry. Key is a single character.
type Variable struct {
	Key     string `json:"key,omitempty" yaml:"key,omitempty"`
	LongKey string `json:"longKey,omitempty" yaml:"longKey,omitempty"`
	Value   string `json:"value" yaml:"value"`
}

// Table converts the variables, in file order. Call Validate first; an
// invalid short key is dropped.
func (f *File) Table() varexpand.Table {
	table := make(varexpand.Table, 0, len(f.Variables))
	for _, v := range f.Variables {
		e := varexpand.Entry{LongKey: v.LongKey, Value: v.Value}
		if len(v.Key) == 1 {
			e.Key = v.Key[0]
		}
		table = append(table, e)
	}
	return table
}

// EngineConfig returns the engine limits from f. Host, hash registry and
// logger are left for the caller.
func (f *File) EngineConfig() varexpand.Config {
	return varexpand.Config{
		MaxDepth:  f.MaxDepth,
		MaxRounds: f.MaxRounds,
	}
}
