package config

import (
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvConfig    = "VAREXPAND_CONFIG"
	EnvMaxDepth  = "VAREXPAND_MAX_DEPTH"
	EnvMaxRounds = "VAREXPAND_MAX_ROUNDS"
	EnvLogLevel  = "VAREXPAND_LOG_LEVEL"
	EnvLogFormat = "VAREXPAND_LOG_FORMAT"
)

// ApplyEnv overlays the VAREXPAND_* environment variables onto f. Only set,
// parseable values are applied.
func ApplyEnv(f *File) {
	if v := os.Getenv(EnvMaxDepth); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MaxDepth = n
		}
	}
	if v := os.Getenv(EnvMaxRounds); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MaxRounds = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		f.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		f.Log.Format = v
	}
}

// DefaultPath returns the variables file named by VAREXPAND_CONFIG, or "".
func DefaultPath() string {
	return os.Getenv(EnvConfig)
}
