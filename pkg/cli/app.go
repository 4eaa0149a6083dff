package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/getmockd/varexpand/pkg/config"
	"github.com/getmockd/varexpand/pkg/hashmethod"
	"github.com/getmockd/varexpand/pkg/logging"
	"github.com/getmockd/varexpand/pkg/varexpand"
)

// app is what a subcommand runs against: the loaded variables file, the
// logger and an engine configured from both.
type app struct {
	file    *config.File
	logger  *slog.Logger
	hashes  *hashmethod.Registry
	engine  *varexpand.Engine
	logFile *os.File
}

// loadApp resolves the variables file and logger settings. Explicit flags
// beat the environment, which beats the file, which beats flag defaults.
func loadApp(opts *rootOptions, levelSet, formatSet bool, stderr io.Writer) (*app, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	file := &config.File{}
	if path != "" {
		var err error
		file, err = config.LoadGlob(path)
		if err != nil {
			return nil, err
		}
	}
	config.ApplyEnv(file)

	level := file.Log.Level
	if levelSet || level == "" {
		level = opts.logLevel
	}
	format := file.Log.Format
	if formatSet || format == "" {
		format = opts.logFormat
	}

	a := &app{file: file, hashes: hashmethod.Default()}

	logCfg := logging.Config{
		Level:  logging.ParseLevel(level),
		Format: logging.ParseFormat(format),
		Output: stderr,
	}
	handler := logging.NewHandler(logCfg)
	if file.Log.File != "" {
		f, err := os.OpenFile(file.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		fileCfg := logCfg
		fileCfg.Output = f
		handler = logging.NewTee(handler, logging.NewHandler(fileCfg))
	}
	a.logger = slog.New(handler)

	engineCfg := file.EngineConfig()
	engineCfg.Hashes = a.hashes
	engineCfg.Logger = a.logger
	a.engine = varexpand.New(engineCfg)

	if path != "" {
		a.logger.Debug("loaded variables file", "path", path, "variables", len(file.Variables))
	}
	return a, nil
}

// Close releases the log file, if any.
func (a *app) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	if err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}
