// Package app wires configuration, log discovery, and the UI into a
// running viewer session.
package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/loglens/loglens/internal/config"
	"github.com/loglens/loglens/internal/logfile"
	"github.com/loglens/loglens/internal/session"
	"github.com/loglens/loglens/internal/ui"
)

// Options configure the loglens application.
type Options struct {
	ConfigPath string // empty uses config.DefaultPath
	LogFile    string // empty picks the newest *.log in LogDir
	LogDir     string // empty uses the working directory
	DebugLog   string // empty disables diagnostics logging
}

// Run boots the viewer and blocks until the user quits. Any returned
// error is a fatal startup condition: missing log file, unreadable log
// file, or a bad configuration.
func Run(opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLogger, err := newLogger(opts.DebugLog)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	defer closeLogger()

	path := opts.LogFile
	if path == "" {
		dir := opts.LogDir
		if dir == "" {
			dir = "."
		}
		path, err = logfile.Latest(dir)
		if err != nil {
			return fmt.Errorf("select log file: %w", err)
		}
	}

	records, dropped, err := logfile.Load(path, logger)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	sess := session.New(records, session.Options{
		ClearTermsOnReset: cfg.ResetClearsSearch,
	})

	return ui.Run(ui.Options{
		Session: sess,
		Config:  cfg,
		LogPath: path,
		Dropped: dropped,
	})
}

// newLogger builds the diagnostics logger. The TUI owns the terminal,
// so diagnostics only ever go to a file; without --debug-log they are
// discarded.
func newLogger(path string) (*zap.Logger, func(), error) {
	if path == "" {
		return zap.NewNop(), func() {}, nil
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}
