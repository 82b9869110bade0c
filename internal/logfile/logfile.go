// Package logfile locates the active log file and loads it into an
// in-memory record store.
package logfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/loglens/loglens/internal/logrec"
)

// ErrNoLogFiles reports that the directory holds no *.log files.
var ErrNoLogFiles = errors.New("no log files found")

// Latest returns the most recently modified *.log file in dir. Equal
// modification times are broken by picking the lexicographically
// greatest filename, so the choice is deterministic.
func Latest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("scan log dir: %w", err)
	}

	var (
		bestPath string
		bestName string
		bestInfo os.FileInfo
	)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		switch {
		case bestInfo == nil,
			info.ModTime().After(bestInfo.ModTime()),
			info.ModTime().Equal(bestInfo.ModTime()) && entry.Name() > bestName:
			bestPath = filepath.Join(dir, entry.Name())
			bestName = entry.Name()
			bestInfo = info
		}
	}
	if bestInfo == nil {
		return "", ErrNoLogFiles
	}
	return bestPath, nil
}

// Load reads the whole file at path into an ordered record store. The
// file handle is released before Load returns; a mid-read failure
// aborts the load rather than producing a partial store. Lines that do
// not match the record pattern are dropped and counted; each dropped
// line is reported to the logger at debug level.
func Load(path string, logger *zap.Logger) ([]logrec.Record, int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var records []logrec.Record
	dropped := 0
	lineNo := 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		rec, ok := logrec.Parse(line)
		if !ok {
			dropped++
			logger.Debug("dropped unparseable line",
				zap.String("file", path),
				zap.Int("line", lineNo))
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("read log: %w", err)
	}

	logger.Info("log file loaded",
		zap.String("file", path),
		zap.Int("records", len(records)),
		zap.Int("dropped", dropped))
	return records, dropped, nil
}
