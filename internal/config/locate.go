package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/lox/preflop-trainer/internal/fileutil"
)

// FileName is the ranges file looked for in each search directory
const FileName = "ranges.toml"

// HCLFileName is the HCL alternative, checked after FileName
const HCLFileName = "ranges.hcl"

const appDirName = "preflop-trainer"

// ExampleRanges is written out when no ranges file exists yet
//
//go:embed ranges.example.toml
var ExampleRanges []byte

// Locator decides which ranges file to use. Empty directories are skipped.
type Locator struct {
	WorkDir   string // checked first
	ExeDir    string // directory of the running binary
	ConfigDir string // user config root; the file lives in a preflop-trainer subdirectory
	TempDir   string // last resort when the config directory is unusable
	Logger    *log.Logger
}

// DefaultLocator returns a locator for the current process
func DefaultLocator(logger *log.Logger) Locator {
	l := Locator{
		WorkDir: ".",
		TempDir: os.TempDir(),
		Logger:  logger.WithPrefix("config"),
	}
	if exe, err := os.Executable(); err == nil {
		l.ExeDir = filepath.Dir(exe)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		l.ConfigDir = dir
	}
	return l
}

// Locate returns the path of the ranges file to load. An explicit path must
// exist. Otherwise the working directory and the binary's directory are
// searched, then the user config directory, where the example ranges are
// written if nothing is there yet. If that fails the example goes to a
// temporary file.
func (l Locator) Locate(explicit string) (string, error) {
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}

	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("ranges file %q: %w", explicit, err)
		}
		return explicit, nil
	}

	for _, dir := range []string{l.WorkDir, l.ExeDir} {
		if path, ok := findIn(dir); ok {
			logger.Debug("Found ranges file", "path", path)
			return path, nil
		}
	}

	if l.ConfigDir != "" {
		path, err := l.seedConfigDir()
		if err == nil {
			return path, nil
		}
		logger.Warn("Could not use config directory", "dir", l.ConfigDir, "error", err)
	}

	if l.TempDir == "" {
		return "", errors.New("no ranges file found and no directory to create one in")
	}
	path := filepath.Join(l.TempDir, fmt.Sprintf("preflop_trainer_ranges_%d.toml", os.Getpid()))
	if err := fileutil.WriteFileAtomic(path, ExampleRanges, 0o644); err != nil {
		return "", fmt.Errorf("failed to write example ranges: %w", err)
	}
	logger.Warn("Using temporary ranges file", "path", path)
	return path, nil
}

func (l Locator) seedConfigDir() (string, error) {
	dir := filepath.Join(l.ConfigDir, appDirName)
	if path, ok := findIn(dir); ok {
		return path, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName)
	if err := fileutil.WriteFileAtomic(path, ExampleRanges, 0o644); err != nil {
		return "", err
	}
	if l.Logger != nil {
		l.Logger.Info("Created ranges file from example", "path", path)
	}
	return path, nil
}

func findIn(dir string) (string, bool) {
	if dir == "" {
		return "", false
	}
	for _, name := range []string{FileName, HCLFileName} {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
