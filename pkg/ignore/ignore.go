// Package ignore matches paths against the .gitignore file at a snapshot root.
package ignore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"
	"go.uber.org/zap"
)

// FileName is the ignore file looked up at the root.
const FileName = ".gitignore"

// Matcher reports whether a path under its base directory is ignored.
// The zero value and a nil *Matcher ignore nothing.
type Matcher struct {
	base    string                  // Absolute directory the patterns are relative to.
	matcher gitignore.IgnoreMatcher // Compiled patterns, nil if none were loaded.
	logger  *zap.Logger
}

// Load compiles the .gitignore found directly under root.
// A missing file is not an error and yields a Matcher that ignores nothing.
func Load(root string, logger *zap.Logger) (*Matcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	base, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	path := filepath.Join(base, FileName)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", path))
			return &Matcher{base: base, logger: logger}, nil
		}
		logger.Error("Failed to read ignore file", zap.String("filePath", path), zap.Error(err))
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	logger.Debug("Loaded ignore file", zap.String("filePath", path))
	return FromReader(base, file, logger), nil
}

// FromReader compiles ignore patterns read from r, relative to the base directory.
func FromReader(base string, r io.Reader, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}
	return &Matcher{
		base:    base,
		matcher: gitignore.NewGitIgnoreFromReader(base, r),
		logger:  logger,
	}
}

// Match reports whether path is ignored. Relative paths are resolved against the base.
func (m *Matcher) Match(path string, isDir bool) bool {
	if m == nil || m.matcher == nil {
		return false
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.base, path)
	}

	matched := m.matcher.Match(path, isDir)
	if matched {
		m.logger.Debug("Path matches ignore pattern", zap.String("path", path), zap.Bool("isDir", isDir))
	}
	return matched
}
