// File: pkg/snapshot/traversal.go
package snapshot

import (
	"io/fs"
	"os"
	"path/filepath"

	"foldersnap/pkg/ignore"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// node is a directory visited during the walk.
type node struct {
	path  string        // Absolute path of the directory.
	depth int           // Nesting level relative to the root.
	dirs  []fs.DirEntry // Immediate subdirectories that will be descended into.
	files []fs.DirEntry // Immediate files.
}

// walker accumulates the structure and code sections during a depth-first walk.
type walker struct {
	root          string
	rules         compiledRules
	ignore        *ignore.Matcher
	maxFileSizeKB int
	logger        *zap.Logger

	structure   []string
	code        []CodeEntry
	readErrors  error
	directories int
	files       int
}

func newWalker(root string, opts Options, gi *ignore.Matcher, logger *zap.Logger) *walker {
	return &walker{
		root:          root,
		rules:         opts.Rules.compile(),
		ignore:        gi,
		maxFileSizeKB: opts.MaxFileSizeKB,
		logger:        logger,
	}
}

// walk visits dir and everything below it: the directory line, its files,
// then each subdirectory in listing order.
func (w *walker) walk(dir, name string, depth int) {
	n, err := w.readNode(dir, depth)
	if err != nil {
		w.logger.Warn("Failed to read directory, skipping",
			zap.String("directory", dir),
			zap.Error(err))
		return
	}

	w.logger.Debug("Visiting directory",
		zap.String("directory", dir),
		zap.Int("depth", depth),
		zap.Int("subdirectories", len(n.dirs)),
		zap.Int("files", len(n.files)))

	w.structure = append(w.structure, directoryLine(name, depth))
	w.directories++

	for _, f := range n.files {
		w.visitFile(filepath.Join(dir, f.Name()), f.Name(), depth)
	}

	for _, d := range n.dirs {
		w.walk(filepath.Join(dir, d.Name()), d.Name(), depth+1)
	}
}

// visitFile lists a file and, if it qualifies, reads it into the code section.
func (w *walker) visitFile(path, name string, depth int) {
	w.structure = append(w.structure, fileLine(name, depth))
	w.files++

	if !w.rules.isCodeFile(name) {
		return
	}

	entry := readCodeEntry(path, w.relativePath(path), name, w.maxFileSizeKB, w.logger)
	if entry.Err != nil {
		w.readErrors = multierr.Append(w.readErrors, entry.Err)
	}
	w.code = append(w.code, entry)
}

// readNode lists a directory and splits its entries into subdirectories and files.
// Excluded and hidden directories are pruned here, before anything is descended into.
func (w *walker) readNode(dir string, depth int) (node, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return node{}, err
	}

	n := node{path: dir, depth: depth}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		isDir, isLinkedDir := classify(path, entry)
		if isLinkedDir {
			w.logger.Debug("Skipping symlinked directory", zap.String("path", path))
			continue
		}

		if w.ignore.Match(path, isDir) {
			w.logger.Debug("Skipping path ignored by .gitignore", zap.String("path", path))
			continue
		}

		if !isDir {
			n.files = append(n.files, entry)
			continue
		}

		if w.rules.skipDir(entry.Name()) {
			w.logger.Debug("Skipping excluded directory", zap.String("directory", path))
			continue
		}
		n.dirs = append(n.dirs, entry)
	}
	return n, nil
}

// classify reports whether entry is a directory and whether it is a symlink
// pointing at a directory. Symlinked directories are neither listed nor followed.
func classify(path string, entry fs.DirEntry) (isDir, isLinkedDir bool) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, false // Dangling links are listed as files.
	}
	return false, info.IsDir()
}

// relativePath returns path relative to the root, slash separated.
func (w *walker) relativePath(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
