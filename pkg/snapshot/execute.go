// File: pkg/snapshot/execute.go
package snapshot

import (
	"fmt"
	"path/filepath"
	"time"

	"foldersnap/pkg/ignore"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Generate walks opts.Root and builds the document in memory.
// The only error it returns for a readable tree is ErrInvalidRoot;
// unreadable files are reported inside the document.
func Generate(opts Options, logger *zap.Logger) (*Document, *Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := checkRoot(opts.Root); err != nil {
		logger.Error("Invalid root directory", zap.String("root", opts.Root), zap.Error(err))
		return nil, nil, err
	}

	absRoot, err := filepath.Abs(opts.Root)
	if err != nil {
		logger.Error("Failed to resolve root path", zap.String("root", opts.Root), zap.Error(err))
		return nil, nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	var gi *ignore.Matcher
	if opts.RespectGitignore {
		gi, err = ignore.Load(absRoot, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load ignore patterns: %w", err)
		}
	}

	w := newWalker(absRoot, opts, gi, logger)
	w.walk(absRoot, filepath.Base(absRoot), 0)

	doc := &Document{
		Root:      opts.Root,
		Structure: w.structure,
		Code:      w.code,
	}
	res := &Result{
		Output:      opts.Output,
		Directories: w.directories,
		Files:       w.files,
		CodeEntries: len(w.code),
		ReadErrors:  w.readErrors,
		Document:    doc,
	}
	return doc, res, nil
}

// Run generates the snapshot of opts.Root and writes it to opts.Output.
func Run(opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	startTime := time.Now()
	logger.Info("Starting snapshot", zap.String("root", opts.Root), zap.String("output", opts.Output))

	doc, res, err := Generate(opts, logger)
	if err != nil {
		return nil, err
	}

	n, err := WriteDocument(opts.Output, doc.Markdown(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}
	res.BytesWritten = n

	if res.ReadErrors != nil {
		logger.Warn("Some files could not be read",
			zap.Int("count", len(multierr.Errors(res.ReadErrors))),
			zap.Error(res.ReadErrors))
	}

	logger.Info("Snapshot completed",
		zap.String("outputFile", res.Output),
		zap.Int("directories", res.Directories),
		zap.Int("files", res.Files),
		zap.Int("codeEntries", res.CodeEntries),
		zap.Int("bytesWritten", res.BytesWritten),
		zap.Duration("elapsed", time.Since(startTime)))
	return res, nil
}
