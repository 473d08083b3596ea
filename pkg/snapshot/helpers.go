// File: pkg/snapshot/helpers.go
package snapshot

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// checkRoot verifies that root exists and is a directory.
func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return invalidRootError(root)
	}
	return nil
}

// WriteDocument writes the rendered document to outputPath, replacing any existing file.
// It returns the number of bytes written.
func WriteDocument(outputPath, content string, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Writing snapshot to output file", zap.String("outputFile", outputPath))

	outFile, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}

	writer := bufio.NewWriter(outFile)
	n, err := writer.WriteString(content)
	if err != nil {
		_ = outFile.Close()
		logger.Error("Failed to write output file", zap.String("file", outputPath), zap.Error(err))
		return n, fmt.Errorf("failed to write content: %w", err)
	}

	if err := writer.Flush(); err != nil {
		_ = outFile.Close()
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return n, fmt.Errorf("failed to flush output: %w", err)
	}

	if err := outFile.Close(); err != nil {
		logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(err))
		return n, fmt.Errorf("failed to close output file: %w", err)
	}
	return n, nil
}
