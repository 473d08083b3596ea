package snapshot

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// readCodeEntry reads a recognized file into a CodeEntry.
// Failures are stored on the entry as a *FileReadError instead of being returned.
func readCodeEntry(filePath, relPath, name string, maxFileSizeKB int, logger *zap.Logger) CodeEntry {
	entry := CodeEntry{
		Name: name,
		Path: relPath,
		Ext:  fileExtension(name),
	}

	content, err := readText(filePath, maxFileSizeKB)
	if err != nil {
		logger.Warn("Failed to read file",
			zap.String("filePath", filePath),
			zap.Error(err))
		entry.Err = &FileReadError{Path: relPath, Err: err}
		return entry
	}

	logger.Debug("Read file content",
		zap.String("filePath", filePath),
		zap.Int("contentSizeBytes", len(content)))
	entry.Content = content
	return entry
}

// readText opens, fully reads and closes a file, then decodes it as UTF-8.
func readText(filePath string, maxFileSizeKB int) (string, error) {
	if maxFileSizeKB > 0 {
		info, err := os.Stat(filePath)
		if err != nil {
			return "", err
		}
		if limit := int64(maxFileSizeKB) * 1024; info.Size() > limit {
			return "", fmt.Errorf("%w: %d bytes, limit is %d bytes", ErrFileTooLarge, info.Size(), limit)
		}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return decodeText(data)
}
