// File: pkg/snapshot/decode.go
package snapshot

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// decodeText converts raw file bytes to text.
// Content that is not valid UTF-8 is rejected with the offset of the first bad byte;
// line endings are normalized so "\r\n" and "\r" both become "\n".
func decodeText(data []byte) (string, error) {
	if offset := invalidUTF8Offset(data); offset >= 0 {
		return "", fmt.Errorf("%w: cannot decode byte 0x%02x at position %d", ErrInvalidEncoding, data[offset], offset)
	}
	return string(normalizeNewlines(data)), nil
}

// invalidUTF8Offset returns the index of the first byte that does not start
// a valid UTF-8 sequence, or -1 if data is valid.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// normalizeNewlines rewrites Windows and classic Mac line endings to "\n".
func normalizeNewlines(data []byte) []byte {
	if !bytes.ContainsRune(data, '\r') {
		return data
	}
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
}
