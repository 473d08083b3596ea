package snapshot

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    string
		wantErr string
	}{
		{name: "plain", input: []byte("a\nb\n"), want: "a\nb\n"},
		{name: "empty", input: []byte{}, want: ""},
		{name: "crlf", input: []byte("a\r\nb\r\n"), want: "a\nb\n"},
		{name: "lone cr", input: []byte("a\rb"), want: "a\nb"},
		{name: "multibyte", input: []byte("héllo ✓"), want: "héllo ✓"},
		{name: "byte order mark kept", input: []byte("\xef\xbb\xbfx"), want: "\ufeffx"},
		{name: "literal replacement character", input: []byte("\ufffd"), want: "\ufffd"},
		{name: "invalid first byte", input: []byte{0xff, 'a'}, wantErr: "cannot decode byte 0xff at position 0"},
		{name: "invalid in the middle", input: []byte("ab\xc3("), wantErr: "cannot decode byte 0xc3 at position 2"},
		{name: "truncated sequence", input: []byte("ok\xe2\x9c"), wantErr: "cannot decode byte 0xe2 at position 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeText(tt.input)
			if tt.wantErr != "" {
				if !errors.Is(err, ErrInvalidEncoding) {
					t.Fatalf("decodeText error = %v, want ErrInvalidEncoding", err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q does not contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeText returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("decodeText = %q, want %q", got, tt.want)
			}
		})
	}
}
