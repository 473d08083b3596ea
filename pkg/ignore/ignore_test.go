package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestFromReaderMatch(t *testing.T) {
	base := t.TempDir()
	m := FromReader(base, strings.NewReader("# comment\n*.log\nbuild/\n!keep.log\n"), zaptest.NewLogger(t))

	tests := []struct {
		name  string
		path  string
		isDir bool
		want  bool
	}{
		{name: "glob match", path: filepath.Join(base, "app.log"), want: true},
		{name: "nested glob match", path: filepath.Join(base, "sub", "app.log"), want: true},
		{name: "negated pattern", path: filepath.Join(base, "keep.log"), want: false},
		{name: "directory pattern", path: filepath.Join(base, "build"), isDir: true, want: true},
		{name: "directory pattern on file", path: filepath.Join(base, "build"), isDir: false, want: false},
		{name: "relative path", path: "debug.log", want: true},
		{name: "unmatched file", path: filepath.Join(base, "main.go"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(tt.path, tt.isDir); got != tt.want {
				t.Errorf("Match(%q, %v) = %v, want %v", tt.path, tt.isDir, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("secret.js\n"), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	m, err := Load(root, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !m.Match(filepath.Join(root, "secret.js"), false) {
		t.Error("secret.js should be ignored")
	}
	if m.Match(filepath.Join(root, "public.js"), false) {
		t.Error("public.js should not be ignored")
	}
}

func TestLoadWithoutIgnoreFile(t *testing.T) {
	root := t.TempDir()

	m, err := Load(root, nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if m.Match(filepath.Join(root, "anything.go"), false) {
		t.Error("matcher without patterns ignored a path")
	}
}

func TestNilMatcher(t *testing.T) {
	var m *Matcher
	if m.Match("/any/path", true) {
		t.Error("nil matcher ignored a path")
	}
}
