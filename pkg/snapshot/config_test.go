package snapshot

import (
	"errors"
	"testing"
)

func TestDefaultRulesCodeFiles(t *testing.T) {
	rules := DefaultRules().compile()

	tests := []struct {
		name string
		want bool
	}{
		{"main.go", true},
		{"App.JS", true},
		{"style.css", true},
		{"view.hbs", true},
		{"data.json", true},
		{"Main.java", true},
		{"lib.cpp", true},
		{"lib.c", true},
		{"task.rb", true},
		{"index.php", true},
		{"index.html", true},
		{"package-lock.json", false},
		{".eslintrc.json", false},
		{"README.md", false},
		{"lib.h", false},
		{"Makefile", false},
		{"archive.tar.gz", false},
		{"go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.isCodeFile(tt.name); got != tt.want {
				t.Errorf("isCodeFile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDefaultRulesSkipDir(t *testing.T) {
	rules := DefaultRules().compile()

	tests := []struct {
		name string
		want bool
	}{
		{"node_modules", true},
		{".git", true},
		{".vscode", true},
		{"src", false},
		{"Node_Modules", false},
		{"node_modules_backup", false},
	}

	for _, tt := range tests {
		if got := rules.skipDir(tt.name); got != tt.want {
			t.Errorf("skipDir(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEmptyHiddenPrefixHidesNothing(t *testing.T) {
	rules := Rules{Extensions: []string{".go"}}.compile()

	if rules.skipDir(".git") {
		t.Error(".git pruned with an empty hidden prefix")
	}
	if !rules.isCodeFile(".hidden.go") {
		t.Error(".hidden.go not embedded with an empty hidden prefix")
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := map[string]string{
		"go":     ".go",
		".go":    ".go",
		".GO":    ".go",
		" Rb ":   ".rb",
		"":       "",
		"tar.gz": ".tar.gz",
	}
	for in, want := range tests {
		if got := normalizeExtension(in); got != want {
			t.Errorf("normalizeExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFileReadErrorUnwrap(t *testing.T) {
	err := &FileReadError{Path: "a.go", Err: ErrInvalidEncoding}

	if !errors.Is(err, ErrInvalidEncoding) {
		t.Error("FileReadError does not unwrap to its cause")
	}
	if got, want := err.Error(), "error reading file a.go: invalid UTF-8"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := readErrorReason(err); got != "invalid UTF-8" {
		t.Errorf("readErrorReason = %q, want %q", got, "invalid UTF-8")
	}
}

func TestStructureLines(t *testing.T) {
	if got, want := directoryLine("src", 2), "        - src/"; got != want {
		t.Errorf("directoryLine = %q, want %q", got, want)
	}
	if got, want := fileLine("a.go", 0), "    - a.go"; got != want {
		t.Errorf("fileLine = %q, want %q", got, want)
	}
	if got := (CodeEntry{Ext: ".json"}).FenceTag(); got != "json" {
		t.Errorf("FenceTag = %q, want %q", got, "json")
	}
}
