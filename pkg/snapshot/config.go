// File: pkg/snapshot/config.go
package snapshot

import (
	"path/filepath"
	"strings"
)

// Default values used when no configuration overrides them.
const (
	DefaultRoot         = "."
	DefaultOutput       = "folder_structure.md"
	DefaultHiddenPrefix = "."
)

// Options holds the configuration for a single snapshot run.
type Options struct {
	Root             string // Directory to snapshot.
	Output           string // Destination path for the Markdown document.
	Rules            Rules  // Traversal and extraction rules.
	MaxFileSizeKB    int    // Maximum size (in KB) of an embedded file; 0 disables the limit.
	RespectGitignore bool   // If true, paths matched by the root .gitignore are skipped.
}

// Rules describes which directories are pruned and which files are embedded.
type Rules struct {
	Extensions   []string // Recognized extensions, with leading dot.
	ExcludeDirs  []string // Directory names that are never descended into.
	ExcludeFiles []string // File names that are never embedded.
	HiddenPrefix string   // Names starting with this prefix are hidden.
}

// DefaultRules returns the built-in extension set and exclusion lists.
func DefaultRules() Rules {
	return Rules{
		Extensions: []string{
			".js", ".java", ".cpp", ".c", ".rb", ".go",
			".php", ".html", ".css", ".hbs", ".json",
		},
		ExcludeDirs:  []string{"node_modules"},
		ExcludeFiles: []string{"package-lock.json"},
		HiddenPrefix: DefaultHiddenPrefix,
	}
}

// compiledRules is the lookup form of Rules used during a walk.
type compiledRules struct {
	extensions   map[string]bool
	excludeDirs  map[string]bool
	excludeFiles map[string]bool
	hiddenPrefix string
}

func (r Rules) compile() compiledRules {
	c := compiledRules{
		extensions:   make(map[string]bool, len(r.Extensions)),
		excludeDirs:  make(map[string]bool, len(r.ExcludeDirs)),
		excludeFiles: make(map[string]bool, len(r.ExcludeFiles)),
		hiddenPrefix: r.HiddenPrefix,
	}
	for _, ext := range r.Extensions {
		c.extensions[normalizeExtension(ext)] = true
	}
	for _, name := range r.ExcludeDirs {
		c.excludeDirs[name] = true
	}
	for _, name := range r.ExcludeFiles {
		c.excludeFiles[name] = true
	}
	return c
}

// isHidden reports whether name starts with the hidden prefix.
// An empty prefix hides nothing.
func (c compiledRules) isHidden(name string) bool {
	return c.hiddenPrefix != "" && strings.HasPrefix(name, c.hiddenPrefix)
}

// skipDir reports whether a directory must be pruned before descending.
func (c compiledRules) skipDir(name string) bool {
	return c.excludeDirs[name] || c.isHidden(name)
}

// isCodeFile reports whether a file's content belongs in the code section.
func (c compiledRules) isCodeFile(name string) bool {
	if c.excludeFiles[name] || c.isHidden(name) {
		return false
	}
	return c.extensions[fileExtension(name)]
}

// fileExtension returns the lowercase extension of name, including the dot.
func fileExtension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// normalizeExtension lowercases ext and makes sure it carries a leading dot,
// so "go", ".go" and ".GO" configure the same extension.
func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
