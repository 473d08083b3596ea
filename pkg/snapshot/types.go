package snapshot

import "strings"

// CodeEntry holds a recognized file whose content is embedded in the document.
type CodeEntry struct {
	Name    string // Base name of the file.
	Path    string // Path relative to the root, slash separated.
	Ext     string // Lowercase extension with leading dot.
	Content string // Decoded text content; empty when Err is set.
	Err     error  // Non-nil if the content could not be read.
}

// FenceTag returns the code fence language tag, the extension without its dot.
func (e CodeEntry) FenceTag() string {
	return strings.TrimPrefix(e.Ext, ".")
}

// Document is the assembled snapshot of a directory tree.
type Document struct {
	Root      string      // Root path as given by the caller.
	Structure []string    // Indented structure lines in traversal order.
	Code      []CodeEntry // Code entries in traversal order.
}

// Result summarizes a completed run.
type Result struct {
	Output       string // Path the document was written to.
	Directories  int    // Directories listed in the structure section.
	Files        int    // Files listed in the structure section.
	CodeEntries  int    // Entries in the code section, including failed reads.
	BytesWritten int    // Size of the written document.
	ReadErrors   error  // Combined per-file read errors, nil if none.

	Document *Document // The generated document.
}
