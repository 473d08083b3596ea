// File: pkg/snapshot/render.go
package snapshot

import (
	"errors"
	"fmt"
	"strings"
)

// Section headings of the document.
const (
	structureHeading = "## Folder Structure"
	codeHeading      = "## Code Files"
)

// Markdown renders the document. The layout is fixed: title, structure
// section, then code section.
func (d *Document) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Folder Architecture for `%s`\n\n", d.Root)
	b.WriteString(structureHeading + "\n\n")
	b.WriteString(strings.Join(d.Structure, "\n"))
	b.WriteString("\n\n")
	b.WriteString(codeHeading + "\n\n")

	for _, entry := range d.Code {
		writeCodeEntry(&b, entry)
	}
	return b.String()
}

// writeCodeEntry renders a heading followed by a fenced block,
// or by an error line if the file could not be read.
func writeCodeEntry(b *strings.Builder, entry CodeEntry) {
	fmt.Fprintf(b, "### %s\n\n", entry.Name)

	if entry.Err != nil {
		fmt.Fprintf(b, "Error reading file: %s\n\n", readErrorReason(entry.Err))
		return
	}

	fmt.Fprintf(b, "```%s\n", entry.FenceTag())
	b.WriteString(entry.Content)
	b.WriteString("\n```\n\n")
}

// readErrorReason strips the FileReadError wrapper so the message is not
// prefixed twice in the document.
func readErrorReason(err error) string {
	var fre *FileReadError
	if errors.As(err, &fre) && fre.Err != nil {
		return fre.Err.Error()
	}
	return err.Error()
}
