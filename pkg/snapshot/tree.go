// File: pkg/snapshot/tree.go
package snapshot

import (
	"fmt"
	"strings"
)

// indentWidth is the number of spaces per nesting level.
const indentWidth = 4

// indent returns the leading whitespace for an entry at the given depth.
func indent(depth int) string {
	return strings.Repeat(" ", indentWidth*depth)
}

// directoryLine formats the structure line of a directory at depth.
func directoryLine(name string, depth int) string {
	return fmt.Sprintf("%s- %s/", indent(depth), name)
}

// fileLine formats the structure line of a file whose parent directory is at depth.
func fileLine(name string, depth int) string {
	return fmt.Sprintf("%s- %s", indent(depth+1), name)
}
