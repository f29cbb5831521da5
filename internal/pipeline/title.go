package pipeline

import (
	"path/filepath"
	"strings"
)

// fallbackTitle is used when no heading is found and no source path is known.
const fallbackTitle = "Document"

// DeriveTitle extracts the document title from raw markdown content.
//
// If the very first line begins with a level-1 heading marker ("# "), it
// becomes the title with heading markers and surrounding whitespace removed.
// Otherwise the title is the source filename without its extension. Headings
// appearing after the first line are never inspected. The result is never
// empty.
func DeriveTitle(content, sourcePath string) string {
	if strings.HasPrefix(content, "# ") {
		firstLine, _, _ := strings.Cut(content, "\n")
		title := strings.TrimSpace(strings.ReplaceAll(firstLine, "#", ""))
		if title != "" {
			return title
		}
	}

	if stem := filenameStem(sourcePath); stem != "" {
		return stem
	}
	return fallbackTitle
}

// filenameStem returns the base name of path without its extension.
func filenameStem(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
