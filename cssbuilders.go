package mdpaper

import "fmt"

// Widow/orphan control: minimum lines kept together at page boundaries.
const (
	orphanLines = 3
	widowLines  = 3
)

// buildPageBreaksCSS generates CSS for page break control: headings are
// kept with the content that follows them, and paragraphs, list items and
// table cells carry widow/orphan minimums.
func buildPageBreaksCSS() string {
	return fmt.Sprintf(`
/* Page breaks: prevent heading alone at page bottom */
h1, h2, h3, h4, h5, h6 {
  break-after: avoid;
  page-break-after: avoid;
  break-inside: avoid;
  page-break-inside: avoid;
}

/* Page breaks: orphan/widow control */
p, li, td, th, blockquote {
  orphans: %d;
  widows: %d;
}
`, orphanLines, widowLines)
}
