// Package pipeline implements the Markdown-to-HTML stages of the converter.
//
// This package handles preprocessing, HTML conversion, and composition:
//   - Markdown preprocessing (line-ending normalization, blank-line compression)
//   - Markdown to HTML conversion via Goldmark
//   - Title derivation from the first line or the source filename
//   - Wrapping the fragment in a full HTML5 document shell
//   - CSS injection into the composed document
//   - [TOC] marker expansion into a generated table of contents
//
// PDF generation is handled separately by the root mdpaper package using
// headless Chrome (go-rod). This separation keeps the pipeline focused on
// document structure and content, while PDF rendering handles page layout,
// margins, and browser-based rendering concerns.
package pipeline
