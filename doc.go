// Package mdpaper converts Markdown documents into styled, paginated PDF
// files using headless Chrome.
//
// # Quick Start
//
// Create a converter, convert markdown, and close when done:
//
//	conv, err := mdpaper.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, mdpaper.Input{
//	    Markdown:   "# Hello\n\nWorld",
//	    SourcePath: "hello.md",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.pdf", result.PDF, 0644)
//
// The result contains the PDF bytes (result.PDF), the composed HTML
// (result.HTML) for debugging, and the derived document title
// (result.Title). Use Input.HTMLOnly to skip PDF generation.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line-ending normalization, blank-line
//     compression)
//  2. Markdown to HTML conversion via Goldmark (GFM tables, fenced code
//     blocks, syntax highlighting, footnotes, definition lists)
//  3. Document composition (title derivation, HTML5 shell, embedded style
//     sheet, optional [TOC] expansion)
//  4. PDF rendering via headless Chrome (go-rod) with A4 page geometry and
//     a running "Page X of Y" footer
//
// # Title Derivation
//
// If the raw markdown starts with a level-1 heading ("# Title"), the first
// line becomes the document title. Otherwise the title falls back to the
// source filename without its extension. Only the very first line is
// inspected; a heading appearing later is never picked up.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package mdpaper
