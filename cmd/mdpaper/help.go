package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpaper <input.md> [output.pdf] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a markdown file to a styled, paginated PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Markdown file to convert")
	fmt.Fprintln(w, "  output    Output file (default: input with .pdf extension)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>     Output file path")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <dur>     PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --html-only         Output HTML only, skip PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --page-size <s>     Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --orientation <s>   Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>        Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --style <s>         Style name, CSS file path, or raw CSS")
	fmt.Fprintln(w, "      --no-footer         Disable the running footer")
	fmt.Fprintln(w, "      --no-toc            Ignore [TOC] markers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed timing")
	fmt.Fprintln(w, "      --version           Show version and exit")
}
