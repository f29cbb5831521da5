package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrShellRender indicates document shell rendering failed.
var ErrShellRender = errors.New("document shell rendering failed")

// shellTemplate is the fixed HTML5 document shell. The title is escaped by
// html/template; the body fragment is trusted Goldmark output. The style
// sheet is injected afterwards by CSSInjection.
const shellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}
</body>
</html>`

// ShellData holds the values interpolated into the document shell.
type ShellData struct {
	Title string
	Body  template.HTML
}

// ShellRenderer defines the contract for wrapping a fragment in the shell.
type ShellRenderer interface {
	RenderShell(ctx context.Context, title, fragment string) (string, error)
}

// ShellInjection wraps an HTML fragment in the fixed document shell.
type ShellInjection struct {
	tmpl *template.Template
}

// NewShellInjection creates a ShellInjection with the built-in shell template.
func NewShellInjection() *ShellInjection {
	// The template is a compile-time constant; parse failure is a programmer error.
	return &ShellInjection{tmpl: template.Must(template.New("shell").Parse(shellTemplate))}
}

// RenderShell embeds the fragment in a complete HTML5 document with the
// given title. The title is escaped so user-supplied text cannot break the
// document structure.
func (s *ShellInjection) RenderShell(ctx context.Context, title, fragment string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	data := ShellData{Title: title, Body: template.HTML(fragment)} // #nosec G203 -- fragment is Goldmark output, not raw user HTML
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrShellRender, err)
	}
	return buf.String(), nil
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	sanitizedCSS := sanitizeCSS(cssContent)
	styleBlock := "<style>" + sanitizedCSS + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
// Prevents CSS injection by escaping </style> and similar closing sequences.
func sanitizeCSS(css string) string {
	// Escape </ sequences to prevent closing the style tag prematurely
	return strings.ReplaceAll(css, "</", `<\/`)
}
