package mdpaper

import (
	"context"
	"fmt"
	"os"

	"github.com/mdpaper/mdpaper/internal/assets"
	"github.com/mdpaper/mdpaper/internal/fileutil"
	"github.com/mdpaper/mdpaper/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.ShellRenderer        = (*pipeline.ShellInjection)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.TOCInjector          = (*pipeline.TOCInjection)(nil)
)

// Converter orchestrates the markdown-to-PDF conversion pipeline.
// Create with NewConverter(), use Convert() for conversion, and Close() when done.
type Converter struct {
	cfg           converterConfig
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	shellRenderer pipeline.ShellRenderer
	cssInjector   pipeline.CSSInjector
	tocInjector   pipeline.TOCInjector
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithStyle).
// Returns error if style resolution fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{timeout: defaultTimeout},
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		shellRenderer: pipeline.NewShellInjection(),
		cssInjector:   &pipeline.CSSInjection{},
		tocInjector:   pipeline.NewTOCInjection(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Resolve style input (name, path, or CSS content) to CSS content
	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	// Create PDF converter if not injected (e.g., by tests)
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the result containing the
// composed HTML, the derived title, and the PDF bytes.
// The context is used for cancellation and timeout.
// If input.HTMLOnly is true, PDF generation is skipped (for debugging).
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	// Derive title from the raw markdown before any transformation
	title := pipeline.DeriveTitle(input.Markdown, input.SourcePath)

	// Preprocess markdown
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert to HTML fragment
	fragment, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Wrap the fragment in the document shell
	htmlContent, err := c.shellRenderer.RenderShell(ctx, title, fragment)
	if err != nil {
		return nil, fmt.Errorf("composing document: %w", err)
	}

	// Expand [TOC] markers
	htmlContent, err = c.tocInjector.InjectTOC(ctx, htmlContent, !input.DisableTOC)
	if err != nil {
		return nil, fmt.Errorf("injecting TOC: %w", err)
	}

	// Build combined CSS (page breaks + embedded style + user CSS).
	// Order matters: embedded style first (base), user CSS last (can override).
	cssContent := buildPageBreaksCSS() + c.cfg.resolvedStyle
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}

	// Inject CSS
	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &Result{
		HTML:  []byte(htmlContent),
		Title: title,
	}

	// Skip PDF generation in HTMLOnly mode
	if input.HTMLOnly {
		return res, nil
	}

	// Convert to PDF
	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{
		Page:   input.Page,
		Footer: resolveFooter(input, title),
	})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// Called during NewConverter() after options are applied.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	// Style name -> embedded assets
	css, err := assets.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their input validated earlier at flag/config resolution time.
// Both paths converge here, ensuring all inputs are validated before processing.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	if err := input.Footer.Validate(); err != nil {
		return err
	}
	return nil
}

// resolveFooter maps the public footer configuration to renderer footerData.
// A nil Input.Footer selects the default footer; NoFooter suppresses it.
func resolveFooter(input Input, title string) *footerData {
	if input.NoFooter {
		return nil
	}

	f := input.Footer
	if f == nil {
		f = DefaultFooter()
	}
	if !f.ShowPageNumber && !f.ShowTitle {
		return nil
	}

	return &footerData{
		Title:          title,
		ShowPageNumber: f.ShowPageNumber,
		ShowTitle:      f.ShowTitle,
		Position:       f.Position,
	}
}
