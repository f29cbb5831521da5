package mdpaper

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/mdpaper/mdpaper/internal/fileutil"
)

// pdfConverter abstracts HTML to PDF conversion to allow different backends.
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error)
}

// Compile-time interface checks
var (
	_ pdfConverter = (*rodConverter)(nil)
	_ pdfRenderer  = (*rodRenderer)(nil)
)

// pdfOptions holds options for PDF generation.
type pdfOptions struct {
	Page   *PageSettings
	Footer *footerData
}

// footerData holds the resolved footer content handed to Chrome.
type footerData struct {
	Title          string
	ShowPageNumber bool
	ShowTitle      bool
	Position       string // title side: "left", "center", "right"
}

// Paper dimensions in inches, portrait orientation.
var paperDimensions = map[string][2]float64{
	PageSizeA4:     {8.27, 11.69},
	PageSizeLetter: {8.5, 11},
	PageSizeLegal:  {8.5, 14},
}

// Default margins approximate the 2cm side/top and 2.5cm bottom geometry.
const (
	defaultMarginInches       = 0.79
	defaultMarginBottomInches = 0.98
	footerExtraInches         = 0.25 // extra bottom space when a footer is shown
)

// footerFontFamily is the font stack for the Chrome-native footer.
const footerFontFamily = "'Segoe UI', Arial, sans-serif"

// rodRenderer implements pdfRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	// Configure launcher
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderFromFile opens a local HTML file in headless Chrome and renders it to PDF.
// Returns explicit errors instead of panicking when browser operations fail.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for page to load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Check context after page load
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Generate PDF
	reader, err := page.PDF(buildPDFOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// buildPDFOptions constructs proto.PagePrintToPDF from page settings and footer.
func buildPDFOptions(opts *pdfOptions) *proto.PagePrintToPDF {
	var page *PageSettings
	var footer *footerData
	if opts != nil {
		page = opts.Page
		footer = opts.Footer
	}

	width, height := resolvePaperSize(page)
	margin, marginBottom := resolveMargins(page, footer != nil)

	pdfOpts := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(margin),
		MarginBottom:    floatPtr(marginBottom),
		MarginLeft:      floatPtr(margin),
		MarginRight:     floatPtr(margin),
		PrintBackground: true,
	}

	if footer != nil {
		pdfOpts.DisplayHeaderFooter = true
		pdfOpts.HeaderTemplate = "<span></span>" // Empty header
		pdfOpts.FooterTemplate = buildFooterTemplate(footer)
	}

	return pdfOpts
}

// resolvePaperSize returns paper width and height in inches for the settings.
// Unknown or empty sizes fall back to A4; landscape swaps the dimensions.
func resolvePaperSize(p *PageSettings) (width, height float64) {
	size := PageSizeA4
	if p != nil && p.Size != "" {
		size = strings.ToLower(p.Size)
	}

	dims, ok := paperDimensions[size]
	if !ok {
		dims = paperDimensions[PageSizeA4]
	}
	width, height = dims[0], dims[1]

	if p != nil && strings.ToLower(p.Orientation) == OrientationLandscape {
		width, height = height, width
	}
	return width, height
}

// resolveMargins returns side and bottom margins in inches.
// Margin 0 selects the built-in asymmetric defaults; an explicit margin is
// applied to all sides with extra bottom space reserved for the footer.
func resolveMargins(p *PageSettings, hasFooter bool) (side, bottom float64) {
	if p == nil || p.Margin == 0 {
		return defaultMarginInches, defaultMarginBottomInches
	}

	side = p.Margin
	bottom = p.Margin
	if hasFooter {
		bottom += footerExtraInches
	}
	return side, bottom
}

// buildFooterTemplate generates an HTML template for Chrome's native footer:
// "Page X of Y" in the center and the document title on the configured side.
// Chrome substitutes the pageNumber/totalPages CSS classes at print time.
func buildFooterTemplate(data *footerData) string {
	if data == nil || (!data.ShowPageNumber && !data.ShowTitle) {
		return "<span></span>"
	}

	pageCounter := ""
	if data.ShowPageNumber {
		pageCounter = `Page <span class="pageNumber"></span> of <span class="totalPages"></span>`
	}

	title := ""
	if data.ShowTitle {
		title = html.EscapeString(data.Title)
	}

	left, center, right := "", pageCounter, ""
	switch strings.ToLower(data.Position) {
	case "left":
		left = title
	case "center":
		// Title replaces the counter in the center slot; counter moves right.
		center = title
		right = pageCounter
	default:
		right = title
	}

	return fmt.Sprintf(
		`<div style="font-size:9px; font-family:%s; color:#666; width:100%%; padding:0 %.2fin; display:flex; justify-content:space-between;"><span>%s</span><span>%s</span><span>%s</span></div>`,
		footerFontFamily, defaultMarginInches, left, center, right,
	)
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// rodConverter converts HTML to PDF using headless Chrome via go-rod.
type rodConverter struct {
	renderer pdfRenderer
	closer   io.Closer
}

// newRodConverter creates a rodConverter with production renderer.
func newRodConverter(timeout time.Duration) *rodConverter {
	r := newRodRenderer(timeout)
	return &rodConverter{renderer: r, closer: r}
}

// ToPDF converts HTML content to PDF bytes using headless Chrome.
func (c *rodConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath, opts)
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
