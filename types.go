package mdpaper

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches. A Margin of 0 selects the built-in A4 defaults
// (roughly 2cm on the sides and top, 2.5cm at the bottom).
const (
	MinMargin = 0.25
	MaxMargin = 3.0
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "a4", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides; 0 = defaults
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin != 0 && (p.Margin < MinMargin || p.Margin > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case "", PageSizeA4, PageSizeLetter, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case "", OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Input contains conversion parameters.
type Input struct {
	Markdown   string        // Markdown content (required)
	SourcePath string        // Source file path, used for title fallback (optional)
	CSS        string        // Extra CSS appended after the embedded style (optional)
	Page       *PageSettings // Page settings (optional, nil = defaults)
	Footer     *Footer       // Footer config (optional, nil = default footer)
	NoFooter   bool          // Suppress the running footer entirely
	DisableTOC bool          // Ignore [TOC] markers instead of expanding them
	HTMLOnly   bool          // Skip PDF generation, return composed HTML only
}

// Footer configures the running page footer.
type Footer struct {
	ShowPageNumber bool   // "Page X of Y"
	ShowTitle      bool   // document title
	Position       string // title side: "left", "center", "right" (default: "right")
}

// DefaultFooter returns the standard footer: page counter in the center,
// document title on the right.
func DefaultFooter() *Footer {
	return &Footer{
		ShowPageNumber: true,
		ShowTitle:      true,
		Position:       "right",
	}
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means use the default footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", "left", "center", "right":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
}

// Result holds the conversion output.
type Result struct {
	PDF   []byte // PDF bytes (nil when Input.HTMLOnly)
	HTML  []byte // Composed HTML document
	Title string // Derived document title, never empty
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout       time.Duration
	styleInput    string // style name, file path, or raw CSS
	resolvedStyle string // CSS content after resolution
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdpaper: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle sets the style sheet: a built-in style name, a CSS file path,
// or raw CSS content. The default is the built-in "default" style.
func WithStyle(nameOrPathOrCSS string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPathOrCSS
	}
}
