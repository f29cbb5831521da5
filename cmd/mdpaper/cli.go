package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	mdpaper "github.com/mdpaper/mdpaper"
	"github.com/mdpaper/mdpaper/internal/config"
	"github.com/mdpaper/mdpaper/internal/fileutil"
	"github.com/mdpaper/mdpaper/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput       = errors.New("no input file specified")
	ErrInputNotFound = errors.New("input file not found")
	ErrReadMarkdown  = errors.New("failed to read markdown file")
	ErrWriteOutput   = errors.New("failed to write output file")
	ErrBadTimeout    = errors.New("invalid timeout")
)

// Output file extensions per mode.
const (
	pdfExt  = ".pdf"
	htmlExt = ".html"
)

// run parses arguments, reads the input file, drives the conversion, and
// writes the single output artifact.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "mdpaper %s\n", Version)
		return nil
	}

	if len(positional) == 0 {
		printUsage(env.Stderr)
		return ErrNoInput
	}

	inputPath := positional[0]

	// Resolve configuration: defaults <- config file <- flags
	cfg := env.Config
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
	}
	applyFlags(cfg, flags)

	// Resolve output path: -o flag, second positional, or input with
	// the extension swapped.
	outputPath := flags.output
	if outputPath == "" && len(positional) > 1 {
		outputPath = positional[1]
	}
	if outputPath == "" {
		ext := pdfExt
		if flags.htmlOnly {
			ext = htmlExt
		}
		outputPath = fileutil.ReplaceExt(inputPath, ext)
	}

	// Check input before creating any resources; nothing is written on failure.
	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	progressf(env, flags, "Reading: %s\n", inputPath)

	opts, err := converterOptions(cfg, flags)
	if err != nil {
		return err
	}

	conv, err := env.NewConverter(opts...)
	if err != nil {
		return err
	}
	defer conv.Close()

	converting := "Converting to PDF...\n"
	if flags.htmlOnly {
		converting = "Converting to HTML...\n"
	}
	progressf(env, flags, converting)
	started := env.Now()

	result, err := conv.Convert(ctx, buildInput(string(content), inputPath, cfg, flags))
	if err != nil {
		return decorateError(err)
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Converted in %s\n", env.Now().Sub(started).Round(time.Millisecond))
	}

	artifact := result.PDF
	if flags.htmlOnly {
		artifact = result.HTML
	}

	// #nosec G306 -- output files are intended to be readable
	if err := os.WriteFile(outputPath, artifact, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	created := "PDF created: %s\n"
	if flags.htmlOnly {
		created = "HTML created: %s\n"
	}
	progressf(env, flags, "Title: %s\n", result.Title)
	progressf(env, flags, created, outputPath)
	if info, err := os.Stat(outputPath); err == nil {
		progressf(env, flags, "File size: %.1f KB\n", float64(info.Size())/1024)
	}

	return nil
}

// applyFlags overrides config values with explicitly set flags.
func applyFlags(cfg *config.Config, flags *cliFlags) {
	if flags.pageSize != "" {
		cfg.Page.Size = flags.pageSize
	}
	if flags.orientation != "" {
		cfg.Page.Orientation = flags.orientation
	}
	if flags.margin != 0 {
		cfg.Page.Margin = flags.margin
	}
	if flags.style != "" {
		cfg.Style = flags.style
	}
	if flags.noFooter {
		cfg.Footer.Enabled = false
	}
}

// converterOptions maps resolved configuration to library options.
func converterOptions(cfg *config.Config, flags *cliFlags) ([]mdpaper.Option, error) {
	var opts []mdpaper.Option

	if cfg.Style != "" && cfg.Style != "default" {
		opts = append(opts, mdpaper.WithStyle(cfg.Style))
	}

	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadTimeout, flags.timeout)
		}
		opts = append(opts, mdpaper.WithTimeout(d))
	}

	return opts, nil
}

// buildInput maps resolved configuration to the library Input.
func buildInput(markdown, sourcePath string, cfg *config.Config, flags *cliFlags) mdpaper.Input {
	input := mdpaper.Input{
		Markdown:   markdown,
		SourcePath: sourcePath,
		Page: &mdpaper.PageSettings{
			Size:        cfg.Page.Size,
			Orientation: cfg.Page.Orientation,
			Margin:      cfg.Page.Margin,
		},
		NoFooter:   !cfg.Footer.Enabled,
		DisableTOC: flags.noTOC,
		HTMLOnly:   flags.htmlOnly,
	}

	if cfg.Footer.Enabled {
		input.Footer = &mdpaper.Footer{
			ShowPageNumber: cfg.Footer.ShowPageNumber,
			ShowTitle:      cfg.Footer.ShowTitle,
			Position:       cfg.Footer.Position,
		}
	}

	return input
}

// decorateError appends actionable hints to browser errors.
func decorateError(err error) error {
	switch {
	case errors.Is(err, mdpaper.ErrBrowserConnect):
		if h := hints.ForBrowserConnect(); h != "" {
			return fmt.Errorf("%w%s", err, h)
		}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, mdpaper.ErrPageLoad):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	}
	return err
}

// progressf prints an informational progress line unless quiet is set.
func progressf(env *Environment, flags *cliFlags, format string, args ...any) {
	if flags.quiet {
		return
	}
	fmt.Fprintf(env.Stdout, format, args...)
}
