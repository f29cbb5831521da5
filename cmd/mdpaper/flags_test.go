package main

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseFlags([]string{
		"mdpaper", "doc.md", "out.pdf",
		"-o", "override.pdf",
		"--page-size", "letter",
		"--orientation", "landscape",
		"--margin", "1.5",
		"--timeout", "2m",
		"--no-footer", "--no-toc", "--html-only",
		"-q", "-v",
	})
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}

	if len(positional) != 2 || positional[0] != "doc.md" || positional[1] != "out.pdf" {
		t.Errorf("positional = %v, want [doc.md out.pdf]", positional)
	}
	if flags.output != "override.pdf" {
		t.Errorf("output = %q, want override.pdf", flags.output)
	}
	if flags.pageSize != "letter" || flags.orientation != "landscape" || flags.margin != 1.5 {
		t.Errorf("page flags = %q/%q/%v", flags.pageSize, flags.orientation, flags.margin)
	}
	if flags.timeout != "2m" {
		t.Errorf("timeout = %q, want 2m", flags.timeout)
	}
	if !flags.noFooter || !flags.noTOC || !flags.htmlOnly || !flags.quiet || !flags.verbose {
		t.Errorf("bool flags = %+v, want all set", flags)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseFlags([]string{"mdpaper", "doc.md"})
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}

	if len(positional) != 1 || positional[0] != "doc.md" {
		t.Errorf("positional = %v, want [doc.md]", positional)
	}
	if flags.output != "" || flags.config != "" || flags.style != "" || flags.timeout != "" {
		t.Errorf("string flags should default empty: %+v", flags)
	}
	if flags.margin != 0 {
		t.Errorf("margin = %v, want 0", flags.margin)
	}
	if flags.noFooter || flags.noTOC || flags.htmlOnly || flags.quiet || flags.verbose || flags.version {
		t.Errorf("bool flags should default false: %+v", flags)
	}
}

func TestParseFlagsUnknown(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"mdpaper", "--bogus"}); err == nil {
		t.Error("parseFlags() accepted an unknown flag")
	}
}
