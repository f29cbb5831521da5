package pipeline

import (
	"context"
	"strings"
	"testing"
)

const tocTestDoc = `<html><head><title>T</title></head><body>
<p>[TOC]</p>
<h1 id="intro">Intro</h1>
<h2 id="setup">Setup</h2>
<h3 id="install">Install</h3>
<h4 id="deep">Too Deep</h4>
<h2 id="usage">Usage</h2>
</body></html>`

func TestInjectTOCExpandsMarker(t *testing.T) {
	t.Parallel()

	inj := NewTOCInjection()
	got, err := inj.InjectTOC(context.Background(), tocTestDoc, true)
	if err != nil {
		t.Fatalf("InjectTOC() error: %v", err)
	}

	if strings.Contains(got, "[TOC]") {
		t.Error("marker was not removed")
	}
	if !strings.Contains(got, `<nav class="toc">`) {
		t.Fatalf("no TOC nav generated:\n%s", got)
	}

	// Numbered entries link to heading anchors.
	for _, want := range []string{
		`<a href="#intro">1. Intro</a>`,
		`<a href="#setup">1.1. Setup</a>`,
		`<a href="#install">1.1.1. Install</a>`,
		`<a href="#usage">1.2. Usage</a>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("TOC missing entry %q:\n%s", want, got)
		}
	}

	// H4 is below the listed depth.
	if strings.Contains(got, "#deep") {
		t.Error("TOC lists heading deeper than H3")
	}
}

func TestInjectTOCDisabledRemovesMarker(t *testing.T) {
	t.Parallel()

	inj := NewTOCInjection()
	got, err := inj.InjectTOC(context.Background(), tocTestDoc, false)
	if err != nil {
		t.Fatalf("InjectTOC() error: %v", err)
	}

	if strings.Contains(got, "[TOC]") {
		t.Error("marker was not removed when disabled")
	}
	if strings.Contains(got, `<nav class="toc">`) {
		t.Error("TOC generated while disabled")
	}
}

func TestInjectTOCNoMarkerPassthrough(t *testing.T) {
	t.Parallel()

	doc := `<html><body><h1 id="a">A</h1></body></html>`
	inj := NewTOCInjection()
	got, err := inj.InjectTOC(context.Background(), doc, true)
	if err != nil {
		t.Fatalf("InjectTOC() error: %v", err)
	}

	if got != doc {
		t.Errorf("InjectTOC() = %q, want unchanged document", got)
	}
}

func TestInjectTOCNoHeadings(t *testing.T) {
	t.Parallel()

	doc := `<html><body><p>[TOC]</p><p>text only</p></body></html>`
	inj := NewTOCInjection()
	got, err := inj.InjectTOC(context.Background(), doc, true)
	if err != nil {
		t.Fatalf("InjectTOC() error: %v", err)
	}

	if strings.Contains(got, "[TOC]") {
		t.Error("marker was not removed")
	}
	if strings.Contains(got, "<nav") {
		t.Error("TOC generated for a document without headings")
	}
}

func TestExtractHeadings(t *testing.T) {
	t.Parallel()

	headings := extractHeadings(tocTestDoc, 1, 3)
	if len(headings) != 4 {
		t.Fatalf("extractHeadings() returned %d headings, want 4", len(headings))
	}
	if headings[0].Text != "Intro" || headings[0].ID != "intro" || headings[0].Level != 1 {
		t.Errorf("unexpected first heading: %+v", headings[0])
	}
}

func TestNumberingStateGapSkipping(t *testing.T) {
	t.Parallel()

	var n numberingState

	// H2 first normalizes to depth 1; H2 -> H4 jump becomes a direct child.
	num, depth := n.next(2)
	if num != "1." || depth != 1 {
		t.Errorf("next(2) = %q, %d; want \"1.\", 1", num, depth)
	}
	num, depth = n.next(4)
	if num != "1.1." || depth != 2 {
		t.Errorf("next(4) = %q, %d; want \"1.1.\", 2", num, depth)
	}
	num, depth = n.next(2)
	if num != "2." || depth != 1 {
		t.Errorf("next(2) = %q, %d; want \"2.\", 1", num, depth)
	}
}

func TestStripHTMLTags(t *testing.T) {
	t.Parallel()

	got := stripHTMLTags(` <em>Hello</em> &amp; <code>bye</code> `)
	want := "Hello & bye"
	if got != want {
		t.Errorf("stripHTMLTags() = %q, want %q", got, want)
	}
}
