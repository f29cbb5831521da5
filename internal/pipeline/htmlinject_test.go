package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestRenderShell(t *testing.T) {
	t.Parallel()

	s := NewShellInjection()
	got, err := s.RenderShell(context.Background(), "My Title", "<p>body</p>")
	if err != nil {
		t.Fatalf("RenderShell() error: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		`<meta charset="utf-8">`,
		`<meta name="viewport" content="width=device-width, initial-scale=1.0">`,
		"<title>My Title</title>",
		"<p>body</p>",
		"</body>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderShell() output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderShellEscapesTitle(t *testing.T) {
	t.Parallel()

	s := NewShellInjection()
	got, err := s.RenderShell(context.Background(), `<script>alert("x")</script>`, "<p>ok</p>")
	if err != nil {
		t.Fatalf("RenderShell() error: %v", err)
	}

	if strings.Contains(got, "<script>") {
		t.Errorf("RenderShell() did not escape title:\n%s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("RenderShell() output missing escaped title:\n%s", got)
	}
}

func TestRenderShellCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewShellInjection()
	if _, err := s.RenderShell(ctx, "Title", "<p>x</p>"); err == nil {
		t.Error("RenderShell() with canceled context returned nil error")
	}
}

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		css      string
		expected string
	}{
		{
			name:     "empty CSS returns unchanged",
			html:     "<html><head></head><body></body></html>",
			css:      "",
			expected: "<html><head></head><body></body></html>",
		},
		{
			name:     "inserts before closing head",
			html:     "<html><head></head><body></body></html>",
			css:      "body{color:red}",
			expected: "<html><head><style>body{color:red}</style></head><body></body></html>",
		},
		{
			name:     "inserts after body when no head",
			html:     "<body><p>text</p></body>",
			css:      "p{margin:0}",
			expected: "<body><style>p{margin:0}</style><p>text</p></body>",
		},
		{
			name:     "prepends when no head or body",
			html:     "<p>bare</p>",
			css:      "p{margin:0}",
			expected: "<style>p{margin:0}</style><p>bare</p>",
		},
		{
			name:     "escapes style-closing sequence",
			html:     "<html><head></head><body></body></html>",
			css:      "p{}</style><script>alert(1)</script>",
			expected: `<html><head><style>p{}<\/style><script>alert(1)<\/script></style></head><body></body></html>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := &CSSInjection{}
			got := s.InjectCSS(context.Background(), tt.html, tt.css)
			if got != tt.expected {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInjectCSSCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &CSSInjection{}
	htmlContent := "<html><head></head></html>"

	if got := s.InjectCSS(ctx, htmlContent, "body{}"); got != htmlContent {
		t.Errorf("InjectCSS() with canceled context = %q, want unchanged", got)
	}
}
