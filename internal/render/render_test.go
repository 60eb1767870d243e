package render

import (
	"strings"
	"testing"

	"github.com/diogo/ollamaterm/internal/config"
)

// TestMarkdown tests basic rendering
func TestMarkdown(t *testing.T) {
	out, err := Markdown("# Title\n\nSome **bold** text.", DefaultOptions())
	if err != nil {
		t.Fatalf("Markdown() unexpected error: %v", err)
	}
	if !strings.Contains(out, "Title") {
		t.Errorf("output missing heading text: %q", out)
	}
	if !strings.Contains(out, "bold") {
		t.Errorf("output missing body text: %q", out)
	}
}

// TestMarkdownStyles tests the known style names
func TestMarkdownStyles(t *testing.T) {
	for _, style := range []string{"dark", "light", "auto", ""} {
		t.Run("style "+style, func(t *testing.T) {
			out, err := Markdown("plain text", DefaultOptions().WithStyle(style))
			if err != nil {
				t.Fatalf("Markdown() unexpected error: %v", err)
			}
			if !strings.Contains(out, "plain text") {
				t.Errorf("output missing content: %q", out)
			}
		})
	}
}

// TestMarkdownWithWidth tests that wrapping respects the width
func TestMarkdownWithWidth(t *testing.T) {
	long := strings.Repeat("word ", 40)
	out, err := MarkdownWithWidth(long, 40)
	if err != nil {
		t.Fatalf("MarkdownWithWidth() unexpected error: %v", err)
	}

	for _, line := range strings.Split(out, "\n") {
		// Allow slack for margins and invisible styling
		if len([]rune(line)) > 60 {
			t.Errorf("line longer than expected: %q", line)
		}
	}
}

// TestOptionsBuilders tests the fluent option helpers
func TestOptionsBuilders(t *testing.T) {
	opts := DefaultOptions().WithWidth(120).WithStyle("light")
	if opts.Width != 120 {
		t.Errorf("Width = %d, want 120", opts.Width)
	}
	if opts.Style != "light" {
		t.Errorf("Style = %s, want light", opts.Style)
	}
}

// TestFromConfig tests mapping the user config onto renderer options
func TestFromConfig(t *testing.T) {
	md := config.MarkdownConfig{Style: "light", PreserveNewLines: false}
	opts := FromConfig(md, 72)

	if opts.Style != "light" {
		t.Errorf("Style = %s, want light", opts.Style)
	}
	if opts.Width != 72 {
		t.Errorf("Width = %d, want 72", opts.Width)
	}
	if opts.PreserveNewLines {
		t.Error("PreserveNewLines = true, want false")
	}

	// Empty style falls back to the default
	opts = FromConfig(config.MarkdownConfig{}, 72)
	if opts.Style != "dark" {
		t.Errorf("Style = %s, want dark", opts.Style)
	}
}
