package main

import (
	"strings"
	"testing"
)

func TestDiffPreviewLines(t *testing.T) {
	before := "hello world\nsecond line\n"
	after := "bonjour le monde\nsecond line\n"
	lines := diffPreviewLines(before, after, 10)

	var del, add, same bool
	for _, l := range lines {
		switch {
		case l == "- hello world":
			del = true
		case l == "+ bonjour le monde":
			add = true
		case l == "  second line":
			same = true
		}
	}
	if !del || !add || !same {
		t.Fatalf("diff missing expected lines: %q", lines)
	}
}

func TestDiffPreviewTruncates(t *testing.T) {
	var b, a strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("old\n")
		a.WriteString("new\n")
	}
	lines := diffPreviewLines(b.String(), a.String(), 4)
	if len(lines) != 5 {
		t.Fatalf("len = %d, want maxLines plus ellipsis", len(lines))
	}
	if lines[len(lines)-1] != "  …" {
		t.Fatalf("last line = %q, want ellipsis", lines[len(lines)-1])
	}
}

func TestDiffPreviewIdentical(t *testing.T) {
	lines := diffPreviewLines("same\n", "same\n", 10)
	for _, l := range lines {
		if strings.HasPrefix(l, "+ ") || strings.HasPrefix(l, "- ") {
			t.Fatalf("identical inputs produced a change line: %q", l)
		}
	}
}
