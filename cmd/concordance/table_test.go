package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderTableKeepsHeaderCase(t *testing.T) {
	var out bytes.Buffer
	rendered := renderTable(&out,
		[]string{"Input", "Distinct"},
		[][]string{{"book.txt", "7"}, {"short"}},
		[]columnAlignment{alignLeft, alignRight},
	)

	requireContains(t, rendered, "Distinct")
	if strings.Contains(rendered, "DISTINCT") {
		t.Fatalf("headers must not be upper-cased: %q", rendered)
	}
	requireContains(t, rendered, "book.txt")
	requireContains(t, rendered, "short")
	if strings.ContainsRune(rendered, '╭') {
		t.Fatalf("non-terminal output should use ASCII borders: %q", rendered)
	}
}

func TestRenderTableNoColumns(t *testing.T) {
	if got := renderTable(&bytes.Buffer{}, nil, nil, nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
