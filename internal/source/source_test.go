package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMakeSourceLines_empty(t *testing.T) {
	lines := MakeSourceLines("/test.txt", []byte{})
	if len(lines) != 1 {
		t.Fatalf("Expected exactly one (virtual) line from empty file, %d parsed:\n%#v",
			len(lines), lines)
	}
	if lines[0].Content() != "" {
		t.Fatalf("expected empty line, given %q", lines[0].Content())
	}
}

func TestMakeSourceLines_success(t *testing.T) {
	lines := MakeSourceLines("/test.txt", []byte("\n\n\n\n"))
	expectedLines := 5
	if len(lines) != expectedLines {
		t.Fatalf("Expected exactly %d lines, %d parsed",
			expectedLines, len(lines))
	}
}

func TestMakeSourceLines_noTrailingNewline(t *testing.T) {
	lines := MakeSourceLines("/test.txt", []byte("foo\r\nbar"))

	expected := []string{"foo\r", "bar"}
	given := make([]string, len(lines))
	for i, l := range lines {
		given[i] = l.Content()
	}
	if diff := cmp.Diff(expected, given); diff != "" {
		t.Fatalf("lines mismatch: %s", diff)
	}

	if lines[1].Range.Start.Byte != 5 {
		t.Fatalf("expected second line to start at byte 5, given %d",
			lines[1].Range.Start.Byte)
	}
}

func TestStringLines(t *testing.T) {
	lines := MakeSourceLines("/test.txt", []byte("a\nb\n"))
	expected := []string{"a\n", "b\n", ""}
	if diff := cmp.Diff(expected, StringLines(lines)); diff != "" {
		t.Fatalf("lines mismatch: %s", diff)
	}
}
