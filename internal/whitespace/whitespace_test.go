// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package whitespace

import (
	"testing"

	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/source"
)

// textBuffer is a read-only Buffer over a snapshot of text
type textBuffer struct {
	lines source.Lines
}

func newTextBuffer(text string) *textBuffer {
	return &textBuffer{lines: source.MakeSourceLines("test.txt", []byte(text))}
}

func (b *textBuffer) LineCount() int {
	return len(b.lines)
}

func (b *textBuffer) LineAt(row int) string {
	return b.lines[row].Content()
}

// applyEdits applies changes computed against text and returns the result
func applyEdits(t *testing.T, text string, changes document.Changes) string {
	t.Helper()

	out, err := document.ApplyBatch([]byte(text), changes)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}
