// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package diff

import (
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/source"
	"github.com/pmezard/go-difflib/difflib"
)

const (
	OpReplace = 'r'
	OpDelete  = 'd'
	OpInsert  = 'i'
	OpEqual   = 'e'
)

// Diff calculates difference between document's content
// and after byte sequence and returns it as document.Changes.
//
// Changes span whole lines and are all expressed against before,
// so they can be applied as a single batch.
func Diff(h document.Handle, before, after []byte) document.Changes {
	return diffLines(
		source.MakeSourceLines(h.Filename(), before),
		source.MakeSourceLines(h.Filename(), after))
}

// diffLines calculates difference between two source.Lines
// and returns them as document.Changes
func diffLines(beforeLines, afterLines source.Lines) document.Changes {
	m := difflib.NewMatcher(
		source.StringLines(beforeLines),
		source.StringLines(afterLines))

	changes := make(document.Changes, 0)

	for _, c := range m.GetOpCodes() {
		if c.Tag == OpEqual {
			continue
		}

		// lines to pick from the original document (to delete/replace/insert to)
		beforeStart, beforeEnd := c.I1, c.I2
		// lines to pick from the new document (to replace ^ with)
		afterStart, afterEnd := c.J1, c.J2

		rng := document.Range{
			Start: rowStart(beforeLines, beforeStart),
			End:   rowStart(beforeLines, beforeEnd),
		}

		var newBytes []byte
		if c.Tag == OpReplace || c.Tag == OpInsert {
			for _, line := range afterLines[afterStart:afterEnd] {
				newBytes = append(newBytes, line.Bytes...)
			}
		}

		changes = append(changes, &document.Edit{
			Rng:     rng,
			NewText: string(newBytes),
		})
	}

	return changes
}

// rowStart returns position of the first byte of the given row
// or the end of the document for rows past the last one
func rowStart(lines source.Lines, row int) document.Pos {
	if row < len(lines) {
		return document.Pos{Line: row, Column: 0}
	}
	last := len(lines) - 1
	return document.Pos{
		Line:   last,
		Column: len(lines[last].Bytes),
	}
}

// Unified returns a unified diff of the two byte sequences
// with filename used in both headers.
func Unified(filename string, before, after []byte) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + filename,
		ToFile:   "b/" + filename,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(ud)
}
