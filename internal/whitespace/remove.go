// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package whitespace

import (
	"github.com/hashicorp/whitespace-ls/internal/document"
)

// RemoveOptions represent exceptions to trailing whitespace removal.
// Each enabled exception is an independent filter;
// a row is skipped as soon as any of them applies.
type RemoveOptions struct {
	// IgnoreCurrentLine skips rows containing a cursor
	IgnoreCurrentLine bool

	// IgnoreWhitespaceOnlyLines skips rows with nothing but whitespace
	IgnoreWhitespaceOnlyLines bool

	// IgnoreCommentOnlyLines skips rows which are just a comment marker
	IgnoreCommentOnlyLines bool

	// KeepMarkdownLineBreaks skips runs of two or more trailing
	// whitespace characters after content (Markdown hard line break).
	// Callers only enable it for Markdown documents.
	KeepMarkdownLineBreaks bool

	// CommentMarkers overrides DefaultCommentMarkers
	CommentMarkers string
}

// TrailingWhitespaceEdits returns edits deleting trailing whitespace
// from every row of buf which no exception applies to.
//
// cursorRows is only consulted when IgnoreCurrentLine is enabled.
// All edits are single-row deletions expressed against buf.
func TrailingWhitespaceEdits(buf Buffer, opts RemoveOptions, cursorRows RowSet) document.Changes {
	changes := make(document.Changes, 0)

	for row, n := 0, buf.LineCount(); row < n; row++ {
		line := buf.LineAt(row)

		start, end, ok := TrailingWhitespace(line)
		if !ok {
			continue
		}
		if opts.IgnoreCurrentLine && cursorRows.Has(row) {
			continue
		}
		if opts.IgnoreWhitespaceOnlyLines && start == 0 {
			continue
		}
		if opts.IgnoreCommentOnlyLines && IsCommentOnlyLine(line, opts.CommentMarkers) {
			continue
		}
		if opts.KeepMarkdownLineBreaks && start > 0 && end-start >= 2 {
			continue
		}

		changes = append(changes, &document.Edit{
			Rng: document.Range{
				Start: document.Pos{Line: row, Column: start},
				End:   document.Pos{Line: row, Column: end},
			},
		})
	}

	return changes
}
