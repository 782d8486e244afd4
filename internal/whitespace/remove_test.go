// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package whitespace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/whitespace-ls/internal/document"
)

func TestTrailingWhitespaceEdits(t *testing.T) {
	testCases := []struct {
		name       string
		text       string
		opts       RemoveOptions
		cursorRows RowSet
		expected   string
	}{
		{
			"no trailing whitespace",
			"foo\nbar\n",
			RemoveOptions{},
			nil,
			"foo\nbar\n",
		},
		{
			"trailing spaces",
			"foo   \n",
			RemoveOptions{},
			nil,
			"foo\n",
		},
		{
			"mixed run",
			"a  \t \nb\t\n",
			RemoveOptions{},
			nil,
			"a\nb\n",
		},
		{
			"whitespace-only line removed",
			"foo\n   \nbar\n",
			RemoveOptions{},
			nil,
			"foo\n\nbar\n",
		},
		{
			"whitespace-only line ignored",
			"foo \n   \nbar\n",
			RemoveOptions{IgnoreWhitespaceOnlyLines: true},
			nil,
			"foo\n   \nbar\n",
		},
		{
			"cursor line ignored",
			"foo \nbar \nbaz \n",
			RemoveOptions{IgnoreCurrentLine: true},
			NewRowSet(1),
			"foo\nbar \nbaz\n",
		},
		{
			"cursor rows without the option",
			"foo \nbar \n",
			RemoveOptions{},
			NewRowSet(0, 1),
			"foo\nbar\n",
		},
		{
			"comment-only line ignored",
			"  # \ncode # \n",
			RemoveOptions{IgnoreCommentOnlyLines: true},
			nil,
			"  # \ncode #\n",
		},
		{
			"comment-only line removed",
			"  # \n",
			RemoveOptions{},
			nil,
			"  #\n",
		},
		{
			"custom comment markers",
			"-- \n# \n",
			RemoveOptions{IgnoreCommentOnlyLines: true, CommentMarkers: "-"},
			nil,
			"-- \n#\n",
		},
		{
			"markdown hard line break kept",
			"text  \nmore \n",
			RemoveOptions{KeepMarkdownLineBreaks: true},
			nil,
			"text  \nmore\n",
		},
		{
			"markdown whitespace-only line not a line break",
			"text\n   \n",
			RemoveOptions{KeepMarkdownLineBreaks: true},
			nil,
			"text\n\n",
		},
		{
			"markdown line break without the option",
			"text  \n",
			RemoveOptions{},
			nil,
			"text\n",
		},
		{
			"CRLF line endings",
			"foo \r\nbar\t\r\n",
			RemoveOptions{},
			nil,
			"foo\r\nbar\r\n",
		},
		{
			"last line without newline",
			"foo\nbar  ",
			RemoveOptions{},
			nil,
			"foo\nbar",
		},
		{
			"all exceptions at once",
			"a \n  \n# \ntext  \nb \n",
			RemoveOptions{
				IgnoreCurrentLine:         true,
				IgnoreWhitespaceOnlyLines: true,
				IgnoreCommentOnlyLines:    true,
				KeepMarkdownLineBreaks:    true,
			},
			NewRowSet(4),
			"a\n  \n# \ntext  \nb \n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			changes := TrailingWhitespaceEdits(newTextBuffer(tc.text), tc.opts, tc.cursorRows)
			given := applyEdits(t, tc.text, changes)
			if diff := cmp.Diff(tc.expected, given); diff != "" {
				t.Fatalf("content mismatch: %s", diff)
			}

			// removal is idempotent
			again := TrailingWhitespaceEdits(newTextBuffer(given), tc.opts, tc.cursorRows)
			if len(again) != 0 {
				t.Fatalf("expected no edits on second pass, given %d", len(again))
			}
		})
	}
}

func TestTrailingWhitespaceEdits_ranges(t *testing.T) {
	changes := TrailingWhitespaceEdits(newTextBuffer("foo  \nbar\n\tx \t\n"), RemoveOptions{}, nil)

	expected := document.Changes{
		&document.Edit{
			Rng: document.Range{
				Start: document.Pos{Line: 0, Column: 3},
				End:   document.Pos{Line: 0, Column: 5},
			},
		},
		&document.Edit{
			Rng: document.Range{
				Start: document.Pos{Line: 2, Column: 2},
				End:   document.Pos{Line: 2, Column: 4},
			},
		},
	}
	if diff := cmp.Diff(expected, changes); diff != "" {
		t.Fatalf("unexpected changes: %s", diff)
	}
}
