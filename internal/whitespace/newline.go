// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package whitespace

import (
	"strings"

	"github.com/hashicorp/whitespace-ls/internal/document"
)

// TrailingNewlineEdits returns edits making buf end with exactly
// one newline.
//
// When the last row is empty, the run of empty rows above it is
// deleted (row 0 is always kept). Otherwise a newline is appended,
// using "\r\n" if the row above the last one is CRLF-terminated.
func TrailingNewlineEdits(buf Buffer) document.Changes {
	lastRow := buf.LineCount() - 1
	if lastRow < 0 {
		return document.Changes{}
	}

	lastLine := buf.LineAt(lastRow)
	if isEmptyLine(lastLine) {
		firstEmpty := lastRow
		for firstEmpty-1 > 0 && isEmptyLine(buf.LineAt(firstEmpty-1)) {
			firstEmpty--
		}
		if firstEmpty == lastRow {
			return document.Changes{}
		}

		return document.Changes{
			&document.Edit{
				Rng: document.Range{
					Start: document.Pos{Line: firstEmpty, Column: 0},
					End:   document.Pos{Line: lastRow, Column: 0},
				},
			},
		}
	}

	newline := "\n"
	if lastRow > 0 && strings.HasSuffix(buf.LineAt(lastRow-1), "\r") {
		newline = "\r\n"
	}

	end := document.Pos{Line: lastRow, Column: len(lastLine)}
	return document.Changes{
		&document.Edit{
			Rng:     document.Range{Start: end, End: end},
			NewText: newline,
		},
	}
}

func isEmptyLine(line string) bool {
	return line == "" || line == "\r"
}
