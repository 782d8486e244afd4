// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package whitespace

import (
	"regexp"
	"strings"

	"github.com/hashicorp/whitespace-ls/internal/document"
)

var spacesBeforeTabRe = regexp.MustCompile(`[ ]+\t`)

// TabsToSpacesEdits returns edits replacing each tab with tabLength spaces.
//
// Only tabs of the leading run of each row are replaced,
// unless all is true, in which case every tab is.
func TabsToSpacesEdits(buf Buffer, tabLength int, all bool) document.Changes {
	changes := make(document.Changes, 0)
	if tabLength <= 0 {
		return changes
	}
	spaces := strings.Repeat(" ", tabLength)

	for row, n := 0, buf.LineCount(); row < n; row++ {
		line := buf.LineAt(row)

		var start, end int
		if all {
			start = strings.IndexByte(line, '\t')
			if start < 0 {
				continue
			}
			end = strings.LastIndexByte(line, '\t') + 1
		} else {
			end = len(line) - len(strings.TrimLeft(line, "\t"))
			if end == 0 {
				continue
			}
		}

		changes = append(changes, &document.Edit{
			Rng: document.Range{
				Start: document.Pos{Line: row, Column: start},
				End:   document.Pos{Line: row, Column: end},
			},
			NewText: strings.ReplaceAll(line[start:end], "\t", spaces),
		})
	}

	return changes
}

// SpacesToTabsEdits returns edits converting the leading
// indentation of each row to tabs.
//
// Within the leading run of spaces and tabs, every group of
// fileTabLength spaces becomes a tab and any spaces directly
// followed by a tab are then absorbed by that tab.
func SpacesToTabsEdits(buf Buffer, fileTabLength int) document.Changes {
	changes := make(document.Changes, 0)
	if fileTabLength <= 0 {
		return changes
	}
	group := strings.Repeat(" ", fileTabLength)

	for row, n := 0, buf.LineCount(); row < n; row++ {
		line := buf.LineAt(row)

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if indent == "" {
			continue
		}

		converted := strings.ReplaceAll(indent, group, "\t")
		converted = spacesBeforeTabRe.ReplaceAllString(converted, "\t")
		if converted == indent {
			continue
		}

		changes = append(changes, &document.Edit{
			Rng: document.Range{
				Start: document.Pos{Line: row, Column: 0},
				End:   document.Pos{Line: row, Column: len(indent)},
			},
			NewText: converted,
		})
	}

	return changes
}
