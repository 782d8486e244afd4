// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package editor

import (
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/whitespace"
)

// SelectedRanges returns a copy of all selections.
// A cursor is an empty selection.
func (e *Editor) SelectedRanges() []document.Range {
	ranges := make([]document.Range, len(e.selections))
	copy(ranges, e.selections)
	return ranges
}

// SetSelectedRanges replaces all selections. Positions outside
// of the document are clamped to it. An empty slice removes
// all cursors, see ClearCursors.
func (e *Editor) SetSelectedRanges(ranges []document.Range) {
	if len(ranges) == 0 {
		e.selections = nil
		return
	}
	e.selections = make([]document.Range, len(ranges))
	copy(e.selections, ranges)
	e.clampSelections()
}

// SetCursors replaces all selections with cursors at given positions
func (e *Editor) SetCursors(positions ...document.Pos) {
	ranges := make([]document.Range, len(positions))
	for i, pos := range positions {
		ranges[i] = document.Range{Start: pos, End: pos}
	}
	e.SetSelectedRanges(ranges)
}

// ClearCursors removes all cursors and selections. Hosts without
// a notion of a cursor (files on disk, LSP clients) use this so that
// no row is treated as the current line.
func (e *Editor) ClearCursors() {
	e.selections = nil
}

// CursorRows returns rows which contain the head of a selection
func (e *Editor) CursorRows() whitespace.RowSet {
	rows := whitespace.NewRowSet()
	for _, sel := range e.selections {
		rows[sel.End.Line] = struct{}{}
	}
	return rows
}

func (e *Editor) clampSelections() {
	for i, sel := range e.selections {
		e.selections[i] = document.Range{
			Start: e.clampPos(sel.Start),
			End:   e.clampPos(sel.End),
		}
	}
}

func (e *Editor) clampPos(pos document.Pos) document.Pos {
	lastRow := e.LastRow()
	if pos.Line < 0 {
		return document.Pos{}
	}
	if pos.Line > lastRow {
		return document.Pos{Line: lastRow, Column: len(e.LineAt(lastRow))}
	}
	if pos.Column < 0 {
		pos.Column = 0
	}
	if lineLen := len(e.LineAt(pos.Line)); pos.Column > lineLen {
		pos.Column = lineLen
	}
	return pos
}
