// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package editor

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/eventbus"
	"github.com/hashicorp/whitespace-ls/internal/source"
	"github.com/hashicorp/whitespace-ls/internal/whitespace"
)

var discardLogger = log.New(io.Discard, "", 0)

const defaultTabLength = 2

// Editor is an in-memory text editor holding a single document.
//
// Editor is not safe for concurrent use. Event subscribers
// are invoked synchronously and may call back into the editor.
type Editor struct {
	handle document.Handle
	scope  string

	text  []byte
	lines source.Lines

	selections []document.Range
	tabLength  int
	softTabs   bool

	saver  Saver
	bus    *eventbus.EventBus
	logger *log.Logger

	txDepth    int
	txSnapshot *snapshot
	destroyed  bool
}

type snapshot struct {
	text       []byte
	selections []document.Range
}

func NewEditor(h document.Handle, text []byte, scope string) *Editor {
	e := &Editor{
		handle:    h,
		scope:     scope,
		tabLength: defaultTabLength,
		softTabs:  true,
		saver:     NopSaver{},
		bus:       eventbus.NewEventBus(),
		logger:    discardLogger,
	}
	e.setText(text)
	e.selections = []document.Range{{}}
	return e
}

func (e *Editor) SetLogger(logger *log.Logger) {
	e.logger = logger
	e.bus.SetLogger(logger)
}

func (e *Editor) SetSaver(s Saver) {
	e.saver = s
}

func (e *Editor) Handle() document.Handle {
	return e.handle
}

func (e *Editor) Scope() string {
	return e.scope
}

func (e *Editor) SetScope(scope string) {
	e.scope = scope
}

// Text returns a copy of the current content
func (e *Editor) Text() []byte {
	text := make([]byte, len(e.text))
	copy(text, e.text)
	return text
}

// SetText replaces the whole content, clamping selections
// to the new content
func (e *Editor) SetText(text []byte) {
	e.setText(text)
	e.clampSelections()
}

func (e *Editor) setText(text []byte) {
	e.text = make([]byte, len(text))
	copy(e.text, text)
	e.lines = source.MakeSourceLines(e.handle.Filename(), e.text)
}

func (e *Editor) Lines() source.Lines {
	return e.lines.Copy()
}

func (e *Editor) LineCount() int {
	return len(e.lines)
}

func (e *Editor) LineAt(row int) string {
	if row < 0 || row >= len(e.lines) {
		return ""
	}
	return e.lines[row].Content()
}

func (e *Editor) LastRow() int {
	return len(e.lines) - 1
}

// IsRowBlank returns true if the row is empty or
// contains only whitespace
func (e *Editor) IsRowBlank(row int) bool {
	return whitespace.IsWhitespaceOnly(e.LineAt(row))
}

// SetIndentationForRow replaces the leading whitespace of row
// with the given indentation level, in the current indentation mode.
func (e *Editor) SetIndentationForRow(row, level int) error {
	if row < 0 || row >= len(e.lines) {
		return &document.InvalidPosErr{Pos: document.Pos{Line: row}}
	}
	line := e.LineAt(row)
	indentLen := len(line) - len(strings.TrimLeft(line, " \t"))

	indent := strings.Repeat("\t", level)
	if e.softTabs {
		indent = strings.Repeat(" ", level*e.tabLength)
	}
	if line[:indentLen] == indent {
		return nil
	}

	return e.Apply(document.Changes{
		&document.Edit{
			Rng: document.Range{
				Start: document.Pos{Line: row, Column: 0},
				End:   document.Pos{Line: row, Column: indentLen},
			},
			NewText: indent,
		},
	})
}

// Apply applies a batch of non-overlapping changes which
// were all computed against the current content.
// Either all changes are applied or none of them.
func (e *Editor) Apply(changes document.Changes) error {
	if len(changes) == 0 {
		return nil
	}

	newText, err := document.ApplyBatch(e.text, changes)
	if err != nil {
		return err
	}

	e.logger.Printf("editor: applied %d changes to %s", len(changes), e.handle)
	e.SetText(newText)
	return nil
}

// Transact runs fn as a single atomic unit. Transactions nest.
// If the outermost fn returns an error the content and
// selections are restored to what they were before it started.
func (e *Editor) Transact(fn func() error) error {
	if e.txDepth == 0 {
		e.txSnapshot = &snapshot{
			text:       e.Text(),
			selections: e.SelectedRanges(),
		}
	}
	e.txDepth++

	err := fn()

	e.txDepth--
	if e.txDepth == 0 {
		snap := e.txSnapshot
		e.txSnapshot = nil
		if err != nil {
			e.logger.Printf("editor: rolling back transaction on %s: %s", e.handle, err)
			e.SetText(snap.text)
			e.selections = snap.selections
		}
	}

	return err
}

func (e *Editor) TabLength() int {
	return e.tabLength
}

func (e *Editor) SetTabLength(n int) {
	if n > 0 {
		e.tabLength = n
	}
}

func (e *Editor) SoftTabs() bool {
	return e.softTabs
}

func (e *Editor) SetSoftTabs(soft bool) {
	e.softTabs = soft
}

// InsertText replaces the last selection with text and places
// the cursor right after the inserted text. Without any cursor
// the text is inserted at the beginning of the document.
func (e *Editor) InsertText(text string) error {
	if len(e.selections) == 0 {
		e.selections = []document.Range{{}}
	}
	sel := e.selections[len(e.selections)-1]
	start, end := sel.Start, sel.End
	if end.Before(start) {
		start, end = end, start
	}

	err := e.Apply(document.Changes{
		&document.Edit{
			Rng:     document.Range{Start: start, End: end},
			NewText: text,
		},
	})
	if err != nil {
		return err
	}

	after := posAfterText(start, text)
	e.selections[len(e.selections)-1] = document.Range{Start: after, End: after}

	return e.bus.DidInsertText(eventbus.InsertTextEvent{
		Text:  text,
		Range: document.Range{Start: start, End: after},
	})
}

func posAfterText(start document.Pos, text string) document.Pos {
	n := strings.Count(text, "\n")
	if n == 0 {
		return document.Pos{Line: start.Line, Column: start.Column + len(text)}
	}
	return document.Pos{
		Line:   start.Line + n,
		Column: len(text) - strings.LastIndexByte(text, '\n') - 1,
	}
}

// Save notifies will-save subscribers, which may still modify
// the content, and then persists the content via the Saver.
func (e *Editor) Save(ctx context.Context) error {
	err := e.bus.WillSave(eventbus.WillSaveEvent{})
	if err != nil {
		return err
	}

	return e.saver.Save(ctx, e.handle, e.Text())
}

// Destroy notifies destroy subscribers. Only the first call has any effect.
func (e *Editor) Destroy() error {
	if e.destroyed {
		return nil
	}
	e.destroyed = true
	return e.bus.DidDestroy(eventbus.DestroyEvent{})
}

func (e *Editor) IsDestroyed() bool {
	return e.destroyed
}

func (e *Editor) OnWillSave(identifier string, fn func(eventbus.WillSaveEvent) error) *eventbus.Subscription {
	return e.bus.OnWillSave(identifier, fn)
}

func (e *Editor) OnDidInsertText(identifier string, fn func(eventbus.InsertTextEvent) error) *eventbus.Subscription {
	return e.bus.OnDidInsertText(identifier, fn)
}

func (e *Editor) OnDidDestroy(identifier string, fn func(eventbus.DestroyEvent) error) *eventbus.Subscription {
	return e.bus.OnDidDestroy(identifier, fn)
}
