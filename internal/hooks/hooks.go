// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package hooks binds whitespace normalization to editor
// lifecycle events and to user-invoked commands.
package hooks

import (
	"context"
	"io"
	"log"
	"sync"

	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/eventbus"
	"github.com/hashicorp/whitespace-ls/internal/settings"
	"github.com/hashicorp/whitespace-ls/internal/whitespace"
)

const subscriberName = "whitespace"

var discardLogger = log.New(io.Discard, "", 0)

// TextEditor is the host editor a document is open in
type TextEditor interface {
	whitespace.Buffer

	LastRow() int
	Scope() string
	IsRowBlank(row int) bool
	SetIndentationForRow(row, level int) error

	CursorRows() whitespace.RowSet
	SelectedRanges() []document.Range
	SetSelectedRanges([]document.Range)

	TabLength() int
	SetTabLength(n int)
	SetSoftTabs(soft bool)

	Apply(changes document.Changes) error
	Transact(fn func() error) error
	Save(ctx context.Context) error

	OnWillSave(identifier string, fn func(eventbus.WillSaveEvent) error) *eventbus.Subscription
	OnDidInsertText(identifier string, fn func(eventbus.InsertTextEvent) error) *eventbus.Subscription
	OnDidDestroy(identifier string, fn func(eventbus.DestroyEvent) error) *eventbus.Subscription
}

// ConfigSource provides options resolved for a scope
type ConfigSource interface {
	ForScope(scope string) *settings.Options
}

// Whitespace keeps watched editors free of trailing whitespace
// and makes them end with a single newline on save.
type Whitespace struct {
	config ConfigSource
	logger *log.Logger

	mu         sync.Mutex
	watched    map[TextEditor]*eventbus.CompositeDisposable
	suppressed map[TextEditor]bool
}

func New(config ConfigSource) *Whitespace {
	return &Whitespace{
		config:     config,
		logger:     discardLogger,
		watched:    make(map[TextEditor]*eventbus.CompositeDisposable),
		suppressed: make(map[TextEditor]bool),
	}
}

func (w *Whitespace) SetLogger(logger *log.Logger) {
	w.logger = logger
}

// Watch subscribes to events of ed. Watching an editor
// which is already watched is a no-op.
func (w *Whitespace) Watch(ed TextEditor) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.watched[ed]; ok {
		return
	}

	subs := eventbus.NewCompositeDisposable()
	subs.Add(ed.OnWillSave(subscriberName, func(eventbus.WillSaveEvent) error {
		return w.handleWillSave(ed)
	}))
	subs.Add(ed.OnDidInsertText(subscriberName, func(e eventbus.InsertTextEvent) error {
		return w.handleInsertText(ed, e)
	}))
	subs.Add(ed.OnDidDestroy(subscriberName, func(eventbus.DestroyEvent) error {
		w.unwatch(ed)
		return nil
	}))

	w.watched[ed] = subs
}

func (w *Whitespace) IsWatching(ed TextEditor) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.watched[ed]
	return ok
}

func (w *Whitespace) unwatch(ed TextEditor) {
	w.mu.Lock()
	subs, ok := w.watched[ed]
	delete(w.watched, ed)
	delete(w.suppressed, ed)
	w.mu.Unlock()

	if ok {
		subs.Dispose()
	}
}

// Destroy releases subscriptions of all watched editors
func (w *Whitespace) Destroy() {
	w.mu.Lock()
	watched := w.watched
	w.watched = make(map[TextEditor]*eventbus.CompositeDisposable)
	w.suppressed = make(map[TextEditor]bool)
	w.mu.Unlock()

	for _, subs := range watched {
		subs.Dispose()
	}
}

// SuppressNextSave skips trailing whitespace removal during
// the next save of ed only. Newline normalization still applies.
func (w *Whitespace) SuppressNextSave(ed TextEditor) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.suppressed[ed] = true
}

func (w *Whitespace) clearSuppressed(ed TextEditor) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.suppressed, ed)
}

// takeSuppressed reports whether removal is suppressed
// for the current save and consumes the suppression
func (w *Whitespace) takeSuppressed(ed TextEditor) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	suppressed := w.suppressed[ed]
	delete(w.suppressed, ed)
	return suppressed
}

func (w *Whitespace) handleWillSave(ed TextEditor) error {
	opts := w.config.ForScope(ed.Scope())
	suppressed := w.takeSuppressed(ed)

	return ed.Transact(func() error {
		if opts.Whitespace.RemoveTrailingWhitespace && !suppressed {
			err := w.RemoveTrailingWhitespace(ed)
			if err != nil {
				return err
			}
		}

		if opts.Whitespace.EnsureSingleTrailingNewline {
			return w.EnsureSingleTrailingNewline(ed)
		}
		return nil
	})
}

// handleInsertText resets indentation of a blank row
// which was just left by typing a newline
func (w *Whitespace) handleInsertText(ed TextEditor, e eventbus.InsertTextEvent) error {
	if e.Text != "\n" {
		return nil
	}

	row := e.Range.Start.Line
	if !ed.IsRowBlank(row) {
		return nil
	}

	opts := w.config.ForScope(ed.Scope())
	if !opts.Whitespace.RemoveTrailingWhitespace || opts.Whitespace.IgnoreWhitespaceOnlyLines {
		return nil
	}

	return ed.SetIndentationForRow(row, 0)
}
