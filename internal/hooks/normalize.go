// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package hooks

import (
	"github.com/hashicorp/whitespace-ls/internal/whitespace"
)

// RemoveTrailingWhitespace removes trailing whitespace from ed,
// honouring exceptions configured for its scope
func (w *Whitespace) RemoveTrailingWhitespace(ed TextEditor) error {
	scope := ed.Scope()
	opts := w.config.ForScope(scope)

	removeOpts := whitespace.RemoveOptions{
		IgnoreCurrentLine:         opts.Whitespace.IgnoreWhitespaceOnCurrentLine,
		IgnoreWhitespaceOnlyLines: opts.Whitespace.IgnoreWhitespaceOnlyLines,
		IgnoreCommentOnlyLines:    opts.Whitespace.IgnoreCommentOnlyLines,
		KeepMarkdownLineBreaks:    opts.Whitespace.KeepMarkdownLineBreakWhitespace && opts.IsMarkdownScope(scope),
		CommentMarkers:            opts.Whitespace.CommentMarkers,
	}

	changes := whitespace.TrailingWhitespaceEdits(ed, removeOpts, ed.CursorRows())
	if len(changes) == 0 {
		return nil
	}
	w.logger.Printf("removing trailing whitespace from %d rows", len(changes))

	return ed.Transact(func() error {
		return ed.Apply(changes)
	})
}

// EnsureSingleTrailingNewline makes ed end with exactly one newline.
// Selections are kept in place when a newline is appended.
func (w *Whitespace) EnsureSingleTrailingNewline(ed TextEditor) error {
	changes := whitespace.TrailingNewlineEdits(ed)
	if len(changes) == 0 {
		return nil
	}

	selections := ed.SelectedRanges()
	err := ed.Apply(changes)
	if err != nil {
		return err
	}
	ed.SetSelectedRanges(selections)

	return nil
}

// ConvertTabsToSpaces replaces leading tabs (or all tabs)
// with spaces and switches ed to soft tabs
func (w *Whitespace) ConvertTabsToSpaces(ed TextEditor, all bool) error {
	changes := whitespace.TabsToSpacesEdits(ed, ed.TabLength(), all)

	err := ed.Transact(func() error {
		return ed.Apply(changes)
	})
	if err != nil {
		return err
	}

	ed.SetSoftTabs(true)
	return nil
}

// ConvertSpacesToTabs replaces leading spaces with tabs and switches
// ed to hard tabs. The tab length of ed is reset to the configured one.
func (w *Whitespace) ConvertSpacesToTabs(ed TextEditor) error {
	fileTabLength := ed.TabLength()
	userTabLength := w.config.ForScope(ed.Scope()).Editor.TabLength

	changes := whitespace.SpacesToTabsEdits(ed, fileTabLength)

	err := ed.Transact(func() error {
		return ed.Apply(changes)
	})
	if err != nil {
		return err
	}

	ed.SetSoftTabs(false)
	if fileTabLength != userTabLength {
		ed.SetTabLength(userTabLength)
	}
	return nil
}
