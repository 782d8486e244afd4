// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package hooks

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

const commandPrefix = "whitespace:"

// SaveWithTrailingWhitespace is the command which saves without
// removing trailing whitespace
const SaveWithTrailingWhitespace = "save-with-trailing-whitespace"

type Handler func(ctx context.Context, ed TextEditor) error
type Handlers map[string]Handler

// CommandName returns the fully qualified name of a command
func CommandName(name string) string {
	return commandPrefix + name
}

func (h Handlers) Names() []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, CommandName(name))
	}
	sort.Strings(names)
	return names
}

func (h Handlers) Get(name string) (Handler, bool) {
	handler, ok := h[strings.TrimPrefix(name, commandPrefix)]
	return handler, ok
}

// IsCommand reports whether name refers to cmd,
// with or without the "whitespace:" prefix
func IsCommand(name, cmd string) bool {
	return strings.TrimPrefix(name, commandPrefix) == cmd
}

type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %q", e.Name)
}

func (e *UnknownCommandError) Is(err error) bool {
	_, ok := err.(*UnknownCommandError)
	return ok
}

// Commands returns all commands operating on a single editor
func (w *Whitespace) Commands() Handlers {
	return Handlers{
		"remove-trailing-whitespace": func(ctx context.Context, ed TextEditor) error {
			return w.RemoveTrailingWhitespace(ed)
		},
		SaveWithTrailingWhitespace: func(ctx context.Context, ed TextEditor) error {
			w.SuppressNextSave(ed)
			// save may fail before the suppression is consumed
			defer w.clearSuppressed(ed)
			return ed.Save(ctx)
		},
		"save-without-trailing-whitespace": func(ctx context.Context, ed TextEditor) error {
			err := w.RemoveTrailingWhitespace(ed)
			if err != nil {
				return err
			}
			return ed.Save(ctx)
		},
		"convert-tabs-to-spaces": func(ctx context.Context, ed TextEditor) error {
			return w.ConvertTabsToSpaces(ed, false)
		},
		"convert-spaces-to-tabs": func(ctx context.Context, ed TextEditor) error {
			return w.ConvertSpacesToTabs(ed)
		},
		"convert-all-tabs-to-spaces": func(ctx context.Context, ed TextEditor) error {
			return w.ConvertTabsToSpaces(ed, true)
		},
	}
}

// Run runs the command of the given name against ed.
// The "whitespace:" prefix of name is optional.
func (w *Whitespace) Run(ctx context.Context, name string, ed TextEditor) error {
	handler, ok := w.Commands().Get(name)
	if !ok {
		return &UnknownCommandError{Name: name}
	}
	w.logger.Printf("running command %q", name)
	return handler(ctx, ed)
}
