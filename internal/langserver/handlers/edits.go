// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"github.com/hashicorp/whitespace-ls/internal/diff"
	"github.com/hashicorp/whitespace-ls/internal/editor"
	ilsp "github.com/hashicorp/whitespace-ls/internal/lsp"
	"github.com/hashicorp/whitespace-ls/internal/source"
	lsp "github.com/sourcegraph/go-lsp"
)

// editsFor runs fn against the editor and returns its effect
// as text edits in pre-edit coordinates.
//
// The editor content is reset afterwards: the client applies
// the edits and reports them back via textDocument/didChange.
func editsFor(ed *editor.Editor, fn func() error) ([]lsp.TextEdit, error) {
	before := ed.Text()
	defer ed.SetText(before)

	err := fn()
	if err != nil {
		return nil, err
	}

	dh := ed.Handle()
	changes := diff.Diff(dh, before, ed.Text())
	lines := source.MakeSourceLines(dh.Filename(), before)

	return ilsp.TextEditsFromDocumentChanges(lines, changes), nil
}
