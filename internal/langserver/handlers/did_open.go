// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"

	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/editor"
	"github.com/hashicorp/whitespace-ls/internal/settings"
	lsp "github.com/sourcegraph/go-lsp"
)

func (svc *service) TextDocumentDidOpen(ctx context.Context, params lsp.DidOpenTextDocumentParams) error {
	dh := document.HandleFromURI(string(params.TextDocument.URI))
	scope := settings.ScopeForLanguageID(params.TextDocument.LanguageID, dh.Filename())
	text := []byte(params.TextDocument.Text)

	ds := svc.stateStore.DocumentStore
	isOpen, err := ds.IsDocumentOpen(dh)
	if err != nil {
		return err
	}

	if isOpen {
		// client may reopen a document without closing it first
		// e.g. after it was renamed on disk
		err = ds.UpdateDocument(dh, text, params.TextDocument.Version)
		if err != nil {
			return err
		}
		ed, err := svc.editorFor(dh)
		if err != nil {
			return err
		}
		ed.SetText(text)
		return nil
	}

	err = ds.OpenDocument(dh, scope, params.TextDocument.Version, text)
	if err != nil {
		return err
	}

	ed := editor.NewEditor(dh, text, scope)
	ed.SetLogger(svc.logger)
	ed.ClearCursors()
	ed.SetTabLength(svc.settings.ForScope(scope).Editor.TabLength)

	svc.whitespace.Watch(ed)
	svc.setEditor(dh, ed)

	svc.logger.Printf("opened %s (scope %s)", dh, scope)
	return nil
}
