// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"
	"fmt"

	"github.com/creachadair/jrpc2"
	"github.com/hashicorp/whitespace-ls/internal/document"
	ilsp "github.com/hashicorp/whitespace-ls/internal/lsp"
	lsp "github.com/sourcegraph/go-lsp"
)

func (svc *service) TextDocumentDidChange(ctx context.Context, params lsp.DidChangeTextDocumentParams) error {
	dh := document.HandleFromURI(string(params.TextDocument.URI))

	ds := svc.stateStore.DocumentStore
	doc, err := ds.GetDocument(dh)
	if err != nil {
		return err
	}

	// Versions don't have to be consecutive, but they must be increasing
	if params.TextDocument.Version <= doc.Version {
		return fmt.Errorf("%w: old version (%d) received, current version is %d. "+
			"Unable to update %s.", jrpc2.InvalidParams.Err(),
			params.TextDocument.Version, doc.Version, dh)
	}

	newText, err := ilsp.ApplyContentChanges(dh.Filename(), doc.Text, params.ContentChanges)
	if err != nil {
		return fmt.Errorf("%w: %s", jrpc2.InvalidParams.Err(), err)
	}

	err = ds.UpdateDocument(dh, newText, params.TextDocument.Version)
	if err != nil {
		return err
	}

	ed, err := svc.editorFor(dh)
	if err != nil {
		return err
	}
	ed.SetText(newText)

	return nil
}
