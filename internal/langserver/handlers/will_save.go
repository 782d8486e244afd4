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

// TextDocumentWillSave only logs the save; any edits are
// provided via textDocument/willSaveWaitUntil.
func (svc *service) TextDocumentWillSave(ctx context.Context, params ilsp.WillSaveTextDocumentParams) error {
	dh := document.HandleFromURI(string(params.TextDocument.URI))
	svc.logger.Printf("%s will be saved (reason %d)", dh, params.Reason)
	return nil
}

func (svc *service) TextDocumentWillSaveWaitUntil(ctx context.Context, params ilsp.WillSaveTextDocumentParams) ([]lsp.TextEdit, error) {
	dh := document.HandleFromURI(string(params.TextDocument.URI))

	ed, err := svc.editorFor(dh)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", jrpc2.InvalidParams.Err(), err)
	}

	return editsFor(ed, func() error {
		return ed.Save(ctx)
	})
}
