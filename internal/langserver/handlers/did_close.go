// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"

	"github.com/hashicorp/whitespace-ls/internal/document"
	lsp "github.com/sourcegraph/go-lsp"
)

func (svc *service) TextDocumentDidClose(ctx context.Context, params lsp.DidCloseTextDocumentParams) error {
	dh := document.HandleFromURI(string(params.TextDocument.URI))

	err := svc.stateStore.DocumentStore.CloseDocument(dh)
	if err != nil {
		return err
	}

	ed, ok := svc.removeEditor(dh)
	if !ok {
		return nil
	}
	return ed.Destroy()
}
