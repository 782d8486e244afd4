// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"

	"github.com/creachadair/jrpc2"
	lsctx "github.com/hashicorp/whitespace-ls/internal/context"
	lsp "github.com/sourcegraph/go-lsp"
)

func (svc *service) Initialize(ctx context.Context, params lsp.InitializeParams) (lsp.InitializeResult, error) {
	serverCaps := lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose:         true,
					Change:            lsp.TDSKIncremental,
					WillSave:          true,
					WillSaveWaitUntil: true,
				},
			},
			ExecuteCommandProvider: &lsp.ExecuteCommandOptions{
				Commands: svc.whitespace.Commands().Names(),
			},
		},
	}

	svc.server = jrpc2.ServerFromContext(ctx)

	if version, ok := lsctx.LanguageServerVersion(svc.srvCtx); ok {
		svc.logger.Printf("whitespace-ls %s initializing (root %q)", version, params.RootURI)
	}

	if params.InitializationOptions != nil {
		err := svc.configure(ctx, params.InitializationOptions)
		if err != nil {
			return serverCaps, err
		}
	}

	return serverCaps, nil
}
