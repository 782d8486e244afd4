// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"
	"fmt"

	"github.com/creachadair/jrpc2"
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/hooks"
	"github.com/hashicorp/whitespace-ls/internal/langserver/cmd"
	ilsp "github.com/hashicorp/whitespace-ls/internal/lsp"
	"github.com/hashicorp/whitespace-ls/internal/uri"
	lsp "github.com/sourcegraph/go-lsp"
)

// WorkspaceExecuteCommand runs a whitespace command against an open
// document identified by the "uri" argument and returns resulting edits.
func (svc *service) WorkspaceExecuteCommand(ctx context.Context, params ilsp.ExecuteCommandParams) ([]lsp.TextEdit, error) {
	if _, ok := svc.whitespace.Commands().Get(params.Command); !ok {
		return nil, fmt.Errorf("%w: command handler not found for %q",
			jrpc2.MethodNotFound.Err(), params.Command)
	}

	args := cmd.ParseCommandArgs(params.Arguments)
	rawURI, ok := args.GetString("uri")
	if !ok {
		return nil, fmt.Errorf("%w: expected uri argument to be available",
			jrpc2.InvalidParams.Err())
	}
	if !uri.IsURIValid(rawURI) {
		return nil, fmt.Errorf("%w: URI %q is not valid",
			jrpc2.InvalidParams.Err(), rawURI)
	}

	dh := document.HandleFromURI(rawURI)
	ed, err := svc.editorFor(dh)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", jrpc2.InvalidParams.Err(), err)
	}

	// the client saves on its own, the removal is skipped in
	// the willSaveWaitUntil response which follows
	if hooks.IsCommand(params.Command, hooks.SaveWithTrailingWhitespace) {
		svc.whitespace.SuppressNextSave(ed)
		return []lsp.TextEdit{}, nil
	}

	return editsFor(ed, func() error {
		return svc.whitespace.Run(ctx, params.Command, ed)
	})
}
