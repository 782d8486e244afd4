// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package lsp

import (
	"encoding/json"

	lsp "github.com/sourcegraph/go-lsp"
)

// TextDocumentSaveReason represents reasons why a text document is saved
type TextDocumentSaveReason int

const (
	SaveReasonManual     TextDocumentSaveReason = 1
	SaveReasonAfterDelay TextDocumentSaveReason = 2
	SaveReasonFocusOut   TextDocumentSaveReason = 3
)

// WillSaveTextDocumentParams are parameters of textDocument/willSave
// and textDocument/willSaveWaitUntil
type WillSaveTextDocumentParams struct {
	TextDocument lsp.TextDocumentIdentifier `json:"textDocument"`
	Reason       TextDocumentSaveReason     `json:"reason"`
}

// ExecuteCommandParams keeps arguments raw, so that each command
// can decode them as it needs
type ExecuteCommandParams struct {
	Command   string            `json:"command"`
	Arguments []json.RawMessage `json:"arguments,omitempty"`
}
