// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"
	"fmt"

	"github.com/creachadair/jrpc2"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/whitespace-ls/internal/settings"
	lsp "github.com/sourcegraph/go-lsp"
)

func (svc *service) DidChangeConfiguration(ctx context.Context, params lsp.DidChangeConfigurationParams) error {
	if params.Settings == nil {
		return nil
	}
	err := svc.configure(ctx, params.Settings)
	if err != nil {
		return err
	}

	svc.applyEditorSettings()
	return nil
}

// configure replaces the active settings with the decoded input.
// Unknown keys and ignored values are reported to the user
// but do not fail the request.
func (svc *service) configure(ctx context.Context, input interface{}) error {
	out, err := settings.DecodeSettings(input)
	if err != nil {
		return fmt.Errorf("%w: invalid settings: %s", jrpc2.InvalidParams.Err(), err)
	}
	svc.settings.Set(out.Settings)

	if len(out.UnusedKeys) > 0 {
		svc.showMessage(ctx, lsp.MTWarning,
			fmt.Sprintf("Unknown configuration options: %q", out.UnusedKeys))
	}
	if out.Warnings != nil {
		if merr, ok := out.Warnings.(*multierror.Error); ok {
			for _, w := range merr.Errors {
				svc.showMessage(ctx, lsp.MTWarning, fmt.Sprintf("Ignoring setting: %s", w))
			}
		} else {
			svc.showMessage(ctx, lsp.MTWarning, fmt.Sprintf("Ignoring setting: %s", out.Warnings))
		}
	}

	return nil
}

// applyEditorSettings propagates editor options (tab length)
// to documents which are already open
func (svc *service) applyEditorSettings() {
	svc.editorsMu.Lock()
	defer svc.editorsMu.Unlock()

	for _, ed := range svc.editors {
		opts := svc.settings.ForScope(ed.Scope())
		ed.SetTabLength(opts.Editor.TabLength)
	}
}

func (svc *service) showMessage(ctx context.Context, typ lsp.MessageType, msg string) {
	if svc.server == nil {
		svc.logger.Printf("unable to show message (no client): %s", msg)
		return
	}
	err := svc.server.Notify(ctx, "window/showMessage", lsp.ShowMessageParams{
		Type:    typ,
		Message: msg,
	})
	if err != nil {
		svc.logger.Printf("failed to show message: %s", err)
	}
}
