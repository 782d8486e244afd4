// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"sync"

	"github.com/creachadair/jrpc2"
	rpch "github.com/creachadair/jrpc2/handler"
	lsctx "github.com/hashicorp/whitespace-ls/internal/context"
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/editor"
	"github.com/hashicorp/whitespace-ls/internal/hooks"
	"github.com/hashicorp/whitespace-ls/internal/langserver/session"
	"github.com/hashicorp/whitespace-ls/internal/settings"
	"github.com/hashicorp/whitespace-ls/internal/state"
)

type service struct {
	logger *log.Logger

	srvCtx context.Context

	sessCtx     context.Context
	stopSession context.CancelFunc

	stateStore *state.StateStore
	settings   *settings.Store
	whitespace *hooks.Whitespace
	server     session.ClientNotifier

	editorsMu sync.Mutex
	editors   map[document.Handle]*editor.Editor
}

var discardLogs = log.New(ioutil.Discard, "", 0)

func NewSession(srvCtx context.Context) session.Session {
	sessCtx, stopSession := context.WithCancel(srvCtx)
	return &service{
		logger:      discardLogs,
		srvCtx:      srvCtx,
		sessCtx:     sessCtx,
		stopSession: stopSession,
		editors:     make(map[document.Handle]*editor.Editor),
	}
}

func (svc *service) SetLogger(logger *log.Logger) {
	svc.logger = logger
}

// Assigner builds out the jrpc2.Map according to the LSP protocol
// and passes related dependencies to handlers via the service
func (svc *service) Assigner() (jrpc2.Assigner, error) {
	svc.logger.Println("Preparing new session ...")

	session := session.NewSession(svc.stopSession)

	err := session.Prepare()
	if err != nil {
		return nil, fmt.Errorf("Unable to prepare session: %w", err)
	}

	if svc.stateStore == nil {
		svc.stateStore, err = state.NewStateStore()
		if err != nil {
			return nil, err
		}
	}
	svc.stateStore.SetLogger(svc.logger)

	baseSettings, err := lsctx.BaseSettings(svc.srvCtx)
	if err != nil {
		svc.logger.Printf("Using default settings: %s", err)
	}
	svc.settings = settings.NewStore(baseSettings)

	svc.whitespace = hooks.New(svc.settings)
	svc.whitespace.SetLogger(svc.logger)

	m := rpch.Map{
		"initialize": func(ctx context.Context, req *jrpc2.Request) (interface{}, error) {
			err := session.Initialize(req)
			if err != nil {
				return nil, err
			}

			return handle(ctx, req, svc.Initialize)
		},
		"initialized": func(ctx context.Context, req *jrpc2.Request) (interface{}, error) {
			err := session.ConfirmInitialization(req)
			if err != nil {
				return nil, err
			}

			return handle(ctx, req, Initialized)
		},
		"textDocument/didOpen": func(ctx context.Context, req *jrpc2.Request) (interface{}, error) {
			err := session.CheckInitializationIsConfirmed()
			if err != nil {
				return nil, err
			}

			return handle(ctx, req, svc.TextDocumentDidOpen)
		},
		"textDocument/didChange": func(ctx context.Context, req *jrpc2.Request) (interface{}, error) {
			err := session.CheckInitializationIsConfirmed()
			if err != nil {
				return nil, err
			}

			return handle(ctx, req, svc.TextDocumentDidChange)
		},
		"textDocument/didClose": func(ctx context.Context, req *jrpc2.Request) (interface{}, error) {
			err := session.CheckInitializationIsConfirmed()
			if err != nil {
				return nil, err
			}

			return handle(ctx, req, svc.TextDocumentDidClose)
		},
		"textDocument/willSave": func(ctx context.Context, req *jrpc2.Request) (interface{}, error) {
			err := session.CheckInitializationIsConfirmed()
			if err != nil {
				return nil, err
			}

			return handle(ctx, req, svc.TextDocumentWillSave)
		},
		"textDocument/willSaveWaitUntil": func(ctx context.Context, req *jrpc2.Request) (interface{}, error) {
			err := session.CheckInitializationIsConfirmed()
			if err != nil {
				return nil, err
			}

			return handle(ctx, req, svc.TextDocumentWillSaveWaitUntil)
		},
		"workspace/didChangeConfiguration": func(ctx context.Context, req *jrpc2.Request) (interface{}, error) {
			err := session.CheckInitializationIsConfirmed()
			if err != nil {
				return nil, err
			}

			return handle(ctx, req, svc.DidChangeConfiguration)
		},
		"workspace/executeCommand": func(ctx context.Context, req *jrpc2.Request) (interface{}, error) {
			err := session.CheckInitializationIsConfirmed()
			if err != nil {
				return nil, err
			}

			return handle(ctx, req, svc.WorkspaceExecuteCommand)
		},
		"shutdown": func(ctx context.Context, req *jrpc2.Request) (interface{}, error) {
			err := session.Shutdown(req)
			if err != nil {
				return nil, err
			}
			svc.shutdown()

			return nil, nil
		},
		"exit": func(ctx context.Context, req *jrpc2.Request) (interface{}, error) {
			err := session.Exit()
			if err != nil {
				return nil, err
			}

			svc.stopSession()

			return nil, nil
		},
	}

	return m, nil
}

func (svc *service) Finish(_ jrpc2.Assigner, status jrpc2.ServerStatus) {
	if status.Closed || status.Err != nil {
		svc.logger.Printf("session stopped unexpectedly (err: %v)", status.Err)
	}

	svc.shutdown()
	svc.stopSession()
}

// shutdown destroys all editors, detaching whitespace hooks
func (svc *service) shutdown() {
	svc.editorsMu.Lock()
	editors := svc.editors
	svc.editors = make(map[document.Handle]*editor.Editor)
	svc.editorsMu.Unlock()

	for dh, ed := range editors {
		if err := ed.Destroy(); err != nil {
			svc.logger.Printf("failed to destroy editor for %s: %s", dh, err)
		}
	}

	if svc.whitespace != nil {
		svc.whitespace.Destroy()
	}
}

func (svc *service) editorFor(dh document.Handle) (*editor.Editor, error) {
	svc.editorsMu.Lock()
	defer svc.editorsMu.Unlock()

	ed, ok := svc.editors[dh]
	if !ok {
		return nil, &document.DocumentNotFound{URI: dh.URI}
	}
	return ed, nil
}

func (svc *service) setEditor(dh document.Handle, ed *editor.Editor) {
	svc.editorsMu.Lock()
	defer svc.editorsMu.Unlock()
	svc.editors[dh] = ed
}

func (svc *service) removeEditor(dh document.Handle) (*editor.Editor, bool) {
	svc.editorsMu.Lock()
	defer svc.editorsMu.Unlock()

	ed, ok := svc.editors[dh]
	if ok {
		delete(svc.editors, dh)
	}
	return ed, ok
}

const requestCancelled jrpc2.Code = -32800

// handle calls a jrpc2.Handler compatible function
func handle(ctx context.Context, req *jrpc2.Request, fn interface{}) (interface{}, error) {
	result, err := rpch.New(fn)(ctx, req)
	if ctx.Err() != nil && errors.Is(ctx.Err(), context.Canceled) {
		err = fmt.Errorf("%w: %s", requestCancelled.Err(), err)
	}
	return result, err
}
