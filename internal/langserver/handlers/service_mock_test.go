// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"
	"io/ioutil"
	"log"
	"os"
	"sync"
	"testing"

	lsctx "github.com/hashicorp/whitespace-ls/internal/context"
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/editor"
	"github.com/hashicorp/whitespace-ls/internal/langserver/session"
	"github.com/hashicorp/whitespace-ls/internal/settings"
	"github.com/hashicorp/whitespace-ls/internal/state"
)

type MockSessionInput struct {
	StateStore   *state.StateStore
	BaseSettings *settings.Settings
}

type mockSession struct {
	mockInput *MockSessionInput

	stopFunc     func()
	stopCalled   bool
	stopCalledMu *sync.RWMutex
}

func (ms *mockSession) new(srvCtx context.Context) session.Session {
	if ms.mockInput != nil && ms.mockInput.BaseSettings != nil {
		srvCtx = lsctx.WithBaseSettings(srvCtx, ms.mockInput.BaseSettings)
	}

	sessCtx, stopSession := context.WithCancel(srvCtx)
	ms.stopFunc = stopSession

	var ss *state.StateStore
	if ms.mockInput != nil {
		ss = ms.mockInput.StateStore
	}

	return &service{
		logger:      testLogger(),
		srvCtx:      srvCtx,
		sessCtx:     sessCtx,
		stopSession: ms.stop,
		stateStore:  ss,
		editors:     make(map[document.Handle]*editor.Editor),
	}
}

func (ms *mockSession) stop() {
	ms.stopCalledMu.Lock()
	defer ms.stopCalledMu.Unlock()

	ms.stopFunc()
	ms.stopCalled = true
}

func (ms *mockSession) StopFuncCalled() bool {
	ms.stopCalledMu.RLock()
	defer ms.stopCalledMu.RUnlock()

	return ms.stopCalled
}

func newMockSession(input *MockSessionInput) *mockSession {
	return &mockSession{
		mockInput:    input,
		stopCalledMu: &sync.RWMutex{},
	}
}

func NewMockSession(input *MockSessionInput) session.SessionFactory {
	return newMockSession(input).new
}

func testLogger() *log.Logger {
	if testing.Verbose() {
		return log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile)
	}

	return log.New(ioutil.Discard, "", 0)
}
