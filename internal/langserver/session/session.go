// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/creachadair/jrpc2"
)

// session tracks the LSP lifecycle of a single client connection:
// initialize -> initialized -> ... -> shutdown -> exit
type session struct {
	initializeReq     *jrpc2.Request
	initializeReqTime time.Time

	initializedReq     *jrpc2.Request
	initializedReqTime time.Time

	downReq     *jrpc2.Request
	downReqTime time.Time

	state    sessionState
	exitFunc context.CancelFunc
}

func NewSession(exitFunc context.CancelFunc) *session {
	return &session{
		state:    stateEmpty,
		exitFunc: exitFunc,
	}
}

func (s *session) Prepare() error {
	if s.state != stateEmpty {
		return &unexpectedSessionState{
			ExpectedState: stateEmpty,
			CurrentState:  s.state,
		}
	}

	s.state = statePrepared

	return nil
}

func (s *session) Initialize(req *jrpc2.Request) error {
	switch s.state {
	case statePrepared:
	case stateInitializedUnconfirmed, stateInitializedConfirmed:
		return SessionAlreadyInitializedErr(s.initializeReq.ID())
	case stateDown:
		return SessionAlreadyDownErr(s.downReq.ID())
	default:
		return fmt.Errorf("%w: session is not ready to be initialized (%s)",
			jrpc2.InvalidRequest.Err(), s.state)
	}

	s.initializeReq = req
	s.initializeReqTime = time.Now()
	s.state = stateInitializedUnconfirmed

	return nil
}

func (s *session) ConfirmInitialization(req *jrpc2.Request) error {
	if s.state != stateInitializedUnconfirmed {
		if s.state == stateInitializedConfirmed {
			return fmt.Errorf("session was already confirmed as initialized at %s via request %s",
				s.initializedReqTime, s.initializedReq.ID())
		}
		return SessionNotInitializedErr(s.state)
	}
	s.initializedReq = req
	s.initializedReqTime = time.Now()
	s.state = stateInitializedConfirmed

	return nil
}

// CheckInitializationIsConfirmed returns an error unless the client
// already sent both "initialize" and "initialized".
func (s *session) CheckInitializationIsConfirmed() error {
	if s.state != stateInitializedConfirmed {
		return SessionNotInitializedErr(s.state)
	}
	return nil
}

func (s *session) Shutdown(req *jrpc2.Request) error {
	if s.state == stateDown {
		return SessionAlreadyDownErr(s.downReq.ID())
	}
	if s.state < stateInitializedUnconfirmed {
		return SessionNotInitializedErr(s.state)
	}

	s.downReq = req
	s.downReqTime = time.Now()
	s.state = stateDown

	return nil
}

// Exit ends the session. Exiting without a prior shutdown
// is allowed only before the session was initialized.
func (s *session) Exit() error {
	if s.state != stateDown && s.state != statePrepared {
		return fmt.Errorf("cannot exit as session is %s", s.state)
	}
	s.exitFunc()

	return nil
}

func (s *session) State() sessionState {
	return s.state
}
