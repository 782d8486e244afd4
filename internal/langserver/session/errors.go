// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package session

import (
	"fmt"

	"github.com/creachadair/jrpc2"
)

// SessionNotInitialized is returned for requests received between
// "initialize" and "initialized".
const SessionNotInitialized jrpc2.Code = -32002

type unexpectedSessionState struct {
	ExpectedState sessionState
	CurrentState  sessionState
}

func (e *unexpectedSessionState) Error() string {
	return fmt.Sprintf("session is not %s, current state: %s",
		e.ExpectedState, e.CurrentState)
}

func SessionNotInitializedErr(state sessionState) error {
	uss := &unexpectedSessionState{
		ExpectedState: stateInitializedConfirmed,
		CurrentState:  state,
	}
	switch {
	case state < stateInitializedUnconfirmed:
		return fmt.Errorf("%w: %s", jrpc2.InvalidRequest.Err(), uss)
	case state == stateInitializedUnconfirmed:
		return fmt.Errorf("%w: %s", SessionNotInitialized.Err(), uss)
	case state == stateDown:
		return fmt.Errorf("%w: %s", jrpc2.InvalidRequest.Err(), uss)
	}

	return uss
}

func SessionAlreadyInitializedErr(reqID string) error {
	return fmt.Errorf("%w: session was already initialized via request ID %s",
		jrpc2.SystemError.Err(), reqID)
}

func SessionAlreadyDownErr(reqID string) error {
	return fmt.Errorf("%w: session was already shut down via request %s",
		jrpc2.InvalidRequest.Err(), reqID)
}
