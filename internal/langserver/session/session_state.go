// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package session

type sessionState int

const (
	stateEmpty sessionState = iota - 1
	// connection accepted, no request yet
	statePrepared
	// after "initialize"
	stateInitializedUnconfirmed
	// after "initialized"
	stateInitializedConfirmed
	// after "shutdown"
	stateDown
)

func (ss sessionState) String() string {
	switch ss {
	case stateEmpty:
		return "<empty>"
	case statePrepared:
		return "prepared"
	case stateInitializedUnconfirmed:
		return "initialized (unconfirmed)"
	case stateInitializedConfirmed:
		return "initialized (confirmed)"
	case stateDown:
		return "down"
	}
	return "<unknown>"
}
