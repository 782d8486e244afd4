// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package eventbus

import (
	"github.com/hashicorp/whitespace-ls/internal/document"
)

// InsertTextEvent is an event to signal that text was typed
// into a document.
//
// Range is the range of the inserted text after the insertion.
type InsertTextEvent struct {
	Text  string
	Range document.Range
}

func (n *EventBus) OnDidInsertText(identifier string, handler func(InsertTextEvent) error) *Subscription {
	n.logger.Printf("bus: %q subscribed to OnDidInsertText", identifier)
	return n.didInsertTextTopic.Subscribe(handler)
}

func (n *EventBus) DidInsertText(e InsertTextEvent) error {
	n.logger.Printf("bus: -> DidInsertText %q at %s", e.Text, e.Range)
	return n.didInsertTextTopic.Publish(e)
}
