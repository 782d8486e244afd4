// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package eventbus

// WillSaveEvent is an event to signal that a document is about
// to be persisted. Subscribers may still modify the document.
type WillSaveEvent struct{}

func (n *EventBus) OnWillSave(identifier string, handler func(WillSaveEvent) error) *Subscription {
	n.logger.Printf("bus: %q subscribed to OnWillSave", identifier)
	return n.willSaveTopic.Subscribe(handler)
}

func (n *EventBus) WillSave(e WillSaveEvent) error {
	n.logger.Printf("bus: -> WillSave")
	return n.willSaveTopic.Publish(e)
}
