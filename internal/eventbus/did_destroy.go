// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package eventbus

// DestroyEvent is an event to signal that a document was closed
type DestroyEvent struct{}

func (n *EventBus) OnDidDestroy(identifier string, handler func(DestroyEvent) error) *Subscription {
	n.logger.Printf("bus: %q subscribed to OnDidDestroy", identifier)
	return n.didDestroyTopic.Subscribe(handler)
}

func (n *EventBus) DidDestroy(e DestroyEvent) error {
	n.logger.Printf("bus: -> DidDestroy")
	return n.didDestroyTopic.Publish(e)
}
