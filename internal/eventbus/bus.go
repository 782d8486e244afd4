// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package eventbus

import (
	"io"
	"log"
	"sync"

	"github.com/hashicorp/go-multierror"
)

var discardLogger = log.New(io.Discard, "", 0)

// EventBus is a simple event bus that allows for subscribing to and publishing
// events of a specific type.
//
// It has a static list of topics. Each topic can have multiple subscribers.
// Events are delivered synchronously, in subscription order,
// on the goroutine which publishes them.
type EventBus struct {
	logger *log.Logger

	willSaveTopic      *Topic[WillSaveEvent]
	didInsertTextTopic *Topic[InsertTextEvent]
	didDestroyTopic    *Topic[DestroyEvent]
}

func NewEventBus() *EventBus {
	return &EventBus{
		logger:             discardLogger,
		willSaveTopic:      NewTopic[WillSaveEvent](),
		didInsertTextTopic: NewTopic[InsertTextEvent](),
		didDestroyTopic:    NewTopic[DestroyEvent](),
	}
}

func (eb *EventBus) SetLogger(logger *log.Logger) {
	eb.logger = logger
}

// Topic represents a generic subscription topic
type Topic[T any] struct {
	subscribers []*subscriber[T]
	lastID      int
	mutex       sync.Mutex
}

type subscriber[T any] struct {
	id      int
	handler func(T) error
}

// NewTopic creates a new topic
func NewTopic[T any]() *Topic[T] {
	return &Topic[T]{
		subscribers: make([]*subscriber[T], 0),
	}
}

// Subscribe adds a subscriber to a topic.
// The subscriber is removed when the returned Subscription is disposed.
func (t *Topic[T]) Subscribe(handler func(T) error) *Subscription {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.lastID++
	id := t.lastID
	t.subscribers = append(t.subscribers, &subscriber[T]{
		id:      id,
		handler: handler,
	})

	return newSubscription(func() {
		t.unsubscribe(id)
	})
}

func (t *Topic[T]) unsubscribe(id int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	for i, s := range t.subscribers {
		if s.id == id {
			t.subscribers = append(t.subscribers[:i], t.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers of a specific topic
// and returns errors of all subscribers which failed.
//
// Subscribers may subscribe or dispose subscriptions
// while an event is being delivered.
func (t *Topic[T]) Publish(event T) error {
	t.mutex.Lock()
	subscribers := make([]*subscriber[T], len(t.subscribers))
	copy(subscribers, t.subscribers)
	t.mutex.Unlock()

	var errs *multierror.Error
	for _, s := range subscribers {
		err := s.handler(event)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs.ErrorOrNil()
}

// Len returns number of current subscribers
func (t *Topic[T]) Len() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return len(t.subscribers)
}
