// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package eventbus

import "sync"

type Disposable interface {
	Dispose()
}

// Subscription is a handle of a single subscription.
// Disposing it more than once is a no-op.
type Subscription struct {
	once    sync.Once
	dispose func()
}

func newSubscription(dispose func()) *Subscription {
	return &Subscription{dispose: dispose}
}

func (s *Subscription) Dispose() {
	s.once.Do(s.dispose)
}

// CompositeDisposable holds handles which are released together
type CompositeDisposable struct {
	mutex    sync.Mutex
	items    []Disposable
	disposed bool
}

func NewCompositeDisposable(items ...Disposable) *CompositeDisposable {
	return &CompositeDisposable{items: items}
}

// Add adds d to the set. If the set was already disposed,
// d is disposed immediately.
func (c *CompositeDisposable) Add(items ...Disposable) {
	c.mutex.Lock()
	if !c.disposed {
		c.items = append(c.items, items...)
		c.mutex.Unlock()
		return
	}
	c.mutex.Unlock()

	for _, d := range items {
		d.Dispose()
	}
}

// Remove removes d from the set without disposing it
func (c *CompositeDisposable) Remove(d Disposable) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for i, item := range c.items {
		if item == d {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Dispose disposes all held items, in the order they were added
func (c *CompositeDisposable) Dispose() {
	c.mutex.Lock()
	items := c.items
	c.items = nil
	c.disposed = true
	c.mutex.Unlock()

	for _, d := range items {
		d.Dispose()
	}
}

func (c *CompositeDisposable) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.items)
}
