// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package eventbus

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTopic_publishInOrder(t *testing.T) {
	topic := NewTopic[string]()

	received := make([]string, 0)
	topic.Subscribe(func(e string) error {
		received = append(received, "first:"+e)
		return nil
	})
	topic.Subscribe(func(e string) error {
		received = append(received, "second:"+e)
		return nil
	})

	err := topic.Publish("x")
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"first:x", "second:x"}
	if diff := cmp.Diff(expected, received); diff != "" {
		t.Fatalf("unexpected events: %s", diff)
	}
}

func TestTopic_publishErrors(t *testing.T) {
	topic := NewTopic[int]()

	called := 0
	topic.Subscribe(func(int) error {
		called++
		return errors.New("boom")
	})
	topic.Subscribe(func(int) error {
		called++
		return nil
	})

	err := topic.Publish(1)
	if err == nil {
		t.Fatal("expected error")
	}
	if called != 2 {
		t.Fatalf("expected all subscribers to be called, %d called", called)
	}
}

func TestTopic_disposeDuringPublish(t *testing.T) {
	topic := NewTopic[int]()

	var sub *Subscription
	calls := 0
	sub = topic.Subscribe(func(int) error {
		calls++
		sub.Dispose()
		return nil
	})

	for i := 0; i < 3; i++ {
		if err := topic.Publish(i); err != nil {
			t.Fatal(err)
		}
	}

	if calls != 1 {
		t.Fatalf("expected exactly 1 call, given %d", calls)
	}
	if topic.Len() != 0 {
		t.Fatalf("expected no subscribers, given %d", topic.Len())
	}
}

func TestCompositeDisposable(t *testing.T) {
	topic := NewTopic[int]()
	cd := NewCompositeDisposable()

	first := topic.Subscribe(func(int) error { return nil })
	second := topic.Subscribe(func(int) error { return nil })
	cd.Add(first, second)

	if !cd.Remove(second) {
		t.Fatal("expected second subscription to be removed")
	}
	cd.Dispose()

	if topic.Len() != 1 {
		t.Fatalf("expected removed subscription to stay active, %d active", topic.Len())
	}

	// disposing again is a no-op
	cd.Dispose()
	second.Dispose()
	second.Dispose()
	if topic.Len() != 0 {
		t.Fatalf("expected no subscribers, given %d", topic.Len())
	}

	// adding to a disposed set disposes right away
	third := topic.Subscribe(func(int) error { return nil })
	cd.Add(third)
	if topic.Len() != 0 {
		t.Fatalf("expected no subscribers, given %d", topic.Len())
	}
}
