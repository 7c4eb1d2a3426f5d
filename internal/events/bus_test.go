// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package events

import "testing"

func TestPublishReachesAllSubscribersInOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe(func(ev Event) { order = append(order, "first:"+string(ev.Type)) })
	bus.Subscribe(func(ev Event) { order = append(order, "second:"+string(ev.Type)) })

	bus.Publish(Event{Type: FileUploaded, Filename: "a.csv"})

	if len(order) != 2 {
		t.Fatalf("got %d deliveries, want 2", len(order))
	}
	if order[0] != "first:file_uploaded" || order[1] != "second:file_uploaded" {
		t.Errorf("unexpected delivery order: %v", order)
	}
}

func TestPublishWithoutSubscribersIsSafe(t *testing.T) {
	bus := NewBus()
	bus.Publish(Event{Type: LoggedOut})
}

func TestSubscriberMayPublish(t *testing.T) {
	// Subscribers run outside the bus lock, so a handler that publishes a
	// follow-up event must not deadlock.
	bus := NewBus()

	var seen []Type
	bus.Subscribe(func(ev Event) {
		seen = append(seen, ev.Type)
		if ev.Type == AuditSubmitted {
			bus.Publish(Event{Type: FileDeleted})
		}
	})

	bus.Publish(Event{Type: AuditSubmitted})

	if len(seen) != 2 || seen[1] != FileDeleted {
		t.Errorf("chained publish not delivered: %v", seen)
	}
}
