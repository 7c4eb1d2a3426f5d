// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package events provides a typed in-process event bus used to broadcast
// invalidation events between loosely coupled parts of the CLI. Components
// that cache fetched data (file lists, audit lists, dashboard counters)
// subscribe and refetch or reset when a relevant event arrives.
package events

import "sync"

// Type enumerates known event kinds.
type Type string

const (
	// FileUploaded fires after a file or contract upload succeeds.
	FileUploaded Type = "file_uploaded"
	// FileDeleted fires after a file deletion succeeds.
	FileDeleted Type = "file_deleted"
	// AuditSubmitted fires after an audit note is stored.
	AuditSubmitted Type = "audit_submitted"
	// LoggedIn fires when a new session token is installed.
	LoggedIn Type = "logged_in"
	// LoggedOut fires when the session is cleared. Subscribers must discard
	// any cached authenticated data.
	LoggedOut Type = "logged_out"
)

// Event is the payload delivered to subscribers.
// Only a subset of fields is set depending on Type.
type Event struct {
	Type Type

	// FileID is set for FileDeleted and AuditSubmitted.
	FileID int
	// Filename is set for FileUploaded.
	Filename string
}

// Bus is a minimal publish/subscribe hub. Subscribers are invoked
// synchronously, outside the bus lock, in subscription order.
type Bus struct {
	mu   sync.Mutex
	subs []func(Event)
}

// NewBus creates an empty bus.
func NewBus() *Bus { return &Bus{} }

// Subscribe registers fn for all future events.
func (b *Bus) Subscribe(fn func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// Publish delivers ev to every subscriber.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	subs := make([]func(Event), len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}
