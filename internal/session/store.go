// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the current authentication token, its persistence and
// its propagation to every outgoing request. It is the single source of truth
// for "is a user logged in, and with what bearer token".
//
// The token is cached in memory after the initial load; reads never hit the
// OS keychain. Mutation happens only through Login and Logout, which keep the
// persisted credential equal to the in-memory one and notify subscribers of
// the transition.
package session

import (
	"sync"

	"auditoria/cli/internal/logging"
)

// Secrets is the secure store the session persists its token to.
// keychain.Manager satisfies it; tests substitute an in-memory double.
type Secrets interface {
	SaveToken(token string) error
	LoadToken() (string, error)
	DeleteToken() error
}

// State is a snapshot of the session delivered to subscribers.
type State struct {
	Token         string
	Authenticated bool
}

// Store holds the in-memory token and mirrors it to a Secrets backend.
// All mutation is serialized by a mutex; subscriber callbacks run outside
// the lock so they may call back into the store.
type Store struct {
	mu      sync.Mutex
	secrets Secrets
	token   string
	subs    []func(State)
}

// NewStore creates a session store seeded from the secure store.
// A read failure (missing item, unavailable keychain) means logged out.
func NewStore(secrets Secrets) *Store {
	s := &Store{secrets: secrets}
	if secrets != nil {
		if tok, err := secrets.LoadToken(); err == nil {
			s.token = tok
		}
	}
	return s
}

// Token returns the in-memory token. The second result is false when no
// user is logged in; absence is not an error.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// IsAuthenticated reports whether a token is present.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// Login installs a new token, replacing any prior one, persists it and
// notifies subscribers. Persistence is best-effort: if the secure store is
// unavailable the in-memory token still governs this process lifetime, but
// the credential will not survive restart.
func (s *Store) Login(token string) {
	s.mu.Lock()
	s.token = token
	if s.secrets != nil {
		if err := s.secrets.SaveToken(token); err != nil {
			logging.Diag().Warn().Err(err).Msg("session: token not persisted")
		}
	}
	subs, st := s.snapshotLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
}

// Logout clears the token and deletes the persisted value. Calling it while
// already logged out is a harmless no-op apart from re-notifying subscribers.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	if s.secrets != nil {
		if err := s.secrets.DeleteToken(); err != nil {
			logging.Diag().Warn().Err(err).Msg("session: persisted token not removed")
		}
	}
	subs, st := s.snapshotLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
}

// Subscribe registers fn to run after every Login/Logout transition.
// Observers of a logout must discard any cached authenticated data.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) snapshotLocked() ([]func(State), State) {
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	return subs, State{Token: s.token, Authenticated: s.token != ""}
}
