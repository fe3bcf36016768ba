// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the authentication credential for the process.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/morganforge/parley-tui/internal/util"
)

// =============================================================================
// SESSION STORE
// =============================================================================

// Store holds the bearer token in memory and mirrors it to a durable
// file. A non-empty token means authenticated; there is no client-side
// expiry tracking, an expired token surfaces as a 401 on some later
// request.
type Store struct {
	mu    sync.Mutex
	path  string
	token string
}

// Open creates a store backed by the given file path and restores any
// previously persisted token. A missing file simply means no one is
// logged in; that is not an error and requires no network call.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Login stores the token durably and in memory. Authenticated state
// flips synchronously; callers may navigate immediately after this
// returns.
func (s *Store) Login(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("refusing to store an empty token")
	}

	// SECURITY: Token file is user-readable only.
	if err := util.AtomicWriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	s.token = token
	return nil
}

// Logout removes the token from durable storage and memory. In-flight
// requests are not cancelled; their results are ignored by whichever
// view was torn down with the session.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// Token returns the current bearer token, or "" when logged out.
// This implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether a non-empty token is stored. This is
// a pure derivation of the token, never cached.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// =============================================================================
// PROCESS-WIDE ACCESS GUARD
// =============================================================================

var (
	activeMu sync.Mutex
	active   *Store
)

// Attach registers the store owned by the running app. Call exactly
// once at startup, before any Active call.
func Attach(s *Store) {
	activeMu.Lock()
	defer activeMu.Unlock()
	active = s
}

// Detach clears the attached store. Intended for tests.
func Detach() {
	activeMu.Lock()
	defer activeMu.Unlock()
	active = nil
}

// Active returns the attached store. It panics when no store was
// attached: that is a wiring bug, and failing loudly during development
// beats silently acting logged-out.
func Active() *Store {
	activeMu.Lock()
	defer activeMu.Unlock()
	if active == nil {
		panic("session: Active called before Attach; session state must be read through the owning app")
	}
	return active
}
