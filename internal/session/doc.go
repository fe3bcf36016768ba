// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the authentication credential for the running
// process. It is the single source of truth for "is a user logged in":
// the token lives in memory and in a 0600 file under the config dir so
// a restart does not require logging in again.
//
// Only Login and Logout mutate the store; every other consumer reads.
// Controllers must receive the store from the app that owns it; the
// package-level Active accessor exists for the rare late-bound caller
// and panics when used before Attach, because reading session state
// outside the owner is a programming error, not a recoverable one.
package session
