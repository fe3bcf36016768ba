// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the REST client for the Parley chat service.
//
// The client covers the full service surface: auth (register/login),
// conversation CRUD, and message history/send. All requests attach a
// bearer credential when one is available from the TokenSource, and all
// non-2xx responses are translated into a single descriptive *Error.
//
// The package is deliberately dumb plumbing: it holds no UI state and
// makes exactly one attempt per call. Retry policy, optimistic updates,
// and error presentation belong to the view models that call it.
package api
