// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login implements the sign-in and registration screen.
//
// The screen is one form with two modes sharing the same email and
// password fields. Submission is guarded so a slow server cannot be
// hammered with duplicate auth requests, and the resulting token is
// handed upward through AuthResultMsg; the screen itself never touches
// the session store.
package login
