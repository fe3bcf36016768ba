// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

// =============================================================================
// AUTH MESSAGES
// =============================================================================

// AuthResultMsg reports the outcome of a login or register request.
// On success Token is the bearer token to store; on failure Err is set
// and Token is empty.
type AuthResultMsg struct {
	Token string
	Err   error
}
