// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model holds the client-side collection types for chats and
// transcripts, plus title and placeholder-ID helpers.
//
// The collections enforce the invariants the UI depends on: no
// duplicate IDs, in-place replacement that preserves list position, and
// removal that tolerates already-gone items. They are plain in-memory
// structures; all persistence lives on the server.
package model
