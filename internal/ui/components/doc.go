// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides small reusable widgets shared by the
// parley screens: the single-slot error banner and the delete
// confirmation box.
package components
