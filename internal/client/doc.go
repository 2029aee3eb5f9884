// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

// Package client implements the interactive diary application runtime.
//
// It ties the terminal UI, the diary services and the wallet connector into
// a single process lifecycle and guarantees the in-memory encryption key is
// wiped when the process leaves the interactive loop.
package client
