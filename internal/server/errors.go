// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package server

import "errors"

var (
	errNoServerAddress = errors.New("http address is not configured")
)
