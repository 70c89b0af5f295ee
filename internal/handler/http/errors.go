// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrRequestDropped is logged by the serial-access middleware when a queued
// request is abandoned (client gone, server shutting down) before a
// processing slot became free.
var ErrRequestDropped = errors.New("request dropped while waiting for a processing slot")
