// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrListenerGone is returned by [Store.Run] when a snapshot can no longer be
// delivered because the UI stopped receiving.
var ErrListenerGone = errors.New("state listener is gone")
