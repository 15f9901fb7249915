// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import "errors"

var (
	ErrResolutionFailed = errors.New("address resolution failed")
	ErrDialFailed       = errors.New("tcp dial failed")
	ErrHandshakeFailed  = errors.New("tls handshake failed")
	ErrReadFailed       = errors.New("read from server failed")
	ErrSendFailed       = errors.New("send to server failed")
	ErrClosed           = errors.New("connection closed")
	ErrNoCertificate    = errors.New("no certificate found in PEM data")
)
