// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network opens the client's TLS connection to the account server and
// exposes it as a stream of decoded server events plus a command sender.
//
// A connection is valid only against the trust anchor it was opened with;
// system roots are never consulted. A [Conn] is single-use: once its event
// stream ends a fresh [Dialer.Connect] is required.
package network
