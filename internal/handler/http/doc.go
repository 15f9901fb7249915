// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP side of the companion server: the
// account confirmation link and a version endpoint.
//
// Request tracing and access logging run as middleware before requests are
// delegated to the service layer.
package http
