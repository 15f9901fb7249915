// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// humanizeConnectError turns a raw connect failure into the status text.
func humanizeConnectError(msg string) string {
	s := strings.ToLower(msg)
	switch {
	case msg == "":
		return ""
	case strings.Contains(s, "certificate"), strings.Contains(s, "x509"):
		return "Server certificate is not trusted"
	case strings.Contains(s, "connection refused"),
		strings.Contains(s, "no such host"),
		strings.Contains(s, "address resolution failed"),
		strings.Contains(s, "network is unreachable"),
		strings.Contains(s, "no route to host"),
		strings.Contains(s, "i/o timeout"),
		strings.Contains(s, "context deadline exceeded"):
		return "No network or server unavailable (" + msg + ")"
	default:
		return msg
	}
}
