// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mailer delivers account confirmation mail. Three drivers exist:
// an SMTP relay, an HTTP mail API and a log-only driver for development.
package mailer
