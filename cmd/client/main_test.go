// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"testing"

	"github.com/MKhiriev/termplay/internal/termination"
	"github.com/stretchr/testify/assert"
)

func TestGoodbye(t *testing.T) {
	assert.Equal(t, "Bye!", goodbye(termination.UserInterrupt))
	assert.Equal(t, "Interrupted, bye.", goodbye(termination.OSInterrupt))
	assert.Equal(t, "Goodbye.", goodbye(termination.Interrupted(0)))
}
