// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command termplay-cli sends one register or login command to a termplay
// server and prints the reply.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
