// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ClientConfig is the configuration of the terminal and one-shot clients.
type ClientConfig struct {
	Connection Client
}

// GetClientConfig merges all sources for a client binary started with args
// (without the program name) and validates the result.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(parseClientFlags, args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{Connection: cfg.Client}
	return clientCfg, clientCfg.validate()
}
