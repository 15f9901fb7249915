// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ServerConfig is the configuration of the companion server.
type ServerConfig struct {
	Server  Server
	App     App
	Storage Storage
	Mail    Mail
}

// GetServerConfig merges all sources for the server started with args
// (without the program name) and validates the result.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(parseServerFlags, args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Server:  cfg.Server,
		App:     cfg.App,
		Storage: cfg.Storage,
		Mail:    cfg.Mail,
	}
	return serverCfg, serverCfg.validate()
}
