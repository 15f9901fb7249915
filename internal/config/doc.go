// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the client and server binaries.
//
// Configuration is assembled from several sources; later ones override
// non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. JSON config file (path from CONFIG or -c/-config)
//  3. Environment variables
//  4. Command-line flags
//
// The entry points are [GetClientConfig] and [GetServerConfig].
package config
