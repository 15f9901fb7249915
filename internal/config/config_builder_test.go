// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderYieldsDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_Precedence verifies flags > env > json > defaults.
func TestBuild_Precedence(t *testing.T) {
	b := newConfigBuilder()
	b.json = &StructuredConfig{Client: Client{Host: "json", Port: 1, TrustAnchorPath: "json.pem"}}
	b.env = &StructuredConfig{Client: Client{Host: "env", Port: 2}}
	b.flags = &StructuredConfig{Client: Client{Host: "flags"}}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "flags", cfg.Client.Host)
	assert.Equal(t, 2, cfg.Client.Port)
	assert.Equal(t, "json.pem", cfg.Client.TrustAnchorPath)
	assert.Equal(t, 10*time.Second, cfg.Client.ConnectTimeout)
}

func TestWithJSON_PathFromFlagsWinsOverEnv(t *testing.T) {
	envPath := writeTempJSONConfig(t, map[string]any{"client": map[string]any{"host": "from-env-file"}})
	flagPath := writeTempJSONConfig(t, map[string]any{"client": map[string]any{"host": "from-flag-file"}})

	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: envPath}
	b.flags = &StructuredConfig{JSONFilePath: flagPath}
	b.withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, "from-flag-file", b.json.Client.Host)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: "/nonexistent/config.json"}

	b.withJSON()
	assert.Error(t, b.err)
	assert.Nil(t, b.json)
}

// ── entry points ──────────────────────────────────────────────────────────────

func TestGetClientConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"client": map[string]any{"host": "json-host", "trust_anchor": "json.pem"},
	})
	t.Setenv("CLIENT_PORT", "9443")

	cfg, err := GetClientConfig([]string{"-c", path, "-host", "flag-host"})
	require.NoError(t, err)

	assert.Equal(t, "flag-host", cfg.Connection.Host)
	assert.Equal(t, 9443, cfg.Connection.Port)
	assert.Equal(t, "json.pem", cfg.Connection.TrustAnchorPath)
	assert.Equal(t, 10*time.Second, cfg.Connection.ConnectTimeout)
}

func TestGetClientConfig_MissingTrustAnchor(t *testing.T) {
	_, err := GetClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidConnectionConfigs)
}

func TestGetServerConfig(t *testing.T) {
	cfg, err := GetServerConfig([]string{"-token-sign-key", "secret", "-d", "file::memory:"})
	require.NoError(t, err)

	assert.Equal(t, ":8443", cfg.Server.LineAddress)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "file::memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, MailDriverLog, cfg.Mail.Driver)
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig {
		d := defaults()
		d.App.TokenSignKey = "secret"
		return &ServerConfig{Server: d.Server, App: d.App, Storage: d.Storage, Mail: d.Mail}
	}

	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ServerConfig) {}},
		{name: "no sign key", mutate: func(c *ServerConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no dsn", mutate: func(c *ServerConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "cert without key", mutate: func(c *ServerConfig) { c.Server.CertFile = "c.pem" }, wantErr: ErrInvalidServerConfigs},
		{name: "no line address", mutate: func(c *ServerConfig) { c.Server.LineAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "smtp without relay", mutate: func(c *ServerConfig) { c.Mail.Driver = MailDriverSMTP }, wantErr: ErrInvalidMailConfigs},
		{name: "http without key", mutate: func(c *ServerConfig) { c.Mail.Driver = MailDriverHTTP }, wantErr: ErrInvalidMailConfigs},
		{name: "unknown driver", mutate: func(c *ServerConfig) { c.Mail.Driver = "pigeon" }, wantErr: ErrInvalidMailConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
