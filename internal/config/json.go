// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	Client struct {
		Host            string   `json:"host"`
		Port            int      `json:"port"`
		TrustAnchorPath string   `json:"trust_anchor"`
		ConnectTimeout  Duration `json:"connect_timeout"`
		LogFile         string   `json:"log_file"`
	} `json:"client,omitempty"`

	Server struct {
		LineAddress     string   `json:"address"`
		HTTPAddress     string   `json:"http_address"`
		CertFile        string   `json:"cert_file"`
		KeyFile         string   `json:"key_file"`
		DevCertOut      string   `json:"dev_cert_out"`
		PublicURL       string   `json:"public_url"`
		IdleTimeout     Duration `json:"idle_timeout"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Mail struct {
		Driver       string   `json:"driver"`
		From         string   `json:"from"`
		SMTPAddress  string   `json:"smtp_address"`
		SMTPUsername string   `json:"smtp_username"`
		SMTPPassword string   `json:"smtp_password"`
		APIURL       string   `json:"api_url"`
		APIKey       string   `json:"api_key"`
		Timeout      Duration `json:"timeout"`
	} `json:"mail,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Client: Client{
			Host:            jsonCfg.Client.Host,
			Port:            jsonCfg.Client.Port,
			TrustAnchorPath: jsonCfg.Client.TrustAnchorPath,
			ConnectTimeout:  time.Duration(jsonCfg.Client.ConnectTimeout),
			LogFile:         jsonCfg.Client.LogFile,
		},
		Server: Server{
			LineAddress:     jsonCfg.Server.LineAddress,
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			CertFile:        jsonCfg.Server.CertFile,
			KeyFile:         jsonCfg.Server.KeyFile,
			DevCertOut:      jsonCfg.Server.DevCertOut,
			PublicURL:       jsonCfg.Server.PublicURL,
			IdleTimeout:     time.Duration(jsonCfg.Server.IdleTimeout),
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Mail: Mail{
			Driver:       jsonCfg.Mail.Driver,
			From:         jsonCfg.Mail.From,
			SMTPAddress:  jsonCfg.Mail.SMTPAddress,
			SMTPUsername: jsonCfg.Mail.SMTPUsername,
			SMTPPassword: jsonCfg.Mail.SMTPPassword,
			APIURL:       jsonCfg.Mail.APIURL,
			APIKey:       jsonCfg.Mail.APIKey,
			Timeout:      time.Duration(jsonCfg.Mail.Timeout),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from strings like "1h" or
// "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
