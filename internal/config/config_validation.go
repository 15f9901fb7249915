// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

func (cfg *ClientConfig) validate() error {
	c := cfg.Connection
	if c.Host == "" || c.Port < 1 || c.Port > 65535 || c.TrustAnchorPath == "" {
		return ErrInvalidConnectionConfigs
	}
	if c.ConnectTimeout < 0 {
		return fmt.Errorf("%w: negative connect timeout", ErrInvalidConnectionConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	s := cfg.Server
	if s.LineAddress == "" || s.HTTPAddress == "" || s.PublicURL == "" {
		return ErrInvalidServerConfigs
	}
	if (s.CertFile == "") != (s.KeyFile == "") {
		return fmt.Errorf("%w: certificate and key must be set together", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	m := cfg.Mail
	switch m.Driver {
	case MailDriverLog:
	case MailDriverSMTP:
		if m.SMTPAddress == "" || m.From == "" {
			return fmt.Errorf("%w: smtp needs address and sender", ErrInvalidMailConfigs)
		}
	case MailDriverHTTP:
		if m.APIURL == "" || m.APIKey == "" {
			return fmt.Errorf("%w: http needs api url and key", ErrInvalidMailConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidMailConfigs, m.Driver)
	}

	return nil
}
