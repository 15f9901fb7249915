// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the union of every setting either binary reads. It is
// populated by merging defaults, an optional JSON file, environment
// variables and flags, and then narrowed into [ClientConfig] or
// [ServerConfig].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Client holds how the terminal client reaches the server.
	Client Client `envPrefix:"CLIENT_"`

	// Server holds listener addresses, TLS material and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// App holds confirmation token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the account database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Mail holds confirmation mail delivery settings.
	Mail Mail `envPrefix:"MAIL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Client holds the connection settings of the terminal client.
type Client struct {
	// Host is the server name, also checked against its certificate.
	// Env: CLIENT_HOST
	Host string `env:"HOST"`

	// Port is the server's TLS port.
	// Env: CLIENT_PORT
	Port int `env:"PORT"`

	// TrustAnchorPath is the PEM file holding the pinned server certificate
	// or the CA that issued it.
	// Env: CLIENT_TRUST_ANCHOR
	TrustAnchorPath string `env:"TRUST_ANCHOR"`

	// ConnectTimeout bounds resolution, dial and handshake. Zero means
	// unbounded.
	// Env: CLIENT_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// LogFile is where the interactive client writes its log, since the
	// terminal belongs to the UI. Empty means "logs" next to the binary.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Server holds network and timeout settings of the companion server.
type Server struct {
	// LineAddress is the TLS line protocol listener, "host:port".
	// Env: SERVER_ADDRESS
	LineAddress string `env:"ADDRESS"`

	// HTTPAddress is the confirmation endpoint listener, "host:port".
	// Env: SERVER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// CertFile and KeyFile are the PEM certificate and key of the line
	// listener. When both are empty a self-signed pair is generated and
	// written to DevCertOut.
	// Env: SERVER_CERT_FILE, SERVER_KEY_FILE
	CertFile string `env:"CERT_FILE"`
	KeyFile  string `env:"KEY_FILE"`

	// DevCertOut receives the generated certificate so clients can pin it.
	// Env: SERVER_DEV_CERT_OUT
	DevCertOut string `env:"DEV_CERT_OUT"`

	// PublicURL is the externally visible base URL of the HTTP listener,
	// used to build confirmation links.
	// Env: SERVER_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// IdleTimeout closes a line session that sent nothing for this long.
	// Env: SERVER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`

	// RequestTimeout bounds one HTTP request or one line command.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// App holds confirmation token settings.
type App struct {
	// TokenSignKey signs confirmation tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every confirmation token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a confirmation link stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the account database connection.
type DB struct {
	// DSN is either a postgres:// URL (pgx driver) or a sqlite3 file path
	// or URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Mail holds confirmation mail delivery settings.
type Mail struct {
	// Driver selects the mailer: "smtp", "http" or "log".
	// Env: MAIL_DRIVER
	Driver string `env:"DRIVER"`

	// From is the sender address.
	// Env: MAIL_FROM
	From string `env:"FROM"`

	// SMTPAddress is the relay, "host:port".
	// Env: MAIL_SMTP_ADDRESS
	SMTPAddress string `env:"SMTP_ADDRESS"`

	// SMTPUsername and SMTPPassword enable PLAIN auth when set.
	// Env: MAIL_SMTP_USERNAME, MAIL_SMTP_PASSWORD
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	// APIURL is the base URL of the HTTP mail API.
	// Env: MAIL_API_URL
	APIURL string `env:"API_URL"`

	// APIKey authenticates against the HTTP mail API and signs bodies.
	// Env: MAIL_API_KEY
	APIKey string `env:"API_KEY"`

	// Timeout bounds one delivery.
	// Env: MAIL_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Mail drivers.
const (
	MailDriverSMTP = "smtp"
	MailDriverHTTP = "http"
	MailDriverLog  = "log"
)

// defaults returns the built-in values every other source overrides.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Client: Client{
			Host:           "termplay.xyz",
			Port:           443,
			ConnectTimeout: 10 * time.Second,
		},
		Server: Server{
			LineAddress:     ":8443",
			HTTPAddress:     ":8080",
			DevCertOut:      "termplay-ca.pem",
			PublicURL:       "http://localhost:8080",
			IdleTimeout:     5 * time.Minute,
			RequestTimeout:  15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		App: App{
			TokenIssuer:   "termplay",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{DSN: "termplay.db"},
		},
		Mail: Mail{
			Driver:  MailDriverLog,
			From:    "no-reply@termplay.xyz",
			Timeout: 10 * time.Second,
		},
	}
}
