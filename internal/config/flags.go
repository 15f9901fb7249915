// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// flagParser parses command-line arguments into a partial config.
type flagParser func(args []string) (*StructuredConfig, error)

// NetAddress holds a host and port parsed from "host:port".
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseClientFlags parses the client flags.
//
// Flags:
//
//	-host server host name
//	-port server TLS port
//	-ca-file trust anchor PEM path
//	-timeout connect timeout (e.g. "5s"); 0 disables it
//	-log-file client log path
//	-c/-config json file path with configs
func parseClientFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("termplay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		host, caFile, logFile, jsonConfigPath string
		port                                  int
		timeout                               time.Duration
	)
	fs.StringVar(&host, "host", "", "Server host name")
	fs.IntVar(&port, "port", 0, "Server TLS port")
	fs.StringVar(&caFile, "ca-file", "", "Trust anchor PEM file")
	fs.DurationVar(&timeout, "timeout", 0, "Connect timeout (e.g., 5s)")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	return &StructuredConfig{
		Client: Client{
			Host:            host,
			Port:            port,
			TrustAnchorPath: caFile,
			ConnectTimeout:  timeout,
			LogFile:         logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// parseServerFlags parses the server flags.
//
// Flags:
//
//	-a line protocol address in format [host]:[port]
//	-http-address confirmation endpoint address in format [host]:[port]
//	-cert / -key TLS certificate and key PEM paths
//	-public-url base URL used in confirmation links
//	-d database DSN
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-idle-timeout line session idle timeout
//	-mail-driver smtp, http or log
//	-c/-config json file path with configs
func parseServerFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("termplay-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		lineAddress, httpAddress NetAddress

		certFile, keyFile, publicURL, databaseDSN string
		tokenSignKey, tokenIssuer, mailDriver     string
		jsonConfigPath                            string
		tokenDuration, idleTimeout                time.Duration
	)
	fs.Var(&lineAddress, "a", "Line protocol address host:port")
	fs.Var(&httpAddress, "http-address", "Confirmation endpoint address host:port")
	fs.StringVar(&certFile, "cert", "", "TLS certificate PEM file")
	fs.StringVar(&keyFile, "key", "", "TLS private key PEM file")
	fs.StringVar(&publicURL, "public-url", "", "Base URL of confirmation links")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&idleTimeout, "idle-timeout", 0, "Line session idle timeout (e.g., 5m)")
	fs.StringVar(&mailDriver, "mail-driver", "", "Mail driver: smtp, http or log")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing server flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			LineAddress: lineAddress.String(),
			HTTPAddress: httpAddress.String(),
			CertFile:    certFile,
			KeyFile:     keyFile,
			PublicURL:   publicURL,
			IdleTimeout: idleTimeout,
		},
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Mail:         Mail{Driver: mailDriver},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns "host:port", or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port". The host may be empty (all interfaces), a name or
// an IP literal; the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	a.Host = host
	a.Port = port
	return nil
}
