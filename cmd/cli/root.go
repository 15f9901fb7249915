// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/termplay/internal/client"
	"github.com/MKhiriev/termplay/internal/config"
	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/network"
	"github.com/MKhiriev/termplay/internal/protocol"
	"github.com/spf13/cobra"
)

var (
	errRejected     = errors.New("server rejected the command")
	errNoReply      = errors.New("server closed the connection without a reply")
	errUnknownReply = errors.New("unexpected server event")
)

type options struct {
	host    string
	port    int
	caFile  string
	timeout time.Duration
	logFile string

	connector connectorFunc
}

type connectorFunc func(cfg config.Client, log *logger.Logger) (network.Connector, error)

func newRootCmd(out io.Writer) *cobra.Command {
	return newRootCmdWith(out, client.NewConnector)
}

func newRootCmdWith(out io.Writer, connector connectorFunc) *cobra.Command {
	opts := &options{connector: connector}

	root := &cobra.Command{
		Use:           "termplay-cli",
		Short:         "Send one command to a termplay server",
		SilenceUsage: true,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.host, "host", "localhost", "server host, also checked against its certificate")
	flags.IntVar(&opts.port, "port", 8443, "server TLS port")
	flags.StringVar(&opts.caFile, "ca-file", "termplay-ca.pem", "PEM file with the pinned server certificate or its CA")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "connect and reply timeout, 0 disables it")
	flags.StringVar(&opts.logFile, "log-file", "", "log file, defaults to \"logs\" next to the binary")

	root.AddCommand(
		newSendCmd("register", "Create an account and request a confirmation mail", opts,
			func(login, password string) protocol.UserCommand {
				return protocol.RegisterCommand{Login: login, Password: password}
			}),
		newSendCmd("login", "Check the credentials of a confirmed account", opts,
			func(login, password string) protocol.UserCommand {
				return protocol.LoginCommand{Login: login, Password: password}
			}),
	)

	return root
}

func newSendCmd(name, short string, opts *options, build func(login, password string) protocol.UserCommand) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <login> <password>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog := logger.NewClientLogger("termplay-cli", opts.logFile)
			defer closeLog()

			connector, err := opts.connector(config.Client{
				Host:            opts.host,
				Port:            opts.port,
				TrustAnchorPath: opts.caFile,
				ConnectTimeout:  opts.timeout,
			}, log)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if opts.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.timeout)
				defer cancel()
			}

			ev, err := exchange(ctx, connector, build(args[0], args[1]))
			if err != nil {
				log.Error().Err(err).Str("command", name).Msg("exchange failed")
				return err
			}

			return report(cmd.OutOrStdout(), ev)
		},
	}
}

// exchange sends cmd over a fresh connection and returns the first event.
func exchange(ctx context.Context, connector network.Connector, cmd protocol.UserCommand) (protocol.ServerEvent, error) {
	conn, err := connector.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	if err = conn.Send(cmd); err != nil {
		return nil, fmt.Errorf("send %s: %w", cmd.Name(), err)
	}

	select {
	case ev, ok := <-conn.Events():
		if !ok {
			return nil, errNoReply
		}
		if ev.Err != nil {
			return nil, fmt.Errorf("read reply: %w", ev.Err)
		}
		return ev.Event, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("wait for reply: %w", ctx.Err())
	}
}

// report prints ev and turns an unsuccessful reply into an error.
func report(out io.Writer, ev protocol.ServerEvent) error {
	var (
		success bool
		message string
	)
	switch e := ev.(type) {
	case protocol.RegisterResponseEvent:
		success, message = e.Success, e.Message
	case protocol.LoginResponseEvent:
		success, message = e.Success, e.Message
	default:
		return fmt.Errorf("%w: %T", errUnknownReply, ev)
	}

	fmt.Fprintf(out, "%s: %s\n", ev.Name(), message)
	if !success {
		return errRejected
	}
	return nil
}
