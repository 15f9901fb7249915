// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"bufio"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/mock"
	"github.com/MKhiriev/termplay/internal/protocol"
	"github.com/MKhiriev/termplay/internal/service"
	"github.com/MKhiriev/termplay/internal/validators"
	"github.com/MKhiriev/termplay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type peer struct {
	conn net.Conn
	r    *bufio.Reader
	done chan error
}

func startSession(t *testing.T, ctx context.Context, accounts service.AccountService, idle time.Duration) *peer {
	t.Helper()

	server, client := net.Pipe()
	h := NewHandler(accounts, idle, logger.Nop())

	p := &peer{conn: client, r: bufio.NewReader(client), done: make(chan error, 1)}
	go func() { p.done <- h.Serve(ctx, server) }()
	t.Cleanup(func() { client.Close() })

	return p
}

func (p *peer) send(t *testing.T, cmd protocol.UserCommand) {
	t.Helper()
	line, err := protocol.EncodeUserCommand(cmd)
	require.NoError(t, err)
	_, err = p.conn.Write(line)
	require.NoError(t, err)
}

func (p *peer) receive(t *testing.T) protocol.ServerEvent {
	t.Helper()
	_ = p.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	line, err := p.r.ReadBytes('\n')
	require.NoError(t, err)
	ev, err := protocol.DecodeServerEvent(line)
	require.NoError(t, err)
	return ev
}

func (p *peer) wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-p.done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("session did not end")
		return nil
	}
}

func TestServe_RegisterThenLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountService(ctrl)

	gomock.InOrder(
		accounts.EXPECT().Register(gomock.Any(), "alice@example.com", "secret").Return(models.User{UserID: "id-1"}, nil),
		accounts.EXPECT().Login(gomock.Any(), "alice@example.com", "secret").Return(models.User{}, service.ErrNotConfirmed),
	)

	p := startSession(t, context.Background(), accounts, 0)

	p.send(t, protocol.RegisterCommand{Login: "alice@example.com", Password: "secret"})
	assert.Equal(t, protocol.RegisterResponseEvent{Success: true, Message: msgRegistered}, p.receive(t))

	p.send(t, protocol.LoginCommand{Login: "alice@example.com", Password: "secret"})
	assert.Equal(t, protocol.LoginResponseEvent{Success: false, Message: msgNotConfirmed}, p.receive(t))

	p.conn.Close()
	assert.NoError(t, p.wait(t))
}

func TestServe_MalformedLineEndsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := startSession(t, context.Background(), mock.NewMockAccountService(ctrl), 0)

	_, err := p.conn.Write([]byte("{\"_ct\":\"dance\"}\r\n"))
	require.NoError(t, err)

	assert.ErrorIs(t, p.wait(t), protocol.ErrUnknownTag)

	_, err = p.r.ReadBytes('\n')
	assert.Error(t, err, "connection is closed by the server")
}

func TestServe_IdleTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := startSession(t, context.Background(), mock.NewMockAccountService(ctrl), 50*time.Millisecond)

	assert.NoError(t, p.wait(t))
}

func TestServe_ContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx, cancel := context.WithCancel(context.Background())
	p := startSession(t, ctx, mock.NewMockAccountService(ctrl), 0)

	cancel()

	assert.NoError(t, p.wait(t))
}

func TestRegisterResponse(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want protocol.RegisterResponseEvent
	}{
		{name: "ok", want: protocol.RegisterResponseEvent{Success: true, Message: msgRegistered}},
		{name: "mail failed", err: service.ErrConfirmationNotSent, want: protocol.RegisterResponseEvent{Success: true, Message: msgRegisteredNoMail}},
		{name: "taken", err: service.ErrLoginTaken, want: protocol.RegisterResponseEvent{Message: msgLoginTaken}},
		{
			name: "bad e-mail",
			err:  errors.Join(service.ErrInvalidDataProvided, validators.ErrInvalidEmail),
			want: protocol.RegisterResponseEvent{Message: msgInvalidEmail},
		},
		{
			name: "no password",
			err:  errors.Join(service.ErrInvalidDataProvided, validators.ErrEmptyPassword),
			want: protocol.RegisterResponseEvent{Message: msgPasswordRequired},
		},
		{name: "storage", err: errors.New("disk full"), want: protocol.RegisterResponseEvent{Message: msgInternal}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, registerResponse(tt.err))
		})
	}
}

func TestLoginResponse(t *testing.T) {
	assert.Equal(t, protocol.LoginResponseEvent{Success: true, Message: msgLoggedIn}, loginResponse(nil))
	assert.Equal(t, protocol.LoginResponseEvent{Message: msgWrongCredentials}, loginResponse(service.ErrWrongCredentials))
	assert.Equal(t, protocol.LoginResponseEvent{Message: msgNotConfirmed}, loginResponse(service.ErrNotConfirmed))
	assert.Equal(t, protocol.LoginResponseEvent{Message: msgInvalidInput}, loginResponse(errors.Join(service.ErrInvalidDataProvided, validators.ErrEmptyLogin)))
	assert.Equal(t, protocol.LoginResponseEvent{Message: msgInternal}, loginResponse(errors.New("boom")))
}
