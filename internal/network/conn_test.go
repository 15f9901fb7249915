// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"bufio"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/termplay/internal/protocol"
	"github.com/MKhiriev/termplay/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubResolver struct {
	addrs []string
	err   error
}

func (r stubResolver) LookupHost(context.Context, string) ([]string, error) {
	return r.addrs, r.err
}

type testServer struct {
	listener net.Listener
	anchor   *x509.CertPool
	cert     *x509.Certificate
	port     int
	done     chan struct{}
}

// startServer serves one TLS connection on loopback with handle.
func startServer(t *testing.T, handle func(conn net.Conn)) *testServer {
	t.Helper()

	certPEM, keyPEM, err := utils.GenerateSelfSigned([]string{"localhost", "127.0.0.1"}, time.Hour)
	require.NoError(t, err)
	pair, err := tls.X509KeyPair(certPEM, keyPEM)
	require.NoError(t, err)
	anchor, err := ParseTrustAnchor(certPEM)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(pair.Certificate[0])
	require.NoError(t, err)

	ln, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{Certificates: []tls.Certificate{pair}})
	require.NoError(t, err)

	srv := &testServer{
		listener: ln,
		anchor:   anchor,
		cert:     cert,
		port:     ln.Addr().(*net.TCPAddr).Port,
		done:     make(chan struct{}),
	}

	go func() {
		defer close(srv.done)
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		if tc, ok := conn.(*tls.Conn); ok {
			if err := tc.Handshake(); err != nil {
				return
			}
		}
		handle(conn)
	}()

	t.Cleanup(func() {
		_ = ln.Close()
		<-srv.done
	})
	return srv
}

func (s *testServer) dialer() *Dialer {
	return &Dialer{
		Resolver: stubResolver{addrs: []string{"127.0.0.1"}},
		RootCAs:  s.anchor,
	}
}

func collect(t *testing.T, events <-chan Event) []Event {
	t.Helper()

	var got []Event
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return got
			}
			got = append(got, ev)
		case <-timeout:
			t.Fatal("event stream did not end")
		}
	}
}

func TestConnect_SendAndReceive(t *testing.T) {
	received := make(chan string, 1)
	srv := startServer(t, func(conn net.Conn) {
		line, err := bufio.NewReader(conn).ReadString('\n')
		if err != nil {
			return
		}
		received <- line
		_, _ = conn.Write([]byte("{\"_et\":\"register_response\",\"success\":true,\"message\":\"Welcome\"}\r\n"))
	})

	conn, err := srv.dialer().Connect(context.Background(), "localhost", srv.port)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.Send(protocol.RegisterCommand{Login: "alice", Password: "secret"}))
	assert.Equal(t, "{\"_ct\":\"register\",\"login\":\"alice\",\"password\":\"secret\"}\r\n", <-received)

	events := collect(t, conn.Events())
	require.Len(t, events, 1)
	assert.NoError(t, events[0].Err)
	assert.Equal(t, protocol.RegisterResponseEvent{Success: true, Message: "Welcome"}, events[0].Event)
}

func TestConnect_PinnedCertificate(t *testing.T) {
	srv := startServer(t, func(conn net.Conn) {
		if _, err := bufio.NewReader(conn).ReadString('\n'); err != nil {
			return
		}
		_, _ = conn.Write([]byte("{\"_et\":\"login_response\",\"success\":true,\"message\":\"Welcome\"}\r\n"))
	})

	conn, err := Connect(context.Background(), "127.0.0.1", srv.port, srv.cert)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.Send(protocol.LoginCommand{Login: "alice", Password: "secret"}))

	events := collect(t, conn.Events())
	require.Len(t, events, 1)
	assert.Equal(t, protocol.LoginResponseEvent{Success: true, Message: "Welcome"}, events[0].Event)
}

func TestConnect_NilTrustAnchor(t *testing.T) {
	conn, err := Connect(context.Background(), "localhost", 1, nil)

	assert.Nil(t, conn)
	assert.ErrorIs(t, err, ErrHandshakeFailed)
	assert.ErrorIs(t, err, ErrNoCertificate)
}

func TestConnect_LegacyReply(t *testing.T) {
	srv := startServer(t, func(conn net.Conn) {
		_, _ = conn.Write([]byte("{\"_st\":\"register_response\",\"email_sent\":false}\r\n"))
	})

	conn, err := srv.dialer().Connect(context.Background(), "localhost", srv.port)
	require.NoError(t, err)
	defer conn.Close()

	events := collect(t, conn.Events())
	require.Len(t, events, 1)
	ev, ok := events[0].Event.(protocol.RegisterResponseEvent)
	require.True(t, ok)
	assert.False(t, ev.Success)
}

func TestConn_EventsEndAfterDecodeError(t *testing.T) {
	srv := startServer(t, func(conn net.Conn) {
		_, _ = conn.Write([]byte("{\"_et\":\"login_response\",\"success\":true,\"message\":\"hi\"}\r\nnot json\r\n{\"_et\":\"login_response\",\"success\":true,\"message\":\"late\"}\r\n"))
		time.Sleep(50 * time.Millisecond)
	})

	conn, err := srv.dialer().Connect(context.Background(), "localhost", srv.port)
	require.NoError(t, err)
	defer conn.Close()

	events := collect(t, conn.Events())
	require.Len(t, events, 2)
	assert.NoError(t, events[0].Err)
	assert.ErrorIs(t, events[1].Err, protocol.ErrMalformed)
	assert.Nil(t, events[1].Event)
}

func TestConn_LineTooLong(t *testing.T) {
	srv := startServer(t, func(conn net.Conn) {
		_, _ = conn.Write([]byte(strings.Repeat("x", MaxLineSize+10)))
		time.Sleep(50 * time.Millisecond)
	})

	conn, err := srv.dialer().Connect(context.Background(), "localhost", srv.port)
	require.NoError(t, err)
	defer conn.Close()

	events := collect(t, conn.Events())
	require.Len(t, events, 1)
	assert.ErrorIs(t, events[0].Err, ErrReadFailed)
	assert.ErrorIs(t, events[0].Err, bufio.ErrTooLong)
}

func TestConn_EventsIsSameChannel(t *testing.T) {
	srv := startServer(t, func(conn net.Conn) {})

	conn, err := srv.dialer().Connect(context.Background(), "localhost", srv.port)
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, conn.Events(), conn.Events())
}

func TestConn_CloseIsIdempotentAndStopsReader(t *testing.T) {
	release := make(chan struct{})
	srv := startServer(t, func(conn net.Conn) {
		<-release
	})
	defer close(release)

	conn, err := srv.dialer().Connect(context.Background(), "localhost", srv.port)
	require.NoError(t, err)

	events := conn.Events()
	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())

	assert.Empty(t, collect(t, events))
	assert.ErrorIs(t, conn.Send(protocol.LoginCommand{Login: "a", Password: "b"}), ErrClosed)
}

func TestConnect_ResolutionFailed(t *testing.T) {
	tests := []struct {
		name     string
		resolver Resolver
	}{
		{name: "no addresses", resolver: stubResolver{}},
		{name: "resolver error", resolver: stubResolver{err: errors.New("no such host")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Dialer{Resolver: tt.resolver, RootCAs: x509.NewCertPool()}
			_, err := d.Connect(context.Background(), "nowhere.invalid", 1)
			assert.ErrorIs(t, err, ErrResolutionFailed)
		})
	}
}

func TestConnect_DialFailed(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	d := &Dialer{Resolver: stubResolver{addrs: []string{"127.0.0.1"}}, RootCAs: x509.NewCertPool()}
	_, err = d.Connect(context.Background(), "localhost", port)
	assert.ErrorIs(t, err, ErrDialFailed)
}

func TestConnect_UntrustedCertificate(t *testing.T) {
	srv := startServer(t, func(conn net.Conn) {})

	otherPEM, _, err := utils.GenerateSelfSigned([]string{"localhost"}, time.Hour)
	require.NoError(t, err)
	other, err := ParseTrustAnchor(otherPEM)
	require.NoError(t, err)

	d := srv.dialer()
	d.RootCAs = other
	_, err = d.Connect(context.Background(), "localhost", srv.port)
	assert.ErrorIs(t, err, ErrHandshakeFailed)
}

func TestConnect_WrongServerName(t *testing.T) {
	srv := startServer(t, func(conn net.Conn) {})

	d := srv.dialer()
	d.ServerName = "example.com"
	_, err := d.Connect(context.Background(), "localhost", srv.port)
	assert.ErrorIs(t, err, ErrHandshakeFailed)
}
