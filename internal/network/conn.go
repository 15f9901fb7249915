// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/protocol"
)

// MaxLineSize bounds one server line, terminator included.
const MaxLineSize = 64 * 1024

// Event is one item of [Conn.Events]: a decoded event or the terminal error.
type Event struct {
	Event protocol.ServerEvent
	Err   error
}

// Conn is an established TLS session. Events and Send may be used from
// different goroutines; Send itself is not reentrant.
type Conn struct {
	conn net.Conn
	w    *bufio.Writer
	log  *logger.Logger

	startOnce sync.Once
	events    chan Event

	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
}

func newConn(conn net.Conn, log *logger.Logger) *Conn {
	return &Conn{
		conn:   conn,
		w:      bufio.NewWriter(conn),
		log:    log,
		events: make(chan Event),
		done:   make(chan struct{}),
	}
}

// Events starts the reader on first call and returns its channel. Later
// calls return the same channel.
func (c *Conn) Events() <-chan Event {
	c.startOnce.Do(func() {
		go c.read()
	})
	return c.events
}

func (c *Conn) read() {
	defer close(c.events)

	scanner := bufio.NewScanner(c.conn)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineSize)

	for scanner.Scan() {
		ev, err := protocol.DecodeServerEvent(scanner.Bytes())
		if err != nil {
			c.log.Warn().Err(err).Msg("undecodable server line")
			c.emit(Event{Err: err})
			return
		}
		if !c.emit(Event{Event: ev}) {
			return
		}
	}

	if err := scanner.Err(); err != nil && !c.isClosed() {
		c.log.Debug().Err(err).Msg("read failed")
		c.emit(Event{Err: fmt.Errorf("%w: %w", ErrReadFailed, err)})
		return
	}
	c.log.Debug().Msg("server closed the stream")
}

// emit hands ev to the consumer unless the connection is closed first.
func (c *Conn) emit(ev Event) bool {
	select {
	case c.events <- ev:
		return true
	case <-c.done:
		return false
	}
}

// Send encodes cmd, writes it and flushes.
func (c *Conn) Send(cmd protocol.UserCommand) error {
	if c.isClosed() {
		return ErrClosed
	}

	line, err := protocol.EncodeUserCommand(cmd)
	if err != nil {
		return err
	}
	if _, err = c.w.Write(line); err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	if err = c.w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	c.log.Debug().Str("command", cmd.Name()).Msg("sent")
	return nil
}

// Close shuts the TLS session and the socket. The reader, if started,
// stops and closes the event channel.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		err := c.conn.Close()
		if err != nil && !errors.Is(err, net.ErrClosed) {
			c.closeErr = err
		}
	})
	return c.closeErr
}

func (c *Conn) isClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
