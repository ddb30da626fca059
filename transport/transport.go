// Package transport is a minimal blocking, byte-oriented request/response
// channel over TCP: a 4-byte big-endian ("network order") length prefix
// followed by the raw payload, grounded on the original tool's asio-based
// sendData/getData.
package transport

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
)

// ErrTransportFailure wraps any I/O error surfaced by Send or Receive.
var ErrTransportFailure = errors.New("transport: transfer failed")

// Send dials addr and writes payload as a 4-byte big-endian length prefix
// followed by the payload bytes.
func Send(ctx context.Context, addr string, payload []byte) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrTransportFailure, addr, err)
	}
	defer conn.Close()

	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(payload)))
	if _, err := conn.Write(header[:]); err != nil {
		return fmt.Errorf("%w: write length: %v", ErrTransportFailure, err)
	}
	if _, err := conn.Write(payload); err != nil {
		return fmt.Errorf("%w: write payload: %v", ErrTransportFailure, err)
	}
	return nil
}

// Receive listens on addr, accepts a single connection, and reads back the
// length-prefixed payload Send wrote.
func Receive(ctx context.Context, addr string) ([]byte, error) {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: listen %s: %v", ErrTransportFailure, addr, err)
	}
	defer ln.Close()

	conn, err := ln.Accept()
	if err != nil {
		return nil, fmt.Errorf("%w: accept: %v", ErrTransportFailure, err)
	}
	defer conn.Close()

	var header [4]byte
	if _, err := io.ReadFull(conn, header[:]); err != nil {
		return nil, fmt.Errorf("%w: read length: %v", ErrTransportFailure, err)
	}
	length := binary.BigEndian.Uint32(header[:])

	payload := make([]byte, length)
	if _, err := io.ReadFull(conn, payload); err != nil {
		return nil, fmt.Errorf("%w: read payload: %v", ErrTransportFailure, err)
	}
	return payload, nil
}
