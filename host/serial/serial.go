// Package serial opens a host serial port and adapts it to
// protocol.Transport, the half-duplex byte interface the Dynamixel
// handler drives.
package serial

import "io"

// Port is the underlying serial port abstraction. This allows for
// different implementations: native serial (github.com/tarm/serial),
// or a mock for testing.
type Port interface {
	io.ReadWriteCloser

	// Flush discards any buffered, unread input.
	Flush() error
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyUSB0", "COM3").
	Device string

	// Baud rate. Dynamixel 2.0 servos default to 57600.
	Baud int

	// Read timeout in milliseconds (0 = blocking).
	ReadTimeout int
}

// DefaultConfig returns a configuration at the Dynamixel 2.0 factory
// default baud rate.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        57600,
		ReadTimeout: 10,
	}
}

// Transport adapts a Port to protocol.Transport: ReadByte/ReadBytes
// pull from a small internal read-ahead buffer so single-byte reads
// don't each cost a syscall.
type Transport struct {
	port Port
	pend []byte
}

// NewTransport wraps an already-opened Port.
func NewTransport(port Port) *Transport {
	return &Transport{port: port}
}

func (t *Transport) fill() {
	if len(t.pend) > 0 {
		return
	}
	buf := make([]byte, 256)
	n, _ := t.port.Read(buf)
	if n > 0 {
		t.pend = buf[:n]
	}
}

// ReadByte returns the next buffered byte, if any is available
// without blocking beyond the port's configured read timeout.
func (t *Transport) ReadByte() (byte, bool) {
	t.fill()
	if len(t.pend) == 0 {
		return 0, false
	}
	b := t.pend[0]
	t.pend = t.pend[1:]
	return b, true
}

// ReadBytes copies as many buffered bytes into buf as are available.
func (t *Transport) ReadBytes(buf []byte) int {
	t.fill()
	n := copy(buf, t.pend)
	t.pend = t.pend[n:]
	return n
}

// WriteByte writes a single byte to the port.
func (t *Transport) WriteByte(b byte) error {
	_, err := t.port.Write([]byte{b})
	return err
}

// WriteBytes writes data to the port.
func (t *Transport) WriteBytes(data []byte) error {
	_, err := t.port.Write(data)
	return err
}

// ClearReadBuf discards the read-ahead buffer and calls the port's
// Flush. With a NativePort, Flush is a no-op, so input still queued
// in the OS driver is not discarded.
func (t *Transport) ClearReadBuf() {
	t.pend = t.pend[:0]
	t.port.Flush()
}
