package protocol

import "time"

// Transport is the byte-level UART-like collaborator the handler
// drives. Implementations do no framing of their own; they only move
// bytes. Reads are non-blocking: ReadByte/ReadBytes return immediately
// with whatever is available, including nothing.
type Transport interface {
	// ReadByte returns the next received byte and true, or false if
	// none is currently available.
	ReadByte() (byte, bool)

	// ReadBytes reads up to len(buf) bytes into buf, returning the
	// count actually read (which may be zero).
	ReadBytes(buf []byte) int

	// WriteByte writes a single byte.
	WriteByte(b byte) error

	// WriteBytes writes every byte of data.
	WriteBytes(data []byte) error

	// ClearReadBuf discards any buffered, unread input.
	ClearReadBuf()
}

// Clock supplies monotonic elapsed time for receive timeouts and the
// return-delay gate. Only relative measurements matter; the origin is
// implementation-defined.
type Clock interface {
	Now() time.Duration
}
