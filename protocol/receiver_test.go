package protocol

import (
	"bytes"
	"testing"
)

func TestReceiverEmptyYieldsWaiting(t *testing.T) {
	r := NewReceiver()
	transport := newMockTransport()
	clock := newMockClock()

	result, frame := r.Receive(transport, clock, 0)
	if result != RxWaiting {
		t.Fatalf("result = %v, want RxWaiting", result)
	}
	if frame != nil {
		t.Fatalf("expected no frame on RxWaiting, got % X", frame)
	}
	if r.State() != RecvWaiting {
		t.Fatalf("receiver state = %v, want RecvWaiting", r.State())
	}
}

func TestReceiverPartialThenComplete(t *testing.T) {
	r := NewReceiver()
	transport := newMockTransport()
	clock := newMockClock()

	transport.feed([]byte{0xFF, 0xFF, 0xFD})
	result, _ := r.Receive(transport, clock, 0)
	if result != RxWaiting {
		t.Fatalf("result after partial header = %v, want RxWaiting", result)
	}

	transport.feed([]byte{0x00, 0x01, 0x03, 0x00, 0x01, 0x19, 0x4E})
	result, frame := r.Receive(transport, clock, 0)
	if result != Success {
		t.Fatalf("result after remainder = %v, want Success", result)
	}
	want := []byte{0xFF, 0xFF, 0xFD, 0x00, 0x01, 0x03, 0x00, 0x01, 0x19, 0x4E}
	if !bytes.Equal(frame, want) {
		t.Fatalf("frame = % X, want % X", frame, want)
	}
	if r.State() != RecvInit {
		t.Fatalf("receiver state after success = %v, want RecvInit", r.State())
	}
}

func TestReceiverResyncsPastGarbage(t *testing.T) {
	r := NewReceiver()
	transport := newMockTransport()
	clock := newMockClock()

	garbage := []byte{0x11, 0x22, 0x33}
	frame := []byte{0xFF, 0xFF, 0xFD, 0x00, 0x01, 0x03, 0x00, 0x01, 0x19, 0x4E}
	transport.feed(append(append([]byte(nil), garbage...), frame...))

	result, got := r.Receive(transport, clock, 0)
	if result != Success {
		t.Fatalf("result = %v, want Success", result)
	}
	if !bytes.Equal(got, frame) {
		t.Fatalf("frame = % X, want % X", got, frame)
	}
}

func TestReceiverCRCMismatch(t *testing.T) {
	r := NewReceiver()
	transport := newMockTransport()
	clock := newMockClock()

	// Valid ping frame with the final CRC byte corrupted.
	transport.feed([]byte{0xFF, 0xFF, 0xFD, 0x00, 0x01, 0x03, 0x00, 0x01, 0x19, 0x00})

	result, frame := r.Receive(transport, clock, 0)
	if result != RxCRCError {
		t.Fatalf("result = %v, want RxCRCError", result)
	}
	if frame != nil {
		t.Fatalf("expected no frame on RxCRCError, got % X", frame)
	}
}

func TestReceiverRejectsOversizeLength(t *testing.T) {
	r := NewReceiver()
	transport := newMockTransport()
	clock := newMockClock()

	bad := []byte{0xFF, 0xFF, 0xFD, 0x00, 0x01, 0xFF, 0x7F, 0x01, 0x00, 0x00}
	good := []byte{0xFF, 0xFF, 0xFD, 0x00, 0x01, 0x03, 0x00, 0x01, 0x19, 0x4E}
	transport.feed(append(append([]byte(nil), bad...), good...))

	result, frame := r.Receive(transport, clock, 0)
	if result != Success {
		t.Fatalf("result = %v, want Success (after discarding the oversize-length frame)", result)
	}
	if !bytes.Equal(frame, good) {
		t.Fatalf("frame = % X, want % X", frame, good)
	}
}
