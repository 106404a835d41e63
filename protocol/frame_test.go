package protocol

import (
	"bytes"
	"testing"
)

func TestStuffingRoundTrip(t *testing.T) {
	original := []byte{
		0xFF, 0xFF, 0xFD, 0x00, 0x01, 0x0B, 0x00, 0x03,
		0xE0, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFD, 0x01, 0x00, 0x00,
	}
	wantStuffed := []byte{
		0xFF, 0xFF, 0xFD, 0x00, 0x01, 0x0C, 0x00, 0x03,
		0xE0, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFD, 0xFD, 0x01, 0x00, 0x00,
	}

	stuffed := AddStuffing(append([]byte(nil), original...))
	if !bytes.Equal(stuffed, wantStuffed) {
		t.Fatalf("AddStuffing = % X, want % X", stuffed, wantStuffed)
	}

	restored := RemoveStuffing(append([]byte(nil), stuffed...))
	if !bytes.Equal(restored, original) {
		t.Fatalf("RemoveStuffing(AddStuffing(p)) = % X, want % X", restored, original)
	}
}

func TestAddStuffingNoOpBelowMinLength(t *testing.T) {
	frame := []byte{0xFF, 0xFF, 0xFD, 0x00, 0x01, 0x03, 0x00, 0x01}
	got := AddStuffing(append([]byte(nil), frame...))
	if !bytes.Equal(got, frame) {
		t.Fatalf("AddStuffing changed a frame with length < 8: got % X", got)
	}
}

func TestAddStuffingNoMatches(t *testing.T) {
	frame := []byte{
		0xFF, 0xFF, 0xFD, 0x00, 0x01, 0x09, 0x00, 0x03,
		0x74, 0x00, 0x00, 0x02, 0x00, 0x00, 0xCA, 0x89,
	}
	got := AddStuffing(append([]byte(nil), frame...))
	if !bytes.Equal(got, frame) {
		t.Fatalf("AddStuffing altered a frame with no FF FF FD run: got % X", got)
	}
}
