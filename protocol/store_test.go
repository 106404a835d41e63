package protocol

import "testing"

func TestStoreFieldRoundTrip(t *testing.T) {
	s := NewStore()

	s.SetModelNumber(0x0406)
	if got := s.ModelNumber(); got != 0x0406 {
		t.Errorf("ModelNumber() = 0x%04X, want 0x0406", got)
	}

	s.SetGoalPosition(512)
	if got := s.GoalPosition(); got != 512 {
		t.Errorf("GoalPosition() = %d, want 512", got)
	}

	s.SetGoalPosition(-10)
	if got := s.GoalPosition(); got != -10 {
		t.Errorf("GoalPosition() = %d, want -10 (signed round trip)", got)
	}
}

func TestStoreWriteBytesClipsAtEnd(t *testing.T) {
	s := NewStore()
	oversize := make([]byte, 20)
	for i := range oversize {
		oversize[i] = byte(i + 1)
	}

	// Offset StoreSize-10 leaves only 10 valid bytes; the rest must be
	// silently dropped rather than panicking or corrupting memory.
	s.WriteBytes(StoreSize-10, oversize)

	dst := make([]byte, 10)
	s.ReadBytes(StoreSize-10, 10, dst)
	for i, b := range dst {
		if b != byte(i+1) {
			t.Errorf("byte %d = %d, want %d", i, b, i+1)
		}
	}
}

func TestIndirectAddress20NotAliasedToIndirectAddress1(t *testing.T) {
	s := NewStore()
	s.SetIndirectAddress(1, 0x1111)
	s.SetIndirectAddress(20, 0x2222)

	if got := s.IndirectAddress(20); got != 0x2222 {
		t.Errorf("IndirectAddress(20) = 0x%04X, want 0x2222 (must not alias IndirectAddress1)", got)
	}
	if got := s.IndirectAddress(1); got != 0x1111 {
		t.Errorf("IndirectAddress(1) = 0x%04X, want 0x1111", got)
	}

	offset, _ := Offset(FieldIndirectAddress20)
	if offset != 206 {
		t.Errorf("FieldIndirectAddress20 offset = %d, want 206", offset)
	}
}

func TestIndirectDataRoundTrip(t *testing.T) {
	s := NewStore()
	for n := 1; n <= 20; n++ {
		s.SetIndirectData(n, byte(n))
	}
	for n := 1; n <= 20; n++ {
		if got := s.IndirectData(n); got != byte(n) {
			t.Errorf("IndirectData(%d) = %d, want %d", n, got, n)
		}
	}
}
