package protocol

import "dynaslave/internal/telemetry"

// Store is the control table: a fixed 231-byte array of device state,
// addressed either as raw bytes or through typed field accessors.
// Every multi-byte field is little-endian; signed fields are two's
// complement.
type Store struct {
	bytes [StoreSize]byte
}

// NewStore returns a zero-initialized control table.
func NewStore() *Store {
	return &Store{}
}

// Snapshot copies out the entire table.
func (s *Store) Snapshot() [StoreSize]byte {
	return s.bytes
}

// ReadBytes copies width bytes starting at offset into dst, clipping
// silently at the end of the table.
func (s *Store) ReadBytes(offset, width int, dst []byte) int {
	if offset < 0 || offset >= StoreSize {
		return 0
	}
	end := offset + width
	if end > StoreSize {
		end = StoreSize
	}
	return copy(dst, s.bytes[offset:end])
}

// WriteBytes copies src into the table starting at offset. Any bytes
// that would land past the last addressable byte are silently
// dropped; this tolerates masters that write slightly oversize
// buffers.
func (s *Store) WriteBytes(offset int, src []byte) {
	if offset < 0 || offset >= StoreSize {
		return
	}
	n := copy(s.bytes[offset:], src)
	telemetry.Record(telemetry.EvtStoreWrite, s.ID(), 0, uint32(offset), uint32(n))
}

// Modify applies a read-then-write transaction. Since the handler
// runs single-threaded within one tick, this is atomic with respect
// to any other store access.
func (s *Store) Modify(f func(s *Store)) {
	f(s)
}

// ReadField reads a field as its typed, little-endian value,
// returned widened to int64 (the caller narrows as needed).
func ReadField(s *Store, field Field) int64 {
	offset, width := Offset(field)
	kind := schema[field].kind
	raw := uint32(0)
	for i := 0; i < width; i++ {
		raw |= uint32(s.bytes[offset+i]) << (8 * i)
	}
	switch kind {
	case KindU8:
		return int64(uint8(raw))
	case KindU16:
		return int64(uint16(raw))
	case KindU32:
		return int64(raw)
	case KindI16:
		return int64(int16(uint16(raw)))
	case KindI32:
		return int64(int32(raw))
	default:
		return 0
	}
}

// WriteField serializes value little-endian into a field's bytes.
func WriteField(s *Store, field Field, value int64) {
	offset, width := Offset(field)
	raw := uint32(value)
	for i := 0; i < width; i++ {
		s.bytes[offset+i] = byte(raw >> (8 * i))
	}
}

// The following named accessors cover the fields this protocol core
// itself reads or writes directly (identity, timing, telemetry,
// motion goal/feedback, and the indirect-data demonstration region).
// Fields not named here are still reachable through ReadField /
// WriteField by any embedder that needs them.

func (s *Store) ModelNumber() uint16     { return uint16(ReadField(s, FieldModelNumber)) }
func (s *Store) SetModelNumber(v uint16) { WriteField(s, FieldModelNumber, int64(v)) }

func (s *Store) FirmwareVersion() uint8     { return uint8(ReadField(s, FieldFirmwareVersion)) }
func (s *Store) SetFirmwareVersion(v uint8) { WriteField(s, FieldFirmwareVersion, int64(v)) }

func (s *Store) ID() uint8     { return uint8(ReadField(s, FieldID)) }
func (s *Store) SetID(v uint8) { WriteField(s, FieldID, int64(v)) }

func (s *Store) BaudRate() uint8     { return uint8(ReadField(s, FieldBaudRate)) }
func (s *Store) SetBaudRate(v uint8) { WriteField(s, FieldBaudRate, int64(v)) }

func (s *Store) ReturnDelayTime() uint8     { return uint8(ReadField(s, FieldReturnDelayTime)) }
func (s *Store) SetReturnDelayTime(v uint8) { WriteField(s, FieldReturnDelayTime, int64(v)) }

func (s *Store) TorqueEnable() uint8     { return uint8(ReadField(s, FieldTorqueEnable)) }
func (s *Store) SetTorqueEnable(v uint8) { WriteField(s, FieldTorqueEnable, int64(v)) }

func (s *Store) GoalPosition() int32     { return int32(ReadField(s, FieldGoalPosition)) }
func (s *Store) SetGoalPosition(v int32) { WriteField(s, FieldGoalPosition, int64(v)) }

func (s *Store) PresentPosition() int32     { return int32(ReadField(s, FieldPresentPosition)) }
func (s *Store) SetPresentPosition(v int32) { WriteField(s, FieldPresentPosition, int64(v)) }

func (s *Store) PresentInputVoltage() uint16 {
	return uint16(ReadField(s, FieldPresentInputVoltage))
}
func (s *Store) SetPresentInputVoltage(v uint16) {
	WriteField(s, FieldPresentInputVoltage, int64(v))
}

func (s *Store) PresentCurrent() int16     { return int16(ReadField(s, FieldPresentCurrent)) }
func (s *Store) SetPresentCurrent(v int16) { WriteField(s, FieldPresentCurrent, int64(v)) }

func (s *Store) PresentTemperature() uint8     { return uint8(ReadField(s, FieldPresentTemperature)) }
func (s *Store) SetPresentTemperature(v uint8) { WriteField(s, FieldPresentTemperature, int64(v)) }

// IndirectData returns the value of IndirectData<n> (1-based, n in 1..20).
func (s *Store) IndirectData(n int) uint8 {
	return uint8(ReadField(s, FieldIndirectData1+Field(n-1)))
}

// SetIndirectData sets the value of IndirectData<n> (1-based, n in 1..20).
func (s *Store) SetIndirectData(n int, v uint8) {
	WriteField(s, FieldIndirectData1+Field(n-1), int64(v))
}

// IndirectAddress returns the byte offset indirectly addressed by
// IndirectAddress<n> (1-based, n in 1..20).
func (s *Store) IndirectAddress(n int) uint16 {
	return uint16(ReadField(s, FieldIndirectAddress1+Field(n-1)))
}

// SetIndirectAddress sets IndirectAddress<n> (1-based, n in 1..20).
func (s *Store) SetIndirectAddress(n int, addr uint16) {
	WriteField(s, FieldIndirectAddress1+Field(n-1), int64(addr))
}
