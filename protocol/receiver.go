package protocol

import (
	"time"

	"dynaslave/internal/telemetry"
)

// ReceivingState is the packet receiver's own state, distinct from
// the protocol handler's parsing state.
type ReceivingState uint8

const (
	RecvInit ReceivingState = iota
	RecvWaiting
)

// Receiver incrementally reassembles one Dynamixel frame at a time
// out of arbitrarily-chunked transport input. It never blocks: each
// call to Receive returns quickly, yielding Success with a complete
// destuffed frame, a RxWaiting/RxTimeout status to be retried next
// tick, or a discard-and-resync outcome.
type Receiver struct {
	state      ReceivingState
	msg        []byte
	waitLength int
}

// NewReceiver returns a Receiver ready to assemble its first frame.
func NewReceiver() *Receiver {
	return &Receiver{state: RecvInit}
}

// State reports the receiver's current state.
func (r *Receiver) State() ReceivingState {
	return r.state
}

// Receive pulls bytes from t and advances the assembly state machine.
// timeout is the point in the clock's timeline past which an
// incomplete frame becomes RxTimeout rather than RxWaiting; pass 0 to
// never time out (the usual case when waiting on the master).
func (r *Receiver) Receive(t Transport, clock Clock, timeout time.Duration) (Result, []byte) {
	if r.state == RecvInit {
		r.waitLength = MinFrameLen
		r.msg = r.msg[:0]
	}

	var result Result

	for {
		need := r.waitLength - len(r.msg)
		if need > 0 {
			buf := make([]byte, need)
			n := t.ReadBytes(buf)
			r.msg = append(r.msg, buf[:n]...)
		}

		if len(r.msg) >= r.waitLength {
			idx := 0
			for idx < len(r.msg)-3 {
				if r.msg[idx+PosHeader0] == 0xFF && r.msg[idx+PosHeader1] == 0xFF &&
					r.msg[idx+PosHeader2] == 0xFD && r.msg[idx+PosReserved] == 0x00 {
					break
				}
				idx++
			}

			if idx == 0 {
				declaredLen := int(r.msg[PosLengthL]) | int(r.msg[PosLengthH])<<8
				if r.msg[PosReserved] != 0x00 ||
					(r.msg[PosID] > MaxID && r.msg[PosID] != BroadcastID) ||
					declaredLen > MaxPacketLen {
					// discard the first byte and resync
					copy(r.msg, r.msg[1:])
					r.msg = r.msg[:len(r.msg)-1]
					continue
				}

				trueLen := declaredLen + PosLengthH + 1
				if r.waitLength != trueLen {
					r.waitLength = trueLen
					continue
				}

				if len(r.msg) < r.waitLength {
					if timeout != 0 && clock.Now() > timeout {
						result = RxTimeout
					} else {
						result = RxWaiting
					}
					break
				}

				crc := uint16(r.msg[len(r.msg)-2]) | uint16(r.msg[len(r.msg)-1])<<8
				if CRC16(r.msg[:len(r.msg)-2]) == crc {
					result = Success
				} else {
					result = RxCRCError
					telemetry.Record(telemetry.EvtCRCError, r.msg[PosID], uint32(clock.Now()/time.Microsecond), uint32(crc), 0)
				}
				break
			}

			// header found mid-buffer: drop the garbage before it
			copy(r.msg, r.msg[idx:])
			r.msg = r.msg[:len(r.msg)-idx]
			continue
		}

		if timeout != 0 && clock.Now() > timeout {
			result = RxTimeout
		} else {
			result = RxWaiting
		}
		break
	}

	if result == RxWaiting {
		r.state = RecvWaiting
	} else {
		r.state = RecvInit
	}

	if result == Success {
		frame := RemoveStuffing(r.msg)
		out := append([]byte(nil), frame...)
		return Success, out
	}
	return result, nil
}
