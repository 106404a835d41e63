package protocol

import (
	"time"

	"dynaslave/internal/telemetry"
)

// ParsingState is the protocol handler's own state, separate from the
// packet receiver's ReceivingState.
type ParsingState uint8

const (
	ParseInit ParsingState = iota
	ParseWaitForCommandPacket
	ParseWaitForOthersResponsePacket
	ParseWaitReturnDelayTime
)

// HandlerError wraps a non-routine Result surfaced by Tick.
type HandlerError struct {
	Result Result
}

func (e *HandlerError) Error() string {
	return "protocol: " + e.Result.String()
}

// Handler is the protocol handler state machine (component I): it
// owns a Receiver, a Store, and the bus-sharing coordinator that lets
// a broadcast round's lower-ID peers transmit first.
type Handler struct {
	transport Transport
	clock     Clock
	store     *Store
	baudRate  uint32

	receiver     *Receiver
	returnPacket []byte

	parsingState        ParsingState
	lastReceivedCommand byte
	lastReceivedID       uint8

	commandReceivedAt time.Duration

	peerAttemptsRemaining int
	peerDeadline          time.Duration
	peerDeadlineSet       bool

	returnDelayDeadline time.Duration
	returnDelaySet      bool
}

// NewHandler constructs a Handler bound to transport/clock/store and
// the bus baud rate used to size peer-wait timeouts.
func NewHandler(transport Transport, clock Clock, store *Store, baudRate uint32) *Handler {
	return &Handler{
		transport:      transport,
		clock:          clock,
		store:          store,
		baudRate:       baudRate,
		receiver:       NewReceiver(),
		parsingState:   ParseInit,
		lastReceivedID: 1,
	}
}

// ParsingState reports the handler's current top-level state.
func (h *Handler) ParsingState() ParsingState {
	return h.parsingState
}

// ClearPort discards any buffered, unread transport input.
func (h *Handler) ClearPort() {
	h.transport.ClearReadBuf()
}

// Tick advances the state machine by exactly one non-blocking step:
// at most one receive, at most one dispatch, at most one transmit.
// It must be called repeatedly by the host loop.
func (h *Handler) Tick() error {
	switch h.parsingState {
	case ParseInit, ParseWaitForCommandPacket:
		return h.tickReceiveCommand()
	case ParseWaitForOthersResponsePacket:
		return h.tickWaitForPeer()
	case ParseWaitReturnDelayTime:
		return h.tickReturnDelay()
	}
	return nil
}

func (h *Handler) tickReceiveCommand() error {
	// The master is never the source of our receive timeouts.
	result, frame := h.receiver.Receive(h.transport, h.clock, 0)

	switch result {
	case RxWaiting:
		h.parsingState = ParseWaitForCommandPacket
		return nil
	case Success:
		h.commandReceivedAt = h.clock.Now()
		id := frame[PosID]
		telemetry.Record(telemetry.EvtFrameReceived, id, uint32(h.commandReceivedAt/time.Microsecond), uint32(frame[PosInstruction]), uint32(len(frame)))
		if id != BroadcastID && id != h.store.ID() {
			h.parsingState = ParseInit
			return nil
		}
		h.dispatch(frame)
		return nil
	default:
		h.parsingState = ParseInit
		return &HandlerError{Result: result}
	}
}

func (h *Handler) dispatch(frame []byte) {
	instruction := frame[PosInstruction]
	h.lastReceivedCommand = instruction

	switch instruction {
	case InstPing:
		h.returnPacket = PingResponse(h.store.ID(), h.store.ModelNumber(), h.store.FirmwareVersion())
		h.beginPeerWait()

	case InstRead:
		address := int(frame[PosParameter0]) | int(frame[PosParameter0+1])<<8
		length := int(frame[PosParameter0+2]) | int(frame[PosParameter0+3])<<8
		data := make([]byte, length)
		h.store.ReadBytes(address, length, data)
		h.returnPacket = ReadResponse(h.store.ID(), data)
		h.parsingState = ParseWaitReturnDelayTime
		h.returnDelaySet = false

	case InstWrite:
		address := int(frame[PosParameter0]) | int(frame[PosParameter0+1])<<8
		declaredLen := int(frame[PosLengthL]) | int(frame[PosLengthH])<<8
		dataLen := declaredLen - 5 // instruction + addr(2) + crc(2)
		data := frame[PosParameter0+2 : PosParameter0+2+dataLen]
		h.store.WriteBytes(address, data)
		h.returnPacket = WriteResponse(h.store.ID())
		h.parsingState = ParseWaitReturnDelayTime
		h.returnDelaySet = false

	case InstSyncRead:
		address := int(frame[PosParameter0]) | int(frame[PosParameter0+1])<<8
		length := int(frame[PosParameter0+2]) | int(frame[PosParameter0+3])<<8
		declaredLen := int(frame[PosLengthL]) | int(frame[PosLengthH])<<8
		idCount := declaredLen - 7 // instruction + addr(2) + len(2) + crc(2)
		selfID := h.store.ID()
		matched := false
		for i := 0; i < idCount; i++ {
			if frame[PosParameter0+4+i] == selfID {
				matched = true
				break
			}
		}
		if !matched {
			h.parsingState = ParseInit
			return
		}
		data := make([]byte, length)
		h.store.ReadBytes(address, length, data)
		h.returnPacket = ReadResponse(selfID, data)
		h.beginPeerWait()

	case InstSyncWrite:
		address := int(frame[PosParameter0]) | int(frame[PosParameter0+1])<<8
		length := int(frame[PosParameter0+2]) | int(frame[PosParameter0+3])<<8
		declaredLen := int(frame[PosLengthL]) | int(frame[PosLengthH])<<8
		tupleCount := (declaredLen - 7) / (length + 1)
		selfID := h.store.ID()
		for i := 0; i < tupleCount; i++ {
			idPos := PosParameter0 + 4 + i*(length+1)
			if frame[idPos] == selfID {
				h.store.WriteBytes(address, frame[idPos+1:idPos+1+length])
			}
		}
		h.parsingState = ParseInit

	default:
		h.parsingState = ParseInit
	}
}

// beginPeerWait enters the bus-sharing coordinator: broadcast PING
// and SYNC_READ replies must wait for every lower-ID peer to speak
// first.
func (h *Handler) beginPeerWait() {
	selfID := h.store.ID()
	remaining := int(selfID) - int(h.lastReceivedID)
	if remaining < 0 {
		remaining = 0
	}
	h.peerAttemptsRemaining = remaining
	h.peerDeadlineSet = false
	h.parsingState = ParseWaitForOthersResponsePacket
}

func (h *Handler) tickWaitForPeer() error {
	if h.peerAttemptsRemaining <= 0 {
		h.parsingState = ParseWaitReturnDelayTime
		h.returnDelaySet = false
		return h.tickReturnDelay()
	}

	if !h.peerDeadlineSet {
		waitUS := uint32(len(h.returnPacket))*8*1000000/h.baudRate + 500
		h.peerDeadline = h.clock.Now() + time.Duration(waitUS)*time.Microsecond
		h.peerDeadlineSet = true
	}

	selfID := h.store.ID()
	result, frame := h.receiver.Receive(h.transport, h.clock, h.peerDeadline)

	switch result {
	case RxWaiting:
		return nil
	case Success:
		h.lastReceivedID = frame[PosID]
		h.peerAttemptsRemaining--
		h.peerDeadlineSet = false
		if h.lastReceivedID == selfID-1 || h.peerAttemptsRemaining <= 0 {
			h.parsingState = ParseWaitReturnDelayTime
			h.returnDelaySet = false
		}
		return nil
	case RxTimeout:
		telemetry.Record(telemetry.EvtPeerTimeout, selfID, uint32(h.clock.Now()/time.Microsecond), uint32(h.peerAttemptsRemaining), 0)
		h.peerAttemptsRemaining--
		h.peerDeadlineSet = false
		if h.peerAttemptsRemaining <= 0 {
			h.parsingState = ParseWaitReturnDelayTime
			h.returnDelaySet = false
			return h.tickReturnDelay()
		}
		return nil
	default:
		h.parsingState = ParseInit
		h.peerDeadlineSet = false
		return &HandlerError{Result: result}
	}
}

func (h *Handler) tickReturnDelay() error {
	delay := h.store.ReturnDelayTime()
	if delay > 0 {
		if !h.returnDelaySet {
			h.returnDelayDeadline = h.commandReceivedAt + time.Duration(uint32(delay)*2)*time.Microsecond
			h.returnDelaySet = true
		}
		if h.clock.Now() < h.returnDelayDeadline {
			return nil
		}
	}

	h.transport.WriteBytes(h.returnPacket)
	telemetry.Record(telemetry.EvtFrameSent, h.store.ID(), uint32(h.clock.Now()/time.Microsecond), uint32(len(h.returnPacket)), 0)

	h.parsingState = ParseInit
	h.lastReceivedID = 1
	h.returnDelaySet = false
	return nil
}
