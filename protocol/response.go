package protocol

// buildStatusFrame assembles FF FF FD 00 | id | LEN | STATUS | err=0 |
// payload | CRC, with LEN computed from len(payload).
func buildStatusFrame(id uint8, payload []byte) []byte {
	length := uint16(1 + 1 + len(payload) + 2) // instruction + err + payload + crc

	msg := make([]byte, 0, 7+int(length))
	header := FrameHeader()
	msg = append(msg, header[:]...)
	msg = append(msg, id, byte(length), byte(length>>8), InstStatus, byte(ErrNone))
	msg = append(msg, payload...)

	crc := CRC16(msg)
	msg = append(msg, byte(crc), byte(crc>>8))
	return msg
}

// PingResponse builds a PING status frame: payload model_lo model_hi firmware.
func PingResponse(id uint8, modelNumber uint16, firmwareVersion uint8) []byte {
	payload := []byte{byte(modelNumber), byte(modelNumber >> 8), firmwareVersion}
	return buildStatusFrame(id, payload)
}

// ReadResponse builds a READ status frame whose payload is data
// copied straight from the store.
func ReadResponse(id uint8, data []byte) []byte {
	return buildStatusFrame(id, data)
}

// WriteResponse builds a WRITE acknowledgement status frame (no payload).
func WriteResponse(id uint8) []byte {
	return buildStatusFrame(id, nil)
}
