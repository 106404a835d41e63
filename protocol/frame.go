package protocol

// AddStuffing escapes every FF FF FD triple found in the parameter
// region of frame with a trailing FD, and patches the length field to
// match. frame must already hold its final, un-stuffed length
// (header, ID, length, instruction, params, CRC) as declared by its
// own length field. The returned slice may be the same backing array
// grown, or the input unchanged if no stuffing was needed.
func AddStuffing(frame []byte) []byte {
	lengthIn := int(frame[PosLengthL]) | int(frame[PosLengthH])<<8
	lengthOut := lengthIn

	if lengthIn < 8 {
		// instruction, addr_l, addr_h, crc_l, crc_h leaves no room for FF FF FD
		return frame
	}

	lengthBeforeCRC := lengthIn - 2
	for i := 3; i < lengthBeforeCRC; i++ {
		check := i + PosInstruction - 2
		if frame[check] == 0xFF && frame[check+1] == 0xFF && frame[check+2] == 0xFD {
			lengthOut++
		}
	}

	if lengthIn == lengthOut {
		return frame
	}

	grown := make([]byte, len(frame)+lengthOut-lengthIn)
	copy(grown, frame)

	outIndex := lengthOut + 4 // last index before CRC, in the grown buffer
	inIndex := lengthIn + 4   // last index before CRC, in the original data
	for outIndex != inIndex {
		if grown[inIndex] == 0xFD && grown[inIndex-1] == 0xFF && grown[inIndex-2] == 0xFF {
			grown[outIndex] = 0xFD // inserted stuffing byte
			outIndex--
			if outIndex != inIndex {
				grown[outIndex] = grown[inIndex] // original FD
				outIndex--
				inIndex--
				grown[outIndex] = grown[inIndex] // FF
				outIndex--
				inIndex--
				grown[outIndex] = grown[inIndex] // FF
				outIndex--
				inIndex--
			}
		} else {
			grown[outIndex] = grown[inIndex]
			outIndex--
			inIndex--
		}
	}

	grown[PosLengthL] = byte(lengthOut)
	grown[PosLengthH] = byte(lengthOut >> 8)
	return grown
}

// RemoveStuffing reverses AddStuffing: every FF FF FD FD run in the
// parameter region collapses to FF FF FD, and the length field is
// patched down to match. frame is shrunk and truncated in place.
func RemoveStuffing(frame []byte) []byte {
	lengthIn := int(frame[PosLengthL]) | int(frame[PosLengthH])<<8
	lengthOut := lengthIn

	index := PosInstruction
	i := 0
	for i < lengthIn-2 {
		if frame[i+PosInstruction] == 0xFD && frame[i+PosInstruction+1] == 0xFD &&
			frame[i+PosInstruction-1] == 0xFF && frame[i+PosInstruction-2] == 0xFF {
			lengthOut--
			i++
		}
		frame[index] = frame[i+PosInstruction]
		index++
		i++
	}

	frame[index] = frame[PosInstruction+lengthIn-2]
	index++
	frame[index] = frame[PosInstruction+lengthIn-1]
	index++

	frame[PosLengthL] = byte(lengthOut)
	frame[PosLengthH] = byte(lengthOut >> 8)
	return frame[:index]
}
