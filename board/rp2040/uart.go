//go:build rp2040

package main

import "machine"

// uartTransport implements protocol.Transport over a machine.UART,
// the half-duplex line a Dynamixel bus runs on.
type uartTransport struct {
	uart *machine.UART
}

func newUARTTransport(uart *machine.UART, baud uint32, tx, rx machine.Pin) (*uartTransport, error) {
	err := uart.Configure(machine.UARTConfig{
		BaudRate: baud,
		TX:       tx,
		RX:       rx,
	})
	if err != nil {
		return nil, err
	}
	return &uartTransport{uart: uart}, nil
}

func (t *uartTransport) ReadByte() (byte, bool) {
	if t.uart.Buffered() == 0 {
		return 0, false
	}
	b, err := t.uart.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

func (t *uartTransport) ReadBytes(buf []byte) int {
	n := 0
	for n < len(buf) && t.uart.Buffered() > 0 {
		b, err := t.uart.ReadByte()
		if err != nil {
			break
		}
		buf[n] = b
		n++
	}
	return n
}

func (t *uartTransport) WriteByte(b byte) error {
	_, err := t.uart.Write([]byte{b})
	return err
}

func (t *uartTransport) WriteBytes(data []byte) error {
	_, err := t.uart.Write(data)
	return err
}

func (t *uartTransport) ClearReadBuf() {
	for t.uart.Buffered() > 0 {
		t.uart.ReadByte()
	}
}
