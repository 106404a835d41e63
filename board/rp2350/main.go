//go:build rp2350

// Command rp2350 is the Dynamixel 2.0 slave firmware main for RP2350
// boards: UART1 transport, hardware clock, protocol handler tick loop.
package main

import (
	"machine"
	"time"

	"dynaslave/internal/telemetry"
	"dynaslave/protocol"
)

const (
	uartBaud = 57600
	deviceID = 1
)

var (
	handler    *protocol.Handler
	tickErrors uint32
)

func main() {
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	store := protocol.NewStore()
	store.SetID(deviceID)
	store.SetModelNumber(0x0406)
	store.SetFirmwareVersion(0x01)

	uart, uartErr := newUARTTransport(machine.UART1, uartBaud, machine.GPIO36, machine.GPIO37)
	if uartErr != nil {
		return
	}

	handler = protocol.NewHandler(uart, hwClock{}, store, uartBaud)
	telemetry.SetWriter(func(string) {})

	for {
		func() {
			defer func() {
				if r := recover(); r != nil {
					tickErrors++
				}
			}()
			if err := handler.Tick(); err != nil {
				tickErrors++
			}
		}()

		time.Sleep(10 * time.Microsecond)
	}
}
