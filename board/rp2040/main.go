//go:build rp2040

// Command rp2040 is the Dynamixel 2.0 slave firmware main for the
// Raspberry Pi Pico (RP2040): a UART transport, a hardware clock, and
// the protocol handler's tick loop, wrapped in panic recovery the way
// embedded mains must be.
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
	handler *protocol.Handler
	power   *powerMonitor
	accel   *accelTelemetry

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

	uart, uartErr := newUARTTransport(machine.UART0, uartBaud, machine.UART0_TX_PIN, machine.UART0_RX_PIN)
	if uartErr != nil {
		return
	}

	handler = protocol.NewHandler(uart, hwClock{}, store, uartBaud)

	i2c := machine.I2C0
	i2c.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
	power = newPowerMonitor(i2c)
	accel = newAccelTelemetry(i2c)

	telemetry.SetWriter(func(string) {}) // no debug sink wired on this board

	for {
		func() {
			defer func() {
				if r := recover(); r != nil {
					tickErrors++
				}
			}()

			now := time.Now()
			power.poll(store, now)
			accel.poll(store, now)

			if err := handler.Tick(); err != nil {
				tickErrors++
			}
		}()

		time.Sleep(10 * time.Microsecond)
	}
}
