//go:build rp2040

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ina219"

	"dynaslave/protocol"
)

const (
	powerI2CAddr   = 0x40 // ina219 default address
	powerPollEvery = 50 * time.Millisecond
)

// powerMonitor polls an INA219 and mirrors its readings into the
// control table's PresentInputVoltage/PresentCurrent fields.
type powerMonitor struct {
	sensor   ina219.Device
	lastPoll time.Time
}

func newPowerMonitor(bus *machine.I2C) *powerMonitor {
	sensor := ina219.New(bus, powerI2CAddr)
	sensor.Configure(ina219.Config{})
	return &powerMonitor{sensor: sensor}
}

// poll updates the store at most once per powerPollEvery, since the
// INA219 conversion itself is far slower than the protocol tick rate.
func (m *powerMonitor) poll(store *protocol.Store, now time.Time) {
	if now.Sub(m.lastPoll) < powerPollEvery {
		return
	}
	m.lastPoll = now

	millivolts := m.sensor.BusVoltage_mV()
	milliamps := m.sensor.Current_mA()

	store.SetPresentInputVoltage(uint16(millivolts / 100)) // control table unit: 0.1V
	store.SetPresentCurrent(int16(milliamps))
}
