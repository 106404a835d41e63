//go:build rp2040

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/adxl345"

	"dynaslave/protocol"
)

const accelPollEvery = 10 * time.Millisecond

// accelTelemetry polls an ADXL345 and publishes its three raw axes
// into IndirectData1..6 (X/Y/Z as big-endian int16 pairs), exercising
// the control table's indirect-addressing region the way a real
// accessory sensor would.
type accelTelemetry struct {
	sensor   adxl345.Device
	lastPoll time.Time
}

func newAccelTelemetry(bus *machine.I2C) *accelTelemetry {
	sensor := adxl345.New(bus)
	sensor.Configure()
	sensor.SetRate(adxl345.Rate_100Hz)
	sensor.SetRange(adxl345.Range_16G)
	return &accelTelemetry{sensor: sensor}
}

func (a *accelTelemetry) poll(store *protocol.Store, now time.Time) {
	if now.Sub(a.lastPoll) < accelPollEvery {
		return
	}
	a.lastPoll = now

	x, y, z := a.sensor.ReadRawAcceleration()

	store.SetIndirectData(1, byte(x>>8))
	store.SetIndirectData(2, byte(x))
	store.SetIndirectData(3, byte(y>>8))
	store.SetIndirectData(4, byte(y))
	store.SetIndirectData(5, byte(z>>8))
	store.SetIndirectData(6, byte(z))
}
