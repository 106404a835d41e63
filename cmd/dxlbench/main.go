// Command dxlbench drives a single in-process protocol.Handler against
// a real serial port, for bench-testing a Dynamixel slave stack
// without dedicated hardware. It is not a protocol master: it just
// feeds a Handler from the port and, with -verbose, logs every error
// a tick returns.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"dynaslave/host/clock"
	hserial "dynaslave/host/serial"
	"dynaslave/internal/telemetry"
	"dynaslave/protocol"
)

var (
	device   = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud     = flag.Int("baud", 57600, "Baud rate")
	id       = flag.Uint("id", 1, "Device ID to emulate")
	verbose  = flag.Bool("verbose", false, "Enable telemetry output")
	duration = flag.Duration("duration", 0, "Stop after this long (0 = run forever)")
)

func main() {
	flag.Parse()

	if *verbose {
		telemetry.SetWriter(func(s string) { fmt.Println(s) })
		telemetry.SetEnabled(true)
	}

	cfg := hserial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := hserial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dxlbench: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	transport := hserial.NewTransport(port)
	clk := clock.New()

	store := protocol.NewStore()
	store.SetID(uint8(*id))
	store.SetModelNumber(0x0406)
	store.SetFirmwareVersion(0x01)

	handler := protocol.NewHandler(transport, clk, store, uint32(*baud))

	fmt.Printf("dxlbench: emulating ID %d on %s @ %d baud\n", *id, *device, *baud)

	deadline := time.Time{}
	if *duration > 0 {
		deadline = time.Now().Add(*duration)
	}

	for {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return
		}
		if err := handler.Tick(); err != nil {
			telemetry.Println("dxlbench: " + err.Error())
		}
		time.Sleep(100 * time.Microsecond)
	}
}
