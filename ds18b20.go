// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds18b20

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/onewire"
	"periph.io/x/conn/v3/physic"
)

// Family is the device family code embedded in the low byte of a 1-wire
// address.
type Family byte

const (
	DS18B20 Family = 0x28
	DS18S20 Family = 0x10
)

func (f Family) String() string {
	switch f {
	case DS18B20:
		return "DS18B20"
	case DS18S20:
		return "DS18S20"
	default:
		return "unknown"
	}
}

// StartAll triggers a temperature conversion on every device on the bus and
// returns immediately. The caller must wait the ConversionTime of the
// slowest configured device before reading; an earlier read returns the
// previous result. The bus is left strongly pulled up so parasitically
// powered devices can convert.
func StartAll(bus onewire.Bus) error {
	if bus == nil {
		return ErrNoBus
	}
	return bus.Tx(frame(0, true, cmdConvert), nil, onewire.StrongPullup)
}

// ConvertAll triggers a conversion on every device on the bus and sleeps
// until it has completed. max is the highest resolution configured on any
// device, which bounds the conversion time.
func ConvertAll(bus onewire.Bus, max Resolution) error {
	if bus == nil {
		return ErrNoBus
	}
	if !max.valid() {
		return ErrInvalidResolution
	}
	if err := StartAll(bus); err != nil {
		return err
	}
	sleep(max.ConversionTime())
	return nil
}

// ReadTemperature reads the result of the last conversion using broadcast
// addressing. It is only meaningful on a bus carrying a single device; with
// several devices the simultaneous replies collide.
func ReadTemperature(bus onewire.Bus) (physic.Temperature, error) {
	if bus == nil {
		return 0, ErrNoBus
	}
	return readTemperature(bus, 0, true)
}

// SetResolutionAll configures the conversion resolution of every device on
// the bus. Both alarm thresholds are reset to zero: the write scratchpad
// command always transfers all three bytes.
func SetResolutionAll(bus onewire.Bus, r Resolution) error {
	if bus == nil {
		return ErrNoBus
	}
	return writeScratchpad(bus, 0, true, 0, 0, r)
}

// New returns a handle to the DS18B20 with the given 64-bit address,
// converting at resolution r.
//
// The scratchpad is read once to confirm the device answers and the
// configuration register is rewritten only when it differs from r. A
// resolution of 10 bits (0.25°C) tends to be a good compromise between
// conversion time and the sensor's inherent accuracy of ±0.5°C.
func New(bus onewire.Bus, addr onewire.Address, r Resolution) (*Dev, error) {
	if bus == nil {
		return nil, ErrNoBus
	}
	if !r.valid() {
		return nil, ErrInvalidResolution
	}
	d := &Dev{bus: bus, addr: addr, resolution: r}
	s, err := d.ReadScratchpad()
	if err != nil {
		return nil, err
	}
	if s.Resolution() != r {
		if err := d.SetResolution(r); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Dev is a handle to one DS18B20 temperature sensor on a 1-wire bus.
//
// All operations against the same bus must be serialized by the caller; Dev
// performs no locking of its own.
type Dev struct {
	bus        onewire.Bus
	addr       onewire.Address
	resolution Resolution
}

func (d *Dev) String() string {
	return fmt.Sprintf("%s{%s(%#016x)}", d.Family(), d.bus, uint64(d.addr))
}

// Family returns the device family code embedded in the address.
func (d *Dev) Family() Family {
	return Family(d.addr & 0xFF)
}

// Resolution returns the conversion resolution the device is configured to.
func (d *Dev) Resolution() Resolution {
	return d.resolution
}

// StartConvert triggers a temperature conversion and returns immediately.
// The caller must wait Resolution().ConversionTime() before reading the
// result. The bus is left strongly pulled up for parasitic power.
func (d *Dev) StartConvert() error {
	return d.bus.Tx(frame(d.addr, false, cmdConvert), nil, onewire.StrongPullup)
}

// Convert triggers a temperature conversion and sleeps until it completes.
func (d *Dev) Convert() error {
	if err := d.StartConvert(); err != nil {
		return err
	}
	sleep(d.resolution.ConversionTime())
	return nil
}

// LastTemp returns the result of the last conversion. The scratchpad is read
// fresh and its CRC checked on every call.
//
// It is useful in combination with StartAll or ConvertAll.
func (d *Dev) LastTemp() (physic.Temperature, error) {
	return readTemperature(d.bus, d.addr, false)
}

// ReadScratchpad returns the current register block after checking its CRC.
func (d *Dev) ReadScratchpad() (*Scratchpad, error) {
	return readScratchpad(d.bus, d.addr, false)
}

// SetResolution selects the conversion resolution. Both alarm thresholds are
// reset to zero; use WriteScratchpad to set them together with the
// resolution.
func (d *Dev) SetResolution(r Resolution) error {
	return d.WriteScratchpad(0, 0, r)
}

// WriteScratchpad writes the TH and TL alarm thresholds, in whole degrees
// Celsius, and the conversion resolution. The command transfers all three
// bytes; the wire offers no way to update one of them alone.
func (d *Dev) WriteScratchpad(high, low int8, r Resolution) error {
	if err := writeScratchpad(d.bus, d.addr, false, high, low, r); err != nil {
		return err
	}
	d.resolution = r
	return nil
}

// Sense implements physic.SenseEnv. It runs a full conversion, sleeping
// until the device has finished, then reads the result.
func (d *Dev) Sense(e *physic.Env) error {
	if err := d.Convert(); err != nil {
		return err
	}
	t, err := d.LastTemp()
	if err != nil {
		return err
	}
	e.Temperature = t
	return nil
}

// SenseContinuous implements physic.SenseEnv.
func (d *Dev) SenseContinuous(time.Duration) (<-chan physic.Env, error) {
	return nil, errors.New("ds18b20: not implemented")
}

// Precision implements physic.SenseEnv.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = physic.Kelvin / physic.Temperature(1<<uint(d.resolution.Bits()-8))
}

// Halt implements conn.Resource. The device has no state to stop.
func (d *Dev) Halt() error {
	return nil
}

func readScratchpad(bus onewire.Bus, addr onewire.Address, broadcast bool) (*Scratchpad, error) {
	var s Scratchpad
	if err := bus.Tx(frame(addr, broadcast, cmdReadScratchpad), s[:], onewire.WeakPullup); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func readTemperature(bus onewire.Bus, addr onewire.Address, broadcast bool) (physic.Temperature, error) {
	s, err := readScratchpad(bus, addr, broadcast)
	if err != nil {
		return 0, err
	}
	return s.Temperature(), nil
}

func writeScratchpad(bus onewire.Bus, addr onewire.Address, broadcast bool, high, low int8, r Resolution) error {
	if !r.valid() {
		return ErrInvalidResolution
	}
	w := append(frame(addr, broadcast, cmdWriteScratchpad), byte(high), byte(low), byte(r))
	return bus.Tx(w, nil, onewire.WeakPullup)
}

var sleep = time.Sleep

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
