// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds18b20

import (
	"time"

	"periph.io/x/conn/v3/onewire"
	"periph.io/x/conn/v3/physic"
)

// Resolution selects the bit depth of a temperature conversion. The value is
// the literal configuration register byte; bits 5-6 carry the resolution and
// double as the index into the undefined-bit mask table used while decoding.
type Resolution byte

const (
	Resolution9Bit  Resolution = 0x1F // 0.5°C steps, 94ms conversion
	Resolution10Bit Resolution = 0x3F // 0.25°C steps, 188ms conversion
	Resolution11Bit Resolution = 0x5F // 0.125°C steps, 376ms conversion
	Resolution12Bit Resolution = 0x7F // 0.0625°C steps, 752ms conversion
)

func (r Resolution) String() string {
	switch r {
	case Resolution9Bit:
		return "9-bit"
	case Resolution10Bit:
		return "10-bit"
	case Resolution11Bit:
		return "11-bit"
	case Resolution12Bit:
		return "12-bit"
	default:
		return "unknown"
	}
}

// Bits returns the conversion depth, 9 to 12.
func (r Resolution) Bits() int {
	return 9 + int(r>>5)&3
}

// ConversionTime returns how long the sensor needs to finish a conversion at
// this resolution, datasheet p.6. The protocol does not wait; the caller
// must, between triggering a conversion and reading its result.
func (r Resolution) ConversionTime() time.Duration {
	return (94 << (uint(r>>5) & 3)) * time.Millisecond
}

func (r Resolution) valid() bool {
	switch r {
	case Resolution9Bit, Resolution10Bit, Resolution11Bit, Resolution12Bit:
		return true
	}
	return false
}

// tempMasks lists, per resolution index, the low temperature bits left
// undefined by the conversion. They are cleared while decoding.
var tempMasks = [4]byte{0x07, 0x03, 0x01, 0x00}

// Scratchpad is the sensor's 9-byte register block: temperature LSB and MSB,
// the TH and TL alarm thresholds, the configuration register, three reserved
// bytes and a CRC over the first eight. It is read fresh on every query and
// never cached.
type Scratchpad [9]byte

// Resolution returns the conversion depth recorded in the configuration
// register.
func (s *Scratchpad) Resolution() Resolution {
	return Resolution((s[4]>>5)&3)<<5 | 0x1F
}

// Thresholds returns the TH and TL alarm registers in whole degrees Celsius.
func (s *Scratchpad) Thresholds() (high, low int8) {
	return int8(s[2]), int8(s[3])
}

// Temperature converts the stored conversion count to a temperature. The
// count is a signed 16-bit value in 1/16°C steps, datasheet p.4; bits left
// undefined at the configured resolution are cleared first.
func (s *Scratchpad) Temperature() physic.Temperature {
	lsb := s[0] &^ tempMasks[(s[4]>>5)&3]
	raw := int16(s[1])<<8 | int16(lsb)
	return physic.Temperature(raw)*physic.Kelvin/16 + physic.ZeroCelsius
}

// validate reports whether the block came back intact. A block of all ones
// means no device drove the bus after the read slots started.
func (s *Scratchpad) validate() error {
	if onewire.CheckCRC(s[:]) {
		return nil
	}
	for _, b := range s {
		if b != 0xFF {
			return ErrInvalidCRC
		}
	}
	return ErrNoDevice
}
