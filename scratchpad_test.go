// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds18b20

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// TestScratchpadTemperature exercises the fixed-point decode at every
// resolution, including the undefined-bit masking and negative values.
func TestScratchpadTemperature(t *testing.T) {
	var testData = []struct {
		scratchpad   Scratchpad
		expectedTemp float64
	}{
		// 12-bit, no masking.
		{Scratchpad{0xD0, 0x07, 0x00, 0x00, 0x7F, 0xFF, 0x00, 0x10, 0x00}, 125},
		{Scratchpad{0x50, 0x05, 0x00, 0x00, 0x7F, 0xFF, 0x00, 0x10, 0x00}, 85},
		{Scratchpad{0x91, 0x01, 0x00, 0x00, 0x7F, 0xFF, 0x00, 0x10, 0x00}, 25.0625},
		{Scratchpad{0x94, 0x01, 0x00, 0x00, 0x7F, 0xFF, 0x00, 0x10, 0x00}, 25.25},
		{Scratchpad{0xA2, 0x00, 0x00, 0x00, 0x7F, 0xFF, 0x00, 0x10, 0x00}, 10.125},
		{Scratchpad{0x08, 0x00, 0x00, 0x00, 0x7F, 0xFF, 0x00, 0x10, 0x00}, 0.5},
		{Scratchpad{0x00, 0x00, 0x00, 0x00, 0x7F, 0xFF, 0x00, 0x10, 0x00}, 0},
		{Scratchpad{0xF8, 0xFF, 0x00, 0x00, 0x7F, 0xFF, 0x00, 0x10, 0x00}, -0.5},
		{Scratchpad{0x5E, 0xFF, 0x00, 0x00, 0x7F, 0xFF, 0x00, 0x10, 0x00}, -10.125},
		{Scratchpad{0x6F, 0xFE, 0x00, 0x00, 0x7F, 0xFF, 0x00, 0x10, 0x00}, -25.0625},
		{Scratchpad{0x90, 0xFC, 0x00, 0x00, 0x7F, 0xFF, 0x00, 0x10, 0x00}, -55},

		// The same raw count masked at lower resolutions.
		{Scratchpad{0x94, 0x01, 0x00, 0x00, 0x5F, 0xFF, 0x00, 0x10, 0x00}, 25.25},
		{Scratchpad{0x94, 0x01, 0x00, 0x00, 0x3F, 0xFF, 0x00, 0x10, 0x00}, 25.25},
		{Scratchpad{0x94, 0x01, 0x00, 0x00, 0x1F, 0xFF, 0x00, 0x10, 0x00}, 25},
		{Scratchpad{0x97, 0x01, 0x00, 0x00, 0x3F, 0xFF, 0x00, 0x10, 0x00}, 25.25},
		{Scratchpad{0x97, 0x01, 0x00, 0x00, 0x5F, 0xFF, 0x00, 0x10, 0x00}, 25.375},
		{Scratchpad{0xF9, 0xFF, 0x00, 0x00, 0x1F, 0xFF, 0x00, 0x10, 0x00}, -0.5},
	}

	for _, entry := range testData {
		t.Run(fmt.Sprintf("%s>%g", entry.scratchpad.Resolution(), entry.expectedTemp), func(st *testing.T) {
			c := entry.scratchpad.Temperature()
			if c.Celsius() != entry.expectedTemp {
				st.Errorf("expected %f, got %f", entry.expectedTemp, c.Celsius())
			}
		})
	}
}

func TestScratchpadResolution(t *testing.T) {
	for i, expected := range []Resolution{Resolution9Bit, Resolution10Bit, Resolution11Bit, Resolution12Bit} {
		s := Scratchpad{0x00, 0x00, 0x00, 0x00, byte(i) << 5, 0xFF, 0x00, 0x10, 0x00}
		if r := s.Resolution(); r != expected {
			t.Errorf("config %#02x: expected %s, got %s", s[4], expected, r)
		}
	}
}

func TestScratchpadThresholds(t *testing.T) {
	s := Scratchpad{0x00, 0x00, 0x4B, 0xF6, 0x7F, 0xFF, 0x00, 0x10, 0x00}
	high, low := s.Thresholds()
	if high != 75 || low != -10 {
		t.Errorf("expected 75/-10, got %d/%d", high, low)
	}
}

func TestScratchpadValidate(t *testing.T) {
	// Recorded from a real device.
	good := Scratchpad{0xE0, 0x01, 0x00, 0x00, 0x3F, 0xFF, 0x10, 0x10, 0x3F}
	if err := good.validate(); err != nil {
		t.Fatal(err)
	}
	// Same block with a flipped temperature bit.
	bad := good
	bad[0] ^= 0x01
	if err := bad.validate(); !errors.Is(err, ErrInvalidCRC) {
		t.Fatalf("expected ErrInvalidCRC, got %v", err)
	}
	// Nothing drove the bus.
	absent := Scratchpad{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if err := absent.validate(); !errors.Is(err, ErrNoDevice) {
		t.Fatalf("expected ErrNoDevice, got %v", err)
	}
}

func TestResolution(t *testing.T) {
	var testData = []struct {
		r    Resolution
		s    string
		bits int
		d    time.Duration
	}{
		{Resolution9Bit, "9-bit", 9, 94 * time.Millisecond},
		{Resolution10Bit, "10-bit", 10, 188 * time.Millisecond},
		{Resolution11Bit, "11-bit", 11, 376 * time.Millisecond},
		{Resolution12Bit, "12-bit", 12, 752 * time.Millisecond},
	}
	for _, entry := range testData {
		if s := entry.r.String(); s != entry.s {
			t.Errorf("expected %q, got %q", entry.s, s)
		}
		if b := entry.r.Bits(); b != entry.bits {
			t.Errorf("%s: expected %d bits, got %d", entry.r, entry.bits, b)
		}
		if d := entry.r.ConversionTime(); d != entry.d {
			t.Errorf("%s: expected %s, got %s", entry.r, entry.d, d)
		}
	}
	if s := Resolution(0x42).String(); s != "unknown" {
		t.Errorf("expected unknown, got %q", s)
	}
	if Resolution(0x42).valid() {
		t.Error("0x42 is not a valid resolution")
	}
}

// crc8 implements the 1-wire CRC (x^8+x^5+x^4+1, seed 0). Test fixtures use
// it to stamp generated scratchpad blocks.
func crc8(buf []byte) byte {
	var crc byte
	for _, b := range buf {
		for i := 0; i < 8; i++ {
			if (crc^b)&1 != 0 {
				crc = crc>>1 ^ 0x8C
			} else {
				crc >>= 1
			}
			b >>= 1
		}
	}
	return crc
}

func TestCRCFixture(t *testing.T) {
	// Guards the fixture helper against the recorded block.
	good := []byte{0xE0, 0x01, 0x00, 0x00, 0x3F, 0xFF, 0x10, 0x10}
	if c := crc8(good); c != 0x3F {
		t.Fatalf("expected 0x3f, got %#02x", c)
	}
}
