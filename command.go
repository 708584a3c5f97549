// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds18b20

import "periph.io/x/conn/v3/onewire"

// ROM commands shared by every 1-wire device family.
const (
	cmdSkipROM  byte = 0xCC // address every device on the bus
	cmdMatchROM byte = 0x55 // address one device by its 64-bit ROM code
)

// DS18B20 function commands, datasheet p.11.
const (
	cmdConvert         byte = 0x44 // start an A/D conversion
	cmdWriteScratchpad byte = 0x4E // write TH, TL and configuration
	cmdReadScratchpad  byte = 0xBE // read the 9-byte register block
)

// frame builds the byte sequence transmitted after a bus reset: a ROM
// selection followed by one function command. A broadcast frame skips
// addressing entirely; an addressed frame selects the device whose ROM code
// is addr, least significant byte first as the wire expects.
func frame(addr onewire.Address, broadcast bool, cmd byte) []byte {
	if broadcast {
		return []byte{cmdSkipROM, cmd}
	}
	f := make([]byte, 0, 10)
	f = append(f, cmdMatchROM)
	for i := uint(0); i < 8; i++ {
		f = append(f, byte(addr>>(8*i)))
	}
	return append(f, cmd)
}
