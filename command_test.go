// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds18b20

import (
	"bytes"
	"testing"

	"periph.io/x/conn/v3/onewire"
)

func TestFrame(t *testing.T) {
	var addr onewire.Address = 0x740000070e41ac28
	var testData = []struct {
		name      string
		broadcast bool
		cmd       byte
		expected  []byte
	}{
		{"convert broadcast", true, cmdConvert, []byte{0xCC, 0x44}},
		{"write broadcast", true, cmdWriteScratchpad, []byte{0xCC, 0x4E}},
		{"read broadcast", true, cmdReadScratchpad, []byte{0xCC, 0xBE}},
		// Address bytes go out least significant first.
		{"convert addressed", false, cmdConvert, []byte{0x55, 0x28, 0xAC, 0x41, 0x0E, 0x07, 0x00, 0x00, 0x74, 0x44}},
		{"write addressed", false, cmdWriteScratchpad, []byte{0x55, 0x28, 0xAC, 0x41, 0x0E, 0x07, 0x00, 0x00, 0x74, 0x4E}},
		{"read addressed", false, cmdReadScratchpad, []byte{0x55, 0x28, 0xAC, 0x41, 0x0E, 0x07, 0x00, 0x00, 0x74, 0xBE}},
	}
	for _, entry := range testData {
		t.Run(entry.name, func(st *testing.T) {
			if f := frame(addr, entry.broadcast, entry.cmd); !bytes.Equal(f, entry.expected) {
				st.Errorf("expected %#v, got %#v", entry.expected, f)
			}
		})
	}
}
