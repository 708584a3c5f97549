// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds18b20

import "periph.io/x/conn/v3/onewire"

// Enumerate returns the addresses of up to max devices on the bus, in
// discovery order. max < 0 means no limit.
//
// The search protocol guarantees the addresses are pairwise distinct. Every
// device family on the bus is reported, not only temperature sensors; see
// Sensors for a filtered scan. If the search fails partway, the addresses
// discovered so far are returned together with the error and the caller
// decides whether to use them.
func Enumerate(bus onewire.Bus, max int) ([]onewire.Address, error) {
	return enumerate(bus, max, false, nil)
}

// Sensors returns the addresses of up to max DS18x20 temperature sensors on
// the bus, skipping other device families. max < 0 means no limit.
func Sensors(bus onewire.Bus, max int) ([]onewire.Address, error) {
	return enumerate(bus, max, false, isSensor)
}

// Alarming returns the addresses of up to max devices whose last conversion
// fell outside their TH/TL alarm window. max < 0 means no limit.
func Alarming(bus onewire.Bus, max int) ([]onewire.Address, error) {
	return enumerate(bus, max, true, nil)
}

func isSensor(addr onewire.Address) bool {
	switch Family(addr & 0xFF) {
	case DS18B20, DS18S20:
		return true
	}
	return false
}

func enumerate(bus onewire.Bus, max int, alarmOnly bool, keep func(onewire.Address) bool) ([]onewire.Address, error) {
	if bus == nil {
		return nil, ErrNoBus
	}
	found, err := bus.Search(alarmOnly)
	var addrs []onewire.Address
	for _, a := range found {
		if max >= 0 && len(addrs) >= max {
			break
		}
		if keep != nil && !keep(a) {
			continue
		}
		addrs = append(addrs, a)
	}
	return addrs, err
}
