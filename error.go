// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds18b20

import "errors"

// Argument errors, returned before any bus traffic happens.
var (
	// ErrNoBus is returned when no 1-wire bus handle was provided.
	ErrNoBus = errors.New("ds18b20: no 1-wire bus")
	// ErrInvalidResolution is returned when a resolution is not one of the
	// four configuration register values.
	ErrInvalidResolution = errors.New("ds18b20: invalid resolution")
)

// ErrInvalidCRC is returned when the scratchpad checksum does not match the
// preceding eight bytes. It indicates noise or a misread; the read may be
// retried. It implements onewire.BusError.
var ErrInvalidCRC error = crcError("ds18b20: invalid scratchpad CRC")

// ErrNoDevice is returned when the scratchpad reads back as all ones,
// meaning nothing on the bus drove the line. It implements
// onewire.NoDevicesError.
var ErrNoDevice error = noDeviceError("ds18b20: device did not respond")

// crcError implements error and onewire.BusError.
type crcError string

func (e crcError) Error() string  { return string(e) }
func (e crcError) BusError() bool { return true }

// noDeviceError implements error and onewire.NoDevicesError.
type noDeviceError string

func (e noDeviceError) Error() string   { return string(e) }
func (e noDeviceError) NoDevices() bool { return true }
