// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ds18b20 implements the application layer protocol of the Dallas
// Semi / Maxim DS18B20 family of 1-wire digital temperature sensors.
//
// The package builds the ROM selection frames, decodes the 9-byte scratchpad
// register block with CRC validation and resolution dependent masking of the
// undefined low bits, and configures the conversion resolution. Everything
// electrical, that is bus reset, presence detection, bit timing and the
// device search, belongs to the onewire.Bus transport; any implementation
// works, for example the Linux w1 subsystem registered by
// periph.io/x/host/v3 or a DS248x bus master.
//
// Devices are addressed individually through a Dev, or all at once through
// the package level broadcast functions. The caller must serialize all
// operations against one bus handle; this package performs no locking of its
// own.
//
// Datasheet: https://www.analog.com/media/en/technical-documentation/data-sheets/DS18B20.pdf
package ds18b20
