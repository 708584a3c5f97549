// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds18b20_test

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/onewire/onewirereg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	ds18b20 "github.com/kutukvpavel/esp-ds18b20"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use the 1-wire bus registry to find the first available bus.
	b, err := onewirereg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	// Find the temperature sensors on the bus.
	addrs, err := ds18b20.Sensors(b, -1)
	if err != nil {
		log.Fatal(err)
	}
	for _, addr := range addrs {
		d, err := ds18b20.New(b, addr, ds18b20.Resolution10Bit)
		if err != nil {
			log.Fatal(err)
		}
		e := physic.Env{}
		if err := d.Sense(&e); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %s\n", d, e.Temperature)
	}
}
