// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// ds18b20 reads DS18x20 temperature sensors on a 1-wire bus.
//
// It enumerates the sensors, configures their conversion resolution and
// prints one reading per line, optionally forever. When stdout is a terminal
// each line starts with a color block shaded by temperature.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"periph.io/x/conn/v3/onewire/onewirereg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	ds18b20 "github.com/kutukvpavel/esp-ds18b20"
)

func mainImpl() error {
	busName := flag.String("bus", "", "1-wire bus to use, the first available if empty")
	bits := flag.Int("res", 10, "conversion resolution in bits (9..12)")
	max := flag.Int("n", -1, "maximum number of sensors to use, -1 for all")
	every := flag.Duration("every", 0, "poll continuously at this interval")
	list := flag.Bool("l", false, "list every device on the bus and exit")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if *bits < 9 || *bits > 12 {
		return errors.New("-res must be between 9 and 12")
	}
	res := ds18b20.Resolution(byte(*bits-9)<<5 | 0x1F)

	if _, err := host.Init(); err != nil {
		return err
	}
	bus, err := onewirereg.Open(*busName)
	if err != nil {
		return err
	}
	defer bus.Close()

	if *list {
		addrs, err := ds18b20.Enumerate(bus, *max)
		for _, a := range addrs {
			fmt.Printf("%#016x %s\n", uint64(a), ds18b20.Family(a&0xFF))
		}
		return err
	}

	addrs, err := ds18b20.Sensors(bus, *max)
	if err != nil {
		// An aborted search still reports what it found; use it.
		log.Printf("search: %v", err)
	}
	if len(addrs) == 0 {
		return errors.New("no temperature sensor found")
	}
	devs := make([]*ds18b20.Dev, 0, len(addrs))
	for _, a := range addrs {
		d, err := ds18b20.New(bus, a, res)
		if err != nil {
			return fmt.Errorf("%#016x: %w", uint64(a), err)
		}
		devs = append(devs, d)
	}

	out := newPrinter()
	for {
		if err := ds18b20.ConvertAll(bus, res); err != nil {
			return err
		}
		for _, d := range devs {
			t, err := d.LastTemp()
			if err != nil {
				return fmt.Errorf("%s: %w", d, err)
			}
			out.print(d, t)
		}
		if *every == 0 {
			return nil
		}
		time.Sleep(*every)
	}
}

// printer writes one reading per line, shaded by temperature when stdout is
// a terminal.
type printer struct {
	w     io.Writer
	color bool
}

func newPrinter() *printer {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return &printer{w: colorable.NewColorableStdout(), color: true}
	}
	return &printer{w: os.Stdout}
}

func (p *printer) print(d *ds18b20.Dev, t physic.Temperature) {
	if p.color {
		fmt.Fprintf(p.w, "%s\033[0m %s: %s\n", ansi256.Default.Block(tempColor(t)), d, t)
		return
	}
	fmt.Fprintf(p.w, "%s: %s\n", d, t)
}

// tempColor shades from blue at -10°C to red at 40°C.
func tempColor(t physic.Temperature) color.NRGBA {
	f := (t.Celsius() + 10) / 50
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return color.NRGBA{R: byte(255 * f), B: byte(255 * (1 - f)), A: 255}
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "ds18b20: %s.\n", err)
		os.Exit(1)
	}
}
