// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// ds18b20plot renders a logged temperature series to a PNG line chart.
//
// The input is CSV with one sample per line, "time,celsius", where time is
// either an RFC 3339 timestamp or a plain number of seconds. Such a log is
// easily produced by piping `ds18b20 -every 1m` through awk or by any data
// logger storing readings from this package.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type sample struct {
	at      float64 // seconds since the first sample
	celsius float64
}

func mainImpl() error {
	in := flag.String("in", "-", "CSV input file, - for stdin")
	out := flag.String("o", "ds18b20.png", "output PNG file")
	width := flag.Int("width", 800, "chart width in pixels")
	height := flag.Int("height", 300, "chart height in pixels")
	title := flag.String("title", "DS18B20", "chart title")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	r := io.Reader(os.Stdin)
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	samples, err := readSamples(r)
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return errors.New("need at least two samples to plot")
	}
	return render(samples, *width, *height, *title, *out)
}

func readSamples(r io.Reader) ([]sample, error) {
	var samples []sample
	var epoch time.Time
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.SplitN(text, ",", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"time,celsius\"", line)
		}
		var at float64
		if ts, err := time.Parse(time.RFC3339, strings.TrimSpace(fields[0])); err == nil {
			if epoch.IsZero() {
				epoch = ts
			}
			at = ts.Sub(epoch).Seconds()
		} else if at, err = strconv.ParseFloat(strings.TrimSpace(fields[0]), 64); err != nil {
			return nil, fmt.Errorf("line %d: bad timestamp %q", line, fields[0])
		}
		c, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad temperature %q", line, fields[1])
		}
		samples = append(samples, sample{at: at, celsius: c})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

func loadFace(points float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}

func render(samples []sample, width, height int, title, path string) error {
	const margin = 40.0
	minT, maxT := samples[0].celsius, samples[0].celsius
	for _, s := range samples[1:] {
		if s.celsius < minT {
			minT = s.celsius
		}
		if s.celsius > maxT {
			maxT = s.celsius
		}
	}
	// Pad the range so a flat series does not collapse the Y axis.
	if maxT-minT < 1 {
		mid := (maxT + minT) / 2
		minT, maxT = mid-0.5, mid+0.5
	}
	spanX := samples[len(samples)-1].at - samples[0].at
	if spanX <= 0 {
		spanX = 1
	}
	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin
	toX := func(at float64) float64 {
		return margin + plotW*(at-samples[0].at)/spanX
	}
	toY := func(c float64) float64 {
		return margin + plotH*(1-(c-minT)/(maxT-minT))
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	face, err := loadFace(12)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	// Axes.
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1)
	dc.DrawLine(margin, margin, margin, margin+plotH)
	dc.DrawLine(margin, margin+plotH, margin+plotW, margin+plotH)
	dc.Stroke()
	dc.DrawStringAnchored(title, float64(width)/2, margin/2, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.2f°C", maxT), margin-4, margin, 1, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.2f°C", minT), margin-4, margin+plotH, 1, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.0fs", spanX), margin+plotW, margin+plotH+12, 1, 0.5)

	// The series.
	dc.SetRGB(0.8, 0.1, 0.1)
	dc.SetLineWidth(2)
	dc.MoveTo(toX(samples[0].at), toY(samples[0].celsius))
	for _, s := range samples[1:] {
		dc.LineTo(toX(s.at), toY(s.celsius))
	}
	dc.Stroke()

	return dc.SavePNG(path)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "ds18b20plot: %s.\n", err)
		os.Exit(1)
	}
}
