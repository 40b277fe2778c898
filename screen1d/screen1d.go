// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen1d draws accelerometer samples on a terminal (stdout) as
// three one-line bars using ANSI color codes.
//
// Each bar is centered on zero and grows left for negative readings and
// right for positive ones. Values are raw counts; no unit conversion is done.
package screen1d

import (
	"bytes"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/accel/adxl345"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
)

// Opts represents the options available for the gauge.
type Opts struct {
	// X is the width of each bar in cells. It is rounded down to an even
	// number.
	X int
	// FullScale is the absolute count drawn as a full half bar. Larger
	// values are clipped. 0 means 512, which is 2g at the 10 bit ±2g
	// setting.
	FullScale int
	Palette   *ansi256.Palette

	_ struct{}
}

// Colors of the X, Y and Z bars.
var (
	AxisColors = [3]color.NRGBA{
		{R: 0xFF, A: 0xFF},
		{G: 0xFF, A: 0xFF},
		{R: 0x40, G: 0x80, B: 0xFF, A: 0xFF},
	}
	Background = color.NRGBA{A: 0xFF}
)

// Dev is a three bar gauge that outputs to the console.
type Dev struct {
	w         io.Writer
	half      int
	fullScale int
	palette   ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that writes the escape sequences to w.
func NewWriter(w io.Writer, opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	fs := opts.FullScale
	if fs <= 0 {
		fs = 512
	}
	return &Dev{
		w:         w,
		half:      opts.X / 2,
		fullScale: fs,
		palette:   *p,
	}
}

func (d *Dev) String() string {
	return "Screen1D"
}

// Halt implements conn.Resource.
//
// It resets the colors and moves to a new line so the terminal is not
// corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Draw overwrites the current line with the bars of s.
func (d *Dev) Draw(s adxl345.Sample) error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for i, v := range [...]int16{s.X, s.Y, s.Z} {
		if i != 0 {
			_, _ = d.buf.WriteString("\033[0m ")
		}
		d.bar(int(v), AxisColors[i])
	}
	_, _ = d.buf.WriteString("\033[0m ")
	_, err := d.buf.WriteTo(d.w)
	return err
}

// bar appends one bar of 2*half cells.
func (d *Dev) bar(v int, c color.NRGBA) {
	n := v
	if n < 0 {
		n = -n
	}
	n = n * d.half / d.fullScale
	if n > d.half {
		n = d.half
	}
	on, off := d.palette.Block(c), d.palette.Block(Background)
	for i := 0; i < 2*d.half; i++ {
		var lit bool
		if v < 0 {
			lit = i >= d.half-n && i < d.half
		} else {
			lit = i >= d.half && i < d.half+n
		}
		if lit {
			_, _ = io.WriteString(&d.buf, on)
		} else {
			_, _ = io.WriteString(&d.buf, off)
		}
	}
}

var _ conn.Resource = &Dev{}
