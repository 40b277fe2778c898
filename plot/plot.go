// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package plot renders a sequence of raw accelerometer samples as a PNG
// trace, one line per axis.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/accel/adxl345"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Opts represents the options of a trace.
type Opts struct {
	Width, Height int
	// Title is drawn at the top left. It is typically the device and its
	// data rate.
	Title string
	// FontSize in points. 0 means 12.
	FontSize float64
}

// DefaultOpts is a 1024x480 trace.
var DefaultOpts = Opts{Width: 1024, Height: 480}

// Colors of the X, Y and Z traces.
var AxisColors = [3]color.NRGBA{
	{R: 0xD0, A: 0xFF},
	{G: 0xA0, A: 0xFF},
	{R: 0x20, G: 0x40, B: 0xD0, A: 0xFF},
}

const margin = 40.0

// Render draws samples. The vertical axis is scaled to the largest absolute
// count found in samples.
func Render(samples []adxl345.Sample, opts *Opts) (image.Image, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if len(samples) < 2 {
		return nil, errors.New("plot: at least two samples are needed")
	}
	if opts.Width <= 2*margin || opts.Height <= 2*margin {
		return nil, fmt.Errorf("plot: %dx%d is too small", opts.Width, opts.Height)
	}
	face, err := loadFace(opts.FontSize)
	if err != nil {
		return nil, err
	}

	w, h := float64(opts.Width), float64(opts.Height)
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face)

	peak := peakOf(samples)
	mid := h / 2
	scale := (h/2 - margin) / float64(peak)
	step := (w - 2*margin) / float64(len(samples)-1)

	// Zero line and frame.
	dc.SetRGB(0.8, 0.8, 0.8)
	dc.SetLineWidth(1)
	dc.DrawLine(margin, mid, w-margin, mid)
	dc.Stroke()
	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(margin, margin, w-2*margin, h-2*margin)
	dc.Stroke()
	dc.DrawStringAnchored(fmt.Sprintf("%+d", peak), margin-4, margin, 1, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%+d", -peak), margin-4, h-margin, 1, 0.5)
	if opts.Title != "" {
		dc.DrawString(opts.Title, margin, margin-12)
	}

	dc.SetLineWidth(1.5)
	for axis, c := range AxisColors {
		dc.SetColor(c)
		for i, s := range samples {
			x := margin + float64(i)*step
			y := mid - float64(axisValue(s, axis))*scale
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()
		dc.DrawString(string(rune('X'+axis)), w-margin+8, margin+float64(axis+1)*16)
	}
	return dc.Image(), nil
}

// WritePNG renders samples and encodes the trace as PNG to w.
func WritePNG(w io.Writer, samples []adxl345.Sample, opts *Opts) error {
	img, err := Render(samples, opts)
	if err != nil {
		return err
	}
	return gg.NewContextForImage(img).EncodePNG(w)
}

func loadFace(size float64) (font.Face, error) {
	if size <= 0 {
		size = 12
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

func axisValue(s adxl345.Sample, axis int) int16 {
	switch axis {
	case 0:
		return s.X
	case 1:
		return s.Y
	default:
		return s.Z
	}
}

// peakOf returns the largest absolute count of samples, at least 1.
func peakOf(samples []adxl345.Sample) int {
	peak := 1
	for _, s := range samples {
		for _, v := range [...]int16{s.X, s.Y, s.Z} {
			a := int(v)
			if a < 0 {
				a = -a
			}
			if a > peak {
				peak = a
			}
		}
	}
	return peak
}
