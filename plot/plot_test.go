// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/GermanBionicSystems/accel/adxl345"
)

func sine() []adxl345.Sample {
	s := make([]adxl345.Sample, 64)
	for i := range s {
		v := int16(i%16*32 - 256)
		s[i] = adxl345.Sample{X: v, Y: -v, Z: 256}
	}
	return s
}

func TestRender(t *testing.T) {
	img, err := Render(sine(), &Opts{Width: 320, Height: 200, Title: "ADXL345 100Hz"})
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 200 {
		t.Fatalf("bounds = %v", b)
	}
	// The corner is outside the frame and stays white.
	if r, g, bl, _ := img.At(0, b.Dy()-1).RGBA(); r != 0xFFFF || g != 0xFFFF || bl != 0xFFFF {
		t.Errorf("corner is not white: %d %d %d", r, g, bl)
	}
	colored := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != g || g != bl {
				colored++
			}
		}
	}
	if colored == 0 {
		t.Error("no trace was drawn")
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(sine()[:1], nil); err == nil {
		t.Error("expected error with a single sample")
	}
	if _, err := Render(sine(), &Opts{Width: 50, Height: 50}); err == nil {
		t.Error("expected error with a tiny image")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, sine(), nil); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != DefaultOpts.Width || b.Dy() != DefaultOpts.Height {
		t.Errorf("bounds = %v", b)
	}
}

func TestPeakOf(t *testing.T) {
	if got := peakOf([]adxl345.Sample{{}, {}}); got != 1 {
		t.Errorf("peakOf(zero) = %d", got)
	}
	if got := peakOf([]adxl345.Sample{{X: 3}, {Y: -32768}, {Z: 9}}); got != 32768 {
		t.Errorf("peakOf() = %d", got)
	}
}
