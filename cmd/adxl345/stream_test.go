// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GermanBionicSystems/accel/adxl345"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

// openPlayback initializes a Dev over a playback that then expects ops.
func openPlayback(t *testing.T, ops ...i2ctest.IO) (*adxl345.Dev, *i2ctest.Playback) {
	pb := &i2ctest.Playback{
		Ops: append([]i2ctest.IO{
			{Addr: 0x53, W: []byte{0x00}, R: []byte{0xE5}},
			{Addr: 0x53, W: []byte{0x2D, 0x00}},
			{Addr: 0x53, W: []byte{0x2F, 0x00}},
			{Addr: 0x53, W: []byte{0x2E, 0x00}},
			{Addr: 0x53, W: []byte{0x2C, 0x0A}},
			{Addr: 0x53, W: []byte{0x31}, R: []byte{0x00}},
		}, ops...),
		DontPanic: true,
	}
	d, err := adxl345.NewI2C(pb, adxl345.DefaultI2CAddr, nil)
	if err != nil {
		t.Fatal(err)
	}
	return d, pb
}

var (
	startOps = []i2ctest.IO{
		{Addr: 0x53, W: []byte{0x2D}, R: []byte{0x00}},
		{Addr: 0x53, W: []byte{0x2D, 0x08}},
	}
	stopOps = []i2ctest.IO{
		{Addr: 0x53, W: []byte{0x2D}, R: []byte{0x08}},
		{Addr: 0x53, W: []byte{0x2D, 0x00}},
	}
)

func concat(ops ...[]i2ctest.IO) []i2ctest.IO {
	var all []i2ctest.IO
	for _, o := range ops {
		all = append(all, o...)
	}
	return all
}

func TestStream(t *testing.T) {
	d, pb := openPlayback(t, concat(
		startOps,
		[]i2ctest.IO{
			{Addr: 0x53, W: []byte{0x32}, R: []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00}},
			{Addr: 0x53, W: []byte{0x32}, R: []byte{0xFF, 0xFF, 0xFE, 0xFF, 0xFD, 0xFF}},
		},
		stopOps)...)
	var got []adxl345.Sample
	err := stream(context.Background(), d, time.Millisecond, 2, func(s adxl345.Sample) error {
		got = append(got, s)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []adxl345.Sample{{X: 1, Y: 2, Z: 3}, {X: -1, Y: -2, Z: -3}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestStreamCanceled(t *testing.T) {
	d, pb := openPlayback(t, concat(startOps, stopOps)...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := stream(ctx, d, time.Hour, 0, func(adxl345.Sample) error {
		t.Error("no sample expected")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	// The device is put back in standby.
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestStreamCallbackError(t *testing.T) {
	d, pb := openPlayback(t, concat(
		startOps,
		[]i2ctest.IO{{Addr: 0x53, W: []byte{0x32}, R: make([]byte, 6)}},
		stopOps)...)
	errStop := errors.New("stop")
	err := stream(context.Background(), d, time.Millisecond, 0, func(adxl345.Sample) error {
		return errStop
	})
	if !errors.Is(err, errStop) {
		t.Fatalf("got %v, want %v", err, errStop)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestInfoReadsOnlyBandwidth(t *testing.T) {
	// INT_SOURCE must not be read, it would clear latched interrupts.
	d, pb := openPlayback(t, i2ctest.IO{Addr: 0x53, W: []byte{0x2C}, R: []byte{0x0A}})
	if err := info(d); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}
