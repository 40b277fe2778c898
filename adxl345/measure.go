// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

import (
	"fmt"
	"time"
)

// Sample is one raw reading of the three axes, in LSB.
type Sample struct {
	X int16
	Y int16
	Z int16
}

// SampleFromBytes decodes the content of DATAX0..DATAZ1.
//
// When leftJustified is set each axis is read high byte first, otherwise low
// byte first.
func SampleFromBytes(raw [sampleLength]byte, leftJustified bool) Sample {
	if leftJustified {
		return Sample{
			X: int16(uint16(raw[0])<<8 | uint16(raw[1])),
			Y: int16(uint16(raw[2])<<8 | uint16(raw[3])),
			Z: int16(uint16(raw[4])<<8 | uint16(raw[5])),
		}
	}
	return Sample{
		X: int16(uint16(raw[1])<<8 | uint16(raw[0])),
		Y: int16(uint16(raw[3])<<8 | uint16(raw[2])),
		Z: int16(uint16(raw[5])<<8 | uint16(raw[4])),
	}
}

// Bytes encodes s the way the device lays it out in DATAX0..DATAZ1. It is
// the inverse of SampleFromBytes.
func (s Sample) Bytes(leftJustified bool) [sampleLength]byte {
	var raw [sampleLength]byte
	for i, v := range [...]int16{s.X, s.Y, s.Z} {
		hi, lo := byte(uint16(v)>>8), byte(v)
		if leftJustified {
			raw[2*i], raw[2*i+1] = hi, lo
		} else {
			raw[2*i], raw[2*i+1] = lo, hi
		}
	}
	return raw
}

func (s Sample) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d", s.X, s.Y, s.Z)
}

// Start puts the device in measurement mode. Samples are then produced
// continuously at the configured output data rate.
func (d *Dev) Start() error {
	return d.ModifyRegister(regPowerCtl, 1<<bitMeasure, 1<<bitMeasure)
}

// Stop puts the device in standby.
func (d *Dev) Stop() error {
	return d.ModifyRegister(regPowerCtl, 1<<bitMeasure, 0)
}

// ReadResult reads the latest sample into s.
//
// It does not check that the device is measuring; in standby the data
// registers hold the last sample taken.
func (d *Dev) ReadResult(s *Sample) error {
	if s == nil {
		return ErrInvalidArg
	}
	if !d.initialized {
		return ErrNotInitialized
	}
	var raw [sampleLength]byte
	if err := d.t.ReadRegisters(regDataX0, raw[:]); err != nil {
		return readErr(regDataX0, err)
	}
	*s = SampleFromBytes(raw, d.leftJustified)
	d.log.Debugf("sample %s", s)
	return nil
}

// SingleShot starts a measurement, waits for the data-ready flag, reads the
// sample into s and puts the device back in standby.
//
// The wait is bounded by Opts.ReadyTimeout and returns ErrTimeout when it
// expires. Any failure leaves the device as it is at that point; in
// particular it may still be measuring.
func (d *Dev) SingleShot(s *Sample) error {
	if s == nil {
		return ErrInvalidArg
	}
	if err := d.Start(); err != nil {
		return err
	}
	if err := d.waitDataReady(); err != nil {
		return err
	}
	if err := d.ReadResult(s); err != nil {
		return err
	}
	return d.Stop()
}

func (d *Dev) waitDataReady() error {
	timeout := d.opts.ReadyTimeout
	if timeout == 0 {
		timeout = defaultReadyTimeout
	}
	end := time.Now().Add(timeout)
	for {
		src, err := d.readRegister(regIntSource)
		if err != nil {
			return err
		}
		if src&(1<<bitDataReady) != 0 {
			return nil
		}
		if timeout > 0 && !time.Now().Before(end) {
			return ErrTimeout
		}
		if d.opts.PollInterval > 0 {
			time.Sleep(d.opts.PollInterval)
		}
	}
}

// ClearInterrupts reads INT_SOURCE to clear the latched tap, activity,
// inactivity and free fall interrupts. The value read is discarded; use
// InterruptSource to get it.
func (d *Dev) ClearInterrupts() error {
	_, err := d.InterruptSource()
	return err
}

// InterruptSource returns the interrupt sources that triggered. Reading it
// clears the latched interrupts.
func (d *Dev) InterruptSource() (Interrupt, error) {
	if !d.initialized {
		return 0, ErrNotInitialized
	}
	v, err := d.readRegister(regIntSource)
	if err != nil {
		return 0, err
	}
	return Interrupt(v), nil
}

// TapStatus returns ACT_TAP_STATUS as read.
func (d *Dev) TapStatus() (TapStatus, error) {
	if !d.initialized {
		return 0, ErrNotInitialized
	}
	v, err := d.readRegister(regActTapStatus)
	if err != nil {
		return 0, err
	}
	return TapStatus(v), nil
}
