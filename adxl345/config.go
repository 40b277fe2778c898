// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

import "fmt"

// InterruptConfig describes interrupt sources to enable and where to route
// them.
type InterruptConfig struct {
	Sources Interrupt // Interrupt sources to enable.
	Pin     IntPin    // Output the sources are mapped to. IntPinNone leaves INT_MAP untouched.
	Invert  bool      // Active low interrupt outputs. Applies to both pins.
}

// TapConfig describes tap detection settings.
type TapConfig struct {
	Threshold byte // 62.5 mg/LSB.
	Duration  byte // 625 µs/LSB. 0 disables tap detection.
	Axes      Axis // Axes taking part in tap detection.
	Double    bool // Configure double tap detection too.
	Latency   byte // 1.25 ms/LSB. Only written when Double is set.
	Window    byte // 1.25 ms/LSB. Only written when Double is set.
	// Suppress double tap detection if the acceleration is greater than
	// Threshold between the taps.
	Suppress bool
}

// SetLowPower enables or disables reduced power operation.
func (d *Dev) SetLowPower(enable bool) error {
	var v byte
	if enable {
		v = 1 << bitLowPower
	}
	return d.ModifyRegister(regBwRate, 1<<bitLowPower, v)
}

// EnableInterrupt enables cfg.Sources, routes them to cfg.Pin and sets the
// interrupt output polarity.
//
// The polarity bit is global, it affects every enabled source.
func (d *Dev) EnableInterrupt(cfg *InterruptConfig) error {
	if cfg == nil || cfg.Pin > IntPinNone {
		return ErrInvalidArg
	}
	mask := byte(cfg.Sources)
	if err := d.ModifyRegister(regIntEnable, mask, mask); err != nil {
		return err
	}
	switch cfg.Pin {
	case IntPin1:
		if err := d.ModifyRegister(regIntMap, mask, 0); err != nil {
			return err
		}
	case IntPin2:
		if err := d.ModifyRegister(regIntMap, mask, mask); err != nil {
			return err
		}
	}
	var invert byte
	if cfg.Invert {
		invert = 1 << bitIntInvert
	}
	return d.ModifyRegister(regDataFormat, 1<<bitIntInvert, invert)
}

// DisableInterrupt disables src. The mapping and polarity are left as they
// are.
func (d *Dev) DisableInterrupt(src Interrupt) error {
	return d.ModifyRegister(regIntEnable, byte(src), 0)
}

// EnableTap configures tap detection.
//
// Threshold and duration are always written. Latency and window are written
// only for double tap. The axes register is written last.
func (d *Dev) EnableTap(cfg *TapConfig) error {
	if cfg == nil || cfg.Axes&^maxTapAxesBits != 0 {
		return ErrInvalidArg
	}
	if err := d.ModifyRegister(regThreshTap, 0xFF, cfg.Threshold); err != nil {
		return err
	}
	if err := d.ModifyRegister(regDur, 0xFF, cfg.Duration); err != nil {
		return err
	}
	if cfg.Double {
		if err := d.ModifyRegister(regLatent, 0xFF, cfg.Latency); err != nil {
			return err
		}
		if err := d.ModifyRegister(regWindow, 0xFF, cfg.Window); err != nil {
			return err
		}
	}
	axes := byte(cfg.Axes)
	if cfg.Suppress {
		axes |= 1 << bitSuppress
	}
	return d.ModifyRegister(regTapAxes, maskTapAxes, axes)
}

// DisableTap disables tap detection by clearing the tap duration. Threshold
// and axes stay configured.
func (d *Dev) DisableTap() error {
	return d.ModifyRegister(regDur, 0xFF, 0)
}

// EnableAutoSleep sets the inactivity threshold (62.5 mg/LSB) and time
// (1 s/LSB), then links activity and inactivity detection and enables
// auto-sleep.
//
// The registers are written in that order; the first failure leaves the
// remaining ones untouched.
func (d *Dev) EnableAutoSleep(threshold, duration byte) error {
	if err := d.ModifyRegister(regThreshInact, 0xFF, threshold); err != nil {
		return err
	}
	if err := d.ModifyRegister(regTimeInact, 0xFF, duration); err != nil {
		return err
	}
	const bits = 1<<bitLink | 1<<bitAutoSleep
	return d.ModifyRegister(regPowerCtl, bits, bits)
}

// SetWakeupRate sets the reading frequency used while asleep.
func (d *Dev) SetWakeupRate(r WakeupRate) error {
	if r > Wakeup1Hz {
		return ErrInvalidArg
	}
	return d.ModifyRegister(regPowerCtl, maskWakeup, byte(r))
}

// SetOffset writes the per-axis offset trim (15.6 mg/LSB) in a single
// transaction.
func (d *Dev) SetOffset(x, y, z int8) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	b := [offsetsLength]byte{byte(x), byte(y), byte(z)}
	d.log.Debugf("write offsets %d, %d, %d", x, y, z)
	if err := d.t.WriteRegisters(regOfsX, b[:]); err != nil {
		return writeErr(regOfsX, err)
	}
	return nil
}

// SetBandwidth sets the output data rate. Low power mode is left as is.
func (d *Dev) SetBandwidth(b Bandwidth) error {
	if b > maxBandwidth {
		return fmt.Errorf("%w: bandwidth %d", ErrInvalidArg, b)
	}
	return d.ModifyRegister(regBwRate, maskBandwidth, byte(b))
}

// Bandwidth reads the output data rate back from the device.
func (d *Dev) Bandwidth() (Bandwidth, error) {
	if !d.initialized {
		return 0, ErrNotInitialized
	}
	v, err := d.readRegister(regBwRate)
	if err != nil {
		return 0, err
	}
	return Bandwidth(v & maskBandwidth), nil
}

// SetRange sets the measurement range. The cached data format is updated.
func (d *Dev) SetRange(r Range) error {
	if r > Range16G {
		return fmt.Errorf("%w: range %d", ErrInvalidArg, r)
	}
	return d.ModifyRegister(regDataFormat, maskRange, byte(r))
}
