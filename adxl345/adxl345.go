// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/spi"
)

// Opts holds the configuration options for the device.
type Opts struct {
	// Bandwidth is written to BW_RATE by Init. It also clears low power mode.
	Bandwidth Bandwidth
	// ReadyTimeout bounds the data-ready poll of SingleShot. 0 means
	// DefaultOpts.ReadyTimeout, a negative value means no timeout.
	ReadyTimeout time.Duration
	// PollInterval is the pause between two data-ready polls. 0 polls
	// back-to-back.
	PollInterval time.Duration
	// Logger receives debug traces of register writes. nil discards them.
	Logger logrus.FieldLogger
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{
	Bandwidth:    Rate100Hz,
	ReadyTimeout: defaultReadyTimeout,
}

const defaultReadyTimeout = time.Second

// Dev is a handle to an ADXL345 accelerometer.
//
// Dev is not safe for concurrent use. Callers sharing one Dev between
// goroutines must serialize calls.
type Dev struct {
	t    Transport
	opts Opts
	log  logrus.FieldLogger

	id            byte
	rng           Range
	fullRes       bool
	leftJustified bool
	initialized   bool
}

// New returns an uninitialized Dev talking through t. No bus transaction is
// issued; call Init before anything else. If opts is nil, DefaultOpts is
// used.
func New(t Transport, opts *Opts) *Dev {
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{t: t, opts: *opts, log: opts.Logger}
	if d.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		d.log = l
	}
	return d
}

// NewI2C returns an initialized Dev at addr on bus b.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	d := New(NewI2CTransport(b, addr), opts)
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewSPI returns an initialized Dev on SPI port p.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	t, err := NewSPITransport(p)
	if err != nil {
		return nil, err
	}
	d := New(t, opts)
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Init verifies the device ID and puts the device into a known state:
// measurement, sleep and all interrupts off, bandwidth set from Opts. The
// data format is then read back so samples can be decoded.
//
// Calling Init on an initialized Dev is a no-op. On failure the Dev stays
// uninitialized.
func (d *Dev) Init() error {
	if d.t == nil {
		return fmt.Errorf("%w: transport is required", ErrInvalidArg)
	}
	if v, ok := d.t.(interface{ validate() error }); ok {
		if err := v.validate(); err != nil {
			return err
		}
	}
	if d.opts.Bandwidth > maxBandwidth {
		return fmt.Errorf("%w: bandwidth %d", ErrInvalidArg, d.opts.Bandwidth)
	}
	if d.initialized {
		return nil
	}

	id, err := d.readRegister(regDevID)
	if err != nil {
		return err
	}
	d.log.Debugf("device ID %#02x", id)
	if id != expectedDevID {
		return fmt.Errorf("%w: device ID %#02x, expected %#02x", ErrNoDevice, id, expectedDevID)
	}
	d.id = id

	for _, reg := range []byte{regPowerCtl, regIntMap, regIntEnable} {
		if err := d.writeRegister(reg, 0); err != nil {
			return err
		}
	}
	if err := d.writeRegister(regBwRate, byte(d.opts.Bandwidth)); err != nil {
		return err
	}

	format, err := d.readRegister(regDataFormat)
	if err != nil {
		return err
	}
	d.setFormat(format)
	d.initialized = true
	d.log.WithFields(logrus.Fields{
		"range":          d.rng,
		"fullResolution": d.fullRes,
		"leftJustified":  d.leftJustified,
	}).Debug("adxl345 initialized")
	return nil
}

// ModifyRegister replaces the bits of reg selected by mask with the same bits
// of value, leaving the others untouched. It is a read followed by a write
// without retry.
//
// Modifying DATA_FORMAT through this call keeps the cached data format in
// sync. Modifying it by other means makes sample decoding wrong.
func (d *Dev) ModifyRegister(reg, mask, value byte) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	old, err := d.readRegister(reg)
	if err != nil {
		return err
	}
	v := old&^mask | value&mask
	d.log.Debugf("write %#02x to register %#02x", v, reg)
	if err := d.writeRegister(reg, v); err != nil {
		return err
	}
	if reg == regDataFormat {
		d.setFormat(v)
	}
	return nil
}

// ID returns the device ID read by Init.
func (d *Dev) ID() byte {
	return d.id
}

// Initialized reports whether Init succeeded.
func (d *Dev) Initialized() bool {
	return d.initialized
}

// Range returns the cached measurement range.
func (d *Dev) Range() Range {
	return d.rng
}

// FullResolution reports whether the cached data format has full resolution
// enabled.
func (d *Dev) FullResolution() bool {
	return d.fullRes
}

// LeftJustified reports whether the cached data format is left-justified.
func (d *Dev) LeftJustified() bool {
	return d.leftJustified
}

// Halt stops measuring. Implements conn.Resource.
func (d *Dev) Halt() error {
	if !d.initialized {
		return nil
	}
	return d.Stop()
}

func (d *Dev) String() string {
	return fmt.Sprintf("ADXL345{%v, Range:%s, FullRes:%t, LeftJustified:%t}", d.t, d.rng, d.fullRes, d.leftJustified)
}

func (d *Dev) setFormat(v byte) {
	d.rng = Range(v & maskRange)
	d.fullRes = v&(1<<bitFullRes) != 0
	d.leftJustified = v&(1<<bitJustify) != 0
}

func (d *Dev) readRegister(reg byte) (byte, error) {
	var b [1]byte
	if err := d.t.ReadRegisters(reg, b[:]); err != nil {
		return 0, readErr(reg, err)
	}
	return b[0], nil
}

func (d *Dev) writeRegister(reg, v byte) error {
	if err := d.t.WriteRegisters(reg, []byte{v}); err != nil {
		return writeErr(reg, err)
	}
	return nil
}

var _ conn.Resource = &Dev{}
