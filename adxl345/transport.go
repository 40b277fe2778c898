// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPI connection parameters. The device requires clock polarity and phase
// both set.
var (
	SpiFrequency = 2 * physic.MegaHertz
	SpiMode      = spi.Mode3
	SpiBits      = 8
)

const (
	spiRead  = 0x80
	spiMulti = 0x40
)

// Transport is the register access used by Dev. Implementations issue exactly
// one bus transaction per call.
//
// The I²C and SPI transports are provided by NewI2CTransport and
// NewSPITransport. Other buses can be plugged in by implementing Transport.
type Transport interface {
	// ReadRegisters reads len(b) consecutive registers starting at reg.
	ReadRegisters(reg byte, b []byte) error
	// WriteRegisters writes b to consecutive registers starting at reg.
	WriteRegisters(reg byte, b []byte) error
}

// I2CTransport talks to the device over I²C.
type I2CTransport struct {
	d *i2c.Dev
}

// NewI2CTransport returns a transport for the device at addr on bus b.
func NewI2CTransport(b i2c.Bus, addr uint16) *I2CTransport {
	return &I2CTransport{d: &i2c.Dev{Bus: b, Addr: addr}}
}

// ReadRegisters implements Transport.
func (t *I2CTransport) ReadRegisters(reg byte, b []byte) error {
	return t.d.Tx([]byte{reg}, b)
}

// WriteRegisters implements Transport.
func (t *I2CTransport) WriteRegisters(reg byte, b []byte) error {
	w := make([]byte, 0, len(b)+1)
	w = append(w, reg)
	w = append(w, b...)
	return t.d.Tx(w, nil)
}

func (t *I2CTransport) validate() error {
	if t == nil || t.d == nil || t.d.Bus == nil || t.d.Addr == 0 {
		return fmt.Errorf("%w: i2c bus and address are required", ErrInvalidArg)
	}
	return nil
}

func (t *I2CTransport) String() string {
	return t.d.String()
}

// SPITransport talks to the device over a 4-wire SPI connection.
type SPITransport struct {
	c spi.Conn
}

// NewSPITransport connects to p with SpiFrequency, SpiMode and SpiBits.
func NewSPITransport(p spi.Port) (*SPITransport, error) {
	c, err := p.Connect(SpiFrequency, SpiMode, SpiBits)
	if err != nil {
		return nil, err
	}
	return &SPITransport{c: c}, nil
}

// ReadRegisters implements Transport.
//
// The first byte carries the address with the read bit, and the multi-byte
// bit when more than one register is read. The device clocks the data out
// after it.
func (t *SPITransport) ReadRegisters(reg byte, b []byte) error {
	tx := make([]byte, len(b)+1)
	tx[0] = reg | spiRead
	if len(b) > 1 {
		tx[0] |= spiMulti
	}
	rx := make([]byte, len(tx))
	if err := t.c.Tx(tx, rx); err != nil {
		return err
	}
	copy(b, rx[1:])
	return nil
}

// WriteRegisters implements Transport.
func (t *SPITransport) WriteRegisters(reg byte, b []byte) error {
	tx := make([]byte, 0, len(b)+1)
	tx = append(tx, reg)
	if len(b) > 1 {
		tx[0] |= spiMulti
	}
	tx = append(tx, b...)
	rx := make([]byte, len(tx))
	return t.c.Tx(tx, rx)
}

func (t *SPITransport) validate() error {
	if t == nil || t.c == nil {
		return fmt.Errorf("%w: spi connection is required", ErrInvalidArg)
	}
	return nil
}

func (t *SPITransport) String() string {
	return t.c.String()
}

var _ Transport = &I2CTransport{}
var _ Transport = &SPITransport{}
