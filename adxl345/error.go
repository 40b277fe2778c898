// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArg is returned when a nil configuration, a nil destination or
	// an out of range value is passed. No bus transaction is issued.
	ErrInvalidArg = errors.New("adxl345: invalid argument")
	// ErrInvalidResponse wraps every bus failure. Read and write failures are
	// not distinguished.
	ErrInvalidResponse = errors.New("adxl345: invalid response from sensor")
	// ErrNoDevice is returned by Init when the device ID register does not
	// read 0xE5.
	ErrNoDevice = errors.New("adxl345: no device found")
	// ErrNotInitialized is returned by every operation but Init until Init
	// succeeded.
	ErrNotInitialized = errors.New("adxl345: device not initialized")
	// ErrTimeout is returned by SingleShot when the data-ready flag did not
	// rise within Opts.ReadyTimeout.
	ErrTimeout = errors.New("adxl345: timeout waiting for data ready")
)

func readErr(reg byte, err error) error {
	return fmt.Errorf("%w: read %#02x: %w", ErrInvalidResponse, reg, err)
}

func writeErr(reg byte, err error) error {
	return fmt.Errorf("%w: write %#02x: %w", ErrInvalidResponse, reg, err)
}
