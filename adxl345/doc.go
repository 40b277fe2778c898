// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package adxl345 controls an ADXL345 3-axis accelerometer over I²C or SPI.
//
// The driver is a thin layer over the register map. Every configuration call
// is one or more read-modify-write cycles through Dev.ModifyRegister, every
// call blocks for the duration of its bus transactions and nothing runs in
// the background. Samples are returned raw, in LSB; the scale depends on the
// range and resolution reported by Dev.Range and Dev.FullResolution.
//
// A Dev must be initialized before use. NewI2C and NewSPI do it; a Dev built
// with New over a custom Transport needs an explicit Init call.
//
// # Datasheet
//
// http://www.analog.com/media/en/technical-documentation/data-sheets/ADXL345.pdf
package adxl345
