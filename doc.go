// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package accel is a container for the ADXL345 accelerometer driver and the
// tools built on it.
//
// The driver lives in package adxl345. Package screen1d draws samples on a
// terminal and package plot renders captures as PNG traces. cmd/adxl345 ties
// them together against real hardware.
package accel
