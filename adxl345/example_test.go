// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345_test

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/GermanBionicSystems/accel/adxl345"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// ExampleNewI2C takes a single sample from a device on the first I²C bus.
// Use `i2cdetect -y 1` from i2c-tools to find the bus and address.
func ExampleNewI2C() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	d, err := adxl345.NewI2C(b, adxl345.DefaultI2CAddr, &adxl345.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	var s adxl345.Sample
	if err := d.SingleShot(&s); err != nil {
		log.Fatal(err)
	}
	fmt.Println(d, s)
}

// ExampleNewSPI reads samples every 30ms for 3 seconds in continuous mode.
func ExampleNewSPI() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	d, err := adxl345.NewSPI(p, &adxl345.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	if err := d.Start(); err != nil {
		log.Fatal(err)
	}
	defer d.Halt()

	ticker := time.NewTicker(30 * time.Millisecond)
	defer ticker.Stop()
	stop := time.After(3 * time.Second)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			var s adxl345.Sample
			if err := d.ReadResult(&s); err != nil {
				log.Fatal(err)
			}
			fmt.Println(s)
		}
	}
}

// ExampleDev_EnableTap routes double taps on the Z axis to INT1 and polls the
// tap status.
func ExampleDev_EnableTap() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	d, err := adxl345.NewI2C(b, adxl345.DefaultI2CAddr, nil)
	if errors.Is(err, adxl345.ErrNoDevice) {
		log.Fatal("no ADXL345 at this address")
	} else if err != nil {
		log.Fatal(err)
	}
	err = d.EnableTap(&adxl345.TapConfig{
		Threshold: 48, // 3g
		Duration:  32, // 20ms
		Axes:      adxl345.AxisZ,
		Double:    true,
		Latency:   80,  // 100ms
		Window:    200, // 250ms
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := d.EnableInterrupt(&adxl345.InterruptConfig{Sources: adxl345.IntDoubleTap, Pin: adxl345.IntPin1}); err != nil {
		log.Fatal(err)
	}
	if err := d.Start(); err != nil {
		log.Fatal(err)
	}
	defer d.Halt()
	for i := 0; i < 100; i++ {
		src, err := d.InterruptSource()
		if err != nil {
			log.Fatal(err)
		}
		if src&adxl345.IntDoubleTap != 0 {
			st, _ := d.TapStatus()
			fmt.Printf("double tap, status %#02x\n", byte(st))
		}
		time.Sleep(50 * time.Millisecond)
	}
}
