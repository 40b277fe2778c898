// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// adxl345 reads an ADXL345 accelerometer connected over I²C or SPI.
//
// Usage:
//
//	adxl345 [flags] <command>
//
// Commands:
//
//	info     print the device identification and data format
//	read     take single shot samples
//	watch    draw live samples as bars on the terminal
//	capture  record samples in continuous mode and plot them to a PNG
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/GermanBionicSystems/accel/adxl345"
	"github.com/GermanBionicSystems/accel/plot"
	"github.com/GermanBionicSystems/accel/screen1d"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

const defaultCapture = 512

const usage = `usage: adxl345 [flags] info|read|watch|capture

Flags:
`

type config struct {
	bus      string
	addr     uint
	spi      string
	useSPI   bool
	rate     physic.Frequency
	rng      rangeFlag
	n        int
	interval time.Duration
	out      string
}

func mainImpl() error {
	cfg := config{rate: 100 * physic.Hertz, rng: rangeFlag(adxl345.Range2G)}
	flag.StringVar(&cfg.bus, "bus", "", "I²C bus to use")
	flag.UintVar(&cfg.addr, "addr", uint(adxl345.DefaultI2CAddr), "I²C address of the device")
	flag.StringVar(&cfg.spi, "spi", "", "SPI port to use instead of I²C")
	flag.Var(&cfg.rate, "rate", "output data rate, e.g. 100Hz")
	flag.Var(&cfg.rng, "range", "measurement range in g: 2, 4, 8 or 16")
	flag.IntVar(&cfg.n, "n", 0, "number of samples; 0 means 1 for read, 512 for capture and until interrupted for watch")
	flag.DurationVar(&cfg.interval, "interval", 100*time.Millisecond, "time between two samples")
	flag.StringVar(&cfg.out, "o", "adxl345.png", "PNG file written by capture")
	loglevel := flag.Int("loglevel", int(logrus.InfoLevel), "The loglevel to use. Valid values are from 0 to 6. Higher values output more information")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		return errors.New("expected exactly one command")
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "spi" {
			cfg.useSPI = true
		}
	})
	if cfg.interval <= 0 {
		return errors.New("-interval must be positive")
	}
	log := newLogger(logrus.Level(*loglevel))

	if _, err := host.Init(); err != nil {
		return err
	}
	d, closer, err := cfg.open(log)
	if err != nil {
		return err
	}
	defer closer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cmd := flag.Arg(0); cmd {
	case "info":
		return info(d)
	case "read":
		return read(d, &cfg)
	case "watch":
		return watch(ctx, d, &cfg)
	case "capture":
		return capture(ctx, d, &cfg, log)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// open initializes the device on the selected bus and applies -rate and
// -range.
func (c *config) open(log logrus.FieldLogger) (*adxl345.Dev, func(), error) {
	opts := adxl345.DefaultOpts
	opts.Bandwidth = adxl345.BandwidthFor(c.rate)
	opts.Logger = log
	var d *adxl345.Dev
	var closer func()
	if c.useSPI {
		p, err := spireg.Open(c.spi)
		if err != nil {
			return nil, nil, err
		}
		closer = func() { _ = p.Close() }
		if d, err = adxl345.NewSPI(p, &opts); err != nil {
			closer()
			return nil, nil, err
		}
	} else {
		b, err := i2creg.Open(c.bus)
		if err != nil {
			return nil, nil, err
		}
		closer = func() { _ = b.Close() }
		if d, err = adxl345.NewI2C(b, uint16(c.addr), &opts); err != nil {
			closer()
			return nil, nil, err
		}
	}
	if err := d.SetRange(adxl345.Range(c.rng)); err != nil {
		closer()
		return nil, nil, err
	}
	log.WithFields(logrus.Fields{"device": d, "rate": opts.Bandwidth}).Info("Opened")
	return d, func() {
		if err := d.Halt(); err != nil {
			log.WithError(err).Warn("Halt failed")
		}
		closer()
	}, nil
}

func info(d *adxl345.Dev) error {
	bw, err := d.Bandwidth()
	if err != nil {
		return err
	}
	fmt.Printf("ID:       %#02x\n", d.ID())
	fmt.Printf("Range:    %s\n", d.Range())
	fmt.Printf("FullRes:  %t\n", d.FullResolution())
	fmt.Printf("Justify:  %s\n", justify(d.LeftJustified()))
	fmt.Printf("Rate:     %s\n", bw)
	return nil
}

func read(d *adxl345.Dev, c *config) error {
	for i := 0; i < max(c.n, 1); i++ {
		if i != 0 {
			time.Sleep(c.interval)
		}
		var s adxl345.Sample
		if err := d.SingleShot(&s); err != nil {
			return err
		}
		fmt.Println(s)
	}
	return nil
}

func watch(ctx context.Context, d *adxl345.Dev, c *config) error {
	disp := screen1d.New(&screen1d.Opts{X: 40, FullScale: fullScale(d)})
	defer disp.Halt()
	if err := stream(ctx, d, c.interval, c.n, disp.Draw); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func capture(ctx context.Context, d *adxl345.Dev, c *config, log logrus.FieldLogger) error {
	n := c.n
	if n == 0 {
		n = defaultCapture
	}
	if n < 2 {
		return errors.New("capture needs -n 2 or more")
	}
	samples := make([]adxl345.Sample, 0, n)
	err := stream(ctx, d, c.interval, n, func(s adxl345.Sample) error {
		samples = append(samples, s)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	f, err := os.Create(c.out)
	if err != nil {
		return err
	}
	bw, _ := d.Bandwidth()
	opts := plot.DefaultOpts
	opts.Title = fmt.Sprintf("ADXL345 %s %s, %d samples every %s", d.Range(), bw, len(samples), c.interval)
	if err := plot.WritePNG(f, samples, &opts); err != nil {
		_ = f.Close()
		return err
	}
	log.WithFields(logrus.Fields{"file": c.out, "samples": len(samples)}).Info("Captured")
	return f.Close()
}

// stream runs the device in continuous mode and passes n samples to fn, one
// per tick. n <= 0 runs until ctx is canceled.
func stream(ctx context.Context, d *adxl345.Dev, interval time.Duration, n int, fn func(adxl345.Sample) error) error {
	if err := d.Start(); err != nil {
		return err
	}
	defer d.Stop()
	t := time.NewTicker(interval)
	defer t.Stop()
	for i := 0; n <= 0 || i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		var s adxl345.Sample
		if err := d.ReadResult(&s); err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "adxl345: %s.\n", err)
		os.Exit(1)
	}
}
