// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	prefixed "github.com/BertoldVdb/logrus-prefixed-formatter"
	"github.com/GermanBionicSystems/accel/adxl345"
	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
)

// rangeFlag implements flag.Value for the g range.
type rangeFlag adxl345.Range

func (r *rangeFlag) String() string {
	return adxl345.Range(*r).String()
}

// Set accepts 2, 4, 8 or 16, optionally followed by "g".
func (r *rangeFlag) Set(s string) error {
	v, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(strings.TrimPrefix(s, "±")), "g"))
	if err != nil {
		return fmt.Errorf("invalid range %q", s)
	}
	switch v {
	case 2:
		*r = rangeFlag(adxl345.Range2G)
	case 4:
		*r = rangeFlag(adxl345.Range4G)
	case 8:
		*r = rangeFlag(adxl345.Range8G)
	case 16:
		*r = rangeFlag(adxl345.Range16G)
	default:
		return fmt.Errorf("invalid range %q: must be 2, 4, 8 or 16", s)
	}
	return nil
}

func newLogger(level logrus.Level) *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetOutput(colorable.NewColorableStdout())
	f := new(prefixed.TextFormatter)
	f.TimestampFormat = "2006-01-02 15:04:05"
	f.FullTimestamp = true
	f.PrefixPadding = 20
	f.SpacePadding = 50
	logger.SetFormatter(f)
	return logger.WithField("prefix", "adxl345")
}

// fullScale returns the count reached at the end of the selected range.
func fullScale(d *adxl345.Dev) int {
	if !d.FullResolution() {
		return 512
	}
	return 512 << d.Range()
}

func justify(left bool) string {
	if left {
		return "left"
	}
	return "right"
}
