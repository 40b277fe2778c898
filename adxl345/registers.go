// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// Register addresses.
const (
	regDevID        byte = 0x00 // Device ID
	regThreshTap    byte = 0x1D // Tap threshold
	regOfsX         byte = 0x1E // X-axis offset, Y and Z follow
	regDur          byte = 0x21 // Tap duration
	regLatent       byte = 0x22 // Tap latency
	regWindow       byte = 0x23 // Tap window
	regThreshInact  byte = 0x25 // Inactivity threshold
	regTimeInact    byte = 0x26 // Inactivity time
	regTapAxes      byte = 0x2A // Axis control for single tap/double tap
	regActTapStatus byte = 0x2B // Source of single tap/double tap
	regBwRate       byte = 0x2C // Data rate and power mode control
	regPowerCtl     byte = 0x2D // Power saving features control
	regIntEnable    byte = 0x2E // Interrupt enable control
	regIntMap       byte = 0x2F // Interrupt mapping control
	regIntSource    byte = 0x30 // Source of interrupts
	regDataFormat   byte = 0x31 // Data format control
	regDataX0       byte = 0x32 // X-Axis Data 0, Y and Z follow
)

// Bit positions.
const (
	bitDataReady   = 7 // INT_SOURCE
	bitLink        = 5 // POWER_CTL
	bitIntInvert   = 5 // DATA_FORMAT
	bitLowPower    = 4 // BW_RATE
	bitAutoSleep   = 4 // POWER_CTL
	bitMeasure     = 3 // POWER_CTL
	bitFullRes     = 3 // DATA_FORMAT
	bitSuppress    = 3 // TAP_AXES
	bitJustify     = 2 // DATA_FORMAT
	maskBandwidth  = 0x0F
	maskRange      = 0x03
	maskWakeup     = 0x03
	maskTapAxes    = 0x0F
	expectedDevID  = 0xE5
	sampleLength   = 6
	offsetsLength  = 3
	maxBandwidth   = Rate3200Hz
	maxTapAxesBits = AxisX | AxisY | AxisZ
)

// DefaultI2CAddr is the address used when the ALT ADDRESS pin is tied low.
// AlternateI2CAddr is used when it is tied high.
const (
	DefaultI2CAddr   uint16 = 0x53
	AlternateI2CAddr uint16 = 0x1D
)

// Bandwidth is the 4 bit output data rate code of BW_RATE.
type Bandwidth byte

// Output data rates. The bandwidth is half the output data rate.
const (
	Rate0Hz10 Bandwidth = iota
	Rate0Hz20
	Rate0Hz39
	Rate0Hz78
	Rate1Hz56
	Rate3Hz13
	Rate6Hz25
	Rate12Hz5
	Rate25Hz
	Rate50Hz
	Rate100Hz
	Rate200Hz
	Rate400Hz
	Rate800Hz
	Rate1600Hz
	Rate3200Hz
)

var bandwidthFrequency = [...]physic.Frequency{
	100 * physic.MilliHertz,
	200 * physic.MilliHertz,
	390 * physic.MilliHertz,
	780 * physic.MilliHertz,
	1560 * physic.MilliHertz,
	3130 * physic.MilliHertz,
	6250 * physic.MilliHertz,
	12500 * physic.MilliHertz,
	25 * physic.Hertz,
	50 * physic.Hertz,
	100 * physic.Hertz,
	200 * physic.Hertz,
	400 * physic.Hertz,
	800 * physic.Hertz,
	1600 * physic.Hertz,
	3200 * physic.Hertz,
}

// Frequency returns the output data rate selected by the code, or 0 for an
// invalid code.
func (b Bandwidth) Frequency() physic.Frequency {
	if b > maxBandwidth {
		return 0
	}
	return bandwidthFrequency[b]
}

func (b Bandwidth) String() string {
	if b > maxBandwidth {
		return fmt.Sprintf("Bandwidth(%d)", byte(b))
	}
	return bandwidthFrequency[b].String()
}

// BandwidthFor returns the slowest output data rate that is at least f. Rates
// faster than 3200Hz return Rate3200Hz.
func BandwidthFor(f physic.Frequency) Bandwidth {
	for i, v := range bandwidthFrequency {
		if v >= f {
			return Bandwidth(i)
		}
	}
	return maxBandwidth
}

// Range is the g range selected in DATA_FORMAT.
type Range byte

// Measurement ranges.
const (
	Range2G Range = iota
	Range4G
	Range8G
	Range16G
)

func (r Range) String() string {
	switch r {
	case Range2G:
		return "±2g"
	case Range4G:
		return "±4g"
	case Range8G:
		return "±8g"
	case Range16G:
		return "±16g"
	default:
		return fmt.Sprintf("Range(%d)", byte(r))
	}
}

// WakeupRate is the reading frequency while the device sleeps.
type WakeupRate byte

// Wake-up frequencies in POWER_CTL.
const (
	Wakeup8Hz WakeupRate = iota
	Wakeup4Hz
	Wakeup2Hz
	Wakeup1Hz
)

// Axis selects axes taking part in tap detection.
type Axis byte

// Axis bits as laid out in TAP_AXES.
const (
	AxisZ Axis = 1 << 0
	AxisY Axis = 1 << 1
	AxisX Axis = 1 << 2
)

// Interrupt is a mask of interrupt sources as laid out in INT_ENABLE, INT_MAP
// and INT_SOURCE.
type Interrupt byte

// Interrupt sources.
const (
	IntOverrun Interrupt = 1 << iota
	IntWatermark
	IntFreeFall
	IntInactivity
	IntActivity
	IntDoubleTap
	IntSingleTap
	IntDataReady
)

// IntPin selects the output pin interrupts are routed to.
type IntPin byte

// Interrupt outputs.
const (
	IntPin1 IntPin = iota
	IntPin2
	IntPinNone
)

// TapStatus is the content of ACT_TAP_STATUS.
type TapStatus byte

// ACT_TAP_STATUS bits.
const (
	TapZ      TapStatus = 1 << 0
	TapY      TapStatus = 1 << 1
	TapX      TapStatus = 1 << 2
	Asleep    TapStatus = 1 << 3
	ActivityZ TapStatus = 1 << 4
	ActivityY TapStatus = 1 << 5
	ActivityX TapStatus = 1 << 6
)
