/*
NAME
  rates.go

DESCRIPTION
  rates.go implements CheckRates and the Start_Time/Time_Zero timing
  invariants that tie sample rate, data rate and record framing
  together.

AUTHOR
  Michel T.M. Scheffers (original); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sdo

import "github.com/ipds-kiel/goassp/errs"

// CheckRates enforces consistency between SampFreq, DataRate and
// FrameDur: for audio (FrameDur == 1), DataRate must equal SampFreq;
// for framed analyses (FrameDur > 1), DataRate must equal
// SampFreq/FrameDur; FrameDur == -1 (variable rate) is accepted
// without a DataRate check, matching checkRates.
func (d *SDO) CheckRates() error {
	if d.SampFreq <= 0 {
		return errs.New(errs.KindData, errs.CodeErrRate, "sampling frequency must be > 0")
	}
	switch {
	case d.FrameDur == -1:
		return nil
	case d.FrameDur == 1:
		if d.DataRate != d.SampFreq {
			d.DataRate = d.SampFreq
		}
	case d.FrameDur > 1:
		want := d.SampFreq / float64(d.FrameDur)
		if d.DataRate != want {
			d.DataRate = want
		}
	default:
		return errs.New(errs.KindBug, errs.CodeBadArgs, "FrameDur must be -1, 1, or > 1").
			WithAppl("frameDur=%d", d.FrameDur)
	}
	return nil
}

// SetStartTime computes Start_Time = Time_Zero + StartRecord/DataRate.
func (d *SDO) SetStartTime() error {
	if d.DataRate <= 0 {
		return errs.New(errs.KindData, errs.CodeErrRate, "data rate must be > 0 to compute Start_Time")
	}
	d.StartTime = d.TimeZero + float64(d.StartRecord)/d.DataRate
	return nil
}

// SampleCentreTime returns the ASSP-convention centre time of audio
// sample n: T(n) = (n + 0.5) / SampFreq.
func (d *SDO) SampleCentreTime(n int64) float64 {
	return (float64(n) + 0.5) / d.SampFreq
}
