/*
NAME
  diff.go

DESCRIPTION
  diff.go implements sample-by-sample signal differentiation, grounded
  on diffSignal: forward (y[n] = x[n+1]-x[n]), backward (y[n] = x[n]-
  x[n-1]) and
  central (y[n] = (x[n+1]-x[n-1])/2) differences, each rounded to the
  nearest integer (myrint). Unlike the framed analyses, this produces
  one output sample per input sample at the same rate, not a decimated
  parameter track, so it bypasses analysis.Timing/Framer. A first pass
  finds the peak magnitude; if it would overflow the output format's
  range, a second pass rescales every sample by the factor that brings
  the peak back in range, matching diffSignal's two-pass overflow
  correction.

AUTHOR
  Michel T.M. Scheffers (original diffSignal, diff.c); Go port for
  goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package diff implements sample-by-sample signal differentiation.
package diff

import (
	"math"

	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

// Mode selects which finite-difference formula Differentiate applies.
type Mode int

const (
	Forward Mode = iota
	Backward
	Central
)

const int32Max = math.MaxInt32

// Differentiate reads channel (1-based) of audio's full buffered range
// and returns a []int32 signal of the same length, differentiated per
// mode, rescaled (all samples, uniformly) if the raw differences would
// overflow an int32.
func Differentiate(audio *sdo.SDO, channel int, mode Mode) ([]int32, error) {
	fd := audio.FindFieldDescriptor(sdo.DataTypeSample, "")
	if fd == nil {
		return nil, errs.New(errs.KindFile, errs.CodeNoAudio, "Differentiate: SDO has no audio field")
	}
	startRec, numRecs := audio.StartRecord, audio.NumRecords
	if audio.Backing == sdo.BackingMemory {
		startRec, numRecs = audio.BufStartRec, audio.BufNumRecs
	}
	if numRecs <= 0 {
		return nil, errs.New(errs.KindFile, errs.CodeNoAudio, "Differentiate: SDO has no data")
	}

	var head, tail int
	switch mode {
	case Backward:
		head, tail = 1, 0
	case Central:
		head, tail = 1, 1
	default:
		head, tail = 0, 1
	}

	total := int64(head) + numRecs + int64(tail)
	buf := make([]float64, total)
	if err := audio.GetSampleFrame(startRec, numRecs, 1, head, tail, channel, buf); err != nil {
		return nil, err
	}

	diffs := make([]float64, numRecs)
	maxMag := 0.0
	for n := int64(0); n < numRecs; n++ {
		var d float64
		switch mode {
		case Backward:
			// buf[0] = x[startRec-1]; buf[1+n] = x[startRec+n]
			d = buf[1+n] - buf[n]
		case Central:
			// buf[0] = x[startRec-1]; buf[1+n] = x[startRec+n]; buf[2+n] = x[startRec+n+1]
			d = (buf[2+n] - buf[n]) / 2.0
		default:
			// buf[n] = x[startRec+n]; buf[n+1] = x[startRec+n+1]
			d = buf[n+1] - buf[n]
		}
		d = math.Round(d)
		diffs[n] = d
		if math.Abs(d) > maxMag {
			maxMag = math.Abs(d)
		}
	}

	scale := 1.0
	if maxMag > int32Max {
		scale = int32Max / maxMag
	}

	out := make([]int32, numRecs)
	for n, d := range diffs {
		out[n] = int32(math.Round(d * scale))
	}
	return out, nil
}
