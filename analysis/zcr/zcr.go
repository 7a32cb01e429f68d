/*
NAME
  zcr.go

DESCRIPTION
  zcr.go implements zero-crossing rate analysis, grounded on getZCR:
  each zero crossing's fractional sample position is found by linear
  interpolation between the two straddling samples, the average period
  between the first and last crossing is computed over numZX-1
  half-periods, and the rate is the sampling rate divided by that
  average period (PERIODtoFREQ, assptime.h). Frames with 2 or fewer
  crossings report a rate of 0, matching getZCR's fallback. Framing
  uses one leading context sample (ZCR_HEAD) and no trailing sample
  (ZCR_TAIL), per zcr.h.

AUTHOR
  Michel T.M. Scheffers (original getZCR/computeZCR, dsputils.c/zcr.c);
  Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package zcr implements zero-crossing rate analysis.
package zcr

import (
	"github.com/ipds-kiel/goassp/analysis"
	"github.com/ipds-kiel/goassp/dsp"
	"github.com/ipds-kiel/goassp/sdo"
)

// Analysis implements analysis.Analysis for zero-crossing rate.
type Analysis struct{}

func (Analysis) Name() string { return "zcr" }

func (Analysis) SetDefaults(opts *analysis.Options) {
	if opts.MsSize == 0 {
		opts.MsSize = 25.0
	}
	if opts.MsShift == 0 {
		opts.MsShift = 5.0
	}
	opts.WindowFunc = dsp.Rectangular // zero-crossing counting is unwindowed
	if opts.Channel == 0 {
		opts.Channel = 1
	}
}

func (Analysis) Capabilities() analysis.Capabilities {
	return analysis.MonoOrAnyChannel()
}

func (a Analysis) Create(audio *sdo.SDO, t analysis.Timing, opts analysis.Options) (*sdo.SDO, error) {
	result := analysis.NewResultSDO(audio, t)
	numFields := 1
	if opts.Channel < 1 {
		audioFD := audio.FindFieldDescriptor(sdo.DataTypeSample, "")
		if audioFD != nil {
			numFields = audioFD.NumFields
		}
	}
	analysis.AddReal32Field(result, "zcr", sdo.DataTypeZCR, numFields)
	if err := analysis.AllocResultBuffer(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (a Analysis) Compute(audio, result *sdo.SDO, t analysis.Timing, opts analysis.Options) error {
	fd := result.FieldDescriptors()[0]
	numChans := fd.NumFields

	// getZCR counts crossings over frameSize+ZCR_HEAD samples (one
	// leading context sample included, no trailing sample), so this
	// analysis reads frames directly via GetSampleFrame rather than
	// through the shared Framer, whose head sample is only used
	// internally for DC removal/pre-emphasis bookkeeping.
	frame := make([]float64, 1+t.FrameSize)
	vals := make([]float64, numChans)

	for i := int64(0); i < t.NumFrames(); i++ {
		for c := 0; c < numChans; c++ {
			channel := opts.Channel
			if channel < 1 {
				channel = c + 1
			}
			if err := audio.GetSampleFrame(t.FrameStart(i), t.FrameSize, 1, 1, 0, channel, frame); err != nil {
				return err
			}
			vals[c] = rate(frame, audio.SampFreq)
		}
		if err := analysis.PutReal32Record(result, i, fd, vals); err != nil {
			return err
		}
	}
	return nil
}

// rate computes the zero-crossing rate of s (sampled at sfr Hz) by
// linear interpolation of each sign change's fractional position,
// matching getZCR.
func rate(s []float64, sfr float64) float64 {
	n := len(s)
	if n < 2 {
		return 0
	}
	numZX := 0
	first, last := -1.0, -1.0
	pos := s[0] >= 0.0
	prev := s[0]
	for i := 1; i < n; i++ {
		cur := s[i]
		if cur >= 0.0 {
			if !pos {
				pos = true
				numZX++
				last = float64(i) - cur/(cur-prev)
				if first < 0.0 {
					first = last
				}
			}
		} else {
			if pos {
				pos = false
				numZX++
				last = float64(i) + cur/(prev-cur)
				if first < 0.0 {
					first = last
				}
			}
		}
		prev = cur
	}
	if numZX <= 2 {
		return 0
	}
	avrPeriod := 2.0 * (last - first) / float64(numZX-1)
	return sfr / avrPeriod
}
