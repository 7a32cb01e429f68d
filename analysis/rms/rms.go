/*
NAME
  rms.go

DESCRIPTION
  rms.go implements RMS amplitude analysis, grounded on computeRMS/
  createRMS: each frame is windowed, its root-mean-square amplitude
  computed, corrected for the
  window's coherent gain, and (unless Linear is set) converted to dB
  with a floor of RMS_MIN_dB (-20 dB) below RMS_MIN_AMP (0.1), matching
  LINtodB/RMS_MIN_AMP/RMS_MIN_dB (asspdsp.h).

AUTHOR
  Michel T.M. Scheffers (original computeRMS/createRMS, rms.c); Go port
  for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package rms implements RMS amplitude analysis.
package rms

import (
	"math"

	"github.com/ipds-kiel/goassp/analysis"
	"github.com/ipds-kiel/goassp/dsp"
	"github.com/ipds-kiel/goassp/sdo"
)

const (
	minAmp = 0.1
	minDB  = -20.0
)

// Analysis implements analysis.Analysis for RMS amplitude.
type Analysis struct {
	// Linear, when true, reports amplitude linearly instead of dB.
	Linear bool
	// Generator supplies non-closed-form window shapes, if requested.
	Generator dsp.Generator
}

func (Analysis) Name() string { return "rms" }

func (Analysis) SetDefaults(opts *analysis.Options) {
	if opts.MsSize == 0 {
		opts.MsSize = 20.0
		opts.UseEffective = true
	}
	if opts.MsShift == 0 {
		opts.MsShift = 10.0
	}
	if opts.WindowFunc == "" {
		opts.WindowFunc = dsp.Hamming
	}
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
	analysis.AddReal32Field(result, "rms", sdo.DataTypeRMS, numFields)
	if err := analysis.AllocResultBuffer(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (a Analysis) Compute(audio, result *sdo.SDO, t analysis.Timing, opts analysis.Options) error {
	_, meta, err := dsp.Coefficients(opts.WindowFunc, int(t.FrameSize), a.Generator, opts.WindowParam)
	if err != nil {
		return err
	}
	coherentGain := 1.0
	if opts.WindowFunc != dsp.Rectangular {
		coherentGain = meta.CoherentGain
		if coherentGain <= 0 {
			coherentGain = 1.0
		}
	}

	fd := result.FieldDescriptors()[0]
	numChans := fd.NumFields

	framers := make([]*analysis.Framer, numChans)
	for c := 0; c < numChans; c++ {
		chOpts := opts
		if opts.Channel > 0 {
			chOpts.Channel = opts.Channel
		} else {
			chOpts.Channel = c + 1
		}
		framers[c], err = analysis.NewFramer(audio, t, chOpts, a.Generator)
		if err != nil {
			return err
		}
	}

	frame := make([]float64, t.FrameSize)
	vals := make([]float64, numChans)

	for i := int64(0); i < t.NumFrames(); i++ {
		for c := 0; c < numChans; c++ {
			if err := framers[c].Frame(i, frame); err != nil {
				return err
			}
			rmsAmp := rootMeanSquare(frame) / coherentGain
			if !a.Linear {
				if rmsAmp <= minAmp {
					rmsAmp = minDB
				} else {
					rmsAmp = 20.0 * math.Log10(rmsAmp)
				}
			}
			vals[c] = rmsAmp
		}
		if err := analysis.PutReal32Record(result, i, fd, vals); err != nil {
			return err
		}
	}
	return nil
}

func rootMeanSquare(frame []float64) float64 {
	var sum float64
	for _, v := range frame {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(frame)))
}
