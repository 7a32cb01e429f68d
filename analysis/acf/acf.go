/*
NAME
  acf.go

DESCRIPTION
  acf.go implements short-term autocorrelation function analysis: each
  windowed frame yields order+1 autocorrelation coefficients r[0..order], with
  Mean selecting the length-normalized form (each r[m] divided by
  N-m) and Norm selecting the energy-normalized form (r[0] set to 1,
  the rest divided by the raw r[0]). When Norm is not set and the window
  is not rectangular, the coefficients are divided by the window's
  squared coherent gain, matching gainCorr in acf.c.

AUTHOR
  Michel T.M. Scheffers (original computeACF/getACF, acf.c/dsputils.c);
  Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package acf implements short-term autocorrelation function analysis.
package acf

import (
	"math"

	"github.com/ipds-kiel/goassp/analysis"
	"github.com/ipds-kiel/goassp/dsp"
	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

// Analysis implements analysis.Analysis for the autocorrelation function.
type Analysis struct {
	// Mean selects length-normalized coefficients (divide by N-m).
	Mean bool
	// Norm selects energy-normalized coefficients (r[0] == 1).
	Norm bool
	// Generator supplies non-closed-form window shapes, if requested.
	Generator dsp.Generator
}

func (Analysis) Name() string { return "acf" }

func (Analysis) SetDefaults(opts *analysis.Options) {
	if opts.MsSize == 0 {
		opts.MsSize = 20.0
		opts.UseEffective = true
	}
	if opts.MsShift == 0 {
		opts.MsShift = 5.0
	}
	if opts.WindowFunc == "" {
		opts.WindowFunc = dsp.Blackman
	}
	if opts.Channel < 1 {
		opts.Channel = 1
	}
}

func (Analysis) Capabilities() analysis.Capabilities {
	return analysis.MonoOrAnyChannel()
}

// DefaultOrder mirrors DFLT_ORDER(sampFreq): sample rate in kHz plus 3,
// rounded by truncating sampFreq/1000 + 3.5.
func DefaultOrder(sampFreq float64) int {
	return int(math.Floor(sampFreq/1000.0 + 3.5))
}

func (a Analysis) Create(audio *sdo.SDO, t analysis.Timing, opts analysis.Options) (*sdo.SDO, error) {
	order := opts.Order
	if order < 1 {
		order = DefaultOrder(audio.SampFreq)
	}
	if int64(order+1) >= t.FrameSize {
		return nil, errs.New(errs.KindData, errs.CodeErrSize, "acf: analysis order too large for frame size").
			WithAppl("order=%d frameSize=%d", order, t.FrameSize)
	}
	result := analysis.NewResultSDO(audio, t)
	analysis.AddReal32Field(result, "acf", sdo.DataTypeACF, order+1)
	if err := analysis.AllocResultBuffer(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (a Analysis) Compute(audio, result *sdo.SDO, t analysis.Timing, opts analysis.Options) error {
	fd := result.FieldDescriptors()[0]
	order := fd.NumFields - 1

	_, meta, err := dsp.Coefficients(opts.WindowFunc, int(t.FrameSize), a.Generator, opts.WindowParam)
	if err != nil {
		return err
	}
	gainCorr := 1.0
	if opts.WindowFunc != dsp.Rectangular {
		cg := meta.CoherentGain
		if cg <= 0 {
			cg = 1.0
		}
		gainCorr = cg * cg
	}

	framer, err := analysis.NewFramer(audio, t, opts, a.Generator)
	if err != nil {
		return err
	}

	frame := make([]float64, t.FrameSize)
	coeffs := make([]float64, order+1)

	for i := int64(0); i < t.NumFrames(); i++ {
		if err := framer.Frame(i, frame); err != nil {
			return err
		}
		if a.Mean {
			meanACF(frame, coeffs, order)
		} else {
			rawACF(frame, coeffs, order)
		}
		switch {
		case a.Norm:
			r0 := coeffs[0]
			coeffs[0] = 1.0
			if r0 <= 0.0 {
				for m := 1; m <= order; m++ {
					coeffs[m] = 0.0
				}
			} else {
				for m := 1; m <= order; m++ {
					coeffs[m] /= r0
				}
			}
		case opts.WindowFunc != dsp.Rectangular:
			for m := 0; m <= order; m++ {
				coeffs[m] /= gainCorr
			}
		}
		if err := analysis.PutReal32Record(result, i, fd, coeffs); err != nil {
			return err
		}
	}
	return nil
}

// rawACF computes r[m] = sum_{n=0}^{N-m-1} s[n]*s[n+m] for m = 0..order.
func rawACF(s []float64, r []float64, order int) {
	n := len(s)
	for m := 0; m <= order; m++ {
		var sum float64
		for k := 0; k < n-m; k++ {
			sum += s[k] * s[k+m]
		}
		r[m] = sum
	}
}

// meanACF computes rawACF divided by the number of terms summed (N-m).
func meanACF(s []float64, r []float64, order int) {
	n := len(s)
	for m := 0; m <= order; m++ {
		var sum float64
		nm := n - m
		for k := 0; k < nm; k++ {
			sum += s[k] * s[k+m]
		}
		r[m] = sum / float64(nm)
	}
}
