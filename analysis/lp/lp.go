/*
NAME
  lp.go

DESCRIPTION
  lp.go implements linear prediction analysis, grounded on createLP/
  computeLP: each frame's RMS amplitude is measured on the windowed
  (but not pre-emphasized) signal, then the pre-emphasized, windowed
  signal is autocorrelated and run through the Durbin recursion
  (dsp.Durbin) to yield LPC and reflection coefficients plus the
  squared prediction error (reported as a gain in dB). The selected
  Output type determines which derived parameter track is stored: LPC
  and RFC map directly onto the Durbin outputs; ARF and LAR are
  algebraic conversions of the reflection coefficients (rfc2arf/
  rfc2lar); Cep is the Oppenheim-
  recursion cepstrum (lpc2cep); PQP and Formant factor the LP polynomial
  into quadratic resonance pairs via Bairstow's method (lpc2pqp),
  reporting either the raw (p, q) pairs or their center-frequency/
  bandwidth equivalents (pqp2rfb).

AUTHOR
  Michel T.M. Scheffers (original computeLP/rfc2arf/rfc2lar, rfc.c/lpc.c);
  Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package lp implements linear prediction analysis and its derived
// parameter conversions (LPC, RFC, ARF, LAR, cepstrum, PQ pairs and
// formants).
package lp

import (
	"math"

	"github.com/ipds-kiel/goassp/analysis"
	"github.com/ipds-kiel/goassp/dsp"
	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

// Output selects which derived linear-prediction parameter track is stored.
type Output int

const (
	RFC Output = iota
	LPC
	ARF
	LAR
	// Cep stores cepstral coefficients (lpc2cep, lpc.c): cep[0] is
	// log(sqerr), cep[1..order] follow the Oppenheim recursion.
	Cep
	// PQP stores the LP polynomial's quadratic-factor (p, q) pairs
	// (lpc2pqp, lpc.c), one pair per resonance; order must be even.
	PQP
	// Formant stores center frequency/bandwidth pairs derived from the
	// PQP pairs (pqp2rfb, lpc.c); order must be even.
	Formant
)

const (
	rmsMinAmp = 0.1
	rmsMinDB  = -20.0
	gainMinSq = 1e-20
	gainMinDB = -200.0
)

// Analysis implements analysis.Analysis for linear prediction.
type Analysis struct {
	Output    Output
	Generator dsp.Generator
	// RootSolver factors the LP polynomial for PQP/Formant output;
	// defaults to dsp.Bairstow when nil.
	RootSolver dsp.RootSolver
}

func (Analysis) Name() string { return "lp" }

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
	if opts.PreEmphasis == 0 {
		opts.PreEmphasis = -0.95
	}
	if opts.Channel < 1 {
		opts.Channel = 1
	}
}

func (Analysis) Capabilities() analysis.Capabilities {
	return analysis.MonoOrAnyChannel()
}

func (a Analysis) Create(audio *sdo.SDO, t analysis.Timing, opts analysis.Options) (*sdo.SDO, error) {
	order := opts.Order
	if order < 1 {
		order = acfDefaultOrder(audio.SampFreq)
	}
	if int64(order+1) >= t.FrameSize {
		return nil, errs.New(errs.KindData, errs.CodeErrSize, "lp: analysis order too large for frame size").
			WithAppl("order=%d frameSize=%d", order, t.FrameSize)
	}
	if (a.Output == PQP || a.Output == Formant) && order%2 != 0 {
		return nil, errs.New(errs.KindData, errs.CodeErrSize, "lp: order must be even for pqp/formant output").
			WithAppl("order=%d", order)
	}

	result := analysis.NewResultSDO(audio, t)
	analysis.AddReal32Field(result, "rms", sdo.DataTypeRMS, 1)
	analysis.AddReal32Field(result, "gain", sdo.DataTypeGain, 1)
	switch a.Output {
	case ARF:
		analysis.AddReal32Field(result, "arf", sdo.DataTypeARF, order+1)
	case LAR:
		analysis.AddReal32Field(result, "lar", sdo.DataTypeLAR, order)
	case LPC:
		analysis.AddReal32Field(result, "lpc", sdo.DataTypeLPC, order+1)
	case Cep:
		analysis.AddReal32Field(result, "cep", sdo.DataTypeLPCepstrum, order+1)
	case PQP:
		analysis.AddReal32Field(result, "pqp", sdo.DataTypePQP, order)
	case Formant:
		analysis.AddReal32Field(result, "fmt", sdo.DataTypeFormantFreqBw, order)
	default:
		analysis.AddReal32Field(result, "rfc", sdo.DataTypeRFC, order)
	}
	if err := analysis.AllocResultBuffer(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (a Analysis) Compute(audio, result *sdo.SDO, t analysis.Timing, opts analysis.Options) error {
	fds := result.FieldDescriptors()
	rmsFD, gainFD, coefFD := fds[0], fds[1], fds[2]
	order := coefFD.NumFields
	switch a.Output {
	case LPC, ARF, Cep:
		order--
	}

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

	// Unpreemphasized framer for RMS measurement.
	rmsOpts := opts
	rmsOpts.PreEmphasis = 0
	rmsFramer, err := analysis.NewFramer(audio, t, rmsOpts, a.Generator)
	if err != nil {
		return err
	}
	// Pre-emphasized framer feeds the autocorrelation/Durbin step.
	lpFramer, err := analysis.NewFramer(audio, t, opts, a.Generator)
	if err != nil {
		return err
	}

	rmsFrame := make([]float64, t.FrameSize)
	lpFrame := make([]float64, t.FrameSize)
	acf := make([]float64, order+1)

	for i := int64(0); i < t.NumFrames(); i++ {
		if err := rmsFramer.Frame(i, rmsFrame); err != nil {
			return err
		}
		rmsAmp := rootMeanSquare(rmsFrame) / coherentGain
		if rmsAmp <= rmsMinAmp {
			rmsAmp = rmsMinDB
		} else {
			rmsAmp = 20.0 * math.Log10(rmsAmp)
		}
		if err := analysis.PutReal32Record(result, i, rmsFD, []float64{rmsAmp}); err != nil {
			return err
		}

		if err := lpFramer.Frame(i, lpFrame); err != nil {
			return err
		}
		rawACF(lpFrame, acf, order)

		// Durbin already falls back to the identity filter on a rounding
		// error (sqerr going negative) rather than returning garbage, so
		// that failure needs no special handling here; it is non-fatal
		// per frame, matching the reference library's behavior.
		lpc, rfc, sqerr, _ := dsp.Durbin(acf, order)

		gain := sqerr / float64(t.FrameSize)
		gain /= coherentGain * coherentGain
		if gain <= gainMinSq {
			gain = gainMinDB
		} else {
			gain = 10.0 * math.Log10(gain)
		}
		if err := analysis.PutReal32Record(result, i, gainFD, []float64{gain}); err != nil {
			return err
		}

		coefs, err := a.convert(lpc, rfc, sqerr, order, audio.SampFreq)
		if err != nil {
			return err
		}
		if err := analysis.PutReal32Record(result, i, coefFD, coefs); err != nil {
			return err
		}
	}
	return nil
}

func (a Analysis) convert(lpc, rfc []float64, sqerr float64, order int, sampFreq float64) ([]float64, error) {
	out := a.Output
	switch out {
	case LPC:
		return lpc, nil
	case Cep:
		cep := make([]float64, order+1)
		lpc2cep(lpc, sqerr, cep, order)
		return cep, nil
	case PQP:
		pqp := make([]float64, order)
		solver := a.RootSolver
		if solver == nil {
			solver = dsp.Bairstow{}
		}
		if _, err := solver.Solve(lpc, pqp, dsp.DefaultTermination()); err != nil {
			for i := range pqp {
				pqp[i] = 0
			}
		}
		return pqp, nil
	case Formant:
		pqp := make([]float64, order)
		solver := a.RootSolver
		if solver == nil {
			solver = dsp.Bairstow{}
		}
		if _, err := solver.Solve(lpc, pqp, dsp.DefaultTermination()); err != nil {
			for i := range pqp {
				pqp[i] = 0
			}
		}
		fb := make([]float64, order)
		for i := 0; i < order/2; i++ {
			freq, bw := dsp.PQToFormant(pqp[2*i], pqp[2*i+1], sampFreq)
			fb[2*i] = freq
			fb[2*i+1] = bw
		}
		return fb, nil
	case ARF:
		arf := make([]float64, order+1)
		if err := rfc2arf(rfc, arf, order); err != nil {
			// Unstable filter: report the identity (flat) area function.
			arf[order] = 1.0
			for i := 0; i < order; i++ {
				arf[i] = 1.0
			}
		}
		return arf, nil
	case LAR:
		lar := make([]float64, order)
		if err := rfc2lar(rfc, lar, order); err != nil {
			for i := range lar {
				lar[i] = 0.0
			}
		}
		return lar, nil
	default:
		return rfc, nil
	}
}

func rootMeanSquare(frame []float64) float64 {
	var sum float64
	for _, v := range frame {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(frame)))
}

// rawACF computes r[m] = sum_{n=0}^{N-m-1} s[n]*s[n+m] for m = 0..order,
// matching getACF.
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

// acfDefaultOrder mirrors DFLT_ORDER(sfr): sample rate in kHz plus 3.
func acfDefaultOrder(sampFreq float64) int {
	return int(math.Floor(sampFreq/1000.0 + 3.5))
}

// rfc2arf converts reflection coefficients to an area function,
// arf[order]=1 (normalized at the glottis), working outward to arf[0]
// at the lips, matching rfc2arf (lpc.c). Reports an error (unstable
// filter) when |rfc[i]| >= 1.
func rfc2arf(rfc, arf []float64, order int) error {
	arf[order] = 1.0
	for i, j := order, order-1; i > 0; i, j = i-1, j-1 {
		if math.Abs(rfc[j]) >= 1.0 {
			return errs.New(errs.KindData, errs.CodeErrRange, "rfc2arf: unstable filter")
		}
		arf[j] = arf[i] * (1.0 + rfc[j]) / (1.0 - rfc[j])
	}
	return nil
}

// rfc2lar converts reflection coefficients to log area ratios, matching
// rfc2lar (lpc.c).
func rfc2lar(rfc, lar []float64, order int) error {
	for i := order - 1; i >= 0; i-- {
		if math.Abs(rfc[i]) >= 1.0 {
			return errs.New(errs.KindData, errs.CodeErrRange, "rfc2lar: unstable filter")
		}
		lar[i] = math.Log((1.0 - rfc[i]) / (1.0 + rfc[i]))
	}
	return nil
}

// lpc2cep converts LP filter coefficients to cepstral coefficients via
// the Oppenheim recursion, matching lpc2cep (lpc.c). cep[0] is
// log(sqerr); a non-positive sqerr (Durbin's identity-filter fallback)
// yields a flat cepstrum instead of taking log of a non-positive value.
func lpc2cep(lpc []float64, sqerr float64, cep []float64, order int) {
	if sqerr <= 0 {
		for i := range cep {
			cep[i] = 0
		}
		return
	}
	cep[0] = math.Log(sqerr)
	if order < 1 {
		return
	}
	cep[1] = -lpc[1]
	for i := 2; i <= order; i++ {
		sum := lpc[i] * float64(i)
		for j, k := 1, i-1; j < i; j, k = j+1, k-1 {
			sum += lpc[j] * cep[k] * float64(k)
		}
		cep[i] = -sum / float64(i)
	}
}
