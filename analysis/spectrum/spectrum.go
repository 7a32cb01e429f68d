/*
NAME
  spectrum.go

DESCRIPTION
  spectrum.go implements short-term (smoothed) spectral analysis,
  grounded on the SPECT_GD analysis parameters (SPECT_DEF_RES,
  LPS_DEF_*, CSS_DFLT_LAGS), with spectra computed as complex bins
  through the shared dsp.RFFT wrapper. Six output types share one
  frame loop: DFT magnitude/power/phase read straight off the
  windowed frame's spectrum; LP-smoothed evaluates the filter transfer
  function |gain/A(f)| from a per-frame Durbin analysis (the same
  autocorrelation/Durbin step as analysis/lp); cepstrum and
  cepstrally-smoothed spectra both start from the inverse transform of
  the log-magnitude spectrum (the real cepstrum), the latter
  re-transforming a liftered (truncated) cepstrum back to a smoothed
  log-magnitude spectrum.

AUTHOR
  Michel T.M. Scheffers (original SPECT_GD/getFTSpectrum/getLPSpectrum/
  getCepstrum design, spectra.h); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package spectrum implements short-term DFT, LP-smoothed, cepstrally
// smoothed and cepstrum spectral analysis.
package spectrum

import (
	"math"

	"github.com/ipds-kiel/goassp/analysis"
	"github.com/ipds-kiel/goassp/dsp"
	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

// Output selects which spectral representation Compute stores.
type Output int

const (
	Magnitude Output = iota
	Power
	Phase
	LPSmoothed
	CepstrallySmoothed
	Cepstrum
)

// tinyPdB is the floor applied to dB amplitude outputs to avoid log(0),
// matching TINYPdB in the reference library.
const tinyPdB = -3000.0

const defaultResolution = 40.0 // SPECT_DEF_RES, Hz

// Analysis implements analysis.Analysis for spectral analysis.
type Analysis struct {
	Output Output
	// Linear reports Magnitude/Power on a linear scale instead of dB.
	Linear bool
	// Resolution is the worst-case spectral resolution in Hz. SetDefaults
	// copies it into Options.Bandwidth (which then sets the frame size and
	// FFT length) only when neither Bandwidth nor MsSize is set. Ignored
	// for LPSmoothed, whose frame size comes from MsSize.
	Resolution float64
	Generator  dsp.Generator
}

func (Analysis) Name() string { return "spectrum" }

func (a Analysis) SetDefaults(opts *analysis.Options) {
	if opts.WindowFunc == "" {
		opts.WindowFunc = dsp.Blackman
	}
	if opts.MsShift == 0 {
		opts.MsShift = 5.0
	}
	if opts.Channel < 1 {
		opts.Channel = 1
	}
	switch a.Output {
	case LPSmoothed:
		if opts.MsSize == 0 {
			opts.MsSize = 20.0
			opts.UseEffective = true
		}
		if opts.PreEmphasis == 0 {
			opts.PreEmphasis = -0.95
		}
	default:
		// DFT-family and cepstral analyses size their frame by spectral
		// resolution rather than a fixed ms size, matching DFT_DEF_SIZE/
		// CSS_DEF_SIZE/CEP_DEF_SIZE == 0 (window size defined by FFT
		// length/resolution) in spectra.h.
		if opts.Bandwidth == 0 && opts.MsSize == 0 {
			res := a.Resolution
			if res <= 0 {
				res = defaultResolution
			}
			opts.Bandwidth = res
		}
	}
}

func (Analysis) Capabilities() analysis.Capabilities {
	return analysis.MonoOrAnyChannel()
}

// nextPow2 returns the smallest power of two >= n (at least 1).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

func fftLenFor(t analysis.Timing, opts analysis.Options, sampFreq float64) int {
	if opts.FFTLen > 0 {
		return nextPow2(opts.FFTLen)
	}
	res := opts.Bandwidth
	if res <= 0 {
		res = defaultResolution
	}
	need := int(math.Ceil(sampFreq / res))
	if int(t.FrameSize) > need {
		need = int(t.FrameSize)
	}
	return nextPow2(need)
}

// cssDefaultLags mirrors CSS_DFLT_LAGS(sfr): sample rate divided by 800.
func cssDefaultLags(sampFreq float64) int {
	n := int(math.Floor(sampFreq / 800.0))
	if n < 1 {
		n = 1
	}
	return n
}

func (a Analysis) Create(audio *sdo.SDO, t analysis.Timing, opts analysis.Options) (*sdo.SDO, error) {
	result := analysis.NewResultSDO(audio, t)
	fftLen := fftLenFor(t, opts, audio.SampFreq)
	numBins := fftLen/2 + 1

	switch a.Output {
	case Magnitude:
		analysis.AddReal32Field(result, "dft", sdo.DataTypeFTAmp, numBins)
	case Power:
		analysis.AddReal32Field(result, "dft", sdo.DataTypeFTPow, numBins)
	case Phase:
		analysis.AddReal32Field(result, "dft", sdo.DataTypeFTPhi, numBins)
	case LPSmoothed:
		analysis.AddReal32Field(result, "lps", sdo.DataTypeFTLPS, numBins)
	case CepstrallySmoothed:
		analysis.AddReal32Field(result, "css", sdo.DataTypeFTCSS, numBins)
	case Cepstrum:
		order := opts.Order
		if order < 1 {
			order = cssDefaultLags(audio.SampFreq)
		}
		analysis.AddReal32Field(result, "cep", sdo.DataTypeFTCep, order+1)
	default:
		return nil, errs.New(errs.KindBug, errs.CodeBadArgs, "spectrum: unknown Output")
	}
	if err := analysis.AllocResultBuffer(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (a Analysis) Compute(audio, result *sdo.SDO, t analysis.Timing, opts analysis.Options) error {
	fd := result.FieldDescriptors()[0]
	fftLen := fftLenFor(t, opts, audio.SampFreq)

	framer, err := analysis.NewFramer(audio, t, opts, a.Generator)
	if err != nil {
		return err
	}
	frame := make([]float64, t.FrameSize)

	for i := int64(0); i < t.NumFrames(); i++ {
		if err := framer.Frame(i, frame); err != nil {
			return err
		}

		var vals []float64
		switch a.Output {
		case Magnitude:
			vals, err = a.dftAmplitude(frame, fftLen, false)
		case Power:
			vals, err = a.dftAmplitude(frame, fftLen, true)
		case Phase:
			vals, err = dftPhase(frame, fftLen)
		case LPSmoothed:
			vals, err = lpSmoothedSpectrum(frame, fftLen, opts.Order, audio.SampFreq)
		case CepstrallySmoothed:
			vals, err = cepstrallySmoothedSpectrum(frame, fftLen, cssDefaultLags(audio.SampFreq))
		case Cepstrum:
			order := opts.Order
			if order < 1 {
				order = cssDefaultLags(audio.SampFreq)
			}
			vals, err = cepstrum(frame, fftLen, order)
		}
		if err != nil {
			return err
		}
		if err := analysis.PutReal32Record(result, i, fd, vals); err != nil {
			return err
		}
	}
	return nil
}

func (a Analysis) dftAmplitude(frame []float64, fftLen int, power bool) ([]float64, error) {
	X, err := dsp.RFFT(frame, fftLen)
	if err != nil {
		return nil, err
	}
	mag := dsp.Magnitude(X)
	out := make([]float64, len(mag))
	for i, m := range mag {
		v := m
		if power {
			v = m * m
		}
		if a.Linear {
			out[i] = v
			continue
		}
		out[i] = amplitudeDB(v, power)
	}
	return out, nil
}

func dftPhase(frame []float64, fftLen int) ([]float64, error) {
	X, err := dsp.RFFT(frame, fftLen)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(X))
	for i, c := range X {
		out[i] = math.Atan2(imag(c), real(c))
	}
	return out, nil
}

// amplitudeDB converts a linear magnitude or power value to dB,
// flooring at tinyPdB to avoid log(0), matching TINYPdB in the
// reference library.
func amplitudeDB(v float64, power bool) float64 {
	if v <= 0 {
		return tinyPdB
	}
	if power {
		return 10.0 * math.Log10(v)
	}
	return 20.0 * math.Log10(v)
}

// lpSmoothedSpectrum evaluates |gain / A(f)| on the unit circle via the
// FFT of the LP coefficients, matching getLPSpectrum's use of the
// Durbin residual as filter gain.
func lpSmoothedSpectrum(frame []float64, fftLen, order int, sampFreq float64) ([]float64, error) {
	if order < 1 {
		order = int(math.Floor(sampFreq/1000.0 + 3.5))
	}
	if order+1 >= len(frame) {
		order = len(frame) - 2
	}
	acf := make([]float64, order+1)
	rawACF(frame, acf, order)
	lpc, _, sqerr, _ := dsp.Durbin(acf, order)

	A, err := dsp.RFFT(lpc, fftLen)
	if err != nil {
		return nil, err
	}
	gain := math.Sqrt(math.Max(sqerr, 0))
	out := make([]float64, len(A))
	for i, a := range A {
		denom := math.Hypot(real(a), imag(a))
		if denom <= 0 {
			out[i] = tinyPdB
			continue
		}
		out[i] = amplitudeDB(gain/denom, false)
	}
	return out, nil
}

// cepstrum computes the real cepstrum (inverse FFT of the log-magnitude
// spectrum) and returns its first order+1 coefficients.
func cepstrum(frame []float64, fftLen, order int) ([]float64, error) {
	X, err := dsp.FFT(frame, fftLen)
	if err != nil {
		return nil, err
	}
	logMag := make([]complex128, len(X))
	for i, c := range X {
		m := math.Hypot(real(c), imag(c))
		if m <= 0 {
			m = math.Pow(10, tinyPdB/20.0)
		}
		logMag[i] = complex(math.Log(m), 0)
	}
	c := dsp.IFFT(logMag)
	out := make([]float64, order+1)
	for i := 0; i <= order && i < len(c); i++ {
		out[i] = real(c[i])
	}
	return out, nil
}

// cepstrallySmoothedSpectrum lifters the cepstrum to lags coefficients
// and transforms it back to a smoothed log-magnitude spectrum.
func cepstrallySmoothedSpectrum(frame []float64, fftLen, lags int) ([]float64, error) {
	X, err := dsp.FFT(frame, fftLen)
	if err != nil {
		return nil, err
	}
	logMag := make([]complex128, len(X))
	for i, c := range X {
		m := math.Hypot(real(c), imag(c))
		if m <= 0 {
			m = math.Pow(10, tinyPdB/20.0)
		}
		logMag[i] = complex(math.Log(m), 0)
	}
	cep := dsp.IFFT(logMag)
	liftered := make([]complex128, len(cep))
	n := len(cep)
	for i := 0; i <= lags && i < n; i++ {
		liftered[i] = cep[i]
		if i > 0 {
			j := n - i
			if j < n {
				liftered[j] = cep[j]
			}
		}
	}
	// The liftered cepstrum is real and symmetric, so its forward
	// transform equals n times its (1/n-normalized) inverse transform.
	smoothed := dsp.IFFT(liftered)
	numBins := fftLen/2 + 1
	out := make([]float64, numBins)
	for i := 0; i < numBins; i++ {
		out[i] = real(smoothed[i]) * float64(n) * 20.0 / math.Ln10
	}
	return out, nil
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
