/*
NAME
  window.go

DESCRIPTION
  window.go generates the analysis window shapes this package names
  (rectangular, triangular, Hann, Hamming, Blackman are closed-form and
  generated directly; Blackman-Harris, Nuttall, Gaussian, Kaiser and
  Kaiser-Bessel-Derived are out of scope as formulas and are delegated
  to a caller-supplied WindowGenerator), each annotated with the
  spectral metadata (coherent/incoherent gain, ENBW, side-lobe level)
  required for "effective length" framing.

AUTHOR
  David Sutton <davidsutton@ausocean.org> (original `window.FlatTop`
  usage in `codec/pcm/filters.go`); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dsp

import (
	"github.com/mjibson/go-dsp/window"

	"github.com/ipds-kiel/goassp/errs"
)

// Shape names an analysis window. Five of these (Rectangular through
// Blackman) are closed-form and generated directly; the rest require a
// WindowGenerator collaborator.
type Shape string

const (
	Rectangular    Shape = "rectangular"
	Triangular     Shape = "triangular"
	Hann           Shape = "Hann"
	Hamming        Shape = "Hamming"
	Blackman       Shape = "Blackman"
	BlackmanHarris Shape = "Blackman-Harris"
	Nuttall        Shape = "Nuttall"
	Gaussian       Shape = "Gaussian"
	Kaiser         Shape = "Kaiser"
	KBD            Shape = "Kaiser-Bessel-Derived"
)

// Metadata carries the per-shape spectral figures: highest side-lobe
// level, side-lobe roll-off, coherent and incoherent
// gain, -3 dB and -6 dB bandwidths, ENBW, and main-lobe bandwidth. The
// bandwidths and ENBW are in bins of length-N DFT resolution, the gains
// are amplitude ratios, and the side-lobe figures are in dB.
type Metadata struct {
	HighestSideLobeDB float64
	RollOffDBPerOct   float64
	CoherentGain      float64
	IncoherentGain    float64
	Bandwidth3dB      float64
	ENBW              float64
	Bandwidth6dB      float64
	MainLobeBandwidth float64
}

// closedForm holds the textbook figures for the five shapes this
// package generates without a collaborator (Harris 1978, "On the Use
// of Windows for Harmonic Analysis with the Discrete Fourier
// Transform").
var closedForm = map[Shape]Metadata{
	Rectangular: {HighestSideLobeDB: -13.3, RollOffDBPerOct: -6, CoherentGain: 1.0, IncoherentGain: 1.0, Bandwidth3dB: 0.89, ENBW: 1.00, Bandwidth6dB: 1.21, MainLobeBandwidth: 2},
	Triangular:  {HighestSideLobeDB: -26.5, RollOffDBPerOct: -12, CoherentGain: 0.5, IncoherentGain: 0.577, Bandwidth3dB: 1.28, ENBW: 1.33, Bandwidth6dB: 1.78, MainLobeBandwidth: 4},
	Hann:        {HighestSideLobeDB: -31.5, RollOffDBPerOct: -18, CoherentGain: 0.5, IncoherentGain: 0.612, Bandwidth3dB: 1.44, ENBW: 1.50, Bandwidth6dB: 2.00, MainLobeBandwidth: 4},
	Hamming:     {HighestSideLobeDB: -42.7, RollOffDBPerOct: -6, CoherentGain: 0.54, IncoherentGain: 0.630, Bandwidth3dB: 1.30, ENBW: 1.36, Bandwidth6dB: 1.81, MainLobeBandwidth: 4},
	Blackman:    {HighestSideLobeDB: -58.1, RollOffDBPerOct: -18, CoherentGain: 0.42, IncoherentGain: 0.552, Bandwidth3dB: 1.64, ENBW: 1.73, Bandwidth6dB: 2.35, MainLobeBandwidth: 6},
}

// Generator produces the coefficients (and, where it can, the spectral
// metadata) for a window shape this package does not implement itself
// (Blackman-Harris, Nuttall, Gaussian, Kaiser, KBD): these formulas
// are an external collaborator's responsibility.
type Generator interface {
	Generate(shape Shape, n int, param float64) ([]float64, Metadata, error)
}

// Coefficients returns the n-point window for shape. Closed-form
// shapes are generated directly via go-dsp/window; the rest require a
// non-nil gen, and param carries the shape-specific parameter (Kaiser
// beta, Gaussian alpha) gen needs.
func Coefficients(shape Shape, n int, gen Generator, param float64) ([]float64, Metadata, error) {
	if n <= 0 {
		return nil, Metadata{}, errs.New(errs.KindData, errs.CodeBadArgs, "window length must be positive")
	}
	switch shape {
	case Rectangular:
		return window.Rectangular(n), closedForm[shape], nil
	case Triangular:
		return window.Bartlett(n), closedForm[shape], nil
	case Hann:
		return window.Hann(n), closedForm[shape], nil
	case Hamming:
		return window.Hamming(n), closedForm[shape], nil
	case Blackman:
		return window.Blackman(n), closedForm[shape], nil
	}
	if gen == nil {
		return nil, Metadata{}, errs.New(errs.KindData, errs.CodeNoHandle, "window shape requires a Generator").
			WithAppl("shape=%s", shape)
	}
	return gen.Generate(shape, n, param)
}

// CoherentGain returns the mean of the window coefficients; used to
// correct RMS/gain outputs for the energy the chosen window removes.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	var sum float64
	for _, c := range coeffs {
		sum += c
	}
	return sum / float64(len(coeffs))
}
