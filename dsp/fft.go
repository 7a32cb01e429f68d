/*
NAME
  fft.go

DESCRIPTION
  fft.go wraps the complex FFT the spectral analyses in this module
  build on, built on `go-dsp/fft`. Spectra are returned as complex
  bins, not in a packed real array layout.

AUTHOR
  David Sutton <davidsutton@ausocean.org> (original `fastConvolve`
  usage of go-dsp/fft); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package dsp provides the shared numeric building blocks the
// analysis modules compose: FFT, window generation, the Durbin
// recursion, and quadratic-factor root solving.
package dsp

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/ipds-kiel/goassp/errs"
)

// FFT returns the discrete Fourier transform of real-valued x, zero-
// padded to the next value n >= len(x) the caller chooses (callers
// typically round n up to a power of two for speed; go-dsp's FFT
// handles arbitrary lengths via Bluestein's algorithm when it isn't).
func FFT(x []float64, n int) ([]complex128, error) {
	if n < len(x) {
		return nil, errs.New(errs.KindBug, errs.CodeBadArgs, "FFT length shorter than input")
	}
	padded := make([]float64, n)
	copy(padded, x)
	return fft.FFTReal(padded), nil
}

// RFFT returns only the non-redundant half of a real-input FFT
// (bins 0..n/2 inclusive) as complex values: real signals have a
// conjugate-symmetric spectrum, so the upper half carries no
// information. It does not pack the coefficients into a real array and
// applies no length normalization.
func RFFT(x []float64, n int) ([]complex128, error) {
	full, err := FFT(x, n)
	if err != nil {
		return nil, err
	}
	return full[:n/2+1], nil
}

// IFFT returns the inverse discrete Fourier transform of X, matching
// go-dsp's IFFT (the teacher's own "iy := fft.IFFT(y_fft)" usage).
func IFFT(X []complex128) []complex128 {
	return fft.IFFT(X)
}

// Magnitude returns |X[i]| for every bin, the common first step before
// converting to dB or power spectra.
func Magnitude(X []complex128) []float64 {
	out := make([]float64, len(X))
	for i, c := range X {
		out[i] = math.Hypot(real(c), imag(c))
	}
	return out
}
