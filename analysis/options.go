/*
NAME
  options.go

DESCRIPTION
  options.go declares Options, the analysis-option vocabulary shared by
  every analysis module, matching AOPTS trimmed to the parameters this
  package's analyses actually expose. setDefaults
  implementations per analysis (rms, zcr, acf, lp, spectrum) start from
  Defaults() and override analysis-specific fields.

AUTHOR
  Michel T.M. Scheffers (original AOPTS, asspana.h); Go port for
  goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package analysis implements the shared analysis lifecycle
// (setDefaults/create/compute) and timing/framing/capability helpers
// every analysis module (acf, rms, zcr, diff, lp, spectrum) builds on.
// There is no verify step: options cannot be re-checked against an
// existing result between Create and Compute.
package analysis

import "github.com/ipds-kiel/goassp/dsp"

// Options carries the millisecond-based timing parameters and DSP
// choices common to every analysis, matching AOPTS's frame-timing and
// preprocessing fields.
type Options struct {
	// Frame timing, in milliseconds unless noted.
	MsSize   float64
	MsShift  float64
	MsSmooth float64

	// UseEffective reinterprets MsSize as an "effective length": the
	// true frame length is MsSize multiplied by the chosen window's ENBW.
	UseEffective bool

	// UseCentreTime switches to single-frame "event" analysis: exactly
	// one output record centred on CentreTime, frame shift forced to 1
	// sample.
	UseCentreTime bool
	CentreTime    float64

	// BeginTime/EndTime bound the analysis range; <= 0 means "from the
	// start of available data" / "to the end", respectively.
	BeginTime float64
	EndTime   float64

	// Windowing.
	WindowFunc  dsp.Shape
	WindowParam float64 // Kaiser beta / Gaussian alpha, if WindowFunc needs one

	// Preprocessing.
	PreEmphasis float64 // in (-1, 1); 0 disables
	RemoveDC    bool

	// Order is the prediction/autocorrelation order (acf, lp); ignored
	// by analyses that don't use it.
	Order int

	// Channel selects a single channel (1-based) from multi-channel
	// audio. rms and zcr write one output field per channel when Channel
	// is below 1 at Create time; their SetDefaults replace 0 with 1, so
	// that mode takes a negative value. acf, lp and spectrum always
	// analyse a single channel.
	Channel int

	// Bandwidth/FFTLen support AOPT_USE_ENBW framing: when Bandwidth >
	// 0, frame size is derived from it instead of MsSize.
	Bandwidth float64
	FFTLen    int
}

// Defaults returns the conservative defaults this rewrite's analyses
// start from (20 ms frame, 10 ms shift, Hamming window, no
// pre-emphasis, whole-signal range), matching setDefaults's baseline
// behavior across the reference library's analysis modules.
func Defaults() Options {
	return Options{
		MsSize:     20.0,
		MsShift:    10.0,
		WindowFunc: dsp.Hamming,
		Channel:    1,
	}
}
