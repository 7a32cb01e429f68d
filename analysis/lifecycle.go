/*
NAME
  lifecycle.go

DESCRIPTION
  lifecycle.go defines the Analysis interface and Run, the shared
  driver loop every analysis module (acf, rms, zcr, diff, lp, spectrum)
  plugs into, matching the setDefaults/create/compute lifecycle
  asspana.c/asspana.h impose on each of the reference library's AF_*
  analyses: defaults are applied, capabilities are checked up front,
  the result SDO's field descriptors and timing are established, and
  only then does the per-frame compute loop run.

AUTHOR
  Michel T.M. Scheffers (original setDefaults/create/compute lifecycle,
  asspana.c/asspana.h); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package analysis

import "github.com/ipds-kiel/goassp/sdo"

// Analysis is the capability set one analysis module supplies to Run.
type Analysis interface {
	// Name identifies the analysis for error messages (e.g. "rms", "acf").
	Name() string

	// SetDefaults fills in analysis-specific fields opts doesn't already
	// carry a non-zero value for (e.g. lp's default PreEmphasis).
	SetDefaults(opts *Options)

	// Capabilities declares the audio formats/codings/channel counts
	// this analysis accepts.
	Capabilities() Capabilities

	// Create allocates and returns the result SDO (field descriptors,
	// SampFreq/DataRate, RecordSize all set) for the timing t resolved
	// from opts against audio.
	Create(audio *sdo.SDO, t Timing, opts Options) (*sdo.SDO, error)

	// Compute runs the per-frame analysis, writing NumFrames(t) records
	// into result's buffer.
	Compute(audio, result *sdo.SDO, t Timing, opts Options) error
}

// Run applies a's defaults, validates audio against a's capabilities,
// resolves timing, creates the result SDO and runs the compute pass,
// covering in one call what the reference library splits into
// setDefaults/create and the per-analysis compute entry points (e.g.
// computeRMS, computeACF).
func Run(a Analysis, audio *sdo.SDO, opts Options) (*sdo.SDO, error) {
	a.SetDefaults(&opts)

	if err := CheckSound(audio, a.Capabilities()); err != nil {
		return nil, err
	}

	t, err := AnaTiming(audio, opts)
	if err != nil {
		return nil, err
	}

	result, err := a.Create(audio, t, opts)
	if err != nil {
		return nil, err
	}

	if err := a.Compute(audio, result, t, opts); err != nil {
		return nil, err
	}
	return result, nil
}
