/*
NAME
  timing.go

DESCRIPTION
  timing.go ports anaTiming: it converts an Options' millisecond-based
  timing parameters into absolute sample counts, clipped to the SDO's
  available data range.
  Centre-time ("event") analysis forces a frame shift of one sample and
  produces a single frame centred on CentreTime; bandwidth-driven
  framing overrides MsSize, and UseEffective scales MsSize by the
  window's ENBW. An
  empty resulting interval is reported as a warning, not an error,
  matching AWD_NO_DATA.

AUTHOR
  Michel T.M. Scheffers (original anaTiming, asspana.c); Go port for
  goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package analysis

import (
	"math"

	"github.com/ipds-kiel/goassp/dsp"
	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

// Timing holds the absolute, sample-based results of resolving an
// Options' millisecond parameters against an SDO's available data.
// BegSample/EndSample bound the run of frame starts: frame i's first
// sample is BegSample + i*FrameShift for i in [0, NumFrames).
type Timing struct {
	FrameShift int64 // samples between successive frame starts
	FrameSize  int64 // samples per analysis frame
	SmoothSize int64 // samples per smoothing window, 0 if unused
	BegSample  int64 // first sample of the first frame
	EndSample  int64 // first sample of the last frame
}

// NumFrames returns the number of frames the timing covers.
func (t Timing) NumFrames() int64 {
	if t.EndSample < t.BegSample || t.FrameShift <= 0 {
		return 0
	}
	return (t.EndSample-t.BegSample)/t.FrameShift + 1
}

// FrameStart returns the first sample of frame i (0-based).
func (t Timing) FrameStart(i int64) int64 {
	return t.BegSample + i*t.FrameShift
}

// AnaTiming resolves opts against d's available sample range, matching
// anaTiming's msSize/msShift/msSmooth -> frame conversion. It returns
// errs.WarnNoData (not a hard error) when the requested interval and
// the available data don't overlap.
func AnaTiming(d *sdo.SDO, opts Options) (Timing, error) {
	if d.SampFreq <= 0 {
		return Timing{}, errs.New(errs.KindBug, errs.CodeErrRange, "AnaTiming: SDO has no sample rate")
	}
	sf := d.SampFreq

	startRec, numRecs := d.StartRecord, d.NumRecords
	if d.Backing == sdo.BackingMemory {
		startRec, numRecs = d.BufStartRec, d.BufNumRecs
	}
	if numRecs <= 0 {
		return Timing{}, errs.New(errs.KindFile, errs.CodeNoAudio, "AnaTiming: SDO has no data")
	}
	availBeg := startRec
	availEnd := startRec + numRecs // one past the last available sample

	frameSize, err := resolveFrameSize(opts, sf)
	if err != nil {
		return Timing{}, err
	}

	var frameShift int64
	if opts.UseCentreTime {
		frameShift = 1
	} else {
		frameShift = int64(math.Round(opts.MsShift * sf / 1000.0))
		if frameShift < 1 {
			frameShift = 1
		}
	}

	var smoothSize int64
	if opts.MsSmooth > 0 {
		smoothSize = int64(math.Round(opts.MsSmooth * sf / 1000.0))
		if smoothSize < 1 {
			smoothSize = 1
		}
	}

	var begSample, endSample int64
	if opts.UseCentreTime {
		centre := int64(math.Round(opts.CentreTime * sf))
		begSample = centre - frameSize/2
		endSample = begSample
	} else {
		rangeBeg := availBeg
		if opts.BeginTime > 0 {
			if r := int64(math.Round(opts.BeginTime * sf)); r > rangeBeg {
				rangeBeg = r
			}
		}
		rangeEnd := availEnd
		if opts.EndTime > 0 {
			if r := int64(math.Round(opts.EndTime * sf)); r < rangeEnd {
				rangeEnd = r
			}
		}
		begSample = rangeBeg
		lastStart := rangeEnd - frameSize
		if lastStart < begSample {
			endSample = begSample - frameShift // forces NumFrames() == 0 below
		} else {
			n := (lastStart - begSample) / frameShift
			endSample = begSample + n*frameShift
		}
	}

	t := Timing{
		FrameShift: frameShift,
		FrameSize:  frameSize,
		SmoothSize: smoothSize,
		BegSample:  begSample,
		EndSample:  endSample,
	}

	// Clip to data actually available, matching anaTiming's rejection of
	// frames that would read outside the SDO's buffered/file range.
	for t.NumFrames() > 0 && (t.FrameStart(0) < availBeg || t.FrameStart(0)+frameSize > availEnd) {
		t.BegSample += frameShift
	}
	for t.NumFrames() > 0 {
		last := t.NumFrames() - 1
		if t.FrameStart(last) >= availBeg && t.FrameStart(last)+frameSize <= availEnd {
			break
		}
		t.EndSample -= frameShift
	}

	if t.NumFrames() <= 0 {
		return t, errs.New(errs.KindFile, errs.WarnNoData, "AnaTiming: no frames fit requested range and available data")
	}
	return t, nil
}

// resolveFrameSize applies the AOPT_USE_ENBW/AOPT_EFFECTIVE overrides to
// MsSize, matching anaTiming's frame-size derivation.
func resolveFrameSize(opts Options, sf float64) (int64, error) {
	var frameSize int64
	switch {
	case opts.Bandwidth > 0:
		frameSize = int64(math.Round(2.0 * sf / opts.Bandwidth))
	case opts.UseEffective:
		_, meta, err := dsp.Coefficients(opts.WindowFunc, 2, nil, opts.WindowParam)
		if err != nil {
			return 0, err
		}
		enbw := meta.ENBW
		if enbw <= 0 {
			enbw = 1.0
		}
		frameSize = int64(math.Round(opts.MsSize * sf / 1000.0 * enbw))
	default:
		frameSize = int64(math.Round(opts.MsSize * sf / 1000.0))
	}
	if frameSize < 1 {
		frameSize = 1
	}
	return frameSize, nil
}
