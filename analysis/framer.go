/*
NAME
  framer.go

DESCRIPTION
  framer.go wraps sdo.GetSampleFrame with the preprocessing chain every
  time-domain analysis applies before computing on a frame: optional DC
  removal (mean subtraction over the frame, the generic "DC removal"
  preprocessing step), pre-emphasis (matching rfc.c's
  preEmphasis(dPtr, gd->preEmph, frame[0], frameSize) call, which reads
  one extra leading sample of context), and windowing via dsp.Coefficients.
  preEmph's valid range, -1.0 to 1.0 exclusive, matches rfc.c's
  documented range check on aoPtr->preEmph.

AUTHOR
  Michel T.M. Scheffers (original preEmphasis/frame handling, rfc.c);
  Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package analysis

import (
	"github.com/ipds-kiel/goassp/dsp"
	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

// Framer reads successive preprocessed frames from d according to t and
// opts, reusing its internal buffers across calls.
type Framer struct {
	d    *sdo.SDO
	t    Timing
	opts Options
	gen  dsp.Generator

	raw     []float64 // head + FrameSize samples: 1 leading context sample + the frame
	win     []float64
	winMeta dsp.Metadata
}

// NewFramer validates opts.PreEmphasis and precomputes the window
// coefficients, returning a Framer ready to iterate t.NumFrames() frames.
func NewFramer(d *sdo.SDO, t Timing, opts Options, gen dsp.Generator) (*Framer, error) {
	if opts.PreEmphasis <= -1.0 || opts.PreEmphasis >= 1.0 {
		return nil, errs.New(errs.KindBug, errs.CodeErrRange, "pre-emphasis coefficient out of range (-1,1)").
			WithAppl("preEmph=%v", opts.PreEmphasis)
	}
	win, meta, err := dsp.Coefficients(opts.WindowFunc, int(t.FrameSize), gen, opts.WindowParam)
	if err != nil {
		return nil, err
	}
	return &Framer{
		d:       d,
		t:       t,
		opts:    opts,
		gen:     gen,
		raw:     make([]float64, 1+t.FrameSize),
		win:     win,
		winMeta: meta,
	}, nil
}

// WindowMetadata returns the metadata of the window in use, useful for
// ENBW-based amplitude corrections downstream.
func (fr *Framer) WindowMetadata() dsp.Metadata { return fr.winMeta }

// Frame fills dest (length FrameSize()) with frame i's preprocessed
// samples: DC-removed (if requested), pre-emphasized (if PreEmphasis
// != 0), and windowed.
func (fr *Framer) Frame(i int64, dest []float64) error {
	n := fr.t.FrameSize
	if int64(len(dest)) != n {
		return errs.New(errs.KindBug, errs.CodeBufSpace, "dest length does not match frame size").
			WithAppl("got=%d want=%d", len(dest), n)
	}
	frameNr := fr.t.FrameStart(i) // with head=1 below, raw[0] is the sample before the frame
	if err := fr.d.GetSampleFrame(frameNr, n, 1, 1, 0, fr.opts.Channel, fr.raw); err != nil {
		return err
	}

	head := fr.raw[0]
	copy(dest, fr.raw[1:])

	if fr.opts.RemoveDC {
		removeDC(dest)
	}
	if fr.opts.PreEmphasis != 0 {
		preEmphasize(dest, fr.opts.PreEmphasis, head)
	}
	for j := range dest {
		dest[j] *= fr.win[j]
	}
	return nil
}

// FrameSize returns the number of samples NewFramer's frames carry.
func (fr *Framer) FrameSize() int64 { return fr.t.FrameSize }

// removeDC subtracts the frame's mean from every sample.
func removeDC(frame []float64) {
	var sum float64
	for _, v := range frame {
		sum += v
	}
	mean := sum / float64(len(frame))
	for i := range frame {
		frame[i] -= mean
	}
}

// preEmphasize applies y[n] = x[n] - coeff*x[n-1] in place, using head
// as x[-1] for the first sample, matching preEmphasis's contract of
// needing one leading context sample.
func preEmphasize(frame []float64, coeff, head float64) {
	prev := head
	for i, v := range frame {
		frame[i] = v - coeff*prev
		prev = v
	}
}
