/*
NAME
  checksound.go

DESCRIPTION
  checksound.go ports the per-format capability check performed by
  auCaps/checkSound: before an analysis runs, it verifies the SDO's
  audio field descriptor
  carries a DataFormat/DataCoding/channel-count combination the
  analysis actually supports, rather than discovering the mismatch
  mid-computation.

AUTHOR
  Michel T.M. Scheffers (original auCaps/checkSound, aucheck.c); Go
  port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package analysis

import (
	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

// Capabilities declares what an analysis module can consume: the
// DataFormats and DataCodings it accepts, and its minimum/maximum
// channel count (MaxChannels == 0 means unlimited).
type Capabilities struct {
	Formats     []sdo.DataFormat
	Codings     []sdo.DataCoding
	MinChannels int
	MaxChannels int
}

// CheckSound validates d's audio field descriptor against caps,
// matching checkSound's pre-flight rejection of unsupported sample
// formats/codings/channel counts.
func CheckSound(d *sdo.SDO, caps Capabilities) error {
	fd := d.FindFieldDescriptor(sdo.DataTypeSample, "")
	if fd == nil {
		return errs.New(errs.KindFile, errs.CodeNoAudio, "CheckSound: SDO has no audio field")
	}
	if !containsFormat(caps.Formats, fd.Format) {
		return errs.New(errs.KindData, errs.CodeErrRange, "CheckSound: unsupported sample format").
			WithAppl("format=%v", fd.Format)
	}
	if !containsCoding(caps.Codings, fd.Coding) {
		return errs.New(errs.KindData, errs.CodeErrRange, "CheckSound: unsupported sample coding").
			WithAppl("coding=%v", fd.Coding)
	}
	ch := fd.NumFields
	if caps.MinChannels > 0 && ch < caps.MinChannels {
		return errs.New(errs.KindData, errs.CodeErrRange, "CheckSound: too few channels").
			WithAppl("channels=%d min=%d", ch, caps.MinChannels)
	}
	if caps.MaxChannels > 0 && ch > caps.MaxChannels {
		return errs.New(errs.KindData, errs.CodeErrRange, "CheckSound: too many channels").
			WithAppl("channels=%d max=%d", ch, caps.MaxChannels)
	}
	return nil
}

func containsFormat(fs []sdo.DataFormat, f sdo.DataFormat) bool {
	for _, x := range fs {
		if x == f {
			return true
		}
	}
	return false
}

func containsCoding(cs []sdo.DataCoding, c sdo.DataCoding) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

// MonoOrAnyChannel is the capability set shared by most of this
// rewrite's time-domain analyses: linear PCM in any integer width, plus
// normalized float, with no hard channel-count ceiling.
func MonoOrAnyChannel() Capabilities {
	return Capabilities{
		Formats: []sdo.DataFormat{
			sdo.DataFormatInt8, sdo.DataFormatUint8,
			sdo.DataFormatInt16, sdo.DataFormatUint16,
			sdo.DataFormatInt24, sdo.DataFormatUint24,
			sdo.DataFormatInt32, sdo.DataFormatUint32,
			sdo.DataFormatReal32, sdo.DataFormatReal64,
		},
		Codings: []sdo.DataCoding{
			sdo.DataCodingLinear, sdo.DataCodingBinaryOffset, sdo.DataCodingNormalizedFloat,
		},
		MinChannels: 1,
	}
}
