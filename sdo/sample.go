/*
NAME
  sample.go

DESCRIPTION
  sample.go implements GetSampleFrame and GetSamplePointer, the
  primitives every analysis frames audio through. Samples outside
  [0, NumRecords) are zero-filled; the buffer is transparently
  refilled via the SDO's Refill hook (installed by the fileio layer)
  when the request falls outside the buffered range.

AUTHOR
  Michel T.M. Scheffers (original); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sdo

import (
	"math"

	"github.com/ipds-kiel/goassp/codec/g711"
	"github.com/ipds-kiel/goassp/codec/ieeeext"
	"github.com/ipds-kiel/goassp/codec/linear"
	"github.com/ipds-kiel/goassp/errs"
)

func asFloat32(u uint32) float32 { return math.Float32frombits(u) }
func asFloat64(u uint64) float64 { return math.Float64frombits(u) }

// Refill is installed by the fileio layer (via SDO.SetRefill) so that
// GetSampleFrame can pull more records from disk on demand; it must
// load at least numRecords records starting at startRecord into the
// SDO's buffer (growing it first if necessary) and update
// BufStartRec/BufNumRecs accordingly.
type Refill func(sdo *SDO, startRecord, numRecords int64) error

// SetRefill installs the buffer-fill callback used by GetSampleFrame.
func (d *SDO) SetRefill(fn Refill) { d.refill = fn }

// GetSampleFrame fills dest with head+frameSize+tail samples of the
// selected channel, decoded to float64, for the frame starting at the
// absolute sample index frameNr*frameShift - head. Samples before
// record 0 or beyond NumRecords-1 are zero. dest must have length
// head+frameSize+tail.
func (d *SDO) GetSampleFrame(frameNr, frameSize, frameShift int64, head, tail int, channel int, dest []float64) error {
	if channel < 1 {
		return errs.New(errs.KindBug, errs.CodeBadArgs, "channel selector is 1-based").WithAppl("channel=%d", channel)
	}
	audioFD := d.FindFieldDescriptor(DataTypeSample, "")
	if audioFD == nil {
		return errs.New(errs.KindData, errs.CodeNoAudio, "SDO has no audio field descriptor")
	}
	if channel > audioFD.NumFields {
		return errs.New(errs.KindBug, errs.CodeBadArgs, "channel selector exceeds NumFields").
			WithAppl("channel=%d numFields=%d", channel, audioFD.NumFields)
	}

	total := int64(head) + frameSize + int64(tail)
	if int64(len(dest)) != total {
		return errs.New(errs.KindBug, errs.CodeBufSpace, "dest length does not match head+frameSize+tail").
			WithAppl("got=%d want=%d", len(dest), total)
	}

	start := frameNr*frameShift - int64(head)
	sampSize := audioFD.Format.ByteSize()

	for i := int64(0); i < total; i++ {
		r := start + i
		if r < 0 || r >= d.NumRecords {
			dest[i] = 0
			continue
		}
		if err := d.ensureBuffered(r); err != nil {
			return err
		}
		rec, err := d.RecordAt(r)
		if err != nil {
			return err
		}
		off := audioFD.Offset + (channel-1)*sampSize
		raw := rec[off : off+sampSize]
		v, err := decodeScalar(raw, audioFD, d.FileEndian)
		if err != nil {
			return err
		}
		dest[i] = v
	}
	return nil
}

// ensureBuffered pulls more records into the buffer via Refill when r
// falls outside [BufStartRec, BufStartRec+BufNumRecs).
func (d *SDO) ensureBuffered(r int64) error {
	if r >= d.BufStartRec && r < d.BufStartRec+d.BufNumRecs {
		return nil
	}
	if d.refill == nil {
		return errs.New(errs.KindBug, errs.CodeBufRange, "record not buffered and no Refill installed").
			WithAppl("record=%d", r)
	}
	want := d.MaxBufRecs
	if want <= 0 {
		want = 1
	}
	return d.refill(d, r, want)
}

// GetSamplePointer returns the head+1+tail samples of the selected
// channel from sampleNr-head to sampleNr+tail, decoded to float64 into
// workDOp's reusable workspace. It always decodes and copies: the
// result is never a view into d's buffer, and the next call with the
// same workDOp overwrites it. Only workDOp's workspace is used.
func (d *SDO) GetSamplePointer(sampleNr int64, head, tail int, channel int, workDOp *SDO) ([]float64, error) {
	frameSize := int64(1)
	total := int64(head) + frameSize + int64(tail)
	dest := workDOp.scratch(total)
	if err := d.GetSampleFrame(sampleNr, frameSize, 1, head, tail, channel, dest); err != nil {
		return nil, err
	}
	return dest, nil
}

// scratch returns a reusable []float64 workspace of length n, growing
// workDOp's processing buffer only when necessary (the "transfer only
// when needed" half of getSmpPtr's contract).
func (d *SDO) scratch(n int64) []float64 {
	if int64(len(d.procBuf)) < n {
		d.procBuf = make([]float64, n)
	}
	return d.procBuf[:n]
}

// decodeScalar converts one raw scalar field value to float64 per its
// Coding, matching the conversions in §4.1 of the codec layer.
func decodeScalar(raw []byte, fd *FieldDescriptor, endian Endian) (float64, error) {
	switch fd.Coding {
	case DataCodingALaw:
		return float64(g711.DecodeALaw(raw[0])), nil
	case DataCodingULaw:
		return float64(g711.DecodeULaw(raw[0])), nil
	case DataCodingNormalizedFloat:
		return decodeFloat(raw, fd.Format, endian)
	default:
		return decodeLinearOrOffset(raw, fd, endian)
	}
}

func decodeFloat(raw []byte, format DataFormat, endian Endian) (float64, error) {
	switch format {
	case DataFormatReal32:
		u := getU32(raw, endian)
		return float64(asFloat32(u)), nil
	case DataFormatReal64:
		u := getU64(raw, endian)
		return asFloat64(u), nil
	default:
		return 0, errs.New(errs.KindData, errs.CodeBadForm, "unsupported float field format")
	}
}

func decodeLinearOrOffset(raw []byte, fd *FieldDescriptor, endian Endian) (float64, error) {
	numBits := fd.NumBits
	if numBits == 0 {
		numBits = uint16(fd.Format.ByteSize() * 8)
	}
	var v int32
	switch fd.Format {
	case DataFormatUint8, DataFormatInt8:
		if fd.Coding == DataCodingBinaryOffset {
			v = linear.BinaryOffsetToSigned(uint32(raw[0]), uint(numBits))
		} else {
			v = int32(int8(raw[0]))
		}
	case DataFormatUint16, DataFormatInt16:
		u := getU16(raw, endian)
		if fd.Coding == DataCodingBinaryOffset {
			v = linear.BinaryOffsetToSigned(uint32(u), uint(numBits))
		} else {
			v = int32(int16(u))
		}
	case DataFormatUint24, DataFormatInt24:
		var b [3]byte
		copy(b[:], raw[:3])
		v = linear.DecodePacked24(b, endian == EndianBig)
	case DataFormatUint32, DataFormatInt32:
		u := getU32(raw, endian)
		v = int32(u)
	default:
		return 0, errs.New(errs.KindData, errs.CodeBadForm, "unsupported integer field format")
	}
	return float64(v), nil
}

func getU16(b []byte, endian Endian) uint16 {
	if endian == EndianBig {
		return uint16(b[0])<<8 | uint16(b[1])
	}
	return uint16(b[1])<<8 | uint16(b[0])
}

func getU32(b []byte, endian Endian) uint32 {
	if endian == EndianBig {
		return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	}
	return uint32(b[3])<<24 | uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])
}

func getU64(b []byte, endian Endian) uint64 {
	var u uint64
	if endian == EndianBig {
		for i := 0; i < 8; i++ {
			u = u<<8 | uint64(b[i])
		}
	} else {
		for i := 7; i >= 0; i-- {
			u = u<<8 | uint64(b[i])
		}
	}
	return u
}

// ieeeextSampleRate decodes a 10-byte extended-precision sample rate
// field, exposed for the fileio/aiff driver.
func ieeeextSampleRate(b [10]byte) float64 { return ieeeext.Decode(b) }
