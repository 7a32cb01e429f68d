/*
NAME
  record.go

DESCRIPTION
  record.go provides the small helpers concrete analyses use to
  allocate a result SDO and write one record's worth of float64 values
  into it, matching the reference library's convention of storing
  every derived parameter track as IEEE floats (DataFormatReal32 by
  default, matching AF_REAL32 tracks such as RMS/ZCR/formant
  frequencies in the reference library's output files).

AUTHOR
  Michel T.M. Scheffers (original); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package analysis

import (
	"encoding/binary"
	"math"

	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

// NewResultSDO allocates a result SDO for t.NumFrames() records, with
// DataRate set from the frame shift and the SDO bound to file endian
// little, matching the layout every analysis's output file shares.
func NewResultSDO(audio *sdo.SDO, t Timing) *sdo.SDO {
	result := sdo.New()
	result.SampFreq = audio.SampFreq
	result.DataRate = audio.SampFreq / float64(t.FrameShift)
	result.FileData = sdo.FileDataBinary
	result.FileEndian = sdo.EndianLittle
	result.StartRecord = 0
	result.NumRecords = t.NumFrames()
	return result
}

// AddReal32Field appends a field of type typ with numFields values, each
// stored as a little-endian IEEE float32, matching the reference
// library's AF_REAL32 parameter tracks.
func AddReal32Field(result *sdo.SDO, ident string, typ sdo.DataType, numFields int) *sdo.FieldDescriptor {
	fd := result.AddFieldDescriptor()
	fd.Ident = ident
	fd.Type = typ
	fd.Format = sdo.DataFormatReal32
	fd.Coding = sdo.DataCodingNormalizedFloat
	fd.Orientation = sdo.EndianLittle
	fd.NumFields = numFields
	return fd
}

// AllocResultBuffer finalizes result's record layout and allocates its
// data buffer for NumRecords records, to be filled in place by the
// caller's compute pass.
func AllocResultBuffer(result *sdo.SDO) error {
	if err := result.SetRecordSize(); err != nil {
		return err
	}
	if err := result.AllocDataBuffer(result.NumRecords); err != nil {
		return err
	}
	result.SetBufferContents(make([]byte, int64(result.RecordSize)*result.NumRecords), 0, result.NumRecords)
	return nil
}

// PutReal32Record writes values into record i of result's buffer at
// fd's offset, little-endian, matching the field layout AddReal32Field
// declared.
func PutReal32Record(result *sdo.SDO, i int64, fd *sdo.FieldDescriptor, values []float64) error {
	if len(values) != fd.NumFields {
		return errs.New(errs.KindBug, errs.CodeBadArgs, "PutReal32Record: value count does not match NumFields").
			WithAppl("got=%d want=%d", len(values), fd.NumFields)
	}
	rec, err := result.RecordAt(i)
	if err != nil {
		return err
	}
	for j, v := range values {
		off := fd.Offset + j*4
		binary.LittleEndian.PutUint32(rec[off:off+4], math.Float32bits(float32(v)))
	}
	return nil
}
