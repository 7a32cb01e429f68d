/*
NAME
  au.go

DESCRIPTION
  au.go implements the Sun/NeXt ".snd"/AU file driver: a fixed
  24/28-byte big-endian header (formID, dataOffset,
  dataLength, dataFormat, sampRate, numTracks, optional info string),
  matching SNDHDR (headers.h).

AUTHOR
  Michel T.M. Scheffers (original SNDHDR layout, headers.h); Go port
  for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package au implements the fileio.Driver for the Sun/NeXt ".snd"/AU
// format.
package au

import (
	"encoding/binary"
	"io"

	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

// Data format codes, SNDHDR.dataFormat (headers.h); only the codes this
// driver's codec layer can actually produce/consume are mapped;
// ReadHeader rejects any other code with a CodeNoHandle error.
const (
	sndMuLaw8    = 1
	sndLinear8   = 2
	sndLinear16  = 3
	sndLinear24  = 4
	sndLinear32  = 5
	sndFloat     = 6
	sndDouble    = 7
	sndALaw8     = 27
)

const stdHeaderSize = 28

type driver struct{}

// Driver is the singleton AU/.snd format driver.
var Driver = driver{}

func (driver) Format() sdo.FileFormat { return sdo.FileFormatAU }

func (driver) Probe(firstBytes []byte, _ string) bool {
	return len(firstBytes) >= 4 && string(firstBytes[0:4]) == ".snd"
}

func (driver) ReadHeader(d *sdo.SDO, r io.Reader) error {
	var hdr [stdHeaderSize]byte
	n, err := io.ReadFull(r, hdr[:])
	if err != nil && err != io.ErrUnexpectedEOF {
		return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read AU header")
	}
	if n < 24 || string(hdr[0:4]) != ".snd" {
		return errs.New(errs.KindFile, errs.CodeFileBadForm, "not a .snd/AU file")
	}
	dataOffset := int32(binary.BigEndian.Uint32(hdr[4:8]))
	dataLength := int32(binary.BigEndian.Uint32(hdr[8:12]))
	dataFormat := binary.BigEndian.Uint32(hdr[12:16])
	sampRate := binary.BigEndian.Uint32(hdr[16:20])
	numTracks := binary.BigEndian.Uint32(hdr[20:24])

	d.FileEndian = sdo.EndianBig
	d.FileData = sdo.FileDataBinary
	d.HeaderSize = int64(dataOffset)

	format, coding := sndFormat(dataFormat)
	if format == sdo.DataFormatUndef {
		return errs.New(errs.KindData, errs.CodeNoHandle, "unsupported AU data format").
			WithAppl("dataFormat=%d", dataFormat)
	}
	audio := d.AddFieldDescriptor()
	audio.Ident = "audio"
	audio.Type = sdo.DataTypeSample
	audio.Format = format
	audio.Coding = coding
	audio.NumFields = int(numTracks)
	if audio.NumFields == 0 {
		audio.NumFields = 1
	}
	if err := d.SetRecordSize(); err != nil {
		return err
	}
	d.SampFreq = float64(sampRate)
	d.FrameDur = 1
	if err := d.CheckRates(); err != nil {
		return err
	}
	if dataLength > 0 {
		d.NumRecords = int64(dataLength) / int64(d.RecordSize)
	}
	return nil
}

func sndFormat(code uint32) (sdo.DataFormat, sdo.DataCoding) {
	switch code {
	case sndMuLaw8:
		return sdo.DataFormatUint8, sdo.DataCodingULaw
	case sndALaw8:
		return sdo.DataFormatUint8, sdo.DataCodingALaw
	case sndLinear8:
		return sdo.DataFormatInt8, sdo.DataCodingLinear
	case sndLinear16:
		return sdo.DataFormatInt16, sdo.DataCodingLinear
	case sndLinear24:
		return sdo.DataFormatInt24, sdo.DataCodingLinear
	case sndLinear32:
		return sdo.DataFormatInt32, sdo.DataCodingLinear
	case sndFloat:
		return sdo.DataFormatReal32, sdo.DataCodingLinear
	case sndDouble:
		return sdo.DataFormatReal64, sdo.DataCodingLinear
	default:
		return sdo.DataFormatUndef, sdo.DataCodingUndef
	}
}

func auFormatCode(audio *sdo.FieldDescriptor) (uint32, error) {
	switch audio.Coding {
	case sdo.DataCodingALaw:
		return sndALaw8, nil
	case sdo.DataCodingULaw:
		return sndMuLaw8, nil
	}
	switch audio.Format {
	case sdo.DataFormatInt8:
		return sndLinear8, nil
	case sdo.DataFormatInt16:
		return sndLinear16, nil
	case sdo.DataFormatInt24:
		return sndLinear24, nil
	case sdo.DataFormatInt32:
		return sndLinear32, nil
	case sdo.DataFormatReal32:
		return sndFloat, nil
	case sdo.DataFormatReal64:
		return sndDouble, nil
	default:
		return 0, errs.New(errs.KindData, errs.CodeNoHandle, "AU can't encode this data format")
	}
}

// WriteHeader emits the standard 28-byte SNDHDR, with dataLength set
// from NumRecords*RecordSize and an empty terminated info field.
func (driver) WriteHeader(d *sdo.SDO, w io.Writer) error {
	audio := d.FindFieldDescriptor(sdo.DataTypeSample, "")
	if audio == nil {
		return errs.New(errs.KindData, errs.CodeNoAudio, "SDO has no audio field descriptor")
	}
	code, err := auFormatCode(audio)
	if err != nil {
		return err
	}
	dataLength := uint32(int64(d.RecordSize) * d.NumRecords)

	var hdr [stdHeaderSize]byte
	copy(hdr[0:4], ".snd")
	binary.BigEndian.PutUint32(hdr[4:8], stdHeaderSize)
	binary.BigEndian.PutUint32(hdr[8:12], dataLength)
	binary.BigEndian.PutUint32(hdr[12:16], code)
	binary.BigEndian.PutUint32(hdr[16:20], uint32(d.SampFreq))
	binary.BigEndian.PutUint32(hdr[20:24], uint32(audio.NumFields))
	// hdr[24:28] left zero: empty NUL-terminated info string.
	_, err = w.Write(hdr[:])
	return err
}
