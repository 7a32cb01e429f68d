/*
NAME
  csl.go

DESCRIPTION
  csl.go implements the Kay Elemetrics Computerized Speech Lab (CSL)
  file driver: a little-endian "FORM"/"DS16"
  container with a HEDR chunk (creation date, sample rate, sample
  count, peak magnitudes) and a mono/stereo data chunk tagged
  "SDA_"/"SD_B"/"SDAB", matching CSLFRM/CSLFMT/CSLDAT (headers.h).

AUTHOR
  Michel T.M. Scheffers (original CSL chunk layout, headers.h); Go port
  for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package csl implements the fileio.Driver for the Kay Elemetrics CSL
// format.
package csl

import (
	"encoding/binary"
	"io"

	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

const dateSize = 20

type driver struct{}

// Driver is the singleton CSL format driver.
var Driver = driver{}

func (driver) Format() sdo.FileFormat { return sdo.FileFormatCSL }

func (driver) Probe(firstBytes []byte, _ string) bool {
	return len(firstBytes) >= 8 &&
		string(firstBytes[0:4]) == "FORM" &&
		string(firstBytes[4:8]) == "DS16"
}

func (driver) ReadHeader(d *sdo.SDO, r io.Reader) error {
	var form [12]byte
	if _, err := io.ReadFull(r, form[:]); err != nil {
		return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read CSL FORM header")
	}
	if string(form[0:4]) != "FORM" || string(form[4:8]) != "DS16" {
		return errs.New(errs.KindFile, errs.CodeFileBadForm, "not a CSL FORM/DS16 file")
	}

	d.FileEndian = sdo.EndianLittle
	d.FileData = sdo.FileDataBinary

	var (
		gotHedr    bool
		sampRate   uint32
		numSamples uint32
		headerSize int64 = 12
	)
	for {
		var chunkHdr [8]byte
		n, err := io.ReadFull(r, chunkHdr[:])
		if err == io.EOF || (err == io.ErrUnexpectedEOF && n == 0) {
			break
		}
		if err != nil {
			return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read CSL chunk header")
		}
		headerSize += 8
		id := string(chunkHdr[0:4])
		size := int64(binary.LittleEndian.Uint32(chunkHdr[4:8]))

		switch id {
		case "HEDR":
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read CSL HEDR chunk")
			}
			headerSize += size
			if len(body) >= dateSize+8 {
				sampRate = binary.LittleEndian.Uint32(body[dateSize : dateSize+4])
				numSamples = binary.LittleEndian.Uint32(body[dateSize+4 : dateSize+8])
			}
			gotHedr = true
		case "SDA_", "SD_B", "SDAB":
			if !gotHedr {
				return errs.New(errs.KindFile, errs.CodeBadHead, "CSL data chunk precedes HEDR chunk")
			}
			d.HeaderSize = headerSize
			channels := 1
			if id == "SDAB" {
				channels = 2
			}
			audio := d.AddFieldDescriptor()
			audio.Ident = "audio"
			audio.Type = sdo.DataTypeSample
			audio.Format = sdo.DataFormatInt16
			audio.Coding = sdo.DataCodingLinear
			audio.NumFields = channels
			if err := d.SetRecordSize(); err != nil {
				return err
			}
			d.SampFreq = float64(sampRate)
			d.FrameDur = 1
			if err := d.CheckRates(); err != nil {
				return err
			}
			if numSamples > 0 {
				d.NumRecords = int64(numSamples)
			} else {
				d.NumRecords = size / int64(d.RecordSize)
			}
			return nil
		default:
			skip := size
			if skip%2 != 0 {
				skip++
			}
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't skip unknown CSL chunk")
			}
			headerSize += skip
		}
	}
	return errs.New(errs.KindFile, errs.CodeBadHead, "CSL file has no data chunk")
}

// WriteHeader emits a FORM/DS16 container with an HEDR chunk (16-bit
// linear only; CSL's native format) and one data chunk, mono "SDA_" or
// stereo "SDAB" depending on the audio descriptor's NumFields.
func (driver) WriteHeader(d *sdo.SDO, w io.Writer) error {
	audio := d.FindFieldDescriptor(sdo.DataTypeSample, "")
	if audio == nil {
		return errs.New(errs.KindData, errs.CodeNoAudio, "SDO has no audio field descriptor")
	}
	if audio.Format != sdo.DataFormatInt16 || audio.Coding != sdo.DataCodingLinear {
		return errs.New(errs.KindData, errs.CodeNoHandle, "CSL only supports 16-bit linear audio")
	}
	dataID := "SDA_"
	if audio.NumFields == 2 {
		dataID = "SDAB"
	} else if audio.NumFields != 1 {
		return errs.New(errs.KindData, errs.CodeNoHandle, "CSL supports only mono or stereo audio")
	}

	hedrBody := make([]byte, dateSize+8+4)
	binary.LittleEndian.PutUint32(hedrBody[dateSize:dateSize+4], uint32(d.SampFreq))
	binary.LittleEndian.PutUint32(hedrBody[dateSize+4:dateSize+8], uint32(d.NumRecords))
	binary.LittleEndian.PutUint16(hedrBody[dateSize+8:dateSize+10], 0xFFFF) // peakA: absent
	binary.LittleEndian.PutUint16(hedrBody[dateSize+10:dateSize+12], 0xFFFF) // peakB: absent

	dataSize := uint32(int64(d.RecordSize) * d.NumRecords)

	var body []byte
	body = append(body, []byte("HEDR")...)
	body = append(body, u32le(uint32(len(hedrBody)))...)
	body = append(body, hedrBody...)
	body = append(body, []byte(dataID)...)
	body = append(body, u32le(dataSize)...)

	var hdr []byte
	hdr = append(hdr, []byte("FORM")...)
	hdr = append(hdr, []byte("DS16")...)
	hdr = append(hdr, u32le(uint32(len(body))+uint32(dataSize))...)
	hdr = append(hdr, body...)
	_, err := w.Write(hdr)
	return err
}

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}
