/*
NAME
  aiff.go

DESCRIPTION
  aiff.go implements the Apple/SGI AIFF and AIFF-C file driver: a
  big-endian "FORM"/"AIFF"|"AIFC" container with a COMM
  chunk (sample rate carried as an 80-bit IEEE extended float, matching
  AIFF_COMMSIZE/AIFC_COMMSIZE, headers.h) and an SSND chunk holding the
  sample data after an 8-byte offset/blockSize pair.

AUTHOR
  Michel T.M. Scheffers (original FORM/COMM/SSND layout, headers.h); Go
  port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package aiff implements the fileio.Driver for Apple/SGI AIFF and
// AIFF-C.
package aiff

import (
	"encoding/binary"
	"io"

	"github.com/ipds-kiel/goassp/codec/ieeeext"
	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

// AIFF-C compression type IDs, headers.h.
const (
	compNone = "NONE"
	compALaw = "alaw"
	compULaw = "ulaw"
	compFl32 = "fl32"
	compFl64 = "fl64"
)

type driver struct{}

// Driver is the singleton AIFF/AIFF-C format driver.
var Driver = driver{}

func (driver) Format() sdo.FileFormat { return sdo.FileFormatAIFF }

func (driver) Probe(firstBytes []byte, _ string) bool {
	return len(firstBytes) >= 12 &&
		string(firstBytes[0:4]) == "FORM" &&
		(string(firstBytes[8:12]) == "AIFF" || string(firstBytes[8:12]) == "AIFC")
}

// ReadHeader walks the FORM's sub-chunks until COMM and SSND are both
// found, matching getAIFFhdr's chunk loop (asspio.c).
func (driver) ReadHeader(d *sdo.SDO, r io.Reader) error {
	var form [12]byte
	if _, err := io.ReadFull(r, form[:]); err != nil {
		return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read FORM header")
	}
	if string(form[0:4]) != "FORM" {
		return errs.New(errs.KindFile, errs.CodeFileBadForm, "not a FORM file")
	}
	isAIFC := string(form[8:12]) == "AIFC"
	if !isAIFC && string(form[8:12]) != "AIFF" {
		return errs.New(errs.KindFile, errs.CodeFileBadForm, "FORM type is neither AIFF nor AIFC")
	}

	d.FileEndian = sdo.EndianBig
	d.FileData = sdo.FileDataBinary

	var (
		gotComm            bool
		numTracks, numBits uint16
		numSamples         uint32
		sampFreq           float64
		compType           string
		headerSize         int64 = 12
	)

	for {
		var hdr [8]byte
		n, err := io.ReadFull(r, hdr[:])
		if err == io.EOF || (err == io.ErrUnexpectedEOF && n == 0) {
			break
		}
		if err != nil {
			return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read chunk header")
		}
		headerSize += 8
		id := string(hdr[0:4])
		size := int64(binary.BigEndian.Uint32(hdr[4:8]))

		switch id {
		case "COMM":
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read COMM chunk")
			}
			headerSize += size
			if size%2 != 0 {
				headerSize++
				var pad [1]byte
				io.ReadFull(r, pad[:])
			}
			numTracks = binary.BigEndian.Uint16(body[0:2])
			numSamples = binary.BigEndian.Uint32(body[2:6])
			numBits = binary.BigEndian.Uint16(body[6:8])
			var ext [10]byte
			copy(ext[:], body[8:18])
			sampFreq = ieeeext.Decode(ext)
			compType = compNone
			if isAIFC && len(body) >= 22 {
				compType = string(body[18:22])
			}
			gotComm = true
		case "SSND":
			if !gotComm {
				return errs.New(errs.KindFile, errs.CodeBadHead, "AIFF SSND chunk precedes COMM chunk")
			}
			var ssndHdr [8]byte
			if _, err := io.ReadFull(r, ssndHdr[:]); err != nil {
				return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read SSND offset/blockSize")
			}
			offset := binary.BigEndian.Uint32(ssndHdr[0:4])
			if offset > 0 {
				if _, err := io.CopyN(io.Discard, r, int64(offset)); err != nil {
					return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't skip SSND offset bytes")
				}
			}
			headerSize += 8 + int64(offset)
			d.HeaderSize = headerSize

			format, coding := aifcFormat(compType, numBits)
			audio := d.AddFieldDescriptor()
			audio.Ident = "audio"
			audio.Type = sdo.DataTypeSample
			audio.Format = format
			audio.Coding = coding
			audio.NumFields = int(numTracks)
			audio.NumBits = numBits
			if err := d.SetRecordSize(); err != nil {
				return err
			}
			d.SampFreq = sampFreq
			d.FrameDur = 1
			if err := d.CheckRates(); err != nil {
				return err
			}
			d.NumRecords = int64(numSamples)
			return nil
		default:
			skip := size
			if skip%2 != 0 {
				skip++
			}
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't skip unknown chunk")
			}
			headerSize += skip
		}
	}
	return errs.New(errs.KindFile, errs.CodeBadHead, "AIFF file has no SSND chunk")
}

// aifcFormat maps an AIFF-C compression-type ID (or AIFF's implicit
// "NONE") plus bit depth to a DataFormat/DataCoding pair.
func aifcFormat(compType string, numBits uint16) (sdo.DataFormat, sdo.DataCoding) {
	switch compType {
	case compALaw:
		return sdo.DataFormatUint8, sdo.DataCodingALaw
	case compULaw:
		return sdo.DataFormatUint8, sdo.DataCodingULaw
	case compFl32:
		return sdo.DataFormatReal32, sdo.DataCodingLinear
	case compFl64:
		return sdo.DataFormatReal64, sdo.DataCodingLinear
	default:
		return bitDepthToFormat(numBits), sdo.DataCodingLinear
	}
}

func bitDepthToFormat(bits uint16) sdo.DataFormat {
	switch {
	case bits <= 8:
		return sdo.DataFormatInt8
	case bits <= 16:
		return sdo.DataFormatInt16
	case bits <= 24:
		return sdo.DataFormatInt24
	default:
		return sdo.DataFormatInt32
	}
}

// WriteHeader emits an AIFF-C header (FORM/FVER/COMM/SSND) whenever the
// signal's coding or bit depth needs a compression-type tag (A-law,
// u-law, or float), and a plain AIFF header otherwise, mirroring the
// read side's gotComm/compType distinction.
func (driver) WriteHeader(d *sdo.SDO, w io.Writer) error {
	audio := d.FindFieldDescriptor(sdo.DataTypeSample, "")
	if audio == nil {
		return errs.New(errs.KindData, errs.CodeNoAudio, "SDO has no audio field descriptor")
	}
	compType, isAIFC := compressionType(audio)

	numBits := uint16(audio.Format.ByteSize() * 8)
	sampSize := int64(audio.Format.ByteSize()) * int64(audio.NumFields)
	dataSize := sampSize * d.NumRecords

	commBody := make([]byte, 18)
	binary.BigEndian.PutUint16(commBody[0:2], uint16(audio.NumFields))
	binary.BigEndian.PutUint32(commBody[2:6], uint32(d.NumRecords))
	binary.BigEndian.PutUint16(commBody[6:8], numBits)
	ext := ieeeext.Encode(d.SampFreq)
	copy(commBody[8:18], ext[:])
	if isAIFC {
		commBody = append(commBody, []byte(compType)...)
		commBody = append(commBody, 0) // zero-length Pascal compression name
	}
	if len(commBody)%2 != 0 {
		commBody = append(commBody, 0)
	}

	ssndBody := make([]byte, 8) // offset=0, blockSize=0

	formType := "AIFF"
	if isAIFC {
		formType = "AIFC"
	}

	var body []byte
	if isAIFC {
		body = append(body, []byte("FVER")...)
		body = append(body, be32(4)...)
		body = append(body, be32(0xA2805140)...)
	}
	body = append(body, []byte("COMM")...)
	body = append(body, be32(uint32(len(commBody)))...)
	body = append(body, commBody...)
	body = append(body, []byte("SSND")...)
	body = append(body, be32(uint32(len(ssndBody))+uint32(dataSize))...)
	body = append(body, ssndBody...)

	var hdr []byte
	hdr = append(hdr, []byte("FORM")...)
	hdr = append(hdr, be32(uint32(4+len(body)+int(dataSize)))...)
	hdr = append(hdr, []byte(formType)...)
	hdr = append(hdr, body...)
	_, err := w.Write(hdr)
	return err
}

func compressionType(audio *sdo.FieldDescriptor) (string, bool) {
	switch audio.Coding {
	case sdo.DataCodingALaw:
		return compALaw, true
	case sdo.DataCodingULaw:
		return compULaw, true
	}
	switch audio.Format {
	case sdo.DataFormatReal32:
		return compFl32, true
	case sdo.DataFormatReal64:
		return compFl64, true
	default:
		return compNone, false
	}
}

func be32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}
