/*
NAME
  wave.go

DESCRIPTION
  wave.go implements the IBM/Microsoft RIFF-WAVE and WAVE-EXT (Revision
  3 extensible format) file drivers. Header field order and the plain
  44-byte `fmt ` chunk layout are grounded on `_examples/ausocean-av/
  codec/wav/wav.go`'s WAV.Write; this driver generalizes that one-shot
  writer into a full probe/read/write Driver and adds the read path,
  the extended `fmt `
  chunk (cbSize + validBitsPerSample + channel mask + sub-format GUID)
  and `fact` chunk WAVE_X emits for non-PCM or >16-bit/> 2-channel
  signals.

AUTHOR
  David Sutton (teacher's codec/wav.go, header layout); Go port and
  WAVE_X extension for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package wave implements the fileio.Driver for RIFF-WAVE and the
// Revision-3 WAVE-EXT extensible format.
package wave

import (
	"encoding/binary"
	"io"

	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

// Format codes from the RIFF-WAVE `fmt ` chunk.
const (
	fmtPCM        = 1
	fmtALaw       = 6
	fmtULaw       = 7
	fmtExtensible = 0xFFFE
)

type driver struct{}

// Driver is the singleton WAVE/WAVE-EXT format driver.
var Driver = driver{}

func (driver) Format() sdo.FileFormat { return sdo.FileFormatWave }

func (driver) Probe(firstBytes []byte, _ string) bool {
	return len(firstBytes) >= 12 &&
		string(firstBytes[0:4]) == "RIFF" &&
		string(firstBytes[8:12]) == "WAVE"
}

// ReadHeader parses the RIFF/WAVE chunk sequence, walking chunks until
// `fmt ` and `data` are both found (other chunks, e.g. `fact`/`LIST`,
// are skipped per the IFF even-alignment rule).
func (driver) ReadHeader(d *sdo.SDO, r io.Reader) error {
	var riffHdr [12]byte
	if _, err := io.ReadFull(r, riffHdr[:]); err != nil {
		return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read RIFF header")
	}
	if string(riffHdr[0:4]) != "RIFF" || string(riffHdr[8:12]) != "WAVE" {
		return errs.New(errs.KindFile, errs.CodeFileBadForm, "not a RIFF/WAVE file")
	}

	d.FileEndian = sdo.EndianLittle
	d.FileData = sdo.FileDataBinary

	var (
		gotFmt                            bool
		audioFormat, channels, bitDepth   uint16
		sampleRate                        uint32
		headerSize                        int64 = 12
	)

	for {
		var chunkHdr [8]byte
		n, err := io.ReadFull(r, chunkHdr[:])
		if err == io.EOF || (err == io.ErrUnexpectedEOF && n == 0) {
			break
		}
		if err != nil {
			return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read chunk header")
		}
		headerSize += 8
		id := string(chunkHdr[0:4])
		size := int64(binary.LittleEndian.Uint32(chunkHdr[4:8]))

		switch id {
		case "fmt ":
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read fmt chunk")
			}
			headerSize += size
			audioFormat = binary.LittleEndian.Uint16(body[0:2])
			channels = binary.LittleEndian.Uint16(body[2:4])
			sampleRate = binary.LittleEndian.Uint32(body[4:8])
			bitDepth = binary.LittleEndian.Uint16(body[14:16])
			if audioFormat == fmtExtensible && len(body) >= 40 {
				audioFormat = binary.LittleEndian.Uint16(body[24:26])
			}
			gotFmt = true
			if size%2 != 0 {
				headerSize++
				var pad [1]byte
				io.ReadFull(r, pad[:])
			}
		case "data":
			if !gotFmt {
				return errs.New(errs.KindFile, errs.CodeBadHead, "WAVE data chunk precedes fmt chunk")
			}
			d.HeaderSize = headerSize
			coding := sdo.DataCodingLinear
			format := bitDepthToFormat(bitDepth)
			switch audioFormat {
			case fmtALaw:
				coding = sdo.DataCodingALaw
				format = sdo.DataFormatUint8
			case fmtULaw:
				coding = sdo.DataCodingULaw
				format = sdo.DataFormatUint8
			case fmtPCM:
				coding = sdo.DataCodingLinear
			default:
				return errs.New(errs.KindData, errs.CodeNoHandle, "unsupported WAVE format code").
					WithAppl("formatCode=%d", audioFormat)
			}
			audio := d.AddFieldDescriptor()
			audio.Ident = "audio"
			audio.Type = sdo.DataTypeSample
			audio.Format = format
			audio.Coding = coding
			audio.NumFields = int(channels)
			audio.NumBits = bitDepth
			if err := d.SetRecordSize(); err != nil {
				return err
			}
			d.SampFreq = float64(sampleRate)
			d.FrameDur = 1
			if err := d.CheckRates(); err != nil {
				return err
			}
			d.NumRecords = size / int64(d.RecordSize)
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
	return errs.New(errs.KindFile, errs.CodeBadHead, "WAVE file has no data chunk")
}

func bitDepthToFormat(bits uint16) sdo.DataFormat {
	switch bits {
	case 8:
		return sdo.DataFormatUint8 // 8-bit WAVE PCM is binary-offset unsigned
	case 16:
		return sdo.DataFormatInt16
	case 24:
		return sdo.DataFormatInt24
	case 32:
		return sdo.DataFormatInt32
	default:
		return sdo.DataFormatUndef
	}
}

// WriteHeader emits the RIFF/WAVE header. It chooses the extended
// `fmt ` chunk (WAVE_X, with a `fact` chunk) whenever the signal has
// more than 2 channels, more than 16 bits per sample, or a non-PCM
// coding; otherwise it emits the plain 44-byte header.
func (driver) WriteHeader(d *sdo.SDO, w io.Writer) error {
	audio := d.FindFieldDescriptor(sdo.DataTypeSample, "")
	if audio == nil {
		return errs.New(errs.KindData, errs.CodeNoAudio, "SDO has no audio field descriptor")
	}
	channels := audio.NumFields
	bits := audio.Format.ByteSize() * 8
	nonPCM := audio.Coding != sdo.DataCodingLinear
	extended := channels > 2 || bits > 16 || nonPCM

	dataSize := uint32(int64(d.RecordSize) * d.NumRecords)

	if !extended {
		return writePlainHeader(w, d, audio, dataSize)
	}
	return writeExtendedHeader(w, d, audio, dataSize)
}

func writePlainHeader(w io.Writer, d *sdo.SDO, audio *sdo.FieldDescriptor, dataSize uint32) error {
	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], dataSize+36)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatCode(audio))
	binary.LittleEndian.PutUint16(header[22:24], uint16(audio.NumFields))
	binary.LittleEndian.PutUint32(header[24:28], uint32(d.SampFreq))
	bits := uint16(audio.Format.ByteSize() * 8)
	byteRate := uint32(d.SampFreq) * uint32(audio.NumFields) * uint32(bits) / 8
	blockAlign := uint16(audio.NumFields) * bits / 8
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bits)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)
	_, err := w.Write(header)
	return err
}

func writeExtendedHeader(w io.Writer, d *sdo.SDO, audio *sdo.FieldDescriptor, dataSize uint32) error {
	bits := uint16(audio.Format.ByteSize() * 8)
	validBits := audio.NumBits
	if validBits == 0 {
		validBits = bits
	}
	byteRate := uint32(d.SampFreq) * uint32(audio.NumFields) * uint32(bits) / 8
	blockAlign := uint16(audio.NumFields) * bits / 8

	fmtBody := make([]byte, 40)
	binary.LittleEndian.PutUint16(fmtBody[0:2], fmtExtensible)
	binary.LittleEndian.PutUint16(fmtBody[2:4], uint16(audio.NumFields))
	binary.LittleEndian.PutUint32(fmtBody[4:8], uint32(d.SampFreq))
	binary.LittleEndian.PutUint32(fmtBody[8:12], byteRate)
	binary.LittleEndian.PutUint16(fmtBody[12:14], blockAlign)
	binary.LittleEndian.PutUint16(fmtBody[14:16], bits)
	binary.LittleEndian.PutUint16(fmtBody[16:18], 22) // cbSize
	binary.LittleEndian.PutUint16(fmtBody[18:20], validBits)
	binary.LittleEndian.PutUint32(fmtBody[20:24], 0) // channel mask, unspecified
	copy(fmtBody[24:40], subFormatGUID(formatCode(audio)))

	riffSize := 4 + (8 + 40) + (8 + 4) + (8 + dataSize)

	var hdr []byte
	hdr = append(hdr, []byte("RIFF")...)
	hdr = append(hdr, u32le(riffSize)...)
	hdr = append(hdr, []byte("WAVE")...)
	hdr = append(hdr, []byte("fmt ")...)
	hdr = append(hdr, u32le(uint32(len(fmtBody)))...)
	hdr = append(hdr, fmtBody...)
	hdr = append(hdr, []byte("fact")...)
	hdr = append(hdr, u32le(4)...)
	hdr = append(hdr, u32le(uint32(d.NumRecords))...)
	hdr = append(hdr, []byte("data")...)
	hdr = append(hdr, u32le(dataSize)...)
	_, err := w.Write(hdr)
	return err
}

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func formatCode(audio *sdo.FieldDescriptor) uint16 {
	switch audio.Coding {
	case sdo.DataCodingALaw:
		return fmtALaw
	case sdo.DataCodingULaw:
		return fmtULaw
	default:
		return fmtPCM
	}
}

// subFormatGUID returns the 16-byte KSDATAFORMAT_SUBTYPE GUID for
// formatCode, per the Revision-3 WAVE-EXT specification: the low
// 16 bits carry the legacy format code, the remaining bytes are the
// fixed PCM/MS GUID suffix.
func subFormatGUID(formatCode uint16) []byte {
	guid := []byte{
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x10, 0x00,
		0x80, 0x00, 0x00, 0xAA,
		0x00, 0x38, 0x9B, 0x71,
	}
	binary.LittleEndian.PutUint16(guid[0:2], formatCode)
	return guid
}
