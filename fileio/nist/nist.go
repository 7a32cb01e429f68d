/*
NAME
  nist.go

DESCRIPTION
  nist.go implements the NIST SPeech HEader REsources (SPHERE) file
  driver: a fixed 1024-byte ASCII header starting
  with "NIST_1A\n   1024\n", one "key -type value" line per field, and
  an "end_head" terminator (NIST_MAGIC/NIST_HDR_SIZE/NIST_EOH_STR,
  headers.h).

AUTHOR
  Michel T.M. Scheffers (original NIST constants, headers.h); Go port
  for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package nist implements the fileio.Driver for the NIST SPHERE speech
// corpus format.
package nist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

const (
	magicLine  = "NIST_1A"
	sizeLine   = "   1024"
	eohLine    = "end_head"
	headerSize = 1024
)

type driver struct{}

// Driver is the singleton NIST/SPHERE format driver.
var Driver = driver{}

func (driver) Format() sdo.FileFormat { return sdo.FileFormatNIST }

func (driver) Probe(firstBytes []byte, _ string) bool {
	return bytes.HasPrefix(firstBytes, []byte(magicLine))
}

// ReadHeader parses "key -type value" lines (SPHERE's type tags -i
// integer, -r real, -s<n> string) until end_head, recognizing
// sample_count/sample_rate/channel_count/sample_n_bytes/
// sample_coding and carrying every other key as an sdo.MetaVar.
func (driver) ReadHeader(d *sdo.SDO, r io.Reader) error {
	raw := make([]byte, headerSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read NIST header")
	}
	if !bytes.HasPrefix(raw, []byte(magicLine)) {
		return errs.New(errs.KindFile, errs.CodeFileBadForm, "not a NIST SPHERE file")
	}

	var (
		sampleCount  int64
		sampleRate   float64
		channelCount int64 = 1
		sampleBytes  int64 = 2
		coding       = "pcm"
	)

	sc := bufio.NewScanner(bytes.NewReader(raw))
	lineNr := 0
	for sc.Scan() {
		lineNr++
		line := sc.Text()
		if lineNr <= 2 {
			continue // magic + byte-count lines
		}
		if strings.TrimSpace(line) == eohLine {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		key, typeTag, val := fields[0], fields[1], strings.Join(fields[2:], " ")
		switch key {
		case "sample_count":
			sampleCount, _ = strconv.ParseInt(val, 10, 64)
		case "sample_rate":
			sampleRate, _ = strconv.ParseFloat(val, 64)
		case "channel_count":
			channelCount, _ = strconv.ParseInt(val, 10, 64)
		case "sample_n_bytes":
			sampleBytes, _ = strconv.ParseInt(val, 10, 64)
		case "sample_coding":
			coding = val
		default:
			_ = typeTag
			d.Meta = append(d.Meta, sdo.MetaVar{Ident: key, Value: val})
		}
	}

	d.FileEndian = sdo.EndianBig
	d.FileData = sdo.FileDataBinary
	d.HeaderSize = headerSize

	format, dcoding := nistFormat(coding, sampleBytes)
	audio := d.AddFieldDescriptor()
	audio.Ident = "audio"
	audio.Type = sdo.DataTypeSample
	audio.Format = format
	audio.Coding = dcoding
	audio.NumFields = int(channelCount)
	if err := d.SetRecordSize(); err != nil {
		return err
	}
	d.SampFreq = sampleRate
	d.FrameDur = 1
	if err := d.CheckRates(); err != nil {
		return err
	}
	d.NumRecords = sampleCount
	return nil
}

func nistFormat(coding string, sampleBytes int64) (sdo.DataFormat, sdo.DataCoding) {
	if strings.HasPrefix(coding, "ulaw") {
		return sdo.DataFormatUint8, sdo.DataCodingULaw
	}
	switch sampleBytes {
	case 1:
		return sdo.DataFormatInt8, sdo.DataCodingLinear
	case 3:
		return sdo.DataFormatInt24, sdo.DataCodingLinear
	case 4:
		return sdo.DataFormatInt32, sdo.DataCodingLinear
	default:
		return sdo.DataFormatInt16, sdo.DataCodingLinear
	}
}

// WriteHeader emits the fixed 1024-byte ASCII header: magic/size
// lines, sample_count/sample_rate/channel_count/sample_n_bytes/
// sample_coding, every carried MetaVar, end_head, then NUL padding.
func (driver) WriteHeader(d *sdo.SDO, w io.Writer) error {
	audio := d.FindFieldDescriptor(sdo.DataTypeSample, "")
	if audio == nil {
		return errs.New(errs.KindData, errs.CodeNoAudio, "SDO has no audio field descriptor")
	}
	coding := "pcm"
	if audio.Coding == sdo.DataCodingULaw {
		coding = "ulaw"
	} else if audio.Coding != sdo.DataCodingLinear {
		return errs.New(errs.KindData, errs.CodeNoHandle, "NIST only supports linear PCM or u-law audio")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n%s\n", magicLine, sizeLine)
	fmt.Fprintf(&buf, "sample_count -i %d\n", d.NumRecords)
	fmt.Fprintf(&buf, "sample_rate -i %d\n", int64(d.SampFreq))
	fmt.Fprintf(&buf, "channel_count -i %d\n", audio.NumFields)
	fmt.Fprintf(&buf, "sample_n_bytes -i %d\n", audio.Format.ByteSize())
	fmt.Fprintf(&buf, "sample_byte_format -s2 10\n")
	fmt.Fprintf(&buf, "sample_coding -s%d %s\n", len(coding), coding)
	for _, mv := range d.Meta {
		fmt.Fprintf(&buf, "%s -s%d %s\n", mv.Ident, len(mv.Value), mv.Value)
	}
	fmt.Fprintf(&buf, "%s\n", eohLine)

	if buf.Len() > headerSize {
		return errs.New(errs.KindData, errs.CodeErrSize, "NIST header exceeds the fixed 1024-byte size")
	}
	padded := make([]byte, headerSize)
	copy(padded, buf.Bytes())
	_, err := w.Write(padded)
	return err
}
