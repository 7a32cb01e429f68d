/*
NAME
  raw.go

DESCRIPTION
  raw.go implements the headerless fallback format driver: 16-bit
  signed little-endian mono audio at a caller-supplied
  default sample rate, with no header to parse or emit.

AUTHOR
  Michel T.M. Scheffers (original); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package raw implements the headerless ("raw") fileio.Driver: the
// last-resort format any file falls back to when no other driver's
// Probe matches.
package raw

import (
	"io"

	"github.com/ipds-kiel/goassp/sdo"
)

type driver struct{}

// Driver is the singleton raw format driver, satisfying
// fileio.Driver structurally; callers register it with
// fileio.Register(raw.Driver).
var Driver = driver{}

func (driver) Format() sdo.FileFormat { return sdo.FileFormatRaw }

// Probe never matches on content; raw is only ever selected as the
// fallback when every other driver's Probe fails.
func (driver) Probe([]byte, string) bool { return false }

// ReadHeader sets up a 16-bit signed little-endian mono layout with no
// header bytes; SampFreq must already be set by the caller (fileio.Open
// sets it from OpenOptions.DefaultSampleRate before calling this).
func (driver) ReadHeader(d *sdo.SDO, r io.Reader) error {
	d.FileData = sdo.FileDataBinary
	d.FileEndian = sdo.EndianLittle
	d.FrameDur = 1
	d.HeaderSize = 0
	d.StartRecord = 0

	audio := d.AddFieldDescriptor()
	audio.Ident = "audio"
	audio.Type = sdo.DataTypeSample
	audio.Format = sdo.DataFormatInt16
	audio.Coding = sdo.DataCodingLinear
	audio.NumFields = 1
	if err := d.SetRecordSize(); err != nil {
		return err
	}
	if err := d.CheckRates(); err != nil {
		return err
	}

	if sz, ok := seekableSize(r); ok {
		d.NumRecords = sz / int64(d.RecordSize)
	}
	return nil
}

// WriteHeader is a no-op: raw files carry no header.
func (driver) WriteHeader(*sdo.SDO, io.Writer) error { return nil }

func seekableSize(r io.Reader) (int64, bool) {
	s, ok := r.(io.Seeker)
	if !ok {
		return 0, false
	}
	cur, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, false
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, false
	}
	if _, err := s.Seek(cur, io.SeekStart); err != nil {
		return 0, false
	}
	return end, true
}
