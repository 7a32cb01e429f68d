/*
NAME
  io.go

DESCRIPTION
  io.go implements the SDO-level file operations shared by every
  driver: Open (probe + header parse), Create, Close, Seek/Tell,
  Read/Write, the buffer refill from file that Open installs
  (fillFromFile) and Flush (buffer writeback), matching
  openSDO/closeSDO/seek/tell/read/write/fill/flush (dataobj.c,
  asspio.c). There is no text print operation.

AUTHOR
  Michel T.M. Scheffers (original); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package fileio

import (
	"io"
	"os"

	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/fileio/aiff"
	"github.com/ipds-kiel/goassp/fileio/au"
	"github.com/ipds-kiel/goassp/fileio/csl"
	"github.com/ipds-kiel/goassp/fileio/kth"
	"github.com/ipds-kiel/goassp/fileio/label/mix"
	"github.com/ipds-kiel/goassp/fileio/label/sampa"
	"github.com/ipds-kiel/goassp/fileio/label/xlabel"
	"github.com/ipds-kiel/goassp/fileio/nist"
	"github.com/ipds-kiel/goassp/fileio/raw"
	"github.com/ipds-kiel/goassp/fileio/ssff"
	"github.com/ipds-kiel/goassp/fileio/wave"
	"github.com/ipds-kiel/goassp/sdo"
)

func init() {
	Register(raw.Driver)
	Register(wave.Driver)
	Register(aiff.Driver)
	Register(au.Driver)
	Register(csl.Driver)
	Register(kth.Driver)
	Register(nist.Driver)
	Register(ssff.Driver)
	Register(mix.Driver)
	Register(sampa.Driver)
	Register(xlabel.Driver)
}

// OpenOptions carries the caller-supplied defaults Open needs for the
// raw-format fallback path and buffer sizing.
type OpenOptions struct {
	// DefaultSampleRate is used when probing fails and the file is
	// treated as headerless 16-bit signed little-endian raw audio.
	DefaultSampleRate float64
	// BufferRecords is the number of records Fill loads at a time.
	// Zero defaults to 4096.
	BufferRecords int64
}

// Open opens path per mode, probes its format by magic-string
// detection, and delegates header parsing to the matching driver. On
// probe failure it falls back to raw 16-bit signed little-endian audio
// at opts.DefaultSampleRate, emitting a Warning-kind error (the file is
// still usable).
func Open(path string, mode sdo.OpenMode, opts OpenOptions) (*sdo.SDO, error) {
	flag := os.O_RDONLY
	switch mode {
	case sdo.OpenWrite:
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case sdo.OpenUpdate:
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return nil, errs.Wrap(err, errs.KindFile, errs.CodeErrOpen, "can't open file").WithAppl("path=%s", path)
	}

	d := sdo.New()
	d.BindFile(f, path, mode)

	var warn error
	if mode == sdo.OpenRead || mode == sdo.OpenUpdate {
		head := make([]byte, MagicLen)
		n, _ := io.ReadFull(f, head)
		head = head[:n]
		var drv Driver = probe(head, path)
		if drv == nil {
			drv = raw.Driver
			warn = errs.New(errs.KindWarning, errs.WarnRawForm, "file format not recognized; using RAW settings").
				WithAppl("path=%s", path)
			if opts.DefaultSampleRate <= 0 {
				opts.DefaultSampleRate = 16000
			}
			d.SampFreq = opts.DefaultSampleRate
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			return nil, errs.Wrap(err, errs.KindFile, errs.CodeErrSeek, "can't seek in file")
		}
		if err := drv.ReadHeader(d, f); err != nil {
			f.Close()
			return nil, err
		}
		d.FileFormat = drv.Format()
	}

	bufRecs := opts.BufferRecords
	if bufRecs <= 0 {
		bufRecs = 4096
	}
	if d.FileData == sdo.FileDataBinary && d.RecordSize > 0 {
		if err := d.AllocDataBuffer(bufRecs); err != nil {
			f.Close()
			return nil, err
		}
		d.SetRefill(fillFromFile)
	}
	return d, warn
}

// Close closes the bound file per action, matching closeSDO.
func Close(d *sdo.SDO, action sdo.CloseAction) error {
	return d.Close(action)
}

// Create opens path for writing and emits d's header via the driver
// registered for d.FileFormat; the caller must have already populated
// d's field descriptor chain (and called SetRecordSize/CheckRates)
// before calling Create. The header is written immediately, from d as
// it stands at this call, not at the first Flush; Flush does not
// rewrite it.
func Create(path string, d *sdo.SDO) error {
	drv, err := driverFor(d.FileFormat)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errs.Wrap(err, errs.KindFile, errs.CodeErrOpen, "can't open file").WithAppl("path=%s", path)
	}
	if err := drv.WriteHeader(d, f); err != nil {
		f.Close()
		return err
	}
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		f.Close()
		return errs.Wrap(err, errs.KindFile, errs.CodeErrSeek, "can't determine header size")
	}
	d.HeaderSize = pos
	d.BindFile(f, path, sdo.OpenWrite)
	return nil
}

// Seek positions the bound file at absolute record index recordNr,
// matching seek. Only meaningful for fixed-size (RecordSize > 0)
// records; for variable-size records it returns a Bug-kind error.
func Seek(d *sdo.SDO, recordNr int64) error {
	if d.RecordSize <= 0 {
		return errs.New(errs.KindBug, errs.CodeBadCall, "Seek requires fixed-size records")
	}
	f := d.File()
	if f == nil {
		return errs.New(errs.KindFile, errs.CodeNotOpen, "SDO has no bound file")
	}
	off := d.HeaderSize + (recordNr-d.StartRecord)*int64(d.RecordSize)
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return errs.Wrap(err, errs.KindFile, errs.CodeErrSeek, "can't seek in file")
	}
	return nil
}

// Tell returns the absolute record index the bound file is currently
// positioned at, matching tell.
func Tell(d *sdo.SDO) (int64, error) {
	f := d.File()
	if f == nil {
		return 0, errs.New(errs.KindFile, errs.CodeNotOpen, "SDO has no bound file")
	}
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, errs.Wrap(err, errs.KindFile, errs.CodeErrSeek, "can't tell position in file")
	}
	return d.StartRecord + (pos-d.HeaderSize)/int64(d.RecordSize), nil
}

// Read reads numRecords records from the bound file into buf,
// swapping byte order if FileEndian disagrees with hostEndian,
// matching read.
func Read(d *sdo.SDO, buf []byte, numRecords int64, hostEndian sdo.Endian) (int64, error) {
	f := d.File()
	if f == nil {
		return 0, errs.New(errs.KindFile, errs.CodeNotOpen, "SDO has no bound file")
	}
	need := numRecords * int64(d.RecordSize)
	if int64(len(buf)) < need {
		return 0, errs.New(errs.KindBug, errs.CodeBufSpace, "buf too small for numRecords")
	}
	n, err := io.ReadFull(f, buf[:need])
	got := int64(n) / int64(d.RecordSize)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return got, errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read file")
	}
	if d.FileEndian != hostEndian {
		for i := int64(0); i < got; i++ {
			rel := i * int64(d.RecordSize)
			d.SwapRecord(buf[rel : rel+int64(d.RecordSize)])
		}
	}
	return got, nil
}

// Write writes numRecords records from buf to the bound file, matching
// write. Byte order must already match FileEndian; Flush passes the
// SDO buffer, which holds records in file byte order, unchanged.
func Write(d *sdo.SDO, buf []byte, numRecords int64) error {
	f := d.File()
	if f == nil {
		return errs.New(errs.KindFile, errs.CodeNotOpen, "SDO has no bound file")
	}
	need := numRecords * int64(d.RecordSize)
	if _, err := f.Write(buf[:need]); err != nil {
		return errs.Wrap(err, errs.KindFile, errs.CodeErrWrite, "can't write file")
	}
	return nil
}

// fillFromFile is the sdo.Refill implementation Open installs: it
// seeks to startRecord and reads numRecords (growing the buffer first
// if needed), matching fill. Records stay in file byte order, which is
// the order GetSampleFrame decodes them in (per FileEndian).
func fillFromFile(d *sdo.SDO, startRecord, numRecords int64) error {
	if err := Seek(d, startRecord); err != nil {
		return err
	}
	buf := make([]byte, numRecords*int64(d.RecordSize))
	got, err := Read(d, buf, numRecords, d.FileEndian)
	if err != nil {
		return err
	}
	if err := d.AllocDataBuffer(numRecords); err != nil {
		return err
	}
	d.SetBufferContents(buf[:got*int64(d.RecordSize)], startRecord, got)
	return nil
}

// FlushOptions controls Flush's buffer-writeback behavior: keep or
// discard the buffer. PrependTimestamp is not acted on: Flush writes
// the buffered records only, with no timestamp.
type FlushOptions struct {
	DiscardBuffer    bool
	PrependTimestamp bool
}

// Flush writes the SDO's buffered records to the bound file, matching
// flush.
func Flush(d *sdo.SDO, opts FlushOptions) error {
	buf, n := d.BufferBytes()
	if err := Write(d, buf, n); err != nil {
		return err
	}
	if opts.DiscardBuffer {
		d.ClearDataBuffer()
	}
	return nil
}
