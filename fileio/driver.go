/*
NAME
  driver.go

DESCRIPTION
  driver.go declares the format driver contract and a registry format
  drivers register themselves into: Probe for
  magic-string detection, ReadHeader/WriteHeader for the header
  round-trip. One driver exists per recognized format (fileio/raw,
  fileio/wave, fileio/aiff, fileio/au, fileio/ssff, fileio/nist,
  fileio/csl, fileio/kth, fileio/label/{mix,sampa,xlabel}).

AUTHOR
  Michel T.M. Scheffers (original); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package fileio implements the polymorphic file I/O layer: one
// format driver per recognized header convention, a driver registry
// keyed by magic-string probing, and the SDO-level operations
// (Open/Create/Close/Seek/Tell/Read/Write/Flush, plus the buffer refill
// Open installs) that every driver shares. There is no text Print
// operation.
package fileio

import (
	"io"

	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

// Driver is the format driver contract every recognized file format
// implements.
type Driver interface {
	// Format returns the FileFormat this driver handles.
	Format() sdo.FileFormat
	// Probe reports whether firstBytes (at least MagicLen bytes, or
	// fewer at true EOF) identifies this format.
	Probe(firstBytes []byte, path string) bool
	// ReadHeader populates d's descriptors, SampFreq, FileEndian,
	// StartRecord, NumRecords, TimeZero, HeaderSize and any
	// format-specific metadata by reading from r, which is positioned
	// at the start of the file.
	ReadHeader(d *sdo.SDO, r io.Reader) error
	// WriteHeader emits bytes to w matching ReadHeader's inverse.
	WriteHeader(d *sdo.SDO, w io.Writer) error
}

// MagicLen is the number of leading bytes Open reads before probing;
// large enough for every driver's longest magic/chunk-id check.
const MagicLen = 16

var registry []Driver

// Register adds a driver to the registry consulted by Open. The
// built-in drivers are registered by this package's init() in io.go,
// following
// the teacher's codec-registration convention (codec/adpcm, codec/pcm
// each stand alone and are wired explicitly by their callers; this
// registry generalizes that to a lookup instead of an explicit
// construction per format, since Open must pick a driver by sniffing
// file content it hasn't parsed yet).
func Register(drv Driver) {
	registry = append(registry, drv)
}

// probe returns the first driver whose Probe matches, or nil.
func probe(firstBytes []byte, path string) Driver {
	for _, drv := range registry {
		if drv.Probe(firstBytes, path) {
			return drv
		}
	}
	return nil
}

// driverFor returns the registered driver for format, or an error if
// none is registered.
func driverFor(format sdo.FileFormat) (Driver, error) {
	for _, drv := range registry {
		if drv.Format() == format {
			return drv, nil
		}
	}
	return nil, errs.New(errs.KindFile, errs.CodeFileBadForm, "no driver registered for format").
		WithAppl("format=%v", format)
}
