/*
NAME
  sdo.go

DESCRIPTION
  sdo.go implements the SDO struct and its lifecycle operations
  (New/Clear/Copy), the top-level container for one signal or
  parameter stream: sample rate, field descriptor chain, label list,
  backing storage and the buffered record window analyses read frames
  from.

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
	"github.com/ausocean/utils/logging"
)

// Log is the package-level logger injection point. It is nil until a
// caller assigns one; logging calls in this package check for nil
// first.
var Log logging.Logger

// MetaVar is one named, string-valued header variable. Order is
// preserved so unrecognized header keys round-trip unchanged.
type MetaVar struct {
	Ident string
	Value string
}

// AnalysisParams is the capability interface an analysis-specific
// generic parameter block satisfies.
type AnalysisParams interface {
	// Verify checks that the parameters are internally consistent
	// and consistent with the bound audio SDO, returning a Data-kind
	// error otherwise.
	Verify(audio *SDO) error
	// Close releases any DSP workspace (window coefficients,
	// autocorrelation scratch buffers) the block holds.
	Close()
}

// SDO is the signal data object: the in-memory representation of one
// signal or parameter stream.
type SDO struct {
	FilePath string
	OpenMode OpenMode
	Backing  Backing

	FileFormat FileFormat
	FileData   FileDataFormat
	FileEndian Endian

	Version    int64
	HeaderSize int64

	SampFreq float64 // nominal sample rate in Hz
	DataRate float64 // record rate; for audio equals SampFreq
	FrameDur int64    // duration of one record, in audio samples; -1 = variable

	RecordSize int // bytes per record; 0 = variable

	StartRecord int64 // absolute number of the first record stored
	NumRecords  int64 // total records on disk or semantically defined

	TimeZero  float64 // time in foreign format corresponding to ASSP time 0
	StartTime float64 // reference time of the first record in the file

	SepChars string
	EOL      string

	ddl  []*FieldDescriptor
	Meta []MetaVar

	Generic AnalysisParams

	// dataBuffer is a []byte for binary/audio signals or a *LabelList
	// for label-format text variants.
	dataBuffer   []byte
	labels       *LabelList
	MaxBufRecs   int64
	BufStartRec  int64
	BufNumRecs   int64
	BufNeedsSave bool

	file    readWriteSeekCloser
	refill  Refill
	procBuf []float64 // reusable workspace for GetSamplePointer
}

// ReadWriteSeekCloser is the minimal file handle surface the SDO
// needs; the fileio layer supplies a concrete *os.File or in-memory
// implementation via BindFile.
type ReadWriteSeekCloser interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	Close() error
}

type readWriteSeekCloser = ReadWriteSeekCloser

// BindFile attaches an open file handle to the SDO and sets Backing to
// BackingFile, matching the reference library's fp/openMode fields.
func (d *SDO) BindFile(f ReadWriteSeekCloser, path string, mode OpenMode) {
	d.file = f
	d.FilePath = path
	d.OpenMode = mode
	d.Backing = BackingFile
}

// File returns the bound file handle, or nil if the SDO is unbound.
func (d *SDO) File() ReadWriteSeekCloser { return d.file }

// New returns an empty, unbound SDO, matching allocDObj+initDObj.
func New() *SDO {
	return &SDO{
		FrameDur: 1,
		Backing:  BackingNone,
	}
}

// FieldDescriptors returns the FD chain in slice order.
func (d *SDO) FieldDescriptors() []*FieldDescriptor { return d.ddl }

// Labels returns the label list backing this SDO, or nil if this SDO
// does not hold label data.
func (d *SDO) Labels() *LabelList { return d.labels }

// SetLabels installs lst as this SDO's label list and sets Backing to
// BackingMemory.
func (d *SDO) SetLabels(lst *LabelList) {
	d.labels = lst
	d.Backing = BackingMemory
}

// Clear resets an SDO to its post-New state, releasing the FD chain,
// metadata, buffer, generic block and any bound file, matching
// clearDObj. FilePath and format fields are preserved (matching the
// reference library's clearDObj, which keeps identity but drops
// content).
func (d *SDO) Clear() {
	if d.Generic != nil {
		d.Generic.Close()
		d.Generic = nil
	}
	d.ddl = nil
	d.Meta = nil
	d.dataBuffer = nil
	d.labels = nil
	d.MaxBufRecs, d.BufStartRec, d.BufNumRecs = 0, 0, 0
	d.BufNeedsSave = false
	d.Backing = BackingNone
}

// Close releases the buffer and, per action, the FD chain and
// descriptors, and closes any bound file.
func (d *SDO) Close(action CloseAction) error {
	var err error
	if d.file != nil {
		err = d.file.Close()
		d.file = nil
	}
	switch action {
	case CloseKeepBuffer:
		// Buffer and descriptors survive; only the file handle closes.
	case CloseClearBuffer:
		d.dataBuffer = nil
		d.labels = nil
		d.BufStartRec, d.BufNumRecs = 0, 0
	case CloseFreeAll:
		d.Clear()
	}
	return err
}

// Copy deep-copies src's field descriptors, metadata and scalar header
// fields into d, matching copyDObj. The buffer and any bound file are
// not copied; d starts unbound (BackingNone).
func (d *SDO) Copy(src *SDO) {
	*d = *src
	d.file = nil
	d.dataBuffer = nil
	d.labels = nil
	d.Backing = BackingNone
	d.MaxBufRecs, d.BufStartRec, d.BufNumRecs = 0, 0, 0

	d.ddl = make([]*FieldDescriptor, len(src.ddl))
	for i, fd := range src.ddl {
		cp := *fd
		d.ddl[i] = &cp
	}
	d.Meta = append([]MetaVar(nil), src.Meta...)
}

// logDebug calls Log.Debug if a logger has been installed.
func logDebug(msg string, args ...interface{}) {
	if Log != nil {
		Log.Debug(msg, args...)
	}
}
