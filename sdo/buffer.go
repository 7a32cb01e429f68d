/*
NAME
  buffer.go

DESCRIPTION
  buffer.go implements the SDO's owned record buffer: allocation,
  growth, and byte-order swaps per field format.

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
	"encoding/binary"

	"github.com/ipds-kiel/goassp/errs"
)

// AllocDataBuffer (re)allocates the SDO's record buffer to hold
// numRecords records, matching allocDataBuf. It fails with a Bug-kind
// error if the SDO is not binary or if RecordSize is not yet set
// (SetRecordSize must run first).
func (d *SDO) AllocDataBuffer(numRecords int64) error {
	if d.FileData != FileDataBinary {
		return errs.New(errs.KindBug, errs.CodeBadCall, "AllocDataBuffer called on a non-binary SDO")
	}
	if d.RecordSize <= 0 {
		return errs.New(errs.KindBug, errs.CodeBufSpace, "RecordSize is zero; call SetRecordSize first")
	}
	d.dataBuffer = make([]byte, int64(d.RecordSize)*numRecords)
	d.MaxBufRecs = numRecords
	d.BufStartRec, d.BufNumRecs = 0, 0
	d.Backing = BackingMemory
	return nil
}

// growBuffer extends the buffer's capacity to at least numRecords
// records, preserving existing content, matching the reference
// library's on-demand buffer growth during getSmpFrame.
func (d *SDO) growBuffer(numRecords int64) error {
	if numRecords <= d.MaxBufRecs {
		return nil
	}
	grown := make([]byte, int64(d.RecordSize)*numRecords)
	copy(grown, d.dataBuffer)
	d.dataBuffer = grown
	d.MaxBufRecs = numRecords
	return nil
}

// ClearDataBuffer zeroes the buffer contents and resets bookkeeping,
// matching clearDataBuf.
func (d *SDO) ClearDataBuffer() {
	for i := range d.dataBuffer {
		d.dataBuffer[i] = 0
	}
	d.BufStartRec, d.BufNumRecs = 0, 0
	d.BufNeedsSave = false
}

// FreeDataBuffer releases the buffer, matching freeDataBuf.
func (d *SDO) FreeDataBuffer() {
	d.dataBuffer = nil
	d.MaxBufRecs, d.BufStartRec, d.BufNumRecs = 0, 0, 0
	d.BufNeedsSave = false
}

// SetBufferContents installs buf as the buffer's valid content,
// starting at absolute record startRecord with numRecs valid records;
// used by the fileio layer's Refill implementation after a file read.
func (d *SDO) SetBufferContents(buf []byte, startRecord, numRecs int64) {
	copy(d.dataBuffer, buf)
	d.BufStartRec = startRecord
	d.BufNumRecs = numRecs
}

// BufferBytes returns the buffer's valid bytes and the number of
// valid records, for the fileio layer's Flush implementation.
func (d *SDO) BufferBytes() ([]byte, int64) {
	n := d.BufNumRecs * int64(d.RecordSize)
	return d.dataBuffer[:n], d.BufNumRecs
}

// RecordAt returns a slice over the bytes of the buffer record at
// absolute index r, or an error if r is outside the buffered range
// [BufStartRec, BufStartRec+BufNumRecs).
func (d *SDO) RecordAt(r int64) ([]byte, error) {
	if r < d.BufStartRec || r >= d.BufStartRec+d.BufNumRecs {
		return nil, errs.New(errs.KindBug, errs.CodeBufRange, "request to access data not in buffer").
			WithAppl("record=%d bufStart=%d bufNumRecs=%d", r, d.BufStartRec, d.BufNumRecs)
	}
	rel := (r - d.BufStartRec) * int64(d.RecordSize)
	return d.dataBuffer[rel : rel+int64(d.RecordSize)], nil
}

// swapField byte-swaps one scalar field value of the given format
// in-place, honoring NumFields repetitions.
func swapField(buf []byte, fd *FieldDescriptor) {
	size := fd.Format.ByteSize()
	if size <= 1 {
		return
	}
	for i := 0; i < fd.NumFields; i++ {
		off := fd.Offset + i*size
		if off+size > len(buf) {
			return
		}
		field := buf[off : off+size]
		for lo, hi := 0, size-1; lo < hi; lo, hi = lo+1, hi-1 {
			field[lo], field[hi] = field[hi], field[lo]
		}
	}
}

// SwapRecord byte-swaps every multi-byte field within one record's
// worth of bytes in place, matching swapRecord.
func (d *SDO) SwapRecord(record []byte) {
	for _, fd := range d.ddl {
		swapField(record, fd)
	}
}

// SwapDataBuffer byte-swaps every buffered record in place, matching
// swapDataBuf.
func (d *SDO) SwapDataBuffer() {
	for i := int64(0); i < d.BufNumRecs; i++ {
		rel := i * int64(d.RecordSize)
		d.SwapRecord(d.dataBuffer[rel : rel+int64(d.RecordSize)])
	}
}

// BlockSwap swaps numUnits contiguous unitSize-byte units in place
// within buf, matching blockSwap: used for homogeneous buffers (e.g.
// raw audio) where a full FD-chain walk is unnecessary.
func BlockSwap(buf []byte, unitSize int, numUnits int) error {
	if unitSize <= 1 {
		return nil
	}
	need := unitSize * numUnits
	if need > len(buf) {
		return errs.New(errs.KindBug, errs.CodeBufRange, "BlockSwap: buffer shorter than unitSize*numUnits")
	}
	for u := 0; u < numUnits; u++ {
		off := u * unitSize
		unit := buf[off : off+unitSize]
		for lo, hi := 0, unitSize-1; lo < hi; lo, hi = lo+1, hi-1 {
			unit[lo], unit[hi] = unit[hi], unit[lo]
		}
	}
	return nil
}

// hostOrder is the byte order this process's integer codec helpers
// assume when no explicit endian is given; the runtime otherwise
// always threads Endian explicitly through codec calls.
var hostOrder = binary.LittleEndian
