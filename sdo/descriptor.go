/*
NAME
  descriptor.go

DESCRIPTION
  descriptor.go implements the field descriptor (FD) chain: one
  FieldDescriptor per logical track within a record, and the
  SDO-chain operations to add, find and size descriptors. The FD
  chain is held as an owned []*FieldDescriptor slice rather than an
  intrusive linked list.

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
	"github.com/ipds-kiel/goassp/errs"
)

// FieldDescriptor describes one logical field within a record,
// matching DDESC (dataobj.h) minus the intrusive `next` pointer.
type FieldDescriptor struct {
	Ident       string
	Unit        string
	Factor      string
	Type        DataType
	Format      DataFormat
	Coding      DataCoding
	Orientation Endian
	NumBits     uint16
	ZeroValue   uint32
	Offset      int
	NumFields   int
	AscFormat   string
	SepChars    string
}

// size returns the byte size this descriptor occupies within a binary
// record: ByteSize() * NumFields, or 0 for variable-length formats.
func (fd *FieldDescriptor) size() int {
	return fd.Format.ByteSize() * fd.NumFields
}

// AddFieldDescriptor appends a new, zero-valued field descriptor with
// NumFields defaulted to 1 to the SDO's chain and returns it for the
// caller to fill in. Offsets are stale until SetRecordSize is called.
func (d *SDO) AddFieldDescriptor() *FieldDescriptor {
	fd := &FieldDescriptor{NumFields: 1}
	d.ddl = append(d.ddl, fd)
	return fd
}

// FindFieldDescriptor returns the first descriptor in the chain whose
// Type matches typ and, if ident is non-empty, whose Ident also
// matches; it returns nil if none matches.
func (d *SDO) FindFieldDescriptor(typ DataType, ident string) *FieldDescriptor {
	for _, fd := range d.ddl {
		if fd.Type != typ {
			continue
		}
		if ident == "" || fd.Ident == ident {
			return fd
		}
	}
	return nil
}

// SetRecordSize walks the FD chain, assigns each descriptor's Offset
// left-to-right packed, and sets d.RecordSize. It fails (a Data-class
// error) if any field has zero NumFields or an unknown/variable
// Format while FileData is binary, since variable-length fields
// cannot be offset-addressed.
func (d *SDO) SetRecordSize() error {
	if d.FileData != FileDataBinary {
		d.RecordSize = 0
		return nil
	}
	offset := 0
	for _, fd := range d.ddl {
		if fd.NumFields < 1 {
			return errs.New(errs.KindData, errs.CodeBadArgs, "field descriptor has zero NumFields").
				WithAppl("ident=%s", fd.Ident)
		}
		size := fd.size()
		if size == 0 {
			return errs.New(errs.KindData, errs.CodeBadArgs, "field descriptor has unknown or variable format for a binary record").
				WithAppl("ident=%s format=%v", fd.Ident, fd.Format)
		}
		fd.Offset = offset
		offset += size
	}
	d.RecordSize = offset
	return nil
}
