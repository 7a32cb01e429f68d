/*
NAME
  ssff.go

DESCRIPTION
  ssff.go implements the Simple Signal File Format (SSFF) driver: an
  ASCII key-value header ("SSFF -- (c) SHLRC",
  SSFF_MAGIC headers.h) followed by one "Column <ident> <format>
  <dim>" line per field descriptor, an "-----------------" marker
  line, then fixed-size binary records. The most expressive of the
  supported formats: it carries an arbitrary number of tracks of
  different types in one file, which is why analysis output defaults
  to it.

AUTHOR
  Michel T.M. Scheffers (original SSFF constants, headers.h); Go port
  for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ssff implements the fileio.Driver for the Simple Signal File
// Format.
package ssff

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
	magic  = "SSFF -- (c) SHLRC"
	marker = "-----------------"

	keySystemID   = "Machine"
	valMSBFirst   = "SPARC"
	valMSBLast    = "IBM-PC"
	valMSBLast2   = "VAX"
	keyRate       = "Record_Freq"
	keyTime       = "Start_Time"
	keyComment    = "Comment"
	keyColumn     = "Column"
	keyRefRate    = "Original_Freq"
)

type driver struct{}

// Driver is the singleton SSFF format driver.
var Driver = driver{}

func (driver) Format() sdo.FileFormat { return sdo.FileFormatSSFF }

func (driver) Probe(firstBytes []byte, _ string) bool {
	return bytes.Contains(firstBytes, []byte(magic[:8]))
}

// ReadHeader parses the SSFF header line-by-line: the magic line, one
// reserved or generic key-value line per line, one Column line per
// field descriptor, and the marker line that ends the header. Data
// follow immediately, in the byte order keySystemID declares.
func (driver) ReadHeader(d *sdo.SDO, r io.Reader) error {
	br := bufio.NewReader(r)

	magicLine, err := br.ReadString('\n')
	if err != nil {
		return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read SSFF magic line")
	}
	if !strings.HasPrefix(strings.TrimRight(magicLine, "\r\n"), magic) {
		return errs.New(errs.KindFile, errs.CodeFileBadForm, "not an SSFF file")
	}
	headerSize := int64(len(magicLine))

	d.FileData = sdo.FileDataBinary
	d.FileEndian = sdo.EndianLittle // default; overridden by a Machine line

	var (
		recFreq, startTime float64
		columns            []columnSpec
	)

	for {
		line, err := br.ReadString('\n')
		headerSize += int64(len(line))
		trimmed := strings.TrimRight(line, "\r\n")
		if err != nil && trimmed == "" {
			return errs.New(errs.KindFile, errs.CodeBadHead, "SSFF header has no end marker")
		}
		if trimmed == marker {
			break
		}
		if err != nil {
			return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read SSFF header line")
		}

		key, rest, ok := strings.Cut(trimmed, " ")
		if !ok {
			continue
		}
		rest = strings.TrimSpace(rest)
		switch key {
		case keySystemID:
			switch rest {
			case valMSBFirst:
				d.FileEndian = sdo.EndianBig
			case valMSBLast, valMSBLast2:
				d.FileEndian = sdo.EndianLittle
			}
		case keyRate:
			recFreq, _ = strconv.ParseFloat(rest, 64)
		case keyTime:
			startTime, _ = strconv.ParseFloat(rest, 64)
		case keyColumn:
			cs, err := parseColumn(rest)
			if err != nil {
				return err
			}
			columns = append(columns, cs)
		case keyComment:
			d.Meta = append(d.Meta, sdo.MetaVar{Ident: keyComment, Value: rest})
		default:
			d.Meta = append(d.Meta, sdo.MetaVar{Ident: key, Value: rest})
		}
	}

	d.HeaderSize = headerSize
	for _, cs := range columns {
		fd := d.AddFieldDescriptor()
		fd.Ident = cs.ident
		fd.Type = columnDataType(cs.ident)
		fd.Format = cs.format
		fd.Coding = sdo.DataCodingLinear
		fd.NumFields = cs.dim
	}
	if err := d.SetRecordSize(); err != nil {
		return err
	}
	d.SampFreq = recFreq
	d.FrameDur = 1
	if err := d.CheckRates(); err != nil {
		return err
	}
	d.TimeZero = startTime
	if err := d.SetStartTime(); err != nil {
		return err
	}
	return nil
}

type columnSpec struct {
	ident  string
	format sdo.DataFormat
	dim    int
}

// parseColumn parses "Column <ident> <format> <dim>", where <format>
// is one of SSFF's type tags (matching KDT_SSFF, headers.h).
func parseColumn(rest string) (columnSpec, error) {
	fields := strings.Fields(rest)
	if len(fields) < 3 {
		return columnSpec{}, errs.New(errs.KindFile, errs.CodeBadHead, "malformed SSFF Column line").
			WithAppl("line=%q", rest)
	}
	dim, err := strconv.Atoi(fields[2])
	if err != nil {
		dim = 1
	}
	format, err := ssffTypeToFormat(fields[1])
	if err != nil {
		return columnSpec{}, err
	}
	return columnSpec{ident: fields[0], format: format, dim: dim}, nil
}

func ssffTypeToFormat(tag string) (sdo.DataFormat, error) {
	switch tag {
	case "CHAR":
		return sdo.DataFormatChar, nil
	case "BYTE":
		return sdo.DataFormatUint8, nil
	case "SHORT":
		return sdo.DataFormatInt16, nil
	case "LONG":
		return sdo.DataFormatInt32, nil
	case "FLOAT":
		return sdo.DataFormatReal32, nil
	case "DOUBLE":
		return sdo.DataFormatReal64, nil
	default:
		return sdo.DataFormatUndef, errs.New(errs.KindData, errs.CodeNoHandle, "unknown SSFF column type").
			WithAppl("type=%s", tag)
	}
}

func formatToSSFFType(f sdo.DataFormat) (string, error) {
	switch f {
	case sdo.DataFormatChar:
		return "CHAR", nil
	case sdo.DataFormatUint8, sdo.DataFormatInt8:
		return "BYTE", nil
	case sdo.DataFormatInt16, sdo.DataFormatUint16:
		return "SHORT", nil
	case sdo.DataFormatInt32, sdo.DataFormatUint32:
		return "LONG", nil
	case sdo.DataFormatReal32:
		return "FLOAT", nil
	case sdo.DataFormatReal64:
		return "DOUBLE", nil
	default:
		return "", errs.New(errs.KindData, errs.CodeNoHandle, "data format has no SSFF column type")
	}
}

// columnDataType recognizes the reserved SSFF track identifiers this
// rewrite's analyses emit, falling back to DataTypeUndef for arbitrary
// user-named columns read back from a file this code didn't write.
func columnDataType(ident string) sdo.DataType {
	switch ident {
	case "audio":
		return sdo.DataTypeSample
	case "rms":
		return sdo.DataTypeRMS
	case "zcr":
		return sdo.DataTypeZCR
	case "acf":
		return sdo.DataTypeACF
	case "lpc":
		return sdo.DataTypeLPC
	case "rfc":
		return sdo.DataTypeRFC
	case "gain":
		return sdo.DataTypeGain
	case "fm", "pitch":
		return sdo.DataTypePitch
	case "dft":
		return sdo.DataTypeDFT
	default:
		return sdo.DataTypeUndef
	}
}

// WriteHeader emits the magic line, Machine/Record_Freq/Start_Time,
// every carried MetaVar, one Column line per field descriptor, and the
// marker line, matching the read side's grammar.
func (driver) WriteHeader(d *sdo.SDO, w io.Writer) error {
	fds := d.FieldDescriptors()
	if len(fds) == 0 {
		return errs.New(errs.KindData, errs.CodeNoData, "SDO has no field descriptors to write")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n", magic)
	machine := valMSBLast
	if d.FileEndian == sdo.EndianBig {
		machine = valMSBFirst
	}
	fmt.Fprintf(&buf, "%s %s\n", keySystemID, machine)
	fmt.Fprintf(&buf, "%s %g\n", keyRate, d.SampFreq)
	fmt.Fprintf(&buf, "%s %g\n", keyTime, d.StartTime)
	for _, mv := range d.Meta {
		fmt.Fprintf(&buf, "%s %s\n", mv.Ident, mv.Value)
	}
	for _, fd := range fds {
		tag, err := formatToSSFFType(fd.Format)
		if err != nil {
			return err
		}
		ident := fd.Ident
		if ident == "" {
			ident = dataTypeColumnName(fd.Type)
		}
		fmt.Fprintf(&buf, "%s %s %s %d\n", keyColumn, ident, tag, fd.NumFields)
	}
	fmt.Fprintf(&buf, "%s\n", marker)

	_, err := w.Write(buf.Bytes())
	return err
}

func dataTypeColumnName(t sdo.DataType) string {
	switch t {
	case sdo.DataTypeSample:
		return "audio"
	case sdo.DataTypeRMS:
		return "rms"
	case sdo.DataTypeZCR:
		return "zcr"
	case sdo.DataTypeACF:
		return "acf"
	case sdo.DataTypeLPC:
		return "lpc"
	case sdo.DataTypeRFC:
		return "rfc"
	case sdo.DataTypeGain:
		return "gain"
	case sdo.DataTypePitch:
		return "fm"
	case sdo.DataTypeDFT:
		return "dft"
	default:
		return "data"
	}
}

// referenceSampleRate returns the Original_Freq (or ESPS-style src_sf)
// generic header variable: both are reserved meta keys, not
// first-class SDO fields.
func referenceSampleRate(d *sdo.SDO) (float64, bool) {
	for _, mv := range d.Meta {
		if mv.Ident == keyRefRate || mv.Ident == "src_sf" {
			f, err := strconv.ParseFloat(mv.Value, 64)
			return f, err == nil
		}
	}
	return 0, false
}
