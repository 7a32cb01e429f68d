/*
NAME
  kth.go

DESCRIPTION
  kth.go implements the KTH (Kungliga Tekniska Hoegskolan)/Snack ASCII
  header file driver: "key=value" lines terminated by
  <CR><LF>, the header itself ended by the byte pair <^D><^Z>, padded to
  a fixed size (KTH_DEF_HDR, headers.h). Only audio files are supported,
  matching the reference library's restriction.

AUTHOR
  Michel T.M. Scheffers (original KTH constants, headers.h); Go port
  for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package kth implements the fileio.Driver for the KTH/Snack ASCII
// header audio format.
package kth

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
	eol         = "\x0D\x0A"
	sep         = "="
	eoh         = "\x04\x1A"
	defaultSize = 1024
	defaultRate = 16000.0
)

type driver struct{}

// Driver is the singleton KTH format driver.
var Driver = driver{}

func (driver) Format() sdo.FileFormat { return sdo.FileFormatKTH }

func (driver) Probe(firstBytes []byte, _ string) bool {
	s := string(firstBytes)
	return strings.HasPrefix(s, "head=") || strings.HasPrefix(s, "header=") ||
		strings.Contains(s, "file=samp")
}

// ReadHeader reads "key=value" lines until the <^D><^Z> terminator,
// recognizing nsamp/sampfreq/nchan and preserving every other key
// as an order-preserving sdo.MetaVar so a later write reproduces it.
func (driver) ReadHeader(d *sdo.SDO, r io.Reader) error {
	br := bufio.NewReader(r)
	var (
		headerSize   int64
		consumed     int64 // bytes taken from br by the line reads
		nSamp, nChan int64 = 0, 1
		sampFreq           = defaultRate
	)

	for {
		line, err := br.ReadString('\n')
		if strings.Contains(line, eoh) {
			idx := strings.Index(line, eoh)
			consumed = headerSize + int64(len(line))
			headerSize += int64(idx + len(eoh))
			break
		}
		headerSize += int64(len(line))
		if err != nil {
			if err == io.EOF {
				return errs.New(errs.KindFile, errs.CodeBadHead, "KTH header has no end-of-header marker")
			}
			return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read KTH header line")
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "" {
			continue
		}
		key, val, ok := strings.Cut(trimmed, sep)
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		switch key {
		case "nsamp":
			nSamp, _ = strconv.ParseInt(val, 10, 64)
		case "sampfreq":
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				sampFreq = f
			}
		case "nchan":
			if n, err := strconv.ParseInt(val, 10, 64); err == nil && n > 0 {
				nChan = n
			}
		case "head", "header":
			// magic marker only; not carried as metadata.
		default:
			d.Meta = append(d.Meta, sdo.MetaVar{Ident: key, Value: val})
		}
	}

	if headerSize < defaultSize {
		if consumed < defaultSize {
			if _, err := io.CopyN(io.Discard, br, defaultSize-consumed); err != nil {
				return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't skip KTH header padding")
			}
		}
		headerSize = defaultSize
	}

	d.FileEndian = sdo.EndianBig
	d.FileData = sdo.FileDataBinary
	d.HeaderSize = headerSize

	audio := d.AddFieldDescriptor()
	audio.Ident = "audio"
	audio.Type = sdo.DataTypeSample
	audio.Format = sdo.DataFormatInt16
	audio.Coding = sdo.DataCodingLinear
	audio.NumFields = int(nChan)
	if err := d.SetRecordSize(); err != nil {
		return err
	}
	d.SampFreq = sampFreq
	d.FrameDur = 1
	if err := d.CheckRates(); err != nil {
		return err
	}
	d.NumRecords = nSamp
	return nil
}

// WriteHeader emits nsamp/sampfreq/nchan plus every carried MetaVar,
// padded with NUL bytes to defaultSize.
func (driver) WriteHeader(d *sdo.SDO, w io.Writer) error {
	audio := d.FindFieldDescriptor(sdo.DataTypeSample, "")
	if audio == nil {
		return errs.New(errs.KindData, errs.CodeNoAudio, "SDO has no audio field descriptor")
	}
	if audio.Format != sdo.DataFormatInt16 {
		return errs.New(errs.KindData, errs.CodeNoHandle, "KTH only supports 16-bit audio")
	}

	var buf bytes.Buffer
	buf.WriteString("head=" + eol)
	fmt.Fprintf(&buf, "nsamp=%d%s", d.NumRecords, eol)
	fmt.Fprintf(&buf, "sampfreq=%g%s", d.SampFreq, eol)
	fmt.Fprintf(&buf, "nchan=%d%s", audio.NumFields, eol)
	for _, mv := range d.Meta {
		fmt.Fprintf(&buf, "%s=%s%s", mv.Ident, mv.Value, eol)
	}
	buf.WriteString(eoh)

	if buf.Len() > defaultSize {
		_, err := w.Write(buf.Bytes())
		return err
	}
	padded := make([]byte, defaultSize)
	copy(padded, buf.Bytes())
	_, err := w.Write(padded)
	return err
}
