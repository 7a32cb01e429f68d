/*
NAME
  mix.go

DESCRIPTION
  mix.go implements the IPdS MIX label file driver: an optional fixed
  header (TEXT:/PHONET:/"CT 1"/SAMPLE_RATE:/LABELS:
  keyword lines) followed by one "FR <frameNr> <name> <sampleNr>
  <time> sec" line per label (MIX_LBL_LINE, ipds_lbl.h).

AUTHOR
  Michel T.M. Scheffers (original MIX keyword/line formats,
  ipds_lbl.h); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package mix implements the fileio.Driver for IPdS MIX label files.
package mix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ipds-kiel/goassp/errs"
	"github.com/ipds-kiel/goassp/sdo"
)

const (
	sampleRate = 16000.0 // MIX_SFR: fixed by the original MIX programme

	lblPrefix = "FR "
	sfrPrefix = "SAMPLE_RATE:"
)

type driver struct{}

// Driver is the singleton IPdS MIX label format driver.
var Driver = driver{}

func (driver) Format() sdo.FileFormat { return sdo.FileFormatIPdSMix }

func (driver) Probe(firstBytes []byte, _ string) bool {
	s := string(firstBytes)
	return strings.HasPrefix(s, "TEXT:") || strings.HasPrefix(s, lblPrefix) ||
		strings.HasPrefix(s, sfrPrefix)
}

// ReadHeader skips any optional TEXT:/PHONET:/CT 1/SAMPLE_RATE:/
// LABELS: header lines, then parses every "FR" line into d's label
// list. MIX carries no audio; FileData is ASCII, RecordSize stays 0
// (variable-length text records).
func (driver) ReadHeader(d *sdo.SDO, r io.Reader) error {
	d.FileData = sdo.FileDataASCII
	d.SampFreq = sampleRate
	lst := sdo.NewLabelList()

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, sfrPrefix) {
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				if f, err := strconv.ParseFloat(fields[1], 64); err == nil {
					d.SampFreq = f
				}
			}
			continue
		}
		if !strings.HasPrefix(line, lblPrefix) {
			continue // header/orthography/canonical-form line, not a label
		}
		lbl, err := parseLine(line)
		if err != nil {
			return err
		}
		lst.Add(lbl, sdo.InsertAtTail)
	}
	if err := sc.Err(); err != nil {
		return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read MIX label file")
	}
	d.SetLabels(lst)
	d.NumRecords = int64(lst.Len())
	return nil
}

// parseLine parses "FR <frameNr> <name> <sampleNr> <time> sec",
// matching MIX_LBL_LINE (ipds_lbl.h). frameNr is discarded: sampleNr
// and time are the two time representations this rewrite keeps.
func parseLine(line string) (sdo.Label, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return sdo.Label{}, errs.New(errs.KindFile, errs.CodeBadHead, "malformed MIX label line").
			WithAppl("line=%q", line)
	}
	sampleNr, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return sdo.Label{}, errs.Wrap(err, errs.KindFile, errs.CodeBadHead, "bad MIX sample number field")
	}
	time, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return sdo.Label{}, errs.Wrap(err, errs.KindFile, errs.CodeBadHead, "bad MIX time field")
	}
	return sdo.Label{
		Name:            fields[2],
		SampleNumber:    sampleNr,
		HasSampleNumber: true,
		Time:            time,
		HasTime:         true,
	}, nil
}

// WriteHeader emits a SAMPLE_RATE: line followed by one MIX_LBL_LINE
// per label, numbering frames sequentially from 1.
func (driver) WriteHeader(d *sdo.SDO, w io.Writer) error {
	lst := d.Labels()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "SAMPLE_RATE: %.1f Hz\n", d.SampFreq)
	if lst != nil {
		for i := 0; i < lst.Len(); i++ {
			lbl := lst.At(i)
			fmt.Fprintf(bw, "FR %9d %-10s %7d  %.7f sec\n", i+1, lbl.Name, lbl.SampleNumber, lbl.Time)
		}
	}
	return bw.Flush()
}
