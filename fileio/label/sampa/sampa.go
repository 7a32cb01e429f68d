/*
NAME
  sampa.go

DESCRIPTION
  sampa.go implements the IPdS SAMPA label file driver: an optional
  header (file name, oend/kend/hend keyword
  lines, sample_rate) followed by one "<sampleNr> <name> <time>" line
  per label (SAM_LBL_LINE, ipds_lbl.h).

AUTHOR
  Michel T.M. Scheffers (original SAMPA keyword/line formats,
  ipds_lbl.h); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package sampa implements the fileio.Driver for IPdS SAMPA label
// files.
package sampa

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
	sampleRate = 16000.0 // default, overridden by a "sample_rate" header line

	eohID = "hend"
	sfrID = "sample_rate"
)

type driver struct{}

// Driver is the singleton IPdS SAMPA label format driver.
var Driver = driver{}

func (driver) Format() sdo.FileFormat { return sdo.FileFormatIPdSSampa }

func (driver) Probe(firstBytes []byte, _ string) bool {
	return strings.Contains(string(firstBytes), sfrID)
}

// ReadHeader skips lines up to and including the "hend" header
// terminator (if present), recognizing a "sample_rate" line along the
// way, then parses every remaining line as "<sampleNr> <name> [time]"
// per SAM_LBL_LINE/SAM_MIN_FIELDS/SAM_MAX_FIELDS (ipds_lbl.h): the
// original format predates the time column, so it is optional.
func (driver) ReadHeader(d *sdo.SDO, r io.Reader) error {
	d.FileData = sdo.FileDataASCII
	d.SampFreq = sampleRate
	lst := sdo.NewLabelList()

	sc := bufio.NewScanner(r)
	inHeader := true
	for sc.Scan() {
		line := sc.Text()
		if inHeader {
			trimmed := strings.TrimSpace(line)
			if trimmed == eohID {
				inHeader = false
				continue
			}
			if strings.HasPrefix(trimmed, sfrID) {
				fields := strings.Fields(trimmed)
				if len(fields) >= 2 {
					if f, err := strconv.ParseFloat(fields[1], 64); err == nil {
						d.SampFreq = f
					}
				}
				continue
			}
			if looksLikeLabelLine(trimmed) {
				inHeader = false
				// fall through: this line is already a label line
			} else {
				continue
			}
		}
		lbl, err := parseLine(line)
		if err != nil {
			return err
		}
		lst.Add(lbl, sdo.InsertAtTail)
	}
	if err := sc.Err(); err != nil {
		return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read SAMPA label file")
	}
	d.SetLabels(lst)
	d.NumRecords = int64(lst.Len())
	return nil
}

func looksLikeLabelLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return false
	}
	_, err := strconv.ParseInt(fields[0], 10, 64)
	return err == nil
}

// parseLine parses "<sampleNr> <name> [<time>]", matching SAM_LBL_LINE
// with the optional (historically absent) time column.
func parseLine(line string) (sdo.Label, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return sdo.Label{}, errs.New(errs.KindFile, errs.CodeBadHead, "malformed SAMPA label line").
			WithAppl("line=%q", line)
	}
	sampleNr, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return sdo.Label{}, errs.Wrap(err, errs.KindFile, errs.CodeBadHead, "bad SAMPA sample number field")
	}
	lbl := sdo.Label{Name: fields[1], SampleNumber: sampleNr, HasSampleNumber: true}
	if len(fields) >= 3 {
		if t, err := strconv.ParseFloat(fields[2], 64); err == nil {
			lbl.Time = t
			lbl.HasTime = true
		}
	}
	return lbl, nil
}

// WriteHeader emits a sample_rate/hend header followed by one
// SAM_LBL_LINE per label (always including the time column).
func (driver) WriteHeader(d *sdo.SDO, w io.Writer) error {
	lst := d.Labels()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "sample_rate %.1f Hz\n", d.SampFreq)
	fmt.Fprintf(bw, "%s\n", eohID)
	if lst != nil {
		for i := 0; i < lst.Len(); i++ {
			lbl := lst.At(i)
			fmt.Fprintf(bw, "%9d %-10s %12.7f\n", lbl.SampleNumber, lbl.Name, lbl.Time)
		}
	}
	return bw.Flush()
}
