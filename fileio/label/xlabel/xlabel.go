/*
NAME
  xlabel.go

DESCRIPTION
  xlabel.go implements the ESPS xlabel driver: an optional sequence of
  "keyword value" lines (signal, type, color,
  font, nfields, separator, comment) terminated by a mandatory "#"
  line (XLBL_EOH_STR, esps_lbl.h), followed by one "<time> <color>
  <name>" line per label (XLBL_LINE). Multi-tier names are joined by
  the declared separator (default ";"). Label lines are not guaranteed
  to be in chronological order.

AUTHOR
  Entropic Research Laboratory (original ESPS xlabel format,
  esps_lbl.h); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package xlabel implements the fileio.Driver for the ESPS xlabel
// format.
package xlabel

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
	eohMark         = "#"
	defaultSep      = ";"
	keySeparator    = "separator"
	keySignal       = "signal"
	keyType         = "type"
	keyColor        = "color"
	keyFont         = "font"
	keyNFields      = "nfields"
	keyComment      = "comment"
)

type driver struct{}

// Driver is the singleton ESPS xlabel format driver.
var Driver = driver{}

func (driver) Format() sdo.FileFormat { return sdo.FileFormatXLabel }

func (driver) Probe(firstBytes []byte, _ string) bool {
	s := string(firstBytes)
	return strings.Contains(s, "signal ") || strings.Contains(s, "type ") ||
		strings.HasPrefix(strings.TrimSpace(s), eohMark)
}

// ReadHeader reads the optional "keyword value" lines up to and
// including the mandatory "#" terminator, then parses one label per
// remaining line as "<time> <color> <name>" (XLBL_LINE). Names carrying
// the declared separator are split across d.Meta's "tiers" accounting
// is left to the caller; this driver keeps the joined name verbatim,
// matching how the original format leaves tier-splitting to readers.
func (driver) ReadHeader(d *sdo.SDO, r io.Reader) error {
	d.FileData = sdo.FileDataASCII
	lst := sdo.NewLabelList()
	sep := defaultSep

	sc := bufio.NewScanner(r)
	inHeader := true
	for sc.Scan() {
		line := sc.Text()
		if inHeader {
			trimmed := strings.TrimSpace(line)
			if trimmed == eohMark {
				inHeader = false
				continue
			}
			key, val, ok := strings.Cut(trimmed, " ")
			if !ok {
				continue
			}
			val = strings.TrimSpace(val)
			switch key {
			case keySeparator:
				if val != "" {
					sep = val
				}
			case keySignal, keyType, keyColor, keyFont, keyNFields, keyComment:
				d.Meta = append(d.Meta, sdo.MetaVar{Ident: key, Value: val})
			default:
				d.Meta = append(d.Meta, sdo.MetaVar{Ident: key, Value: val})
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		lbl, err := parseLine(line)
		if err != nil {
			return err
		}
		lst.Add(lbl, sdo.InsertAtTail)
	}
	if err := sc.Err(); err != nil {
		return errs.Wrap(err, errs.KindFile, errs.CodeErrRead, "can't read xlabel file")
	}
	if inHeader {
		return errs.New(errs.KindFile, errs.CodeBadHead, "xlabel file has no end-of-header marker")
	}
	d.Meta = append(d.Meta, sdo.MetaVar{Ident: keySeparator, Value: sep})
	d.SetLabels(lst)
	d.NumRecords = int64(lst.Len())
	return nil
}

// parseLine parses "<time> <color> <name...>" (XLBL_LINE); the name
// field may itself contain spaces (multi-tier names joined by the
// header's separator), so it is everything past the first two fields.
func parseLine(line string) (sdo.Label, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return sdo.Label{}, errs.New(errs.KindFile, errs.CodeBadHead, "malformed xlabel line").
			WithAppl("line=%q", line)
	}
	t, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return sdo.Label{}, errs.Wrap(err, errs.KindFile, errs.CodeBadHead, "bad xlabel time field")
	}
	name := strings.Join(fields[2:], " ")
	return sdo.Label{Name: name, Time: t, HasTime: true}, nil
}

// WriteHeader emits the carried keyword lines, the "#" terminator, and
// one XLBL_LINE per label with a fixed color of 0 (tier coloring is
// not modeled by this rewrite's Label type).
func (driver) WriteHeader(d *sdo.SDO, w io.Writer) error {
	lst := d.Labels()
	bw := bufio.NewWriter(w)
	for _, mv := range d.Meta {
		if mv.Ident == keySeparator {
			continue
		}
		fmt.Fprintf(bw, "%s %s\n", mv.Ident, mv.Value)
	}
	fmt.Fprintf(bw, "%s\n", eohMark)
	if lst != nil {
		for i := 0; i < lst.Len(); i++ {
			lbl := lst.At(i)
			fmt.Fprintf(bw, "%.9f  %d  %s\n", lbl.Time, 0, lbl.Name)
		}
	}
	return bw.Flush()
}
