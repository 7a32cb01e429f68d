package nist

import (
	"bytes"
	"testing"

	"github.com/ipds-kiel/goassp/sdo"
)

func TestProbe(t *testing.T) {
	if !Driver.Probe([]byte("NIST_1A\n   1024\n"), "") {
		t.Error("Probe on NIST_1A header = false, want true")
	}
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	d := sdo.New()
	d.FileFormat = sdo.FileFormatNIST
	d.FileData = sdo.FileDataBinary
	d.SampFreq = 16000
	d.FrameDur = 1
	d.Meta = []sdo.MetaVar{{Ident: "database_id", Value: "TEST"}}
	audio := d.AddFieldDescriptor()
	audio.Type = sdo.DataTypeSample
	audio.Format = sdo.DataFormatInt16
	audio.Coding = sdo.DataCodingLinear
	audio.NumFields = 1
	if err := d.SetRecordSize(); err != nil {
		t.Fatalf("SetRecordSize: %v", err)
	}
	d.NumRecords = 60

	var buf bytes.Buffer
	if err := Driver.WriteHeader(d, &buf); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if buf.Len() != headerSize {
		t.Fatalf("header length = %d, want %d", buf.Len(), headerSize)
	}
	buf.Write(make([]byte, 120))

	got := sdo.New()
	if err := Driver.ReadHeader(got, &buf); err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if got.SampFreq != 16000 {
		t.Errorf("SampFreq = %v, want 16000", got.SampFreq)
	}
	if got.NumRecords != 60 {
		t.Errorf("NumRecords = %d, want 60", got.NumRecords)
	}
	found := false
	for _, mv := range got.Meta {
		if mv.Ident == "database_id" && mv.Value == "TEST" {
			found = true
		}
	}
	if !found {
		t.Errorf("Meta = %+v, want database_id=TEST preserved", got.Meta)
	}
}

func TestWriteHeaderRejectsUnsupportedCoding(t *testing.T) {
	d := sdo.New()
	audio := d.AddFieldDescriptor()
	audio.Type = sdo.DataTypeSample
	audio.Format = sdo.DataFormatUint8
	audio.Coding = sdo.DataCodingALaw
	audio.NumFields = 1
	d.SetRecordSize()

	var buf bytes.Buffer
	if err := Driver.WriteHeader(d, &buf); err == nil {
		t.Error("WriteHeader with A-law coding: want error, got nil")
	}
}
