package aiff

import (
	"bytes"
	"testing"

	"github.com/ipds-kiel/goassp/sdo"
)

func TestProbe(t *testing.T) {
	if !Driver.Probe([]byte("FORM\x00\x00\x00\x00AIFF"), "") {
		t.Error("Probe on AIFF header = false, want true")
	}
	if !Driver.Probe([]byte("FORM\x00\x00\x00\x00AIFC"), "") {
		t.Error("Probe on AIFC header = false, want true")
	}
	if Driver.Probe([]byte("RIFF\x00\x00\x00\x00WAVE"), "") {
		t.Error("Probe on RIFF header = true, want false")
	}
}

func TestWriteThenReadPlainRoundTrip(t *testing.T) {
	d := sdo.New()
	d.FileFormat = sdo.FileFormatAIFF
	d.FileData = sdo.FileDataBinary
	d.SampFreq = 22050
	d.FrameDur = 1
	audio := d.AddFieldDescriptor()
	audio.Type = sdo.DataTypeSample
	audio.Format = sdo.DataFormatInt16
	audio.Coding = sdo.DataCodingLinear
	audio.NumFields = 1
	if err := d.SetRecordSize(); err != nil {
		t.Fatalf("SetRecordSize: %v", err)
	}
	d.NumRecords = 50

	var buf bytes.Buffer
	if err := Driver.WriteHeader(d, &buf); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if string(buf.Bytes()[8:12]) != "AIFF" {
		t.Fatalf("form type = %q, want AIFF (no compression tag)", buf.Bytes()[8:12])
	}

	buf.Write(make([]byte, 100)) // fake sample data matching NumRecords

	got := sdo.New()
	if err := Driver.ReadHeader(got, &buf); err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if got.SampFreq != 22050 {
		t.Errorf("SampFreq = %v, want 22050", got.SampFreq)
	}
	if got.NumRecords != 50 {
		t.Errorf("NumRecords = %d, want 50", got.NumRecords)
	}
	if got.FileEndian != sdo.EndianBig {
		t.Errorf("FileEndian = %v, want big", got.FileEndian)
	}
	gotAudio := got.FindFieldDescriptor(sdo.DataTypeSample, "")
	if gotAudio == nil || gotAudio.NumFields != 1 || gotAudio.Format != sdo.DataFormatInt16 {
		t.Fatalf("audio descriptor = %+v, want Int16 mono", gotAudio)
	}
}

func TestWriteHeaderUsesAIFCForALaw(t *testing.T) {
	d := sdo.New()
	d.SampFreq = 8000
	d.FrameDur = 1
	audio := d.AddFieldDescriptor()
	audio.Type = sdo.DataTypeSample
	audio.Format = sdo.DataFormatUint8
	audio.Coding = sdo.DataCodingALaw
	audio.NumFields = 1
	if err := d.SetRecordSize(); err != nil {
		t.Fatalf("SetRecordSize: %v", err)
	}
	d.NumRecords = 20

	var buf bytes.Buffer
	if err := Driver.WriteHeader(d, &buf); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if string(buf.Bytes()[8:12]) != "AIFC" {
		t.Errorf("form type = %q, want AIFC for A-law", buf.Bytes()[8:12])
	}
}

func TestReadHeaderRejectsSSNDBeforeCOMM(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("FORM")
	buf.Write(be32(4))
	buf.WriteString("AIFF")
	buf.WriteString("SSND")
	buf.Write(be32(8))
	buf.Write(make([]byte, 8))

	if err := Driver.ReadHeader(sdo.New(), &buf); err == nil {
		t.Error("ReadHeader with SSND before COMM: want error, got nil")
	}
}

func TestWriteHeaderRejectsNoAudioDescriptor(t *testing.T) {
	var buf bytes.Buffer
	if err := Driver.WriteHeader(sdo.New(), &buf); err == nil {
		t.Error("WriteHeader on SDO with no audio descriptor: want error, got nil")
	}
}
