package csl

import (
	"bytes"
	"testing"

	"github.com/ipds-kiel/goassp/sdo"
)

func TestProbe(t *testing.T) {
	if !Driver.Probe([]byte("FORMDS16"), "") {
		t.Error("Probe on FORM/DS16 header = false, want true")
	}
	if Driver.Probe([]byte("FORMAIFF"), "") {
		t.Error("Probe on FORM/AIFF header = true, want false")
	}
}

func TestWriteThenReadMonoRoundTrip(t *testing.T) {
	d := sdo.New()
	d.FileFormat = sdo.FileFormatCSL
	d.FileData = sdo.FileDataBinary
	d.SampFreq = 16000
	d.FrameDur = 1
	audio := d.AddFieldDescriptor()
	audio.Type = sdo.DataTypeSample
	audio.Format = sdo.DataFormatInt16
	audio.Coding = sdo.DataCodingLinear
	audio.NumFields = 1
	if err := d.SetRecordSize(); err != nil {
		t.Fatalf("SetRecordSize: %v", err)
	}
	d.NumRecords = 30

	var buf bytes.Buffer
	if err := Driver.WriteHeader(d, &buf); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	buf.Write(make([]byte, 60))

	got := sdo.New()
	if err := Driver.ReadHeader(got, &buf); err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if got.SampFreq != 16000 {
		t.Errorf("SampFreq = %v, want 16000", got.SampFreq)
	}
	if got.NumRecords != 30 {
		t.Errorf("NumRecords = %d, want 30", got.NumRecords)
	}
	gotAudio := got.FindFieldDescriptor(sdo.DataTypeSample, "")
	if gotAudio == nil || gotAudio.NumFields != 1 {
		t.Fatalf("audio descriptor = %+v, want mono", gotAudio)
	}
}

func TestWriteHeaderStereoUsesSDAB(t *testing.T) {
	d := sdo.New()
	d.SampFreq = 44100
	d.FrameDur = 1
	audio := d.AddFieldDescriptor()
	audio.Type = sdo.DataTypeSample
	audio.Format = sdo.DataFormatInt16
	audio.Coding = sdo.DataCodingLinear
	audio.NumFields = 2
	if err := d.SetRecordSize(); err != nil {
		t.Fatalf("SetRecordSize: %v", err)
	}
	d.NumRecords = 5

	var buf bytes.Buffer
	if err := Driver.WriteHeader(d, &buf); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("SDAB")) {
		t.Error("stereo header does not contain SDAB data chunk id")
	}
}

func TestWriteHeaderRejectsNonInt16(t *testing.T) {
	d := sdo.New()
	audio := d.AddFieldDescriptor()
	audio.Type = sdo.DataTypeSample
	audio.Format = sdo.DataFormatInt24
	audio.Coding = sdo.DataCodingLinear
	audio.NumFields = 1
	d.SetRecordSize()

	var buf bytes.Buffer
	if err := Driver.WriteHeader(d, &buf); err == nil {
		t.Error("WriteHeader with 24-bit audio: want error, got nil")
	}
}
