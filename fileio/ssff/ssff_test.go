package ssff

import (
	"bytes"
	"testing"

	"github.com/ipds-kiel/goassp/sdo"
)

func TestProbe(t *testing.T) {
	if !Driver.Probe([]byte("SSFF -- (c) SHLRC\n"), "") {
		t.Error("Probe on SSFF header = false, want true")
	}
	if Driver.Probe([]byte("RIFF"), "") {
		t.Error("Probe on RIFF header = true, want false")
	}
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	d := sdo.New()
	d.FileFormat = sdo.FileFormatSSFF
	d.FileData = sdo.FileDataBinary
	d.FileEndian = sdo.EndianLittle
	d.SampFreq = 100
	d.FrameDur = 1
	rms := d.AddFieldDescriptor()
	rms.Ident = "rms"
	rms.Type = sdo.DataTypeRMS
	rms.Format = sdo.DataFormatReal32
	rms.Coding = sdo.DataCodingLinear
	rms.NumFields = 1
	if err := d.SetRecordSize(); err != nil {
		t.Fatalf("SetRecordSize: %v", err)
	}
	d.NumRecords = 10

	var buf bytes.Buffer
	if err := Driver.WriteHeader(d, &buf); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(marker)) {
		t.Error("written header has no marker line")
	}
	buf.Write(make([]byte, 40))

	got := sdo.New()
	if err := Driver.ReadHeader(got, &buf); err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if got.SampFreq != 100 {
		t.Errorf("SampFreq = %v, want 100", got.SampFreq)
	}
	if got.FileEndian != sdo.EndianLittle {
		t.Errorf("FileEndian = %v, want little", got.FileEndian)
	}
	fds := got.FieldDescriptors()
	if len(fds) != 1 || fds[0].Ident != "rms" || fds[0].Format != sdo.DataFormatReal32 {
		t.Fatalf("field descriptors = %+v, want one rms/Real32 column", fds)
	}
}

func TestReadHeaderPreservesUnknownKeys(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("SSFF -- (c) SHLRC\n")
	buf.WriteString("Machine IBM-PC\n")
	buf.WriteString("Record_Freq 16000\n")
	buf.WriteString("Start_Time 0\n")
	buf.WriteString("Original_Freq 48000\n")
	buf.WriteString("Column audio SHORT 1\n")
	buf.WriteString(marker + "\n")

	d := sdo.New()
	if err := Driver.ReadHeader(d, &buf); err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	freq, ok := referenceSampleRate(d)
	if !ok || freq != 48000 {
		t.Errorf("referenceSampleRate = %v, %v, want 48000, true", freq, ok)
	}
}

func TestWriteHeaderRejectsNoFieldDescriptors(t *testing.T) {
	var buf bytes.Buffer
	if err := Driver.WriteHeader(sdo.New(), &buf); err == nil {
		t.Error("WriteHeader with no field descriptors: want error, got nil")
	}
}
