package mix

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ipds-kiel/goassp/sdo"
)

func TestProbe(t *testing.T) {
	if !Driver.Probe([]byte("SAMPLE_RATE: 16000.0 Hz\n"), "") {
		t.Error("Probe on SAMPLE_RATE header = false, want true")
	}
	if Driver.Probe([]byte("RIFF"), "") {
		t.Error("Probe on RIFF header = true, want false")
	}
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	d := sdo.New()
	d.SampFreq = 16000
	lst := sdo.NewLabelList()
	lst.Add(sdo.Label{Name: "a:", SampleNumber: 160, HasSampleNumber: true, Time: 0.01, HasTime: true}, sdo.InsertAtTail)
	lst.Add(sdo.Label{Name: "n", SampleNumber: 320, HasSampleNumber: true, Time: 0.02, HasTime: true}, sdo.InsertAtTail)
	d.SetLabels(lst)

	var buf bytes.Buffer
	if err := Driver.WriteHeader(d, &buf); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if !strings.Contains(buf.String(), "FR ") {
		t.Error("written content has no FR label line")
	}

	got := sdo.New()
	if err := Driver.ReadHeader(got, &buf); err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if got.SampFreq != 16000 {
		t.Errorf("SampFreq = %v, want 16000", got.SampFreq)
	}
	gotLst := got.Labels()
	if gotLst == nil || gotLst.Len() != 2 {
		t.Fatalf("labels = %v, want 2", gotLst)
	}
	if gotLst.At(0).Name != "a:" || gotLst.At(0).SampleNumber != 160 {
		t.Errorf("label 0 = %+v, want name=a: sampleNumber=160", gotLst.At(0))
	}
	if gotLst.At(1).Name != "n" || gotLst.At(1).Time != 0.02 {
		t.Errorf("label 1 = %+v, want name=n time=0.02", gotLst.At(1))
	}
}

func TestReadHeaderRejectsMalformedLine(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("FR incomplete\n")
	d := sdo.New()
	if err := Driver.ReadHeader(d, &buf); err == nil {
		t.Error("ReadHeader with malformed FR line: want error, got nil")
	}
}
