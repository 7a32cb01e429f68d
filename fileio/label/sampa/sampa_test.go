package sampa

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ipds-kiel/goassp/sdo"
)

func TestProbe(t *testing.T) {
	if !Driver.Probe([]byte("sample_rate 16000.0 Hz\nhend\n"), "") {
		t.Error("Probe on sample_rate header = false, want true")
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
	if !strings.Contains(buf.String(), eohID) {
		t.Error("written content has no hend terminator")
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

func TestReadHeaderAcceptsMissingTimeColumn(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("hend\n")
	buf.WriteString("      160 a:\n")
	d := sdo.New()
	if err := Driver.ReadHeader(d, &buf); err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	lst := d.Labels()
	if lst == nil || lst.Len() != 1 {
		t.Fatalf("labels = %v, want 1", lst)
	}
	if lst.At(0).HasTime {
		t.Error("label with no time field: HasTime = true, want false")
	}
}

func TestReadHeaderRejectsMalformedLine(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("hend\n")
	buf.WriteString("160 a:\n")
	buf.WriteString("justoneword\n")
	d := sdo.New()
	if err := Driver.ReadHeader(d, &buf); err == nil {
		t.Error("ReadHeader with too-few-fields label line: want error, got nil")
	}
}
