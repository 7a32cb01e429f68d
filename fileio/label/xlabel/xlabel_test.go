package xlabel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ipds-kiel/goassp/sdo"
)

func TestProbe(t *testing.T) {
	if !Driver.Probe([]byte("signal test\ntype 0\n#\n"), "") {
		t.Error("Probe on signal/type header = false, want true")
	}
	if Driver.Probe([]byte("RIFF"), "") {
		t.Error("Probe on RIFF header = true, want false")
	}
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	d := sdo.New()
	d.Meta = append(d.Meta, sdo.MetaVar{Ident: keySignal, Value: "test.wav"})
	d.Meta = append(d.Meta, sdo.MetaVar{Ident: keyType, Value: "0"})
	lst := sdo.NewLabelList()
	lst.Add(sdo.Label{Name: "a:", Time: 0.125, HasTime: true}, sdo.InsertAtTail)
	lst.Add(sdo.Label{Name: "n;m", Time: 0.250, HasTime: true}, sdo.InsertAtTail)
	d.SetLabels(lst)

	var buf bytes.Buffer
	if err := Driver.WriteHeader(d, &buf); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if !strings.Contains(buf.String(), "\n#\n") {
		t.Error("written content has no end-of-header marker")
	}

	got := sdo.New()
	if err := Driver.ReadHeader(got, &buf); err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	gotLst := got.Labels()
	if gotLst == nil || gotLst.Len() != 2 {
		t.Fatalf("labels = %v, want 2", gotLst)
	}
	if gotLst.At(0).Name != "a:" || gotLst.At(0).Time != 0.125 {
		t.Errorf("label 0 = %+v, want name=a: time=0.125", gotLst.At(0))
	}
	if gotLst.At(1).Name != "n;m" {
		t.Errorf("label 1 name = %q, want n;m", gotLst.At(1).Name)
	}
	var foundSignal bool
	for _, mv := range got.Meta {
		if mv.Ident == keySignal && mv.Value == "test.wav" {
			foundSignal = true
		}
	}
	if !foundSignal {
		t.Error("signal header keyword not preserved")
	}
}

func TestReadHeaderRejectsMissingTerminator(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("signal test.wav\n")
	buf.WriteString("type 0\n")
	d := sdo.New()
	if err := Driver.ReadHeader(d, &buf); err == nil {
		t.Error("ReadHeader with no # terminator: want error, got nil")
	}
}
