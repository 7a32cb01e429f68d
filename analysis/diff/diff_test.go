package diff

import (
	"encoding/binary"
	"testing"

	"github.com/ipds-kiel/goassp/sdo"
)

func rampSDO(samples []int16) *sdo.SDO {
	d := sdo.New()
	d.SampFreq = 16000
	d.FileData = sdo.FileDataBinary
	d.FileEndian = sdo.EndianLittle
	fd := d.AddFieldDescriptor()
	fd.Type = sdo.DataTypeSample
	fd.Format = sdo.DataFormatInt16
	fd.Coding = sdo.DataCodingLinear
	fd.NumFields = 1
	if err := d.SetRecordSize(); err != nil {
		panic(err)
	}
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}
	d.SetBufferContents(buf, 0, int64(len(samples)))
	d.StartRecord = 0
	d.NumRecords = int64(len(samples))
	d.Backing = sdo.BackingMemory
	return d
}

func TestDifferentiateForwardLinearRamp(t *testing.T) {
	samples := []int16{0, 10, 20, 30, 40}
	audio := rampSDO(samples)
	out, err := Differentiate(audio, 1, Forward)
	if err != nil {
		t.Fatalf("Differentiate: %v", err)
	}
	if len(out) != len(samples) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(samples))
	}
	for i := 0; i < len(out)-1; i++ {
		if out[i] != 10 {
			t.Errorf("out[%d] = %d, want 10", i, out[i])
		}
	}
	// Last sample has no x[n+1] beyond the buffer; GetSampleFrame zero-fills.
	if out[len(out)-1] != -40 {
		t.Errorf("out[last] = %d, want -40 (zero-padded boundary)", out[len(out)-1])
	}
}

func TestDifferentiateCentral(t *testing.T) {
	samples := []int16{0, 10, 20, 30, 40}
	audio := rampSDO(samples)
	out, err := Differentiate(audio, 1, Central)
	if err != nil {
		t.Fatalf("Differentiate: %v", err)
	}
	for i := 1; i < len(out)-1; i++ {
		if out[i] != 10 {
			t.Errorf("out[%d] = %d, want 10 for a linear ramp", i, out[i])
		}
	}
}
