package rms

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/ipds-kiel/goassp/analysis"
	"github.com/ipds-kiel/goassp/dsp"
	"github.com/ipds-kiel/goassp/sdo"
)

func monoInt16SDO(samples []int16, sampFreq float64) *sdo.SDO {
	d := sdo.New()
	d.SampFreq = sampFreq
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

func TestRMSLinearConstantSignal(t *testing.T) {
	samples := make([]int16, 16000)
	for i := range samples {
		samples[i] = 10000
	}
	audio := monoInt16SDO(samples, 16000)

	a := Analysis{Linear: true}
	opts := analysis.Defaults()
	a.SetDefaults(&opts)
	opts.WindowFunc = dsp.Rectangular // avoid window taper for this check

	result, err := analysis.Run(a, audio, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.NumRecords <= 0 {
		t.Fatal("no RMS records produced")
	}
	fd := result.FieldDescriptors()[0]
	rec, err := result.RecordAt(0)
	if err != nil {
		t.Fatalf("RecordAt: %v", err)
	}
	bits := binary.LittleEndian.Uint32(rec[fd.Offset:])
	got := float64(math.Float32frombits(bits))
	if math.Abs(got-10000) > 1.0 {
		t.Errorf("rms = %v, want close to 10000 for a constant-amplitude signal", got)
	}
}

func TestRMSdBFloor(t *testing.T) {
	samples := make([]int16, 16000) // all zero -> silence
	audio := monoInt16SDO(samples, 16000)

	a := Analysis{}
	opts := analysis.Defaults()
	a.SetDefaults(&opts)

	result, err := analysis.Run(a, audio, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	fd := result.FieldDescriptors()[0]
	rec, err := result.RecordAt(0)
	if err != nil {
		t.Fatalf("RecordAt: %v", err)
	}
	bits := binary.LittleEndian.Uint32(rec[fd.Offset:])
	got := float64(math.Float32frombits(bits))
	if got != minDB {
		t.Errorf("rms(dB) of silence = %v, want %v (the floor)", got, minDB)
	}
}
