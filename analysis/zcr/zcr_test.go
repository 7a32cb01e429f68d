package zcr

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/ipds-kiel/goassp/analysis"
	"github.com/ipds-kiel/goassp/sdo"
)

func sineSDO(freq, sampFreq float64, numSamples int) *sdo.SDO {
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
	buf := make([]byte, numSamples*2)
	for i := 0; i < numSamples; i++ {
		v := int16(10000 * math.Sin(2*math.Pi*freq*float64(i)/sampFreq))
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(v))
	}
	d.SetBufferContents(buf, 0, int64(numSamples))
	d.StartRecord = 0
	d.NumRecords = int64(numSamples)
	d.Backing = sdo.BackingMemory
	return d
}

func TestZCRSineFrequency(t *testing.T) {
	audio := sineSDO(200, 16000, 16000)

	a := Analysis{}
	opts := analysis.Defaults()
	a.SetDefaults(&opts)

	result, err := analysis.Run(a, audio, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.NumRecords <= 0 {
		t.Fatal("no ZCR records produced")
	}
	fd := result.FieldDescriptors()[0]
	rec, err := result.RecordAt(result.NumRecords / 2)
	if err != nil {
		t.Fatalf("RecordAt: %v", err)
	}
	bits := binary.LittleEndian.Uint32(rec[fd.Offset:])
	got := float64(math.Float32frombits(bits))
	if math.Abs(got-200) > 20 {
		t.Errorf("zcr = %v, want close to 200 Hz for a 200 Hz sine", got)
	}
}

func TestZCRSilenceIsZero(t *testing.T) {
	audio := sineSDO(0, 16000, 16000) // amplitude 0 throughout (sin(0)=0)

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
	if got != 0 {
		t.Errorf("zcr of silence = %v, want 0", got)
	}
}
