package acf

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/ipds-kiel/goassp/analysis"
	"github.com/ipds-kiel/goassp/dsp"
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

func TestACFZeroLagIsEnergy(t *testing.T) {
	audio := sineSDO(200, 16000, 16000)

	a := Analysis{}
	opts := analysis.Defaults()
	opts.Order = 12
	a.SetDefaults(&opts)
	opts.WindowFunc = dsp.Rectangular

	result, err := analysis.Run(a, audio, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	fd := result.FieldDescriptors()[0]
	if fd.NumFields != 13 {
		t.Fatalf("NumFields = %d, want 13", fd.NumFields)
	}
	rec, err := result.RecordAt(result.NumRecords / 2)
	if err != nil {
		t.Fatalf("RecordAt: %v", err)
	}
	r0bits := binary.LittleEndian.Uint32(rec[fd.Offset:])
	r0 := float64(math.Float32frombits(r0bits))
	if r0 <= 0 {
		t.Errorf("r[0] = %v, want positive (signal energy)", r0)
	}
}

func TestACFNormalizedZeroLagIsOne(t *testing.T) {
	audio := sineSDO(200, 16000, 16000)

	a := Analysis{Norm: true}
	opts := analysis.Defaults()
	opts.Order = 8
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
	r0 := float64(math.Float32frombits(bits))
	if math.Abs(r0-1.0) > 1e-5 {
		t.Errorf("normalized r[0] = %v, want 1.0", r0)
	}
}

func TestACFOrderTooLargeIsRejected(t *testing.T) {
	audio := sineSDO(200, 16000, 16000)

	a := Analysis{}
	opts := analysis.Defaults()
	opts.Order = 100000
	a.SetDefaults(&opts)

	_, err := analysis.Run(a, audio, opts)
	if err == nil {
		t.Fatal("Run: want error for order too large, got nil")
	}
}
