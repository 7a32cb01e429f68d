package lp

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

func TestLPRFCCoefficientsInRange(t *testing.T) {
	audio := sineSDO(150, 16000, 8000)

	a := Analysis{Output: RFC}
	opts := analysis.Defaults()
	opts.Order = 10
	a.SetDefaults(&opts)

	result, err := analysis.Run(a, audio, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	fds := result.FieldDescriptors()
	if len(fds) != 3 {
		t.Fatalf("len(fds) = %d, want 3 (rms, gain, rfc)", len(fds))
	}
	coefFD := fds[2]
	if coefFD.NumFields != 10 {
		t.Fatalf("NumFields = %d, want 10", coefFD.NumFields)
	}
	rec, err := result.RecordAt(result.NumRecords / 2)
	if err != nil {
		t.Fatalf("RecordAt: %v", err)
	}
	for m := 0; m < coefFD.NumFields; m++ {
		bits := binary.LittleEndian.Uint32(rec[coefFD.Offset+m*4:])
		v := float64(math.Float32frombits(bits))
		if math.Abs(v) > 1.0001 {
			t.Errorf("rfc[%d] = %v, want |k| < 1 for a stable filter", m, v)
		}
	}
}

func TestLPLPCFirstCoefficientIsOne(t *testing.T) {
	audio := sineSDO(150, 16000, 8000)

	a := Analysis{Output: LPC}
	opts := analysis.Defaults()
	opts.Order = 8
	a.SetDefaults(&opts)

	result, err := analysis.Run(a, audio, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	coefFD := result.FieldDescriptors()[2]
	if coefFD.NumFields != 9 {
		t.Fatalf("NumFields = %d, want 9 (order+1)", coefFD.NumFields)
	}
	rec, err := result.RecordAt(0)
	if err != nil {
		t.Fatalf("RecordAt: %v", err)
	}
	bits := binary.LittleEndian.Uint32(rec[coefFD.Offset:])
	a0 := float64(math.Float32frombits(bits))
	if math.Abs(a0-1.0) > 1e-5 {
		t.Errorf("lpc[0] = %v, want 1.0", a0)
	}
}

func TestLPFormantFrequenciesInRange(t *testing.T) {
	audio := sineSDO(300, 16000, 8000)

	a := Analysis{Output: Formant}
	opts := analysis.Defaults()
	opts.Order = 10
	a.SetDefaults(&opts)

	result, err := analysis.Run(a, audio, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	coefFD := result.FieldDescriptors()[2]
	if coefFD.NumFields != 10 {
		t.Fatalf("NumFields = %d, want 10 (order)", coefFD.NumFields)
	}
	rec, err := result.RecordAt(result.NumRecords / 2)
	if err != nil {
		t.Fatalf("RecordAt: %v", err)
	}
	for i := 0; i < coefFD.NumFields/2; i++ {
		freq := float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[coefFD.Offset+(2*i)*4:])))
		bw := float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[coefFD.Offset+(2*i+1)*4:])))
		if math.IsNaN(freq) || math.IsNaN(bw) {
			t.Fatalf("formant %d: freq=%v bw=%v, want finite", i, freq, bw)
		}
		if freq < 0 || freq > audio.SampFreq/2 {
			t.Errorf("formant %d freq = %v, want within [0, Nyquist]", i, freq)
		}
	}
}

func TestLPCepLeadingCoefficientIsLogGain(t *testing.T) {
	audio := sineSDO(150, 16000, 8000)

	a := Analysis{Output: Cep}
	opts := analysis.Defaults()
	opts.Order = 8
	a.SetDefaults(&opts)

	result, err := analysis.Run(a, audio, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	coefFD := result.FieldDescriptors()[2]
	if coefFD.NumFields != 9 {
		t.Fatalf("NumFields = %d, want 9 (order+1)", coefFD.NumFields)
	}
	rec, err := result.RecordAt(result.NumRecords / 2)
	if err != nil {
		t.Fatalf("RecordAt: %v", err)
	}
	v := float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[coefFD.Offset:])))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		t.Errorf("cep[0] = %v, want finite", v)
	}
}

func TestLPPQPOddOrderRejected(t *testing.T) {
	audio := sineSDO(150, 16000, 8000)

	a := Analysis{Output: PQP}
	opts := analysis.Defaults()
	opts.Order = 9
	a.SetDefaults(&opts)

	_, err := analysis.Run(a, audio, opts)
	if err == nil {
		t.Fatal("Run: want error for odd order with PQP output, got nil")
	}
}
