package spectrum

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

func float32At(rec []byte, off int) float64 {
	bits := binary.LittleEndian.Uint32(rec[off:])
	return float64(math.Float32frombits(bits))
}

func TestSpectrumMagnitudeHasPeakNearSignalFreq(t *testing.T) {
	sampFreq := 16000.0
	freq := 1000.0
	audio := sineSDO(freq, sampFreq, 8000)

	a := Analysis{Output: Magnitude, Linear: true}
	opts := analysis.Defaults()
	a.SetDefaults(&opts)

	result, err := analysis.Run(a, audio, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	fd := result.FieldDescriptors()[0]
	rec, err := result.RecordAt(result.NumRecords / 2)
	if err != nil {
		t.Fatalf("RecordAt: %v", err)
	}

	numBins := fd.NumFields
	fftLen := (numBins - 1) * 2
	peakBin := int(math.Round(freq / sampFreq * float64(fftLen)))

	var peakVal, offVal float64
	for m := 0; m < numBins; m++ {
		v := float32At(rec, fd.Offset+m*4)
		if m == peakBin {
			peakVal = v
		}
		if m == 2 {
			offVal = v
		}
	}
	if peakVal <= offVal {
		t.Errorf("magnitude at peak bin %d (%v) not greater than bin 2 (%v)", peakBin, peakVal, offVal)
	}
}

func TestSpectrumPowerIsMagnitudeSquared(t *testing.T) {
	audio := sineSDO(500, 16000, 4000)

	mag := Analysis{Output: Magnitude, Linear: true}
	magOpts := analysis.Defaults()
	mag.SetDefaults(&magOpts)
	magResult, err := analysis.Run(mag, audio, magOpts)
	if err != nil {
		t.Fatalf("Run magnitude: %v", err)
	}

	pow := Analysis{Output: Power, Linear: true}
	powOpts := analysis.Defaults()
	pow.SetDefaults(&powOpts)
	powResult, err := analysis.Run(pow, audio, powOpts)
	if err != nil {
		t.Fatalf("Run power: %v", err)
	}

	magFD := magResult.FieldDescriptors()[0]
	powFD := powResult.FieldDescriptors()[0]
	i := magResult.NumRecords / 2
	magRec, err := magResult.RecordAt(i)
	if err != nil {
		t.Fatalf("RecordAt mag: %v", err)
	}
	powRec, err := powResult.RecordAt(i)
	if err != nil {
		t.Fatalf("RecordAt pow: %v", err)
	}

	for m := 0; m < magFD.NumFields; m++ {
		mv := float32At(magRec, magFD.Offset+m*4)
		pv := float32At(powRec, powFD.Offset+m*4)
		want := mv * mv
		if math.Abs(pv-want) > 1e-3*math.Max(1, want) {
			t.Errorf("bin %d: power = %v, want %v (magnitude^2)", m, pv, want)
		}
	}
}

func TestSpectrumLPSmoothedProducesFiniteValues(t *testing.T) {
	audio := sineSDO(300, 16000, 8000)

	a := Analysis{Output: LPSmoothed}
	opts := analysis.Defaults()
	opts.Order = 12
	a.SetDefaults(&opts)

	result, err := analysis.Run(a, audio, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	fd := result.FieldDescriptors()[0]
	rec, err := result.RecordAt(result.NumRecords / 2)
	if err != nil {
		t.Fatalf("RecordAt: %v", err)
	}
	for m := 0; m < fd.NumFields; m++ {
		v := float32At(rec, fd.Offset+m*4)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("lp-smoothed bin %d = %v, want finite", m, v)
		}
	}
}

func TestSpectrumCepstrumFirstCoefficientFinite(t *testing.T) {
	audio := sineSDO(120, 16000, 8000)

	a := Analysis{Output: Cepstrum}
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
	v := float32At(rec, fd.Offset)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		t.Fatalf("cepstrum[0] = %v, want finite", v)
	}
}
