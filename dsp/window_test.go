package dsp

import (
	"math"
	"testing"
)

func TestCoefficientsClosedForm(t *testing.T) {
	for _, shape := range []Shape{Rectangular, Triangular, Hann, Hamming, Blackman} {
		coeffs, meta, err := Coefficients(shape, 16, nil, 0)
		if err != nil {
			t.Fatalf("Coefficients(%s): %v", shape, err)
		}
		if len(coeffs) != 16 {
			t.Errorf("%s: len = %d, want 16", shape, len(coeffs))
		}
		if meta.CoherentGain <= 0 {
			t.Errorf("%s: CoherentGain = %v, want > 0", shape, meta.CoherentGain)
		}
	}
}

func TestCoefficientsRectangularAllOnes(t *testing.T) {
	coeffs, _, err := Coefficients(Rectangular, 8, nil, 0)
	if err != nil {
		t.Fatalf("Coefficients: %v", err)
	}
	for i, c := range coeffs {
		if math.Abs(c-1) > 1e-9 {
			t.Errorf("coeffs[%d] = %v, want 1", i, c)
		}
	}
}

func TestCoefficientsRequiresGeneratorForAdvancedShapes(t *testing.T) {
	if _, _, err := Coefficients(Kaiser, 16, nil, 3.0); err == nil {
		t.Error("Coefficients(Kaiser, nil generator): want error, got nil")
	}
}

type stubGenerator struct{}

func (stubGenerator) Generate(shape Shape, n int, param float64) ([]float64, Metadata, error) {
	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = 1
	}
	return coeffs, Metadata{CoherentGain: 1}, nil
}

func TestCoefficientsDelegatesToGenerator(t *testing.T) {
	coeffs, meta, err := Coefficients(Kaiser, 4, stubGenerator{}, 3.0)
	if err != nil {
		t.Fatalf("Coefficients: %v", err)
	}
	if len(coeffs) != 4 || meta.CoherentGain != 1 {
		t.Errorf("Coefficients via generator = %v, %v, want len 4, gain 1", coeffs, meta)
	}
}

func TestCoherentGain(t *testing.T) {
	if g := CoherentGain([]float64{1, 1, 1, 1}); g != 1 {
		t.Errorf("CoherentGain(all ones) = %v, want 1", g)
	}
	if g := CoherentGain(nil); g != 0 {
		t.Errorf("CoherentGain(nil) = %v, want 0", g)
	}
}
