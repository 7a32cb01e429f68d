package dsp

import (
	"math"
	"testing"
)

func TestFFTLengthMismatch(t *testing.T) {
	if _, err := FFT([]float64{1, 2, 3}, 2); err == nil {
		t.Error("FFT with n < len(x): want error, got nil")
	}
}

func TestFFTDCComponent(t *testing.T) {
	x := []float64{1, 1, 1, 1}
	X, err := FFT(x, 4)
	if err != nil {
		t.Fatalf("FFT: %v", err)
	}
	if math.Abs(real(X[0])-4) > 1e-9 {
		t.Errorf("DC bin = %v, want 4", X[0])
	}
}

func TestRFFTLength(t *testing.T) {
	x := make([]float64, 8)
	X, err := RFFT(x, 8)
	if err != nil {
		t.Fatalf("RFFT: %v", err)
	}
	if len(X) != 5 {
		t.Errorf("RFFT length = %d, want 5", len(X))
	}
}

func TestMagnitude(t *testing.T) {
	X := []complex128{complex(3, 4), complex(0, 0)}
	m := Magnitude(X)
	if math.Abs(m[0]-5) > 1e-9 {
		t.Errorf("Magnitude[0] = %v, want 5", m[0])
	}
	if m[1] != 0 {
		t.Errorf("Magnitude[1] = %v, want 0", m[1])
	}
}

func TestIFFTRoundTrip(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	X, err := FFT(x, 4)
	if err != nil {
		t.Fatalf("FFT: %v", err)
	}
	y := IFFT(X)
	for i, v := range x {
		if math.Abs(real(y[i])-v) > 1e-9 {
			t.Errorf("IFFT(FFT(x))[%d] = %v, want %v", i, real(y[i]), v)
		}
	}
}
