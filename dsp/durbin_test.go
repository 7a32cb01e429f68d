package dsp

import (
	"math"
	"testing"
)

func TestDurbinSilentFrame(t *testing.T) {
	lpc, rfc, sqerr, err := Durbin([]float64{0, 0, 0}, 2)
	if err != nil {
		t.Fatalf("Durbin: %v", err)
	}
	if lpc[0] != 1 || lpc[1] != 0 || lpc[2] != 0 {
		t.Errorf("lpc = %v, want [1 0 0]", lpc)
	}
	if rfc[0] != 0 || rfc[1] != 0 {
		t.Errorf("rfc = %v, want [0 0]", rfc)
	}
	if sqerr != 0 {
		t.Errorf("sqerr = %v, want 0", sqerr)
	}
}

func TestDurbinOrderOne(t *testing.T) {
	// acf for a pure DC-like decaying signal: acf[0]=1, acf[1]=0.5.
	lpc, rfc, sqerr, err := Durbin([]float64{1, 0.5}, 1)
	if err != nil {
		t.Fatalf("Durbin: %v", err)
	}
	if math.Abs(lpc[0]-1) > 1e-9 || math.Abs(lpc[1]+0.5) > 1e-9 {
		t.Errorf("lpc = %v, want [1 -0.5]", lpc)
	}
	if math.Abs(rfc[0]+0.5) > 1e-9 {
		t.Errorf("rfc[0] = %v, want -0.5", rfc[0])
	}
	if math.Abs(sqerr-0.75) > 1e-9 {
		t.Errorf("sqerr = %v, want 0.75", sqerr)
	}
}

func TestDurbinOrderThreeStability(t *testing.T) {
	// A strongly autocorrelated signal should yield |rfc| < 1 (stable filter).
	acf := []float64{10, 8, 5, 2}
	lpc, rfc, sqerr, err := Durbin(acf, 3)
	if err != nil {
		t.Fatalf("Durbin: %v", err)
	}
	if lpc[0] != 1 {
		t.Errorf("lpc[0] = %v, want 1", lpc[0])
	}
	for i, k := range rfc {
		if math.Abs(k) >= 1 {
			t.Errorf("rfc[%d] = %v, want |k| < 1 for a stable filter", i, k)
		}
	}
	if sqerr < 0 {
		t.Errorf("sqerr = %v, want >= 0", sqerr)
	}
}

func TestDurbinRejectsShortACF(t *testing.T) {
	if _, _, _, err := Durbin([]float64{1, 2}, 5); err == nil {
		t.Error("Durbin with acf shorter than order: want error, got nil")
	}
}
