package g711

import "testing"

func TestALawRoundTripSegmentEndpoints(t *testing.T) {
	// A-law is lossy; round trips should land within one quantization
	// step of the original value near each segment boundary.
	tests := []struct {
		name string
		pcm  int16
	}{
		{"zero", 0},
		{"small positive", 16},
		{"small negative", -16},
		{"seg0 end", 0x1F * 8},
		{"seg3 end", 0xFF * 8},
		{"near max", 32000},
		{"near min", -32000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := EncodeALaw(tt.pcm)
			dec := DecodeALaw(enc)
			diff := int(dec) - int(tt.pcm)
			if diff < 0 {
				diff = -diff
			}
			if diff > 512 {
				t.Errorf("EncodeALaw/DecodeALaw(%d) = %d, too far off (diff %d)", tt.pcm, dec, diff)
			}
		})
	}
}

func TestALawZeroRoundTrip(t *testing.T) {
	// A-law has no zero reconstruction level: 0 encodes to the smallest
	// positive code, which decodes to +8.
	enc := EncodeALaw(0)
	if dec := DecodeALaw(enc); dec != 8 {
		t.Errorf("DecodeALaw(EncodeALaw(0)) = %d, want 8", dec)
	}
}

func TestULawRoundTripSegmentEndpoints(t *testing.T) {
	tests := []struct {
		name string
		pcm  int16
	}{
		{"zero", 0},
		{"small positive", 16},
		{"small negative", -16},
		{"seg0 end", 0x3F * 4},
		{"seg3 end", 0x1FF * 4},
		{"near max", 32000},
		{"near min", -32000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := EncodeULaw(tt.pcm)
			dec := DecodeULaw(enc)
			diff := int(dec) - int(tt.pcm)
			if diff < 0 {
				diff = -diff
			}
			if diff > 512 {
				t.Errorf("EncodeULaw/DecodeULaw(%d) = %d, too far off (diff %d)", tt.pcm, dec, diff)
			}
		})
	}
}

func TestALawToULawAgreesWithLinearPath(t *testing.T) {
	// Direct table conversion must agree with converting through PCM,
	// to within the quantization error of both codecs.
	for pcm := int16(-32000); pcm < 32000; pcm += 977 {
		a := EncodeALaw(pcm)
		direct := ALawToULaw(a)
		viaLinear := EncodeULaw(DecodeALaw(a))
		if direct != viaLinear {
			// Allow adjacent-segment rounding differences; only flag
			// divergences larger than one code.
			d := int(direct) - int(viaLinear)
			if d < 0 {
				d = -d
			}
			if d > 1 {
				t.Errorf("pcm=%d: ALawToULaw=%#x, via linear=%#x", pcm, direct, viaLinear)
			}
		}
	}
}

func TestULawToALawInverseOfALawToULaw(t *testing.T) {
	for a := 0; a < 256; a++ {
		u := ALawToULaw(byte(a))
		back := ULawToALaw(u)
		// Conversion through mu-law loses resolution for some codes: the
		// reference tables can move a code to its neighbour, even across a
		// segment boundary (0x05 and 0x85 come back as 0x1a and 0x9a). The
		// sign must always agree and the magnitude code may move by at most one.
		d := int((back^0x55)&^signBit) - int((byte(a)^0x55)&^signBit)
		if d < 0 {
			d = -d
		}
		if (back^byte(a))&signBit != 0 || d > 1 {
			t.Errorf("ULawToALaw(ALawToULaw(%#x)) = %#x, sign mismatch or more than one code away", a, back)
		}
	}
}
