/*
NAME
  freq.go

DESCRIPTION
  freq.go ports the frequency-scale conversions of freqconv.c
  (semitone, mel, Bark, and ERB scales), used by pitch and formant
  analyses to report or bound values on a perceptual scale.

AUTHOR
  Michel T.M. Scheffers (original freqconv.c); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dsp

import "math"

// HzToSemitone converts frequency f (Hz) to semitones relative to
// reference frequency r (Hz).
func HzToSemitone(f, r float64) float64 {
	return 12.0 * math.Log(f/r) / math.Log(2.0)
}

// SemitoneToHz is the inverse of HzToSemitone.
func SemitoneToHz(s, r float64) float64 {
	return r * math.Pow(2.0, s/12.0)
}

// RelativeToSemitone converts a frequency ratio (no reference needed)
// to semitones, matching rel2st: used when only the difference between
// two frequencies matters.
func RelativeToSemitone(ratio float64) float64 {
	return 12.0 * math.Log(ratio) / math.Log(2.0)
}

// SemitoneToRelative is the inverse of RelativeToSemitone.
func SemitoneToRelative(s float64) float64 {
	return math.Pow(2.0, s/12.0)
}

// HzToMel converts frequency f (Hz) to the mel scale (1000 mel equals
// the pitch of a 1 kHz tone).
func HzToMel(f float64) float64 {
	return 1127.0 * math.Log(1.0+f/700.0)
}

// MelToHz is the inverse of HzToMel.
func MelToHz(m float64) float64 {
	return 700.0 * (math.Exp(m/1127.0) - 1.0)
}

// HzToBark converts frequency f (Hz) to the Bark critical-band-rate
// scale (Traunmüller 1997), valid from 200 Hz to 6.7 kHz without
// correction; a low/high-end correction is applied outside that range.
func HzToBark(f float64) float64 {
	z := (26.81 / (1.0 + 1960.0/f)) - 0.53
	switch {
	case z < 2.0:
		z += 0.15 * (2.0 - z)
	case z > 20.1:
		z += 0.22 * (z - 20.1)
	}
	return z
}

// BarkToHz is the inverse of HzToBark.
func BarkToHz(z float64) float64 {
	switch {
	case z < 2.0:
		z = (z - 0.3) / 0.85
	case z > 20.1:
		z = (z + 4.422) / 1.22
	}
	return 1960.0 / (26.81/(z+0.53) - 1.0)
}

// CriticalBandwidthAt returns the critical bandwidth in Hz centered at
// Bark rate z, matching cb_hz_at_z.
func CriticalBandwidthAt(z float64) float64 {
	return 52548.0 / (z*(z-52.56) + 690.39)
}

// HzToERB converts frequency f (Hz) to the ERB-rate scale, valid from
// 100 Hz to 6.5 kHz.
func HzToERB(f float64) float64 {
	return 11.17*math.Log((f+312.0)/(f+14675.0)) + 43.0
}

// ERBToHz is the inverse of HzToERB.
func ERBToHz(e float64) float64 {
	x := math.Exp((e - 43.0) / 11.17)
	return (312.0 - 14675.0*x) / (x - 1.0)
}

// ERBAt returns the equivalent rectangular bandwidth in Hz at
// frequency f, matching erb_hz_at_f.
func ERBAt(f float64) float64 {
	return f*(6.23e-6*f+9.339e-2) + 28.52
}
