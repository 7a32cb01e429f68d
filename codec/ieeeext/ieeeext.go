/*
NAME
  ieeeext.go

DESCRIPTION
  ieeeext.go implements machine-independent conversion between float64
  and the 80-bit IEEE-754 extended precision format (MSB first) used by
  the AIFF/AIFF-C sample-rate field. Ported from the Apple/SGI reference
  implementation by Malcolm Slaney and Ken Turkowski; NaNs and
  infinities convert to +/-Inf (the original's HUGE_VAL), denormals are
  scaled back into range on decode, and encoding out-of-range magnitudes
  saturates to signed infinity.

AUTHOR
  Malcolm Slaney, Ken Turkowski (original Apple/SGI implementation);
  Michel T.M. Scheffers (data-model-independent integral types); Go port
  for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ieeeext converts between float64 and the 80-bit IEEE-754
// extended precision representation used for the AIFF/AIFF-C sample
// rate field.
package ieeeext

import "math"

const extendedSize = 10

// Encode converts num to its 10-byte, big-endian, 80-bit IEEE extended
// precision representation.
func Encode(num float64) [extendedSize]byte {
	var bytes [extendedSize]byte

	var sign int16
	if num < 0.0 {
		sign = int16(-0x8000) // 0x8000 as int16
		num = -num
	}

	var expon int16
	var hiMant, loMant uint32

	if num == 0.0 {
		expon = 0
		hiMant, loMant = 0, 0
	} else {
		fMant, argExp := math.Frexp(num)
		expon = int16(argExp)
		if expon > 16384 || !(fMant < 1) {
			// Infinity or NaN.
			expon = sign | 0x7FFF
			hiMant, loMant = 0, 0
		} else {
			expon += 16382
			if expon < 0 {
				// Denormalized.
				fMant = math.Ldexp(fMant, int(expon))
				expon = 0
			}
			expon |= sign
			fMant = math.Ldexp(fMant, 32)
			fsMant := math.Floor(fMant)
			hiMant = floatToUnsigned(fsMant)
			fMant = math.Ldexp(fMant-fsMant, 32)
			fsMant = math.Floor(fMant)
			loMant = floatToUnsigned(fsMant)
		}
	}

	bytes[0] = byte((expon >> 8) & 0x00FF)
	bytes[1] = byte(expon & 0x00FF)
	bytes[2] = byte((hiMant >> 24) & 0x00FF)
	bytes[3] = byte((hiMant >> 16) & 0x00FF)
	bytes[4] = byte((hiMant >> 8) & 0x00FF)
	bytes[5] = byte(hiMant & 0x00FF)
	bytes[6] = byte((loMant >> 24) & 0x00FF)
	bytes[7] = byte((loMant >> 16) & 0x00FF)
	bytes[8] = byte((loMant >> 8) & 0x00FF)
	bytes[9] = byte(loMant & 0x00FF)
	return bytes
}

// Decode converts a 10-byte, big-endian, 80-bit IEEE extended precision
// value back to float64.
func Decode(bytes [extendedSize]byte) float64 {
	expon := (int16(bytes[0]&0x7F) << 8) | int16(bytes[1])
	hiMant := uint32(bytes[2])<<24 | uint32(bytes[3])<<16 | uint32(bytes[4])<<8 | uint32(bytes[5])
	loMant := uint32(bytes[6])<<24 | uint32(bytes[7])<<16 | uint32(bytes[8])<<8 | uint32(bytes[9])

	var f float64
	switch {
	case expon == 0 && hiMant == 0 && loMant == 0:
		f = 0
	case expon == 0x7FFF:
		f = math.Inf(1)
	default:
		e := int(expon) - 16383
		f = math.Ldexp(unsignedToFloat(hiMant), e-31)
		f += math.Ldexp(unsignedToFloat(loMant), e-63)
	}
	if bytes[0]&0x80 != 0 {
		return -f
	}
	return f
}

func floatToUnsigned(f float64) uint32 {
	return uint32(int32(f-2147483648.0)+2147483647) + 1
}

func unsignedToFloat(u uint32) float64 {
	return float64(int32(u-2147483647-1)) + 2147483648.0
}
