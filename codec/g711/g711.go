/*
NAME
  g711.go

DESCRIPTION
  g711.go implements the CCITT G.711 A-law and mu-law codecs and the
  direct A-law <-> mu-law conversion, table-driven per the reference
  CCITT specification. These codecs are lossy: A-law carries 13 bits of
  dynamic range and mu-law 14 bits, both compressed into 8 bits and
  expanded back into the signed 16-bit domain. Encoders saturate
  silently on overflow rather than returning an error.

AUTHOR
  Michel T.M. Scheffers (original, adapted from the Sun/Snack reference
  implementation); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package g711 implements the CCITT G.711 A-law and mu-law speech
// codecs plus the direct table-based conversion between the two.
package g711

const (
	signBit     = 0x80
	quantMask   = 0x0F
	segShift    = 4
	segMask     = 0x70
	numSegments = 8
)

// Segment endpoints from the CCITT specification.
var segAEnd = [numSegments]int16{0x1F, 0x3F, 0x7F, 0xFF, 0x1FF, 0x3FF, 0x7FF, 0xFFF}
var segUEnd = [numSegments]int16{0x3F, 0x7F, 0xFF, 0x1FF, 0x3FF, 0x7FF, 0xFFF, 0x1FFF}

func lawSegment(val int16, table *[numSegments]int16) int {
	for i, end := range table {
		if val <= end {
			return i
		}
	}
	return numSegments
}

// EncodeALaw converts a 16-bit linear PCM sample to 8-bit A-law.
func EncodeALaw(pcm int16) byte {
	v := pcm / 8 // scale to 13-bit range
	var mask byte
	if v >= 0 {
		mask = 0xD5 // sign bit = 1
	} else {
		mask = 0x55
		v = -v - 1
	}
	seg := lawSegment(v, &segAEnd)
	var a byte
	if seg >= numSegments {
		a = 0x7F
	} else {
		a = byte(seg << segShift)
		if seg < 2 {
			a |= byte(v>>1) & quantMask
		} else {
			a |= byte(v>>uint(seg)) & quantMask
		}
	}
	return a ^ mask
}

// DecodeALaw converts an 8-bit A-law value to 16-bit linear PCM.
func DecodeALaw(a byte) int16 {
	a ^= 0x55
	pcm := int16(a&quantMask) << segShift
	seg := (int16(a) & segMask) >> segShift
	switch seg {
	case 0:
		pcm += 8
	case 1:
		pcm += 0x108
	default:
		pcm += 0x108
		pcm <<= uint(seg - 1)
	}
	if a&signBit != 0 {
		return pcm
	}
	return -pcm
}

const (
	ulawBias = 0x84
	ulawClip = 8159
)

// EncodeULaw converts a 16-bit linear PCM sample to 8-bit mu-law.
func EncodeULaw(pcm int16) byte {
	v := pcm / 4 // clip to -8192..8191
	var mask byte
	if v < 0 {
		v = -v
		mask = 0x7F
	} else {
		mask = 0xFF
	}
	if v > ulawClip {
		v = ulawClip
	}
	v += ulawBias >> 2
	seg := lawSegment(v, &segUEnd)
	var u byte
	if seg >= numSegments {
		u = 0x7F
	} else {
		u = byte(seg<<segShift) | (byte(v>>uint(seg+1)) & quantMask)
	}
	return u ^ mask
}

// DecodeULaw converts an 8-bit mu-law value (in ISDN-complemented form)
// to 16-bit linear PCM.
func DecodeULaw(u byte) int16 {
	u = ^u
	pcm := (int16(u&quantMask) << 3) + ulawBias
	pcm <<= uint((u & segMask) >> segShift)
	if u&signBit != 0 {
		return ulawBias - pcm
	}
	return pcm - ulawBias
}

// u- to A-law conversion table (CCITT G.711).
var u2a = [128]byte{
	1, 1, 2, 2, 3, 3, 4, 4,
	5, 5, 6, 6, 7, 7, 8, 8,
	9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24,
	25, 27, 29, 31, 33, 34, 35, 36,
	37, 38, 39, 40, 41, 42, 43, 44,
	46, 48, 49, 50, 51, 52, 53, 54,
	55, 56, 57, 58, 59, 60, 61, 62,
	64, 65, 66, 67, 68, 69, 70, 71,
	72, 73, 74, 75, 76, 77, 78, 79,
	80, 82, 83, 84, 85, 86, 87, 88,
	89, 90, 91, 92, 93, 94, 95, 96,
	97, 98, 99, 100, 101, 102, 103, 104,
	105, 106, 107, 108, 109, 110, 111, 112,
	113, 114, 115, 116, 117, 118, 119, 120,
	121, 122, 123, 124, 125, 126, 127, 128,
}

// A- to u-law conversion table (CCITT G.711).
var a2u = [128]byte{
	1, 3, 5, 7, 9, 11, 13, 15,
	16, 17, 18, 19, 20, 21, 22, 23,
	24, 25, 26, 27, 28, 29, 30, 31,
	32, 32, 33, 33, 34, 34, 35, 35,
	36, 37, 38, 39, 40, 41, 42, 43,
	44, 45, 46, 47, 48, 48, 49, 49,
	50, 51, 52, 53, 54, 55, 56, 57,
	58, 59, 60, 61, 62, 63, 64, 64,
	65, 66, 67, 68, 69, 70, 71, 72,
	73, 74, 75, 76, 77, 78, 79, 80,
	80, 81, 82, 83, 84, 85, 86, 87,
	88, 89, 90, 91, 92, 93, 94, 95,
	96, 97, 98, 99, 100, 101, 102, 103,
	104, 105, 106, 107, 108, 109, 110, 111,
	112, 113, 114, 115, 116, 117, 118, 119,
	120, 121, 122, 123, 124, 125, 126, 127,
}

// ALawToULaw converts an A-law byte directly to mu-law without going
// through linear PCM, per the CCITT conversion tables.
func ALawToULaw(a byte) byte {
	if a&signBit != 0 {
		return 0xFF ^ a2u[a^0xD5]
	}
	return 0x7F ^ a2u[a^0x55]
}

// ULawToALaw converts a mu-law byte directly to A-law.
func ULawToALaw(u byte) byte {
	if u&signBit != 0 {
		return 0xD5 ^ (u2a[u^0xFF] - 1)
	}
	return 0x55 ^ (u2a[u^0x7F] - 1)
}
