/*
NAME
  linear.go

DESCRIPTION
  linear.go implements the bijective conversions between packed on-disk
  integers and the canonical in-memory numeric type used throughout the
  signal data object runtime: binary-offset <-> two's complement signed
  integers (parametric in the number of significant bits), packed 24-bit
  sign extension, and MSB-first bit-array access.

AUTHOR
  Michel T.M. Scheffers (original); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package linear converts between packed on-disk integer encodings and
// signed integers: binary-offset codings (used by 8-bit WAVE/AU audio
// and a handful of legacy formats), packed 24-bit samples, and
// MSB-first bit arrays (label orientation flags, articulograph view/
// facing flags).
package linear

import "github.com/pkg/errors"

// SignedToBinaryOffset converts a two's-complement signed sample with
// numBits significant bits to its binary-offset (unsigned) equivalent,
// where zero maps to the midpoint 1<<(numBits-1).
func SignedToBinaryOffset(v int32, numBits uint) uint32 {
	return uint32(v) + (1 << (numBits - 1))
}

// BinaryOffsetToSigned is the inverse of SignedToBinaryOffset.
func BinaryOffsetToSigned(v uint32, numBits uint) int32 {
	return int32(v - (1 << (numBits - 1)))
}

// DecodePacked24 sign-extends three bytes, ordered per bigEndian (true
// = big-endian), into a 32-bit signed integer.
func DecodePacked24(b [3]byte, bigEndian bool) int32 {
	var u uint32
	if bigEndian {
		u = uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
	} else {
		u = uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])
	}
	if u&0x800000 != 0 {
		u |= 0xFF000000
	}
	return int32(u)
}

// EncodePacked24 is the inverse of DecodePacked24; v is saturated to
// the 24-bit signed range before packing.
func EncodePacked24(v int32, bigEndian bool) [3]byte {
	if v > 0x7FFFFF {
		v = 0x7FFFFF
	} else if v < -0x800000 {
		v = -0x800000
	}
	u := uint32(v) & 0xFFFFFF
	var b [3]byte
	if bigEndian {
		b[0] = byte(u >> 16)
		b[1] = byte(u >> 8)
		b[2] = byte(u)
	} else {
		b[2] = byte(u >> 16)
		b[1] = byte(u >> 8)
		b[0] = byte(u)
	}
	return b
}

// BitVal returns the value (0 or 1) of bit bitNr in bitArray. Bit
// numbering is reversed from the usual C convention: bit 0 is the most
// significant bit of byte 0. This numbering is observable in label
// begin/end orientation flags and articulograph view/facing flags
// and must be preserved exactly.
func BitVal(bitArray []byte, bitNr uint) (int, error) {
	byteIdx := bitNr >> 3
	if int(byteIdx) >= len(bitArray) {
		return -1, errors.New("linear: bit index out of range")
	}
	mask := byte(1) << (7 - bitNr%8)
	if bitArray[byteIdx]&mask != 0 {
		return 1, nil
	}
	return 0, nil
}

// BitSet sets bit bitNr in bitArray to 1.
func BitSet(bitArray []byte, bitNr uint) error {
	byteIdx := bitNr >> 3
	if int(byteIdx) >= len(bitArray) {
		return errors.New("linear: bit index out of range")
	}
	mask := byte(1) << (7 - bitNr%8)
	bitArray[byteIdx] |= mask
	return nil
}

// BitClr sets bit bitNr in bitArray to 0.
func BitClr(bitArray []byte, bitNr uint) error {
	byteIdx := bitNr >> 3
	if int(byteIdx) >= len(bitArray) {
		return errors.New("linear: bit index out of range")
	}
	mask := byte(1) << (7 - bitNr%8)
	bitArray[byteIdx] &^= mask
	return nil
}
