/*
NAME
  types.go

DESCRIPTION
  types.go declares the enumerations shared by every signal data object:
  file format, on-disk data encoding (ASCII/binary), semantic field
  type, physical field format, sample coding, byte order, and buffer
  backing, trimmed to the formats this package actually drives.

AUTHOR
  Michel T.M. Scheffers (original); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package sdo implements the signal data object runtime: the uniform
// in-memory representation of a sampled or framed signal, its field
// descriptor chain, record buffer, and label list, shared by every
// format driver in fileio and every pipeline in analysis.
package sdo

// FileFormat identifies the on-disk container format of an SDO.
type FileFormat int

const (
	FileFormatUndef FileFormat = iota
	FileFormatRaw
	FileFormatSSFF
	FileFormatWave
	FileFormatWaveExtended
	FileFormatAIFF
	FileFormatAIFC
	FileFormatAU
	FileFormatNIST
	FileFormatCSL
	FileFormatKTH
	FileFormatIPdSMix
	FileFormatIPdSSampa
	FileFormatXLabel
)

func (f FileFormat) String() string {
	switch f {
	case FileFormatRaw:
		return "raw"
	case FileFormatSSFF:
		return "SSFF"
	case FileFormatWave:
		return "WAVE"
	case FileFormatWaveExtended:
		return "WAVE_X"
	case FileFormatAIFF:
		return "AIFF"
	case FileFormatAIFC:
		return "AIFF-C"
	case FileFormatAU:
		return "AU"
	case FileFormatNIST:
		return "NIST"
	case FileFormatCSL:
		return "CSL"
	case FileFormatKTH:
		return "KTH"
	case FileFormatIPdSMix:
		return "IPdS-MIX"
	case FileFormatIPdSSampa:
		return "IPdS-SAMPA"
	case FileFormatXLabel:
		return "xlabel"
	default:
		return "undef"
	}
}

// FileDataFormat is the basic data encoding of a file: ASCII text or
// packed binary records.
type FileDataFormat int

const (
	FileDataUndef FileDataFormat = iota
	FileDataASCII
	FileDataBinary
)

// DataType is the semantic kind carried by one field descriptor,
// matching dtype_e (dataobj.h) trimmed to the types this rewrite's
// analyses and drivers actually produce or consume.
type DataType int

const (
	DataTypeUndef DataType = iota
	DataTypeTime
	DataTypeRecordNr
	DataTypeSample    // DT_SMP: sampled audio
	DataTypeMagnitude // DT_MAG
	DataTypeEnergy    // DT_NRG
	DataTypePower     // DT_PWR
	DataTypeRMS       // DT_RMS: RMS amplitude in dB
	DataTypeZCR       // DT_ZCR
	DataTypePitch     // DT_PIT
	DataTypeACF       // DT_ACF: autocorrelation function
	DataTypeLPC       // DT_LPC: LP filter (A-) coefficients
	DataTypeRFC       // DT_RFC: reflection coefficients
	DataTypeARF       // DT_ARF: area function
	DataTypeLAR       // DT_LAR: log area ratios
	DataTypeLPCepstrum
	DataTypeGain // DT_GAIN: filter gain, dB
	DataTypePQP  // DT_PQP: 2nd order filter parameters
	DataTypeFormantFreqBw
	DataTypeFormantFreq
	DataTypeDFT    // DT_DFT: complex spectrum
	DataTypeFTAmp  // DT_FTAMP: linear amplitude spectrum
	DataTypeFTPow  // DT_FTPOW: power spectrum in dB
	DataTypeFTPhi  // DT_FTPHI: phase spectrum
	DataTypeFTLPS  // DT_FTLPS: LP-smoothed spectrum
	DataTypeFTCSS  // DT_FTCSS: cepstrally smoothed spectrum
	DataTypeFTCep  // DT_FTCEP: cepstrum
	DataTypeLabel  // DT_LBL
	DataTypeMarker // DT_MRK
)

// DataFormat is the physical on-disk encoding of one field, matching
// dform_e.
type DataFormat int

const (
	DataFormatUndef DataFormat = iota
	DataFormatBit
	DataFormatString
	DataFormatChar
	DataFormatUint8
	DataFormatInt8
	DataFormatUint16
	DataFormatInt16
	DataFormatUint24
	DataFormatInt24
	DataFormatUint32
	DataFormatInt32
	DataFormatUint64
	DataFormatInt64
	DataFormatReal32
	DataFormatReal64
)

// ByteSize returns the storage size in bytes of one scalar value in
// format f, or 0 for variable-length formats (Bit, String).
func (f DataFormat) ByteSize() int {
	switch f {
	case DataFormatChar, DataFormatUint8, DataFormatInt8:
		return 1
	case DataFormatUint16, DataFormatInt16:
		return 2
	case DataFormatUint24, DataFormatInt24:
		return 3
	case DataFormatUint32, DataFormatInt32, DataFormatReal32:
		return 4
	case DataFormatUint64, DataFormatInt64, DataFormatReal64:
		return 8
	default:
		return 0
	}
}

// DataCoding is the interpretation of raw field values, trimmed to
// codings the codec layer implements plus the non-core tags that are
// declared only.
type DataCoding int

const (
	DataCodingUndef DataCoding = iota
	DataCodingLinear              // DC_LIN / DC_PCM: two's complement
	DataCodingBinaryOffset        // DC_BINOFF
	DataCodingNormalizedFloat     // DC_FNORM1: float in [-1,1]
	DataCodingALaw                // DC_ALAW
	DataCodingULaw                // DC_uLAW
	DataCodingADPCM               // DC_ADPCM: non-core, declared only
	DataCodingMix                 // DC_MIX: IPdS label format
	DataCodingSampa               // DC_SAM: IPdS label format
	DataCodingXLabel              // DC_XLBL: ESPS label format
)

// Endian is the byte order of on-disk data, reused for the FD
// `orientation` flag (label begin/end, articulograph view/facing).
type Endian int

const (
	EndianUndef Endian = iota
	EndianBig
	EndianLittle
)

// Backing identifies where an SDO's record buffer physically lives.
type Backing int

const (
	BackingNone Backing = iota
	BackingFile
	BackingMemory
)

// OpenMode is the access mode an SDO was opened with.
type OpenMode int

const (
	OpenRead OpenMode = iota
	OpenWrite
	OpenUpdate
	OpenText
)

// CloseAction controls what happens to a buffer on Close.
type CloseAction int

const (
	CloseKeepBuffer CloseAction = iota
	CloseClearBuffer
	CloseFreeAll
)
