package errs

// Warning and error codes, renumbered from the reference library's
// asspmess.h into a single signed 16-bit space per Kind. The high byte
// distinguishes warning (0xa0xx) from error (0xaexx) severity in the
// original; here Kind already carries that distinction so the codes
// keep only the low byte for readability while the numeric values below
// match asspmess.h exactly so that WithAppl("code=0x%04X", code)
// reproduces the original hex codes users may have documented.
const (
	// General.
	CodeBug       int16 = 0xae00
	CodeSys       int16 = 0xae01
	CodeAppl      int16 = 0xae02
	CodeMem       int16 = 0xae03
	CodeRound     int16 = 0xae04
	CodeNotYet    int16 = 0xae0e
	CodeFatal     int16 = 0xae0f

	// Audio device (reserved; not used by the core).
	CodeDevErrDev  int16 = 0xaea0
	CodeDevErrOpen int16 = 0xaea1
	CodeDevErrRate int16 = 0xaea6

	// Bugs.
	CodeBadArgs  int16 = 0xaeb0
	CodeBadCall  int16 = 0xaeb1
	CodeTooSoon  int16 = 0xaeb2
	CodeTooLate  int16 = 0xaeb3
	CodeBufRange int16 = 0xaeb4
	CodeBufSpace int16 = 0xaeb5
	CodeBadWin   int16 = 0xaeb6
	CodeErrEmph  int16 = 0xaeb7
	CodeErrGain  int16 = 0xaeb8
	CodeErrTrack int16 = 0xaeb9

	// Command line.
	CodeBadOpt  int16 = 0xaec0
	CodeBadVal  int16 = 0xaec1
	CodeArgMiss int16 = 0xaec2
	CodeArgMany int16 = 0xaec3
	CodeIOClash int16 = 0xaec4

	// Data.
	CodeNoData   int16 = 0xaed0
	CodeBadType  int16 = 0xaed1
	CodeBadForm  int16 = 0xaed2
	CodeNoHandle int16 = 0xaed3
	CodeErrType  int16 = 0xaed4
	CodeErrForm  int16 = 0xaed5
	CodeErrRate  int16 = 0xaed6
	CodeErrRange int16 = 0xaed7
	CodeErrSize  int16 = 0xaed8
	CodeIncompat int16 = 0xaed9
	CodeNoAudio  int16 = 0xaeda

	// Unknown error code (exception).
	CodeUnknown int16 = 0xaeee

	// File.
	CodeNotOpen  int16 = 0xaef0
	CodeMissing  int16 = 0xaef1
	CodeExists   int16 = 0xaef2
	CodeEmpty    int16 = 0xaef3
	CodeErrOpen  int16 = 0xaef4
	CodeErrSeek  int16 = 0xaef5
	CodeErrRead  int16 = 0xaef6
	CodeErrWrite int16 = 0xaef7
	CodeErrMove  int16 = 0xaef8
	CodeErrCopy  int16 = 0xaef9
	CodeErrEOF   int16 = 0xaefa
	CodeFileBadForm int16 = 0xaefb
	CodeBadHead  int16 = 0xaefc
	CodeFileErrForm int16 = 0xaefd

	// Warning-severity counterparts (0xa0xx space in the original).
	WarnBug     int16 = 0xa000
	WarnSys     int16 = 0xa001
	WarnAppl    int16 = 0xa002
	WarnMem     int16 = 0xa003
	WarnRound   int16 = 0xa004
	WarnNoDev   int16 = 0xa0a0
	WarnNoRate  int16 = 0xa0a1
	WarnNoData  int16 = 0xa0d0
	WarnNoAudio int16 = 0xa0da
	WarnBadItem int16 = 0xa0f0
	WarnRawForm int16 = 0xa0f1
	WarnEmpty   int16 = 0xa0f3
)

var codeText = map[int16]string{
	CodeBug:         "programming error",
	CodeSys:         "system error",
	CodeAppl:        "",
	CodeMem:         "out of memory",
	CodeRound:       "rounding error",
	CodeNotYet:      "not yet implemented",
	CodeFatal:       "FATAL ERROR",
	CodeDevErrDev:   "no such audio device",
	CodeDevErrOpen:  "can't open audio device",
	CodeDevErrRate:  "audio device can't handle sample rate",
	CodeBadArgs:     "invalid arguments in function call",
	CodeBadCall:     "invalid function call",
	CodeTooSoon:     "request to access data before start of file",
	CodeTooLate:     "request to access data behind end of file",
	CodeBufRange:    "request to access data not in buffer",
	CodeBufSpace:    "insufficient space in buffer",
	CodeBadWin:      "unknown/invalid window function",
	CodeErrEmph:     "invalid preemphasis",
	CodeErrGain:     "invalid gain factor",
	CodeErrTrack:    "no track name available",
	CodeBadOpt:      "unknown option",
	CodeBadVal:      "bad option value",
	CodeArgMiss:     "argument missing",
	CodeArgMany:     "too many arguments",
	CodeIOClash:     "output would overwrite input file",
	CodeNoData:      "no data available",
	CodeBadType:     "unknown data type",
	CodeBadForm:     "unknown data format",
	CodeNoHandle:    "can't handle data format",
	CodeErrType:     "incorrect data type",
	CodeErrForm:     "incorrect data format",
	CodeErrRate:     "incorrect data rate",
	CodeErrRange:    "empty/invalid data range",
	CodeErrSize:     "window size undefined/too small",
	CodeIncompat:    "incompatible with existing data",
	CodeNoAudio:     "no audio signal",
	CodeUnknown:     "unknown error code",
	CodeNotOpen:     "file not open",
	CodeMissing:     "file does not exist",
	CodeExists:      "file already exists",
	CodeEmpty:       "empty file",
	CodeErrOpen:     "can't open file",
	CodeErrSeek:     "can't seek in file",
	CodeErrRead:     "can't read file",
	CodeErrWrite:    "can't write file",
	CodeErrMove:     "can't move file",
	CodeErrCopy:     "can't copy file",
	CodeErrEOF:      "trying to seek past end of file",
	CodeFileBadForm: "unknown file format",
	CodeBadHead:     "corrupted file header",
	CodeFileErrForm: "incorrect file format",
	WarnBug:         "programming error",
	WarnSys:         "",
	WarnAppl:        "",
	WarnMem:         "out of memory",
	WarnRound:       "rounding error",
	WarnNoDev:       "no audio device available",
	WarnNoRate:      "audio device can't handle sample rate",
	WarnNoData:      "no data available",
	WarnNoAudio:     "no audio signal",
	WarnBadItem:     "bad header item",
	WarnRawForm:     "file format not recognized; using RAW settings",
	WarnEmpty:       "empty file",
}
