/*
NAME
  errs.go

DESCRIPTION
  errs.go contains the error taxonomy shared by every package in the
  signal data object runtime: a short integer code plus an optional
  application-level message, classified into the kinds a caller needs
  to decide whether a failure is recoverable.

AUTHOR
  Michel T.M. Scheffers (original); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package errs defines the error taxonomy used across the signal data
// object runtime: Bug, Memory, Data, AudioDevice, Command, File and
// their Warning-severity counterparts. Every exported Error carries a
// short numeric Code (matching the reference library's code space, see
// codes.go) and an optional application message.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the severity/recoverability of an Error.
type Kind int

const (
	KindBug Kind = iota
	KindMemory
	KindData
	KindAudioDevice
	KindCommand
	KindFile
	KindWarning
)

func (k Kind) String() string {
	switch k {
	case KindBug:
		return "bug"
	case KindMemory:
		return "memory"
	case KindData:
		return "data"
	case KindAudioDevice:
		return "audio device"
	case KindCommand:
		return "command"
	case KindFile:
		return "file"
	case KindWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by public operations across
// the runtime. Code is one of the constants in codes.go; ApplMessage is
// the optional caller-supplied context appended to the standard text.
type Error struct {
	Kind        Kind
	Code        int16
	Message     string
	ApplMessage string
	Cause       error
}

func (e *Error) Error() string {
	prefix := "ERROR"
	if e.Kind == KindWarning {
		prefix = "WARNING"
	}
	s := fmt.Sprintf("%s: %s", prefix, e.Message)
	if e.ApplMessage != "" {
		s += " (" + e.ApplMessage + ")"
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap lets errors.Is/errors.As from both the standard library and
// github.com/pkg/errors see through to the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error of the given kind and code with a fixed message.
func New(kind Kind, code int16, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Wrap attaches an Error to an underlying cause, mirroring the
// errors.Wrap idiom used throughout the rest of this module.
func Wrap(err error, kind Kind, code int16, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Code: code, Message: message, Cause: errors.WithStack(err)}
}

// WithAppl returns a copy of e with an application message attached,
// mirroring the reference library's applMessage buffer.
func (e *Error) WithAppl(format string, args ...interface{}) *Error {
	cp := *e
	cp.ApplMessage = fmt.Sprintf(format, args...)
	return &cp
}

// IsWarning reports whether err (or any Error in its cause chain) is a
// Warning-severity Error rather than a hard failure.
func IsWarning(err error) bool {
	var e *Error
	for err != nil {
		if ae, ok := err.(*Error); ok {
			e = ae
			break
		}
		err = errors.Unwrap(err)
	}
	return e != nil && e.Kind == KindWarning
}
