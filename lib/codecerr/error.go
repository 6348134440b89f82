// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codecerr

import (
	"errors"
	"fmt"
)

// Kind classifies a decode failure so callers can branch on the
// failure category without parsing error text.
type Kind string

const (
	// UnexpectedEOF is raised by any short read: read_exact ending
	// before its buffer is full, a varint ending before its
	// terminator byte, or a CAR frame ending before its declared
	// length.
	UnexpectedEOF Kind = "unexpected_eof"

	// Overflow is raised when a varint uses more continuation bytes
	// than its declared width allows, or when a CBOR negative
	// integer's magnitude overflows int64.
	Overflow Kind = "overflow"

	// NotMinimal is raised when a varint's terminal byte is 0x00 at
	// a position other than the first byte, or when a CBOR integer
	// argument could have been encoded with a smaller info value.
	NotMinimal Kind = "not_minimal"

	// InvalidCode is raised by a CBOR major byte with a forbidden
	// info field (28-31), or an unrecognized major-7 simple/float
	// code.
	InvalidCode Kind = "invalid_code"

	// UnknownTag is raised by a CBOR tag other than 42.
	UnknownTag Kind = "unknown_tag"

	// InvalidCID is raised by a malformed CIDv0 shape, a non-zero
	// identity-multibase prefix inside a tag-42 byte string, or a
	// version other than 1 in the CIDv1 varint-framed branch.
	InvalidCID Kind = "invalid_cid"

	// InvalidSize is raised when a multihash's declared digest size
	// exceeds its capacity or exceeds 255.
	InvalidSize Kind = "invalid_size"

	// DuplicateKey is raised when a CBOR map contains the same text
	// key twice.
	DuplicateKey Kind = "duplicate_key"

	// UnsupportedVersion is raised by a CAR header whose version is
	// not 1.
	UnsupportedVersion Kind = "unsupported_version"

	// EmptyCAR is raised by a CAR header with no roots.
	EmptyCAR Kind = "empty_car"

	// FrameTooLarge is raised when a CAR length-delimited frame
	// exceeds the 4 MiB cap.
	FrameTooLarge Kind = "frame_too_large"
)

// Error is a decode failure classified by [Kind]. It wraps the
// underlying cause so errors.Is/errors.As can walk the chain (e.g. to
// reach an io.Reader error that caused an UnexpectedEOF).
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface. The kind is not included in
// the string — code that cares about the kind should use errors.As,
// not string matching.
func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying cause, allowing errors.Is and
// errors.As to walk the full chain through the Error wrapper.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether err is a *codecerr.Error of the given kind.
func Is(err error, kind Kind) bool {
	var ce *Error
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Kind == kind
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// UnexpectedEOFf constructs an [UnexpectedEOF] error.
func UnexpectedEOFf(format string, args ...any) *Error {
	return newError(UnexpectedEOF, format, args...)
}

// Overflowf constructs an [Overflow] error.
func Overflowf(format string, args ...any) *Error {
	return newError(Overflow, format, args...)
}

// NotMinimalf constructs a [NotMinimal] error.
func NotMinimalf(format string, args ...any) *Error {
	return newError(NotMinimal, format, args...)
}

// InvalidCodef constructs an [InvalidCode] error.
func InvalidCodef(format string, args ...any) *Error {
	return newError(InvalidCode, format, args...)
}

// UnknownTagf constructs an [UnknownTag] error.
func UnknownTagf(format string, args ...any) *Error {
	return newError(UnknownTag, format, args...)
}

// InvalidCIDf constructs an [InvalidCID] error.
func InvalidCIDf(format string, args ...any) *Error {
	return newError(InvalidCID, format, args...)
}

// InvalidSizef constructs an [InvalidSize] error.
func InvalidSizef(format string, args ...any) *Error {
	return newError(InvalidSize, format, args...)
}

// DuplicateKeyf constructs a [DuplicateKey] error.
func DuplicateKeyf(format string, args ...any) *Error {
	return newError(DuplicateKey, format, args...)
}

// UnsupportedVersionf constructs an [UnsupportedVersion] error.
func UnsupportedVersionf(format string, args ...any) *Error {
	return newError(UnsupportedVersion, format, args...)
}

// EmptyCARf constructs an [EmptyCAR] error.
func EmptyCARf(format string, args ...any) *Error {
	return newError(EmptyCAR, format, args...)
}

// FrameTooLargef constructs a [FrameTooLarge] error.
func FrameTooLargef(format string, args ...any) *Error {
	return newError(FrameTooLarge, format, args...)
}
