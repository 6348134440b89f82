// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package varint

import (
	"errors"
	"io"

	"github.com/bureau-foundation/carstream/lib/codecerr"
)

// maxBytes gives the maximum number of bytes a varint of the given
// declared bit-width may occupy before decoding fails with
// [codecerr.Overflow]. These are not ⌈width/7⌉ in the usual LEB128
// sense (that would give 2, 3, 5, 10 for widths 8/16/32/64) — they are
// the literal per-width budgets this format uses, one byte tighter at
// the 8-bit and 64-bit ends. A width-8 varint therefore only reaches
// values up to 127 in a single byte; callers that need the full uint8
// range read it as a width-16 (or wider) varint instead.
var maxBytes = map[int]int{
	8:  1,
	16: 3,
	32: 5,
	64: 9,
}

// IsLast reports whether b is a terminal varint byte: its high bit
// (the continuation bit) is clear.
func IsLast(b byte) bool {
	return b&0x80 == 0
}

// decodeWidth decodes an unsigned varint from buf, enforcing the
// byte-count budget for the given declared width and rejecting
// non-minimal (trailing-zero) encodings. It returns the decoded value
// and the number of bytes consumed.
func decodeWidth(buf []byte, width int) (value uint64, consumed int, err error) {
	limit := maxBytes[width]
	for i := 0; i < limit; i++ {
		if i >= len(buf) {
			return 0, 0, codecerr.UnexpectedEOFf("varint: buffer ended after %d byte(s), width %d", i, width)
		}
		b := buf[i]
		value |= uint64(b&0x7f) << (7 * i)
		if IsLast(b) {
			if b == 0x00 && i > 0 {
				return 0, 0, codecerr.NotMinimalf("varint: terminal byte 0x00 at position %d is not minimal", i)
			}
			return value, i + 1, nil
		}
	}
	return 0, 0, codecerr.Overflowf("varint: exceeded %d-byte budget for width %d", limit, width)
}

// readWidth is the streaming counterpart of decodeWidth, reading one
// byte at a time from r instead of indexing a buffer.
func readWidth(r io.ByteReader, width int) (value uint64, err error) {
	limit := maxBytes[width]
	for i := 0; i < limit; i++ {
		b, readErr := r.ReadByte()
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return 0, codecerr.UnexpectedEOFf("varint: stream ended after %d byte(s), width %d", i, width)
			}
			return 0, readErr
		}
		value |= uint64(b&0x7f) << (7 * i)
		if IsLast(b) {
			if b == 0x00 && i > 0 {
				return 0, codecerr.NotMinimalf("varint: terminal byte 0x00 at position %d is not minimal", i)
			}
			return value, nil
		}
	}
	return 0, codecerr.Overflowf("varint: exceeded %d-byte budget for width %d", limit, width)
}

// appendMinimal appends the minimal LEB128-style encoding of n to buf
// and returns the extended slice.
func appendMinimal(buf []byte, n uint64) []byte {
	for {
		b := byte(n & 0x7f)
		n >>= 7
		if n == 0 {
			return append(buf, b)
		}
		buf = append(buf, b|0x80)
	}
}

// DecodeUint8 decodes a width-8 varint from buf (values 0-127 — see
// the [maxBytes] note on why this is not the full uint8 range) and
// returns the decoded value and the unconsumed remainder of buf.
func DecodeUint8(buf []byte) (value uint8, remaining []byte, err error) {
	v, n, err := decodeWidth(buf, 8)
	if err != nil {
		return 0, nil, err
	}
	return uint8(v), buf[n:], nil
}

// DecodeUint16 decodes a width-16 varint from buf.
func DecodeUint16(buf []byte) (value uint16, remaining []byte, err error) {
	v, n, err := decodeWidth(buf, 16)
	if err != nil {
		return 0, nil, err
	}
	return uint16(v), buf[n:], nil
}

// DecodeUint32 decodes a width-32 varint from buf.
func DecodeUint32(buf []byte) (value uint32, remaining []byte, err error) {
	v, n, err := decodeWidth(buf, 32)
	if err != nil {
		return 0, nil, err
	}
	return uint32(v), buf[n:], nil
}

// DecodeUint64 decodes a width-64 varint from buf.
func DecodeUint64(buf []byte) (value uint64, remaining []byte, err error) {
	v, n, err := decodeWidth(buf, 64)
	if err != nil {
		return 0, nil, err
	}
	return v, buf[n:], nil
}

// ReadUint64 reads a width-64 varint one byte at a time from r. This
// is the form used when decoding directly from a [bytecursor.Cursor]
// or any other stream, rather than from an already-buffered slice —
// multihash codes/sizes, CID version/codec fields, and CAR frame
// lengths are all read this way.
func ReadUint64(r io.ByteReader) (uint64, error) {
	return readWidth(r, 64)
}

// ReadUint64Continued decodes a width-64 varint whose first byte has
// already been consumed by the caller. This exists for callers (such
// as a CAR frame reader) that must distinguish "the stream ended
// cleanly before this varint began" from "the stream ended partway
// through it" — the former is a normal end of input, the latter is a
// truncated, corrupt frame. The caller reads the first byte itself,
// checks for a clean end-of-stream there, and only calls this
// function once it knows at least one byte is genuinely part of a
// varint.
func ReadUint64Continued(first byte, r io.ByteReader) (uint64, error) {
	limit := maxBytes[64]
	value := uint64(first & 0x7f)
	if IsLast(first) {
		return value, nil
	}
	for i := 1; i < limit; i++ {
		b, readErr := r.ReadByte()
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return 0, codecerr.UnexpectedEOFf("varint: stream ended after %d byte(s), width 64", i)
			}
			return 0, readErr
		}
		value |= uint64(b&0x7f) << (7 * i)
		if IsLast(b) {
			if b == 0x00 {
				return 0, codecerr.NotMinimalf("varint: terminal byte 0x00 at position %d is not minimal", i)
			}
			return value, nil
		}
	}
	return 0, codecerr.Overflowf("varint: exceeded %d-byte budget for width 64", limit)
}

// EncodeUint8 writes the minimal varint encoding of n into buf
// (recommended capacity: 2 bytes) and returns the slice actually
// used.
func EncodeUint8(n uint8, buf []byte) []byte {
	return appendMinimal(buf, uint64(n))
}

// EncodeUint16 writes the minimal varint encoding of n into buf
// (recommended capacity: 3 bytes) and returns the slice actually
// used.
func EncodeUint16(n uint16, buf []byte) []byte {
	return appendMinimal(buf, uint64(n))
}

// EncodeUint32 writes the minimal varint encoding of n into buf
// (recommended capacity: 5 bytes) and returns the slice actually
// used.
func EncodeUint32(n uint32, buf []byte) []byte {
	return appendMinimal(buf, uint64(n))
}

// EncodeUint64 writes the minimal varint encoding of n into buf
// (recommended capacity: 5 bytes — every value this repository
// actually encodes, multicodec numbers and CID fields, fits in 5
// bytes; [DecodeUint64] still accepts up to 9 bytes on the read side
// for generality, so larger values still decode) and returns the
// slice actually used.
func EncodeUint64(n uint64, buf []byte) []byte {
	return appendMinimal(buf, n)
}
