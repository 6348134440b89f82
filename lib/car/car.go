// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package car

import (
	"bytes"
	"errors"
	"io"

	"github.com/bureau-foundation/carstream/lib/bytecursor"
	"github.com/bureau-foundation/carstream/lib/cid"
	"github.com/bureau-foundation/carstream/lib/codecerr"
	"github.com/bureau-foundation/carstream/lib/dagcbor"
	"github.com/bureau-foundation/carstream/lib/varint"
)

// MaxFrameSize bounds how large a single length-delimited frame (the
// header, or any one block) is allowed to declare itself. A firehose
// peer that claims a larger frame is rejected before this package
// attempts to allocate a buffer for it.
const MaxFrameSize = 4 << 20 // 4 MiB

// Header is a CAR v1 header: the format version (always 1 — this
// package rejects any other value) and the archive's root CIDs.
type Header struct {
	Version int
	Roots   []cid.Cid
}

// Reader reads sequential blocks from a CAR v1 stream. It is
// forward-only and single-owner: nothing about it may be used from
// more than one goroutine at a time.
type Reader struct {
	cursor  *bytecursor.Cursor
	header  Header
	scratch []byte
}

// NewReader wraps r and decodes its CAR v1 header. It fails with
// [codecerr.UnsupportedVersion] if the header's version field is not
// 1, or [codecerr.EmptyCAR] if the header's root list is empty.
func NewReader(r io.Reader) (*Reader, error) {
	reader := &Reader{cursor: bytecursor.New(r)}
	header, err := reader.readFrameValue()
	if err != nil {
		return nil, err
	}

	fields, err := header.AsMap()
	if err != nil {
		return nil, codecerr.InvalidCIDf("car: header is not a CBOR map")
	}

	versionValue, ok := fields["version"]
	if !ok {
		return nil, codecerr.InvalidCIDf("car: header is missing \"version\"")
	}
	version, err := versionValue.AsU64()
	if err != nil {
		return nil, codecerr.InvalidCIDf("car: header \"version\" is not an integer")
	}
	if version != 1 {
		return nil, codecerr.UnsupportedVersionf("car: unsupported CAR version %d", version)
	}

	rootsValue, ok := fields["roots"]
	if !ok {
		return nil, codecerr.InvalidCIDf("car: header is missing \"roots\"")
	}
	rootsList, err := rootsValue.AsList()
	if err != nil {
		return nil, codecerr.InvalidCIDf("car: header \"roots\" is not a list")
	}
	if len(rootsList) == 0 {
		return nil, codecerr.EmptyCARf("car: header declares zero roots")
	}

	roots := make([]cid.Cid, len(rootsList))
	for i, item := range rootsList {
		c, err := item.AsCid()
		if err != nil {
			return nil, codecerr.InvalidCIDf("car: header root %d is not a CID: %w", i, err)
		}
		roots[i] = c
	}

	reader.header = Header{Version: int(version), Roots: roots}
	return reader, nil
}

// Header returns the archive's decoded header.
func (r *Reader) Header() *Header {
	return &r.header
}

// NextBlock reads the next (CID, payload) block. It returns io.EOF,
// unwrapped, when the stream ends cleanly on a frame boundary — the
// same signal callers already expect from any exhausted io.Reader.
func (r *Reader) NextBlock() (cid.Cid, []byte, error) {
	frame, err := r.readFrame()
	if err != nil {
		return cid.Cid{}, nil, err
	}

	frameCursor := bytecursor.New(bytes.NewReader(frame))
	blockCid, err := cid.Read(frameCursor)
	if err != nil {
		return cid.Cid{}, nil, err
	}
	// frame aliases the reusable scratch buffer, which the next
	// NextBlock call will overwrite — the caller owns its payload, so
	// it must be copied out before returning.
	payload := append([]byte(nil), frame[frameCursor.Position():]...)
	return blockCid, payload, nil
}

// readFrame reads one length-delimited frame into r's scratch buffer
// and returns the slice holding exactly that frame's bytes. The
// scratch buffer's backing array is reused across calls and never
// shrinks; it only grows to fit a larger frame than it has already
// seen.
func (r *Reader) readFrame() ([]byte, error) {
	firstByte, err := r.cursor.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// The stream ended exactly on a frame boundary: this is a
			// normal, clean end of input, not a decoding failure.
			return nil, io.EOF
		}
		return nil, err
	}
	length, err := varint.ReadUint64Continued(firstByte, r.cursor)
	if err != nil {
		return nil, err
	}
	if length > MaxFrameSize {
		return nil, codecerr.FrameTooLargef("car: frame declares %d bytes, exceeds %d-byte limit", length, MaxFrameSize)
	}

	if cap(r.scratch) < int(length) {
		r.scratch = make([]byte, length)
	}
	frame := r.scratch[:length]
	if err := r.cursor.ReadExact(frame); err != nil {
		return nil, err
	}
	return frame, nil
}

// readFrameValue reads one length-delimited frame and decodes it as a
// single DAG-CBOR value. Used for the header, the only frame in a CAR
// v1 stream that is CBOR rather than CID-prefixed raw bytes.
func (r *Reader) readFrameValue() (dagcbor.Value, error) {
	frame, err := r.readFrame()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return dagcbor.Value{}, codecerr.UnexpectedEOFf("car: stream ended before a header frame")
		}
		return dagcbor.Value{}, err
	}
	return dagcbor.Decode(bytecursor.New(bytes.NewReader(frame)))
}
