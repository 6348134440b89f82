// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package multihash

import (
	"crypto/sha256"
	"io"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/carstream/lib/codecerr"
	"github.com/bureau-foundation/carstream/lib/varint"
)

// Pinned multicodec function codes. SHA2_256 and DAG_PB are the two
// values every CIDv0 must carry; BLAKE3 is included so the digest
// path has a second real hash function to exercise, matching how the
// rest of this stack sizes a keyed BLAKE3 domain hash at 32 bytes.
const (
	SHA2_256 uint64 = 0x12
	DAG_PB   uint64 = 0x70
	BLAKE3   uint64 = 0x1e
)

// MaxDigestSize is the fixed capacity of a Multihash's digest array.
// Every hash function this package supports produces a digest well
// under this size; a wider function would need a new type rather than
// a generic parameter, since Go has no const-generic array lengths.
const MaxDigestSize = 64

// Multihash is a self-describing digest: a hash function code, the
// digest's actual length, and the digest bytes themselves in a
// fixed-capacity array. Only Digest[:Size] is meaningful; bytes at
// positions >= Size are leftover capacity with no defined value.
type Multihash struct {
	Code   uint64
	Size   uint8
	Digest [MaxDigestSize]byte
}

// Wrap builds a Multihash from an already-computed digest. It fails
// if digest is longer than MaxDigestSize.
func Wrap(code uint64, digest []byte) (Multihash, error) {
	if len(digest) > MaxDigestSize {
		return Multihash{}, codecerr.InvalidSizef("multihash: digest is %d bytes, exceeds capacity %d", len(digest), MaxDigestSize)
	}
	var m Multihash
	m.Code = code
	m.Size = uint8(len(digest))
	copy(m.Digest[:], digest)
	return m, nil
}

// Sum computes the multihash of data using the hash function
// identified by code. Supported codes are SHA2_256 and BLAKE3.
func Sum(code uint64, data []byte) (Multihash, error) {
	switch code {
	case SHA2_256:
		digest := sha256.Sum256(data)
		return Wrap(code, digest[:])
	case BLAKE3:
		h := blake3.New()
		h.Write(data)
		return Wrap(code, h.Sum(nil))
	default:
		return Multihash{}, codecerr.InvalidCodef("multihash: unsupported hash function code 0x%x", code)
	}
}

// Truncate lowers the effective digest size without rehashing. It
// fails if newSize is greater than the current Size — Truncate only
// ever shrinks the visible digest, it never reveals bytes beyond what
// was already meaningful.
func (m Multihash) Truncate(newSize uint8) (Multihash, error) {
	if newSize > m.Size {
		return Multihash{}, codecerr.InvalidSizef("multihash: truncate to %d exceeds current size %d", newSize, m.Size)
	}
	m.Size = newSize
	return m, nil
}

// EncodedLen returns the number of bytes AppendTo will append: the
// varint-encoded code, the varint-encoded size, and the digest bytes.
func (m Multihash) EncodedLen() int {
	var scratch [10]byte
	codeLen := len(varint.EncodeUint64(m.Code, scratch[:0]))
	sizeLen := len(varint.EncodeUint64(uint64(m.Size), scratch[:0]))
	return codeLen + sizeLen + int(m.Size)
}

// AppendTo appends the wire encoding of m (varint code, varint size,
// digest bytes) to buf and returns the extended slice.
func (m Multihash) AppendTo(buf []byte) []byte {
	buf = varint.EncodeUint64(m.Code, buf)
	buf = varint.EncodeUint64(uint64(m.Size), buf)
	return append(buf, m.Digest[:m.Size]...)
}

// Bytes returns the wire encoding of m as a freshly allocated slice.
func (m Multihash) Bytes() []byte {
	return m.AppendTo(make([]byte, 0, m.EncodedLen()))
}

// Equal reports whether m and other have the same code, size, and
// digest bytes (only the first Size bytes of Digest are compared).
func (m Multihash) Equal(other Multihash) bool {
	if m.Code != other.Code || m.Size != other.Size {
		return false
	}
	return m.Digest == other.Digest || bytesEqualPrefix(m.Digest[:], other.Digest[:], int(m.Size))
}

func bytesEqualPrefix(a, b []byte, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// byteReader is the minimal interface Read needs: a streaming
// varint-capable source. bytecursor.Cursor satisfies this, as does
// any bufio.Reader.
type byteReader interface {
	io.ByteReader
	io.Reader
}

// Read decodes a Multihash from r: varint code, varint size, then
// size raw digest bytes. It fails with [codecerr.InvalidSize] if size
// exceeds MaxDigestSize, and [codecerr.UnexpectedEOF] if the digest is
// short.
func Read(r byteReader) (Multihash, error) {
	code, err := varint.ReadUint64(r)
	if err != nil {
		return Multihash{}, err
	}
	size, err := varint.ReadUint64(r)
	if err != nil {
		return Multihash{}, err
	}
	if size > MaxDigestSize {
		return Multihash{}, codecerr.InvalidSizef("multihash: declared size %d exceeds capacity %d", size, MaxDigestSize)
	}

	var m Multihash
	m.Code = code
	m.Size = uint8(size)
	n, err := io.ReadFull(r, m.Digest[:size])
	if err != nil {
		return Multihash{}, codecerr.UnexpectedEOFf("multihash: read digest, got %d of %d bytes: %w", n, size, err)
	}
	return m, nil
}
