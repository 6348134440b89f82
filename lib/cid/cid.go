// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cid

import (
	"bytes"
	"encoding/base32"
	"io"

	"github.com/bureau-foundation/carstream/lib/bytecursor"
	"github.com/bureau-foundation/carstream/lib/codecerr"
	"github.com/bureau-foundation/carstream/lib/multihash"
	"github.com/bureau-foundation/carstream/lib/varint"
)

// Version identifies a CID's binary shape.
type Version uint8

const (
	V0 Version = 0
	V1 Version = 1
)

// multibaseEncoding is the base32 lowercase RFC 4648 alphabet with no
// padding, used behind the 'b' multibase prefix in [Cid.String].
var multibaseEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// Cid is a content identifier: a version, a codec, and a multihash.
//
// A v0 Cid always has Codec == multihash.DAG_PB and
// Hash.Code == multihash.SHA2_256 with Hash.Size == 32 — those
// invariants are enforced at construction and on read, not
// re-checked on every access.
type Cid struct {
	Version Version
	Codec   uint64
	Hash    multihash.Multihash
}

// NewV0 builds a CIDv0 from a SHA2-256, 32-byte multihash. It fails if
// hash does not have that exact shape.
func NewV0(hash multihash.Multihash) (Cid, error) {
	if hash.Code != multihash.SHA2_256 || hash.Size != 32 {
		return Cid{}, codecerr.InvalidCIDf("cid: v0 requires sha2-256/32-byte multihash, got code=0x%x size=%d", hash.Code, hash.Size)
	}
	return Cid{Version: V0, Codec: multihash.DAG_PB, Hash: hash}, nil
}

// NewV1 builds a CIDv1 with the given codec and multihash. No shape
// constraint applies.
func NewV1(codec uint64, hash multihash.Multihash) Cid {
	return Cid{Version: V1, Codec: codec, Hash: hash}
}

// IntoV1 returns c unchanged if it is already v1, or an equivalent v1
// Cid (same codec, same hash) if c is v0.
func (c Cid) IntoV1() Cid {
	if c.Version == V1 {
		return c
	}
	return NewV1(c.Codec, c.Hash)
}

// Equal reports structural equality: same version, codec, and hash.
func (c Cid) Equal(other Cid) bool {
	return c.Version == other.Version && c.Codec == other.Codec && c.Hash.Equal(other.Hash)
}

// v0Prefix is the two-byte header ("varint(0x12) varint(0x20)") that
// makes a byte sequence unambiguously CIDv0 rather than v1. The same
// two bytes read as a v1 header would mean version=18 codec=32, which
// is not a legal v1 (version must be 1) — so the shape is never
// ambiguous between the two forms.
var v0Prefix = [2]byte{0x12, 0x20}

// Read decodes a Cid from r, detecting CIDv0 by its fixed 34-byte
// shape (0x12 0x20 followed by a 32-byte digest) before falling back
// to the varint-framed v1 form.
func Read(r *bytecursor.Cursor) (Cid, error) {
	var peek [2]byte
	if err := r.ReadExact(peek[:]); err != nil {
		return Cid{}, err
	}
	if peek == v0Prefix {
		var digest [32]byte
		if err := r.ReadExact(digest[:]); err != nil {
			return Cid{}, err
		}
		hash, err := multihash.Wrap(multihash.SHA2_256, digest[:])
		if err != nil {
			return Cid{}, err
		}
		return NewV0(hash)
	}

	// Not the v0 shape: reinterpret the two peeked bytes as the start
	// of a v1 varint(version) field by feeding them back through a
	// small cursor chained in front of the rest of the stream.
	prefixReader := bytecursor.New(io.MultiReader(bytes.NewReader(peek[:]), r))
	version, err := varint.ReadUint64(prefixReader)
	if err != nil {
		return Cid{}, err
	}
	if version == 0 {
		return Cid{}, codecerr.InvalidCIDf("cid: explicit v0 version field is forbidden, must use implicit v0 shape")
	}
	if version != 1 {
		return Cid{}, codecerr.InvalidCIDf("cid: unsupported CID version %d", version)
	}
	codec, err := varint.ReadUint64(prefixReader)
	if err != nil {
		return Cid{}, err
	}
	hash, err := multihash.Read(prefixReader)
	if err != nil {
		return Cid{}, err
	}
	return NewV1(codec, hash), nil
}

// AppendTo appends the wire encoding of c to buf. Per this format's
// write contract, the encoding is always the v1 shape — even a Cid
// constructed as v0 is emitted as varint(1) ‖ varint(codec) ‖
// multihash, never the implicit 34-byte v0 shape.
func (c Cid) AppendTo(buf []byte) []byte {
	v1 := c.IntoV1()
	buf = varint.EncodeUint64(uint64(v1.Version), buf)
	buf = varint.EncodeUint64(v1.Codec, buf)
	return v1.Hash.AppendTo(buf)
}

// Bytes returns the v1 wire encoding of c as a freshly allocated
// slice.
func (c Cid) Bytes() []byte {
	return c.AppendTo(nil)
}

// String returns the CIDv1 base32-multibase textual form: the ASCII
// byte 'b' followed by unpadded lowercase base32 of the v1 byte
// encoding.
func (c Cid) String() string {
	encoded := c.Bytes()
	return "b" + multibaseEncoding.EncodeToString(encoded)
}
