// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dagcbor

import (
	"bytes"
	"testing"

	"github.com/bureau-foundation/carstream/lib/bytecursor"
	"github.com/bureau-foundation/carstream/lib/cid"
	"github.com/bureau-foundation/carstream/lib/codec"
	"github.com/bureau-foundation/carstream/lib/codecerr"
	"github.com/bureau-foundation/carstream/lib/multihash"
)

func decodeBytes(t *testing.T, data []byte) Value {
	t.Helper()
	v, err := Decode(bytecursor.New(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return v
}

func TestDecodeUnsignedFixtureFromCodec(t *testing.T) {
	data, err := codec.Marshal(uint64(1000))
	if err != nil {
		t.Fatalf("codec.Marshal: %v", err)
	}
	v := decodeBytes(t, data)
	n, err := v.AsU64()
	if err != nil {
		t.Fatalf("AsU64: %v", err)
	}
	if n != 1000 {
		t.Errorf("n = %d, want 1000", n)
	}
}

func TestDecodeTextFixtureFromCodec(t *testing.T) {
	data, err := codec.Marshal("hello dag-cbor")
	if err != nil {
		t.Fatalf("codec.Marshal: %v", err)
	}
	v := decodeBytes(t, data)
	s, err := v.AsText()
	if err != nil {
		t.Fatalf("AsText: %v", err)
	}
	if s != "hello dag-cbor" {
		t.Errorf("s = %q, want %q", s, "hello dag-cbor")
	}
}

func TestDecodeMapFixtureFromCodec(t *testing.T) {
	type sample struct {
		Version int    `cbor:"version"`
		Name    string `cbor:"name"`
	}
	data, err := codec.Marshal(sample{Version: 1, Name: "carstream"})
	if err != nil {
		t.Fatalf("codec.Marshal: %v", err)
	}
	v := decodeBytes(t, data)
	fields, err := v.AsMap()
	if err != nil {
		t.Fatalf("AsMap: %v", err)
	}
	version, err := fields["version"].AsU64()
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
	name, err := fields["name"].AsText()
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	if name != "carstream" {
		t.Errorf("name = %q, want carstream", name)
	}
}

func TestDecodeListFixtureFromCodec(t *testing.T) {
	data, err := codec.Marshal([]int{1, 2, 3})
	if err != nil {
		t.Fatalf("codec.Marshal: %v", err)
	}
	v := decodeBytes(t, data)
	items, err := v.AsList()
	if err != nil {
		t.Fatalf("AsList: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	for i, want := range []uint64{1, 2, 3} {
		got, err := items[i].AsU64()
		if err != nil {
			t.Fatalf("items[%d]: %v", i, err)
		}
		if got != want {
			t.Errorf("items[%d] = %d, want %d", i, got, want)
		}
	}
}

// The following edge cases are hand-assembled at the byte level,
// where a struct-marshaling fixture generator would obscure exactly
// which bit pattern is under test.

func TestDecodeRejectsReservedAdditionalInfo(t *testing.T) {
	// Major type 0 (unsigned), info 28: reserved, never assigned.
	_, err := Decode(bytecursor.New(bytes.NewReader([]byte{0x1c})))
	if !codecerr.Is(err, codecerr.InvalidCode) {
		t.Fatalf("error = %v, want InvalidCode", err)
	}
}

func TestDecodeRejectsNonMinimalArgument(t *testing.T) {
	// Major 0, info 24 (1-byte argument follows), value 10 — should
	// have been encoded directly in the major byte (info 0-23).
	_, err := Decode(bytecursor.New(bytes.NewReader([]byte{0x18, 0x0a})))
	if !codecerr.Is(err, codecerr.NotMinimal) {
		t.Fatalf("error = %v, want NotMinimal", err)
	}
}

func TestDecodeNegativeInteger(t *testing.T) {
	// Major 1, info 9: -1 - 9 = -10.
	v := decodeBytes(t, []byte{0x29})
	n, err := v.AsI64()
	if err != nil {
		t.Fatalf("AsI64: %v", err)
	}
	if n != -10 {
		t.Errorf("n = %d, want -10", n)
	}
}

func TestDecodeRejectsHalfFloat(t *testing.T) {
	// Major 7, info 25 (half float) followed by 2 arbitrary bytes.
	_, err := Decode(bytecursor.New(bytes.NewReader([]byte{0xf9, 0x3c, 0x00})))
	if !codecerr.Is(err, codecerr.InvalidCode) {
		t.Fatalf("error = %v, want InvalidCode", err)
	}
}

func TestDecodeFloat32WidensToFloat64(t *testing.T) {
	// Major 7, info 26: 1.5f as IEEE-754 single precision (0x3fc00000).
	v := decodeBytes(t, []byte{0xfa, 0x3f, 0xc0, 0x00, 0x00})
	f, err := v.AsFloat()
	if err != nil {
		t.Fatalf("AsFloat: %v", err)
	}
	if f != 1.5 {
		t.Errorf("f = %v, want 1.5", f)
	}
}

func TestDecodeBoolAndNull(t *testing.T) {
	trueVal := decodeBytes(t, []byte{0xf5})
	if b, err := trueVal.AsBool(); err != nil || !b {
		t.Errorf("true: b=%v err=%v", b, err)
	}
	falseVal := decodeBytes(t, []byte{0xf4})
	if b, err := falseVal.AsBool(); err != nil || b {
		t.Errorf("false: b=%v err=%v", b, err)
	}
	nullVal := decodeBytes(t, []byte{0xf6})
	if !nullVal.IsNull() {
		t.Error("expected null variant")
	}
}

func TestDecodeMapRejectsDuplicateKey(t *testing.T) {
	// map(2){"a": 1, "a": 2}: two entries with the same text key.
	buf := []byte{
		0xa2,                   // map, 2 pairs
		0x61, 'a', 0x01,        // "a": 1
		0x61, 'a', 0x02,        // "a": 2
	}
	_, err := Decode(bytecursor.New(bytes.NewReader(buf)))
	if !codecerr.Is(err, codecerr.DuplicateKey) {
		t.Fatalf("error = %v, want DuplicateKey", err)
	}
}

func TestDecodeMapRejectsNonTextKey(t *testing.T) {
	// map(1){1: "x"}: an integer key, which DAG-CBOR forbids.
	buf := []byte{0xa1, 0x01, 0x61, 'x'}
	_, err := Decode(bytecursor.New(bytes.NewReader(buf)))
	if !codecerr.Is(err, codecerr.InvalidCode) {
		t.Fatalf("error = %v, want InvalidCode", err)
	}
}

func TestDecodeUnknownTagRejected(t *testing.T) {
	// Tag 1 (epoch datetime), a real CBOR tag DAG-CBOR does not permit.
	buf := []byte{0xc1, 0x00}
	_, err := Decode(bytecursor.New(bytes.NewReader(buf)))
	if !codecerr.Is(err, codecerr.UnknownTag) {
		t.Fatalf("error = %v, want UnknownTag", err)
	}
}

// cborByteStringHeader encodes a major-2 (byte string) header for a
// payload of the given length, using the 1-byte-argument form (info
// 24) for lengths that don't fit directly in the major byte.
func cborByteStringHeader(length int) []byte {
	if length < 24 {
		return []byte{0x40 | byte(length)}
	}
	return []byte{0x58, byte(length)}
}

func TestDecodeCidLink(t *testing.T) {
	hash, err := multihash.Sum(multihash.SHA2_256, []byte("linked content"))
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	c := cid.NewV1(0x71, hash)
	cidBytes := c.Bytes()

	content := append([]byte{0x00}, cidBytes...)
	var buf []byte
	buf = append(buf, 0xd8, 0x2a) // tag 42 (1-byte argument form: info 24, value 42)
	buf = append(buf, cborByteStringHeader(len(content))...)
	buf = append(buf, content...)

	v := decodeBytes(t, buf)
	linked, err := v.AsCid()
	if err != nil {
		t.Fatalf("AsCid: %v", err)
	}
	if !linked.Equal(c) {
		t.Errorf("linked %+v != original %+v", linked, c)
	}
}

func TestDecodeCidLinkRejectsNonZeroPrefix(t *testing.T) {
	content := []byte{0x01, 0xaa, 0xbb}
	var buf []byte
	buf = append(buf, 0xd8, 0x2a)
	buf = append(buf, cborByteStringHeader(len(content))...)
	buf = append(buf, content...)

	_, err := Decode(bytecursor.New(bytes.NewReader(buf)))
	if !codecerr.Is(err, codecerr.InvalidCID) {
		t.Fatalf("error = %v, want InvalidCID", err)
	}
}

func TestDecodeCidLinkRejectsEmptyByteString(t *testing.T) {
	buf := []byte{0xd8, 0x2a, 0x40} // tag 42, empty byte string
	_, err := Decode(bytecursor.New(bytes.NewReader(buf)))
	if !codecerr.Is(err, codecerr.InvalidCID) {
		t.Fatalf("error = %v, want InvalidCID", err)
	}
}
