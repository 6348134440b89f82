// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dagcbor

import (
	"github.com/bureau-foundation/carstream/lib/cid"
	"github.com/bureau-foundation/carstream/lib/codecerr"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindUnsigned Kind = iota
	KindNegative
	KindFloat
	KindText
	KindBytes
	KindList
	KindMap
	KindBool
	KindNull
	KindLink
)

// Value is a decoded DAG-CBOR value: a closed tagged union over the
// variants DAG-CBOR permits. Once returned from [Decode] a Value is
// immutable and owned entirely by the caller.
type Value struct {
	kind    Kind
	unsign  uint64
	negativ int64
	float   float64
	text    string
	bytes   []byte
	list    []Value
	fields  map[string]Value
	boolean bool
	link    cid.Cid
}

func unsignedValue(n uint64) Value              { return Value{kind: KindUnsigned, unsign: n} }
func negativeValue(n int64) Value               { return Value{kind: KindNegative, negativ: n} }
func floatValue(f float64) Value                { return Value{kind: KindFloat, float: f} }
func textValue(s string) Value                  { return Value{kind: KindText, text: s} }
func bytesValue(b []byte) Value                 { return Value{kind: KindBytes, bytes: b} }
func listValue(items []Value) Value             { return Value{kind: KindList, list: items} }
func mapValue(fields map[string]Value) Value    { return Value{kind: KindMap, fields: fields} }
func boolValue(b bool) Value                    { return Value{kind: KindBool, boolean: b} }
func nullValue() Value                          { return Value{kind: KindNull} }
func linkValue(c cid.Cid) Value                 { return Value{kind: KindLink, link: c} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null variant.
func (v Value) IsNull() bool { return v.kind == KindNull }

func kindMismatch(want Kind, got Kind) error {
	return codecerr.InvalidCodef("dagcbor: value is kind %d, want kind %d", got, want)
}

// AsU64 returns v's unsigned integer value, or an error if v is not
// the unsigned variant.
func (v Value) AsU64() (uint64, error) {
	if v.kind != KindUnsigned {
		return 0, kindMismatch(KindUnsigned, v.kind)
	}
	return v.unsign, nil
}

// AsI64 returns v's value as a signed integer, accepting both the
// unsigned and negative variants (an unsigned value that overflows
// int64 fails).
func (v Value) AsI64() (int64, error) {
	switch v.kind {
	case KindNegative:
		return v.negativ, nil
	case KindUnsigned:
		if v.unsign > 1<<63-1 {
			return 0, codecerr.Overflowf("dagcbor: unsigned value %d overflows int64", v.unsign)
		}
		return int64(v.unsign), nil
	default:
		return 0, kindMismatch(KindNegative, v.kind)
	}
}

// AsFloat returns v's float value, or an error if v is not the float
// variant.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, kindMismatch(KindFloat, v.kind)
	}
	return v.float, nil
}

// AsText returns v's text value, or an error if v is not the text
// variant.
func (v Value) AsText() (string, error) {
	if v.kind != KindText {
		return "", kindMismatch(KindText, v.kind)
	}
	return v.text, nil
}

// AsBytes returns v's byte-string value, or an error if v is not the
// bytes variant.
func (v Value) AsBytes() ([]byte, error) {
	if v.kind != KindBytes {
		return nil, kindMismatch(KindBytes, v.kind)
	}
	return v.bytes, nil
}

// AsList returns v's list elements, or an error if v is not the list
// variant.
func (v Value) AsList() ([]Value, error) {
	if v.kind != KindList {
		return nil, kindMismatch(KindList, v.kind)
	}
	return v.list, nil
}

// AsMap returns v's field map, or an error if v is not the map
// variant.
func (v Value) AsMap() (map[string]Value, error) {
	if v.kind != KindMap {
		return nil, kindMismatch(KindMap, v.kind)
	}
	return v.fields, nil
}

// AsBool returns v's boolean value, or an error if v is not the bool
// variant.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, kindMismatch(KindBool, v.kind)
	}
	return v.boolean, nil
}

// AsCid returns v's linked CID, or an error if v is not the link
// variant.
func (v Value) AsCid() (cid.Cid, error) {
	if v.kind != KindLink {
		return cid.Cid{}, kindMismatch(KindLink, v.kind)
	}
	return v.link, nil
}

// AsOptCid returns v's linked CID and true if v is the link variant,
// or the zero Cid and false if v is null. Any other kind is an error
// — this accessor exists for map fields that are documented as
// "a CID or absent", not for silently coercing arbitrary values.
func (v Value) AsOptCid() (cid.Cid, bool, error) {
	switch v.kind {
	case KindLink:
		return v.link, true, nil
	case KindNull:
		return cid.Cid{}, false, nil
	default:
		return cid.Cid{}, false, kindMismatch(KindLink, v.kind)
	}
}

// MustU64 is AsU64 for callers certain of v's kind; it panics on
// mismatch.
func (v Value) MustU64() uint64 {
	n, err := v.AsU64()
	if err != nil {
		panic(err)
	}
	return n
}

// MustText is AsText for callers certain of v's kind; it panics on
// mismatch.
func (v Value) MustText() string {
	s, err := v.AsText()
	if err != nil {
		panic(err)
	}
	return s
}

// MustBytes is AsBytes for callers certain of v's kind; it panics on
// mismatch.
func (v Value) MustBytes() []byte {
	b, err := v.AsBytes()
	if err != nil {
		panic(err)
	}
	return b
}

// MustList is AsList for callers certain of v's kind; it panics on
// mismatch.
func (v Value) MustList() []Value {
	l, err := v.AsList()
	if err != nil {
		panic(err)
	}
	return l
}

// MustMap is AsMap for callers certain of v's kind; it panics on
// mismatch.
func (v Value) MustMap() map[string]Value {
	m, err := v.AsMap()
	if err != nil {
		panic(err)
	}
	return m
}

// MustCid is AsCid for callers certain of v's kind; it panics on
// mismatch.
func (v Value) MustCid() cid.Cid {
	c, err := v.AsCid()
	if err != nil {
		panic(err)
	}
	return c
}
