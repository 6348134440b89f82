// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dagcbor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/bureau-foundation/carstream/lib/bytecursor"
	"github.com/bureau-foundation/carstream/lib/cid"
	"github.com/bureau-foundation/carstream/lib/codecerr"
)

const (
	majorUnsigned = 0
	majorNegative = 1
	majorBytes    = 2
	majorText     = 3
	majorList     = 4
	majorMap      = 5
	majorTag      = 6
	majorOther    = 7
)

// containerReserveCap bounds the up-front allocation this package
// makes for a byte string, text string, list, or map based on a
// peer-declared length. The declared length is untrusted; the
// container is still free to grow past this cap as decoding actually
// consumes bytes.
const containerReserveCap = 16 * 1024

const cidLinkTag = 42

// Decode reads one DAG-CBOR value from r.
func Decode(r *bytecursor.Cursor) (Value, error) {
	major, info, err := readMajorByte(r)
	if err != nil {
		return Value{}, err
	}

	switch major {
	case majorUnsigned:
		n, err := readUint(r, info)
		if err != nil {
			return Value{}, err
		}
		return unsignedValue(n), nil

	case majorNegative:
		n, err := readUint(r, info)
		if err != nil {
			return Value{}, err
		}
		if n > 1<<63-1 {
			return Value{}, codecerr.Overflowf("dagcbor: negative integer argument %d overflows int64", n)
		}
		return negativeValue(-1 - int64(n)), nil

	case majorBytes:
		n, err := readUint(r, info)
		if err != nil {
			return Value{}, err
		}
		b, err := readByteString(r, n)
		if err != nil {
			return Value{}, err
		}
		return bytesValue(b), nil

	case majorText:
		n, err := readUint(r, info)
		if err != nil {
			return Value{}, err
		}
		b, err := readByteString(r, n)
		if err != nil {
			return Value{}, err
		}
		return textValue(string(b)), nil

	case majorList:
		n, err := readUint(r, info)
		if err != nil {
			return Value{}, err
		}
		return decodeList(r, n)

	case majorMap:
		n, err := readUint(r, info)
		if err != nil {
			return Value{}, err
		}
		return decodeMap(r, n)

	case majorTag:
		n, err := readUint(r, info)
		if err != nil {
			return Value{}, err
		}
		if n != cidLinkTag {
			return Value{}, codecerr.UnknownTagf("dagcbor: unsupported tag %d", n)
		}
		return decodeCidLink(r)

	case majorOther:
		return decodeOther(r, info)

	default:
		// unreachable: major is masked to 3 bits by readMajorByte.
		return Value{}, codecerr.InvalidCodef("dagcbor: impossible major type %d", major)
	}
}

// readMajorByte reads the leading byte of a value and splits it into
// its 3-bit major type and 5-bit additional-info field, rejecting the
// four info values (28-31) that CBOR reserves and never assigns a
// meaning to.
func readMajorByte(r *bytecursor.Cursor) (major, info byte, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, 0, wrapEOF(err, "dagcbor: read major byte")
	}
	major = b >> 5
	info = b & 0x1f
	if info >= 28 && info <= 31 {
		return 0, 0, codecerr.InvalidCodef("dagcbor: additional info %d is reserved", info)
	}
	return major, info, nil
}

// readUint decodes a CBOR integer argument, keyed by the additional
// info field of the major byte that preceded it. Info 0-23 is a
// literal value; 24/25/26/27 mean the argument follows as 1/2/4/8
// big-endian bytes, and the minimal encoding of that argument must
// have needed exactly that many bytes — a peer that could have used a
// shorter form is rejected with NotMinimal.
func readUint(r *bytecursor.Cursor, info byte) (uint64, error) {
	if info < 24 {
		return uint64(info), nil
	}
	switch info {
	case 24:
		var buf [1]byte
		if err := readExact(r, buf[:]); err != nil {
			return 0, err
		}
		n := uint64(buf[0])
		if n <= 23 {
			return 0, codecerr.NotMinimalf("dagcbor: 1-byte argument %d fits in the major byte itself", n)
		}
		return n, nil
	case 25:
		var buf [2]byte
		if err := readExact(r, buf[:]); err != nil {
			return 0, err
		}
		n := uint64(binary.BigEndian.Uint16(buf[:]))
		if n <= 255 {
			return 0, codecerr.NotMinimalf("dagcbor: 2-byte argument %d fits in 1 byte", n)
		}
		return n, nil
	case 26:
		var buf [4]byte
		if err := readExact(r, buf[:]); err != nil {
			return 0, err
		}
		n := uint64(binary.BigEndian.Uint32(buf[:]))
		if n <= 65535 {
			return 0, codecerr.NotMinimalf("dagcbor: 4-byte argument %d fits in 2 bytes", n)
		}
		return n, nil
	case 27:
		var buf [8]byte
		if err := readExact(r, buf[:]); err != nil {
			return 0, err
		}
		n := binary.BigEndian.Uint64(buf[:])
		if n <= 4294967295 {
			return 0, codecerr.NotMinimalf("dagcbor: 8-byte argument %d fits in 4 bytes", n)
		}
		return n, nil
	default:
		// info in {28,29,30,31} was already rejected by readMajorByte,
		// so this path is unreachable for arguments that follow a
		// major byte read through this package's decoder.
		return 0, codecerr.InvalidCodef("dagcbor: unsupported additional info %d", info)
	}
}

// decodeOther handles major type 7: booleans, null, and floats. Half
// floats (info 25) are rejected with InvalidCode; this decoder does
// not convert half-precision values to float64.
func decodeOther(r *bytecursor.Cursor, info byte) (Value, error) {
	switch info {
	case 20:
		return boolValue(false), nil
	case 21:
		return boolValue(true), nil
	case 22:
		return nullValue(), nil
	case 25:
		return Value{}, codecerr.InvalidCodef("dagcbor: half-precision floats (major 7 info 25) are not supported")
	case 26:
		var buf [4]byte
		if err := readExact(r, buf[:]); err != nil {
			return Value{}, err
		}
		f := math.Float32frombits(binary.BigEndian.Uint32(buf[:]))
		return floatValue(float64(f)), nil
	case 27:
		var buf [8]byte
		if err := readExact(r, buf[:]); err != nil {
			return Value{}, err
		}
		f := math.Float64frombits(binary.BigEndian.Uint64(buf[:]))
		return floatValue(f), nil
	default:
		return Value{}, codecerr.InvalidCodef("dagcbor: unsupported major-7 code %d", info)
	}
}

func decodeList(r *bytecursor.Cursor, n uint64) (Value, error) {
	reserve := n
	if reserve > containerReserveCap {
		reserve = containerReserveCap
	}
	items := make([]Value, 0, reserve)
	for i := uint64(0); i < n; i++ {
		item, err := Decode(r)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	return listValue(items), nil
}

func decodeMap(r *bytecursor.Cursor, n uint64) (Value, error) {
	reserve := n
	if reserve > containerReserveCap {
		reserve = containerReserveCap
	}
	fields := make(map[string]Value, reserve)
	for i := uint64(0); i < n; i++ {
		key, err := Decode(r)
		if err != nil {
			return Value{}, err
		}
		keyText, err := key.AsText()
		if err != nil {
			return Value{}, codecerr.InvalidCodef("dagcbor: map key must be text, got kind %d", key.kind)
		}
		if _, exists := fields[keyText]; exists {
			return Value{}, codecerr.DuplicateKeyf("dagcbor: duplicate map key %q", keyText)
		}
		value, err := Decode(r)
		if err != nil {
			return Value{}, err
		}
		fields[keyText] = value
	}
	return mapValue(fields), nil
}

// decodeCidLink decodes the tag-42 CID bridge: a byte string whose
// first byte is the multibase "identity" prefix (0x00), followed by
// the CID's own v0-or-v1 binary encoding.
func decodeCidLink(r *bytecursor.Cursor) (Value, error) {
	major, info, err := readMajorByte(r)
	if err != nil {
		return Value{}, err
	}
	if major != majorBytes {
		return Value{}, codecerr.InvalidCIDf("dagcbor: tag 42 content must be a byte string, got major type %d", major)
	}
	n, err := readUint(r, info)
	if err != nil {
		return Value{}, err
	}
	if n == 0 {
		return Value{}, codecerr.InvalidCIDf("dagcbor: tag 42 byte string is empty")
	}
	content, err := readByteString(r, n)
	if err != nil {
		return Value{}, err
	}
	if content[0] != 0x00 {
		return Value{}, codecerr.InvalidCIDf("dagcbor: tag 42 byte string must start with the identity prefix 0x00, got 0x%02x", content[0])
	}
	c, err := cid.Read(bytecursor.New(bytes.NewReader(content[1:])))
	if err != nil {
		return Value{}, err
	}
	return linkValue(c), nil
}

// readByteString reads exactly n bytes from r into a freshly
// allocated slice. The up-front allocation is capped at
// containerReserveCap regardless of how large n claims to be; the
// slice is grown in chunks past that cap as bytes actually arrive, so
// a peer declaring an inflated length can only force incremental
// growth, not one enormous immediate allocation.
func readByteString(r *bytecursor.Cursor, n uint64) ([]byte, error) {
	reserve := n
	if reserve > containerReserveCap {
		reserve = containerReserveCap
	}
	buf := make([]byte, 0, reserve)
	for remaining := n; remaining > 0; {
		chunk := remaining
		if chunk > containerReserveCap {
			chunk = containerReserveCap
		}
		start := len(buf)
		buf = append(buf, make([]byte, chunk)...)
		if err := r.ReadExact(buf[start:]); err != nil {
			return nil, err
		}
		remaining -= chunk
	}
	return buf, nil
}

func readExact(r *bytecursor.Cursor, buf []byte) error {
	return r.ReadExact(buf)
}

func wrapEOF(err error, context string) error {
	if errors.Is(err, io.EOF) {
		return codecerr.UnexpectedEOFf("%s: %w", context, err)
	}
	return err
}
