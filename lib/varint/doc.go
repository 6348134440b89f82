// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package varint encodes and decodes unsigned integers in the
// LEB128-style varint form used throughout the multiformats stack
// (multihash codes and sizes, CID version and codec fields, CAR
// frame lengths).
//
// Each byte carries 7 bits of little-endian payload; the high bit
// (the continuation bit) is set on every byte except the last.
// Decoding enforces minimality: the shortest encoding of a value is
// the only encoding the Decode and Read functions accept. A non-minimal encoding (a
// terminal byte of 0x00 anywhere after the first byte) is a protocol
// violation, not merely unusual input — without this check the same
// integer could be encoded multiple ways, which breaks CID identity
// (two byte sequences claiming to be "the same" CID would compare
// unequal, or worse, equal in one bit-diff and not another).
package varint
