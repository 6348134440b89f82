// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package multihash implements the self-describing digest format used
// throughout the multiformats stack: a varint hash function code, a
// varint digest length, and the raw digest bytes.
//
// A [Multihash] carries a fixed-capacity digest array rather than a
// slice sized to the specific function in use. Every digest this
// package produces or reads fits in [MaxDigestSize] bytes, and callers
// that need the digest's true length use the Size field rather than
// len(Digest) — the trailing bytes beyond Size are unused capacity,
// not padding with any defined meaning.
package multihash
