// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codecerr defines the shared error taxonomy used by every
// decoder in this repository (varint, bytecursor, multihash, cid,
// dagcbor, car).
//
// Every decode failure is one of a small closed set of [Kind] values.
// Callers that need to distinguish a truncated stream from a malformed
// one use [Is] against the exported [Kind] constants rather than
// matching error message text:
//
//	_, err := varint.ReadUint64(cursor)
//	if codecerr.Is(err, codecerr.UnexpectedEOF) {
//		// the peer's stream ended mid-value; wait for more bytes
//	}
//
// [Error] wraps the underlying cause (a short message, sometimes itself
// wrapping an *io.Reader* error) with its [Kind], the same "closed
// category plus wrapped cause" shape used for classified errors
// elsewhere in this module family. None of these errors are retried
// automatically; every one is fatal to the decode in progress, and per
// spec the cursor's position after a failure is undefined — callers
// discard the cursor and the buffer it was reading.
package codecerr
