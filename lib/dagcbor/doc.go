// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package dagcbor decodes DAG-CBOR: the strictly-canonical subset of
// CBOR used by IPLD. DAG-CBOR forbids indefinite-length items,
// requires every integer to use its minimal encoding, restricts map
// keys to text strings with no duplicates, and embeds content
// identifiers as tag-42 byte strings.
//
// This package only decodes. DAG-CBOR values, once parsed, are
// immutable and owned by the caller; there is no encoder in this
// package's scope because nothing in this codec stack constructs new
// DAG-CBOR from scratch — it only reads what a firehose peer sent.
package dagcbor
