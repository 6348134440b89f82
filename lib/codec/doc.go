// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides a single function, Marshal, used in this
// repository to build DAG-CBOR test fixtures for the lib/dagcbor and
// lib/car packages.
//
// A generic CBOR encoder is not itself a DAG-CBOR encoder — it does
// not enforce canonical map key ordering against DAG-CBOR's rules, and
// nothing in lib/dagcbor's decode path depends on it. Its role here is
// narrower: producing well-formed CBOR byte strings that exercise
// lib/dagcbor.Decode against realistic, non-hand-assembled input,
// alongside the byte-level fixtures used for edge cases the encoder
// can't easily produce (reserved additional-info bytes, non-minimal
// arguments, and the like).
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items —
// which happens to make its output valid DAG-CBOR for the values this
// module's tests construct with it.
//
//	data, err := codec.Marshal(value)
//
// This package only encodes. Nothing in this module decodes fixtures
// back out through fxamacker/cbor — a test that needs to check what
// Marshal produced either inspects the bytes directly or decodes them
// with lib/dagcbor.Decode, the same decoder production code uses.
package codec
