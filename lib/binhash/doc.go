// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash provides SHA256 content hashing for binary files.
//
// In this module it exists as an independent check on lib/car's block
// decoding: a test can write a decoded block's payload to a file and
// hash it with [HashFile], then compare that digest against the
// SHA2-256 multihash the block's own CID carries. Because the two
// hashing paths (this package's streaming file hasher versus
// lib/multihash.Sum's in-memory digest) share no code, agreement
// between them is evidence the block was read correctly rather than
// evidence the hashing logic merely agrees with itself.
//
// The API surface is four functions:
//
//   - [HashFile] -- streams a file through SHA256, returning a [32]byte
//     digest with constant memory usage regardless of file size
//   - [VerifyFile] -- hashes a file with [HashFile] and returns an error
//     if the digest differs from an expected one
//   - [FormatDigest] -- converts a [32]byte digest to its canonical
//     hex-encoded string representation
//   - [ParseDigest] -- parses a hex-encoded digest string back to a
//     [32]byte array, validating length and encoding
//
// This package has no dependencies on other packages in this module.
package binhash
