// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package car reads CAR v1 (Content-Addressable aRchive) files: a
// length-delimited CBOR header naming the archive's root CIDs,
// followed by a sequence of length-delimited (CID, payload) blocks.
//
// A [Reader] is a forward-only, single-pass cursor over one archive.
// It reuses a single scratch buffer across frames rather than
// allocating one per block, since a firehose consumer reading a long
// stream of small CAR frames would otherwise churn the allocator once
// per block.
package car
