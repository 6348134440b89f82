// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cid implements content identifiers: a version, a codec, and
// a multihash, with the CIDv0/CIDv1 binary shapes and the CIDv1
// base32-multibase textual form.
//
// CIDv0 has no version or codec prefix on the wire — it is
// recognized entirely by shape (a 34-byte sequence beginning with the
// SHA2-256 multihash header). Internally this package always keeps
// the distinction between a value that arrived as v0 and one that
// arrived as v1, but it only ever writes the v1 form: v0 is a legacy
// wire shape this package reads for compatibility, not one it
// reproduces.
package cid
