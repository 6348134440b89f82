// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bytecursor provides a position-tracking reader over an
// underlying io.Reader, with the ability to carve out a bounded child
// cursor that reads at most a fixed number of further bytes while
// advancing its parent's position in lockstep.
//
// This borrow relationship is what lets a DAG-CBOR or CAR decoder hand
// a nested decoder "the next N bytes of the stream" without copying
// them into an intermediate buffer, and without losing track of how
// far the outer stream has advanced once the nested decoder returns.
package bytecursor
