// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytecursor

import (
	"errors"
	"io"

	"github.com/bureau-foundation/carstream/lib/codecerr"
)

// Cursor reads from an underlying io.Reader while tracking how many
// bytes it has consumed. It implements io.ByteReader and io.Reader so
// it can be passed directly to decoders such as varint.ReadUint64.
//
// A Cursor produced by Take reads through the Cursor it was taken
// from rather than that cursor's underlying reader, so every byte the
// child reads is also debited against the parent's own remaining
// budget (if the parent is itself bounded) and added to the parent's
// position. This lets a decoder open a bounded child cursor for a
// nested value, hand it to a sub-decoder, and know that once the
// sub-decoder returns, its own cursor has moved forward exactly as
// far as the child read -- and that a doubly-nested child can never
// read past what its grandparent was willing to yield, since each
// level's Read enforces its own limit before delegating to the next.
type Cursor struct {
	r        io.Reader
	position int64
	limit    int64 // -1 means unbounded
}

// New wraps r in a Cursor with no read limit.
func New(r io.Reader) *Cursor {
	return &Cursor{r: r, limit: -1}
}

// Position reports the number of bytes read through this cursor so
// far (not counting bytes read by a since-exhausted child before it
// was taken — those were already counted here when the child read
// them).
func (c *Cursor) Position() int64 {
	return c.position
}

// Remaining reports how many further bytes this cursor will allow,
// or -1 if it has no limit.
func (c *Cursor) Remaining() int64 {
	if c.limit < 0 {
		return -1
	}
	return c.limit - c.position
}

// ReadByte reads a single byte, satisfying io.ByteReader.
func (c *Cursor) ReadByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(c, buf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = io.EOF
		}
		return 0, err
	}
	return buf[0], nil
}

// Read implements io.Reader, honoring this cursor's remaining limit
// (if any). A child cursor's r is its parent, not the parent's
// underlying reader, so a read against a child is clipped to the
// child's own limit and then to every ancestor's limit in turn as the
// call delegates upward — a grandchild can never read past what its
// grandparent was willing to yield.
func (c *Cursor) Read(p []byte) (int, error) {
	if c.limit >= 0 {
		if remaining := c.limit - c.position; int64(len(p)) > remaining {
			p = p[:remaining]
		}
		if len(p) == 0 {
			return 0, io.EOF
		}
	}
	n, err := c.r.Read(p)
	c.position += int64(n)
	return n, err
}

// ReadExact reads exactly len(buf) bytes, returning
// [codecerr.UnexpectedEOF] if the underlying reader (or this cursor's
// remaining limit) runs out first.
func (c *Cursor) ReadExact(buf []byte) error {
	n, err := io.ReadFull(c, buf)
	if err != nil {
		return codecerr.UnexpectedEOFf("bytecursor: read exact %d bytes, got %d: %w", len(buf), n, err)
	}
	return nil
}

// Take returns a child cursor that reads at most limit further bytes
// through c. Every byte the child reads also advances c's own
// position, so once the caller is done with the child (whether or not
// it read all limit bytes) c's position reflects only what the child
// actually consumed — not the full limit.
//
// Take does not itself skip past unread child bytes; a caller that
// wants to discard whatever the child left unread should call
// [Cursor.ReadToEnd] on the child before resuming reads on the
// parent.
func (c *Cursor) Take(limit int64) *Cursor {
	return &Cursor{r: c, limit: limit}
}

// ReadToEnd appends every remaining byte the cursor will yield to
// sink, returning the count appended. It can fast-forward past the
// unread rest of a bounded child cursor without decoding it; a caller
// with no use for the bytes themselves passes [io.Discard].
func (c *Cursor) ReadToEnd(sink io.Writer) (int64, error) {
	return io.Copy(sink, c)
}
