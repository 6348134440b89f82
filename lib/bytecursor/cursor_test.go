// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytecursor

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReadByteAdvancesPosition(t *testing.T) {
	c := New(bytes.NewReader([]byte{0x01, 0x02, 0x03}))
	for i := 0; i < 3; i++ {
		b, err := c.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte %d: %v", i, err)
		}
		if b != byte(i+1) {
			t.Errorf("byte %d = 0x%02x, want 0x%02x", i, b, i+1)
		}
	}
	if c.Position() != 3 {
		t.Errorf("Position() = %d, want 3", c.Position())
	}
	if _, err := c.ReadByte(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF at end of stream, got %v", err)
	}
}

func TestTakeBoundsChildReads(t *testing.T) {
	parent := New(bytes.NewReader([]byte{0xaa, 0xbb, 0xcc, 0xdd}))
	child := parent.Take(2)

	buf := make([]byte, 2)
	if err := child.ReadExact(buf); err != nil {
		t.Fatalf("ReadExact: %v", err)
	}
	if !bytes.Equal(buf, []byte{0xaa, 0xbb}) {
		t.Errorf("buf = % x, want [aa bb]", buf)
	}

	if _, err := child.ReadByte(); !errors.Is(err, io.EOF) {
		t.Errorf("child should be exhausted at its limit, got %v", err)
	}

	// The parent's position must reflect exactly what the child
	// consumed, not the full limit offered.
	if parent.Position() != 2 {
		t.Errorf("parent Position() = %d, want 2", parent.Position())
	}

	next, err := parent.ReadByte()
	if err != nil {
		t.Fatalf("parent ReadByte after child exhausted: %v", err)
	}
	if next != 0xcc {
		t.Errorf("next parent byte = 0x%02x, want 0xcc", next)
	}
}

func TestTakePartialReadAdvancesParentByActualAmount(t *testing.T) {
	parent := New(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05}))
	child := parent.Take(3)

	// Only read one of the three bytes the child was offered.
	b, err := child.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if b != 0x01 {
		t.Errorf("b = 0x%02x, want 0x01", b)
	}
	if parent.Position() != 1 {
		t.Errorf("parent Position() = %d, want 1 (only what the child actually read)", parent.Position())
	}

	var rest bytes.Buffer
	appended, err := child.ReadToEnd(&rest)
	if err != nil {
		t.Fatalf("ReadToEnd: %v", err)
	}
	if appended != 2 {
		t.Errorf("appended = %d, want 2", appended)
	}
	if !bytes.Equal(rest.Bytes(), []byte{0x02, 0x03}) {
		t.Errorf("sink contents = % x, want [02 03]", rest.Bytes())
	}
	if parent.Position() != 3 {
		t.Errorf("parent Position() after ReadToEnd = %d, want 3", parent.Position())
	}

	next, err := parent.ReadByte()
	if err != nil {
		t.Fatalf("parent ReadByte: %v", err)
	}
	if next != 0x04 {
		t.Errorf("next = 0x%02x, want 0x04", next)
	}
}

func TestReadExactUnexpectedEOF(t *testing.T) {
	c := New(bytes.NewReader([]byte{0x01, 0x02}))
	buf := make([]byte, 5)
	err := c.ReadExact(buf)
	if err == nil {
		t.Fatal("expected an error reading past the end of a short stream")
	}
}

func TestNestedTake(t *testing.T) {
	root := New(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6}))
	outer := root.Take(4)
	inner := outer.Take(2)

	buf := make([]byte, 2)
	if err := inner.ReadExact(buf); err != nil {
		t.Fatalf("ReadExact: %v", err)
	}

	if outer.Position() != 2 {
		t.Errorf("outer.Position() = %d, want 2", outer.Position())
	}
	if root.Position() != 2 {
		t.Errorf("root.Position() = %d, want 2", root.Position())
	}
}

// TestNestedTakeInnerLimitClippedByOuter constructs an inner cursor
// whose own declared limit is larger than what the outer cursor has
// left to give, and checks that the outer's limit wins: the inner
// cursor must not be able to read past its grandparent's budget just
// because it was handed a bigger number by whoever called Take.
func TestNestedTakeInnerLimitClippedByOuter(t *testing.T) {
	root := New(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	outer := root.Take(3)
	inner := outer.Take(10)

	var sink bytes.Buffer
	n, err := inner.ReadToEnd(&sink)
	if err != nil {
		t.Fatalf("ReadToEnd: %v", err)
	}
	if n != 3 {
		t.Errorf("inner ReadToEnd = %d bytes, want 3 (bounded by outer's limit)", n)
	}
	if !bytes.Equal(sink.Bytes(), []byte{1, 2, 3}) {
		t.Errorf("sink contents = % v, want [1 2 3]", sink.Bytes())
	}
	if outer.Position() != 3 {
		t.Errorf("outer.Position() = %d, want 3", outer.Position())
	}
	if root.Position() != 3 {
		t.Errorf("root.Position() = %d, want 3", root.Position())
	}

	if _, err := inner.ReadByte(); !errors.Is(err, io.EOF) {
		t.Errorf("inner should be exhausted once outer's limit is spent, got %v", err)
	}

	next, err := root.ReadByte()
	if err != nil {
		t.Fatalf("root ReadByte after outer/inner exhausted: %v", err)
	}
	if next != 4 {
		t.Errorf("next root byte = %d, want 4", next)
	}
}
