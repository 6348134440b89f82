// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// HashFile computes the SHA256 digest of a decoded CAR block payload
// once it has been written out to path. The file is streamed through
// the hash function in chunks (via io.Copy) to keep memory usage
// constant regardless of payload size.
func HashFile(path string) ([32]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return [32]byte{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return [32]byte{}, fmt.Errorf("hashing %s: %w", path, err)
	}

	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// VerifyFile re-hashes the file at path and reports whether the
// result matches want. This is the independent half of a block-digest
// check: lib/car decodes a block's CID and payload from a multihash it
// parsed off the wire, and a caller that wants a second opinion writes
// the payload to a file and asks VerifyFile to confirm it hashes to
// the same SHA2-256 digest the CID carries, using a code path that
// never touches lib/multihash or lib/cid.
func VerifyFile(path string, want [32]byte) error {
	got, err := HashFile(path)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("digest mismatch for %s: got %s, want %s", path, FormatDigest(got), FormatDigest(want))
	}
	return nil
}

// FormatDigest returns the hex-encoded string representation of a
// SHA256 digest, the form used to compare a file digest against a
// multihash digest in test output and error messages.
func FormatDigest(digest [32]byte) string {
	return hex.EncodeToString(digest[:])
}

// ParseDigest parses a hex-encoded SHA256 digest string into a
// 32-byte array. Returns an error if the string is not a valid
// 64-character hex encoding of 32 bytes.
func ParseDigest(hexString string) ([32]byte, error) {
	var digest [32]byte
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing hash digest: %w", err)
	}
	if len(decoded) != 32 {
		return digest, fmt.Errorf("hash digest is %d bytes, want 32", len(decoded))
	}
	copy(digest[:], decoded)
	return digest, nil
}
