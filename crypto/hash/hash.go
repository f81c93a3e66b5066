/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

// Package hash provides the SHA-256 digest type used for anchored data.
package hash

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/minio/sha256-simd"
)

// SHA256HashSize holds the size of a sha256 hash in bytes.
const SHA256HashSize = 32

// Algorithm is the name of the digest algorithm as it is recorded next to anchored digests.
const Algorithm = "sha-256"

// SHA256Hash is a SHA-256 digest.
type SHA256Hash [SHA256HashSize]byte

// SHA256Sum computes the digest of the given bytes.
func SHA256Sum(data []byte) SHA256Hash {
	return sha256.Sum256(data)
}

// String returns the digest as lowercase hex.
func (h SHA256Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Empty tests whether the digest is all zeros.
func (h SHA256Hash) Empty() bool {
	return h == SHA256Hash{}
}

// Equals compares the digests in constant time.
func (h SHA256Hash) Equals(other SHA256Hash) bool {
	return subtle.ConstantTimeCompare(h[:], other[:]) == 1
}

// MarshalText encodes the digest as hex.
func (h SHA256Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText decodes a hex encoded digest.
func (h *SHA256Hash) UnmarshalText(data []byte) error {
	parsed, err := ParseHex(string(data))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseHex parses a hex encoded digest.
func ParseHex(input string) (SHA256Hash, error) {
	data, err := hex.DecodeString(input)
	if err != nil {
		return SHA256Hash{}, fmt.Errorf("invalid digest: %w", err)
	}
	if len(data) != SHA256HashSize {
		return SHA256Hash{}, fmt.Errorf("invalid digest: incorrect length (%d)", len(data))
	}
	var result SHA256Hash
	copy(result[:], data)
	return result, nil
}
