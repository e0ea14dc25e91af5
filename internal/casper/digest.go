// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

// Package casper holds the core Casper domain types shared by the deploy
// builder, the argument codec and the RPC layer: digests, timestamps,
// public keys, signatures, account hashes, unforgeable references and
// global-state keys, together with their binary ("bytesrepr") and JSON
// representations as expected by the node.
package casper

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// DigestLength is the byte length of all hashes used on the network.
const DigestLength = 32

// Digest is a blake2b-256 hash. JSON form is lowercase hex.
type Digest [DigestLength]byte

// HashBytes returns the blake2b-256 digest of data.
func HashBytes(data []byte) Digest {
	return blake2b.Sum256(data)
}

// ParseDigest decodes a 64-character hex string into a Digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	raw, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("decode digest %q: %w", s, err)
	}
	if len(raw) != DigestLength {
		return d, fmt.Errorf("digest must be %d bytes, got %d", DigestLength, len(raw))
	}
	copy(d[:], raw)
	return d, nil
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// WriteTo appends the raw digest bytes to e.
func (d Digest) WriteTo(e *Encoder) {
	e.Raw(d[:])
}

func (d Digest) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Digest) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDigest(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
