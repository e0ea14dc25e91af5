// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

// Package keys holds the asymmetric key pairs used to sign deploys:
// ed25519 and secp256k1, with PEM persistence compatible with the node's
// key format.
package keys

import (
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/vkarasev/go-casper-client/internal/casper"
)

// Algorithm names accepted by keygen and reported by SecretKey.
const (
	AlgorithmEd25519   = "ed25519"
	AlgorithmSecp256k1 = "secp256k1"
)

var ErrUnknownAlgorithm = errors.New("unknown signature algorithm")

// SecretKey signs messages and exposes the matching public key.
type SecretKey interface {
	// Algorithm reports AlgorithmEd25519 or AlgorithmSecp256k1.
	Algorithm() string

	// PublicKey returns the tagged public key for this secret key.
	PublicKey() casper.PublicKey

	// Sign produces a signature over msg. Ed25519 signs the message
	// directly; secp256k1 signs its SHA-256 digest, as the node expects.
	Sign(msg []byte) (casper.Signature, error)
}

// Generate creates a fresh key pair for the named algorithm.
func Generate(algorithm string) (SecretKey, error) {
	switch algorithm {
	case AlgorithmEd25519:
		return GenerateEd25519()
	case AlgorithmSecp256k1:
		return GenerateSecp256k1()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// Verify checks sig over msg against pub, dispatching on the key's tag.
func Verify(pub casper.PublicKey, msg []byte, sig casper.Signature) error {
	if pub.Tag != sig.Tag {
		sigAlg, _ := casper.AlgorithmName(sig.Tag)
		keyAlg, _ := casper.AlgorithmName(pub.Tag)
		return fmt.Errorf("signature algorithm %s does not match key algorithm %s", sigAlg, keyAlg)
	}

	switch pub.Tag {
	case casper.Ed25519Tag:
		if !ed25519.Verify(ed25519.PublicKey(pub.Key), msg, sig.Sig[:]) {
			return errors.New("ed25519 signature verification failed")
		}
		return nil

	case casper.Secp256k1Tag:
		pk, err := secp256k1.ParsePubKey(pub.Key)
		if err != nil {
			return fmt.Errorf("parse secp256k1 public key: %w", err)
		}
		var r, s secp256k1.ModNScalar
		if r.SetByteSlice(sig.Sig[:32]) || s.SetByteSlice(sig.Sig[32:]) {
			return errors.New("secp256k1 signature component out of range")
		}
		digest := sha256.Sum256(msg)
		if !dcrecdsa.NewSignature(&r, &s).Verify(digest[:], pk) {
			return errors.New("secp256k1 signature verification failed")
		}
		return nil

	default:
		return fmt.Errorf("%w: tag %d", ErrUnknownAlgorithm, pub.Tag)
	}
}
