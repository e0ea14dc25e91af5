package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/vkarasev/go-casper-client/internal/casper"
)

// Ed25519Key is an ed25519 secret key.
type Ed25519Key struct {
	priv ed25519.PrivateKey
}

// GenerateEd25519 creates a new random ed25519 key pair.
func GenerateEd25519() (*Ed25519Key, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate ed25519 key: %w", err)
	}
	return &Ed25519Key{priv: priv}, nil
}

// NewEd25519FromSeed rebuilds a key from its 32-byte seed.
func NewEd25519FromSeed(seed []byte) (*Ed25519Key, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("ed25519 seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return &Ed25519Key{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

func (k *Ed25519Key) Algorithm() string { return AlgorithmEd25519 }

func (k *Ed25519Key) PublicKey() casper.PublicKey {
	pub := k.priv.Public().(ed25519.PublicKey)
	return casper.PublicKey{Tag: casper.Ed25519Tag, Key: append([]byte(nil), pub...)}
}

func (k *Ed25519Key) Sign(msg []byte) (casper.Signature, error) {
	return casper.NewSignature(casper.Ed25519Tag, ed25519.Sign(k.priv, msg))
}
