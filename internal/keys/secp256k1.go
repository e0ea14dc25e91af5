package keys

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/vkarasev/go-casper-client/internal/casper"
)

// Secp256k1Key is a secp256k1 secret key. Signatures are 64-byte r||s
// over the SHA-256 digest of the message.
type Secp256k1Key struct {
	priv *secp256k1.PrivateKey
}

// GenerateSecp256k1 creates a new random secp256k1 key pair.
func GenerateSecp256k1() (*Secp256k1Key, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate secp256k1 key: %w", err)
	}
	return &Secp256k1Key{priv: priv}, nil
}

// NewSecp256k1FromBytes rebuilds a key from its 32-byte scalar.
func NewSecp256k1FromBytes(raw []byte) (*Secp256k1Key, error) {
	if len(raw) != 32 {
		return nil, fmt.Errorf("secp256k1 secret key must be 32 bytes, got %d", len(raw))
	}
	return &Secp256k1Key{priv: secp256k1.PrivKeyFromBytes(raw)}, nil
}

func (k *Secp256k1Key) Algorithm() string { return AlgorithmSecp256k1 }

func (k *Secp256k1Key) PublicKey() casper.PublicKey {
	return casper.PublicKey{
		Tag: casper.Secp256k1Tag,
		Key: k.priv.PubKey().SerializeCompressed(),
	}
}

func (k *Secp256k1Key) Sign(msg []byte) (casper.Signature, error) {
	digest := sha256.Sum256(msg)
	// SignCompact prepends a recovery byte; the node wants plain r||s.
	compact := dcrecdsa.SignCompact(k.priv, digest[:], true)
	return casper.NewSignature(casper.Secp256k1Tag, compact[1:])
}
