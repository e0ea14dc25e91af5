package keys

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/asn1"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/vkarasev/go-casper-client/internal/casper"
)

const (
	pemTypePKCS8  = "PRIVATE KEY"
	pemTypeSEC1   = "EC PRIVATE KEY"
	pemTypePublic = "PUBLIC KEY"
)

var (
	oidSecp256k1   = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
	oidECPublicKey = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
)

var ErrNoPEMBlock = errors.New("no PEM block found")

// RFC 5915 ECPrivateKey, used for secp256k1 keys since crypto/x509 does
// not support that curve.
type ecPrivateKey struct {
	Version       int
	PrivateKey    []byte
	NamedCurveOID asn1.ObjectIdentifier `asn1:"optional,explicit,tag:0"`
	PublicKey     asn1.BitString        `asn1:"optional,explicit,tag:1"`
}

type algorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.ObjectIdentifier
}

type subjectPublicKeyInfo struct {
	Algorithm algorithmIdentifier
	PublicKey asn1.BitString
}

// EncodeSecretKeyPEM renders key in the node's on-disk format: PKCS#8 for
// ed25519, SEC1 for secp256k1.
func EncodeSecretKeyPEM(key SecretKey) ([]byte, error) {
	switch k := key.(type) {
	case *Ed25519Key:
		der, err := x509.MarshalPKCS8PrivateKey(k.priv)
		if err != nil {
			return nil, fmt.Errorf("marshal ed25519 secret key: %w", err)
		}
		return pem.EncodeToMemory(&pem.Block{Type: pemTypePKCS8, Bytes: der}), nil

	case *Secp256k1Key:
		der, err := asn1.Marshal(ecPrivateKey{
			Version:       1,
			PrivateKey:    k.priv.Serialize(),
			NamedCurveOID: oidSecp256k1,
		})
		if err != nil {
			return nil, fmt.Errorf("marshal secp256k1 secret key: %w", err)
		}
		return pem.EncodeToMemory(&pem.Block{Type: pemTypeSEC1, Bytes: der}), nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownAlgorithm, key)
	}
}

// ParseSecretKeyPEM reads a secret key in either supported format,
// detecting the algorithm from the PEM block type.
func ParseSecretKeyPEM(data []byte) (SecretKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrNoPEMBlock
	}

	switch block.Type {
	case pemTypePKCS8:
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse PKCS#8 secret key: %w", err)
		}
		priv, ok := parsed.(ed25519.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("PKCS#8 key is %T, expected ed25519", parsed)
		}
		return &Ed25519Key{priv: priv}, nil

	case pemTypeSEC1:
		var ec ecPrivateKey
		if _, err := asn1.Unmarshal(block.Bytes, &ec); err != nil {
			return nil, fmt.Errorf("parse SEC1 secret key: %w", err)
		}
		if len(ec.NamedCurveOID) > 0 && !ec.NamedCurveOID.Equal(oidSecp256k1) {
			return nil, fmt.Errorf("unsupported curve OID %v, expected secp256k1", ec.NamedCurveOID)
		}
		return NewSecp256k1FromBytes(ec.PrivateKey)

	default:
		return nil, fmt.Errorf("unexpected PEM block type %q", block.Type)
	}
}

// LoadSecretKeyFile reads and parses a secret key PEM file.
func LoadSecretKeyFile(path string) (SecretKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read secret key: %w", err)
	}
	key, err := ParseSecretKeyPEM(data)
	if err != nil {
		return nil, fmt.Errorf("secret key %s: %w", path, err)
	}
	return key, nil
}

// EncodePublicKeyPEM renders pub as a SubjectPublicKeyInfo PEM block.
func EncodePublicKeyPEM(pub casper.PublicKey) ([]byte, error) {
	switch pub.Tag {
	case casper.Ed25519Tag:
		der, err := x509.MarshalPKIXPublicKey(ed25519.PublicKey(pub.Key))
		if err != nil {
			return nil, fmt.Errorf("marshal ed25519 public key: %w", err)
		}
		return pem.EncodeToMemory(&pem.Block{Type: pemTypePublic, Bytes: der}), nil

	case casper.Secp256k1Tag:
		der, err := asn1.Marshal(subjectPublicKeyInfo{
			Algorithm: algorithmIdentifier{Algorithm: oidECPublicKey, Parameters: oidSecp256k1},
			PublicKey: asn1.BitString{Bytes: pub.Key, BitLength: len(pub.Key) * 8},
		})
		if err != nil {
			return nil, fmt.Errorf("marshal secp256k1 public key: %w", err)
		}
		return pem.EncodeToMemory(&pem.Block{Type: pemTypePublic, Bytes: der}), nil

	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownAlgorithm, pub.Tag)
	}
}

// ParsePublicKeyPEM reads a public key PEM block, accepting both
// compressed and uncompressed secp256k1 points.
func ParsePublicKeyPEM(data []byte) (casper.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return casper.PublicKey{}, ErrNoPEMBlock
	}
	if block.Type != pemTypePublic {
		return casper.PublicKey{}, fmt.Errorf("unexpected PEM block type %q", block.Type)
	}

	if parsed, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		if pub, ok := parsed.(ed25519.PublicKey); ok {
			return casper.NewPublicKey(casper.Ed25519Tag, pub)
		}
	}

	var spki subjectPublicKeyInfo
	if _, err := asn1.Unmarshal(block.Bytes, &spki); err != nil {
		return casper.PublicKey{}, fmt.Errorf("parse public key: %w", err)
	}
	if !spki.Algorithm.Algorithm.Equal(oidECPublicKey) || !spki.Algorithm.Parameters.Equal(oidSecp256k1) {
		return casper.PublicKey{}, fmt.Errorf("unsupported public key algorithm %v", spki.Algorithm.Algorithm)
	}
	point, err := secp256k1.ParsePubKey(spki.PublicKey.Bytes)
	if err != nil {
		return casper.PublicKey{}, fmt.Errorf("parse secp256k1 point: %w", err)
	}
	return casper.NewPublicKey(casper.Secp256k1Tag, point.SerializeCompressed())
}
