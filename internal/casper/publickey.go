package casper

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Key algorithm tags as used on the wire and in hex-encoded key strings.
const (
	Ed25519Tag   byte = 1
	Secp256k1Tag byte = 2
)

// Raw key lengths per algorithm (secp256k1 keys are compressed points).
const (
	Ed25519KeyLength   = 32
	Secp256k1KeyLength = 33
	SignatureLength    = 64
)

// AlgorithmName returns the lowercase algorithm name for a key tag, used
// in account hash derivation and key file comments.
func AlgorithmName(tag byte) (string, error) {
	switch tag {
	case Ed25519Tag:
		return "ed25519", nil
	case Secp256k1Tag:
		return "secp256k1", nil
	default:
		return "", fmt.Errorf("unknown key algorithm tag %d", tag)
	}
}

// PublicKey is an account's algorithm-tagged public key. Its canonical
// textual form is the hex encoding of the tag byte followed by the raw
// key bytes, e.g. "01..." for ed25519 or "02..." / "03..."-prefixed
// compressed points under tag "02" for secp256k1.
type PublicKey struct {
	Tag byte
	Key []byte
}

// NewPublicKey validates the tag/length combination and returns the key.
func NewPublicKey(tag byte, key []byte) (PublicKey, error) {
	switch tag {
	case Ed25519Tag:
		if len(key) != Ed25519KeyLength {
			return PublicKey{}, fmt.Errorf("ed25519 public key must be %d bytes, got %d", Ed25519KeyLength, len(key))
		}
	case Secp256k1Tag:
		if len(key) != Secp256k1KeyLength {
			return PublicKey{}, fmt.Errorf("secp256k1 public key must be %d bytes, got %d", Secp256k1KeyLength, len(key))
		}
	default:
		return PublicKey{}, fmt.Errorf("unknown key algorithm tag %d", tag)
	}

	return PublicKey{Tag: tag, Key: append([]byte(nil), key...)}, nil
}

// ParsePublicKey decodes the tag-prefixed hex form of a public key.
func ParsePublicKey(s string) (PublicKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("decode public key %q: %w", s, err)
	}
	if len(raw) < 2 {
		return PublicKey{}, fmt.Errorf("public key %q too short", s)
	}
	return NewPublicKey(raw[0], raw[1:])
}

// Hex returns the canonical tag-prefixed hex encoding.
func (p PublicKey) Hex() string {
	return hex.EncodeToString(append([]byte{p.Tag}, p.Key...))
}

func (p PublicKey) String() string {
	return p.Hex()
}

// Equal reports whether two public keys are the same key.
func (p PublicKey) Equal(other PublicKey) bool {
	return p.Tag == other.Tag && bytes.Equal(p.Key, other.Key)
}

// AccountHash derives the account hash:
// blake2b256(lowercase(algorithm) ‖ 0x00 ‖ key bytes).
func (p PublicKey) AccountHash() AccountHash {
	name, err := AlgorithmName(p.Tag)
	if err != nil {
		// Construction goes through NewPublicKey, so the tag is known.
		panic(err)
	}

	preimage := make([]byte, 0, len(name)+1+len(p.Key))
	preimage = append(preimage, []byte(name)...)
	preimage = append(preimage, 0)
	preimage = append(preimage, p.Key...)

	return AccountHash(blake2b.Sum256(preimage))
}

// WriteTo appends the tag byte followed by the raw key bytes.
func (p PublicKey) WriteTo(e *Encoder) {
	e.Byte(p.Tag)
	e.Raw(p.Key)
}

func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Hex())
}

func (p *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePublicKey(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Signature is an algorithm-tagged signature over a deploy hash. Textual
// form mirrors PublicKey: hex of tag ‖ 64 signature bytes.
type Signature struct {
	Tag byte
	Sig []byte
}

// NewSignature validates the tag and signature length.
func NewSignature(tag byte, sig []byte) (Signature, error) {
	if _, err := AlgorithmName(tag); err != nil {
		return Signature{}, err
	}
	if len(sig) != SignatureLength {
		return Signature{}, fmt.Errorf("signature must be %d bytes, got %d", SignatureLength, len(sig))
	}
	return Signature{Tag: tag, Sig: append([]byte(nil), sig...)}, nil
}

// ParseSignature decodes the tag-prefixed hex form of a signature.
func ParseSignature(s string) (Signature, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Signature{}, fmt.Errorf("decode signature %q: %w", s, err)
	}
	if len(raw) < 2 {
		return Signature{}, fmt.Errorf("signature %q too short", s)
	}
	return NewSignature(raw[0], raw[1:])
}

// Hex returns the canonical tag-prefixed hex encoding.
func (s Signature) Hex() string {
	return hex.EncodeToString(append([]byte{s.Tag}, s.Sig...))
}

func (s Signature) String() string {
	return s.Hex()
}

// WriteTo appends the tag byte followed by the raw signature bytes.
func (s Signature) WriteTo(e *Encoder) {
	e.Byte(s.Tag)
	e.Raw(s.Sig)
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Hex())
}

func (s *Signature) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseSignature(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// AccountHash identifies an account in global state. Its formatted string
// form is "account-hash-" followed by 64 hex characters.
type AccountHash [DigestLength]byte

const accountHashPrefix = "account-hash-"

// ParseAccountHash decodes the "account-hash-<hex>" formatted string.
func ParseAccountHash(s string) (AccountHash, error) {
	var a AccountHash
	hexPart, ok := strings.CutPrefix(s, accountHashPrefix)
	if !ok {
		return a, fmt.Errorf("account hash %q must start with %q", s, accountHashPrefix)
	}
	raw, err := hex.DecodeString(hexPart)
	if err != nil {
		return a, fmt.Errorf("decode account hash %q: %w", s, err)
	}
	if len(raw) != DigestLength {
		return a, fmt.Errorf("account hash must be %d bytes, got %d", DigestLength, len(raw))
	}
	copy(a[:], raw)
	return a, nil
}

// FormattedString returns the "account-hash-<hex>" form.
func (a AccountHash) FormattedString() string {
	return accountHashPrefix + hex.EncodeToString(a[:])
}

func (a AccountHash) String() string {
	return a.FormattedString()
}

// WriteTo appends the raw 32 hash bytes.
func (a AccountHash) WriteTo(e *Encoder) {
	e.Raw(a[:])
}

func (a AccountHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.FormattedString())
}

func (a *AccountHash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAccountHash(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
