package casper

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Global-state key variant tags (bytesrepr).
const (
	keyAccountTag byte = 0
	keyHashTag    byte = 1
	keyURefTag    byte = 2
)

// Key addresses a value in global state. Exactly one of the variant
// fields is set. Formatted string forms: "account-hash-<hex>",
// "hash-<hex>" and "uref-<hex>-<rights>".
type Key struct {
	Account *AccountHash
	Hash    *Digest
	URef    *URef
}

const keyHashPrefix = "hash-"

// ParseKey decodes any of the formatted key string forms.
func ParseKey(s string) (Key, error) {
	switch {
	case strings.HasPrefix(s, accountHashPrefix):
		account, err := ParseAccountHash(s)
		if err != nil {
			return Key{}, err
		}
		return Key{Account: &account}, nil

	case strings.HasPrefix(s, keyHashPrefix):
		raw, err := hex.DecodeString(strings.TrimPrefix(s, keyHashPrefix))
		if err != nil {
			return Key{}, fmt.Errorf("decode hash key %q: %w", s, err)
		}
		if len(raw) != DigestLength {
			return Key{}, fmt.Errorf("hash key must be %d bytes, got %d", DigestLength, len(raw))
		}
		var d Digest
		copy(d[:], raw)
		return Key{Hash: &d}, nil

	case strings.HasPrefix(s, urefPrefix):
		uref, err := ParseURef(s)
		if err != nil {
			return Key{}, err
		}
		return Key{URef: &uref}, nil

	default:
		return Key{}, fmt.Errorf("key %q has an unknown prefix", s)
	}
}

// FormattedString returns the prefixed string form of the key.
func (k Key) FormattedString() string {
	switch {
	case k.Account != nil:
		return k.Account.FormattedString()
	case k.Hash != nil:
		return keyHashPrefix + k.Hash.String()
	case k.URef != nil:
		return k.URef.FormattedString()
	default:
		return ""
	}
}

func (k Key) String() string {
	return k.FormattedString()
}

// WriteTo appends the variant tag followed by the variant bytes.
func (k Key) WriteTo(e *Encoder) {
	switch {
	case k.Account != nil:
		e.Byte(keyAccountTag)
		k.Account.WriteTo(e)
	case k.Hash != nil:
		e.Byte(keyHashTag)
		k.Hash.WriteTo(e)
	case k.URef != nil:
		e.Byte(keyURefTag)
		k.URef.WriteTo(e)
	}
}

func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.FormattedString())
}

func (k *Key) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
