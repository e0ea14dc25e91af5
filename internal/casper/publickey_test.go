// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

package casper

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

const (
	ed25519KeyHex   = "01e82a2a9a1f9eed81bd519c0b6aeff79e8f76e61e8c4659125a14602b7d43d442"
	secp256k1KeyHex = "0203c4c3b0e1a5c250edb9ab64bf0f4c4f2bfa0b6e1c9f25eab09d33cfd4dbd5e1e9"
)

func TestParsePublicKey(t *testing.T) {
	pub, err := ParsePublicKey(ed25519KeyHex)
	require.NoError(t, err)
	assert.Equal(t, Ed25519Tag, pub.Tag)
	assert.Equal(t, ed25519KeyHex, pub.Hex())

	pub, err = ParsePublicKey(secp256k1KeyHex)
	require.NoError(t, err)
	assert.Equal(t, Secp256k1Tag, pub.Tag)
	assert.Equal(t, secp256k1KeyHex, pub.Hex())
}

func TestParsePublicKey_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"zz",
		"00" + strings.Repeat("ab", 32), // неизвестный тег
		"01abcd",                        // ed25519 короче 32 байт
		"02" + strings.Repeat("ab", 32), // secp256k1 короче 33 байт
	}

	for _, in := range invalid {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePublicKey(in)
			assert.Error(t, err)
		})
	}
}

func TestPublicKey_AccountHash(t *testing.T) {
	pub, err := ParsePublicKey(ed25519KeyHex)
	require.NoError(t, err)

	// blake2b256("ed25519" ++ 0x00 ++ raw key)
	raw, _ := hex.DecodeString(ed25519KeyHex)
	preimage := append([]byte("ed25519"), 0)
	preimage = append(preimage, raw[1:]...)
	want := AccountHash(blake2b.Sum256(preimage))

	got := pub.AccountHash()
	assert.Equal(t, want, got)
	assert.True(t, strings.HasPrefix(got.FormattedString(), "account-hash-"))

	parsed, err := ParseAccountHash(got.FormattedString())
	require.NoError(t, err)
	assert.Equal(t, got, parsed)
}

func TestPublicKey_WriteTo(t *testing.T) {
	pub, err := ParsePublicKey(ed25519KeyHex)
	require.NoError(t, err)

	e := NewEncoder()
	pub.WriteTo(e)

	assert.Equal(t, ed25519KeyHex, hex.EncodeToString(e.Bytes()))
}

func TestPublicKey_JSONRoundTrip(t *testing.T) {
	pub, err := ParsePublicKey(ed25519KeyHex)
	require.NoError(t, err)

	data, err := json.Marshal(pub)
	require.NoError(t, err)
	assert.Equal(t, `"`+ed25519KeyHex+`"`, string(data))

	var decoded PublicKey
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, pub.Equal(decoded))
}

func TestSignature(t *testing.T) {
	raw := make([]byte, 64)
	raw[0] = 0xab

	sig, err := NewSignature(Ed25519Tag, raw)
	require.NoError(t, err)
	assert.Equal(t, "01"+hex.EncodeToString(raw), sig.Hex())

	_, err = NewSignature(Ed25519Tag, raw[:63])
	assert.Error(t, err)

	parsed, err := ParseSignature(sig.Hex())
	require.NoError(t, err)
	assert.Equal(t, sig.Hex(), parsed.Hex())
}

func TestDigest(t *testing.T) {
	d := HashBytes([]byte("casper"))
	assert.Len(t, d.String(), 64)

	parsed, err := ParseDigest(d.String())
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	_, err = ParseDigest("abcd")
	assert.Error(t, err)
}

func TestParseURef(t *testing.T) {
	formatted := "uref-" + strings.Repeat("0a", 32) + "-007"

	u, err := ParseURef(formatted)
	require.NoError(t, err)
	assert.Equal(t, AccessReadAddWrite, u.Access)
	assert.Equal(t, formatted, u.FormattedString())

	e := NewEncoder()
	u.WriteTo(e)
	assert.Equal(t, strings.Repeat("0a", 32)+"07", hex.EncodeToString(e.Bytes()))

	for _, in := range []string{"", "uref-abcd-007", "uref-" + strings.Repeat("0a", 32), "uref-" + strings.Repeat("0a", 32) + "-099"} {
		_, err := ParseURef(in)
		assert.Error(t, err, in)
	}
}

func TestParseKey(t *testing.T) {
	hash := strings.Repeat("11", 32)

	k, err := ParseKey("hash-" + hash)
	require.NoError(t, err)
	require.NotNil(t, k.Hash)
	assert.Equal(t, "hash-"+hash, k.FormattedString())

	k, err = ParseKey("account-hash-" + hash)
	require.NoError(t, err)
	assert.NotNil(t, k.Account)

	k, err = ParseKey("uref-" + hash + "-001")
	require.NoError(t, err)
	assert.NotNil(t, k.URef)

	_, err = ParseKey("deploy-" + hash)
	assert.Error(t, err)
}
