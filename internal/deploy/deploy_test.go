// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

package deploy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/internal/keys"
)

func testHeader(t *testing.T) Header {
	t.Helper()
	account, err := casper.ParsePublicKey("01e82a2a9a1f9eed81bd519c0b6aeff79e8f76e61e8c4659125a14602b7d43d442")
	require.NoError(t, err)
	ts, err := casper.ParseTimestamp("2020-11-17T00:39:24.072Z")
	require.NoError(t, err)

	return Header{
		Account:   account,
		Timestamp: ts,
		TTL:       DefaultTTL,
		GasPrice:  DefaultGasPrice,
		ChainName: "casper-test",
	}
}

func testDeploy(t *testing.T) *Deploy {
	t.Helper()
	payment, err := NewStandardPayment(mustU512(t, "2500000000"))
	require.NoError(t, err)
	session := NewStoredContractByName("counter", "increment", nil)

	d, err := New(testHeader(t), payment, session)
	require.NoError(t, err)
	return d
}

func TestNew_Deterministic(t *testing.T) {
	a := testDeploy(t)
	b := testDeploy(t)

	assert.Equal(t, a.Hash, b.Hash)
	assert.Equal(t, a.Header.BodyHash, b.Header.BodyHash)
	assert.NotEqual(t, casper.Digest{}, a.Hash)
	assert.Empty(t, a.Approvals)
	assert.NotNil(t, a.Approvals, "approvals must serialize as [], not null")
}

func TestNew_BodyHashCoversPaymentThenSession(t *testing.T) {
	d := testDeploy(t)

	body := casper.NewEncoder()
	require.NoError(t, d.Payment.WriteTo(body))
	require.NoError(t, d.Session.WriteTo(body))
	assert.Equal(t, casper.HashBytes(body.Bytes()), d.Header.BodyHash)

	head := casper.NewEncoder()
	d.Header.WriteTo(head)
	assert.Equal(t, casper.HashBytes(head.Bytes()), d.Hash)
}

func TestDeploy_SignAndVerify(t *testing.T) {
	key, err := keys.GenerateEd25519()
	require.NoError(t, err)

	d := testDeploy(t)
	require.NoError(t, d.Sign(key))
	require.Len(t, d.Approvals, 1)

	approval := d.Approvals[0]
	assert.True(t, approval.Signer.Equal(key.PublicKey()))
	assert.NoError(t, keys.Verify(approval.Signer, d.Hash[:], approval.Signature))

	// повторная подпись другим ключом добавляет второй approval
	second, err := keys.GenerateSecp256k1()
	require.NoError(t, err)
	require.NoError(t, d.Sign(second))
	require.Len(t, d.Approvals, 2)
	assert.NoError(t, keys.Verify(d.Approvals[1].Signer, d.Hash[:], d.Approvals[1].Signature))
}

func TestDeploy_ValidateForSend(t *testing.T) {
	d := testDeploy(t)
	assert.ErrorIs(t, d.ValidateForSend(), ErrNoApprovals)

	key, err := keys.GenerateEd25519()
	require.NoError(t, err)
	require.NoError(t, d.Sign(key))
	assert.NoError(t, d.ValidateForSend())
}

func TestDeploy_ValidateForSend_SizeCap(t *testing.T) {
	key, err := keys.GenerateEd25519()
	require.NoError(t, err)

	payment, err := NewStandardPayment(mustU512(t, "1"))
	require.NoError(t, err)
	session := NewModuleBytes(make([]byte, MaxDeploySize), nil)

	d, err := New(testHeader(t), payment, session)
	require.NoError(t, err)
	require.NoError(t, d.Sign(key))

	assert.ErrorIs(t, d.ValidateForSend(), ErrDeployTooLarge)
}

func TestDeploy_JSONRoundTrip(t *testing.T) {
	key, err := keys.GenerateEd25519()
	require.NoError(t, err)

	d := testDeploy(t)
	require.NoError(t, d.Sign(key))

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var decoded Deploy
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, d.Hash, decoded.Hash)
	assert.Equal(t, d.Header.ChainName, decoded.Header.ChainName)
	assert.Equal(t, d.Header.Timestamp, decoded.Header.Timestamp)
	require.Len(t, decoded.Approvals, 1)
	assert.True(t, decoded.Approvals[0].Signer.Equal(key.PublicKey()))

	// сериализация заголовка не меняется после раунд-трипа
	assert.Equal(t, d.Header.BodyHash, decoded.Header.BodyHash)
}
