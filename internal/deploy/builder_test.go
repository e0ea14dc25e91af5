package deploy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/internal/keys"
)

func testSession(t *testing.T) ExecutableItem {
	t.Helper()
	return NewStoredContractByName("counter", "increment", nil)
}

func TestBuilder_Build(t *testing.T) {
	key, err := keys.GenerateEd25519()
	require.NoError(t, err)
	ts, err := casper.ParseTimestamp("2020-11-17T00:39:24.072Z")
	require.NoError(t, err)

	d, err := NewBuilder("casper-test", testSession(t)).
		WithStandardPayment("2500000000").
		WithSecretKey(key).
		WithTimestamp(ts).
		Build()

	require.NoError(t, err)
	assert.Equal(t, "casper-test", d.Header.ChainName)
	assert.True(t, d.Header.Account.Equal(key.PublicKey()))
	assert.Equal(t, DefaultTTL, d.Header.TTL)
	assert.Equal(t, DefaultGasPrice, d.Header.GasPrice)
	require.Len(t, d.Approvals, 1)
	assert.NoError(t, d.ValidateForSend())
}

func TestBuilder_UnsignedWithExplicitAccount(t *testing.T) {
	account, err := casper.ParsePublicKey("01e82a2a9a1f9eed81bd519c0b6aeff79e8f76e61e8c4659125a14602b7d43d442")
	require.NoError(t, err)

	d, err := NewBuilder("casper-test", testSession(t)).
		WithStandardPayment("100").
		WithAccount(account).
		Build()

	require.NoError(t, err)
	assert.True(t, d.Header.Account.Equal(account))
	assert.Empty(t, d.Approvals)
}

func TestBuilder_MissingFields(t *testing.T) {
	key, err := keys.GenerateEd25519()
	require.NoError(t, err)

	_, err = NewBuilder("", testSession(t)).
		WithStandardPayment("100").
		WithSecretKey(key).
		Build()
	assert.ErrorIs(t, err, ErrMissingChainName)

	_, err = NewBuilder("casper-test", testSession(t)).
		WithSecretKey(key).
		Build()
	assert.ErrorIs(t, err, ErrMissingPayment)

	_, err = NewBuilder("casper-test", testSession(t)).
		WithStandardPayment("100").
		Build()
	assert.ErrorIs(t, err, ErrMissingAccount)
}

func TestBuilder_BadPaymentAmountSurfacesAtBuild(t *testing.T) {
	key, err := keys.GenerateEd25519()
	require.NoError(t, err)

	_, err = NewBuilder("casper-test", testSession(t)).
		WithStandardPayment("ten motes").
		WithSecretKey(key).
		Build()
	assert.Error(t, err)
}

func TestBuilder_DependencyDeduplication(t *testing.T) {
	key, err := keys.GenerateEd25519()
	require.NoError(t, err)
	dep := casper.HashBytes([]byte("dep"))

	d, err := NewBuilder("casper-test", testSession(t)).
		WithStandardPayment("100").
		WithSecretKey(key).
		WithDependency(dep).
		WithDependency(dep).
		Build()

	require.NoError(t, err)
	assert.Equal(t, []casper.Digest{dep}, d.Header.Dependencies)
}
