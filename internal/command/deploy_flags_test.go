package command

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSessionFlagSet_Register verifies that every session flag is
// registered, including the native-transfer switch, and that parsed
// values reach the service params.
func TestSessionFlagSet_Register(t *testing.T) {
	var f sessionFlagSet
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.register(flags)

	require.NotNil(t, flags.Lookup("is-session-transfer"))

	err := flags.Parse([]string{
		"--is-session-transfer",
		"--session-arg", "amount:u512='100'",
		"--session-arg", "target:public_key='01e82a2a9a1f9eed81bd519c0b6aeff79e8f76e61e8c4659125a14602b7d43d442'",
	})
	require.NoError(t, err)

	params := f.params()
	assert.True(t, params.IsTransfer)
	assert.Len(t, params.Args, 2)
}

func TestDeployFlagSet_Params(t *testing.T) {
	var f deployFlagSet
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.register(flags)

	err := flags.Parse([]string{
		"-k", "/keys/secret_key.pem",
		"--chain-name", "casper-test",
		"--ttl", "1h",
		"--dependency", "01da3c604f71e0e7df83ff1ab4ef15bb04de64ca02e3d2b78de6950e8b5ee187",
	})
	require.NoError(t, err)

	params := f.params()
	assert.Equal(t, "/keys/secret_key.pem", params.SecretKeyPath)
	assert.Equal(t, "casper-test", params.ChainName)
	assert.Equal(t, "1h", params.TTL)
	assert.Len(t, params.Dependencies, 1)
}

func TestPaymentFlagSet_Params(t *testing.T) {
	var f paymentFlagSet
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.register(flags)

	require.NoError(t, flags.Parse([]string{"-p", "2500000000"}))
	assert.Equal(t, "2500000000", f.params().Amount)
}
