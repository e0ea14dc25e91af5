package command

import (
	"github.com/spf13/pflag"

	"github.com/vkarasev/go-casper-client/internal/service"
)

// deployFlagSet carries the flags that describe the deploy header and the
// signing key. Registered by every command that constructs a deploy.
type deployFlagSet struct {
	secretKey      string
	chainName      string
	timestamp      string
	ttl            string
	gasPrice       string
	dependencies   []string
	sessionAccount string
}

func (f *deployFlagSet) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.secretKey, "secret-key", "k", "", "path to the PEM-encoded secret key used to sign the deploy")
	flags.StringVar(&f.chainName, "chain-name", "", "name of the chain the deploy is targeted at")
	flags.StringVar(&f.timestamp, "timestamp", "", "RFC 3339 timestamp of the deploy; defaults to now")
	flags.StringVar(&f.ttl, "ttl", "", "time the deploy stays valid for after the timestamp, e.g. '30m'")
	flags.StringVar(&f.gasPrice, "gas-price", "", "conversion rate between the cost of Wasm opcodes and motes")
	flags.StringArrayVar(&f.dependencies, "dependency", nil, "hex-encoded hash of a deploy this one depends on; may be repeated")
	flags.StringVar(&f.sessionAccount, "session-account", "", "hex-encoded public key of the account the deploy runs under; defaults to the signing key")
}

func (f *deployFlagSet) params() service.DeployStrParams {
	return service.DeployStrParams{
		SecretKeyPath:  f.secretKey,
		ChainName:      f.chainName,
		Timestamp:      f.timestamp,
		TTL:            f.ttl,
		GasPrice:       f.gasPrice,
		Dependencies:   f.dependencies,
		SessionAccount: f.sessionAccount,
	}
}

// sessionFlagSet selects the session's executable item: exactly one of the
// target flags must be given.
type sessionFlagSet struct {
	path        string
	hash        string
	name        string
	packageHash string
	packageName string
	entryPoint  string
	version     string
	args        []string
	isTransfer  bool
}

func (f *sessionFlagSet) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.path, "session-path", "", "path to the compiled Wasm session code")
	flags.StringVar(&f.hash, "session-hash", "", "hex-encoded hash of the stored contract to call")
	flags.StringVar(&f.name, "session-name", "", "name of the stored contract, found under the account's named keys")
	flags.StringVar(&f.packageHash, "session-package-hash", "", "hex-encoded hash of the stored contract package to call")
	flags.StringVar(&f.packageName, "session-package-name", "", "name of the stored contract package, found under the account's named keys")
	flags.StringVar(&f.entryPoint, "session-entry-point", "", "name of the entry point to call; required with a stored contract target")
	flags.StringVar(&f.version, "session-version", "", "version of the contract package to call; latest when unset")
	flags.StringArrayVar(&f.args, "session-arg", nil, "session argument as 'NAME:TYPE=VALUE'; may be repeated")
	flags.BoolVar(&f.isTransfer, "is-session-transfer", false, "treat the session args as a native transfer")
}

func (f *sessionFlagSet) params() service.SessionStrParams {
	return service.SessionStrParams{
		Path:        f.path,
		Hash:        f.hash,
		Name:        f.name,
		PackageHash: f.packageHash,
		PackageName: f.packageName,
		EntryPoint:  f.entryPoint,
		Version:     f.version,
		Args:        f.args,
		IsTransfer:  f.isTransfer,
	}
}

// paymentFlagSet selects the payment item. --payment-amount alone means
// standard payment; the remaining flags mirror the session target flags.
type paymentFlagSet struct {
	amount      string
	path        string
	hash        string
	name        string
	packageHash string
	packageName string
	entryPoint  string
	version     string
	args        []string
}

func (f *paymentFlagSet) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.amount, "payment-amount", "p", "", "amount in motes for the standard payment; incompatible with the other payment flags")
	flags.StringVar(&f.path, "payment-path", "", "path to the compiled Wasm payment code")
	flags.StringVar(&f.hash, "payment-hash", "", "hex-encoded hash of the stored payment contract")
	flags.StringVar(&f.name, "payment-name", "", "name of the stored payment contract, found under the account's named keys")
	flags.StringVar(&f.packageHash, "payment-package-hash", "", "hex-encoded hash of the stored payment contract package")
	flags.StringVar(&f.packageName, "payment-package-name", "", "name of the stored payment contract package, found under the account's named keys")
	flags.StringVar(&f.entryPoint, "payment-entry-point", "", "name of the payment entry point; required with a stored contract target")
	flags.StringVar(&f.version, "payment-version", "", "version of the payment contract package to call; latest when unset")
	flags.StringArrayVar(&f.args, "payment-arg", nil, "payment argument as 'NAME:TYPE=VALUE'; may be repeated")
}

func (f *paymentFlagSet) params() service.PaymentStrParams {
	return service.PaymentStrParams{
		Amount:      f.amount,
		Path:        f.path,
		Hash:        f.hash,
		Name:        f.name,
		PackageHash: f.packageHash,
		PackageName: f.packageName,
		EntryPoint:  f.entryPoint,
		Version:     f.version,
		Args:        f.args,
	}
}
