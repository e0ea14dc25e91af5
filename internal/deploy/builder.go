package deploy

import (
	"errors"
	"fmt"

	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/internal/casper/cl"
	"github.com/vkarasev/go-casper-client/internal/keys"
)

var (
	ErrMissingChainName = errors.New("deploy requires a chain name")
	ErrMissingSession   = errors.New("deploy requires session code")
	ErrMissingPayment   = errors.New("deploy requires payment code")
	ErrMissingAccount   = errors.New("deploy requires an account or a secret key to derive it from")
)

// Builder assembles a deploy field by field. Account may come from an
// explicit public key or be derived from the signing key; timestamp, TTL
// and gas price fall back to defaults when unset.
type Builder struct {
	chainName    string
	account      *casper.PublicKey
	timestamp    *casper.Timestamp
	ttl          casper.TimeDiff
	gasPrice     uint64
	dependencies []casper.Digest
	payment      *ExecutableItem
	paymentErr   error
	session      *ExecutableItem
	secretKey    keys.SecretKey
}

// NewBuilder starts a deploy for the named chain with the given session.
func NewBuilder(chainName string, session ExecutableItem) *Builder {
	return &Builder{chainName: chainName, session: &session}
}

// WithPayment sets the payment code.
func (b *Builder) WithPayment(payment ExecutableItem) *Builder {
	b.payment = &payment
	return b
}

// WithStandardPayment sets standard payment for the given decimal motes
// amount. A malformed amount is reported from Build.
func (b *Builder) WithStandardPayment(amount string) *Builder {
	value, err := cl.U512FromDecimal(amount)
	if err != nil {
		b.paymentErr = fmt.Errorf("payment amount: %w", err)
		return b
	}
	item, err := NewStandardPayment(value)
	if err != nil {
		b.paymentErr = err
		return b
	}
	b.payment = &item
	return b
}

// WithAccount sets the account explicitly, overriding key derivation.
func (b *Builder) WithAccount(account casper.PublicKey) *Builder {
	b.account = &account
	return b
}

// WithSecretKey sets the key used to sign the built deploy. When no
// account is set explicitly, the key's public key becomes the account.
func (b *Builder) WithSecretKey(key keys.SecretKey) *Builder {
	b.secretKey = key
	return b
}

// WithTimestamp overrides the creation timestamp.
func (b *Builder) WithTimestamp(ts casper.Timestamp) *Builder {
	b.timestamp = &ts
	return b
}

// WithTTL overrides the time-to-live.
func (b *Builder) WithTTL(ttl casper.TimeDiff) *Builder {
	b.ttl = ttl
	return b
}

// WithGasPrice overrides the gas price tolerance.
func (b *Builder) WithGasPrice(price uint64) *Builder {
	b.gasPrice = price
	return b
}

// WithDependency adds a deploy hash this deploy depends on. Duplicates
// are dropped.
func (b *Builder) WithDependency(hash casper.Digest) *Builder {
	for _, dep := range b.dependencies {
		if dep == hash {
			return b
		}
	}
	b.dependencies = append(b.dependencies, hash)
	return b
}

// Build assembles, hashes and, when a secret key is present, signs the
// deploy. Building without a key yields an unsigned deploy for later
// signing.
func (b *Builder) Build() (*Deploy, error) {
	if b.paymentErr != nil {
		return nil, b.paymentErr
	}
	if b.chainName == "" {
		return nil, ErrMissingChainName
	}
	if b.session == nil {
		return nil, ErrMissingSession
	}
	if b.payment == nil {
		return nil, ErrMissingPayment
	}

	account := b.account
	if account == nil {
		if b.secretKey == nil {
			return nil, ErrMissingAccount
		}
		pub := b.secretKey.PublicKey()
		account = &pub
	}

	timestamp := casper.Now()
	if b.timestamp != nil {
		timestamp = *b.timestamp
	}
	ttl := b.ttl
	if ttl == 0 {
		ttl = DefaultTTL
	}
	gasPrice := b.gasPrice
	if gasPrice == 0 {
		gasPrice = DefaultGasPrice
	}
	deps := b.dependencies
	if deps == nil {
		deps = []casper.Digest{}
	}

	header := Header{
		Account:      *account,
		Timestamp:    timestamp,
		TTL:          ttl,
		GasPrice:     gasPrice,
		Dependencies: deps,
		ChainName:    b.chainName,
	}

	d, err := New(header, *b.payment, *b.session)
	if err != nil {
		return nil, err
	}
	if b.secretKey != nil {
		if err := d.Sign(b.secretKey); err != nil {
			return nil, err
		}
	}
	return d, nil
}
