// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

package service

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/internal/casper/cl"
	"github.com/vkarasev/go-casper-client/internal/deploy"
	"github.com/vkarasev/go-casper-client/internal/keys"
)

// DeployStrParams is the CLI boundary form of the deploy header fields.
// All values are strings as read from flags; empty means "use default".
type DeployStrParams struct {
	// SecretKeyPath is the PEM file of the signing key. Empty builds an
	// unsigned deploy.
	SecretKeyPath string
	// ChainName is the network name the deploy targets.
	ChainName string
	// Timestamp is an RFC 3339 timestamp; empty means now.
	Timestamp string
	// TTL is a duration like "30m" or "1h 30m"; empty means 30m.
	TTL string
	// GasPrice is a decimal uint64; empty means 1.
	GasPrice string
	// Dependencies are hex deploy hashes this deploy depends on.
	Dependencies []string
	// SessionAccount is a hex public key to use as the deploying
	// account instead of the signing key's.
	SessionAccount string
}

// apply parses the string fields and feeds them into the builder.
func (p DeployStrParams) apply(b *deploy.Builder) error {
	if p.SecretKeyPath != "" {
		key, err := keys.LoadSecretKeyFile(p.SecretKeyPath)
		if err != nil {
			return err
		}
		b.WithSecretKey(key)
	}

	if p.SessionAccount != "" {
		account, err := casper.ParsePublicKey(p.SessionAccount)
		if err != nil {
			return fmt.Errorf("session account: %w", err)
		}
		b.WithAccount(account)
	}

	if p.Timestamp != "" {
		ts, err := casper.ParseTimestamp(p.Timestamp)
		if err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		b.WithTimestamp(ts)
	}

	if p.TTL != "" {
		ttl, err := casper.ParseTimeDiff(p.TTL)
		if err != nil {
			return fmt.Errorf("ttl: %w", err)
		}
		b.WithTTL(ttl)
	}

	if p.GasPrice != "" {
		price, err := strconv.ParseUint(p.GasPrice, 10, 64)
		if err != nil {
			return fmt.Errorf("gas price %q: %w", p.GasPrice, err)
		}
		b.WithGasPrice(price)
	}

	for _, dep := range p.Dependencies {
		hash, err := casper.ParseDigest(dep)
		if err != nil {
			return fmt.Errorf("dependency %q: %w", dep, err)
		}
		b.WithDependency(hash)
	}

	return nil
}

// SessionStrParams is the CLI boundary form of the session code target.
// Exactly one of Path, Hash, Name, PackageHash, PackageName or IsTransfer
// must be set.
type SessionStrParams struct {
	// Path is a compiled Wasm file used as session code.
	Path string
	// Hash is a stored contract hash.
	Hash string
	// Name is a stored contract named key.
	Name string
	// PackageHash is a stored contract package hash.
	PackageHash string
	// PackageName is a stored contract package named key.
	PackageName string
	// EntryPoint names the contract entry point for stored variants.
	EntryPoint string
	// Version selects a contract package version; empty means latest.
	Version string
	// Args are simple arguments in NAME:TYPE='VALUE' form.
	Args []string
	// IsTransfer selects native transfer session code; its args must
	// then carry amount and target.
	IsTransfer bool
}

// Item resolves the params into an executable deploy item.
func (p SessionStrParams) Item() (deploy.ExecutableItem, error) {
	args, err := cl.ParseArgs(p.Args)
	if err != nil {
		return deploy.ExecutableItem{}, err
	}

	targets := countTargets(p.Path, p.Hash, p.Name, p.PackageHash, p.PackageName)
	if p.IsTransfer {
		targets++
	}
	if targets == 0 {
		return deploy.ExecutableItem{}, ErrMissingSessionTarget
	}
	if targets > 1 {
		return deploy.ExecutableItem{}, ErrConflictingSessionTargets
	}

	if p.IsTransfer {
		if args.Len() == 0 {
			return deploy.ExecutableItem{}, fmt.Errorf("transfer session requires arguments")
		}
		return deploy.ExecutableItem{Transfer: &deploy.Transfer{Args: args}}, nil
	}

	return buildItem(itemStrParams{
		path:        p.Path,
		hash:        p.Hash,
		name:        p.Name,
		packageHash: p.PackageHash,
		packageName: p.PackageName,
		entryPoint:  p.EntryPoint,
		version:     p.Version,
	}, args)
}

// PaymentStrParams is the CLI boundary form of the payment code target.
// A plain Amount selects the standard payment contract; otherwise the
// target fields mirror [SessionStrParams].
type PaymentStrParams struct {
	// Amount is a decimal motes amount for standard payment.
	Amount string
	// Path is a compiled Wasm file used as payment code.
	Path string
	// Hash is a stored contract hash.
	Hash string
	// Name is a stored contract named key.
	Name string
	// PackageHash is a stored contract package hash.
	PackageHash string
	// PackageName is a stored contract package named key.
	PackageName string
	// EntryPoint names the contract entry point for stored variants.
	EntryPoint string
	// Version selects a contract package version; empty means latest.
	Version string
	// Args are simple arguments in NAME:TYPE='VALUE' form.
	Args []string
}

// Item resolves the params into an executable deploy item.
func (p PaymentStrParams) Item() (deploy.ExecutableItem, error) {
	targets := countTargets(p.Path, p.Hash, p.Name, p.PackageHash, p.PackageName)

	if p.Amount != "" {
		if targets > 0 {
			return deploy.ExecutableItem{}, ErrConflictingPaymentTargets
		}
		amount, err := cl.U512FromDecimal(p.Amount)
		if err != nil {
			return deploy.ExecutableItem{}, fmt.Errorf("payment amount: %w", err)
		}
		return deploy.NewStandardPayment(amount)
	}

	if targets == 0 {
		return deploy.ExecutableItem{}, ErrMissingPaymentTarget
	}
	if targets > 1 {
		return deploy.ExecutableItem{}, ErrConflictingPaymentTargets
	}

	args, err := cl.ParseArgs(p.Args)
	if err != nil {
		return deploy.ExecutableItem{}, err
	}

	return buildItem(itemStrParams{
		path:        p.Path,
		hash:        p.Hash,
		name:        p.Name,
		packageHash: p.PackageHash,
		packageName: p.PackageName,
		entryPoint:  p.EntryPoint,
		version:     p.Version,
	}, args)
}

// TransferStrParams is the CLI boundary form of a native transfer.
type TransferStrParams struct {
	// Amount is the decimal motes amount to transfer.
	Amount string
	// TargetAccount is the recipient's hex public key.
	TargetAccount string
	// SourcePurse optionally names the source purse URef; empty uses
	// the account's main purse.
	SourcePurse string
	// TransferID is an optional u64 tag attached to the transfer.
	TransferID string
}

// Item resolves the params into native transfer session code.
func (p TransferStrParams) Item() (deploy.ExecutableItem, error) {
	if p.Amount == "" {
		return deploy.ExecutableItem{}, fmt.Errorf("transfer requires an amount")
	}
	amount, err := cl.U512FromDecimal(p.Amount)
	if err != nil {
		return deploy.ExecutableItem{}, fmt.Errorf("transfer amount: %w", err)
	}

	target, err := casper.ParsePublicKey(p.TargetAccount)
	if err != nil {
		return deploy.ExecutableItem{}, fmt.Errorf("transfer target: %w", err)
	}

	var source *casper.URef
	if p.SourcePurse != "" {
		uref, err := casper.ParseURef(p.SourcePurse)
		if err != nil {
			return deploy.ExecutableItem{}, fmt.Errorf("source purse: %w", err)
		}
		source = &uref
	}

	var transferID *uint64
	if p.TransferID != "" {
		id, err := strconv.ParseUint(p.TransferID, 10, 64)
		if err != nil {
			return deploy.ExecutableItem{}, fmt.Errorf("transfer id %q: %w", p.TransferID, err)
		}
		transferID = &id
	}

	return deploy.NewTransfer(amount, source, target, transferID, nil)
}

type itemStrParams struct {
	path        string
	hash        string
	name        string
	packageHash string
	packageName string
	entryPoint  string
	version     string
}

func buildItem(p itemStrParams, args *cl.Args) (deploy.ExecutableItem, error) {
	if p.path != "" {
		wasm, err := os.ReadFile(p.path)
		if err != nil {
			return deploy.ExecutableItem{}, fmt.Errorf("read wasm file: %w", err)
		}
		return deploy.NewModuleBytes(wasm, args), nil
	}

	if p.entryPoint == "" {
		return deploy.ExecutableItem{}, ErrMissingEntryPoint
	}

	version, err := parseVersion(p.version)
	if err != nil {
		return deploy.ExecutableItem{}, err
	}

	switch {
	case p.hash != "":
		hash, err := casper.ParseDigest(p.hash)
		if err != nil {
			return deploy.ExecutableItem{}, fmt.Errorf("contract hash: %w", err)
		}
		return deploy.NewStoredContractByHash(hash, p.entryPoint, args), nil

	case p.name != "":
		return deploy.NewStoredContractByName(p.name, p.entryPoint, args), nil

	case p.packageHash != "":
		hash, err := casper.ParseDigest(p.packageHash)
		if err != nil {
			return deploy.ExecutableItem{}, fmt.Errorf("package hash: %w", err)
		}
		return deploy.NewStoredVersionedContractByHash(hash, version, p.entryPoint, args), nil

	default:
		return deploy.NewStoredVersionedContractByName(p.packageName, version, p.entryPoint, args), nil
	}
}

func parseVersion(s string) (*uint32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("contract version %q: %w", s, err)
	}
	version := uint32(v)
	return &version, nil
}

func countTargets(fields ...string) int {
	n := 0
	for _, f := range fields {
		if f != "" {
			n++
		}
	}
	return n
}
