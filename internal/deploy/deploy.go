// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

// Package deploy models signed units of work submitted to a Casper node:
// the deploy header, its payment and session code, and the approvals
// collected over the deploy hash.
package deploy

import (
	"errors"
	"fmt"

	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/internal/keys"
)

// Defaults applied when the caller leaves the field unset.
const (
	DefaultTTL      = casper.TimeDiff(30 * 60 * 1000) // 30min
	DefaultGasPrice = uint64(1)
)

// MaxDeploySize is the node's cap on a serialized deploy, in bytes.
const MaxDeploySize = 1024 * 1024

var (
	ErrDeployTooLarge = errors.New("deploy exceeds maximum serialized size")
	ErrNoApprovals    = errors.New("deploy has no approvals")
)

// Header carries the deploy metadata that, hashed, becomes the deploy hash.
type Header struct {
	Account      casper.PublicKey `json:"account"`
	Timestamp    casper.Timestamp `json:"timestamp"`
	TTL          casper.TimeDiff  `json:"ttl"`
	GasPrice     uint64           `json:"gas_price"`
	BodyHash     casper.Digest    `json:"body_hash"`
	Dependencies []casper.Digest  `json:"dependencies"`
	ChainName    string           `json:"chain_name"`
}

// WriteTo appends the header's bytesrepr form.
func (h *Header) WriteTo(e *casper.Encoder) {
	h.Account.WriteTo(e)
	h.Timestamp.WriteTo(e)
	h.TTL.WriteTo(e)
	e.U64(h.GasPrice)
	h.BodyHash.WriteTo(e)
	e.U32(uint32(len(h.Dependencies)))
	for _, dep := range h.Dependencies {
		dep.WriteTo(e)
	}
	e.String(h.ChainName)
}

// Approval is a signature over the deploy hash by one signer.
type Approval struct {
	Signer    casper.PublicKey `json:"signer"`
	Signature casper.Signature `json:"signature"`
}

// Deploy is the unit of work sent to the network. Hash is the blake2b
// digest of the serialized header; BodyHash inside the header covers the
// serialized payment followed by the serialized session.
type Deploy struct {
	Hash      casper.Digest  `json:"hash"`
	Header    Header         `json:"header"`
	Payment   ExecutableItem `json:"payment"`
	Session   ExecutableItem `json:"session"`
	Approvals []Approval     `json:"approvals"`
}

// New assembles a deploy from its parts, computing the body hash and the
// deploy hash. The result carries no approvals; call Sign to add them.
func New(header Header, payment, session ExecutableItem) (*Deploy, error) {
	body := casper.NewEncoder()
	if err := payment.WriteTo(body); err != nil {
		return nil, fmt.Errorf("serialize payment: %w", err)
	}
	if err := session.WriteTo(body); err != nil {
		return nil, fmt.Errorf("serialize session: %w", err)
	}
	header.BodyHash = casper.HashBytes(body.Bytes())

	head := casper.NewEncoder()
	header.WriteTo(head)

	return &Deploy{
		Hash:      casper.HashBytes(head.Bytes()),
		Header:    header,
		Payment:   payment,
		Session:   session,
		Approvals: []Approval{},
	}, nil
}

// Sign appends an approval by key over the deploy hash. A deploy may be
// signed more than once, by different parties.
func (d *Deploy) Sign(key keys.SecretKey) error {
	sig, err := key.Sign(d.Hash[:])
	if err != nil {
		return fmt.Errorf("sign deploy %s: %w", d.Hash, err)
	}
	d.Approvals = append(d.Approvals, Approval{
		Signer:    key.PublicKey(),
		Signature: sig,
	})
	return nil
}

// SerializedLength is the bytesrepr length of the full deploy, the figure
// the node checks against its size cap.
func (d *Deploy) SerializedLength() (int, error) {
	e := casper.NewEncoder()
	d.Header.WriteTo(e)
	d.Hash.WriteTo(e)
	if err := d.Payment.WriteTo(e); err != nil {
		return 0, err
	}
	if err := d.Session.WriteTo(e); err != nil {
		return 0, err
	}
	e.U32(uint32(len(d.Approvals)))
	for _, a := range d.Approvals {
		a.Signer.WriteTo(e)
		a.Signature.WriteTo(e)
	}
	return e.Len(), nil
}

// ValidateForSend checks the constraints the node enforces on receipt:
// at least one approval and the serialized size cap.
func (d *Deploy) ValidateForSend() error {
	if len(d.Approvals) == 0 {
		return ErrNoApprovals
	}
	n, err := d.SerializedLength()
	if err != nil {
		return err
	}
	if n > MaxDeploySize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrDeployTooLarge, n, MaxDeploySize)
	}
	return nil
}
