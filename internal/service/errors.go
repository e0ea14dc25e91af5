package service

import "errors"

var (
	ErrMissingSessionTarget      = errors.New("session requires exactly one of --session-path, --session-hash, --session-name, --session-package-hash, --session-package-name or --transfer")
	ErrConflictingSessionTargets = errors.New("conflicting session targets; provide exactly one")
	ErrMissingPaymentTarget      = errors.New("payment requires --payment-amount or exactly one payment target")
	ErrConflictingPaymentTargets = errors.New("conflicting payment targets; provide exactly one")
	ErrMissingEntryPoint         = errors.New("stored contract calls require an entry point")
)
