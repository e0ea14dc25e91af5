package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarasev/go-casper-client/internal/deploy"
)

// ── SessionStrParams ─────────────────────────────────────────────────────────

func TestSessionStrParams_TargetSelection(t *testing.T) {
	hash := "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b"

	item, err := SessionStrParams{Hash: hash, EntryPoint: "enter"}.Item()
	require.NoError(t, err)
	assert.NotNil(t, item.StoredContractByHash)

	item, err = SessionStrParams{Name: "counter", EntryPoint: "enter"}.Item()
	require.NoError(t, err)
	assert.NotNil(t, item.StoredContractByName)

	item, err = SessionStrParams{PackageHash: hash, EntryPoint: "enter", Version: "3"}.Item()
	require.NoError(t, err)
	require.NotNil(t, item.StoredVersionedContractByHash)
	require.NotNil(t, item.StoredVersionedContractByHash.Version)
	assert.Equal(t, uint32(3), *item.StoredVersionedContractByHash.Version)

	item, err = SessionStrParams{PackageName: "pkg", EntryPoint: "enter"}.Item()
	require.NoError(t, err)
	require.NotNil(t, item.StoredVersionedContractByName)
	assert.Nil(t, item.StoredVersionedContractByName.Version, "empty version means latest")
}

func TestSessionStrParams_WasmFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.wasm")
	wasm := []byte{0x00, 0x61, 0x73, 0x6d, 1, 0, 0, 0}
	require.NoError(t, os.WriteFile(path, wasm, 0o644))

	item, err := SessionStrParams{Path: path, Args: []string{"amount:u512='10'"}}.Item()
	require.NoError(t, err)
	require.NotNil(t, item.ModuleBytes)
	assert.Equal(t, deploy.HexBytes(wasm), item.ModuleBytes.ModuleBytes)
	assert.Equal(t, []string{"amount"}, item.ModuleBytes.Args.Names())
}

func TestSessionStrParams_TargetErrors(t *testing.T) {
	_, err := SessionStrParams{}.Item()
	assert.ErrorIs(t, err, ErrMissingSessionTarget)

	_, err = SessionStrParams{Name: "a", PackageName: "b", EntryPoint: "enter"}.Item()
	assert.ErrorIs(t, err, ErrConflictingSessionTargets)

	_, err = SessionStrParams{Name: "a"}.Item()
	assert.ErrorIs(t, err, ErrMissingEntryPoint)

	_, err = SessionStrParams{Name: "a", EntryPoint: "enter", Version: "not-a-number"}.Item()
	assert.Error(t, err, "malformed version is rejected even for unversioned targets")
}

func TestSessionStrParams_Transfer(t *testing.T) {
	item, err := SessionStrParams{
		IsTransfer: true,
		Args: []string{
			"amount:u512='100'",
			"target:public_key='01e82a2a9a1f9eed81bd519c0b6aeff79e8f76e61e8c4659125a14602b7d43d442'",
		},
	}.Item()
	require.NoError(t, err)
	assert.NotNil(t, item.Transfer)

	_, err = SessionStrParams{IsTransfer: true}.Item()
	assert.Error(t, err, "transfer session requires args")

	_, err = SessionStrParams{IsTransfer: true, Name: "counter"}.Item()
	assert.ErrorIs(t, err, ErrConflictingSessionTargets)
}

// ── PaymentStrParams ─────────────────────────────────────────────────────────

func TestPaymentStrParams_StandardPayment(t *testing.T) {
	item, err := PaymentStrParams{Amount: "2500000000"}.Item()
	require.NoError(t, err)
	require.NotNil(t, item.ModuleBytes)
	assert.Empty(t, item.ModuleBytes.ModuleBytes)

	amount, ok := item.ModuleBytes.Args.Get("amount")
	require.True(t, ok)
	assert.Equal(t, "2500000000", amount.Parsed)
}

func TestPaymentStrParams_Errors(t *testing.T) {
	_, err := PaymentStrParams{}.Item()
	assert.ErrorIs(t, err, ErrMissingPaymentTarget)

	_, err = PaymentStrParams{Amount: "100", Name: "custom"}.Item()
	assert.ErrorIs(t, err, ErrConflictingPaymentTargets)

	_, err = PaymentStrParams{Hash: "0b", Name: "custom", EntryPoint: "pay"}.Item()
	assert.ErrorIs(t, err, ErrConflictingPaymentTargets)

	_, err = PaymentStrParams{Amount: "many motes"}.Item()
	assert.Error(t, err)
}

func TestPaymentStrParams_StoredContract(t *testing.T) {
	item, err := PaymentStrParams{Name: "custom-payment", EntryPoint: "pay", Args: []string{"fee:u64='5'"}}.Item()
	require.NoError(t, err)
	require.NotNil(t, item.StoredContractByName)
	assert.Equal(t, "pay", item.StoredContractByName.EntryPoint)
}

// ── TransferStrParams ────────────────────────────────────────────────────────

func TestTransferStrParams(t *testing.T) {
	target := "01e82a2a9a1f9eed81bd519c0b6aeff79e8f76e61e8c4659125a14602b7d43d442"

	item, err := TransferStrParams{Amount: "100", TargetAccount: target, TransferID: "34"}.Item()
	require.NoError(t, err)
	require.NotNil(t, item.Transfer)
	assert.Equal(t, []string{"amount", "target", "id"}, item.Transfer.Args.Names())

	item, err = TransferStrParams{
		Amount:        "100",
		TargetAccount: target,
		SourcePurse:   "uref-0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a-007",
	}.Item()
	require.NoError(t, err)
	assert.Equal(t, []string{"amount", "source", "target", "id"}, item.Transfer.Args.Names())

	_, err = TransferStrParams{TargetAccount: target}.Item()
	assert.Error(t, err, "amount is required")

	_, err = TransferStrParams{Amount: "100"}.Item()
	assert.Error(t, err, "target is required")

	_, err = TransferStrParams{Amount: "100", TargetAccount: target, TransferID: "-1"}.Item()
	assert.Error(t, err)
}
