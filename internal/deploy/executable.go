package deploy

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/internal/casper/cl"
)

// ExecutableDeployItem variant tags (bytesrepr).
const (
	moduleBytesTag                   byte = 0
	storedContractByHashTag          byte = 1
	storedContractByNameTag          byte = 2
	storedVersionedContractByHashTag byte = 3
	storedVersionedContractByNameTag byte = 4
	transferTag                      byte = 5
)

// Standard argument names used by the system contracts.
const (
	argAmount = "amount"
	argSource = "source"
	argTarget = "target"
	argID     = "id"
)

// ModuleBytes is compiled Wasm session or payment code plus its runtime
// arguments. Standard payment uses empty module bytes.
type ModuleBytes struct {
	ModuleBytes HexBytes `json:"module_bytes"`
	Args        *cl.Args `json:"args"`
}

// StoredContractByHash calls a stored contract addressed by hash.
type StoredContractByHash struct {
	Hash       casper.Digest `json:"hash"`
	EntryPoint string        `json:"entry_point"`
	Args       *cl.Args      `json:"args"`
}

// StoredContractByName calls a stored contract addressed by a named key
// in the deploying account's context.
type StoredContractByName struct {
	Name       string   `json:"name"`
	EntryPoint string   `json:"entry_point"`
	Args       *cl.Args `json:"args"`
}

// StoredVersionedContractByHash calls a contract package addressed by
// hash. A nil Version selects the highest enabled version.
type StoredVersionedContractByHash struct {
	Hash       casper.Digest `json:"hash"`
	Version    *uint32       `json:"version"`
	EntryPoint string        `json:"entry_point"`
	Args       *cl.Args      `json:"args"`
}

// StoredVersionedContractByName calls a contract package addressed by a
// named key. A nil Version selects the highest enabled version.
type StoredVersionedContractByName struct {
	Name       string   `json:"name"`
	Version    *uint32  `json:"version"`
	EntryPoint string   `json:"entry_point"`
	Args       *cl.Args `json:"args"`
}

// Transfer is a native transfer with no Wasm involved.
type Transfer struct {
	Args *cl.Args `json:"args"`
}

// ExecutableItem is the payment or session portion of a deploy. Exactly
// one variant field is set; the JSON form is the node's externally tagged
// enum, e.g. {"Transfer": {"args": [...]}}.
type ExecutableItem struct {
	ModuleBytes                   *ModuleBytes                   `json:"ModuleBytes,omitempty"`
	StoredContractByHash          *StoredContractByHash          `json:"StoredContractByHash,omitempty"`
	StoredContractByName          *StoredContractByName          `json:"StoredContractByName,omitempty"`
	StoredVersionedContractByHash *StoredVersionedContractByHash `json:"StoredVersionedContractByHash,omitempty"`
	StoredVersionedContractByName *StoredVersionedContractByName `json:"StoredVersionedContractByName,omitempty"`
	Transfer                      *Transfer                      `json:"Transfer,omitempty"`
}

// NewModuleBytes returns session/payment code from raw Wasm bytes.
func NewModuleBytes(wasm []byte, args *cl.Args) ExecutableItem {
	return ExecutableItem{ModuleBytes: &ModuleBytes{ModuleBytes: wasm, Args: args}}
}

// NewStandardPayment returns the standard-payment item: empty module
// bytes with a single "amount" u512 argument.
func NewStandardPayment(amount cl.Value) (ExecutableItem, error) {
	args, err := cl.NewArgs(cl.NamedArg{Name: argAmount, Value: amount})
	if err != nil {
		return ExecutableItem{}, err
	}
	return NewModuleBytes(nil, args), nil
}

// NewStoredContractByHash returns a call to a stored contract by hash.
func NewStoredContractByHash(hash casper.Digest, entryPoint string, args *cl.Args) ExecutableItem {
	return ExecutableItem{StoredContractByHash: &StoredContractByHash{
		Hash: hash, EntryPoint: entryPoint, Args: args,
	}}
}

// NewStoredContractByName returns a call to a stored contract by name.
func NewStoredContractByName(name, entryPoint string, args *cl.Args) ExecutableItem {
	return ExecutableItem{StoredContractByName: &StoredContractByName{
		Name: name, EntryPoint: entryPoint, Args: args,
	}}
}

// NewStoredVersionedContractByHash returns a call to a contract package
// by hash; version may be nil for the latest.
func NewStoredVersionedContractByHash(hash casper.Digest, version *uint32, entryPoint string, args *cl.Args) ExecutableItem {
	return ExecutableItem{StoredVersionedContractByHash: &StoredVersionedContractByHash{
		Hash: hash, Version: version, EntryPoint: entryPoint, Args: args,
	}}
}

// NewStoredVersionedContractByName returns a call to a contract package
// by name; version may be nil for the latest.
func NewStoredVersionedContractByName(name string, version *uint32, entryPoint string, args *cl.Args) ExecutableItem {
	return ExecutableItem{StoredVersionedContractByName: &StoredVersionedContractByName{
		Name: name, Version: version, EntryPoint: entryPoint, Args: args,
	}}
}

// NewTransfer returns native-transfer session code. A nil source uses the
// account's main purse; a nil transferID sends an empty optional id;
// extra arguments, if any, are preserved ahead of the standard ones.
func NewTransfer(amount cl.Value, source *casper.URef, target casper.PublicKey, transferID *uint64, extra *cl.Args) (ExecutableItem, error) {
	args := extra
	if args == nil {
		args = &cl.Args{}
	}

	if err := args.Insert(argAmount, amount); err != nil {
		return ExecutableItem{}, err
	}
	if source != nil {
		if err := args.Insert(argSource, cl.URefValue(*source)); err != nil {
			return ExecutableItem{}, err
		}
	}
	if err := args.Insert(argTarget, cl.PublicKeyValue(target)); err != nil {
		return ExecutableItem{}, err
	}

	id := cl.None(cl.TypeOf(cl.KindU64))
	if transferID != nil {
		id = cl.Some(cl.U64(*transferID))
	}
	if err := args.Insert(argID, id); err != nil {
		return ExecutableItem{}, err
	}

	return ExecutableItem{Transfer: &Transfer{Args: args}}, nil
}

// WriteTo appends the variant tag followed by the variant fields.
func (item ExecutableItem) WriteTo(e *casper.Encoder) error {
	switch {
	case item.ModuleBytes != nil:
		e.Byte(moduleBytesTag)
		e.VarBytes(item.ModuleBytes.ModuleBytes)
		item.ModuleBytes.Args.WriteTo(e)

	case item.StoredContractByHash != nil:
		e.Byte(storedContractByHashTag)
		item.StoredContractByHash.Hash.WriteTo(e)
		e.String(item.StoredContractByHash.EntryPoint)
		item.StoredContractByHash.Args.WriteTo(e)

	case item.StoredContractByName != nil:
		e.Byte(storedContractByNameTag)
		e.String(item.StoredContractByName.Name)
		e.String(item.StoredContractByName.EntryPoint)
		item.StoredContractByName.Args.WriteTo(e)

	case item.StoredVersionedContractByHash != nil:
		e.Byte(storedVersionedContractByHashTag)
		item.StoredVersionedContractByHash.Hash.WriteTo(e)
		writeOptionalVersion(e, item.StoredVersionedContractByHash.Version)
		e.String(item.StoredVersionedContractByHash.EntryPoint)
		item.StoredVersionedContractByHash.Args.WriteTo(e)

	case item.StoredVersionedContractByName != nil:
		e.Byte(storedVersionedContractByNameTag)
		e.String(item.StoredVersionedContractByName.Name)
		writeOptionalVersion(e, item.StoredVersionedContractByName.Version)
		e.String(item.StoredVersionedContractByName.EntryPoint)
		item.StoredVersionedContractByName.Args.WriteTo(e)

	case item.Transfer != nil:
		e.Byte(transferTag)
		item.Transfer.Args.WriteTo(e)

	default:
		return fmt.Errorf("executable item has no variant set")
	}
	return nil
}

func writeOptionalVersion(e *casper.Encoder, version *uint32) {
	if version == nil {
		e.Byte(0)
		return
	}
	e.Byte(1)
	e.U32(*version)
}

// HexBytes is a byte slice whose JSON form is a hex string, as the node
// renders module bytes.
type HexBytes []byte

func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

func (h *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode module bytes: %w", err)
	}
	*h = raw
	return nil
}
