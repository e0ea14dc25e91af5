package cl

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/vkarasev/go-casper-client/internal/casper"
)

// Value is a strongly typed runtime value: its CLType, its bytesrepr
// bytes, and a human-readable "parsed" form carried along for JSON
// output. Values are validated at construction; once built, the bytes are
// authoritative.
type Value struct {
	Type   Type
	Bytes  []byte
	Parsed any
}

// Option tag bytes.
const (
	optionNoneTag byte = 0
	optionSomeTag byte = 1
)

func Bool(v bool) Value {
	e := casper.NewEncoder()
	e.Bool(v)
	return Value{Type: TypeOf(KindBool), Bytes: e.Bytes(), Parsed: v}
}

func I32(v int32) Value {
	e := casper.NewEncoder()
	e.I32(v)
	return Value{Type: TypeOf(KindI32), Bytes: e.Bytes(), Parsed: v}
}

func I64(v int64) Value {
	e := casper.NewEncoder()
	e.I64(v)
	return Value{Type: TypeOf(KindI64), Bytes: e.Bytes(), Parsed: v}
}

func U8(v uint8) Value {
	e := casper.NewEncoder()
	e.U8(v)
	return Value{Type: TypeOf(KindU8), Bytes: e.Bytes(), Parsed: v}
}

func U32(v uint32) Value {
	e := casper.NewEncoder()
	e.U32(v)
	return Value{Type: TypeOf(KindU32), Bytes: e.Bytes(), Parsed: v}
}

func U64(v uint64) Value {
	e := casper.NewEncoder()
	e.U64(v)
	return Value{Type: TypeOf(KindU64), Bytes: e.Bytes(), Parsed: v}
}

func bigUint(v *big.Int, kind TypeKind, bits int) (Value, error) {
	e := casper.NewEncoder()
	if err := e.BigUint(v, bits); err != nil {
		return Value{}, fmt.Errorf("encode %s: %w", kindNames[kind], err)
	}
	return Value{Type: TypeOf(kind), Bytes: e.Bytes(), Parsed: v.String()}, nil
}

func U128(v *big.Int) (Value, error) { return bigUint(v, KindU128, 128) }
func U256(v *big.Int) (Value, error) { return bigUint(v, KindU256, 256) }
func U512(v *big.Int) (Value, error) { return bigUint(v, KindU512, 512) }

// U512FromDecimal parses a base-10 string into a U512 value. This is the
// usual entry point for motes amounts arriving as strings.
func U512FromDecimal(s string) (Value, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Value{}, fmt.Errorf("can't parse %q as u512", s)
	}
	return U512(v)
}

func Unit() Value {
	return Value{Type: TypeOf(KindUnit), Bytes: []byte{}, Parsed: nil}
}

func String(s string) Value {
	e := casper.NewEncoder()
	e.String(s)
	return Value{Type: TypeOf(KindString), Bytes: e.Bytes(), Parsed: s}
}

func KeyValue(k casper.Key) Value {
	e := casper.NewEncoder()
	k.WriteTo(e)
	return Value{Type: TypeOf(KindKey), Bytes: e.Bytes(), Parsed: k.FormattedString()}
}

func URefValue(u casper.URef) Value {
	e := casper.NewEncoder()
	u.WriteTo(e)
	return Value{Type: TypeOf(KindURef), Bytes: e.Bytes(), Parsed: u.FormattedString()}
}

func PublicKeyValue(p casper.PublicKey) Value {
	e := casper.NewEncoder()
	p.WriteTo(e)
	return Value{Type: TypeOf(KindPublicKey), Bytes: e.Bytes(), Parsed: p.Hex()}
}

// AccountHashValue encodes an account hash the way the node expects it in
// runtime arguments: a fixed 32-byte array.
func AccountHashValue(a casper.AccountHash) Value {
	return Value{
		Type:   ByteArrayOf(casper.DigestLength),
		Bytes:  append([]byte(nil), a[:]...),
		Parsed: a.FormattedString(),
	}
}

// ByteArray encodes a fixed-size byte array; the type records the length.
func ByteArray(b []byte) Value {
	return Value{
		Type:   ByteArrayOf(uint32(len(b))),
		Bytes:  append([]byte(nil), b...),
		Parsed: hex.EncodeToString(b),
	}
}

// ByteList encodes a variable-length byte slice as List(U8).
func ByteList(b []byte) Value {
	e := casper.NewEncoder()
	e.VarBytes(b)
	return Value{
		Type:   ListOf(TypeOf(KindU8)),
		Bytes:  e.Bytes(),
		Parsed: hex.EncodeToString(b),
	}
}

// Some wraps inner in an Option carrying a value.
func Some(inner Value) Value {
	bytes := make([]byte, 0, 1+len(inner.Bytes))
	bytes = append(bytes, optionSomeTag)
	bytes = append(bytes, inner.Bytes...)
	return Value{Type: OptionOf(inner.Type), Bytes: bytes, Parsed: inner.Parsed}
}

// None is the empty Option of the given inner type.
func None(inner Type) Value {
	return Value{Type: OptionOf(inner), Bytes: []byte{optionNoneTag}, Parsed: nil}
}

// List builds a List value. All items must share exactly the type inner;
// an empty list is permitted.
func List(inner Type, items ...Value) (Value, error) {
	e := casper.NewEncoder()
	e.U32(uint32(len(items)))
	parsed := make([]any, 0, len(items))
	for i, item := range items {
		if !item.Type.Equal(inner) {
			return Value{}, fmt.Errorf("list item %d has type %s, want %s", i, item.Type, inner)
		}
		e.Raw(item.Bytes)
		parsed = append(parsed, item.Parsed)
	}
	return Value{Type: ListOf(inner), Bytes: e.Bytes(), Parsed: parsed}, nil
}

// WriteTo appends the value as it appears inside named arguments: the
// u32-length-prefixed value bytes followed by the CLType.
func (v Value) WriteTo(e *casper.Encoder) {
	e.VarBytes(v.Bytes)
	v.Type.WriteTo(e)
}

type valueJSON struct {
	CLType Type            `json:"cl_type"`
	Bytes  string          `json:"bytes"`
	Parsed json.RawMessage `json:"parsed,omitempty"`
}

func (v Value) MarshalJSON() ([]byte, error) {
	parsed, err := json.Marshal(v.Parsed)
	if err != nil {
		return nil, fmt.Errorf("marshal parsed form: %w", err)
	}
	return json.Marshal(valueJSON{
		CLType: v.Type,
		Bytes:  hex.EncodeToString(v.Bytes),
		Parsed: parsed,
	})
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw valueJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode cl value: %w", err)
	}
	bytes, err := hex.DecodeString(raw.Bytes)
	if err != nil {
		return fmt.Errorf("decode cl value bytes: %w", err)
	}

	var parsed any
	if len(raw.Parsed) > 0 {
		if err := json.Unmarshal(raw.Parsed, &parsed); err != nil {
			return fmt.Errorf("decode cl value parsed form: %w", err)
		}
	}

	v.Type = raw.CLType
	v.Bytes = bytes
	v.Parsed = parsed
	return nil
}
