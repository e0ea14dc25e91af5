// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

// Package cl implements the node's CLValue type system: a tagged value
// carrying its CLType and its binary ("bytesrepr") encoding, validated at
// construction. The untyped name:type='value' string convention is
// accepted as CLI input (see ParseNamedArg) but is converted to typed
// values before anything downstream sees it.
package cl

import (
	"encoding/json"
	"fmt"

	"github.com/vkarasev/go-casper-client/internal/casper"
)

// TypeKind is the bytesrepr tag of a CLType.
type TypeKind byte

const (
	KindBool      TypeKind = 0
	KindI32       TypeKind = 1
	KindI64       TypeKind = 2
	KindU8        TypeKind = 3
	KindU32       TypeKind = 4
	KindU64       TypeKind = 5
	KindU128      TypeKind = 6
	KindU256      TypeKind = 7
	KindU512      TypeKind = 8
	KindUnit      TypeKind = 9
	KindString    TypeKind = 10
	KindKey       TypeKind = 11
	KindURef      TypeKind = 12
	KindOption    TypeKind = 13
	KindList      TypeKind = 14
	KindByteArray TypeKind = 15
	KindPublicKey TypeKind = 22
)

var kindNames = map[TypeKind]string{
	KindBool:      "Bool",
	KindI32:       "I32",
	KindI64:       "I64",
	KindU8:        "U8",
	KindU32:       "U32",
	KindU64:       "U64",
	KindU128:      "U128",
	KindU256:      "U256",
	KindU512:      "U512",
	KindUnit:      "Unit",
	KindString:    "String",
	KindKey:       "Key",
	KindURef:      "URef",
	KindPublicKey: "PublicKey",
}

// Type describes the CLType of a value. Inner is set for Option and List,
// Size for ByteArray.
type Type struct {
	Kind  TypeKind
	Inner *Type
	Size  uint32
}

// Simple type constructors.
func TypeOf(kind TypeKind) Type    { return Type{Kind: kind} }
func OptionOf(inner Type) Type     { return Type{Kind: KindOption, Inner: &inner} }
func ListOf(inner Type) Type       { return Type{Kind: KindList, Inner: &inner} }
func ByteArrayOf(size uint32) Type { return Type{Kind: KindByteArray, Size: size} }

// Equal reports whether two types are structurally identical.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind || t.Size != other.Size {
		return false
	}
	if (t.Inner == nil) != (other.Inner == nil) {
		return false
	}
	if t.Inner != nil {
		return t.Inner.Equal(*other.Inner)
	}
	return true
}

func (t Type) String() string {
	switch t.Kind {
	case KindOption:
		return fmt.Sprintf("Option(%s)", t.Inner)
	case KindList:
		return fmt.Sprintf("List(%s)", t.Inner)
	case KindByteArray:
		return fmt.Sprintf("ByteArray(%d)", t.Size)
	default:
		return kindNames[t.Kind]
	}
}

// WriteTo appends the bytesrepr encoding of the type itself (used inside
// named-argument serialization).
func (t Type) WriteTo(e *casper.Encoder) {
	e.Byte(byte(t.Kind))
	switch t.Kind {
	case KindOption, KindList:
		t.Inner.WriteTo(e)
	case KindByteArray:
		e.U32(t.Size)
	}
}

// MarshalJSON renders simple kinds as bare strings ("U512") and
// parameterized kinds in their object forms: {"Option": inner},
// {"List": inner}, {"ByteArray": n}.
func (t Type) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case KindOption:
		return json.Marshal(map[string]Type{"Option": *t.Inner})
	case KindList:
		return json.Marshal(map[string]Type{"List": *t.Inner})
	case KindByteArray:
		return json.Marshal(map[string]uint32{"ByteArray": t.Size})
	default:
		name, ok := kindNames[t.Kind]
		if !ok {
			return nil, fmt.Errorf("unknown cl type kind %d", t.Kind)
		}
		return json.Marshal(name)
	}
}

func (t *Type) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		for kind, n := range kindNames {
			if n == name {
				*t = Type{Kind: kind}
				return nil
			}
		}
		return fmt.Errorf("unknown cl type %q", name)
	}

	var wrapper struct {
		Option    *Type   `json:"Option"`
		List      *Type   `json:"List"`
		ByteArray *uint32 `json:"ByteArray"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf("decode cl type: %w", err)
	}

	switch {
	case wrapper.Option != nil:
		*t = OptionOf(*wrapper.Option)
	case wrapper.List != nil:
		*t = ListOf(*wrapper.List)
	case wrapper.ByteArray != nil:
		*t = ByteArrayOf(*wrapper.ByteArray)
	default:
		return fmt.Errorf("unsupported cl type %s", string(data))
	}
	return nil
}
