package cl

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/vkarasev/go-casper-client/internal/casper"
)

// Simple-argument syntax: NAME:TYPE='VALUE', or NAME:opt_TYPE=null for an
// empty optional. The value must be wrapped in single quotes unless it is
// the null optional. Supported types: bool, i32, i64, u8, u32, u64, u128,
// u256, u512, unit, string, key, account_hash, uref, public_key,
// byte_list, byte_array_<N>, each optionally prefixed with "opt_".
const (
	optionPrefix    = "opt_"
	byteArrayPrefix = "byte_array_"
)

type optionalStatus int

const (
	notOptional optionalStatus = iota
	optionalSome
	optionalNone
)

// ParseArgs parses a list of simple-argument strings into typed Args.
func ParseArgs(args []string) (*Args, error) {
	parsed := &Args{}
	for _, arg := range args {
		name, value, err := ParseNamedArg(arg)
		if err != nil {
			return nil, err
		}
		if err := parsed.Insert(name, value); err != nil {
			return nil, err
		}
	}
	return parsed, nil
}

// ParseNamedArg parses a single NAME:TYPE='VALUE' string into its name
// and typed value.
func ParseNamedArg(arg string) (string, Value, error) {
	name, typeName, rawValue, err := splitArg(arg)
	if err != nil {
		return "", Value{}, err
	}

	simpleType, status, value, err := trimOptional(typeName, rawValue)
	if err != nil {
		return "", Value{}, err
	}

	parsed, err := parseTypedValue(simpleType, status, value)
	if err != nil {
		return "", Value{}, err
	}
	return name, parsed, nil
}

// splitArg splits on the first two occurrences of ':' or '=' so that the
// value part may itself contain either character.
func splitArg(arg string) (name, typeName, value string, err error) {
	const wantForm = `"NAME:TYPE='VALUE'" or "NAME:TYPE=null"`

	i := strings.IndexAny(arg, ":=")
	if i < 0 {
		return "", "", "", fmt.Errorf("arg %q should be formatted as %s", arg, wantForm)
	}
	rest := arg[i+1:]
	j := strings.IndexAny(rest, ":=")
	if j < 0 {
		return "", "", "", fmt.Errorf("arg %q should be formatted as %s", arg, wantForm)
	}
	return arg[:i], rest[:j], rest[j+1:], nil
}

// trimOptional strips any opt_ prefix and the surrounding single quotes,
// enforcing the quoting rule.
func trimOptional(typeName, value string) (string, optionalStatus, string, error) {
	simpleType := strings.ToLower(typeName)
	status := notOptional

	if inner, ok := strings.CutPrefix(simpleType, optionPrefix); ok {
		if strings.EqualFold(value, "null") {
			return inner, optionalNone, "", nil
		}
		simpleType = inner
		status = optionalSome
	}

	if len(value) < 2 || !strings.HasPrefix(value, "'") || !strings.HasSuffix(value, "'") {
		return "", notOptional, "", fmt.Errorf(
			"value in simple arg should be surrounded by single quotes unless it's a null optional value (value passed: %s)", value)
	}
	return simpleType, status, value[1 : len(value)-1], nil
}

// wrapOptional applies the optional status once the plain value is built.
func wrapOptional(status optionalStatus, inner Type, build func() (Value, error)) (Value, error) {
	switch status {
	case optionalNone:
		return None(inner), nil
	case optionalSome:
		v, err := build()
		if err != nil {
			return Value{}, err
		}
		return Some(v), nil
	default:
		return build()
	}
}

func parseTypedValue(simpleType string, status optionalStatus, value string) (Value, error) {
	switch {
	case simpleType == "bool":
		return wrapOptional(status, TypeOf(KindBool), func() (Value, error) {
			switch strings.ToLower(value) {
			case "true", "t":
				return Bool(true), nil
			case "false", "f":
				return Bool(false), nil
			default:
				return Value{}, fmt.Errorf("can't parse %q as a bool (should be 'true' or 'false')", value)
			}
		})

	case simpleType == "i32":
		return wrapOptional(status, TypeOf(KindI32), func() (Value, error) {
			v, err := strconv.ParseInt(value, 10, 32)
			if err != nil {
				return Value{}, fmt.Errorf("can't parse %q as i32", value)
			}
			return I32(int32(v)), nil
		})

	case simpleType == "i64":
		return wrapOptional(status, TypeOf(KindI64), func() (Value, error) {
			v, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return Value{}, fmt.Errorf("can't parse %q as i64", value)
			}
			return I64(v), nil
		})

	case simpleType == "u8":
		return wrapOptional(status, TypeOf(KindU8), func() (Value, error) {
			v, err := strconv.ParseUint(value, 10, 8)
			if err != nil {
				return Value{}, fmt.Errorf("can't parse %q as u8", value)
			}
			return U8(uint8(v)), nil
		})

	case simpleType == "u32":
		return wrapOptional(status, TypeOf(KindU32), func() (Value, error) {
			v, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return Value{}, fmt.Errorf("can't parse %q as u32", value)
			}
			return U32(uint32(v)), nil
		})

	case simpleType == "u64":
		return wrapOptional(status, TypeOf(KindU64), func() (Value, error) {
			v, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return Value{}, fmt.Errorf("can't parse %q as u64", value)
			}
			return U64(v), nil
		})

	case simpleType == "u128" || simpleType == "u256" || simpleType == "u512":
		kind := map[string]TypeKind{"u128": KindU128, "u256": KindU256, "u512": KindU512}[simpleType]
		bits := map[string]int{"u128": 128, "u256": 256, "u512": 512}[simpleType]
		return wrapOptional(status, TypeOf(kind), func() (Value, error) {
			v, ok := new(big.Int).SetString(value, 10)
			if !ok {
				return Value{}, fmt.Errorf("can't parse %q as %s", value, simpleType)
			}
			return bigUint(v, kind, bits)
		})

	case simpleType == "unit":
		return wrapOptional(status, TypeOf(KindUnit), func() (Value, error) {
			if value != "" {
				return Value{}, fmt.Errorf("can't parse %q as unit (should be '')", value)
			}
			return Unit(), nil
		})

	case simpleType == "string":
		return wrapOptional(status, TypeOf(KindString), func() (Value, error) {
			return String(value), nil
		})

	case simpleType == "key":
		return wrapOptional(status, TypeOf(KindKey), func() (Value, error) {
			k, err := casper.ParseKey(value)
			if err != nil {
				return Value{}, fmt.Errorf("can't parse %q as Key: %w", value, err)
			}
			return KeyValue(k), nil
		})

	case simpleType == "account_hash":
		return wrapOptional(status, ByteArrayOf(casper.DigestLength), func() (Value, error) {
			a, err := casper.ParseAccountHash(value)
			if err != nil {
				return Value{}, fmt.Errorf("can't parse %q as AccountHash: %w", value, err)
			}
			return AccountHashValue(a), nil
		})

	case simpleType == "uref":
		return wrapOptional(status, TypeOf(KindURef), func() (Value, error) {
			u, err := casper.ParseURef(value)
			if err != nil {
				return Value{}, fmt.Errorf("can't parse %q as URef: %w", value, err)
			}
			return URefValue(u), nil
		})

	case simpleType == "public_key":
		return wrapOptional(status, TypeOf(KindPublicKey), func() (Value, error) {
			p, err := casper.ParsePublicKey(value)
			if err != nil {
				return Value{}, fmt.Errorf("can't parse %q as PublicKey: %w", value, err)
			}
			return PublicKeyValue(p), nil
		})

	case simpleType == "byte_list":
		return wrapOptional(status, ListOf(TypeOf(KindU8)), func() (Value, error) {
			b, err := hex.DecodeString(value)
			if err != nil {
				return Value{}, fmt.Errorf("can't parse %q as a byte_list: %w", value, err)
			}
			return ByteList(b), nil
		})

	case strings.HasPrefix(simpleType, byteArrayPrefix):
		lenStr := strings.TrimPrefix(simpleType, byteArrayPrefix)
		size, err := strconv.ParseUint(lenStr, 10, 32)
		if err != nil {
			return Value{}, fmt.Errorf("can't parse %q of %q as an integer", lenStr, simpleType)
		}
		return wrapOptional(status, ByteArrayOf(uint32(size)), func() (Value, error) {
			b, err := hex.DecodeString(value)
			if err != nil {
				return Value{}, fmt.Errorf("can't parse %q as a byte_array: %w", value, err)
			}
			if uint64(len(b)) != size {
				return Value{}, fmt.Errorf("provided %d bytes but specified a byte_array of %d bytes", len(b), size)
			}
			return ByteArray(b), nil
		})

	default:
		original := simpleType
		if status != notOptional {
			original = optionPrefix + simpleType
		}
		return Value{}, fmt.Errorf("unsupported arg type %q", original)
	}
}
