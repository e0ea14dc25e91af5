package cl

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarasev/go-casper-client/internal/casper"
)

func TestArgs_WriteTo_GoldenBytes(t *testing.T) {
	amount, err := U512FromDecimal("2500000000")
	require.NoError(t, err)

	args := &Args{}
	require.NoError(t, args.Insert("amount", amount))

	e := casper.NewEncoder()
	args.WriteTo(e)

	// u32 count, имя строки, длина значения, байты значения, тег типа
	want := "01000000" + // одна пара
		"06000000" + hex.EncodeToString([]byte("amount")) +
		"05000000" + "0400f90295" +
		"08" // тег CLType U512
	assert.Equal(t, want, hex.EncodeToString(e.Bytes()))
}

func TestArgs_WriteTo_NilWritesZeroCount(t *testing.T) {
	var args *Args

	e := casper.NewEncoder()
	args.WriteTo(e)

	assert.Equal(t, "00000000", hex.EncodeToString(e.Bytes()))
}

func TestArgs_Insert_RejectsDuplicatesAndEmptyNames(t *testing.T) {
	args := &Args{}

	require.NoError(t, args.Insert("amount", U64(1)))
	assert.Error(t, args.Insert("amount", U64(2)))
	assert.Error(t, args.Insert("", U64(3)))

	got, ok := args.Get("amount")
	require.True(t, ok)
	assert.Equal(t, U64(1), got)
}

func TestArgs_JSONRoundTrip(t *testing.T) {
	amount, err := U512FromDecimal("100")
	require.NoError(t, err)

	args := &Args{}
	require.NoError(t, args.Insert("amount", amount))
	require.NoError(t, args.Insert("id", None(TypeOf(KindU64))))

	data, err := json.Marshal(args)
	require.NoError(t, err)
	// форма узла: массив пар [имя, значение]
	assert.JSONEq(t, `[
		["amount", {"cl_type": "U512", "bytes": "0164", "parsed": "100"}],
		["id", {"cl_type": {"Option": "U64"}, "bytes": "00", "parsed": null}]
	]`, string(data))

	var decoded Args
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, args.Names(), decoded.Names())

	got, ok := decoded.Get("amount")
	require.True(t, ok)
	assert.Equal(t, amount.Bytes, got.Bytes)
	assert.Equal(t, amount.Type, got.Type)
}

func TestValue_OptionEncoding(t *testing.T) {
	some := Some(U64(34))
	assert.Equal(t, "012200000000000000", hex.EncodeToString(some.Bytes))
	assert.Equal(t, OptionOf(TypeOf(KindU64)), some.Type)

	none := None(TypeOf(KindU64))
	assert.Equal(t, "00", hex.EncodeToString(none.Bytes))
}

func TestList_RejectsMixedTypes(t *testing.T) {
	_, err := List(TypeOf(KindU64), U64(1), U32(2))
	assert.Error(t, err)

	value, err := List(TypeOf(KindU64), U64(1), U64(2))
	require.NoError(t, err)
	assert.Equal(t, "02000000"+"0100000000000000"+"0200000000000000", hex.EncodeToString(value.Bytes))
}
