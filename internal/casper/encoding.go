package casper

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"
)

// Encoder accumulates the node's binary serialization format
// ("bytesrepr"). All multi-byte integers are little-endian; strings and
// variable-length byte slices are prefixed with their u32 length.
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder returns an empty Encoder ready for writing.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns everything written so far.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

func (e *Encoder) Byte(b byte) {
	e.buf.WriteByte(b)
}

func (e *Encoder) Bool(v bool) {
	if v {
		e.buf.WriteByte(1)
		return
	}
	e.buf.WriteByte(0)
}

func (e *Encoder) U8(v uint8) {
	e.buf.WriteByte(v)
}

func (e *Encoder) U32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

func (e *Encoder) U64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

func (e *Encoder) I32(v int32) {
	e.U32(uint32(v))
}

func (e *Encoder) I64(v int64) {
	e.U64(uint64(v))
}

// Raw writes b with no length prefix (fixed-size fields such as digests).
func (e *Encoder) Raw(b []byte) {
	e.buf.Write(b)
}

// VarBytes writes a u32 length prefix followed by b.
func (e *Encoder) VarBytes(b []byte) {
	e.U32(uint32(len(b)))
	e.buf.Write(b)
}

// String writes a u32 length prefix followed by the UTF-8 bytes of s.
func (e *Encoder) String(s string) {
	e.VarBytes([]byte(s))
}

// BigUint writes an unsigned big integer as a one-byte length followed by
// the significant bytes in little-endian order. maxBits caps the permitted
// width (128, 256 or 512). Negative values are rejected.
func (e *Encoder) BigUint(v *big.Int, maxBits int) error {
	if v == nil {
		return fmt.Errorf("nil big integer")
	}
	if v.Sign() < 0 {
		return fmt.Errorf("big integer must be non-negative, got %s", v)
	}
	if v.BitLen() > maxBits {
		return fmt.Errorf("big integer %s exceeds %d bits", v, maxBits)
	}

	be := v.Bytes() // big-endian, no leading zeros
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}

	e.Byte(byte(len(le)))
	e.buf.Write(le)
	return nil
}
