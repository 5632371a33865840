package fixed

import (
	"encoding/binary"
	"math/big"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// SetHex parses a big-endian hexadecimal string (optionally prefixed with 0x)
// into z. Leading zeros are allowed; the value must fit in size words.
func (z *Nat) SetHex(s string, size int) error {
	if size != Size256 && size != Size512 {
		return newPrecondition("unsupported width %d words", size)
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.TrimLeft(s, "0")
	if len(s) > size*16 {
		return newPrecondition("hex value has %d digits, width holds %d", len(s), size*16)
	}

	var v Nat
	for i := 0; i < len(s); i++ {
		d, ok := hexValue(s[len(s)-1-i])
		if !ok {
			return newPrecondition("invalid hex digit %q", s[len(s)-1-i])
		}
		v[i/16] |= d << (4 * uint(i%16))
	}
	*z = v
	return nil
}

// MustHex is SetHex for static tables; it panics on malformed input.
func MustHex(s string, size int) Nat {
	var z Nat
	if err := z.SetHex(s, size); err != nil {
		panic(err)
	}
	return z
}

func hexValue(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

// Hex returns the canonical text of x: upper-case big-endian hex,
// exactly size*16 digits.
func Hex(x *Nat, size int) string {
	checkSize(size)
	buf := make([]byte, size*16)
	for i := 0; i < size*16; i++ {
		w := x[i/16] >> (4 * uint(i%16))
		buf[len(buf)-1-i] = hexDigits[w&0xf]
	}
	return string(buf)
}

// SetBytes sets z from big-endian bytes. Input longer than size*8 bytes is
// rejected unless the excess leading bytes are zero.
func (z *Nat) SetBytes(b []byte, size int) error {
	if size != Size256 && size != Size512 {
		return newPrecondition("unsupported width %d words", size)
	}
	for len(b) > size*8 {
		if b[0] != 0 {
			return newPrecondition("%d-byte value exceeds %d-bit width", len(b), size*64)
		}
		b = b[1:]
	}

	var buf [MaxWords * 8]byte
	copy(buf[size*8-len(b):size*8], b)
	var v Nat
	for i := 0; i < size; i++ {
		off := (size - 1 - i) * 8
		v[i] = binary.BigEndian.Uint64(buf[off : off+8])
	}
	*z = v
	return nil
}

// Bytes returns x as size*8 big-endian bytes.
func Bytes(x *Nat, size int) []byte {
	checkSize(size)
	out := make([]byte, size*8)
	for i := 0; i < size; i++ {
		off := (size - 1 - i) * 8
		binary.BigEndian.PutUint64(out[off:off+8], x[i])
	}
	return out
}

// SetBig sets z from a non-negative big.Int that fits in size words.
func (z *Nat) SetBig(v *big.Int, size int) error {
	if v.Sign() < 0 {
		return newPrecondition("negative value")
	}
	return z.SetBytes(v.Bytes(), size)
}

// Big returns x as a big.Int.
func Big(x *Nat, size int) *big.Int {
	return new(big.Int).SetBytes(Bytes(x, size))
}
