package fixed

import (
	"math/bits"
)

// MaxWords is the widest integer handled by this package (512 bits).
const MaxWords = 8

// Supported widths, in 64-bit words.
const (
	Size256 = 4
	Size512 = 8
)

// Nat is a fixed-width unsigned integer stored as little-endian 64-bit words.
//
// Every function takes the logical width explicitly; words at index >= size are
// neither read nor written, so a Nat used at Size256 keeps its high half zero.
type Nat [MaxWords]uint64

// Wide holds the double-width product of two Nats.
type Wide [2 * MaxWords]uint64

func checkSize(size int) {
	if size != Size256 && size != Size512 {
		panic(newPrecondition("unsupported width %d words", size))
	}
}

// SetUint64 sets z to the single word v.
func (z *Nat) SetUint64(v uint64) *Nat {
	*z = Nat{}
	z[0] = v
	return z
}

// Add sets z = x + y mod 2^(64*size) and returns the carry out (0 or 1).
// z may alias x or y.
func Add(z, x, y *Nat, size int) uint64 {
	checkSize(size)
	var carry uint64
	for i := 0; i < size; i++ {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}

// Sub sets z = x - y mod 2^(64*size) and returns 1 if x < y.
// z may alias x or y.
func Sub(z, x, y *Nat, size int) uint64 {
	checkSize(size)
	var borrow uint64
	for i := 0; i < size; i++ {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return borrow
}

// Cmp compares x and y and returns -1, 0 or +1.
func Cmp(x, y *Nat, size int) int {
	var d Nat
	if Sub(&d, x, y, size) == 1 {
		return -1
	}
	if IsZero(&d, size) {
		return 0
	}
	return 1
}

// IsZero reports whether the low size words of x are all zero.
// It inspects every word regardless of their values.
func IsZero(x *Nat, size int) bool {
	checkSize(size)
	var acc uint64
	for i := 0; i < size; i++ {
		acc |= x[i]
	}
	return acc == 0
}

// Equal reports whether x == y without branching on the words.
func Equal(x, y *Nat, size int) bool {
	checkSize(size)
	var acc uint64
	for i := 0; i < size; i++ {
		acc |= x[i] ^ y[i]
	}
	return acc == 0
}

// Mul sets z to the full 2*size-word product x*y.
func Mul(z *Wide, x, y *Nat, size int) {
	checkSize(size)
	*z = Wide{}
	for i := 0; i < size; i++ {
		var carry uint64
		for j := 0; j < size; j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			var c uint64
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			z[i+j], c = bits.Add64(z[i+j], lo, 0)
			hi += c
			carry = hi
		}
		z[i+size] = carry
	}
}

// MulWord sets z = x*d mod 2^(64*size) and returns the overflow word.
// z may alias x.
func MulWord(z, x *Nat, size int, d uint64) uint64 {
	checkSize(size)
	var carry uint64
	for i := 0; i < size; i++ {
		hi, lo := bits.Mul64(x[i], d)
		var c uint64
		z[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	return carry
}

// Rem sets r = u mod p.
//
// The divisor must have its top word at or above 2^32, i.e. the top 32 bits of
// the size*64-bit value are not all zero. Under that bound the quotient fits in
// 32 bits and a one-word estimate from the top words is off by at most two, which
// the two trailing conditional subtractions absorb. r may alias u.
func Rem(r, u, p *Nat, size int) {
	checkSize(size)
	top := p[size-1]
	if top>>32 == 0 {
		panic(newPrecondition("divisor top word %#x below 2^32", top))
	}

	var qhat uint64
	if top != ^uint64(0) {
		qhat = u[size-1] / (top + 1)
	}

	var t Nat
	MulWord(&t, p, size, qhat)
	Sub(r, u, &t, size)

	for i := 0; i < 2; i++ {
		var s Nat
		borrow := Sub(&s, r, p, size)
		Select(r, &s, borrow^1, size)
	}
}

// RemWord returns x mod d for a divisor below 2^32.
//
// It folds the words through a table of 2^(64k) mod d, so no intermediate
// product exceeds 64 bits.
func RemWord(x *Nat, size int, d uint64) (uint64, error) {
	if size != Size256 && size != Size512 {
		return 0, newPrecondition("unsupported width %d words", size)
	}
	if d == 0 {
		return 0, newPrecondition("zero divisor")
	}
	if d>>32 != 0 {
		return 0, newPrecondition("divisor %#x wider than 32 bits", d)
	}

	var table [MaxWords]uint64
	table[0] = 1 % d
	base := (-d) % d // 2^64 mod d
	for k := 1; k < size; k++ {
		table[k] = table[k-1] * base % d
	}

	var r uint64
	for k := 0; k < size; k++ {
		r = (r + (x[k]%d)*table[k]) % d
	}
	return r, nil
}

// Select sets z = x when cond is 1 and leaves z unchanged when cond is 0.
// cond must be 0 or 1; the memory access pattern does not depend on it.
func Select(z, x *Nat, cond uint64, size int) {
	checkSize(size)
	mask := -cond
	for i := 0; i < size; i++ {
		z[i] ^= mask & (z[i] ^ x[i])
	}
}

// Swap exchanges x and y when cond is 1, in constant time.
func Swap(x, y *Nat, cond uint64, size int) {
	checkSize(size)
	mask := -cond
	for i := 0; i < size; i++ {
		t := mask & (x[i] ^ y[i])
		x[i] ^= t
		y[i] ^= t
	}
}

// ShiftLeft1 sets z = 2x mod 2^(64*size) and returns the bit shifted out.
func ShiftLeft1(z, x *Nat, size int) uint64 {
	checkSize(size)
	var carry uint64
	for i := 0; i < size; i++ {
		w := x[i]
		z[i] = w<<1 | carry
		carry = w >> 63
	}
	return carry
}

// Bit returns bit i of x.
func Bit(x *Nat, i int) uint64 {
	return (x[i/64] >> (uint(i) % 64)) & 1
}

// BitLen returns the position of the highest set bit plus one.
// It branches on the value; use it only on public data.
func BitLen(x *Nat, size int) int {
	checkSize(size)
	for i := size - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*64 + bits.Len64(x[i])
		}
	}
	return 0
}
