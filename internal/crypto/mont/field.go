// Package mont implements arithmetic modulo an odd prime in Montgomery
// representation, on top of the fixed-width integers of package fixed.
//
// A value x is held as x*R mod P with R = 2^(64*Size). Every method assumes its
// operands are already reduced below P; values of outside origin must pass through
// Reduce first.
package mont

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/smallyu/go-gostcrypto/internal/crypto/fixed"
)

// ErrModulus is returned for a modulus the field arithmetic cannot serve.
var ErrModulus = errors.New("mont: unsupported modulus")

// Field is the Montgomery domain of one modulus. It is immutable after NewField
// and safe for concurrent use.
type Field struct {
	P       fixed.Nat
	R2      fixed.Nat // R^2 mod P
	N0      uint64    // -P^-1 mod 2^64
	One     fixed.Nat // R mod P, the Montgomery image of 1
	PMinus2 fixed.Nat
	Size    int
}

// NewField derives the Montgomery constants for p.
//
// p must be odd, larger than 2 and have its top word at or above 2^32 so that
// fixed.Rem can reduce against it.
func NewField(p fixed.Nat, size int) (*Field, error) {
	if size != fixed.Size256 && size != fixed.Size512 {
		return nil, fmt.Errorf("%w: width %d words", ErrModulus, size)
	}
	if p[0]&1 == 0 {
		return nil, fmt.Errorf("%w: even modulus", ErrModulus)
	}
	if p[size-1]>>32 == 0 {
		return nil, fmt.Errorf("%w: top word %#x below 2^32", ErrModulus, p[size-1])
	}

	f := &Field{P: p, Size: size}
	f.N0 = negInverse64(p[0])

	// R mod P = (2^(64*size) - P) mod P.
	var zero, r fixed.Nat
	fixed.Sub(&r, &zero, &p, size)
	fixed.Rem(&r, &r, &p, size)
	f.One = r

	// Doubling R mod P another 64*size times gives R^2 mod P.
	f.R2 = r
	for i := 0; i < 64*size; i++ {
		f.Add(&f.R2, &f.R2, &f.R2)
	}

	var two fixed.Nat
	two.SetUint64(2)
	fixed.Sub(&f.PMinus2, &p, &two, size)
	return f, nil
}

// NewFieldHex is NewField for a modulus given as hex text.
func NewFieldHex(p string, size int) (*Field, error) {
	var n fixed.Nat
	if err := n.SetHex(p, size); err != nil {
		return nil, err
	}
	return NewField(n, size)
}

// negInverse64 returns -x^-1 mod 2^64 for odd x by Newton iteration; each step
// doubles the number of correct low bits, starting from 3.
func negInverse64(x uint64) uint64 {
	inv := x
	for i := 0; i < 5; i++ {
		inv *= 2 - x*inv
	}
	return -inv
}

// ToMont sets z = x*R mod P.
func (f *Field) ToMont(z, x *fixed.Nat) {
	f.Mul(z, x, &f.R2)
}

// FromMont sets z = x*R^-1 mod P, leaving Montgomery form.
func (f *Field) FromMont(z, x *fixed.Nat) {
	var one fixed.Nat
	one.SetUint64(1)
	f.Mul(z, x, &one)
}

// Add sets z = x + y mod P.
//
// The sum is formed on size+1 words and P is subtracted when the extra carry
// word covers the subtraction's borrow. The choice is a masked select.
func (f *Field) Add(z, x, y *fixed.Nat) {
	carry := fixed.Add(z, x, y, f.Size)
	f.reduceOnce(z, carry)
}

// Double sets z = 2x mod P using a one-bit shift. It always agrees with
// Add(z, x, x).
func (f *Field) Double(z, x *fixed.Nat) {
	carry := fixed.ShiftLeft1(z, x, f.Size)
	f.reduceOnce(z, carry)
}

// reduceOnce maps (carry:z) in [0, 2P) into [0, P).
func (f *Field) reduceOnce(z *fixed.Nat, carry uint64) {
	var t fixed.Nat
	borrow := fixed.Sub(&t, z, &f.P, f.Size)
	// Keep t unless the subtraction borrowed past the carry word.
	fixed.Select(z, &t, carry|(borrow^1), f.Size)
}

// Sub sets z = x - y mod P.
func (f *Field) Sub(z, x, y *fixed.Nat) {
	borrow := fixed.Sub(z, x, y, f.Size)
	var t fixed.Nat
	fixed.Add(&t, z, &f.P, f.Size)
	fixed.Select(z, &t, borrow, f.Size)
}

// Neg sets z = -x mod P.
func (f *Field) Neg(z, x *fixed.Nat) {
	var zero fixed.Nat
	f.Sub(z, &zero, x)
}

// Mul sets z = x*y*R^-1 mod P.
//
// The double-width product is folded word by word: m = t[i]*N0 makes t[i] vanish
// when m*P is added at offset i. After Size rounds the upper half plus the final
// carry is below 2P and one conditional subtraction finishes.
func (f *Field) Mul(z, x, y *fixed.Nat) {
	n := f.Size
	var t fixed.Wide
	fixed.Mul(&t, x, y, n)

	var top uint64
	for i := 0; i < n; i++ {
		m := t[i] * f.N0
		var carry uint64
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(m, f.P[j])
			var c uint64
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			t[i+j], c = bits.Add64(t[i+j], lo, 0)
			carry = hi + c
		}
		var c uint64
		t[i+n], c = bits.Add64(t[i+n], carry, 0)
		for k := i + n + 1; k < 2*n; k++ {
			t[k], c = bits.Add64(t[k], 0, c)
		}
		top += c
	}

	var r fixed.Nat
	copy(r[:n], t[n:2*n])
	f.reduceOnce(&r, top)
	*z = r
}

// Sqr sets z = x*x*R^-1 mod P.
func (f *Field) Sqr(z, x *fixed.Nat) {
	f.Mul(z, x, x)
}

// Exp sets z = x^k mod P, both x and z in Montgomery form.
//
// The exponent is treated as secret: all 64*Size bits are scanned from the top,
// every step squares and multiplies, and the product is kept through a masked
// select. The iteration count never depends on k.
func (f *Field) Exp(z, x, k *fixed.Nat) {
	base := *x
	acc := f.One
	for i := 64*f.Size - 1; i >= 0; i-- {
		f.Sqr(&acc, &acc)
		var t fixed.Nat
		f.Mul(&t, &acc, &base)
		fixed.Select(&acc, &t, fixed.Bit(k, i), f.Size)
	}
	*z = acc
}

// Inv sets z = x^-1 mod P by Fermat's little theorem (x^(P-2)). The inverse of
// zero comes out as zero.
func (f *Field) Inv(z, x *fixed.Nat) {
	f.Exp(z, x, &f.PMinus2)
}

// Reduce sets z = x mod P for an arbitrary plain value x.
func (f *Field) Reduce(z, x *fixed.Nat) {
	fixed.Rem(z, x, &f.P, f.Size)
}

// MulPlain sets z = x*y mod P for plain (non-Montgomery) residues.
func (f *Field) MulPlain(z, x, y *fixed.Nat) {
	var t fixed.Nat
	f.Mul(&t, x, y)
	f.Mul(z, &t, &f.R2)
}

// IsZero reports whether x is the zero residue.
func (f *Field) IsZero(x *fixed.Nat) bool {
	return fixed.IsZero(x, f.Size)
}

// Equal reports whether x and y are the same residue.
func (f *Field) Equal(x, y *fixed.Nat) bool {
	return fixed.Equal(x, y, f.Size)
}

// BitLen returns the bit length of P.
func (f *Field) BitLen() int {
	return fixed.BitLen(&f.P, f.Size)
}
