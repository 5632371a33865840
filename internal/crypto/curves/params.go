package curves

import (
	"fmt"

	"github.com/smallyu/go-gostcrypto/internal/crypto/fixed"
	"github.com/smallyu/go-gostcrypto/internal/crypto/mont"
)

// Definition is the documented text of a short Weierstrass curve
// y^2 = x^3 + a*x + b over GF(p). All numbers are big-endian hex.
type Definition struct {
	Name     string
	OID      string
	Size     int // width in 64-bit words
	P        string
	A        string
	B        string
	Q        string // order of the base point
	Cofactor uint64
	X        string
	Y        string
}

// Params is a curve ready for arithmetic. A, B and the base point are stored in
// Montgomery form relative to Field; Order carries the second constant set used
// for arithmetic modulo the group order.
//
// A Params value is never modified after construction and may be shared freely.
type Params struct {
	Name     string
	OID      string
	Size     int
	Field    *mont.Field // GF(p)
	Order    *mont.Field // Z/qZ
	A, B     fixed.Nat
	Gx, Gy   fixed.Nat
	Cofactor uint64

	def Definition
}

// NewParams builds Params from a definition. It checks only what the arithmetic
// needs (widths, moduli shape, coefficients reduced); mathematical soundness is
// the job of Validate.
func NewParams(def Definition) (*Params, error) {
	size := def.Size
	field, err := mont.NewFieldHex(def.P, size)
	if err != nil {
		return nil, fmt.Errorf("curves: %s: modulus: %w", def.Name, err)
	}
	order, err := mont.NewFieldHex(def.Q, size)
	if err != nil {
		return nil, fmt.Errorf("curves: %s: order: %w", def.Name, err)
	}

	c := &Params{
		Name:     def.Name,
		OID:      def.OID,
		Size:     size,
		Field:    field,
		Order:    order,
		Cofactor: def.Cofactor,
		def:      def,
	}

	for _, v := range []struct {
		name string
		text string
		dst  *fixed.Nat
	}{
		{"a", def.A, &c.A},
		{"b", def.B, &c.B},
		{"x", def.X, &c.Gx},
		{"y", def.Y, &c.Gy},
	} {
		var n fixed.Nat
		if err := n.SetHex(v.text, size); err != nil {
			return nil, fmt.Errorf("curves: %s: %s: %w", def.Name, v.name, err)
		}
		if fixed.Cmp(&n, &field.P, size) >= 0 {
			return nil, fmt.Errorf("curves: %s: %s not reduced modulo p", def.Name, v.name)
		}
		field.ToMont(v.dst, &n)
	}
	return c, nil
}

// Definition returns the text the curve was built from.
func (c *Params) Definition() Definition {
	return c.def
}

// BitSize returns the bit length of the field modulus.
func (c *Params) BitSize() int {
	return c.Field.BitLen()
}

// ByteSize returns the width of an encoded coordinate or scalar.
func (c *Params) ByteSize() int {
	return c.Size * 8
}
