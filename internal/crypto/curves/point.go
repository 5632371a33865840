package curves

import (
	"errors"

	"github.com/smallyu/go-gostcrypto/internal/crypto/fixed"
)

// ErrNotOnCurve is returned when plain coordinates do not satisfy the curve equation.
var ErrNotOnCurve = errors.New("curves: point not on curve")

// Point is a curve point in homogeneous projective coordinates (X:Y:Z) with all
// three coordinates in Montgomery form. It represents the affine point
// (X/Z, Y/Z); Z == 0 is the point at infinity, canonically (0:1:0).
//
// Points are working values: a Point belongs to the call that created it and
// must not be mutated from two goroutines at once.
type Point struct {
	X, Y, Z fixed.Nat
}

// pairKind classifies two operands of an addition.
type pairKind int

const (
	pairGeneral pairKind = iota
	pairLeftInfinity
	pairRightInfinity
	pairDouble
	pairInverse
)

// SetBase sets p to the curve's base point.
func (c *Params) SetBase(p *Point) {
	p.X = c.Gx
	p.Y = c.Gy
	p.Z = c.Field.One
}

// SetInfinity sets p to (0:1:0).
func (c *Params) SetInfinity(p *Point) {
	p.X = fixed.Nat{}
	p.Y = c.Field.One
	p.Z = fixed.Nat{}
}

// SetAffine sets p from plain affine coordinates, rejecting values that are not
// reduced or not on the curve.
func (c *Params) SetAffine(p *Point, x, y *fixed.Nat) error {
	f := c.Field
	if fixed.Cmp(x, &f.P, c.Size) >= 0 || fixed.Cmp(y, &f.P, c.Size) >= 0 {
		return ErrNotOnCurve
	}
	var q Point
	f.ToMont(&q.X, x)
	f.ToMont(&q.Y, y)
	q.Z = f.One
	if !c.IsOnCurve(&q) {
		return ErrNotOnCurve
	}
	*p = q
	return nil
}

// IsInfinity reports whether p is the group identity.
func (c *Params) IsInfinity(p *Point) bool {
	return c.Field.IsZero(&p.Z)
}

// IsOnCurve evaluates Y^2*Z == X^3 + a*X*Z^2 + b*Z^3 without leaving projective
// form. The point at infinity satisfies it.
func (c *Params) IsOnCurve(p *Point) bool {
	f := c.Field
	var lhs, rhs, zz, t fixed.Nat

	f.Sqr(&lhs, &p.Y)
	f.Mul(&lhs, &lhs, &p.Z) // Y^2 Z

	f.Sqr(&zz, &p.Z)
	f.Sqr(&rhs, &p.X)
	f.Mul(&rhs, &rhs, &p.X) // X^3

	f.Mul(&t, &c.A, &p.X)
	f.Mul(&t, &t, &zz) // a X Z^2
	f.Add(&rhs, &rhs, &t)

	f.Mul(&t, &c.B, &zz)
	f.Mul(&t, &t, &p.Z) // b Z^3
	f.Add(&rhs, &rhs, &t)

	return f.Equal(&lhs, &rhs)
}

// Double sets p = 2p in place (dbl-2007-bl).
func (c *Params) Double(p *Point) {
	f := c.Field
	if f.IsZero(&p.Z) {
		return
	}
	if f.IsZero(&p.Y) {
		c.SetInfinity(p)
		return
	}

	var xx, w, s, ss, sss, r, rr, b, h, t fixed.Nat

	f.Sqr(&xx, &p.X)
	f.Sqr(&t, &p.Z)
	f.Mul(&w, &c.A, &t)
	f.Add(&w, &w, &xx)
	f.Double(&t, &xx)
	f.Add(&w, &w, &t) // w = a Z^2 + 3 X^2

	f.Mul(&s, &p.Y, &p.Z)
	f.Double(&s, &s) // s = 2 Y Z
	f.Sqr(&ss, &s)
	f.Mul(&sss, &s, &ss)

	f.Mul(&r, &p.Y, &s)
	f.Sqr(&rr, &r)

	f.Add(&b, &p.X, &r)
	f.Sqr(&b, &b)
	f.Sub(&b, &b, &xx)
	f.Sub(&b, &b, &rr) // B = (X + R)^2 - XX - RR

	f.Sqr(&h, &w)
	f.Double(&t, &b)
	f.Sub(&h, &h, &t) // h = w^2 - 2B

	f.Mul(&p.X, &h, &s)

	f.Sub(&t, &b, &h)
	f.Mul(&t, &w, &t)
	f.Double(&rr, &rr)
	f.Sub(&p.Y, &t, &rr)

	p.Z = sss
}

// Add sets p1 = p1 + p2 in place.
//
// The operand pair is classified first (either side infinite, equal points,
// mutually inverse points, general) and each class is handled on its own; the
// general case uses add-1998-cmo-2.
func (c *Params) Add(p1, p2 *Point) {
	f := c.Field
	var x1z2, x2z1, y1z2, y2z1 fixed.Nat

	kind := pairGeneral
	switch {
	case f.IsZero(&p2.Z):
		kind = pairRightInfinity
	case f.IsZero(&p1.Z):
		kind = pairLeftInfinity
	default:
		f.Mul(&x1z2, &p1.X, &p2.Z)
		f.Mul(&x2z1, &p2.X, &p1.Z)
		f.Mul(&y1z2, &p1.Y, &p2.Z)
		f.Mul(&y2z1, &p2.Y, &p1.Z)
		if f.Equal(&x1z2, &x2z1) {
			if f.Equal(&y1z2, &y2z1) {
				kind = pairDouble
			} else {
				kind = pairInverse
			}
		}
	}

	switch kind {
	case pairRightInfinity:
		return
	case pairLeftInfinity:
		*p1 = *p2
		return
	case pairDouble:
		c.Double(p1)
		return
	case pairInverse:
		c.SetInfinity(p1)
		return
	}

	var z1z2, u, uu, v, vv, vvv, r, a, t fixed.Nat

	f.Mul(&z1z2, &p1.Z, &p2.Z)
	f.Sub(&u, &y2z1, &y1z2)
	f.Sqr(&uu, &u)
	f.Sub(&v, &x2z1, &x1z2)
	f.Sqr(&vv, &v)
	f.Mul(&vvv, &v, &vv)
	f.Mul(&r, &vv, &x1z2)

	f.Mul(&a, &uu, &z1z2)
	f.Sub(&a, &a, &vvv)
	f.Double(&t, &r)
	f.Sub(&a, &a, &t) // A = uu Z1Z2 - vvv - 2R

	f.Mul(&p1.X, &v, &a)

	f.Sub(&t, &r, &a)
	f.Mul(&t, &u, &t)
	f.Mul(&y1z2, &vvv, &y1z2)
	f.Sub(&p1.Y, &t, &y1z2)

	f.Mul(&p1.Z, &vvv, &z1z2)
}

// Neg sets p = -p.
func (c *Params) Neg(p *Point) {
	c.Field.Neg(&p.Y, &p.Y)
}

// Equal reports whether p and q are the same group element.
func (c *Params) Equal(p, q *Point) bool {
	f := c.Field
	pInf, qInf := c.IsInfinity(p), c.IsInfinity(q)
	if pInf || qInf {
		return pInf == qInf
	}
	var a, b fixed.Nat
	f.Mul(&a, &p.X, &q.Z)
	f.Mul(&b, &q.X, &p.Z)
	if !f.Equal(&a, &b) {
		return false
	}
	f.Mul(&a, &p.Y, &q.Z)
	f.Mul(&b, &q.Y, &p.Z)
	return f.Equal(&a, &b)
}

// ToAffine scales p in place so that Z is one, or sets it to the canonical
// infinity when Z is zero. The inverse is Z^(p-2), computed in constant time.
func (c *Params) ToAffine(p *Point) {
	f := c.Field
	if f.IsZero(&p.Z) {
		c.SetInfinity(p)
		return
	}
	var zinv fixed.Nat
	f.Inv(&zinv, &p.Z)
	f.Mul(&p.X, &p.X, &zinv)
	f.Mul(&p.Y, &p.Y, &zinv)
	p.Z = f.One
}

// Affine returns the plain affine coordinates of p. ok is false for the point
// at infinity. p itself is not modified.
func (c *Params) Affine(p *Point) (x, y fixed.Nat, ok bool) {
	q := *p
	c.ToAffine(&q)
	if c.IsInfinity(&q) {
		return x, y, false
	}
	c.Field.FromMont(&x, &q.X)
	c.Field.FromMont(&y, &q.Y)
	return x, y, true
}

// Swap exchanges p and q when cond is 1, in constant time.
func (c *Params) Swap(p, q *Point, cond uint64) {
	fixed.Swap(&p.X, &q.X, cond, c.Size)
	fixed.Swap(&p.Y, &q.Y, cond, c.Size)
	fixed.Swap(&p.Z, &q.Z, cond, c.Size)
}
