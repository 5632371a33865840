package curves

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/smallyu/go-gostcrypto/internal/crypto/fixed"
	"github.com/smallyu/go-gostcrypto/internal/crypto/mont"
)

// Reasons a curve can fail validation.
var (
	ErrZeroDiscriminant     = errors.New("zero discriminant")
	ErrPointNotOnCurve      = errors.New("base point not on curve")
	ErrWrongPointOrder      = errors.New("base point order mismatch")
	ErrWrongOrderParameters = errors.New("order field constants inconsistent")
	ErrEndianOrFormat       = errors.New("constant text does not round-trip")
)

// CurveError reports which check a curve failed. It unwraps to one of the
// Err* reasons above.
type CurveError struct {
	Curve  string
	Reason error
	Detail string
}

func (e *CurveError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("curves: %s rejected: %v: %s", e.Curve, e.Reason, e.Detail)
	}
	return fmt.Sprintf("curves: %s rejected: %v", e.Curve, e.Reason)
}

func (e *CurveError) Unwrap() error {
	return e.Reason
}

func (c *Params) reject(reason error, detail string) error {
	return &CurveError{Curve: c.Name, Reason: reason, Detail: detail}
}

// Validate runs every admission check in order and returns the first failure.
// random feeds the randomized order-field check.
func (c *Params) Validate(random io.Reader) error {
	checks := []func() error{
		c.ValidateDiscriminant,
		c.ValidateModulusFormat,
		c.ValidateBasePoint,
		c.ValidateBaseOrder,
		func() error { return c.ValidateOrderField(random) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDiscriminant checks -16(4a^3 + 27b^2) != 0 mod p.
func (c *Params) ValidateDiscriminant() error {
	f := c.Field
	var d, t, k fixed.Nat

	f.Sqr(&d, &c.A)
	f.Mul(&d, &d, &c.A)
	f.Double(&d, &d)
	f.Double(&d, &d) // 4a^3

	k.SetUint64(27)
	f.ToMont(&k, &k)
	f.Sqr(&t, &c.B)
	f.Mul(&t, &t, &k) // 27b^2

	f.Add(&d, &d, &t)
	for i := 0; i < 4; i++ {
		f.Double(&d, &d)
	}
	f.Neg(&d, &d)

	if f.IsZero(&d) {
		return c.reject(ErrZeroDiscriminant, "")
	}
	return nil
}

// ValidateModulusFormat renders p and q as canonical hex, parses the text back
// and compares both against the documented definition. A mismatch means the
// constant tables and the word order disagree.
func (c *Params) ValidateModulusFormat() error {
	for _, m := range []struct {
		name  string
		text  string
		value *fixed.Nat
	}{
		{"p", c.def.P, &c.Field.P},
		{"q", c.def.Q, &c.Order.P},
	} {
		canonical := fixed.Hex(m.value, c.Size)
		var back fixed.Nat
		if err := back.SetHex(canonical, c.Size); err != nil {
			return c.reject(ErrEndianOrFormat, err.Error())
		}
		if !fixed.Equal(&back, m.value, c.Size) {
			return c.reject(ErrEndianOrFormat, m.name+" does not survive a hex round trip")
		}
		if normalizeHex(canonical) != normalizeHex(m.text) {
			return c.reject(ErrEndianOrFormat, m.name+" differs from its documented value")
		}
	}
	return nil
}

func normalizeHex(s string) string {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return strings.ToUpper(strings.TrimLeft(s, "0"))
}

// ValidateBasePoint checks the base point satisfies the curve equation.
func (c *Params) ValidateBasePoint() error {
	var g Point
	c.SetBase(&g)
	if !c.IsOnCurve(&g) {
		return c.reject(ErrPointNotOnCurve, "")
	}
	return nil
}

// ValidateBaseOrder checks q*G is the point at infinity.
func (c *Params) ValidateBaseOrder() error {
	var g Point
	c.SetBase(&g)
	if !c.CheckOrder(&g) {
		return c.reject(ErrWrongPointOrder, "")
	}
	return nil
}

// ValidateOrderField checks the Montgomery constants of the order field by
// computing t * t^(q-2) for a random t and expecting one.
func (c *Params) ValidateOrderField(random io.Reader) error {
	o := c.Order
	t, err := randomResidue(random, o)
	if err != nil {
		return c.reject(ErrWrongOrderParameters, err.Error())
	}

	var tm, inv, prod fixed.Nat
	o.ToMont(&tm, &t)
	o.Inv(&inv, &tm)
	o.Mul(&prod, &tm, &inv)
	if !o.Equal(&prod, &o.One) {
		return c.reject(ErrWrongOrderParameters, "t * t^-1 != 1")
	}

	var plain, one fixed.Nat
	o.FromMont(&plain, &prod)
	one.SetUint64(1)
	if !o.Equal(&plain, &one) {
		return c.reject(ErrWrongOrderParameters, "Montgomery one does not leave the domain as 1")
	}
	return nil
}

// randomResidue draws a non-zero residue modulo f.P.
func randomResidue(random io.Reader, f *mont.Field) (fixed.Nat, error) {
	buf := make([]byte, f.Size*8)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return fixed.Nat{}, err
		}
		var t fixed.Nat
		if err := t.SetBytes(buf, f.Size); err != nil {
			return fixed.Nat{}, err
		}
		f.Reduce(&t, &t)
		if !f.IsZero(&t) {
			return t, nil
		}
	}
}
