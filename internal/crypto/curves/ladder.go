package curves

import (
	"github.com/smallyu/go-gostcrypto/internal/crypto/fixed"
)

// ScalarMult sets result = k*p with a Montgomery ladder over all 64*kSize bits
// of k, most significant first.
//
// The scalar is secret. Every bit costs one addition and one doubling; the bit
// only decides, through a constant-time swap, which running point receives which
// result. The output stays in projective form. result may alias p.
func (c *Params) ScalarMult(result, p *Point, k *fixed.Nat, kSize int) {
	var q, r Point
	c.SetInfinity(&q)
	r = *p

	for i := 64*kSize - 1; i >= 0; i-- {
		bit := fixed.Bit(k, i)
		c.Swap(&q, &r, bit)
		c.Add(&r, &q)
		c.Double(&q)
		c.Swap(&q, &r, bit)
	}
	*result = q
}

// ScalarBaseMult sets result = k*G for a scalar of the curve's width.
func (c *Params) ScalarBaseMult(result *Point, k *fixed.Nat) {
	var g Point
	c.SetBase(&g)
	c.ScalarMult(result, &g, k, c.Size)
}

// CheckOrder reports whether q*p is the point at infinity, q being the
// curve's base point order.
func (c *Params) CheckOrder(p *Point) bool {
	var r Point
	c.ScalarMult(&r, p, &c.Order.P, c.Size)
	return c.IsInfinity(&r)
}
