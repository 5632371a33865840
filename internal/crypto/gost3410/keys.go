package gost3410

import (
	"errors"
	"io"

	"github.com/smallyu/go-gostcrypto/internal/crypto/curves"
	"github.com/smallyu/go-gostcrypto/internal/crypto/fixed"
	"github.com/smallyu/go-gostcrypto/internal/crypto/mont"
)

var (
	ErrInvalidKey    = errors.New("gost3410: invalid key")
	ErrDigestTooLong = errors.New("gost3410: digest longer than curve order")
)

// PublicKey is a curve point Q = d*G in plain affine coordinates.
type PublicKey struct {
	Curve *curves.Params
	X, Y  fixed.Nat
}

// PrivateKey holds a secret scalar d in [1, q).
type PrivateKey struct {
	PublicKey
	D fixed.Nat
}

// GenerateKey draws a private scalar from random and derives its public point.
func GenerateKey(random io.Reader, c *curves.Params) (*PrivateKey, error) {
	d, err := randomScalar(random, c.Order)
	if err != nil {
		return nil, err
	}
	return newPrivateKey(c, &d)
}

// NewPrivateKey builds a key from a big-endian scalar. The scalar must lie in
// [1, q).
func NewPrivateKey(c *curves.Params, raw []byte) (*PrivateKey, error) {
	var d fixed.Nat
	if err := d.SetBytes(raw, c.Size); err != nil {
		return nil, ErrInvalidKey
	}
	if !inRange(&d, c.Order) {
		return nil, ErrInvalidKey
	}
	return newPrivateKey(c, &d)
}

func newPrivateKey(c *curves.Params, d *fixed.Nat) (*PrivateKey, error) {
	var q curves.Point
	c.ScalarBaseMult(&q, d)
	x, y, ok := c.Affine(&q)
	if !ok {
		return nil, ErrInvalidKey
	}
	return &PrivateKey{
		PublicKey: PublicKey{Curve: c, X: x, Y: y},
		D:         *d,
	}, nil
}

// Bytes returns the big-endian private scalar.
func (priv *PrivateKey) Bytes() []byte {
	return fixed.Bytes(&priv.D, priv.Curve.Size)
}

// NewPublicKey checks that (x, y) lies on the curve and in the subgroup of
// order q.
func NewPublicKey(c *curves.Params, x, y []byte) (*PublicKey, error) {
	pub := &PublicKey{Curve: c}
	if err := pub.X.SetBytes(x, c.Size); err != nil {
		return nil, ErrInvalidKey
	}
	if err := pub.Y.SetBytes(y, c.Size); err != nil {
		return nil, ErrInvalidKey
	}
	var p curves.Point
	if err := c.SetAffine(&p, &pub.X, &pub.Y); err != nil {
		return nil, ErrInvalidKey
	}
	if !c.CheckOrder(&p) {
		return nil, ErrInvalidKey
	}
	return pub, nil
}

// ParsePublicKey decodes the X || Y encoding produced by Bytes.
func ParsePublicKey(c *curves.Params, b []byte) (*PublicKey, error) {
	n := c.ByteSize()
	if len(b) != 2*n {
		return nil, ErrInvalidKey
	}
	return NewPublicKey(c, b[:n], b[n:])
}

// Bytes returns X || Y, each coordinate big-endian at the curve's width.
func (pub *PublicKey) Bytes() []byte {
	size := pub.Curve.Size
	return append(fixed.Bytes(&pub.X, size), fixed.Bytes(&pub.Y, size)...)
}

// Equal reports whether two public keys name the same point on the same curve.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	size := pub.Curve.Size
	return pub.Curve == other.Curve &&
		fixed.Equal(&pub.X, &other.X, size) &&
		fixed.Equal(&pub.Y, &other.Y, size)
}

func (pub *PublicKey) point() (curves.Point, error) {
	var p curves.Point
	err := pub.Curve.SetAffine(&p, &pub.X, &pub.Y)
	return p, err
}

// inRange reports 0 < v < f.P.
func inRange(v *fixed.Nat, f *mont.Field) bool {
	return !f.IsZero(v) && fixed.Cmp(v, &f.P, f.Size) < 0
}

// randomScalar draws a uniform value in [1, f.P) by rejection sampling on the
// bit length of the modulus.
func randomScalar(random io.Reader, f *mont.Field) (fixed.Nat, error) {
	bitLen := f.BitLen()
	buf := make([]byte, f.Size*8)
	excess := uint(len(buf)*8 - bitLen)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return fixed.Nat{}, err
		}
		for i := 0; i < int(excess/8); i++ {
			buf[i] = 0
		}
		buf[excess/8] &= 0xff >> (excess % 8)

		var k fixed.Nat
		if err := k.SetBytes(buf, f.Size); err != nil {
			return fixed.Nat{}, err
		}
		if inRange(&k, f) {
			return k, nil
		}
	}
}
