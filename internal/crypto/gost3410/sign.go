// Package gost3410 implements GOST R 34.10-2012 digital signatures over the
// curves of package curves. Digests are computed by the caller; the digest
// bytes are read as a big-endian integer.
package gost3410

import (
	"errors"
	"io"

	"github.com/smallyu/go-gostcrypto/internal/crypto/curves"
	"github.com/smallyu/go-gostcrypto/internal/crypto/fixed"
)

var ErrInvalidSignature = errors.New("gost3410: invalid signature")

// Signature is the pair (r, s), both in [1, q).
type Signature struct {
	R, S fixed.Nat
	size int
}

// Sign produces a signature of digest with a fresh nonce from random.
func Sign(random io.Reader, priv *PrivateKey, digest []byte) (*Signature, error) {
	c := priv.Curve
	e, err := digestScalar(c, digest)
	if err != nil {
		return nil, err
	}
	for {
		k, err := randomScalar(random, c.Order)
		if err != nil {
			return nil, err
		}
		if sig, ok := sign(priv, &e, &k); ok {
			return sig, nil
		}
	}
}

// SignWithNonce signs with a caller-chosen nonce k in [1, q). It exists for
// known-answer tests; reusing a nonce leaks the private key.
func SignWithNonce(priv *PrivateKey, digest, nonce []byte) (*Signature, error) {
	c := priv.Curve
	e, err := digestScalar(c, digest)
	if err != nil {
		return nil, err
	}
	var k fixed.Nat
	if err := k.SetBytes(nonce, c.Size); err != nil || !inRange(&k, c.Order) {
		return nil, errors.New("gost3410: nonce out of range")
	}
	sig, ok := sign(priv, &e, &k)
	if !ok {
		return nil, errors.New("gost3410: nonce yields a zero signature component")
	}
	return sig, nil
}

func sign(priv *PrivateKey, e, k *fixed.Nat) (*Signature, bool) {
	c := priv.Curve
	o := c.Order

	// 1. C = k * G
	var C curves.Point
	c.ScalarBaseMult(&C, k)
	x, _, ok := c.Affine(&C)
	if !ok {
		return nil, false
	}

	// 2. r = x_C mod q
	sig := &Signature{size: c.Size}
	o.Reduce(&sig.R, &x)
	if o.IsZero(&sig.R) {
		return nil, false
	}

	// 3. s = r*d + k*e mod q
	var rd, ke fixed.Nat
	o.MulPlain(&rd, &sig.R, &priv.D)
	o.MulPlain(&ke, k, e)
	o.Add(&sig.S, &rd, &ke)
	if o.IsZero(&sig.S) {
		return nil, false
	}
	return sig, true
}

// Verify checks sig over digest against pub.
func Verify(pub *PublicKey, digest []byte, sig *Signature) bool {
	if pub == nil || sig == nil || pub.Curve == nil {
		return false
	}
	c := pub.Curve
	o := c.Order

	if sig.size != c.Size || !inRange(&sig.R, o) || !inRange(&sig.S, o) {
		return false
	}
	e, err := digestScalar(c, digest)
	if err != nil {
		return false
	}
	Q, err := pub.point()
	if err != nil {
		return false
	}

	// 1. v = e^-1 mod q, in Montgomery form
	var v, t fixed.Nat
	o.ToMont(&t, &e)
	o.Inv(&v, &t)

	// 2. z1 = s*v, z2 = -r*v
	var z1, z2 fixed.Nat
	o.ToMont(&t, &sig.S)
	o.Mul(&z1, &t, &v)
	o.FromMont(&z1, &z1)
	o.ToMont(&t, &sig.R)
	o.Mul(&z2, &t, &v)
	o.FromMont(&z2, &z2)
	o.Neg(&z2, &z2)

	// 3. C = z1*G + z2*Q
	var C, zQ curves.Point
	c.ScalarBaseMult(&C, &z1)
	c.ScalarMult(&zQ, &Q, &z2, c.Size)
	c.Add(&C, &zQ)

	x, _, ok := c.Affine(&C)
	if !ok {
		return false
	}
	var r fixed.Nat
	o.Reduce(&r, &x)
	return fixed.Equal(&r, &sig.R, c.Size)
}

// digestScalar maps a digest to e = digest mod q, replacing zero by one.
func digestScalar(c *curves.Params, digest []byte) (fixed.Nat, error) {
	var e fixed.Nat
	if len(digest) > c.ByteSize() {
		return e, ErrDigestTooLong
	}
	if err := e.SetBytes(digest, c.Size); err != nil {
		return e, ErrDigestTooLong
	}
	c.Order.Reduce(&e, &e)
	if c.Order.IsZero(&e) {
		e.SetUint64(1)
	}
	return e, nil
}

// Bytes returns s || r, each big-endian at the curve's width.
func (sig *Signature) Bytes() []byte {
	return append(fixed.Bytes(&sig.S, sig.size), fixed.Bytes(&sig.R, sig.size)...)
}

// ParseSignature decodes the s || r encoding. Range checks happen in Verify.
func ParseSignature(c *curves.Params, b []byte) (*Signature, error) {
	n := c.ByteSize()
	if len(b) != 2*n {
		return nil, ErrInvalidSignature
	}
	sig := &Signature{size: c.Size}
	if err := sig.S.SetBytes(b[:n], c.Size); err != nil {
		return nil, ErrInvalidSignature
	}
	if err := sig.R.SetBytes(b[n:], c.Size); err != nil {
		return nil, ErrInvalidSignature
	}
	return sig, nil
}
