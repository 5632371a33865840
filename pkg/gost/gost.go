// Package gost is the public face of the library: curve lookup gated by the
// startup self-test, key generation, signing and verification.
package gost

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/smallyu/go-gostcrypto/internal/crypto/curves"
	"github.com/smallyu/go-gostcrypto/internal/crypto/gost3410"
)

// Common errors returned by the library
var (
	ErrUnknownCurve     = errors.New("gost: unknown curve")
	ErrCurveRejected    = errors.New("gost: curve rejected by self-test")
	ErrInvalidSignature = gost3410.ErrInvalidSignature
	ErrInvalidKey       = gost3410.ErrInvalidKey
)

// Curve is an admitted curve parameter set.
type Curve struct {
	params *curves.Params
}

// Name returns the canonical curve name.
func (c *Curve) Name() string { return c.params.Name }

// OID returns the dotted object identifier, empty for curves without one.
func (c *Curve) OID() string { return c.params.OID }

// BitSize returns the bit length of the field modulus.
func (c *Curve) BitSize() int { return c.params.BitSize() }

// ByteSize returns the width of one encoded coordinate or scalar.
func (c *Curve) ByteSize() int { return c.params.ByteSize() }

// Cofactor returns the curve cofactor.
func (c *Curve) Cofactor() uint64 { return c.params.Cofactor }

// Elliptic returns a crypto/elliptic style big.Int view of the curve.
func (c *Curve) Elliptic() curves.Curve { return curves.NewCurve(c.params) }

// CurveByName looks up an admitted curve by name or alias.
func CurveByName(name string) (*Curve, error) {
	p, err := curves.ByName(name)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownCurve, "name %q", name)
	}
	return admit(p)
}

// CurveByOID looks up an admitted curve by object identifier.
func CurveByOID(oid string) (*Curve, error) {
	p, err := curves.ByOID(oid)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownCurve, "oid %s", oid)
	}
	return admit(p)
}

func admit(p *curves.Params) (*Curve, error) {
	ensureSelfTest()
	if err, ok := rejected[p.Name]; ok {
		return nil, err
	}
	return &Curve{params: admitted[p.Name]}, nil
}

// Curves returns every admitted curve, sorted by name.
func Curves() []*Curve {
	ensureSelfTest()
	var out []*Curve
	for _, name := range curves.Names() {
		if p, ok := admitted[name]; ok {
			out = append(out, &Curve{params: p})
		}
	}
	return out
}

// PrivateKey is a signing key on an admitted curve.
type PrivateKey struct {
	key *gost3410.PrivateKey
}

// PublicKey is a verification key on an admitted curve.
type PublicKey struct {
	key *gost3410.PublicKey
}

// GenerateKey creates a key pair on c using random.
func GenerateKey(random io.Reader, c *Curve) (*PrivateKey, error) {
	k, err := gost3410.GenerateKey(random, c.params)
	if err != nil {
		return nil, errors.Wrap(err, "gost: generate key")
	}
	return &PrivateKey{key: k}, nil
}

// NewPrivateKey loads a big-endian private scalar.
func NewPrivateKey(c *Curve, raw []byte) (*PrivateKey, error) {
	k, err := gost3410.NewPrivateKey(c.params, raw)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{key: k}, nil
}

// ParsePublicKey loads an X || Y encoded public key.
func ParsePublicKey(c *Curve, raw []byte) (*PublicKey, error) {
	k, err := gost3410.ParsePublicKey(c.params, raw)
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: k}, nil
}

// Bytes returns the big-endian private scalar.
func (k *PrivateKey) Bytes() []byte { return k.key.Bytes() }

// Public returns the matching public key.
func (k *PrivateKey) Public() *PublicKey {
	pub := k.key.PublicKey
	return &PublicKey{key: &pub}
}

// Sign signs a caller-computed digest and returns the s || r encoding.
func (k *PrivateKey) Sign(random io.Reader, digest []byte) ([]byte, error) {
	sig, err := gost3410.Sign(random, k.key, digest)
	if err != nil {
		return nil, errors.Wrap(err, "gost: sign")
	}
	return sig.Bytes(), nil
}

// Bytes returns X || Y.
func (k *PublicKey) Bytes() []byte { return k.key.Bytes() }

// Verify checks an s || r encoded signature over digest.
func (k *PublicKey) Verify(digest, sig []byte) error {
	s, err := gost3410.ParseSignature(k.key.Curve, sig)
	if err != nil {
		return err
	}
	if !gost3410.Verify(k.key, digest, s) {
		return ErrInvalidSignature
	}
	return nil
}

// VerifyRequest is one entry of VerifyAll.
type VerifyRequest struct {
	Key       *PublicKey
	Digest    []byte
	Signature []byte
}

// VerifyAll checks many signatures in parallel and returns the first failure.
func VerifyAll(ctx context.Context, reqs []VerifyRequest) error {
	items := make([]gost3410.BatchItem, len(reqs))
	for i, r := range reqs {
		s, err := gost3410.ParseSignature(r.Key.key.Curve, r.Signature)
		if err != nil {
			return &gost3410.BatchError{Index: i}
		}
		items[i] = gost3410.BatchItem{Key: r.Key.key, Digest: r.Digest, Signature: s}
	}
	return gost3410.VerifyBatch(ctx, items)
}
