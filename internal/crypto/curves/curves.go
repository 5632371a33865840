package curves

import (
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-gostcrypto/internal/crypto/fixed"
)

// Curve defines the big.Int view of a curve used by callers that speak
// crypto/elliptic style coordinates. The point at infinity is (0, 0).
type Curve interface {
	// Params returns the curve parameters (P, N, B, base point).
	// For curves with a != -3 the methods of the returned value are not meaningful;
	// only its fields are.
	Params() *elliptic.CurveParams

	// NewScalar generates a random scalar in Z_q
	NewScalar() (*big.Int, error)

	// ScalarBaseMult computes k * G (base point multiplication)
	ScalarBaseMult(k *big.Int) (*big.Int, *big.Int)

	// ScalarMult computes k * P
	ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int)

	// Add combines two points
	Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int)
}

// Weierstrass adapts registry Params to the Curve interface.
type Weierstrass struct {
	c      *Params
	params *elliptic.CurveParams
}

// NewCurve returns the big.Int view of c.
func NewCurve(c *Params) *Weierstrass {
	f := c.Field
	var b, gx, gy fixed.Nat
	f.FromMont(&b, &c.B)
	f.FromMont(&gx, &c.Gx)
	f.FromMont(&gy, &c.Gy)
	return &Weierstrass{
		c: c,
		params: &elliptic.CurveParams{
			P:       fixed.Big(&f.P, c.Size),
			N:       fixed.Big(&c.Order.P, c.Size),
			B:       fixed.Big(&b, c.Size),
			Gx:      fixed.Big(&gx, c.Size),
			Gy:      fixed.Big(&gy, c.Size),
			BitSize: c.BitSize(),
			Name:    c.Name,
		},
	}
}

func (w *Weierstrass) Params() *elliptic.CurveParams {
	return w.params
}

func (w *Weierstrass) NewScalar() (*big.Int, error) {
	return rand.Int(rand.Reader, w.params.N)
}

func (w *Weierstrass) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	var r Point
	kn := w.scalar(k)
	w.c.ScalarBaseMult(&r, &kn)
	return w.toBig(&r)
}

func (w *Weierstrass) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	p := w.fromBig(Px, Py)
	kn := w.scalar(k)
	w.c.ScalarMult(&p, &p, &kn, w.c.Size)
	return w.toBig(&p)
}

func (w *Weierstrass) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p1 := w.fromBig(x1, y1)
	p2 := w.fromBig(x2, y2)
	w.c.Add(&p1, &p2)
	return w.toBig(&p1)
}

// scalar reduces k modulo the group order.
func (w *Weierstrass) scalar(k *big.Int) fixed.Nat {
	var n fixed.Nat
	if err := n.SetBig(new(big.Int).Mod(k, w.params.N), w.c.Size); err != nil {
		panic(err)
	}
	return n
}

func (w *Weierstrass) fromBig(x, y *big.Int) Point {
	var p Point
	if x.Sign() == 0 && y.Sign() == 0 {
		w.c.SetInfinity(&p)
		return p
	}
	var xn, yn fixed.Nat
	if xn.SetBig(x, w.c.Size) != nil || yn.SetBig(y, w.c.Size) != nil || w.c.SetAffine(&p, &xn, &yn) != nil {
		panic(fmt.Sprintf("curves: %s: invalid point", w.c.Name))
	}
	return p
}

func (w *Weierstrass) toBig(p *Point) (*big.Int, *big.Int) {
	x, y, ok := w.c.Affine(p)
	if !ok {
		return new(big.Int), new(big.Int)
	}
	return fixed.Big(&x, w.c.Size), fixed.Big(&y, w.c.Size)
}

// Secp256k1 is the decred implementation of secp256k1. It serves as the
// independent reference the registry's secp256k1 entry is checked against.
type Secp256k1 struct{}

func (c *Secp256k1) Params() *elliptic.CurveParams {
	return secp256k1.S256().Params()
}

func (c *Secp256k1) NewScalar() (*big.Int, error) {
	params := c.Params()
	// Generate random integer in [0, N-1]
	k, err := rand.Int(rand.Reader, params.N)
	if err != nil {
		return nil, err
	}
	return k, nil
}

func (c *Secp256k1) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return secp256k1.S256().ScalarBaseMult(k.Bytes())
}

func (c *Secp256k1) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	return secp256k1.S256().ScalarMult(Px, Py, k.Bytes())
}

func (c *Secp256k1) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return secp256k1.S256().Add(x1, y1, x2, y2)
}

// NewSecp256k1 returns a new instance of the Secp256k1 curve wrapper
func NewSecp256k1() Curve {
	return &Secp256k1{}
}

// CrossCheck compares two implementations of the same curve on random scalars:
// base multiplication, multiplication of a derived point and addition must all
// agree. random supplies the scalars.
func CrossCheck(a, b Curve, random io.Reader, rounds int) error {
	pa, pb := a.Params(), b.Params()
	if pa.P.Cmp(pb.P) != 0 || pa.N.Cmp(pb.N) != 0 {
		return fmt.Errorf("curves: cross-check of different curves %s and %s", pa.Name, pb.Name)
	}

	for i := 0; i < rounds; i++ {
		k1, err := randScalar(random, pa.N)
		if err != nil {
			return err
		}
		k2, err := randScalar(random, pa.N)
		if err != nil {
			return err
		}

		ax, ay := a.ScalarBaseMult(k1)
		bx, by := b.ScalarBaseMult(k1)
		if ax.Cmp(bx) != 0 || ay.Cmp(by) != 0 {
			return fmt.Errorf("curves: %s: base multiplication by %x disagrees", pa.Name, k1)
		}

		cx, cy := a.ScalarMult(ax, ay, k2)
		dx, dy := b.ScalarMult(bx, by, k2)
		if cx.Cmp(dx) != 0 || cy.Cmp(dy) != 0 {
			return fmt.Errorf("curves: %s: point multiplication by %x disagrees", pa.Name, k2)
		}

		sx, sy := a.Add(ax, ay, cx, cy)
		tx, ty := b.Add(bx, by, dx, dy)
		if sx.Cmp(tx) != 0 || sy.Cmp(ty) != 0 {
			return fmt.Errorf("curves: %s: addition disagrees", pa.Name)
		}
	}
	return nil
}

func randScalar(random io.Reader, n *big.Int) (*big.Int, error) {
	for {
		k, err := rand.Int(random, n)
		if err != nil {
			return nil, err
		}
		if k.Sign() != 0 {
			return k, nil
		}
	}
}
