package mont

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-gostcrypto/internal/crypto/fixed"
)

var testModuli = []struct {
	name string
	p    string
	size int
}{
	{"gost-256-test", "8000000000000000000000000000000000000000000000000000000000000431", fixed.Size256},
	{"gost-256-a", "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFD97", fixed.Size256},
	{"secp256k1", "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", fixed.Size256},
	{"gost-512-test", "4531ACD1FE0023C7550D267B6B2FEE80922B14B2FFB90F04D4EB7C09B5D2D15D" +
		"F1D852741AF4704A0458047E80E4546D35B8336FAC224DD81664BBF528BE6373", fixed.Size512},
	{"gost-512-b", "8000000000000000000000000000000000000000000000000000000000000000" +
		"000000000000000000000000000000000000000000000000000000000000006F", fixed.Size512},
}

type fieldCase struct {
	f *Field
	p *big.Int
	r *rand.Rand
}

func newCase(t testing.TB, p string, size int, seed int64) *fieldCase {
	f, err := NewFieldHex(p, size)
	require.NoError(t, err)
	return &fieldCase{f: f, p: fixed.Big(&f.P, size), r: rand.New(rand.NewSource(seed))}
}

// residue returns a random plain value below p together with its big.Int.
func (c *fieldCase) residue(t testing.TB) (fixed.Nat, *big.Int) {
	v := new(big.Int).Rand(c.r, c.p)
	var n fixed.Nat
	require.NoError(t, n.SetBig(v, c.f.Size))
	return n, v
}

func (c *fieldCase) toBig(x *fixed.Nat) *big.Int {
	return fixed.Big(x, c.f.Size)
}

func TestNewFieldRejects(t *testing.T) {
	_, err := NewFieldHex("8000000000000000000000000000000000000000000000000000000000000430", fixed.Size256)
	require.ErrorIs(t, err, ErrModulus)

	_, err = NewFieldHex("FFFFFFFF000000000000000000000000000000000000000000000001", fixed.Size256)
	require.ErrorIs(t, err, ErrModulus)

	var p fixed.Nat
	p.SetUint64(7)
	_, err = NewField(p, 3)
	require.ErrorIs(t, err, ErrModulus)

	_, err = NewFieldHex("0x12Q", fixed.Size256)
	require.ErrorIs(t, err, fixed.ErrPrecondition)
}

func TestConstants(t *testing.T) {
	for i, m := range testModuli {
		t.Run(m.name, func(t *testing.T) {
			c := newCase(t, m.p, m.size, int64(i))
			f := c.f
			bigR := new(big.Int).Lsh(big.NewInt(1), uint(64*m.size))

			require.Zero(t, new(big.Int).Mod(bigR, c.p).Cmp(c.toBig(&f.One)), "One")
			rr := new(big.Int).Mul(bigR, bigR)
			require.Zero(t, rr.Mod(rr, c.p).Cmp(c.toBig(&f.R2)), "R2")
			require.Equal(t, ^uint64(0), f.P[0]*f.N0, "N0")
			require.Zero(t, new(big.Int).Sub(c.p, big.NewInt(2)).Cmp(c.toBig(&f.PMinus2)))
			require.Equal(t, c.p.BitLen(), f.BitLen())
		})
	}
}

func TestArithmetic(t *testing.T) {
	for i, m := range testModuli {
		t.Run(m.name, func(t *testing.T) {
			c := newCase(t, m.p, m.size, int64(100+i))
			f := c.f
			for n := 0; n < 100; n++ {
				x, bx := c.residue(t)
				y, by := c.residue(t)

				var xm, ym, z, back fixed.Nat
				f.ToMont(&xm, &x)
				f.ToMont(&ym, &y)
				f.FromMont(&back, &xm)
				require.Equal(t, x, back, "round trip")

				f.Mul(&z, &xm, &ym)
				f.FromMont(&z, &z)
				want := new(big.Int).Mul(bx, by)
				require.Zero(t, want.Mod(want, c.p).Cmp(c.toBig(&z)), "mul")

				f.MulPlain(&z, &x, &y)
				require.Zero(t, want.Cmp(c.toBig(&z)), "mul plain")

				f.Add(&z, &x, &y)
				want = new(big.Int).Add(bx, by)
				require.Zero(t, want.Mod(want, c.p).Cmp(c.toBig(&z)), "add")

				var d fixed.Nat
				f.Double(&d, &x)
				f.Add(&z, &x, &x)
				require.Equal(t, z, d, "double")

				f.Sub(&z, &x, &y)
				want = new(big.Int).Sub(bx, by)
				require.Zero(t, want.Mod(want, c.p).Cmp(c.toBig(&z)), "sub")

				f.Neg(&z, &x)
				f.Add(&z, &z, &x)
				require.True(t, f.IsZero(&z), "neg")
			}
		})
	}
}

func TestBoundaryOperands(t *testing.T) {
	for i, m := range testModuli {
		t.Run(m.name, func(t *testing.T) {
			c := newCase(t, m.p, m.size, int64(200+i))
			f := c.f
			one := big.NewInt(1)
			top := new(big.Int).Sub(c.p, one)

			var pm1, z fixed.Nat
			require.NoError(t, pm1.SetBig(top, m.size))

			f.Add(&z, &pm1, &pm1)
			want := new(big.Int).Sub(c.p, big.NewInt(2))
			require.Zero(t, want.Cmp(c.toBig(&z)))

			f.MulPlain(&z, &pm1, &pm1)
			require.Zero(t, one.Cmp(c.toBig(&z)))

			var zero fixed.Nat
			f.Sub(&z, &zero, &pm1)
			require.Zero(t, one.Cmp(c.toBig(&z)))

			f.Neg(&z, &zero)
			require.True(t, f.IsZero(&z))
		})
	}
}

func TestExpInv(t *testing.T) {
	for i, m := range testModuli {
		t.Run(m.name, func(t *testing.T) {
			c := newCase(t, m.p, m.size, int64(300+i))
			f := c.f
			for n := 0; n < 10; n++ {
				x, bx := c.residue(t)
				k, bk := c.residue(t)

				var xm, z fixed.Nat
				f.ToMont(&xm, &x)
				f.Exp(&z, &xm, &k)
				f.FromMont(&z, &z)
				require.Zero(t, new(big.Int).Exp(bx, bk, c.p).Cmp(c.toBig(&z)), "exp")

				if bx.Sign() == 0 {
					continue
				}
				f.Inv(&z, &xm)
				f.Mul(&z, &z, &xm)
				require.True(t, f.Equal(&z, &f.One), "inv")
			}

			var zero, z fixed.Nat
			f.Inv(&z, &zero)
			require.True(t, f.IsZero(&z))

			// x^0 == 1
			x, _ := c.residue(t)
			f.ToMont(&x, &x)
			f.Exp(&z, &x, &zero)
			require.True(t, f.Equal(&z, &f.One))
		})
	}
}

func TestReduce(t *testing.T) {
	for i, m := range testModuli {
		t.Run(m.name, func(t *testing.T) {
			c := newCase(t, m.p, m.size, int64(400+i))
			var x fixed.Nat
			for w := 0; w < m.size; w++ {
				x[w] = c.r.Uint64()
			}
			want := new(big.Int).Mod(c.toBig(&x), c.p)
			c.f.Reduce(&x, &x)
			require.Zero(t, want.Cmp(c.toBig(&x)))
		})
	}
}

func BenchmarkMul(b *testing.B) {
	for _, m := range []int{0, 3} {
		mod := testModuli[m]
		b.Run(mod.name, func(b *testing.B) {
			c := newCase(b, mod.p, mod.size, 1)
			x, _ := c.residue(b)
			y, _ := c.residue(b)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.f.Mul(&x, &x, &y)
			}
		})
	}
}

func BenchmarkInv(b *testing.B) {
	for _, m := range []int{0, 3} {
		mod := testModuli[m]
		b.Run(mod.name, func(b *testing.B) {
			c := newCase(b, mod.p, mod.size, 1)
			x, _ := c.residue(b)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.f.Inv(&x, &x)
			}
		})
	}
}
