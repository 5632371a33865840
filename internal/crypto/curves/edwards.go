package curves

import (
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"github.com/smallyu/go-gostcrypto/internal/crypto/fixed"
)

var (
	// sqrt(-(A+2)) for the Montgomery coefficient A = 486662; fixes the sign of
	// the map v = c*u/x.
	edwardsScale = mustFieldElement("0F26EDF460A006BBD27B08DC03FC4F7EC5A1D3D14B7D1A82CC6E04AAFF457E06")
	// A/3, the shift from Montgomery u to Weierstrass x.
	montgomeryShift = mustFieldElement("2AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAD2451")
)

func mustFieldElement(hex string) *field.Element {
	n := fixed.MustHex(hex, fixed.Size256)
	e, err := new(field.Element).SetBytes(reverse(fixed.Bytes(&n, fixed.Size256)))
	if err != nil {
		panic(err)
	}
	return e
}

// reverse returns b with its byte order flipped (edwards25519 is little-endian).
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

// FromEdwards25519 maps an edwards25519 point onto the wei25519 curve through
// (x, y) -> (u, v) = ((1+y)/(1-y), c*u/x) -> (u + A/3, v). The map is a group
// isomorphism, so scalar multiples agree on both sides.
func FromEdwards25519(dst *Point, e *edwards25519.Point) error {
	c, err := ByName(Wei25519Name)
	if err != nil {
		return err
	}

	X, Y, Z, _ := e.ExtendedCoordinates()
	zinv := new(field.Element).Invert(Z)
	x := new(field.Element).Multiply(X, zinv)
	y := new(field.Element).Multiply(Y, zinv)
	one := new(field.Element).One()

	var wx, wy *field.Element
	if x.Equal(new(field.Element).Zero()) == 1 {
		if y.Equal(one) == 1 {
			c.SetInfinity(dst)
			return nil
		}
		// (0, -1) has order two and lands on (A/3, 0).
		wx, wy = montgomeryShift, new(field.Element).Zero()
	} else {
		num := new(field.Element).Add(one, y)
		den := new(field.Element).Subtract(one, y)
		u := new(field.Element).Multiply(num, den.Invert(den))
		wy = new(field.Element).Multiply(edwardsScale, u)
		wy.Multiply(wy, new(field.Element).Invert(x))
		wx = new(field.Element).Add(u, montgomeryShift)
	}

	var xn, yn fixed.Nat
	if err := xn.SetBytes(reverse(wx.Bytes()), c.Size); err != nil {
		return err
	}
	if err := yn.SetBytes(reverse(wy.Bytes()), c.Size); err != nil {
		return err
	}
	return c.SetAffine(dst, &xn, &yn)
}

// CrossCheckEdwards25519 compares base multiplication on wei25519 with
// edwards25519 for random scalars.
func CrossCheckEdwards25519(random io.Reader, rounds int) error {
	c, err := ByName(Wei25519Name)
	if err != nil {
		return err
	}

	var seed [64]byte
	for i := 0; i < rounds; i++ {
		if _, err := io.ReadFull(random, seed[:]); err != nil {
			return err
		}
		s, err := edwards25519.NewScalar().SetUniformBytes(seed[:])
		if err != nil {
			return err
		}

		var want, got Point
		if err := FromEdwards25519(&want, new(edwards25519.Point).ScalarBaseMult(s)); err != nil {
			return err
		}

		var k fixed.Nat
		if err := k.SetBytes(reverse(s.Bytes()), c.Size); err != nil {
			return err
		}
		c.ScalarBaseMult(&got, &k)
		if !c.Equal(&got, &want) {
			return fmt.Errorf("curves: %s: base multiplication by %x disagrees with edwards25519", c.Name, s.Bytes())
		}
	}
	return nil
}
