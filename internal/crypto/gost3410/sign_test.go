package gost3410

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-gostcrypto/internal/crypto/curves"
	"github.com/smallyu/go-gostcrypto/internal/crypto/fixed"
)

type knownAnswer struct {
	curve      string
	d, qx, qy  string
	e, k, r, s string
}

var knownAnswers = []knownAnswer{
	{
		curve: curves.GOST256Test,
		d:     "7A929ADE789BB9BE10ED359DD39A72C11B60961F49397EEE1D19CE9891EC3B28",
		qx:    "7F2B49E270DB6D90D8595BEC458B50C58585BA1D4E9B788F6689DBD8E56FD80B",
		qy:    "26F1B489D6701DD185C8413A977B3CBBAF64D1C593D26627DFFB101A87FF77DA",
		e:     "2DFBC1B372D89A1188C09C52E0EEC61FCE52032AB1022E8E67ECE6672B043EE5",
		k:     "77105C9B20BCD3122823C8CF6FCC7B956DE33814E95B7FE64FED924594DCEAB3",
		r:     "41AA28D2F1AB148280CD9ED56FEDA41974053554A42767B83AD043FD39DC0493",
		s:     "01456C64BA4642A1653C235A98A60249BCD6D3F746B631DF928014F6C5BF9C40",
	},
	{
		curve: curves.GOST512Test,
		d: "0BA6048AADAE241BA40936D47756D7C93091A0E8514669700EE7508E508B1020" +
			"72E8123B2200A0563322DAD2827E2714A2636B7BFD18AADFC62967821FA18DD4",
		qx: "115DC5BC96760C7B48598D8AB9E740D4C4A85A65BE33C1815B5C320C854621DD" +
			"5A515856D13314AF69BC5B924C8B4DDFF75C45415C1D9DD9DD33612CD530EFE1",
		qy: "37C7C90CD40B0F5621DC3AC1B751CFA0E2634FA0503B3D52639F5D7FB72AFD61" +
			"EA199441D943FFE7F0C70A2759A3CDB84C114E1F9339FDF27F35ECA93677BEEC",
		e: "3754F3CFACC9E0615C4F4A7C4D8DAB531B09B6F9C170C533A71D147035B0C591" +
			"7184EE536593F4414339976C647C5D5A407ADEDB1D560C4FC6777D2972075B8C",
		k: "0359E7F4B1410FEACC570456C6801496946312120B39D019D455986E364F3658" +
			"86748ED7A44B3E794434006011842286212273A6D14CF70EA3AF71BB1AE679F1",
		r: "2F86FA60A081091A23DD795E1E3C689EE512A3C82EE0DCC2643C78EEA8FCACD3" +
			"5492558486B20F1C9EC197C90699850260C93BCBCD9C5C3317E19344E173AE36",
		s: "1081B394696FFE8E6585E7A9362D26B6325F56778AADBC081C0BFBE933D52FF5" +
			"823CE288E8C4F362526080DF7F70CE406A6EEB1F56919CB92A9853BDE73E5B4A",
	},
}

func mustBytes(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func mustCurve(t testing.TB, name string) *curves.Params {
	t.Helper()
	c, err := curves.ByName(name)
	require.NoError(t, err)
	return c
}

func TestKnownAnswer(t *testing.T) {
	for _, tc := range knownAnswers {
		t.Run(tc.curve, func(t *testing.T) {
			c := mustCurve(t, tc.curve)
			priv, err := NewPrivateKey(c, mustBytes(t, tc.d))
			require.NoError(t, err)
			assert.Equal(t, tc.qx, fixed.Hex(&priv.X, c.Size))
			assert.Equal(t, tc.qy, fixed.Hex(&priv.Y, c.Size))

			digest := mustBytes(t, tc.e)
			sig, err := SignWithNonce(priv, digest, mustBytes(t, tc.k))
			require.NoError(t, err)
			assert.Equal(t, tc.r, fixed.Hex(&sig.R, c.Size))
			assert.Equal(t, tc.s, fixed.Hex(&sig.S, c.Size))
			assert.Equal(t, mustBytes(t, tc.s+tc.r), sig.Bytes())

			pub, err := NewPublicKey(c, mustBytes(t, tc.qx), mustBytes(t, tc.qy))
			require.NoError(t, err)
			assert.True(t, pub.Equal(&priv.PublicKey))
			assert.True(t, Verify(pub, digest, sig))
		})
	}
}

func TestSignVerify(t *testing.T) {
	for _, name := range curves.Names() {
		t.Run(name, func(t *testing.T) {
			c := mustCurve(t, name)
			priv, err := GenerateKey(rand.Reader, c)
			require.NoError(t, err)

			digest := make([]byte, c.ByteSize())
			_, err = rand.Read(digest)
			require.NoError(t, err)

			sig, err := Sign(rand.Reader, priv, digest)
			require.NoError(t, err)
			require.True(t, Verify(&priv.PublicKey, digest, sig))

			parsed, err := ParseSignature(c, sig.Bytes())
			require.NoError(t, err)
			assert.True(t, Verify(&priv.PublicKey, digest, parsed))

			pub, err := ParsePublicKey(c, priv.PublicKey.Bytes())
			require.NoError(t, err)
			assert.True(t, Verify(pub, digest, sig))

			// Two signatures of the same digest use different nonces.
			again, err := Sign(rand.Reader, priv, digest)
			require.NoError(t, err)
			assert.False(t, bytes.Equal(sig.Bytes(), again.Bytes()))
		})
	}
}

func TestVerifyRejects(t *testing.T) {
	c := mustCurve(t, curves.GOST256A)
	priv, err := GenerateKey(rand.Reader, c)
	require.NoError(t, err)
	other, err := GenerateKey(rand.Reader, c)
	require.NoError(t, err)

	digest := bytes.Repeat([]byte{0x5A}, 32)
	sig, err := Sign(rand.Reader, priv, digest)
	require.NoError(t, err)
	pub := &priv.PublicKey

	t.Run("wrong digest", func(t *testing.T) {
		d := append([]byte(nil), digest...)
		d[31] ^= 1
		assert.False(t, Verify(pub, d, sig))
	})

	t.Run("wrong key", func(t *testing.T) {
		assert.False(t, Verify(&other.PublicKey, digest, sig))
	})

	t.Run("tampered encoding", func(t *testing.T) {
		for _, i := range []int{0, 31, 32, 63} {
			b := sig.Bytes()
			b[i] ^= 0x80
			s, err := ParseSignature(c, b)
			require.NoError(t, err)
			assert.False(t, Verify(pub, digest, s), "byte %d", i)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		zero := *sig
		zero.R = fixed.Nat{}
		assert.False(t, Verify(pub, digest, &zero))

		big := *sig
		big.S = c.Order.P
		assert.False(t, Verify(pub, digest, &big))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseSignature(c, sig.Bytes()[1:])
		assert.ErrorIs(t, err, ErrInvalidSignature)
		assert.False(t, Verify(nil, digest, sig))
		assert.False(t, Verify(pub, digest, nil))
		assert.False(t, Verify(pub, make([]byte, 33), sig))
	})

	t.Run("width mismatch", func(t *testing.T) {
		wide := mustCurve(t, curves.GOST512A)
		k, err := GenerateKey(rand.Reader, wide)
		require.NoError(t, err)
		assert.False(t, Verify(&k.PublicKey, digest, sig))
	})
}

func TestZeroDigest(t *testing.T) {
	c := mustCurve(t, curves.GOST256Test)
	priv, err := GenerateKey(rand.Reader, c)
	require.NoError(t, err)

	zero := make([]byte, 32)
	sig, err := Sign(rand.Reader, priv, zero)
	require.NoError(t, err)
	assert.True(t, Verify(&priv.PublicKey, zero, sig))

	// A digest equal to q reduces to zero and is signed as e = 1.
	assert.True(t, Verify(&priv.PublicKey, fixed.Bytes(&c.Order.P, c.Size), sig))
	assert.True(t, Verify(&priv.PublicKey, []byte{1}, sig))
}

func TestDigestTooLong(t *testing.T) {
	c := mustCurve(t, curves.CryptoProB)
	priv, err := GenerateKey(rand.Reader, c)
	require.NoError(t, err)
	_, err = Sign(rand.Reader, priv, make([]byte, 33))
	assert.ErrorIs(t, err, ErrDigestTooLong)
}

func TestSignWithNonceRejects(t *testing.T) {
	c := mustCurve(t, curves.GOST256Test)
	priv, err := GenerateKey(rand.Reader, c)
	require.NoError(t, err)
	digest := make([]byte, 32)

	_, err = SignWithNonce(priv, digest, make([]byte, 32))
	assert.Error(t, err)
	_, err = SignWithNonce(priv, digest, fixed.Bytes(&c.Order.P, c.Size))
	assert.Error(t, err)
}

func BenchmarkSign(b *testing.B) {
	for _, name := range []string{curves.GOST256A, curves.GOST512A} {
		b.Run(name, func(b *testing.B) {
			c := mustCurve(b, name)
			priv, err := GenerateKey(rand.Reader, c)
			require.NoError(b, err)
			digest := make([]byte, c.ByteSize())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Sign(rand.Reader, priv, digest); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkVerify(b *testing.B) {
	for _, name := range []string{curves.GOST256A, curves.GOST512A} {
		b.Run(name, func(b *testing.B) {
			c := mustCurve(b, name)
			priv, err := GenerateKey(rand.Reader, c)
			require.NoError(b, err)
			digest := make([]byte, c.ByteSize())
			sig, err := Sign(rand.Reader, priv, digest)
			require.NoError(b, err)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if !Verify(&priv.PublicKey, digest, sig) {
					b.Fatal("verify failed")
				}
			}
		})
	}
}
