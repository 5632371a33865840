package curves

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-gostcrypto/internal/crypto/fixed"
)

func requireRejected(t *testing.T, err, reason error) {
	t.Helper()
	require.Error(t, err)
	var ce *CurveError
	require.True(t, errors.As(err, &ce), "want *CurveError, got %T", err)
	assert.ErrorIs(t, err, reason)
}

func TestValidateRejects(t *testing.T) {
	base := mustCurve(t, GOST256Test).Definition()

	t.Run("zero discriminant", func(t *testing.T) {
		def := base
		def.A, def.B = "0", "0"
		c, err := NewParams(def)
		require.NoError(t, err)
		requireRejected(t, c.Validate(rand.Reader), ErrZeroDiscriminant)
	})

	t.Run("tampered b", func(t *testing.T) {
		def := base
		def.B = "5FBFF498AA938CE739B8E022FBAFEF40563F6E6A3472FC2A514C0CE9DAE23B7F"
		c, err := NewParams(def)
		require.NoError(t, err)
		requireRejected(t, c.Validate(rand.Reader), ErrPointNotOnCurve)
	})

	t.Run("tampered base point", func(t *testing.T) {
		def := base
		def.Y = "08E2A8A0E65147D4BD6316030E16D19C85C97F0A9CA267122B96ABBCEA7E8FC9"
		c, err := NewParams(def)
		require.NoError(t, err)
		requireRejected(t, c.Validate(rand.Reader), ErrPointNotOnCurve)
	})

	t.Run("wrong order", func(t *testing.T) {
		def := base
		def.Q = "8000000000000000000000000000000150FE8A1892976154C59CFC193ACCF5B1"
		c, err := NewParams(def)
		require.NoError(t, err)
		requireRejected(t, c.Validate(rand.Reader), ErrWrongPointOrder)
	})

	t.Run("inconsistent order constants", func(t *testing.T) {
		c := *mustCurve(t, GOST256Test)
		order := *c.Order
		order.N0 ^= 2
		c.Order = &order
		requireRejected(t, c.ValidateOrderField(rand.Reader), ErrWrongOrderParameters)
	})

	t.Run("documented text mismatch", func(t *testing.T) {
		c := *mustCurve(t, GOST256Test)
		c.def.P = "3104000000000000000000000000000000000000000000000000000000000008"
		requireRejected(t, c.Validate(rand.Reader), ErrEndianOrFormat)
	})

	t.Run("empty randomness", func(t *testing.T) {
		c := mustCurve(t, GOST256Test)
		requireRejected(t, c.ValidateOrderField(emptyReader{}), ErrWrongOrderParameters)
	})
}

func TestValidateDiscriminantOnly(t *testing.T) {
	// a = -3, b = 2 over any p gives 4a^3 + 27b^2 = -108 + 108 = 0.
	def := mustCurve(t, CryptoProA).Definition()
	def.B = "2"
	c, err := NewParams(def)
	require.NoError(t, err)
	requireRejected(t, c.ValidateDiscriminant(), ErrZeroDiscriminant)
}

func TestCurveErrorMessage(t *testing.T) {
	err := &CurveError{Curve: "x", Reason: ErrWrongPointOrder, Detail: "d"}
	assert.Equal(t, "curves: x rejected: base point order mismatch: d", err.Error())
	err.Detail = ""
	assert.Equal(t, "curves: x rejected: base point order mismatch", err.Error())
}

func TestNormalizeHex(t *testing.T) {
	assert.Equal(t, "ABC", normalizeHex("0x000abc"))
	n := fixed.MustHex("abc", fixed.Size256)
	assert.Equal(t, normalizeHex("ABC"), normalizeHex(fixed.Hex(&n, fixed.Size256)))
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }
