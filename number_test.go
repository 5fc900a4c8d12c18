package textconv_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/AndrewDonelson/textconv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Int / Uint / Float ───────────────────────────────────────────────────────

func TestInt_RoundTrip(t *testing.T) {
	c := textconv.Int[int64]{}
	for _, v := range []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64} {
		got, err := c.Parse(c.Format(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestInt_Name(t *testing.T) {
	assert.Equal(t, "int", textconv.Int[int]{}.Name())
	assert.Equal(t, "int64", textconv.Int[int64]{}.Name())
	assert.Equal(t, "uint32", textconv.Uint[uint32]{}.Name())
	assert.Equal(t, "float64", textconv.Float[float64]{}.Name())
}

func TestInt_RangeChecked(t *testing.T) {
	_, err := textconv.Int[int8]{}.Parse("127")
	assert.NoError(t, err)
	_, err = textconv.Int[int8]{}.Parse("128")
	assert.ErrorIs(t, err, textconv.ErrInvalidFormat)
}

func TestInt_Malformed(t *testing.T) {
	c := textconv.Int[int]{}
	for _, in := range []string{"", " 1", "1.5", "0x10", "abc"} {
		_, err := c.Parse(in)
		assert.ErrorIs(t, err, textconv.ErrInvalidFormat, "input %q", in)
	}
}

func TestUint_RejectsNegative(t *testing.T) {
	_, err := textconv.Uint[uint]{}.Parse("-1")
	assert.ErrorIs(t, err, textconv.ErrInvalidFormat)
}

func TestFloat_RoundTrip(t *testing.T) {
	c64 := textconv.Float[float64]{}
	for _, v := range []float64{0, 1.5, -0.25, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		got, err := c64.Parse(c64.Format(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	c32 := textconv.Float[float32]{}
	got, err := c32.Parse(c32.Format(float32(1.1)))
	require.NoError(t, err)
	assert.Equal(t, float32(1.1), got)
}

// ── Bool ─────────────────────────────────────────────────────────────────────

func TestBool(t *testing.T) {
	c := textconv.Bool{}
	for in, want := range map[string]bool{"true": true, "TRUE": true, "1": true, "t": true, "false": false, "0": false} {
		got, err := c.Parse(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, "true", c.Format(true))
	assert.Equal(t, "false", c.Format(false))

	_, err := c.Parse("yes")
	assert.ErrorIs(t, err, textconv.ErrInvalidFormat)
	_, err = c.Parse("")
	assert.ErrorIs(t, err, textconv.ErrEmptyInput)
}

// ── BigInt / Decimal ─────────────────────────────────────────────────────────

func TestBigInt_RoundTrip(t *testing.T) {
	c := textconv.BigInt{}
	huge := "123456789012345678901234567890123456789"
	v, err := c.Parse(huge)
	require.NoError(t, err)
	assert.Equal(t, huge, c.Format(v))

	neg, err := c.Parse("-42")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(-42), neg)
}

func TestBigInt_NilFormatsAsZero(t *testing.T) {
	assert.Equal(t, "0", textconv.BigInt{}.Format(nil))
}

func TestBigInt_Malformed(t *testing.T) {
	for _, in := range []string{"", "12.5", "0xFF", "ten"} {
		_, err := textconv.BigInt{}.Parse(in)
		assert.ErrorIs(t, err, textconv.ErrInvalidFormat, "input %q", in)
	}
}

func TestDecimal_RoundTrip(t *testing.T) {
	c := textconv.Decimal{}
	for _, s := range []string{"0", "1.5", "-0.001", "123456789.123456789", "1e10"} {
		v, err := c.Parse(s)
		require.NoError(t, err)
		got, err := c.Parse(c.Format(v))
		require.NoError(t, err)
		assert.True(t, v.Equal(got), "value %s", s)
	}
}

func TestDecimal_CanonicalForm(t *testing.T) {
	c := textconv.Decimal{}
	v, err := c.Parse("1.50")
	require.NoError(t, err)
	assert.Equal(t, "1.5", c.Format(v))
	assert.True(t, v.Equal(decimal.RequireFromString("1.5")))
}

func TestDecimal_Malformed(t *testing.T) {
	for _, in := range []string{"", "1.2.3", "money"} {
		_, err := textconv.Decimal{}.Parse(in)
		assert.ErrorIs(t, err, textconv.ErrInvalidFormat, "input %q", in)
	}
}
