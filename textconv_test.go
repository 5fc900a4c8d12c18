package textconv_test

import (
	"testing"

	"github.com/AndrewDonelson/textconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Nullable ─────────────────────────────────────────────────────────────────

func TestNullable_NilMapsToEmpty(t *testing.T) {
	c := textconv.Nullable[int]{Conv: textconv.Int[int]{}}
	assert.Equal(t, "int-nullable", c.Name())
	assert.Equal(t, "", c.Format(nil))

	v, err := c.Parse("")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestNullable_DelegatesNonEmpty(t *testing.T) {
	c := textconv.Nullable[int]{Conv: textconv.Int[int]{}}
	v, err := c.Parse("42")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)
	assert.Equal(t, "42", c.Format(v))

	_, err = c.Parse("nope")
	assert.ErrorIs(t, err, textconv.ErrInvalidFormat)
}

// ── Slice ────────────────────────────────────────────────────────────────────

func TestSlice_RoundTripInts(t *testing.T) {
	c := textconv.Slice[int]{Conv: textconv.Int[int]{}}
	assert.Equal(t, "int-list", c.Name())
	assert.Equal(t, "1,2,3", c.Format([]int{1, 2, 3}))

	got, err := c.Parse("1,2,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSlice_EmptyString(t *testing.T) {
	c := textconv.Slice[int]{Conv: textconv.Int[int]{}}
	got, err := c.Parse("")
	require.NoError(t, err)
	assert.Equal(t, []int{}, got)
	assert.Equal(t, "", c.Format(nil))
}

func TestSlice_EscapesSeparators(t *testing.T) {
	c := textconv.Slice[string]{Conv: textconv.String{}}
	in := []string{"a,b", `c\d`, "plain"}
	s := c.Format(in)
	assert.Equal(t, `a\,b,c\\d,plain`, s)

	got, err := c.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestSlice_EmptyElementsRoundTrip(t *testing.T) {
	c := textconv.Slice[string]{Conv: textconv.String{}}

	// A lone empty element must stay distinguishable from an empty slice.
	single := []string{""}
	s := c.Format(single)
	assert.Equal(t, `\e`, s)
	got, err := c.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, single, got)

	// Mixed content, including the literal strings "e" and `\e`, which must
	// not collide with the empty-element marker.
	mixed := []string{"a", "", "e", `\e`, ""}
	assert.Equal(t, `a,\e,e,\\e,\e`, c.Format(mixed))
	got, err = c.Parse(c.Format(mixed))
	require.NoError(t, err)
	assert.Equal(t, mixed, got)
}

func TestSlice_CustomSeparator(t *testing.T) {
	c := textconv.Slice[int]{Conv: textconv.Int[int]{}, Sep: ';'}
	assert.Equal(t, "1;2", c.Format([]int{1, 2}))
	got, err := c.Parse("1;2")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestSlice_BadElement(t *testing.T) {
	c := textconv.Slice[int]{Conv: textconv.Int[int]{}}
	_, err := c.Parse("1,x,3")
	assert.ErrorIs(t, err, textconv.ErrInvalidFormat)

	var perr *textconv.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "int-list", perr.Converter)
	assert.Equal(t, "1,x,3", perr.Input)
}

func TestSlice_DanglingEscape(t *testing.T) {
	c := textconv.Slice[string]{Conv: textconv.String{}}
	_, err := c.Parse(`a\`)
	assert.ErrorIs(t, err, textconv.ErrInvalidFormat)
}

// ── Version ──────────────────────────────────────────────────────────────────

func TestVersion_DefaultDevBuild(t *testing.T) {
	assert.Equal(t, "0000.00.00-0000-dev", textconv.Version())
}
