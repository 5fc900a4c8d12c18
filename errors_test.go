package textconv_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/AndrewDonelson/textconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError_MessageQuotesInput(t *testing.T) {
	_, err := textconv.Int[int64]{}.Parse("forty-two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"forty-two"`)
	assert.Contains(t, err.Error(), "int64")
}

func TestParseError_TruncatesLongInput(t *testing.T) {
	// Month's cause is static, so the message length is bounded by the
	// quoted-input cap alone.
	long := strings.Repeat("x", 500)
	_, err := textconv.Month{}.Parse(long)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "...")
	assert.Less(t, len(err.Error()), 200)

	var perr *textconv.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, long, perr.Input, "full input stays on the struct")
}

func TestParseError_MatchesInvalidFormat(t *testing.T) {
	_, err := textconv.UUID{}.Parse("not-a-uuid")
	assert.ErrorIs(t, err, textconv.ErrInvalidFormat)
}

func TestParseError_EmptyInput(t *testing.T) {
	_, err := textconv.UUID{}.Parse("")
	assert.ErrorIs(t, err, textconv.ErrEmptyInput)
	assert.ErrorIs(t, err, textconv.ErrInvalidFormat)
}

func TestParseError_UnwrapsCause(t *testing.T) {
	_, err := textconv.Int[int8]{}.Parse("300")
	var perr *textconv.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, perr.Err, errors.Unwrap(perr))
	assert.Equal(t, "int8", perr.Converter)
	assert.Equal(t, "300", perr.Input)
}
