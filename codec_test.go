package iso8583

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMTICodec(t *testing.T) {
	c := MTI()
	assert.Equal(t, KindMTI, c.Kind())

	n, v, err := c.Parse("1100f434")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "1100", v)

	out, err := c.Compose("0200")
	require.NoError(t, err)
	assert.Equal(t, "0200", out)

	_, _, err = c.Parse("110")
	assert.ErrorIs(t, err, ErrInsufficientData)

	for _, bad := range []string{"", "110", "11000"} {
		_, err = c.Compose(bad)
		assert.ErrorIs(t, err, ErrInvalidMTI, bad)
	}
}

func TestFixedCodec(t *testing.T) {
	tests := []struct {
		name    string
		codec   FixedCodec
		value   string
		wire    string
		decoded string
	}{
		{"string pads right", FixedString(6), "AB", "AB    ", "AB"},
		{"string full width", FixedString(3), "ABC", "ABC", "ABC"},
		{"string empty", FixedString(4), "", "    ", ""},
		{"number pads left", FixedNumber(12), "42", "000000000042", "42"},
		{"number all zeros", FixedNumber(6), "", "000000", ""},
		{"custom pad", Fixed(4, PadLeft, '*'), "7", "***7", "7"},
		{"no pad", Fixed(3, PadNone, 0), "XYZ", "XYZ", "XYZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire, err := tt.codec.Compose(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.wire, wire)

			n, decoded, err := tt.codec.Parse(wire + "rest")
			require.NoError(t, err)
			assert.Equal(t, tt.codec.Length, n)
			assert.Equal(t, tt.decoded, decoded)

			again, err := tt.codec.Compose(decoded)
			require.NoError(t, err)
			assert.Equal(t, wire, again)
		})
	}
}

func TestFixedCodecKeepsInnerPadding(t *testing.T) {
	n, v, err := FixedString(10).Parse(" A B      ")
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, " A B", v)

	_, v, err = FixedNumber(6).Parse("010200")
	require.NoError(t, err)
	assert.Equal(t, "10200", v)
}

func TestFixedCodecErrors(t *testing.T) {
	_, err := FixedString(6).Compose("TOO LONG")
	var le *LengthError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 6, le.Max)
	assert.Equal(t, 8, le.Got)
	assert.ErrorIs(t, err, ErrLengthExceeded)

	_, err = Fixed(4, PadNone, 0).Compose("AB")
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, _, err = FixedNumber(12).Parse("12345")
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestVariableCodec(t *testing.T) {
	tests := []struct {
		name  string
		codec VariableCodec
		value string
		wire  string
	}{
		{"lvar", LVAR(0), "abc", "3abc"},
		{"llvar", LLVAR(19), "5430720000000002", "165430720000000002"},
		{"lllvar", LLLVAR(0), "RTPSNIF", "007RTPSNIF"},
		{"llllvar", LLLLVAR(0), "x", "0001x"},
		{"empty", LLVAR(0), "", "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire, err := tt.codec.Compose(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.wire, wire)

			n, v, err := tt.codec.Parse(wire + "tail")
			require.NoError(t, err)
			assert.Equal(t, len(tt.wire), n)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestVariableCodecDefaults(t *testing.T) {
	assert.Equal(t, 9, LVAR(0).MaxLength)
	assert.Equal(t, 99, LLVAR(0).MaxLength)
	assert.Equal(t, 999, LLLVAR(0).MaxLength)
	assert.Equal(t, 9999, LLLLVAR(0).MaxLength)
	assert.Equal(t, 19, LLVAR(19).MaxLength)
	assert.Equal(t, KindVariable, LLVAR(0).Kind())
}

func TestVariableCodecBounds(t *testing.T) {
	c := LLVAR(19)

	out, err := c.Compose(strings.Repeat("9", 19))
	require.NoError(t, err)
	assert.Equal(t, "19"+strings.Repeat("9", 19), out)

	_, err = c.Compose(strings.Repeat("9", 20))
	var le *LengthError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 19, le.Max)
	assert.Equal(t, 20, le.Got)

	_, _, err = c.Parse("20" + strings.Repeat("9", 20))
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 20, le.Got)
}

func TestVariableCodecParseErrors(t *testing.T) {
	c := LLLVAR(0)

	_, _, err := c.Parse("0")
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, _, err = c.Parse("010short")
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, _, err = c.Parse("+10abcdefghij")
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, _, err = c.Parse("a10abcdefghij")
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestNewVariable(t *testing.T) {
	_, err := NewVariable(0, 0)
	assert.ErrorIs(t, err, ErrInvalidSchema)

	_, err = NewVariable(5, 0)
	assert.ErrorIs(t, err, ErrInvalidSchema)

	_, err = NewVariable(2, 100)
	assert.ErrorIs(t, err, ErrInvalidSchema)

	c, err := NewVariable(3, 120)
	require.NoError(t, err)
	assert.Equal(t, VariableCodec{Prefix: 3, MaxLength: 120}, c)

	assert.Panics(t, func() { LVAR(10) })
}

func TestLengthErrorMessage(t *testing.T) {
	err := error(&LengthError{Max: 19, Got: 20})
	assert.Equal(t, "value length 20 larger than maximum 19", err.Error())
	assert.True(t, errors.Is(err, ErrLengthExceeded))
}
