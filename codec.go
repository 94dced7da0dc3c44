package iso8583

import (
	"fmt"
	"strings"
)

// Codec is the wire representation of a single field. Parse consumes from
// the front of input and reports how many characters it used; Compose is
// its inverse. Codecs are immutable and safe to share between goroutines.
type Codec interface {
	Kind() Kind
	Parse(input string) (consumed int, value string, err error)
	Compose(value string) (string, error)
}

// MTICodec passes the 4 character message type indicator through verbatim.
// Compose refuses any other length.
type MTICodec struct{}

func MTI() MTICodec { return MTICodec{} }

func (MTICodec) Kind() Kind { return KindMTI }

func (MTICodec) Parse(input string) (int, string, error) {
	if len(input) < MTILength {
		return 0, "", fmt.Errorf("%w: need %d characters for MTI, have %d", ErrInsufficientData, MTILength, len(input))
	}
	return MTILength, input[:MTILength], nil
}

func (MTICodec) Compose(value string) (string, error) {
	if len(value) != MTILength {
		return "", fmt.Errorf("%w: %q is not %d characters", ErrInvalidMTI, value, MTILength)
	}
	return value, nil
}

// FixedCodec is an exactly Length characters wide field. When Side is not
// PadNone, Pad is stripped from that side on parse and added back on compose.
type FixedCodec struct {
	Length int
	Pad    byte
	Side   PadSide
}

// Fixed returns a fixed-width codec padded with pad on side.
func Fixed(length int, side PadSide, pad byte) FixedCodec {
	return FixedCodec{Length: length, Pad: pad, Side: side}
}

// FixedString is a space right-padded fixed field.
func FixedString(length int) FixedCodec {
	return Fixed(length, PadRight, ' ')
}

// FixedNumber is a zero left-padded fixed field.
func FixedNumber(length int) FixedCodec {
	return Fixed(length, PadLeft, '0')
}

func (c FixedCodec) Kind() Kind { return KindFixed }

func (c FixedCodec) Parse(input string) (int, string, error) {
	if len(input) < c.Length {
		return 0, "", fmt.Errorf("%w: need %d characters, have %d", ErrInsufficientData, c.Length, len(input))
	}
	raw := input[:c.Length]
	switch c.Side {
	case PadRight:
		raw = strings.TrimRight(raw, string(c.Pad))
	case PadLeft:
		raw = strings.TrimLeft(raw, string(c.Pad))
	}
	return c.Length, raw, nil
}

func (c FixedCodec) Compose(value string) (string, error) {
	if len(value) > c.Length {
		return "", &LengthError{Max: c.Length, Got: len(value)}
	}
	missing := c.Length - len(value)
	if missing == 0 {
		return value, nil
	}

	buf := make([]byte, 0, c.Length)
	switch c.Side {
	case PadRight:
		buf = append(buf, value...)
		buf = repeatByte(buf, c.Pad, missing)
	case PadLeft:
		buf = repeatByte(buf, c.Pad, missing)
		buf = append(buf, value...)
	default:
		// Nothing to pad with, a short value would shift every later field.
		return "", fmt.Errorf("%w: unpadded fixed field needs %d characters, got %d", ErrInvalidLength, c.Length, len(value))
	}
	return string(buf), nil
}

// VariableCodec is a length-prefixed field: Prefix decimal digits holding
// the payload length, followed by the payload itself.
type VariableCodec struct {
	Prefix    int
	MaxLength int
}

// NewVariable builds a length-prefixed codec. A maxLength of 0 selects the
// largest length the prefix can express.
func NewVariable(prefix, maxLength int) (VariableCodec, error) {
	if prefix < 1 || prefix > MaxPrefixDigits {
		return VariableCodec{}, fmt.Errorf("%w: length prefix of %d digits", ErrInvalidSchema, prefix)
	}
	limit := pow10(prefix) - 1
	if maxLength == 0 {
		maxLength = limit
	}
	if maxLength < 0 || maxLength > limit {
		return VariableCodec{}, fmt.Errorf("%w: max length %d does not fit a %d digit prefix", ErrInvalidSchema, maxLength, prefix)
	}
	return VariableCodec{Prefix: prefix, MaxLength: maxLength}, nil
}

func mustVariable(prefix, maxLength int) VariableCodec {
	c, err := NewVariable(prefix, maxLength)
	if err != nil {
		panic(err)
	}
	return c
}

// LVAR, LLVAR, LLLVAR and LLLLVAR are the 1 to 4 digit prefixed codecs.
// They panic if maxLength cannot be expressed by the prefix.
func LVAR(maxLength int) VariableCodec    { return mustVariable(1, maxLength) }
func LLVAR(maxLength int) VariableCodec   { return mustVariable(2, maxLength) }
func LLLVAR(maxLength int) VariableCodec  { return mustVariable(3, maxLength) }
func LLLLVAR(maxLength int) VariableCodec { return mustVariable(4, maxLength) }

func (c VariableCodec) Kind() Kind { return KindVariable }

func (c VariableCodec) Parse(input string) (int, string, error) {
	if len(input) < c.Prefix {
		return 0, "", fmt.Errorf("%w: need %d digit length prefix, have %d characters", ErrInsufficientData, c.Prefix, len(input))
	}
	length, err := parseASCIIToInt(input[:c.Prefix])
	if err != nil {
		return 0, "", err
	}
	if length > c.MaxLength {
		return 0, "", &LengthError{Max: c.MaxLength, Got: length}
	}
	end := c.Prefix + length
	if len(input) < end {
		return 0, "", fmt.Errorf("%w: need %d characters of payload, have %d", ErrInsufficientData, length, len(input)-c.Prefix)
	}
	return end, input[c.Prefix:end], nil
}

func (c VariableCodec) Compose(value string) (string, error) {
	if len(value) > c.MaxLength {
		return "", &LengthError{Max: c.MaxLength, Got: len(value)}
	}
	buf := make([]byte, 0, c.Prefix+len(value))
	buf = writeIntToASCII(buf, len(value), c.Prefix)
	buf = append(buf, value...)
	return string(buf), nil
}
