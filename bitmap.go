package iso8583

import (
	"fmt"
	"strconv"
)

// BitmapCodec converts between the 16 hex character wire form of a 64-bit
// presence vector and its 64 character binary string, most significant bit
// first. Bit i of the string governs the i-th conditional field it covers.
type BitmapCodec struct{}

func Bitmap() BitmapCodec { return BitmapCodec{} }

func (BitmapCodec) Kind() Kind { return KindBitmap }

func (BitmapCodec) Parse(input string) (int, string, error) {
	if len(input) < BitmapHexLength {
		return 0, "", fmt.Errorf("%w: need %d hex characters for bitmap, have %d", ErrInsufficientData, BitmapHexLength, len(input))
	}
	bits, err := decodeBitmapHex(input[:BitmapHexLength])
	if err != nil {
		return 0, "", err
	}
	return BitmapHexLength, bits, nil
}

func (BitmapCodec) Compose(value string) (string, error) {
	return encodeBitmapHex(value)
}

func decodeBitmapHex(s string) (string, error) {
	if len(s) != BitmapHexLength {
		return "", fmt.Errorf("%w: %d hex characters, want %d", ErrMalformedBitmap, len(s), BitmapHexLength)
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return "", fmt.Errorf("%w: invalid hex character '%c' at position %d", ErrMalformedBitmap, s[i], i)
		}
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedBitmap, err)
	}
	return fmt.Sprintf("%064b", v), nil
}

func encodeBitmapHex(bits string) (string, error) {
	if len(bits) != BitmapBits {
		return "", fmt.Errorf("%w: %d bits, want %d", ErrMalformedBitmap, len(bits), BitmapBits)
	}
	for i := 0; i < len(bits); i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return "", fmt.Errorf("%w: invalid bit '%c' at position %d", ErrMalformedBitmap, bits[i], i)
		}
	}
	v, err := strconv.ParseUint(bits, 2, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedBitmap, err)
	}
	return fmt.Sprintf("%016x", v), nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// presence is the rolling bit vector built while walking a schema. It grows
// by BitmapBits every time a bitmap field is decoded.
type presence []byte

func newPresence(bitmaps int) presence {
	p := make(presence, bitmaps*BitmapBits)
	for i := range p {
		p[i] = '0'
	}
	return p
}

func (p presence) isSet(bit int) bool {
	return p[bit] == '1'
}

func (p presence) set(bit int) {
	p[bit] = '1'
}

// block returns the 64 bits carried by the n-th bitmap of the schema.
func (p presence) block(n int) string {
	return string(p[n*BitmapBits : (n+1)*BitmapBits])
}

func (p presence) anySet(n int) bool {
	for _, b := range p[n*BitmapBits : (n+1)*BitmapBits] {
		if b == '1' {
			return true
		}
	}
	return false
}
