package iso8583

import "fmt"

// pow10 returns 10^n for the small exponents used by length prefixes.
func pow10(n int) int {
	res := 1
	for i := 0; i < n; i++ {
		res *= 10
	}
	return res
}

// parseASCIIToInt parses a run of ASCII digits without accepting the
// signs and underscores strconv would.
func parseASCIIToInt(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty numeric string", ErrInvalidLength)
	}
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("%w: invalid character '%c' in numeric string", ErrInvalidLength, ch)
		}
		n = n*10 + int(ch-'0')
	}
	return n, nil
}

// writeIntToASCII formats val as exactly digits zero-padded decimal digits.
func writeIntToASCII(buf []byte, val, digits int) []byte {
	start := len(buf)
	for i := 0; i < digits; i++ {
		buf = append(buf, '0')
	}
	for i := digits - 1; i >= 0; i-- {
		buf[start+i] = byte(val%10 + '0')
		val /= 10
	}
	return buf
}

func repeatByte(buf []byte, b byte, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, b)
	}
	return buf
}
