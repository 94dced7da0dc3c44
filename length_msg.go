package iso8583

import (
	"fmt"
	"strconv"
)

// WriteLengthIndicator renders the message length indicator (the prefix
// that tells a TCP peer how long the message is).
func WriteLengthIndicator(msgLen int, config LengthIndicatorConfig) (string, error) {
	switch config.Type {
	case LengthIndicatorNone:
		return "", nil
	case LengthIndicatorBinary:
		return writeBinaryLengthIndicator(msgLen, config)
	case LengthIndicatorASCII:
		return writeASCIILengthIndicator(msgLen, config)
	case LengthIndicatorHex:
		return writeHexLengthIndicator(msgLen, config)
	default:
		return "", ErrUnsupportedLengthType
	}
}

// ReadLengthIndicator reads the message length indicator from the front of data.
// Returns:
// 1. The message length (e.g., 200 for "0200")
// 2. The number of bytes consumed by the indicator (e.g., 4 for "0200")
// 3. An error, if any
func ReadLengthIndicator(data string, config LengthIndicatorConfig) (int, int, error) {
	if config.Type == LengthIndicatorNone {
		// No length indicator, assume data is the full message
		return len(data), 0, nil
	}

	if len(data) < config.Length {
		return 0, 0, fmt.Errorf("%w: length indicator needs %d bytes, have %d", ErrInsufficientData, config.Length, len(data))
	}

	switch config.Type {
	case LengthIndicatorBinary:
		return readBinaryLengthIndicator(data, config)
	case LengthIndicatorASCII:
		return readASCIILengthIndicator(data, config)
	case LengthIndicatorHex:
		return readHexLengthIndicator(data, config)
	default:
		return 0, 0, ErrUnsupportedLengthType
	}
}

// Frame prefixes msg with its length indicator.
func Frame(msg string, config LengthIndicatorConfig) (string, error) {
	prefix, err := WriteLengthIndicator(len(msg), config)
	if err != nil {
		return "", err
	}
	return prefix + msg, nil
}

// Unframe splits the first framed message off data and returns it along
// with whatever follows it.
func Unframe(data string, config LengthIndicatorConfig) (msg, rest string, err error) {
	msgLen, n, err := ReadLengthIndicator(data, config)
	if err != nil {
		return "", "", err
	}
	if len(data) < n+msgLen {
		return "", "", fmt.Errorf("%w: frame announces %d bytes, have %d", ErrInsufficientData, msgLen, len(data)-n)
	}
	return data[n : n+msgLen], data[n+msgLen:], nil
}

// writeBinaryLengthIndicator writes binary length (2 or 4 bytes, big-endian).
func writeBinaryLengthIndicator(msgLen int, config LengthIndicatorConfig) (string, error) {
	switch config.Length {
	case 2:
		if msgLen > 0xFFFF {
			return "", fmt.Errorf("message length %d exceeds 2-byte maximum", msgLen)
		}
		return string([]byte{byte(msgLen >> 8), byte(msgLen)}), nil

	case 4:
		if msgLen > 0x7FFFFFFF {
			return "", fmt.Errorf("message length %d exceeds 4-byte maximum", msgLen)
		}
		return string([]byte{byte(msgLen >> 24), byte(msgLen >> 16), byte(msgLen >> 8), byte(msgLen)}), nil

	default:
		return "", fmt.Errorf("invalid binary length indicator size: %d (must be 2 or 4)", config.Length)
	}
}

// readBinaryLengthIndicator reads binary length (2 or 4 bytes, big-endian).
func readBinaryLengthIndicator(data string, config LengthIndicatorConfig) (int, int, error) {
	switch config.Length {
	case 2:
		return int(data[0])<<8 | int(data[1]), 2, nil
	case 4:
		return int(data[0])<<24 | int(data[1])<<16 | int(data[2])<<8 | int(data[3]), 4, nil
	default:
		return 0, 0, fmt.Errorf("invalid binary length indicator size: %d (must be 2 or 4)", config.Length)
	}
}

// writeASCIILengthIndicator writes ASCII decimal length (typically 4 digits, e.g., "0200").
func writeASCIILengthIndicator(msgLen int, config LengthIndicatorConfig) (string, error) {
	if config.Length != 4 {
		return "", fmt.Errorf("ASCII length indicator must be 4 characters, got %d", config.Length)
	}
	if msgLen > 9999 {
		return "", fmt.Errorf("message length %d exceeds 4-digit ASCII maximum", msgLen)
	}
	return string(writeIntToASCII(make([]byte, 0, 4), msgLen, 4)), nil
}

// readASCIILengthIndicator reads ASCII decimal length (typically 4 digits, e.g., "0200").
func readASCIILengthIndicator(data string, config LengthIndicatorConfig) (int, int, error) {
	if config.Length != 4 {
		return 0, 0, fmt.Errorf("ASCII length indicator must be 4 characters, got %d", config.Length)
	}
	msgLen, err := parseASCIIToInt(data[:4])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid ASCII length indicator: %w", err)
	}
	return msgLen, 4, nil
}

// writeHexLengthIndicator writes hexadecimal ASCII length (typically 4 chars, e.g., "00C8" for 200).
func writeHexLengthIndicator(msgLen int, config LengthIndicatorConfig) (string, error) {
	if config.Length != 4 {
		return "", fmt.Errorf("hex length indicator must be 4 characters, got %d", config.Length)
	}
	if msgLen > 0xFFFF {
		return "", fmt.Errorf("message length %d exceeds 4-char hex maximum", msgLen)
	}
	return fmt.Sprintf("%04X", msgLen), nil
}

// readHexLengthIndicator reads hexadecimal ASCII length (typically 4 chars, e.g., "00C8").
func readHexLengthIndicator(data string, config LengthIndicatorConfig) (int, int, error) {
	if config.Length != 4 {
		return 0, 0, fmt.Errorf("hex length indicator must be 4 characters, got %d", config.Length)
	}
	msgLen, err := strconv.ParseUint(data[:4], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hex length indicator: %w", err)
	}
	return int(msgLen), 4, nil
}

// ParseLengthIndicatorType maps the names used on the command line and in
// config files to a LengthIndicatorConfig.
func ParseLengthIndicatorType(name string) (LengthIndicatorConfig, error) {
	switch name {
	case "", "none":
		return LengthIndicatorConfig{Type: LengthIndicatorNone}, nil
	case "ascii":
		return LengthIndicatorConfig{Type: LengthIndicatorASCII, Length: 4}, nil
	case "hex":
		return LengthIndicatorConfig{Type: LengthIndicatorHex, Length: 4}, nil
	case "binary":
		return LengthIndicatorConfig{Type: LengthIndicatorBinary, Length: 2}, nil
	default:
		return LengthIndicatorConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedLengthType, name)
	}
}
