package iso8583

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMTI       = errors.New("invalid MTI")
	ErrFieldNotFound    = errors.New("field not found")
	ErrInvalidLength    = errors.New("invalid field length")
	ErrLengthExceeded   = errors.New("length exceeded")
	ErrInsufficientData = errors.New("insufficient data")
	ErrTrailingData     = errors.New("unparsed trailing data")
	ErrMalformedBitmap  = errors.New("malformed bitmap")
	ErrBitmapUnderflow  = errors.New("bitmap index underflow")
	ErrInvalidSchema    = errors.New("invalid schema")

	ErrUnsupportedLengthType = errors.New("unsupported length indicator type")
)

// FieldError names the schema field at which parse or compose stopped.
type FieldError struct {
	Field string
	Err   error
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", fe.Field, fe.Err)
}

func (fe *FieldError) Unwrap() error {
	return fe.Err
}

// LengthError reports a value or decoded payload longer than its codec allows.
type LengthError struct {
	Max int
	Got int
}

func (le *LengthError) Error() string {
	return fmt.Sprintf("value length %d larger than maximum %d", le.Got, le.Max)
}

func (le *LengthError) Unwrap() error {
	return ErrLengthExceeded
}

// TrailingDataError is returned when the schema has been walked to its end
// but part of the input was never consumed.
type TrailingDataError struct {
	Remaining int
}

func (te *TrailingDataError) Error() string {
	return fmt.Sprintf("have %d unparsed bytes", te.Remaining)
}

func (te *TrailingDataError) Unwrap() error {
	return ErrTrailingData
}
