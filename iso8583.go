// Package iso8583 is a schema-driven codec for bitmap-multiplexed text
// messages in the style of ISO 8583.
//
// A Schema lists the fields of one message family in wire order. Primary
// fields (the MTI and the primary bitmap) are always on the wire; every
// other field is conditional and owns one bit of the presence vector that
// the bitmaps decode to. Parse walks the schema over an input string and
// Compose walks it back, so that Compose(Parse(s)) reproduces s.
package iso8583

import (
	"fmt"
)

// Parse decodes data against schema. Every character of data must be
// consumed by exactly one field, otherwise a *TrailingDataError is returned.
// Bitmap bits past the schema's last conditional field must be clear.
// On error no partial message is returned.
func Parse(schema *Schema, data string) (*Message, error) {
	msg := newMessage(schema)
	bits := make(presence, 0, len(schema.bitmaps)*BitmapBits)
	state := data

	for i := range schema.fields {
		f := &schema.fields[i]

		present := f.Role == RolePrimary
		if !present {
			if f.bit >= len(bits) {
				return nil, &FieldError{
					Field: f.Name,
					Err:   fmt.Errorf("%w: bit %d requested, %d decoded", ErrBitmapUnderflow, f.bit, len(bits)),
				}
			}
			present = bits.isSet(f.bit)
		}

		if !present {
			// An absent bitmap still stands for 64 cleared bits, so the
			// fields it would govern read as absent instead of underflowing.
			if f.bitmap >= 0 {
				bits = append(bits, newPresence(1)...)
			}
			continue
		}

		n, value, err := f.Codec.Parse(state)
		if err != nil {
			return nil, &FieldError{Field: f.Name, Err: err}
		}
		state = state[n:]
		msg.values[i] = value
		msg.present[i] = true

		if f.bitmap >= 0 {
			bits = append(bits, value...)
		}
	}

	// A set bit that governs no field could not be composed back.
	for k := schema.conditionals; k < len(bits); k++ {
		if bits.isSet(k) {
			return nil, &FieldError{
				Field: schema.fields[schema.bitmaps[k/BitmapBits]].Name,
				Err:   fmt.Errorf("%w: bit %d is set but governs no field", ErrMalformedBitmap, k),
			}
		}
	}

	if len(state) != 0 {
		return nil, &TrailingDataError{Remaining: len(state)}
	}
	return msg, nil
}

// Compose encodes msg against schema. Bitmap values are never taken from
// msg: they are rebuilt from which conditional fields are present.
func Compose(schema *Schema, msg *Message) (string, error) {
	if msg.schema != schema {
		return "", fmt.Errorf("%w: message of family %q composed with schema %q", ErrInvalidSchema, msg.schema.name, schema.name)
	}

	bits := schema.presenceOf(msg)

	bp := getBuffer()
	defer putBuffer(bp)
	buf := *bp

	for i := range schema.fields {
		f := &schema.fields[i]
		if f.Role == RoleConditional && !bits.isSet(f.bit) {
			continue
		}

		var value string
		switch {
		case f.bitmap >= 0:
			value = bits.block(f.bitmap)
		case msg.present[i]:
			value = msg.values[i]
		default:
			return "", &FieldError{Field: f.Name, Err: fmt.Errorf("%w: primary field has no value", ErrFieldNotFound)}
		}

		encoded, err := f.Codec.Compose(value)
		if err != nil {
			return "", &FieldError{Field: f.Name, Err: err}
		}
		buf = append(buf, encoded...)
	}

	*bp = buf
	return string(buf), nil
}

// presenceOf is the first compose pass: it builds the complete presence
// vector for msg before any field is encoded. A conditional bitmap is on
// the wire when it was set explicitly or when any field it governs is
// present, and that in turn sets its own bit in an earlier bitmap.
func (s *Schema) presenceOf(msg *Message) presence {
	bits := newPresence(len(s.bitmaps))
	for i := range s.fields {
		f := &s.fields[i]
		if f.Role == RoleConditional && msg.present[i] {
			bits.set(f.bit)
		}
	}

	// Deepest first: a bitmap's own bit always lives in an earlier block.
	for n := len(s.bitmaps) - 1; n >= 0; n-- {
		f := &s.fields[s.bitmaps[n]]
		if f.Role != RoleConditional {
			continue
		}
		if bits.anySet(n) {
			bits.set(f.bit)
		}
	}
	return bits
}
