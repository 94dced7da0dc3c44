package iso8583

import (
	"fmt"
)

// Schema is the ordered field layout of one message family. It is built
// once, through NewSchema or a SchemaBuilder, and is read-only afterwards,
// so a single Schema may back any number of concurrent Parse and Compose
// calls.
type Schema struct {
	name    string
	fields  []Field
	index   map[string]int
	bitmaps []int // field positions of bitmap fields, in schema order
	mti     int   // position of the first MTI field, -1 if none

	// conditionals is the number of presence bits that govern a field.
	// Bits at or past it must be clear on the wire.
	conditionals int
}

// NewSchema validates fields and returns an immutable Schema. It rejects
// duplicate or empty names, anything but exactly one primary bitmap, and
// any conditional field whose presence bit no earlier bitmap can carry.
func NewSchema(name string, fields ...Field) (*Schema, error) {
	s := &Schema{
		name:   name,
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
		mti:    -1,
	}
	copy(s.fields, fields)

	covered := 0
	bit := 0
	primaryBitmaps := 0
	for i := range s.fields {
		f := &s.fields[i]
		if f.Name == "" {
			return nil, fmt.Errorf("%w: field %d has no name", ErrInvalidSchema, i)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, f.Name)
		}
		if f.Codec == nil {
			return nil, fmt.Errorf("%w: field %q has no codec", ErrInvalidSchema, f.Name)
		}
		if err := checkCodec(f.Codec); err != nil {
			return nil, &FieldError{Field: f.Name, Err: err}
		}
		s.index[f.Name] = i

		f.bit = -1
		if f.Role == RoleConditional {
			if bit >= covered {
				return nil, &FieldError{
					Field: f.Name,
					Err:   fmt.Errorf("%w: presence bit %d is not covered by any earlier bitmap", ErrBitmapUnderflow, bit),
				}
			}
			f.bit = bit
			bit++
		}

		f.bitmap = -1
		switch f.Codec.Kind() {
		case KindBitmap:
			f.bitmap = len(s.bitmaps)
			s.bitmaps = append(s.bitmaps, i)
			covered += BitmapBits
			if f.Role == RolePrimary {
				primaryBitmaps++
			}
		case KindMTI:
			if s.mti < 0 {
				s.mti = i
			}
		}
	}

	if primaryBitmaps != 1 {
		return nil, fmt.Errorf("%w: need exactly one primary bitmap, have %d", ErrInvalidSchema, primaryBitmaps)
	}
	s.conditionals = bit
	return s, nil
}

// checkCodec rejects codec values assembled by hand that their
// constructors would have refused.
func checkCodec(c Codec) error {
	switch c := c.(type) {
	case FixedCodec:
		if c.Length <= 0 {
			return fmt.Errorf("%w: fixed field length %d", ErrInvalidSchema, c.Length)
		}
	case VariableCodec:
		if c.Prefix < 1 || c.Prefix > MaxPrefixDigits {
			return fmt.Errorf("%w: length prefix of %d digits", ErrInvalidSchema, c.Prefix)
		}
		if c.MaxLength < 0 || c.MaxLength > pow10(c.Prefix)-1 {
			return fmt.Errorf("%w: max length %d does not fit a %d digit prefix", ErrInvalidSchema, c.MaxLength, c.Prefix)
		}
	}
	return nil
}

// MustSchema is NewSchema for package-level schema definitions; it panics
// on an invalid layout.
func MustSchema(name string, fields ...Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Name() string {
	return s.name
}

// Len returns the number of fields in the schema.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Fields returns a copy of the schema's entries in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks a field up by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Bitmaps returns how many bitmap fields the schema declares.
func (s *Schema) Bitmaps() int {
	return len(s.bitmaps)
}

// New returns an empty message of this family with every field absent.
func (s *Schema) New() *Message {
	return newMessage(s)
}

// Parse decodes data into a new message of this family.
func (s *Schema) Parse(data string) (*Message, error) {
	return Parse(s, data)
}
