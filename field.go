package iso8583

// Field is one entry of a Schema: a named codec, its role and a human
// readable label. Fields are owned by their Schema and never mutated.
type Field struct {
	Name  string
	Label string
	Codec Codec
	Role  Role

	// bit is the presence bit index of a conditional field, -1 for primary.
	bit int
	// bitmap is the ordinal of a bitmap field among the schema's bitmaps,
	// -1 for every other kind.
	bitmap int
}

// Primary reports whether the field is processed regardless of bitmap state.
func (f *Field) Primary() bool {
	return f.Role == RolePrimary
}

// IsBitmap reports whether the field carries a presence vector.
func (f *Field) IsBitmap() bool {
	return f.Codec.Kind() == KindBitmap
}

// Bit returns the presence bit governing a conditional field.
func (f *Field) Bit() (int, bool) {
	if f.Role == RolePrimary {
		return 0, false
	}
	return f.bit, true
}

// FieldValue is one row of Message.Describe.
type FieldValue struct {
	Name    string
	Label   string
	Value   string
	Present bool
}
