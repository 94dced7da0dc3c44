package iso8583

import (
	"fmt"
	"sync"
)

// SchemaBuilder appends fields in wire order and validates the result once,
// in Build.
type SchemaBuilder struct {
	name   string
	fields []Field
}

func NewSchemaBuilder(name string) *SchemaBuilder {
	return &SchemaBuilder{name: name}
}

// Primary appends a field that is always on the wire.
func (b *SchemaBuilder) Primary(name string, codec Codec, label string) *SchemaBuilder {
	b.fields = append(b.fields, Field{Name: name, Label: label, Codec: codec, Role: RolePrimary})
	return b
}

// Conditional appends a field gated by the next free presence bit.
func (b *SchemaBuilder) Conditional(name string, codec Codec, label string) *SchemaBuilder {
	b.fields = append(b.fields, Field{Name: name, Label: label, Codec: codec, Role: RoleConditional})
	return b
}

func (b *SchemaBuilder) Build() (*Schema, error) {
	return NewSchema(b.name, b.fields...)
}

func (b *SchemaBuilder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

var builderPool = sync.Pool{
	New: func() any {
		return &Builder{
			errors: make([]error, 0, 4),
		}
	},
}

// Builder fills in a message field by field, checking each value against
// its codec as it goes. The first failure is reported by Build.
type Builder struct {
	msg    *Message
	errors []error
}

func NewBuilder(schema *Schema) *Builder {
	b := builderPool.Get().(*Builder)
	b.msg = newMessage(schema)
	b.errors = b.errors[:0]
	return b
}

// Release hands the builder back for reuse. A message obtained from Build
// stays valid.
func (b *Builder) Release() {
	b.msg = nil
	b.errors = b.errors[:0]
	builderPool.Put(b)
}

func (b *Builder) MTI(mti string) *Builder {
	s := b.msg.schema
	if s.mti < 0 {
		b.errors = append(b.errors, fmt.Errorf("%w: schema %q has no MTI field", ErrFieldNotFound, s.name))
		return b
	}
	if len(mti) != MTILength {
		b.errors = append(b.errors, fmt.Errorf("%w: %q", ErrInvalidMTI, mti))
		return b
	}
	return b.Set(s.fields[s.mti].Name, mti)
}

// Set assigns a field. Bitmap fields are only marked present, as with
// Message.Set; their content is recomputed on compose.
func (b *Builder) Set(name, value string) *Builder {
	i, err := b.msg.lookup(name)
	if err != nil {
		b.errors = append(b.errors, err)
		return b
	}
	f := &b.msg.schema.fields[i]
	if f.bitmap < 0 {
		if _, err := f.Codec.Compose(value); err != nil {
			b.errors = append(b.errors, &FieldError{Field: name, Err: err})
			return b
		}
	}
	_ = b.msg.Set(name, value)
	return b
}

func (b *Builder) Build() (*Message, error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}
	msg := b.msg
	b.msg = nil
	return msg, nil
}

func (b *Builder) MustBuild() *Message {
	if len(b.errors) > 0 {
		panic(b.errors[0])
	}
	msg := b.msg
	b.msg = nil
	return msg
}
