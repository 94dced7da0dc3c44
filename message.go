package iso8583

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/rs/zerolog"
)

// Message is one concrete message: an optional value per schema field.
// A Message is not safe for concurrent mutation; callers sharing one must
// serialize writes themselves.
type Message struct {
	schema  *Schema
	values  []string
	present []bool
}

func newMessage(s *Schema) *Message {
	return &Message{
		schema:  s,
		values:  make([]string, len(s.fields)),
		present: make([]bool, len(s.fields)),
	}
}

// NewMessage creates an empty message of the given family and applies opts.
func NewMessage(s *Schema, opts ...MessageOption) (*Message, error) {
	m := newMessage(s)
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Schema returns the family this message belongs to.
func (m *Message) Schema() *Schema {
	return m.schema
}

func (m *Message) lookup(name string) (int, error) {
	i, ok := m.schema.index[name]
	if !ok {
		return 0, &FieldError{Field: name, Err: ErrFieldNotFound}
	}
	return i, nil
}

// Get returns the value of a field and whether it is present.
func (m *Message) Get(name string) (string, bool) {
	i, ok := m.schema.index[name]
	if !ok || !m.present[i] {
		return "", false
	}
	return m.values[i], true
}

// Has reports whether the named field is present.
func (m *Message) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Set assigns a value to a field, making it present. Only the field name is
// checked here; length limits are enforced when the message is composed.
//
// Setting a bitmap field only marks it present, which forces a secondary
// bitmap onto the wire. The value itself is discarded: bitmaps are always
// rebuilt from the fields that are present.
func (m *Message) Set(name, value string) error {
	i, err := m.lookup(name)
	if err != nil {
		return err
	}
	if m.schema.fields[i].bitmap >= 0 {
		value = ""
	}
	m.values[i] = value
	m.present[i] = true
	return nil
}

// Unset marks a field absent.
func (m *Message) Unset(name string) error {
	i, err := m.lookup(name)
	if err != nil {
		return err
	}
	m.values[i] = ""
	m.present[i] = false
	return nil
}

// MTI returns the message type indicator, if the schema has one and it is set.
func (m *Message) MTI() (string, bool) {
	if m.schema.mti < 0 || !m.present[m.schema.mti] {
		return "", false
	}
	return m.values[m.schema.mti], true
}

// ToMap returns the field values keyed by name. Absent fields are left out
// unless includeAbsent is set, in which case they map to nil.
func (m *Message) ToMap(includeAbsent bool) map[string]*string {
	out := make(map[string]*string, len(m.values))
	for i := range m.schema.fields {
		if m.present[i] {
			v := m.values[i]
			out[m.schema.fields[i].Name] = &v
		} else if includeAbsent {
			out[m.schema.fields[i].Name] = nil
		}
	}
	return out
}

// Describe yields a row per field in schema order. Absent fields are
// skipped unless includeAbsent is set. The sequence can be ranged over any
// number of times.
func (m *Message) Describe(includeAbsent bool) iter.Seq[FieldValue] {
	return func(yield func(FieldValue) bool) {
		for i := range m.schema.fields {
			if !m.present[i] && !includeAbsent {
				continue
			}
			f := &m.schema.fields[i]
			fv := FieldValue{
				Name:    f.Name,
				Label:   f.Label,
				Value:   m.values[i],
				Present: m.present[i],
			}
			if !yield(fv) {
				return
			}
		}
	}
}

// Compose encodes the message with its own schema.
func (m *Message) Compose() (string, error) {
	return Compose(m.schema, m)
}

// Clone creates a deep copy of the message sharing the same schema.
func (m *Message) Clone() *Message {
	clone := newMessage(m.schema)
	copy(clone.values, m.values)
	copy(clone.present, m.present)
	return clone
}

// CreateResponse clones the message and turns its request MTI into the
// matching response by bumping the function digit, e.g. 1100 -> 1110 or
// 0220 -> 0230.
func (m *Message) CreateResponse() (*Message, error) {
	mti, ok := m.MTI()
	if !ok || len(mti) != MTILength {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMTI, mti)
	}
	fn := mti[2]
	if fn < '0' || fn > '9' || (fn-'0')%2 != 0 {
		return nil, fmt.Errorf("%w: cannot create response from MTI %s", ErrInvalidMTI, mti)
	}

	res := m.Clone()
	b := []byte(mti)
	b[2] = fn + 1
	res.values[m.schema.mti] = string(b)
	return res, nil
}

// LogValue implements the slog.LogValuer interface for structured logging.
func (m *Message) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 2)
	attrs = append(attrs, slog.String("schema", m.schema.name))

	fieldArgs := make([]any, 0, len(m.values))
	for fv := range m.Describe(false) {
		if m.schema.fields[m.schema.index[fv.Name]].IsBitmap() {
			continue
		}
		fieldArgs = append(fieldArgs, slog.String(fv.Name, fv.Value))
	}
	attrs = append(attrs, slog.Group("fields", fieldArgs...))
	return slog.GroupValue(attrs...)
}

// MarshalZerologObject lets a message be logged with zerolog's Object.
// Bitmaps are left out; they are implied by the fields that are present.
func (m *Message) MarshalZerologObject(e *zerolog.Event) {
	e.Str("schema", m.schema.name)
	fields := zerolog.Dict()
	for fv := range m.Describe(false) {
		if m.schema.fields[m.schema.index[fv.Name]].IsBitmap() {
			continue
		}
		fields.Str(fv.Name, fv.Value)
	}
	e.Dict("fields", fields)
}
