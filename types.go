package iso8583

import (
	"encoding/json"
	"strings"
)

// Kind identifies the wire representation a Codec implements.
type Kind int

const (
	KindMTI Kind = iota
	KindFixed
	KindVariable
	KindBitmap
)

func (k Kind) String() string {
	switch k {
	case KindMTI:
		return "mti"
	case KindFixed:
		return "fixed"
	case KindVariable:
		return "var"
	case KindBitmap:
		return "bitmap"
	default:
		return "unknown"
	}
}

// Role decides whether a field is always processed or gated by a bitmap bit.
type Role int

const (
	RoleConditional Role = iota
	RolePrimary
)

func (r Role) String() string {
	if r == RolePrimary {
		return "primary"
	}
	return "conditional"
}

// PadSide tells a fixed-width codec where its pad character goes.
type PadSide int

const (
	PadNone PadSide = iota
	PadLeft
	PadRight
)

func (p PadSide) String() string {
	switch p {
	case PadLeft:
		return "left"
	case PadRight:
		return "right"
	default:
		return "none"
	}
}

func parsePadSide(s string) (PadSide, bool) {
	switch strings.ToLower(s) {
	case "", "none":
		return PadNone, true
	case "left", "l":
		return PadLeft, true
	case "right", "r":
		return PadRight, true
	default:
		return PadNone, false
	}
}

type LengthIndicatorType int

const (
	LengthIndicatorNone LengthIndicatorType = iota
	LengthIndicatorBinary
	LengthIndicatorASCII
	LengthIndicatorHex
)

// FieldConfig is the declarative form of one schema entry, as found in
// JSON, TOML or YAML schema files.
type FieldConfig struct {
	Name      string `json:"name" toml:"name" yaml:"name"`
	Label     string `json:"label,omitempty" toml:"label" yaml:"label,omitempty"`
	Kind      string `json:"kind" toml:"kind" yaml:"kind"` // "mti", "fixed", "string", "number", "var", "bitmap"
	Length    int    `json:"length,omitempty" toml:"length" yaml:"length,omitempty"`
	Prefix    int    `json:"prefix,omitempty" toml:"prefix" yaml:"prefix,omitempty"` // digits of a var length prefix
	MaxLength int    `json:"max_length,omitempty" toml:"max_length" yaml:"max_length,omitempty"`
	Pad       string `json:"pad,omitempty" toml:"pad" yaml:"pad,omitempty"`
	PadSide   string `json:"pad_side,omitempty" toml:"pad_side" yaml:"pad_side,omitempty"`
	Primary   bool   `json:"primary,omitempty" toml:"primary" yaml:"primary,omitempty"`
}

// UnmarshalJSON accepts the LL/LLL shorthand for var fields, e.g.
// {"kind": "LLVAR"} is read as kind "var" with a 2 digit prefix.
func (fc *FieldConfig) UnmarshalJSON(data []byte) error {
	type Alias FieldConfig
	aux := &struct {
		*Alias
	}{
		Alias: (*Alias)(fc),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	fc.normalizeKind()
	return nil
}

func (fc *FieldConfig) normalizeKind() {
	switch strings.ToUpper(fc.Kind) {
	case "LVAR":
		fc.Kind, fc.Prefix = "var", 1
	case "LLVAR":
		fc.Kind, fc.Prefix = "var", 2
	case "LLLVAR":
		fc.Kind, fc.Prefix = "var", 3
	case "LLLLVAR":
		fc.Kind, fc.Prefix = "var", 4
	default:
		fc.Kind = strings.ToLower(fc.Kind)
	}
}

// SchemaConfig is the declarative form of a whole message family.
type SchemaConfig struct {
	Name   string        `json:"name" toml:"name" yaml:"name"`
	Fields []FieldConfig `json:"fields" toml:"fields" yaml:"fields"`
}

type LengthIndicatorConfig struct {
	Type   LengthIndicatorType `json:"type"`
	Length int                 `json:"length"`
}

const (
	MTILength       = 4
	BitmapHexLength = 16
	BitmapBits      = 64
	MaxPrefixDigits = 4
)
