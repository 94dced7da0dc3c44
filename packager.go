package iso8583

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// NewSchemaFromConfig turns a declarative SchemaConfig into a Schema.
func NewSchemaFromConfig(config *SchemaConfig) (*Schema, error) {
	fields := make([]Field, 0, len(config.Fields))
	for i := range config.Fields {
		fc := config.Fields[i]
		fc.normalizeKind()
		codec, err := codecFromConfig(fc)
		if err != nil {
			return nil, &FieldError{Field: fc.Name, Err: err}
		}
		role := RoleConditional
		if fc.Primary || codec.Kind() == KindMTI {
			role = RolePrimary
		}
		fields = append(fields, Field{Name: fc.Name, Label: fc.Label, Codec: codec, Role: role})
	}
	return NewSchema(config.Name, fields...)
}

func codecFromConfig(fc FieldConfig) (Codec, error) {
	switch fc.Kind {
	case "mti":
		return MTI(), nil
	case "bitmap":
		return Bitmap(), nil
	case "string":
		if fc.Length <= 0 {
			return nil, fmt.Errorf("%w: string field needs a positive length", ErrInvalidSchema)
		}
		return FixedString(fc.Length), nil
	case "number":
		if fc.Length <= 0 {
			return nil, fmt.Errorf("%w: number field needs a positive length", ErrInvalidSchema)
		}
		return FixedNumber(fc.Length), nil
	case "fixed":
		if fc.Length <= 0 {
			return nil, fmt.Errorf("%w: fixed field needs a positive length", ErrInvalidSchema)
		}
		side, ok := parsePadSide(fc.PadSide)
		if !ok {
			return nil, fmt.Errorf("%w: unknown pad side %q", ErrInvalidSchema, fc.PadSide)
		}
		if side != PadNone && len(fc.Pad) != 1 {
			return nil, fmt.Errorf("%w: pad must be a single character, got %q", ErrInvalidSchema, fc.Pad)
		}
		var pad byte
		if side != PadNone {
			pad = fc.Pad[0]
		}
		return Fixed(fc.Length, side, pad), nil
	case "var":
		return NewVariable(fc.Prefix, fc.MaxLength)
	default:
		return nil, fmt.Errorf("%w: unknown field kind %q", ErrInvalidSchema, fc.Kind)
	}
}

// LoadSchemaJSON unmarshals a JSON schema definition and builds the Schema.
func LoadSchemaJSON(data []byte) (*Schema, error) {
	var config SchemaConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse schema config: %w", err)
	}
	return NewSchemaFromConfig(&config)
}

// LoadSchemaTOML builds a Schema from a TOML document with a [[fields]]
// array of tables.
func LoadSchemaTOML(data []byte) (*Schema, error) {
	var config SchemaConfig
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidSchema, undecoded)
	}
	return NewSchemaFromConfig(&config)
}

// LoadSchemaYAML builds a Schema from a YAML document.
func LoadSchemaYAML(data []byte) (*Schema, error) {
	var config SchemaConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse schema config: %w", err)
	}
	return NewSchemaFromConfig(&config)
}

// LoadSchemaFile reads a schema definition, choosing the format from the
// file extension (.json, .toml, .yaml or .yml).
func LoadSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadSchemaJSON(data)
	case ".toml":
		return LoadSchemaTOML(data)
	case ".yaml", ".yml":
		return LoadSchemaYAML(data)
	default:
		return nil, fmt.Errorf("%w: unsupported schema file extension %q", ErrInvalidSchema, filepath.Ext(path))
	}
}
