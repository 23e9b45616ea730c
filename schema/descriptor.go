package schema

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	validators "github.com/mthadley/metal-state-validators"
)

// Descriptor is the document form of a checker. A bare scalar names a
// primitive type; a mapping selects a combinator via its type field and
// carries the combinator's configuration:
//
//	type: shapeOf
//	fields:
//	  title: string
//	  count: number
//	  tags:
//	    type: arrayOf
//	    elem: string
type Descriptor struct {
	Type   string                 `yaml:"type"`
	Elem   *Descriptor            `yaml:"elem,omitempty"`
	Value  *Descriptor            `yaml:"value,omitempty"`
	OneOf  []*Descriptor          `yaml:"oneOf,omitempty"`
	Fields map[string]*Descriptor `yaml:"fields,omitempty"`
}

// UnmarshalYAML accepts the scalar shorthand for primitive type names.
func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&d.Type)
	}

	type plain Descriptor
	return node.Decode((*plain)(d))
}

// Parse unmarshals a YAML descriptor document and compiles it into a checker.
func Parse(data []byte) (validators.Checker, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("schema: parse descriptor: %w", err)
	}
	return Compile(&d)
}

// MustParse is Parse for package-level checker declarations; it panics on any
// parse or compile error.
func MustParse(data []byte) validators.Checker {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Compile resolves a descriptor into a checker. Unlike the runtime registry
// factories, Compile reports malformed configuration immediately: descriptors
// are authored documents, and an authoring mistake should fail the
// declaration, not the first validation.
func Compile(d *Descriptor) (validators.Checker, error) {
	if d == nil || d.Type == "" {
		return nil, errors.New("schema: descriptor missing type")
	}

	switch d.Type {
	case "arrayOf":
		if d.Elem == nil {
			return nil, errors.New("schema: arrayOf requires an elem descriptor")
		}
		elem, err := Compile(d.Elem)
		if err != nil {
			return nil, err
		}
		return validators.ArrayOf(elem), nil

	case "objectOf":
		if d.Value == nil {
			return nil, errors.New("schema: objectOf requires a value descriptor")
		}
		value, err := Compile(d.Value)
		if err != nil {
			return nil, err
		}
		return validators.ObjectOf(value), nil

	case "oneOfType":
		if len(d.OneOf) == 0 {
			return nil, errors.New("schema: oneOfType requires at least one alternative")
		}
		types := make([]validators.Checker, 0, len(d.OneOf))
		for _, alt := range d.OneOf {
			c, err := Compile(alt)
			if err != nil {
				return nil, err
			}
			types = append(types, c)
		}
		return validators.OneOfType(types), nil

	case "shapeOf":
		if d.Fields == nil {
			return nil, errors.New("schema: shapeOf requires a fields map")
		}
		fields := make(map[string]validators.Checker, len(d.Fields))
		for key, fd := range d.Fields {
			c, err := Compile(fd)
			if err != nil {
				return nil, fmt.Errorf("schema: field %q: %w", key, err)
			}
			fields[key] = c
		}
		return validators.ShapeOf(fields), nil

	case "instanceOf":
		// A document cannot reference a runtime type.
		return nil, errors.New("schema: instanceOf cannot be expressed in a descriptor")

	default:
		if c, ok := validators.Lookup(d.Type); ok {
			return c, nil
		}
		return nil, fmt.Errorf("schema: unknown type %q", d.Type)
	}
}
