package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tsbridge/internal/registry"
	"tsbridge/internal/schema"
)

// LoadFile loads and parses a YAML schema declaration file from the given
// path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// Apply registers everything the file declares into reg. Field-kind
// overrides register before schemas so that resolution sees a fully
// populated context; registration semantics (idempotence, silent skip of
// malformed entries) are the registry's.
func Apply(f *File, reg *registry.Registry) {
	for _, ctx := range f.Contexts {
		for kind, tsType := range ctx.FieldTypes {
			reg.RegisterFieldType(ctx.Name, kind, tsType)
		}

		for _, def := range ctx.Schemas {
			s := buildSchema(def)
			reg.RegisterSchema(ctx.Name, s)
			reg.RegisterOverrides(ctx.Name, s, def.Overrides)
		}
	}
}

func buildSchema(def SchemaDef) *schema.StaticSchema {
	fields := make([]schema.Field, 0, len(def.Fields))

	for _, fd := range def.Fields {
		var desc schema.FieldDescriptor
		if fd.Many {
			desc = schema.ListField{Child: fd.Kind}
		} else {
			desc = schema.ScalarField{Kind: fd.Kind}
		}

		fields = append(fields, schema.Field{Name: fd.Name, Descriptor: desc})
	}

	return &schema.StaticSchema{Name: def.Name, Fields: fields}
}
