package config

import "tsbridge/internal/registry"

// File represents the root of a YAML schema declaration file. This is the
// declarative equivalent of annotating serializer classes in application
// code: loading a file populates a registry the same way load-time
// registration calls would.
type File struct {
	// Version of the config schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Contexts lists the namespace partitions to register, in order.
	Contexts []Context `yaml:"contexts"`
}

// Context declares one namespace partition.
type Context struct {
	// Name is the context key. Defaults to "default".
	Name string `yaml:"name,omitempty"`

	// FieldTypes maps field kinds to TypeScript types within this context.
	FieldTypes map[string]string `yaml:"field_types,omitempty"`

	// Schemas lists the schemas to register, in output order.
	Schemas []SchemaDef `yaml:"schemas,omitempty"`
}

// SchemaDef declares one schema and its ordered fields.
type SchemaDef struct {
	// Name is the declared schema name (e.g. "UserSerializer").
	Name string `yaml:"name"`

	// Fields lists the schema's fields in declaration order.
	Fields []FieldDef `yaml:"fields"`

	// Overrides maps field names on this schema to literal TypeScript
	// types. The escape hatch for computed and read-only properties with
	// no declared kind.
	Overrides map[string]string `yaml:"overrides,omitempty"`
}

// FieldDef declares one field.
type FieldDef struct {
	// Name is the field name as emitted.
	Name string `yaml:"name"`

	// Kind is the field's declared kind: a scalar kind from the built-in
	// table, an overridden kind, or the name of another declared schema
	// (a nested reference).
	Kind string `yaml:"kind"`

	// Many marks the field as a collection of Kind.
	Many bool `yaml:"many,omitempty"`
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Contexts {
		if f.Contexts[i].Name == "" {
			f.Contexts[i].Name = registry.DefaultContext
		}
	}
}
