// Package config loads declarative YAML schema files and applies them to a
// registry.
//
// A schema file is the setup-phase equivalent of annotating serializer
// classes: each declared context, schema, field-kind override, and
// per-field override becomes one registration call.
package config
