// Package resolve maps a single declared field to its emitted TypeScript
// type using a strict ordered fallback chain.
package resolve

import (
	"strings"

	"tsbridge/internal/mappings"
	"tsbridge/internal/registry"
	"tsbridge/internal/schema"
)

// Resolver resolves field descriptors against one registry snapshot.
// Prefix and Suffix wrap every synthesized interface name and must match
// the renderer's naming or nested references will dangle.
type Resolver struct {
	Registry *registry.Registry
	Prefix   string
	Suffix   string
}

// InterfaceName synthesizes the emitted interface name for a declared
// schema name: a trailing "Serializer" is stripped, then the configured
// prefix and suffix are applied.
func (r *Resolver) InterfaceName(declared string) string {
	return r.Prefix + strings.TrimSuffix(declared, "Serializer") + r.Suffix
}

// Resolve produces the TypeScript type for one field. The fallback chain,
// first match wins, evaluated once per field:
//
//  1. kind is a schema registered in the current context -> interface name
//  2. kind is a schema registered in the default context -> interface name
//  3. current context has a field-kind override for kind
//  4. default context has a field-kind override for kind
//  5. owning schema has a per-field-name override in the current context
//  6. static mapping table, "any" when absent
//
// Collection fields resolve by their child kind and get "[]" appended to
// whatever the chain produced.
//
// Note the tier order: a per-field-name override ranks below kind-level
// overrides, so a kind override can shadow a name override that looks more
// specific to the caller. This matches long-standing behavior and is kept
// deliberately.
//
// Resolution is total; there is no error path.
func (r *Resolver) Resolve(fieldName string, d schema.FieldDescriptor, context string, owner schema.Schema) string {
	kind := d.KindIdentifier()
	if d.IsCollection() {
		kind = d.ChildKindIdentifier()
	}

	tsType := r.resolveKind(fieldName, kind, context, owner)

	if d.IsCollection() {
		tsType += "[]"
	}

	return tsType
}

func (r *Resolver) resolveKind(fieldName, kind, context string, owner schema.Schema) string {
	reg := r.Registry

	if reg.HasSchema(context, kind) {
		return r.InterfaceName(kind)
	}

	if reg.HasSchema(registry.DefaultContext, kind) {
		return r.InterfaceName(kind)
	}

	if ts, ok := reg.KindOverride(context, kind); ok {
		return ts
	}

	if ts, ok := reg.KindOverride(registry.DefaultContext, kind); ok {
		return ts
	}

	if ts, ok := reg.NameOverride(context, owner.SchemaName(), fieldName); ok {
		return ts
	}

	return mappings.Lookup(kind)
}
