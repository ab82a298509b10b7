package registry

import (
	"go.uber.org/zap"

	"tsbridge/internal/schema"
)

// DefaultContext is the shared context consulted as a global fallback for
// every other context.
const DefaultContext = "default"

// Registry holds all registered schemas and overrides, partitioned by
// context. Registration is expected to fully precede generation; the
// Registry is not internally locked and must not be mutated while an
// emitter is reading it.
type Registry struct {
	// contextOrder preserves first-registration order for emission.
	contextOrder []string

	// schemas holds the ordered schema list per context. A list rather than
	// a set: declaration order determines output order.
	schemas map[string][]schema.Schema

	// kinds maps context -> field kind -> TypeScript type.
	kinds map[string]map[string]string

	// names maps context -> schema name -> field name -> TypeScript type.
	names map[string]map[string]map[string]string

	log *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report skipped registrations.
func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		schemas: make(map[string][]schema.Schema),
		kinds:   make(map[string]map[string]string),
		names:   make(map[string]map[string]map[string]string),
		log:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RegisterSchema appends a schema to the context's list. Values that do not
// implement schema.Schema are skipped with a log line rather than an error;
// decorative or speculative registration calls stay unobtrusive. Duplicate
// registration of the same schema name in one context is a silent no-op.
func (r *Registry) RegisterSchema(context string, v any) {
	s, ok := v.(schema.Schema)
	if !ok {
		r.log.Warn("skipping registration: value does not implement schema.Schema",
			zap.String("context", context))

		return
	}

	for _, existing := range r.schemas[context] {
		if existing.SchemaName() == s.SchemaName() {
			return
		}
	}

	r.touchContext(context)
	r.schemas[context] = append(r.schemas[context], s)
}

// RegisterFieldType maps a field kind to a TypeScript type within a context.
// The first registration for a kind wins; later duplicates are ignored.
func (r *Registry) RegisterFieldType(context, kind, tsType string) {
	r.touchContext(context)

	if r.kinds[context] == nil {
		r.kinds[context] = make(map[string]string)
	}

	if _, exists := r.kinds[context][kind]; !exists {
		r.kinds[context][kind] = tsType
	}
}

// RegisterOverrides merges per-field-name type overrides for one schema into
// the context. Empty override maps are ignored. Only the first override map
// registered for a schema takes effect.
func (r *Registry) RegisterOverrides(context string, v any, overrides map[string]string) {
	if len(overrides) == 0 {
		return
	}

	s, ok := v.(schema.Schema)
	if !ok {
		r.log.Warn("skipping overrides: value does not implement schema.Schema",
			zap.String("context", context))

		return
	}

	r.touchContext(context)

	if r.names[context] == nil {
		r.names[context] = make(map[string]map[string]string)
	}

	if _, exists := r.names[context][s.SchemaName()]; !exists {
		r.names[context][s.SchemaName()] = overrides
	}
}

// Contexts returns context keys in first-registration order.
func (r *Registry) Contexts() []string {
	return r.contextOrder
}

// Schemas returns the ordered schema list for a context.
func (r *Registry) Schemas(context string) []schema.Schema {
	return r.schemas[context]
}

// HasSchema reports whether a schema with the given declared name is
// registered in the context.
func (r *Registry) HasSchema(context, name string) bool {
	for _, s := range r.schemas[context] {
		if s.SchemaName() == name {
			return true
		}
	}

	return false
}

// KindOverride returns the context's field-kind override for kind, if any.
func (r *Registry) KindOverride(context, kind string) (string, bool) {
	ts, ok := r.kinds[context][kind]
	return ts, ok
}

// NameOverride returns the per-field-name override for a field on a schema
// in the context, if any.
func (r *Registry) NameOverride(context, schemaName, fieldName string) (string, bool) {
	ts, ok := r.names[context][schemaName][fieldName]
	return ts, ok
}

func (r *Registry) touchContext(context string) {
	for _, c := range r.contextOrder {
		if c == context {
			return
		}
	}

	r.contextOrder = append(r.contextOrder, context)
}
