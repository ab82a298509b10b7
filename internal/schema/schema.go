package schema

// Schema is the contract the generator requires from the host application's
// serializer object model. Implementations supply a declared name and the
// ordered field list; ordering determines output order.
type Schema interface {
	// SchemaName returns the declared class name (e.g. "UserSerializer").
	SchemaName() string
	// OrderedFields returns the fields in declaration order. For model-backed
	// schemas this is expected to already include computed/runtime fields;
	// collecting those is the host's responsibility, not the generator's.
	OrderedFields() []Field
}

// Field pairs a field name with its descriptor.
type Field struct {
	Name       string
	Descriptor FieldDescriptor
}

// FieldDescriptor describes one declared field. Kinds are plain string
// identifiers; a kind that names a registered schema is treated as a nested
// schema reference during resolution.
type FieldDescriptor interface {
	// KindIdentifier returns the field's declared kind (e.g. "IntegerField",
	// or a schema name such as "AddressSerializer").
	KindIdentifier() string
	// IsCollection reports whether the field wraps a child kind in a list.
	IsCollection() bool
	// ChildKindIdentifier returns the wrapped kind for collection fields.
	// Undefined for non-collection fields.
	ChildKindIdentifier() string
}

// ScalarField is a plain single-valued field of some kind.
type ScalarField struct {
	Kind string
}

func (f ScalarField) KindIdentifier() string      { return f.Kind }
func (f ScalarField) IsCollection() bool          { return false }
func (f ScalarField) ChildKindIdentifier() string { return "" }

// ListField is a collection field wrapping a child kind.
type ListField struct {
	Child string
}

func (f ListField) KindIdentifier() string      { return f.Child }
func (f ListField) IsCollection() bool          { return true }
func (f ListField) ChildKindIdentifier() string { return f.Child }

// StaticSchema is a Schema built from literal data. It backs the declarative
// config loader and is convenient in tests.
type StaticSchema struct {
	Name   string
	Fields []Field
}

func (s *StaticSchema) SchemaName() string     { return s.Name }
func (s *StaticSchema) OrderedFields() []Field { return s.Fields }
