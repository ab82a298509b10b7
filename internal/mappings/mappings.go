// Package mappings holds the static scalar-kind to TypeScript type table.
//
// The table is process-wide and immutable; applications extend type
// resolution through registry overrides, never by mutating this table.
package mappings

// Fallback is the TypeScript type emitted for unrecognized kinds.
const Fallback = "any"

// defaults maps serializer field kinds to TypeScript type names.
var defaults = map[string]string{
	"BooleanField":     "boolean",
	"NullBooleanField": "boolean",

	"CharField":      "string",
	"EmailField":     "string",
	"RegexField":     "string",
	"SlugField":      "string",
	"URLField":       "string",
	"UUIDField":      "string",
	"FilePathField":  "string",
	"IPAddressField": "string",

	"IntegerField": "number",
	"FloatField":   "number",
	"DecimalField": "number",

	// Date and time kinds serialize to ISO strings on the wire.
	"DateTimeField": "string",
	"DateField":     "string",
	"TimeField":     "string",
	"DurationField": "string",
}

// Lookup resolves a field kind to its TypeScript type. Total: unknown kinds
// resolve to Fallback rather than erroring.
func Lookup(kind string) string {
	if ts, ok := defaults[kind]; ok {
		return ts
	}

	return Fallback
}

// Known reports whether the kind has a non-fallback entry. Used by
// diagnostics to flag fields that would silently widen to "any".
func Known(kind string) bool {
	_, ok := defaults[kind]
	return ok
}

// Kinds returns the known kind identifiers. Order is unspecified; callers
// sort for display.
func Kinds() []string {
	out := make([]string, 0, len(defaults))
	for kind := range defaults {
		out = append(out, kind)
	}

	return out
}
