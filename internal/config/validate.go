package config

import (
	"fmt"
	"strings"

	"tsbridge/internal/diagnostic"
	"tsbridge/internal/mappings"
	"tsbridge/internal/registry"
)

// Validate inspects a parsed schema file and reports findings: malformed
// declarations, dangling nested references, and kinds that will silently
// widen to the "any" fallback. Findings never block generation; errors here
// only gate the check command's exit status.
func Validate(f *File) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	schemasByContext := make(map[string]map[string]bool)
	kindsByContext := make(map[string]map[string]bool)

	for _, ctx := range f.Contexts {
		if schemasByContext[ctx.Name] == nil {
			schemasByContext[ctx.Name] = make(map[string]bool)
			kindsByContext[ctx.Name] = make(map[string]bool)
		}

		for kind := range ctx.FieldTypes {
			kindsByContext[ctx.Name][kind] = true
		}

		for _, def := range ctx.Schemas {
			if schemasByContext[ctx.Name][def.Name] {
				diags.AddWarning("duplicate_schema",
					"schema declared more than once; only the first registration takes effect",
					ctx.Name, def.Name)
			}

			schemasByContext[ctx.Name][def.Name] = true
		}
	}

	for _, ctx := range f.Contexts {
		if len(ctx.Schemas) == 0 {
			diags.AddInfo("empty_context",
				"context declares no schemas; nothing will be emitted for it",
				ctx.Name, "")
		}

		for _, def := range ctx.Schemas {
			validateSchema(&diags, ctx.Name, def, schemasByContext, kindsByContext)
		}
	}

	return diags
}

func validateSchema(
	diags *diagnostic.Diagnostics,
	context string,
	def SchemaDef,
	schemasByContext, kindsByContext map[string]map[string]bool,
) {
	if def.Name == "" {
		diags.AddError("missing_name", "schema declared without a name", context, "")
		return
	}

	for _, fd := range def.Fields {
		subject := def.Name + "." + fd.Name

		if fd.Name == "" {
			diags.AddError("missing_field_name", "field declared without a name", context, def.Name)
			continue
		}

		if fd.Kind == "" {
			diags.AddError("missing_kind", "field declared without a kind", context, subject)
			continue
		}

		// Mirror the resolver's fallback chain to predict where the kind
		// will land.
		switch {
		case schemasByContext[context][fd.Kind],
			schemasByContext[registry.DefaultContext][fd.Kind]:
			// Nested schema reference.
		case kindsByContext[context][fd.Kind],
			kindsByContext[registry.DefaultContext][fd.Kind]:
			// Covered by a field-kind override.
		case def.Overrides[fd.Name] != "":
			// Covered by a per-field-name override.
		case strings.HasSuffix(fd.Kind, "Serializer"):
			diags.AddWarning("dangling_reference",
				fmt.Sprintf("kind %q looks like a schema reference but no such schema is declared; field will emit %q",
					fd.Kind, mappings.Fallback),
				context, subject)
		case !mappings.Known(fd.Kind):
			diags.AddWarning("unknown_kind",
				fmt.Sprintf("kind %q is not in the built-in table and has no override; field will emit %q",
					fd.Kind, mappings.Fallback),
				context, subject)
		}
	}
}
