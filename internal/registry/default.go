package registry

// Default is the process-wide registry used by the package-level
// registration helpers. Applications that want test isolation construct
// their own Registry with New and inject it into the emitter instead.
var Default = New()

// RegisterSchema registers a schema in the Default registry.
func RegisterSchema(context string, v any) {
	Default.RegisterSchema(context, v)
}

// RegisterFieldType registers a field-kind override in the Default registry.
func RegisterFieldType(context, kind, tsType string) {
	Default.RegisterFieldType(context, kind, tsType)
}

// RegisterOverrides registers per-field-name overrides in the Default
// registry.
func RegisterOverrides(context string, v any, overrides map[string]string) {
	Default.RegisterOverrides(context, v, overrides)
}
