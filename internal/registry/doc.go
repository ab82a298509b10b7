// Package registry holds registered schemas and type overrides, partitioned
// by context.
//
// A context is an independent namespace with one exception: the "default"
// context's schemas and field-kind overrides are consulted as a global
// fallback for every other context during resolution.
//
// All registration operations are idempotent and never return errors;
// malformed registrations are logged and skipped.
package registry
