// Package schema defines the collaborator interface between the generator
// and the host application's serializer object model.
//
// The generator never introspects host types directly; it only consumes:
//   - a declared schema name
//   - an ordered (name, descriptor) field list
//   - per field: kind identifier, collection flag, child kind
package schema
