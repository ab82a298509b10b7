package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"tsbridge/internal/registry"
	"tsbridge/internal/resolve"
	"tsbridge/internal/schema"
)

// Options controls one emission run.
type Options struct {
	// Context selects which context to emit. Ignored when AllContexts is set.
	Context string
	// AllContexts emits every registered context instead of just one.
	AllContexts bool
	// Prefix and Suffix wrap every emitted interface name.
	Prefix string
	Suffix string
}

// DefaultOptions returns options emitting the default context with bare
// interface names.
func DefaultOptions() Options {
	return Options{Context: registry.DefaultContext}
}

// Emitter renders every registered schema and writes the grouped namespace
// blocks to a sink. Rendering reads registry state without mutating it.
type Emitter struct {
	Registry *registry.Registry
	Log      *zap.Logger
}

// NewEmitter creates an Emitter over the given registry.
func NewEmitter(reg *registry.Registry, log *zap.Logger) *Emitter {
	if log == nil {
		log = zap.NewNop()
	}

	return &Emitter{Registry: reg, Log: log}
}

// Emit writes namespace blocks to w. Contexts appear in first-registration
// order, schemas in registration order within each context. Contexts with
// no schemas are skipped.
func (e *Emitter) Emit(w io.Writer, opts Options) error {
	resolver := &resolve.Resolver{
		Registry: e.Registry,
		Prefix:   opts.Prefix,
		Suffix:   opts.Suffix,
	}

	for _, context := range e.Registry.Contexts() {
		if !opts.AllContexts && context != opts.Context {
			continue
		}

		schemas := e.Registry.Schemas(context)
		if len(schemas) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "\ndeclare namespace %s {\n\n", context); err != nil {
			return err
		}

		for _, s := range schemas {
			if _, err := io.WriteString(w, e.renderInterface(s, context, resolver)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "}"); err != nil {
			return err
		}
	}

	return nil
}

// renderInterface builds one complete interface block, including the
// synthetic index signature: the deduplicated union, in first-seen order,
// of every field's resolved type. The widening to a union is deliberate;
// consumers rely on bracket access typing even though it costs precision.
func (e *Emitter) renderInterface(s schema.Schema, context string, resolver *resolve.Resolver) string {
	name := resolver.InterfaceName(s.SchemaName())
	e.Log.Debug("rendering interface",
		zap.String("interface", name),
		zap.String("context", context))

	var (
		lines      []string
		unionTypes []string
	)

	seen := make(map[string]bool)

	for _, field := range s.OrderedFields() {
		tsType := resolver.Resolve(field.Name, field.Descriptor, context, s)
		lines = append(lines, fmt.Sprintf("    %s: %s;", field.Name, tsType))

		if !seen[tsType] {
			seen[tsType] = true
			unionTypes = append(unionTypes, tsType)
		}
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  export interface %s {\n", name))
	sb.WriteString(fmt.Sprintf("    [x: string]: %s;\n", strings.Join(unionTypes, " | ")))
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString("\n  }\n\n")

	return sb.String()
}

// Generate is the file-writing entry point: it truncates path and emits
// into it. The only fatal failures are opening and writing the sink; a
// write error aborts with whatever was already flushed.
func Generate(path string, reg *registry.Registry, log *zap.Logger, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	defer f.Close()

	if err := NewEmitter(reg, log).Emit(f, opts); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}

	return nil
}
