package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsbridge/internal/registry"
	"tsbridge/internal/schema"
)

func emit(t *testing.T, reg *registry.Registry, opts Options) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, NewEmitter(reg, nil).Emit(&sb, opts))

	return sb.String()
}

func TestEmit_UserExample(t *testing.T) {
	reg := registry.New()
	reg.RegisterSchema("default", &schema.StaticSchema{
		Name: "UserSerializer",
		Fields: []schema.Field{
			{Name: "id", Descriptor: schema.ScalarField{Kind: "IntegerField"}},
			{Name: "tags", Descriptor: schema.ListField{Child: "CharField"}},
		},
	})

	want := "\ndeclare namespace default {\n\n" +
		"  export interface User {\n" +
		"    [x: string]: number | string[];\n" +
		"    id: number;\n" +
		"    tags: string[];\n" +
		"  }\n\n" +
		"}"

	assert.Equal(t, want, emit(t, reg, DefaultOptions()))
}

func TestEmit_NestedSchemaReference(t *testing.T) {
	reg := registry.New()
	reg.RegisterSchema("default", &schema.StaticSchema{
		Name: "AddressSerializer",
		Fields: []schema.Field{
			{Name: "street", Descriptor: schema.ScalarField{Kind: "CharField"}},
		},
	})
	reg.RegisterSchema("default", &schema.StaticSchema{
		Name: "UserSerializer",
		Fields: []schema.Field{
			{Name: "address", Descriptor: schema.ScalarField{Kind: "AddressSerializer"}},
		},
	})

	out := emit(t, reg, DefaultOptions())

	assert.Contains(t, out, "    address: Address;")
	assert.Contains(t, out, "  export interface Address {")
	assert.NotContains(t, out, "Address[]")
}

func TestEmit_Deterministic(t *testing.T) {
	reg := registry.New()
	reg.RegisterSchema("default", &schema.StaticSchema{
		Name: "UserSerializer",
		Fields: []schema.Field{
			{Name: "id", Descriptor: schema.ScalarField{Kind: "IntegerField"}},
			{Name: "name", Descriptor: schema.ScalarField{Kind: "CharField"}},
		},
	})

	first := emit(t, reg, DefaultOptions())
	second := emit(t, reg, DefaultOptions())

	assert.Equal(t, first, second)
}

func TestEmit_IndexSignatureDeduplicatesFirstSeen(t *testing.T) {
	// Field types resolve to {number, string, number, boolean}; the index
	// signature is the first-seen deduplicated union.
	reg := registry.New()
	reg.RegisterSchema("default", &schema.StaticSchema{
		Name: "SampleSerializer",
		Fields: []schema.Field{
			{Name: "a", Descriptor: schema.ScalarField{Kind: "IntegerField"}},
			{Name: "b", Descriptor: schema.ScalarField{Kind: "CharField"}},
			{Name: "c", Descriptor: schema.ScalarField{Kind: "FloatField"}},
			{Name: "d", Descriptor: schema.ScalarField{Kind: "BooleanField"}},
		},
	})

	out := emit(t, reg, DefaultOptions())

	assert.Contains(t, out, "    [x: string]: number | string | boolean;\n")
}

func TestEmit_PrefixSuffixAppliedToNestedReferences(t *testing.T) {
	// Synthesized names must match the declaration names exactly, or
	// nested references dangle.
	reg := registry.New()
	reg.RegisterSchema("default", &schema.StaticSchema{
		Name: "AddressSerializer",
		Fields: []schema.Field{
			{Name: "street", Descriptor: schema.ScalarField{Kind: "CharField"}},
		},
	})
	reg.RegisterSchema("default", &schema.StaticSchema{
		Name: "UserSerializer",
		Fields: []schema.Field{
			{Name: "address", Descriptor: schema.ScalarField{Kind: "AddressSerializer"}},
		},
	})

	out := emit(t, reg, Options{Context: "default", Prefix: "I", Suffix: "Dto"})

	assert.Contains(t, out, "  export interface IAddressDto {")
	assert.Contains(t, out, "    address: IAddressDto;")
}

func TestEmit_ContextFilter(t *testing.T) {
	reg := registry.New()
	reg.RegisterSchema("default", &schema.StaticSchema{Name: "USerializer",
		Fields: []schema.Field{{Name: "id", Descriptor: schema.ScalarField{Kind: "IntegerField"}}}})
	reg.RegisterSchema("internal", &schema.StaticSchema{Name: "VSerializer",
		Fields: []schema.Field{{Name: "id", Descriptor: schema.ScalarField{Kind: "IntegerField"}}}})

	out := emit(t, reg, Options{Context: "internal"})

	assert.Contains(t, out, "declare namespace internal {")
	assert.NotContains(t, out, "declare namespace default {")
}

func TestEmit_AllContexts_RegistrationOrder(t *testing.T) {
	reg := registry.New()
	reg.RegisterSchema("internal", &schema.StaticSchema{Name: "VSerializer",
		Fields: []schema.Field{{Name: "id", Descriptor: schema.ScalarField{Kind: "IntegerField"}}}})
	reg.RegisterSchema("default", &schema.StaticSchema{Name: "USerializer",
		Fields: []schema.Field{{Name: "id", Descriptor: schema.ScalarField{Kind: "IntegerField"}}}})

	out := emit(t, reg, Options{AllContexts: true})

	internalAt := strings.Index(out, "declare namespace internal {")
	defaultAt := strings.Index(out, "declare namespace default {")
	require.GreaterOrEqual(t, internalAt, 0)
	require.GreaterOrEqual(t, defaultAt, 0)
	assert.Less(t, internalAt, defaultAt)
}

func TestGenerate_WritesAndOverwritesFile(t *testing.T) {
	reg := registry.New()
	reg.RegisterSchema("default", &schema.StaticSchema{
		Name: "UserSerializer",
		Fields: []schema.Field{
			{Name: "id", Descriptor: schema.ScalarField{Kind: "IntegerField"}},
		},
	})

	path := filepath.Join(t.TempDir(), "types.d.ts")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0o644))

	require.NoError(t, Generate(path, reg, nil, DefaultOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "export interface User {")
	assert.NotContains(t, string(data), "stale content")
}
