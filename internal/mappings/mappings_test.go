package mappings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	assert.Equal(t, "number", Lookup("IntegerField"))
	assert.Equal(t, "string", Lookup("CharField"))
	assert.Equal(t, "boolean", Lookup("BooleanField"))

	// Wire format for date/time kinds is an ISO string.
	assert.Equal(t, "string", Lookup("DateTimeField"))
	assert.Equal(t, "string", Lookup("DurationField"))
}

func TestLookup_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, Fallback, Lookup("GeoPointField"))
	assert.Equal(t, Fallback, Lookup(""))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("UUIDField"))
	assert.False(t, Known("GeoPointField"))
}

func TestKinds_CoversTable(t *testing.T) {
	kinds := Kinds()

	assert.NotEmpty(t, kinds)
	for _, kind := range kinds {
		assert.True(t, Known(kind))
		assert.NotEqual(t, Fallback, Lookup(kind))
	}
}
