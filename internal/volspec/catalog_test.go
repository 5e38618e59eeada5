package volspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpec_KnownTypes(t *testing.T) {
	tests := []struct {
		volumeType string
		family     string
	}{
		{"gp2", "gp2"},
		{"gp3", "gp3"},
		{"io1", "io"},
		{"io2", "io"},
		// Lookup is case-insensitive and trims whitespace.
		{"GP2", "gp2"},
		{"  io1  ", "io"},
	}

	for _, tt := range tests {
		spec, ok := Spec(tt.volumeType)
		require.True(t, ok, "volume type %q", tt.volumeType)
		assert.Equal(t, tt.family, spec.Family)
		assert.Equal(t, "SSD", spec.Technology)
	}
}

func TestSpec_UnknownTypes(t *testing.T) {
	// st1/sc1 formulas are not implemented, so the catalog must not
	// list them.
	for _, volumeType := range []string{"st1", "sc1", "standard", ""} {
		_, ok := Spec(volumeType)
		assert.False(t, ok, "volume type %q", volumeType)
	}
}

func TestVolumeTypes_Sorted(t *testing.T) {
	assert.Equal(t, []string{"gp2", "gp3", "io1", "io2"}, VolumeTypes())
}

func TestSpec_Bounds(t *testing.T) {
	gp3, ok := Spec("gp3")
	require.True(t, ok)
	require.NotNil(t, gp3.SizeGB)
	assert.Equal(t, Bounds{Min: 1, Max: 16384}, *gp3.SizeGB)
	require.NotNil(t, gp3.ProvisionedIOPS)
	assert.Equal(t, Bounds{Min: 3000, Max: 64000}, *gp3.ProvisionedIOPS)
	require.NotNil(t, gp3.ProvisionedThroughput)
	assert.Equal(t, Bounds{Min: 125, Max: 1000}, *gp3.ProvisionedThroughput)

	io1, ok := Spec("io1")
	require.True(t, ok)
	assert.True(t, io1.RequiresProvisionedIOPS)
	assert.False(t, io1.AcceptsSize)
	require.NotNil(t, io1.ProvisionedIOPS)
	assert.Equal(t, Bounds{Min: 100, Max: 64000}, *io1.ProvisionedIOPS)

	gp2, ok := Spec("gp2")
	require.True(t, ok)
	assert.True(t, gp2.AcceptsSize)
	assert.False(t, gp2.AcceptsProvisionedIOPS)
	assert.False(t, gp2.AcceptsProvisionedThroughput)
}
