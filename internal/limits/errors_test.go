package limits

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutOfRangeError_Fields(t *testing.T) {
	_, err := GP2(0)
	require.Error(t, err)

	var oor *OutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, uint32(0), oor.Value)
	assert.Equal(t, uint32(1), oor.Min)
	assert.Equal(t, uint32(16384), oor.Max)
	assert.Contains(t, oor.Error(), "volume size")
}

func TestRatioViolationError_Fields(t *testing.T) {
	iops := uint32(4000)
	_, err := GP3(7, &iops, nil)
	require.Error(t, err)

	var rv *RatioViolationError
	require.True(t, errors.As(err, &rv))
	assert.Equal(t, uint32(4000), rv.Value)
	assert.Contains(t, rv.Error(), "500:1")
}

// TestErrorKinds_Disjoint checks that the two kinds never match each
// other, so callers can branch without string matching.
func TestErrorKinds_Disjoint(t *testing.T) {
	_, oorErr := IO(20)
	require.Error(t, oorErr)
	assert.True(t, IsOutOfRange(oorErr))
	assert.False(t, IsRatioViolation(oorErr))

	throughput := uint32(1000)
	_, ratioErr := GP3(1000, nil, &throughput)
	require.Error(t, ratioErr)
	assert.True(t, IsRatioViolation(ratioErr))
	assert.False(t, IsOutOfRange(ratioErr))
}

func TestErrorKinds_Wrapped(t *testing.T) {
	_, err := GP2(20000)
	require.Error(t, err)
	wrapped := fmt.Errorf("computing envelope: %w", err)
	assert.True(t, IsOutOfRange(wrapped))
}
