package main

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudperf/ebs-limits/internal/limits"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_GP2Text(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-type", "gp2", "-size", "20")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "baseline IOPS:    100")
	assert.Contains(t, stdout, "baseline speed:   25 MiB/s")
	assert.Contains(t, stdout, "burst IOPS:       3000")
	assert.Contains(t, stdout, "burst speed:      128 MiB/s")
}

func TestRun_NoBurstText(t *testing.T) {
	code, stdout, _ := runCLI(t, "-type", "gp2", "-size", "1500")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "burst:            none")
}

func TestRun_JSON(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-type", "gp3", "-size", "1000", "-iops", "16000", "-throughput", "1000", "-json")
	require.Equal(t, 0, code, stderr)

	var limit limits.Limit
	require.NoError(t, json.Unmarshal([]byte(stdout), &limit))
	assert.Equal(t, limits.Limit{IOPS: 16000, Speed: 1000}, limit)
}

// TestRun_AbsentFlagsStayAbsent checks that unset -iops/-throughput
// reach the calculator as absent, not zero: gp3 falls back to its
// baselines instead of failing range validation.
func TestRun_AbsentFlagsStayAbsent(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-type", "gp3", "-size", "1500", "-json")
	require.Equal(t, 0, code, stderr)

	var limit limits.Limit
	require.NoError(t, json.Unmarshal([]byte(stdout), &limit))
	assert.Equal(t, limits.Limit{IOPS: 3000, Speed: 125}, limit)
}

func TestRun_ValidationFailure(t *testing.T) {
	code, _, stderr := runCLI(t, "-type", "io1", "-iops", "20")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "out of range")
}

func TestRun_UnknownType(t *testing.T) {
	code, _, stderr := runCLI(t, "-type", "st1", "-size", "500")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown volume type")
}

func TestRun_MissingType(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "-type is required")
}

func TestRun_List(t *testing.T) {
	code, stdout, _ := runCLI(t, "-list")
	require.Equal(t, 0, code)
	for _, name := range []string{"gp2", "gp3", "io1", "io2"} {
		assert.Contains(t, stdout, name)
	}
	assert.Contains(t, stdout, "1-16384 GiB")
}
