package volspec

import (
	"errors"
	"fmt"

	"github.com/cloudperf/ebs-limits/internal/limits"
)

// ErrUnknownVolumeType is returned when the requested volume type is
// not in the catalog.
var ErrUnknownVolumeType = errors.New("unknown volume type")

// ErrUnsupportedInput is returned when an input is supplied that the
// volume family does not accept, or a required input is missing.
var ErrUnsupportedInput = errors.New("unsupported input")

// Inputs is the provisioned configuration of a volume as supplied by
// the caller. Pointer fields are nil when absent.
type Inputs struct {
	SizeGB                uint32
	ProvisionedIOPS       *uint32
	ProvisionedThroughput *uint32
}

// Calculate routes the inputs to the calculator for the given volume
// type and returns the computed envelope.
//
// Inputs the family does not accept are rejected rather than silently
// ignored, so a caller asking for gp2 with provisioned IOPS learns the
// request is malformed instead of getting an answer that ignored half
// of it.
func Calculate(volumeType string, in Inputs) (limits.Limit, error) {
	spec, ok := Spec(volumeType)
	if !ok {
		return limits.Limit{}, fmt.Errorf("%w: %q", ErrUnknownVolumeType, volumeType)
	}

	if in.ProvisionedIOPS != nil && !spec.AcceptsProvisionedIOPS {
		return limits.Limit{}, fmt.Errorf("%w: %s does not accept provisioned IOPS", ErrUnsupportedInput, spec.VolumeType)
	}
	if in.ProvisionedThroughput != nil && !spec.AcceptsProvisionedThroughput {
		return limits.Limit{}, fmt.Errorf("%w: %s does not accept provisioned throughput", ErrUnsupportedInput, spec.VolumeType)
	}
	if spec.RequiresProvisionedIOPS && in.ProvisionedIOPS == nil {
		return limits.Limit{}, fmt.Errorf("%w: %s requires provisioned IOPS", ErrUnsupportedInput, spec.VolumeType)
	}

	switch spec.Family {
	case "gp2":
		return limits.GP2(in.SizeGB)
	case "gp3":
		return limits.GP3(in.SizeGB, in.ProvisionedIOPS, in.ProvisionedThroughput)
	case "io":
		return limits.IO(*in.ProvisionedIOPS)
	default:
		return limits.Limit{}, fmt.Errorf("%w: %q", ErrUnknownVolumeType, volumeType)
	}
}
