// Package limits computes the performance envelope of AWS EBS volumes
// from their provisioned configuration.
//
// Each volume family is a pure function of its inputs: the calculators
// keep no state, perform no I/O, and are safe to call concurrently.
// All arithmetic is unsigned integer arithmetic with truncating
// division, matching the published AWS volume performance rules.
package limits

// Limit is the computed performance envelope for a volume.
//
// Speed values are in MiB/s. BurstIOPS and BurstSpeed are zero for
// configurations without a burst tier; that is a valid result, not an
// error.
type Limit struct {
	IOPS       uint32 `json:"iops"`
	Speed      uint32 `json:"speed"`
	BurstIOPS  uint32 `json:"burst_iops"`
	BurstSpeed uint32 `json:"burst_speed"`
}

// HasBurst reports whether this envelope includes a burst tier.
func (l Limit) HasBurst() bool {
	return l.BurstIOPS > 0 || l.BurstSpeed > 0
}
