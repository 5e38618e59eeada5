package limits

// gp3 volume constraints. Baseline performance is included with the
// volume; IOPS and throughput above baseline are provisioned
// explicitly, subject to cross-field ratio limits.
const (
	gp3MinSizeGB = 1
	gp3MaxSizeGB = 16384

	gp3BaselineIOPS = 3000
	gp3MaxIOPS      = 64000
	gp3IOPSPerGB    = 500 // maximum IOPS:size ratio

	gp3BaselineSpeed  = 125
	gp3MaxSpeed       = 1000
	gp3IOPSPerSpeedMB = 4 // IOPS must be at least 4x throughput
)

// GP3 computes the performance envelope of a gp3 volume.
//
// provisionedIOPS and provisionedThroughput are nil when the volume
// was created without explicit provisioning, in which case the family
// baselines (3000 IOPS, 125 MiB/s) apply. Provisioned values are
// validated against their absolute bounds and against the family's
// ratio constraints: at most 500 IOPS per GiB of volume size, and
// throughput no greater than a quarter of the resolved IOPS. The
// throughput ratio is checked against the resolved IOPS value, so a
// high provisioned throughput is rejected even when IOPS was left at
// baseline.
func GP3(sizeGB uint32, provisionedIOPS, provisionedThroughput *uint32) (Limit, error) {
	if sizeGB < gp3MinSizeGB || sizeGB > gp3MaxSizeGB {
		return Limit{}, &OutOfRangeError{Field: "volume size (GiB)", Value: sizeGB, Min: gp3MinSizeGB, Max: gp3MaxSizeGB}
	}

	iops := uint32(gp3BaselineIOPS)
	if provisionedIOPS != nil {
		iops = *provisionedIOPS
		if iops < gp3BaselineIOPS || iops > gp3MaxIOPS {
			return Limit{}, &OutOfRangeError{Field: "provisioned IOPS", Value: iops, Min: gp3BaselineIOPS, Max: gp3MaxIOPS}
		}
		if iops/sizeGB > gp3IOPSPerGB {
			return Limit{}, &RatioViolationError{
				Field:      "provisioned IOPS",
				Value:      iops,
				Constraint: "IOPS-to-size ratio must not exceed 500:1",
			}
		}
	}

	speed := uint32(gp3BaselineSpeed)
	if provisionedThroughput != nil {
		speed = *provisionedThroughput
		if speed < gp3BaselineSpeed || speed > gp3MaxSpeed {
			return Limit{}, &OutOfRangeError{Field: "provisioned throughput (MiB/s)", Value: speed, Min: gp3BaselineSpeed, Max: gp3MaxSpeed}
		}
		if iops/speed < gp3IOPSPerSpeedMB {
			return Limit{}, &RatioViolationError{
				Field:      "provisioned throughput (MiB/s)",
				Value:      speed,
				Constraint: "IOPS-to-throughput ratio must not be below 4:1",
			}
		}
	}

	return Limit{IOPS: iops, Speed: speed}, nil
}
