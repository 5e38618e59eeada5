package limits

// io1/io2 volume constraints. These volumes are provisioned by IOPS
// alone; throughput follows from the provisioned IOPS and the maximum
// I/O size the tier supports.
const (
	ioMinIOPS = 100
	ioMaxIOPS = 64000

	ioHighIOPSTier = 32000

	ioLowTierMaxSpeed  = 500
	ioHighTierMaxSpeed = 1000
)

// IO computes the performance envelope of an io1 or io2 volume from
// its provisioned IOPS.
//
// Below 32000 IOPS the volume supports 256 KiB I/O, so throughput is
// IOPS/4 capped at 500 MiB/s. At 32000 IOPS and above the maximum I/O
// size drops to 16 KiB: throughput is IOPS/64, capped at 1000 MiB/s.
func IO(provisionedIOPS uint32) (Limit, error) {
	if provisionedIOPS < ioMinIOPS || provisionedIOPS > ioMaxIOPS {
		return Limit{}, &OutOfRangeError{Field: "provisioned IOPS", Value: provisionedIOPS, Min: ioMinIOPS, Max: ioMaxIOPS}
	}

	var speed uint32
	if provisionedIOPS < ioHighIOPSTier {
		speed = min(ioLowTierMaxSpeed, provisionedIOPS/4)
	} else {
		speed = min(ioHighTierMaxSpeed, provisionedIOPS/64)
	}

	return Limit{IOPS: provisionedIOPS, Speed: speed}, nil
}
