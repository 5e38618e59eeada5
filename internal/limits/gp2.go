package limits

// gp2 volume constraints. Performance is derived entirely from size:
// 3 IOPS per provisioned GiB, with family-wide floors and ceilings.
const (
	gp2MinSizeGB = 1
	gp2MaxSizeGB = 16384

	gp2MaxIOPS     = 16000
	gp2MinIOPS     = 100
	gp2BurstIOPS   = 3000
	gp2SmallSizeGB = 170 // below this, throughput caps at 128 MiB/s
	gp2LargeSizeGB = 1000

	gp2SmallMaxSpeed = 128
	gp2MaxSpeed      = 250
)

// GP2 computes the performance envelope of a gp2 volume from its size
// in GiB.
//
// Volumes over 1000 GiB have a baseline high enough that the burst
// tier no longer applies; smaller volumes burst to 3000 IOPS.
// Throughput is derived from baseline IOPS assuming a 256 KiB maximum
// block size (IOPS/4), capped at 128 MiB/s below 170 GiB and 250 MiB/s
// otherwise.
func GP2(sizeGB uint32) (Limit, error) {
	if sizeGB < gp2MinSizeGB || sizeGB > gp2MaxSizeGB {
		return Limit{}, &OutOfRangeError{Field: "volume size (GiB)", Value: sizeGB, Min: gp2MinSizeGB, Max: gp2MaxSizeGB}
	}

	if sizeGB > gp2LargeSizeGB {
		return Limit{
			IOPS:  min(3*sizeGB, gp2MaxIOPS),
			Speed: gp2MaxSpeed,
		}, nil
	}

	if sizeGB < gp2SmallSizeGB {
		iops := max(3*sizeGB, gp2MinIOPS)
		return Limit{
			IOPS:       iops,
			Speed:      min(gp2SmallMaxSpeed, iops/4),
			BurstIOPS:  gp2BurstIOPS,
			BurstSpeed: gp2SmallMaxSpeed,
		}, nil
	}

	iops := 3 * sizeGB
	return Limit{
		IOPS:       iops,
		Speed:      min(gp2MaxSpeed, iops/4),
		BurstIOPS:  gp2BurstIOPS,
		BurstSpeed: gp2MaxSpeed,
	}, nil
}
