// Command ebs-limits prints the performance envelope of a single EBS
// volume configuration.
//
//	ebs-limits -type gp2 -size 500
//	ebs-limits -type gp3 -size 1000 -iops 16000 -throughput 1000 -json
//	ebs-limits -type io2 -iops 32000
//	ebs-limits -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/cloudperf/ebs-limits/internal/volspec"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ebs-limits", flag.ContinueOnError)
	fs.SetOutput(stderr)

	volumeType := fs.String("type", "", "Volume type (gp2, gp3, io1, io2)")
	sizeGB := fs.Uint("size", 0, "Volume size in GiB")
	iops := fs.Uint("iops", 0, "Provisioned IOPS")
	throughput := fs.Uint("throughput", 0, "Provisioned throughput in MiB/s")
	asJSON := fs.Bool("json", false, "Print the result as JSON")
	list := fs.Bool("list", false, "List supported volume types and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		printCatalog(stdout)
		return 0
	}

	if *volumeType == "" {
		fmt.Fprintln(stderr, "ebs-limits: -type is required (use -list for supported types)")
		return 2
	}

	in := volspec.Inputs{SizeGB: uint32(*sizeGB)}
	// The calculators distinguish absent from zero, so only pass
	// values for flags the user actually set.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "iops":
			v := uint32(*iops)
			in.ProvisionedIOPS = &v
		case "throughput":
			v := uint32(*throughput)
			in.ProvisionedThroughput = &v
		}
	})

	limit, err := volspec.Calculate(*volumeType, in)
	if err != nil {
		fmt.Fprintf(stderr, "ebs-limits: %v\n", err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(limit); err != nil {
			fmt.Fprintf(stderr, "ebs-limits: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(stdout, "volume type:      %s\n", *volumeType)
	fmt.Fprintf(stdout, "baseline IOPS:    %d\n", limit.IOPS)
	fmt.Fprintf(stdout, "baseline speed:   %d MiB/s\n", limit.Speed)
	if limit.HasBurst() {
		fmt.Fprintf(stdout, "burst IOPS:       %d\n", limit.BurstIOPS)
		fmt.Fprintf(stdout, "burst speed:      %d MiB/s\n", limit.BurstSpeed)
	} else {
		fmt.Fprintln(stdout, "burst:            none")
	}
	return 0
}

func printCatalog(stdout io.Writer) {
	for _, spec := range volspec.Specs() {
		fmt.Fprintf(stdout, "%-5s %s\n", spec.VolumeType, spec.DisplayName)
		if spec.SizeGB != nil {
			fmt.Fprintf(stdout, "      size: %d-%d GiB\n", spec.SizeGB.Min, spec.SizeGB.Max)
		}
		if spec.ProvisionedIOPS != nil {
			fmt.Fprintf(stdout, "      provisioned IOPS: %d-%d\n", spec.ProvisionedIOPS.Min, spec.ProvisionedIOPS.Max)
		}
		if spec.ProvisionedThroughput != nil {
			fmt.Fprintf(stdout, "      provisioned throughput: %d-%d MiB/s\n", spec.ProvisionedThroughput.Min, spec.ProvisionedThroughput.Max)
		}
	}
}
