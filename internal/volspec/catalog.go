// Package volspec carries the catalog of supported EBS volume types
// and routes a volume-type name to its limit calculator.
//
// The catalog is embedded at build time and immutable after parsing.
// st1 and sc1 are deliberately absent: their envelope formulas are not
// implemented.
package volspec

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

//go:embed data/volume_specs.json
var rawVolumeSpecsJSON []byte

// Bounds is an inclusive admissible interval for one input.
type Bounds struct {
	Min uint32 `json:"min"`
	Max uint32 `json:"max"`
}

// VolumeSpec describes one supported volume type: which inputs it
// accepts and the documented bounds for each.
type VolumeSpec struct {
	VolumeType  string `json:"volume_type"`
	Family      string `json:"family"`
	DisplayName string `json:"display_name"`
	Technology  string `json:"technology"`

	AcceptsSize                  bool `json:"accepts_size,omitempty"`
	AcceptsProvisionedIOPS       bool `json:"accepts_provisioned_iops,omitempty"`
	AcceptsProvisionedThroughput bool `json:"accepts_provisioned_throughput,omitempty"`
	RequiresProvisionedIOPS      bool `json:"requires_provisioned_iops,omitempty"`

	SizeGB                *Bounds `json:"size_gb,omitempty"`
	ProvisionedIOPS       *Bounds `json:"provisioned_iops,omitempty"`
	ProvisionedThroughput *Bounds `json:"provisioned_throughput,omitempty"`
}

type volumeSpecsFile struct {
	VolumeTypes []VolumeSpec `json:"volume_types"`
}

var (
	specIndex     map[string]VolumeSpec
	specIndexOnce sync.Once
	specIndexErr  error
)

// buildIndex parses the embedded catalog exactly once.
func buildIndex() {
	var file volumeSpecsFile
	if err := json.Unmarshal(rawVolumeSpecsJSON, &file); err != nil {
		specIndexErr = fmt.Errorf("failed to parse volume specs data: %w", err)
		return
	}

	specIndex = make(map[string]VolumeSpec, len(file.VolumeTypes))
	for _, spec := range file.VolumeTypes {
		if spec.VolumeType == "" || spec.Family == "" {
			specIndexErr = fmt.Errorf("volume specs data has an entry without volume_type or family")
			return
		}
		specIndex[strings.ToLower(spec.VolumeType)] = spec
	}
}

// Spec returns the catalog entry for the given volume type.
// Lookup is case-insensitive. Returns false for unknown types and for
// the deferred st1/sc1 families.
func Spec(volumeType string) (VolumeSpec, bool) {
	specIndexOnce.Do(buildIndex)
	if specIndexErr != nil {
		return VolumeSpec{}, false
	}
	spec, ok := specIndex[strings.ToLower(strings.TrimSpace(volumeType))]
	return spec, ok
}

// VolumeTypes returns the supported volume type names, sorted.
func VolumeTypes() []string {
	specIndexOnce.Do(buildIndex)
	names := make([]string, 0, len(specIndex))
	for name := range specIndex {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Specs returns all catalog entries ordered by volume type name.
func Specs() []VolumeSpec {
	specIndexOnce.Do(buildIndex)
	specs := make([]VolumeSpec, 0, len(specIndex))
	for _, name := range VolumeTypes() {
		specs = append(specs, specIndex[name])
	}
	return specs
}
