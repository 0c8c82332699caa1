package alias

import (
	"regexp"

	"k8s.io/apimachinery/pkg/util/sets"
)

const maxNameLength = 256

var (
	// hexIDPattern matches the 4 hex digit vendor and product identifiers
	// used in PCI device matching.
	hexIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{4}$`)

	allowedFields = sets.New(
		"name",
		"capability_type",
		"product_id",
		"vendor_id",
		"device_type",
		"numa_policy",
		"resource_class",
		"traits",
		"live_migratable",
	)

	// vdpa devices cannot be requested through an alias, so the schema
	// excludes DeviceTypeVDPA.
	allowedDeviceTypes = sets.New(
		string(DeviceTypeStandard),
		string(DeviceTypePF),
		string(DeviceTypeVF),
	)

	allowedPolicies = sets.New(
		string(PolicyRequired),
		string(PolicySocket),
		string(PolicyPreferred),
		string(PolicyLegacy),
	)
)

// validateEntry checks one raw alias definition against the allowed field
// set and the per-field constraints. It is pure: normalization happens in
// the loader.
func validateEntry(entry map[string]string) error {
	for field := range entry {
		if !allowedFields.Has(field) {
			return invalidAliasf("unsupported field %q", field)
		}
	}

	name, ok := entry["name"]
	if !ok || name == "" {
		return invalidAliasf("alias name must be a non-empty string")
	}
	if len(name) > maxNameLength {
		return invalidAliasf("alias name %q exceeds %d characters", name, maxNameLength)
	}

	if v, ok := entry["capability_type"]; ok && v != "pci" {
		return invalidAliasf("capability_type must be \"pci\", got %q", v)
	}
	for _, field := range []string{"vendor_id", "product_id"} {
		if v, ok := entry[field]; ok && !hexIDPattern.MatchString(v) {
			return invalidAliasf("%s %q is not a 4 hex digit PCI identifier", field, v)
		}
	}
	if v, ok := entry["device_type"]; ok && !allowedDeviceTypes.Has(v) {
		return invalidAliasf("device_type %q is not one of %v", v, sets.List(allowedDeviceTypes))
	}
	if v, ok := entry["numa_policy"]; ok && !allowedPolicies.Has(v) {
		return invalidAliasf("numa_policy %q is not one of %v", v, sets.List(allowedPolicies))
	}
	return nil
}
