/*
Copyright 2026 The virt-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package alias

// NUMAPolicy describes the required NUMA affinity between a passthrough
// device allocation and the instance's CPU and memory placement.
type NUMAPolicy string

const (
	// PolicyRequired demands that the device share a NUMA node with the
	// instance.
	PolicyRequired NUMAPolicy = "required"

	// PolicySocket allows any device on the same host socket.
	PolicySocket NUMAPolicy = "socket"

	// PolicyPreferred prefers but does not require NUMA affinity.
	PolicyPreferred NUMAPolicy = "preferred"

	// PolicyLegacy is the historical behavior: affinity is required only
	// when the device reports NUMA information. It is the default for
	// aliases that do not set a policy.
	PolicyLegacy NUMAPolicy = "legacy"
)

// DeviceType classifies a PCI device for matching purposes.
type DeviceType string

const (
	// DeviceTypeStandard is a plain PCI device.
	DeviceTypeStandard DeviceType = "type-PCI"

	// DeviceTypePF is an SR-IOV physical function.
	DeviceTypePF DeviceType = "type-PF"

	// DeviceTypeVF is an SR-IOV virtual function.
	DeviceTypeVF DeviceType = "type-VF"

	// DeviceTypeVDPA exists in device inventories but cannot be requested
	// through an alias.
	DeviceTypeVDPA DeviceType = "vdpa"
)

// Spec is one device-matching constraint set of an alias. All fields are
// optional; the table validator enforces the minimum each spec must carry.
type Spec struct {
	// VendorID is the 4 hex digit PCI vendor identifier.
	VendorID string

	// ProductID is the 4 hex digit PCI product identifier.
	ProductID string

	// DevType restricts matching to one device classification.
	DevType DeviceType

	// ResourceClass is a placement resource class to request instead of,
	// or in addition to, raw identifiers.
	ResourceClass string

	// Traits are placement traits further qualifying a resource class
	// request, comma-separated.
	Traits string

	// LiveMigratable is "true" or "false" once normalized by the loader,
	// or empty when the entry did not set it.
	LiveMigratable string
}

// HasIdentifiers reports whether both vendor and product identifiers are set.
func (s Spec) HasIdentifiers() bool {
	return s.VendorID != "" && s.ProductID != ""
}

// HasResourceClass reports whether a placement resource class is set.
func (s Spec) HasResourceClass() bool {
	return s.ResourceClass != ""
}

// Alias is a named, reusable device-matching rule set. A device satisfies
// the alias if it matches any entry in Specs.
type Alias struct {
	Name   string
	Policy NUMAPolicy
	Specs  []Spec
}

// Table is the immutable set of configured aliases, keyed by name.
// Iteration via Names preserves configuration order.
type Table struct {
	names   []string
	aliases map[string]*Alias
}

// Get returns the alias with the given name, if configured.
func (t *Table) Get(name string) (*Alias, bool) {
	a, ok := t.aliases[name]
	return a, ok
}

// Names returns the alias names in configuration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Len returns the number of configured aliases.
func (t *Table) Len() int {
	return len(t.names)
}
