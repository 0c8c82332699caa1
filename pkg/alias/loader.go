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

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"
)

// Source supplies the raw alias configuration and the placement mode flag.
// It is implemented by the process configuration layer.
type Source interface {
	// AliasDefinitions returns the configured alias entries, one JSON
	// object per string, in configuration order.
	AliasDefinitions() []string

	// PlacementEnabled reports whether device inventories are tracked in
	// placement. Placement mode restricts every alias to a single spec
	// backed by identifiers or a resource class.
	PlacementEnabled() bool
}

// Loader builds the alias table from raw configuration and memoizes the
// first successful result. A failed build is not cached, so a later call
// retries once the configuration has been fixed. Safe for concurrent use.
type Loader struct {
	mu     sync.Mutex
	source Source
	table  *Table
}

// NewLoader returns a Loader reading from the given source.
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Load returns the alias table, building it on first use. Every successful
// call returns the same Table instance.
func (l *Loader) Load() (*Table, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.table != nil {
		return l.table, nil
	}

	b := newTableBuilder()
	for _, raw := range l.source.AliasDefinitions() {
		if err := b.add(raw); err != nil {
			return nil, err
		}
	}
	if err := b.validate(l.source.PlacementEnabled()); err != nil {
		return nil, err
	}

	l.table = b.freeze()
	return l.table, nil
}

// Reset drops the cached table. The next Load rebuilds from configuration.
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.table = nil
}

// tableBuilder accumulates parsed entries keyed by alias name, preserving
// configuration order. The table is frozen only after validation, keeping
// construction all-or-nothing.
type tableBuilder struct {
	names   []string
	aliases map[string]*Alias
}

func newTableBuilder() *tableBuilder {
	return &tableBuilder{aliases: make(map[string]*Alias)}
}

// add parses and validates one raw JSON entry, then inserts a new alias or
// merges into an existing one with OR semantics. Merging requires the NUMA
// policy and device type to match the first stored entry.
func (b *tableBuilder) add(raw string) error {
	var entry map[string]string
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return invalidAliasf("parsing alias entry %s: %v", raw, err)
	}
	if err := validateEntry(entry); err != nil {
		return err
	}

	name := strings.TrimSpace(entry["name"])
	policy := NUMAPolicy(entry["numa_policy"])
	if policy == "" {
		policy = PolicyLegacy
	}
	spec, err := newSpec(entry)
	if err != nil {
		return err
	}

	existing, ok := b.aliases[name]
	if !ok {
		b.names = append(b.names, name)
		b.aliases[name] = &Alias{Name: name, Policy: policy, Specs: []Spec{spec}}
		return nil
	}
	if existing.Policy != policy {
		return invalidAliasf("NUMA policy mismatch for alias %q", name)
	}
	if existing.Specs[0].DevType != spec.DevType {
		return invalidAliasf("device type mismatch for alias %q", name)
	}
	existing.Specs = append(existing.Specs, spec)
	return nil
}

func (b *tableBuilder) freeze() *Table {
	return &Table{names: b.names, aliases: b.aliases}
}

// newSpec converts a validated raw entry into a Spec, normalizing the
// live_migratable flag to the literal strings "true" and "false".
func newSpec(entry map[string]string) (Spec, error) {
	spec := Spec{
		VendorID:      entry["vendor_id"],
		ProductID:     entry["product_id"],
		DevType:       DeviceType(entry["device_type"]),
		ResourceClass: entry["resource_class"],
		Traits:        entry["traits"],
	}
	if raw, ok := entry["live_migratable"]; ok {
		migratable, err := parseBool(raw)
		if err != nil {
			return Spec{}, err
		}
		spec.LiveMigratable = strconv.FormatBool(migratable)
	}
	return spec, nil
}

// parseBool accepts the boolean spellings historically allowed in alias
// definitions, a wider set than strconv.ParseBool.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "on", "y", "yes":
		return true, nil
	case "0", "f", "false", "off", "n", "no":
		return false, nil
	}
	return false, invalidAliasf("unrecognized boolean value %q for live_migratable", raw)
}
