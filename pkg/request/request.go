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

// Package request translates flavor passthrough alias references into
// device allocation requests for the scheduler.
package request

import (
	"fmt"

	"github.com/virt-d/passthrough-alias-resolver/pkg/alias"
)

// AliasExtraSpecKey is the flavor extra spec holding the passthrough alias
// references. Its value is a comma-separated list of alias_name:count
// pairs, e.g. "QuickAssist:1,gpu:2".
const AliasExtraSpecKey = "pci_passthrough:alias"

// Request asks the scheduler for Count devices, each matching any entry
// in Specs.
type Request struct {
	// Count is the number of devices requested. Always positive.
	Count int

	// Specs are the originating alias's device-matching constraint sets.
	// The slice is shared with the alias table and must not be mutated.
	Specs []alias.Spec

	// AliasName is the name of the originating alias. Empty for requests
	// created outside of alias translation.
	AliasName string

	// Policy is the effective NUMA affinity policy: a translation-time
	// override when one was given, the alias's own policy otherwise.
	Policy alias.NUMAPolicy

	// RequestID uniquely identifies this request so that an allocated
	// device can later be traced back to it.
	RequestID string
}

// Flavor is the slice of a workload template the translator consumes.
type Flavor struct {
	Name       string
	ExtraSpecs map[string]string
}

// AliasNotDefinedError reports a flavor referencing an alias absent from
// the configured table.
type AliasNotDefinedError struct {
	Alias string
}

func (e *AliasNotDefinedError) Error() string {
	return fmt.Sprintf("PCI alias %s is not defined", e.Alias)
}

// InvalidRequestError reports a malformed alias reference pair in a
// flavor's extra spec.
type InvalidRequestError struct {
	Pair   string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid PCI alias reference %q: %s", e.Pair, e.Reason)
}
