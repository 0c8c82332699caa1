package request

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/virt-d/passthrough-alias-resolver/pkg/alias"
)

// Translate expands a comma-separated "alias_name:count" string into
// allocation requests against the given table. Whitespace around names is
// trimmed. Requests are emitted in input order, each with a fresh unique
// RequestID. A non-empty override replaces every alias's own NUMA policy.
func Translate(table *alias.Table, aliasSpec string, override alias.NUMAPolicy) ([]Request, error) {
	var requests []Request
	for _, pair := range strings.Split(aliasSpec, ",") {
		name, rawCount, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, &InvalidRequestError{Pair: pair, Reason: "expected alias_name:count"}
		}
		name = strings.TrimSpace(name)

		a, found := table.Get(name)
		if !found {
			return nil, &AliasNotDefinedError{Alias: name}
		}

		count, err := strconv.Atoi(strings.TrimSpace(rawCount))
		if err != nil {
			return nil, &InvalidRequestError{Pair: pair, Reason: "count is not an integer"}
		}
		if count <= 0 {
			return nil, &InvalidRequestError{Pair: pair, Reason: "count must be positive"}
		}

		policy := a.Policy
		if override != "" {
			policy = override
		}

		requests = append(requests, Request{
			Count:     count,
			Specs:     a.Specs,
			AliasName: name,
			Policy:    policy,
			RequestID: uuid.NewString(),
		})
	}
	return requests, nil
}

// FromFlavor translates the flavor's passthrough alias extra spec into
// allocation requests. A flavor without the extra spec yields an empty
// request set rather than an error.
func FromFlavor(table *alias.Table, flavor *Flavor, override alias.NUMAPolicy) ([]Request, error) {
	if flavor == nil || flavor.ExtraSpecs == nil {
		return nil, nil
	}
	aliasSpec, ok := flavor.ExtraSpecs[AliasExtraSpecKey]
	if !ok {
		return nil, nil
	}
	return Translate(table, aliasSpec, override)
}
