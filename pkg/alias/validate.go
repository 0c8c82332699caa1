package alias

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// validate applies the table-wide consistency rules. A multi-spec
// violation under placement mode is reported before identifier problems
// are considered.
func (b *tableBuilder) validate(placement bool) error {
	if placement {
		if err := b.checkMultiSpec(); err != nil {
			return err
		}
	}
	return b.checkRequiredIdentifiers(placement)
}

// checkMultiSpec rejects aliases with more than one spec. Tracking device
// inventories in placement supports a single spec per alias; the same
// resource_class can be assigned to multiple device matchers to let
// different devices serve one alias.
func (b *tableBuilder) checkMultiSpec() error {
	var multi []string
	for _, name := range b.names {
		if len(b.aliases[name].Specs) > 1 {
			multi = append(multi, name)
		}
	}
	if len(multi) == 0 {
		return nil
	}
	return invalidAliasf(
		"the alias(es) %s have multiple specs, but placement mode supports only one spec per alias",
		strings.Join(multi, ","))
}

// checkRequiredIdentifiers enforces the minimum every spec must carry:
// vendor_id and product_id, or, under placement mode, a resource_class
// instead.
func (b *tableBuilder) checkRequiredIdentifiers(placement bool) error {
	failing := sets.New[string]()
	for _, name := range b.names {
		for _, spec := range b.aliases[name].Specs {
			if spec.HasIdentifiers() {
				continue
			}
			if placement && spec.HasResourceClass() {
				continue
			}
			failing.Insert(name)
		}
	}
	if failing.Len() == 0 {
		return nil
	}
	if placement {
		return invalidAliasf(
			"the alias(es) %s do not have vendor_id and product_id fields set or resource_class field set",
			strings.Join(sets.List(failing), ","))
	}
	return invalidAliasf(
		"the alias(es) %s do not have vendor_id and product_id fields set",
		strings.Join(sets.List(failing), ","))
}
