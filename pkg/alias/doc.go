// Package alias resolves declarative PCI passthrough alias configuration
// into an immutable lookup table.
//
// Operators configure aliases as JSON objects, one per entry:
//
//	{
//	  "name": "QuickAssist",
//	  "product_id": "0443",
//	  "vendor_id": "8086",
//	  "device_type": "type-PCI",
//	  "numa_policy": "legacy"
//	}
//
// Entries sharing a name are ORed: a device satisfies the alias if it
// matches any of the merged specs. Merging is only permitted when the
// entries agree on device type and NUMA policy.
//
// The Loader builds the table once, on first use, and memoizes the result
// for the life of the process. A failed build is never cached, so a call
// after the configuration has been fixed succeeds.
//
// When device inventories are tracked in placement (Source.PlacementEnabled),
// stricter rules apply: one spec per alias, and every spec must carry either
// vendor and product identifiers or a resource class.
package alias
